// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package search_test

import (
	"fmt"
	"strings"

	"github.com/ajroetker/go-searchsorted/hwy/contrib/search"
	"github.com/ajroetker/go-searchsorted/hwy/contrib/workerpool"
)

func ExampleFirstOrdered() {
	v := []int{1, 3, 3, 5, 7}
	x := []int{0, 3, 6, 8}

	first, _ := search.FirstOrdered(v, x)
	last, _ := search.LastOrdered(v, x)
	fmt.Println(first)
	fmt.Println(last)
	// Output:
	// [0 1 4 5]
	// [0 3 4 5]
}

func ExampleFirstInto() {
	pool := workerpool.New(2)
	defer pool.Close()

	desc := []float64{9.5, 7, 7, 2}
	queries := []float64{10, 7, 0}
	ix := make([]int, len(queries))

	err := search.FirstInto(ix, search.Of(desc), search.Of(queries),
		search.Natural[float64]().Reverse(),
		search.WithPool(pool), search.WithScheduler(workerpool.SchedulerDynamic))
	fmt.Println(ix, err)
	// Output:
	// [0 1 4] <nil>
}

func ExampleBy() {
	type user struct {
		Name string
		Age  int
	}
	users := []user{{"ana", 19}, {"bo", 25}, {"cy", 25}, {"dee", 40}}
	probes := []user{{Age: 25}, {Age: 30}}

	ix, _ := search.Last(search.Of(users), search.Of(probes), search.By(func(u user) int { return u.Age }))
	fmt.Println(ix)
	// Output:
	// [3 3]
}

func ExampleRangeOf() {
	words := search.Of([]string{"Apple", "apple", "BANANA", "cherry"})
	first, last := search.RangeOf(words, "APPLE", search.By(strings.ToLower))
	fmt.Println(first, last)
	// Output:
	// 0 2
}
