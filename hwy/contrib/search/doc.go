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

// Package search provides batched binary search over sorted sequences.
//
// For a sorted reference sequence v and a batch of queries x, First computes
// for every query the leftmost insertion index that keeps v sorted (before
// any equal elements) and Last the rightmost one (after any equal elements).
// Both are reported as 0-based insertion points in [0, v.Len()], so
// Last(v, q) - First(v, q) is the number of elements equal to q.
//
// # Batch API
//
//   - FirstInto(ix, v, x, ord, opts...) / LastInto: write into a caller buffer
//   - First(v, x, ord, opts...) / Last: allocate the result
//   - FirstOrdered / LastOrdered: natural order over plain slices
//   - FirstOf / LastOf / RangeOf: a single query
//
// The Ordering is built once by the caller (Natural, By, LessFunc,
// CompareFunc, NewOrdering) and shared read-only by every query. v is assumed
// sorted under it; this is not checked.
//
// # Execution
//
// Queries are independent, so the batch is fanned out through
// workerpool.ForEachIndex with the configured Scheduler, MaxTasks, MinElems
// and BlockSize. The backend tag (a hwy.DispatchLevel, detected by default)
// picks the kernel: hwy.DispatchScalar probes one query at a time, wider
// levels search hwy.Lanes queries in lockstep. Results never depend on the
// backend or on how the batch was partitioned.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-searchsorted/hwy/contrib/search"
//
//	v := []float64{1, 3, 3, 5, 7}
//	x := []float64{0, 3, 6, 8}
//	first, _ := search.FirstOrdered(v, x) // [0 1 4 5]
//	last, _ := search.LastOrdered(v, x)   // [0 3 4 5]
//
//	// Descending reference, large batch on a shared pool
//	pool := workerpool.New(0)
//	defer pool.Close()
//	ix, err := search.First(search.Of(desc), search.Of(queries),
//	    search.Natural[float64]().Reverse(),
//	    search.WithPool(pool), search.WithBlockSize(512))
package search
