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

package search

// Sequence is a read-only indexable sequence with indices in [0, Len()).
// Implementations must be safe for concurrent At calls.
type Sequence[T any] interface {
	Len() int
	At(i int) T
}

// Slice adapts a Go slice to Sequence.
type Slice[T any] []T

func (s Slice[T]) Len() int   { return len(s) }
func (s Slice[T]) At(i int) T { return s[i] }

// Of wraps s as a Sequence, inferring T.
func Of[T any](s []T) Slice[T] {
	return Slice[T](s)
}

// SequenceFunc is a Sequence computed on demand, e.g. one field of a slice
// of structs or a memory-mapped column.
type SequenceFunc[T any] struct {
	N int
	F func(i int) T
}

func (s SequenceFunc[T]) Len() int   { return s.N }
func (s SequenceFunc[T]) At(i int) T { return s.F(i) }
