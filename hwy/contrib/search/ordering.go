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

import "cmp"

// Ordering is a strict "a precedes b" predicate composed from a key
// extractor, a less-than relation and a reverse flag.
//
// An Ordering is immutable and safe for concurrent use once built. The zero
// value is invalid; search functions reject it with ErrNoOrdering.
type Ordering[T any] struct {
	base func(a, b T) bool // before reversal
	less func(a, b T) bool // composed predicate used by the probes
	rev  bool
}

func newOrdering[T any](base func(a, b T) bool, rev bool) Ordering[T] {
	if base == nil {
		return Ordering[T]{}
	}
	less := base
	if rev {
		less = func(a, b T) bool { return base(b, a) }
	}
	return Ordering[T]{base: base, less: less, rev: rev}
}

// NewOrdering orders T by lt applied to by(a) and by(b), reversed if rev.
// A nil by or lt yields the invalid zero Ordering.
func NewOrdering[T, K any](by func(T) K, lt func(a, b K) bool, rev bool) Ordering[T] {
	if by == nil || lt == nil {
		return Ordering[T]{}
	}
	return newOrdering(func(a, b T) bool { return lt(by(a), by(b)) }, rev)
}

// Natural is the natural ascending order of T. Like cmp.Less, it places NaNs
// before all other floating-point values.
func Natural[T cmp.Ordered]() Ordering[T] {
	return newOrdering(cmp.Less[T], false)
}

// By orders T by the natural order of a key extracted with by.
func By[T any, K cmp.Ordered](by func(T) K) Ordering[T] {
	return NewOrdering(by, cmp.Less[K], false)
}

// LessFunc orders T by a strict less-than relation.
func LessFunc[T any](lt func(a, b T) bool) Ordering[T] {
	return newOrdering(lt, false)
}

// CompareFunc orders T by a three-way comparison, as used by slices.SortFunc.
func CompareFunc[T any](compare func(a, b T) int) Ordering[T] {
	if compare == nil {
		return Ordering[T]{}
	}
	return newOrdering(func(a, b T) bool { return compare(a, b) < 0 }, false)
}

// Reverse returns the ordering with its direction flipped.
func (o Ordering[T]) Reverse() Ordering[T] {
	return newOrdering(o.base, !o.rev)
}

// Reversed reports whether the ordering is reversed.
func (o Ordering[T]) Reversed() bool { return o.rev }

// Valid reports whether o was built by one of the constructors.
func (o Ordering[T]) Valid() bool { return o.less != nil }

// Less reports whether a strictly precedes b. It panics on the zero Ordering.
func (o Ordering[T]) Less(a, b T) bool { return o.less(a, b) }
