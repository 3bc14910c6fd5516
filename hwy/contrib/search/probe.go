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

// probeFunc searches the half-open window [lo, hi) of v for val.
type probeFunc[T any] func(v Sequence[T], val T, lo, hi int, less func(a, b T) bool) int

// searchFirst returns the smallest i in [lo, hi] such that every element of
// v[lo:i] precedes val and no element of v[i:hi] does.
//
// The window is tracked as a base and a length so that no midpoint
// computation can overflow at the edges of the index domain.
func searchFirst[T any](v Sequence[T], val T, lo, hi int, less func(a, b T) bool) int {
	n := hi - lo
	for n > 0 {
		half := n >> 1
		m := lo + half
		if less(v.At(m), val) {
			lo = m + 1
			n -= half + 1
		} else {
			n = half
		}
	}
	return lo
}

// searchLast returns the largest insertion point i in [lo, hi] such that no
// element of v[lo:i] is preceded by val, i.e. lo plus the number of elements
// that do not strictly follow val.
//
// It keeps an open interval (lo, hi) whose left end is the last element known
// not to follow val, starting one before the window.
func searchLast[T any](v Sequence[T], val T, lo, hi int, less func(a, b T) bool) int {
	lo--
	for lo < hi-1 {
		m := lo + (hi-lo)>>1
		if less(val, v.At(m)) {
			hi = m
		} else {
			lo = m
		}
	}
	return lo + 1
}
