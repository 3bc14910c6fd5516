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

// maxLanes bounds the lockstep group so its state fits on the stack.
// AVX-512 over single-byte elements is the widest case.
const maxLanes = 64

// stepFunc reports whether the boundary lies strictly right of an element e
// when searching for val.
type stepFunc[T any] func(e, val T) bool

func firstStep[T any](less func(a, b T) bool) stepFunc[T] {
	return func(e, val T) bool { return less(e, val) }
}

func lastStep[T any](less func(a, b T) bool) stepFunc[T] {
	return func(e, val T) bool { return !less(val, e) }
}

// searchLanes writes the boundary of every query x[start:end] into
// ix[start:end], lanes queries at a time.
//
// All lanes of a group share the window length, which halves on a schedule
// that does not depend on the data, so the group advances in lockstep and the
// reads of v for different lanes can overlap in the memory system. Each lane
// only moves its base; the result equals searchFirst or searchLast.
func searchLanes[T any](ix []int, v, x Sequence[T], start, end, lanes int, step stepFunc[T]) {
	lanes = min(max(lanes, 1), maxLanes)
	n := v.Len()

	if n == 0 {
		for i := start; i < end; i++ {
			ix[i] = 0
		}
		return
	}

	var (
		vals [maxLanes]T
		base [maxLanes]int
	)

	for g := start; g < end; g += lanes {
		width := min(lanes, end-g)
		for l := range width {
			vals[l] = x.At(g + l)
			base[l] = 0
		}

		// Invariant: each lane's boundary lies in [base, base+length].
		for length := n; length > 1; {
			half := length >> 1
			for l := range width {
				if m := base[l] + half; step(v.At(m), vals[l]) {
					base[l] = m
				}
			}
			length -= half
		}

		for l := range width {
			b := base[l]
			if step(v.At(b), vals[l]) {
				b++
			}
			ix[g+l] = b
		}
	}
}
