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

import (
	"cmp"
	"context"
	"log/slog"
	"unsafe"

	"github.com/ajroetker/go-searchsorted/hwy"
	"github.com/ajroetker/go-searchsorted/hwy/contrib/workerpool"
)

type direction int

const (
	directionFirst direction = iota
	directionLast
)

func (d direction) String() string {
	if d == directionLast {
		return "last"
	}
	return "first"
}

// FirstInto stores in ix[i] the leftmost insertion index of x.At(i) in v.
//
// len(ix) must equal x.Len(); otherwise an *ErrLengthMismatch is returned and
// ix is left untouched. Invalid scheduling options are reported the same way,
// before any work starts. A panic raised by the ordering is re-raised on the
// caller with its original value; ix is then partially written.
func FirstInto[T any](ix []int, v, x Sequence[T], ord Ordering[T], opts ...Option) error {
	return searchInto(directionFirst, ix, v, x, ord, opts)
}

// LastInto stores in ix[i] the rightmost insertion index of x.At(i) in v.
// It has the same contract as FirstInto.
func LastInto[T any](ix []int, v, x Sequence[T], ord Ordering[T], opts ...Option) error {
	return searchInto(directionLast, ix, v, x, ord, opts)
}

// First returns a new slice holding the leftmost insertion index of every
// query in x.
func First[T any](v, x Sequence[T], ord Ordering[T], opts ...Option) ([]int, error) {
	return search(directionFirst, v, x, ord, opts)
}

// Last returns a new slice holding the rightmost insertion index of every
// query in x.
func Last[T any](v, x Sequence[T], ord Ordering[T], opts ...Option) ([]int, error) {
	return search(directionLast, v, x, ord, opts)
}

// FirstOrdered is First over plain slices in natural ascending order.
func FirstOrdered[T cmp.Ordered](v, x []T, opts ...Option) ([]int, error) {
	return First(Of(v), Of(x), Natural[T](), opts...)
}

// LastOrdered is Last over plain slices in natural ascending order.
func LastOrdered[T cmp.Ordered](v, x []T, opts ...Option) ([]int, error) {
	return Last(Of(v), Of(x), Natural[T](), opts...)
}

// FirstOf returns the leftmost insertion index of val in v.
// ord must be valid.
func FirstOf[T any](v Sequence[T], val T, ord Ordering[T]) int {
	return searchFirst(v, val, 0, v.Len(), ord.less)
}

// LastOf returns the rightmost insertion index of val in v.
// ord must be valid.
func LastOf[T any](v Sequence[T], val T, ord Ordering[T]) int {
	return searchLast(v, val, 0, v.Len(), ord.less)
}

// RangeOf returns the half-open range [first, last) of elements of v that are
// equivalent to val. The range is empty when val is absent.
func RangeOf[T any](v Sequence[T], val T, ord Ordering[T]) (first, last int) {
	first = searchFirst(v, val, 0, v.Len(), ord.less)
	last = searchLast(v, val, first, v.Len(), ord.less)
	return first, last
}

func search[T any](dir direction, v, x Sequence[T], ord Ordering[T], opts []Option) ([]int, error) {
	if x == nil {
		return nil, ErrNilSequence
	}
	ix := make([]int, x.Len())
	if err := searchInto(dir, ix, v, x, ord, opts); err != nil {
		return nil, err
	}
	return ix, nil
}

func searchInto[T any](dir direction, ix []int, v, x Sequence[T], ord Ordering[T], opts []Option) error {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	switch {
	case !ord.Valid():
		return ErrNoOrdering
	case v == nil || x == nil:
		return ErrNilSequence
	case len(ix) != x.Len():
		return &ErrLengthMismatch{Results: len(ix), Queries: x.Len()}
	}
	if err := o.cfg.Validate(); err != nil {
		return err
	}

	n, less := v.Len(), ord.less

	if o.logger.Enabled(context.Background(), slog.LevelDebug) {
		o.logger.Debug("dispatching batch search",
			"direction", dir,
			"queries", len(ix),
			"reference", n,
			"backend", o.backend,
			"scheduler", o.cfg.Scheduler,
			"max_tasks", o.cfg.MaxTasks,
			"block_size", o.cfg.BlockSize,
			"pooled", o.pool != nil,
		)
	}

	if o.backend == hwy.DispatchScalar {
		probe := probeFunc[T](searchFirst[T])
		if dir == directionLast {
			probe = searchLast[T]
		}
		return workerpool.ForEachIndex(o.pool, len(ix), o.cfg, func(i int) {
			ix[i] = probe(v, x.At(i), 0, n, less)
		})
	}

	var zero T
	lanes := hwy.Lanes(o.backend, int(unsafe.Sizeof(zero)))
	step := firstStep(less)
	if dir == directionLast {
		step = lastStep(less)
	}
	return workerpool.ForEachRange(o.pool, len(ix), o.cfg, func(start, end int) {
		searchLanes(ix, v, x, start, end, lanes, step)
	})
}
