// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// ForEachIndex calls fn(i) exactly once for every i in [0, n) and returns when
// all calls have completed. Calls for different indices may run concurrently,
// so fn must only write state owned by index i.
//
// pool may be nil, in which case parallel work runs on per-call goroutines.
// The only error is a cfg validation failure, reported before fn is called.
func ForEachIndex(pool *Pool, n int, cfg Config, fn func(i int)) error {
	return ForEachRange(pool, n, cfg, func(start, end int) {
		for i := start; i < end; i++ {
			fn(i)
		}
	})
}

// ForEachRange is ForEachIndex for callers that amortize work over a
// contiguous range. The ranges passed to fn are disjoint and cover [0, n).
func ForEachRange(pool *Pool, n int, cfg Config, fn func(start, end int)) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if n <= 0 {
		return nil
	}
	if cfg.Sequential(n) {
		fn(0, n)
		return nil
	}

	switch cfg.Scheduler {
	case SchedulerTasks:
		if pool != nil {
			pool.parallelFor(n, cfg.MaxTasks, fn)
			return nil
		}
		return spawnChunks(n, cfg.MaxTasks, fn)
	case SchedulerDynamic:
		if pool != nil {
			pool.parallelForAtomicBatched(n, cfg.BlockSize, cfg.MaxTasks, fn)
			return nil
		}
		return spawnStealing(n, cfg.BlockSize, cfg.MaxTasks, fn)
	default:
		return spawnBlocks(n, cfg.BlockSize, cfg.MaxTasks, fn)
	}
}

// spawnChunks splits [0, n) into at most maxTasks contiguous chunks, one
// goroutine each.
func spawnChunks(n, maxTasks int, fn func(start, end int)) error {
	tasks := min(maxTasks, n)
	chunkSize := (n + tasks - 1) / tasks

	b := &barrier{}
	var g errgroup.Group
	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		g.Go(guard(b, func() { fn(start, end) }))
	}
	return join(&g, b)
}

// spawnStealing runs maxTasks goroutines pulling batchSize batches off a
// shared counter.
func spawnStealing(n, batchSize, maxTasks int, fn func(start, end int)) error {
	numBatches := (n + batchSize - 1) / batchSize
	tasks := min(maxTasks, numBatches)

	var next atomic.Int64
	b := &barrier{}
	var g errgroup.Group
	for range tasks {
		g.Go(guard(b, func() {
			for !b.failed.Load() {
				start := int(next.Add(1)-1) * batchSize
				if start >= n {
					return
				}
				fn(start, min(start+batchSize, n))
			}
		}))
	}
	return join(&g, b)
}

// spawnBlocks launches one goroutine per blockSize block with at most
// maxTasks in flight, the way a wide device launches a grid of blocks.
func spawnBlocks(n, blockSize, maxTasks int, fn func(start, end int)) error {
	b := &barrier{}
	var g errgroup.Group
	g.SetLimit(maxTasks)
	for start := 0; start < n && !b.failed.Load(); start += blockSize {
		end := min(start+blockSize, n)
		g.Go(guard(b, func() { fn(start, end) }))
	}
	return join(&g, b)
}

// guard adapts fn to errgroup, recording a panic in b instead of crashing
// the process from a background goroutine.
func guard(b *barrier, fn func()) func() error {
	return func() error {
		defer func() {
			if r := recover(); r != nil {
				b.fail(r)
			}
		}()
		fn()
		return nil
	}
}

// join waits for g and re-raises the first recorded panic on the caller.
func join(g *errgroup.Group, b *barrier) error {
	err := g.Wait()
	if b.failed.Load() {
		panic(b.panicVal)
	}
	return err
}
