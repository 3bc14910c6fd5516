// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent, reusable worker pool and the
// parallel-apply primitives batch algorithms dispatch through.
//
// A Pool is created once and reused across many operations, eliminating
// per-call goroutine spawning. ForEachIndex and ForEachRange add the
// scheduling policy on top: sequential fallback below Config.MinElems,
// contiguous chunks, atomic work stealing in Config.BlockSize batches, or
// per-call goroutines when no pool is supplied.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	err := workerpool.ForEachIndex(pool, len(out), workerpool.DefaultConfig(), func(i int) {
//	    out[i] = compute(i)
//	})
//
// Every primitive blocks until all indices have been processed. A panic raised
// by fn on a worker is re-raised with the same value on the calling goroutine.
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool that can be reused across many parallel
// operations. Workers are spawned once at creation and reused.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

// workItem represents one task of a parallel operation.
type workItem struct {
	fn      func()
	barrier *barrier
}

func (w workItem) run() {
	defer w.barrier.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			w.barrier.fail(r)
		}
	}()
	w.fn()
}

// barrier joins the tasks of one operation and remembers the first panic.
type barrier struct {
	wg       sync.WaitGroup
	failed   atomic.Bool
	once     sync.Once
	panicVal any
}

func (b *barrier) fail(v any) {
	b.once.Do(func() {
		b.panicVal = v
		b.failed.Store(true)
	})
}

// wait blocks until all tasks are done and re-panics on the caller if any
// task panicked.
func (b *barrier) wait() {
	b.wg.Wait()
	if b.failed.Load() {
		panic(b.panicVal)
	}
}

// New creates a new worker pool with the specified number of workers.
// Workers are spawned immediately and persist until Close is called.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		// Buffer enough for all workers to have pending work
		workC: make(chan workItem, numWorkers*2),
	}

	for range numWorkers {
		go p.worker()
	}

	return p
}

// worker is the main loop for each persistent worker goroutine.
func (p *Pool) worker() {
	for item := range p.workC {
		item.run()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Closed reports whether Close has been called.
func (p *Pool) Closed() bool {
	return p.closed.Load()
}

// Close shuts down the worker pool. All pending work will complete.
// Calling Close multiple times is safe.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// ParallelFor executes fn for each index in [0, n) using the worker pool.
// Each worker processes a contiguous range of indices.
// Blocks until all work completes.
//
// fn receives (start, end) indices where work should process [start, end).
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	p.parallelFor(n, p.numWorkers, fn)
}

func (p *Pool) parallelFor(n, maxTasks int, fn func(start, end int)) {
	if n <= 0 {
		return
	}

	if p.closed.Load() {
		// Fallback to sequential if pool is closed
		fn(0, n)
		return
	}

	// Don't use more workers than items
	workers := min(p.numWorkers, maxTasks, n)
	if workers <= 1 {
		fn(0, n)
		return
	}

	chunkSize := (n + workers - 1) / workers

	b := &barrier{}
	b.wg.Add(workers)

	for i := range workers {
		start := i * chunkSize
		end := min(start+chunkSize, n)
		if start >= n {
			b.wg.Done()
			continue
		}

		p.workC <- workItem{
			fn: func() {
				fn(start, end)
			},
			barrier: b,
		}
	}

	b.wait()
}

// ParallelForAtomic executes fn for each index in [0, n) using atomic work
// stealing. This provides better load balancing when work per item varies.
// Blocks until all work completes.
func (p *Pool) ParallelForAtomic(n int, fn func(i int)) {
	p.parallelForAtomicBatched(n, 1, p.numWorkers, func(start, end int) {
		for i := start; i < end; i++ {
			fn(i)
		}
	})
}

// ParallelForAtomicBatched executes fn for batches of indices using atomic
// work stealing. Combines the load balancing of atomic distribution with
// reduced atomic operation overhead by processing multiple items per grab.
//
// fn receives (start, end) indices where work should process [start, end).
// batchSize controls how many items are grabbed per atomic operation.
func (p *Pool) ParallelForAtomicBatched(n int, batchSize int, fn func(start, end int)) {
	p.parallelForAtomicBatched(n, batchSize, p.numWorkers, fn)
}

func (p *Pool) parallelForAtomicBatched(n, batchSize, maxTasks int, fn func(start, end int)) {
	if n <= 0 {
		return
	}

	if batchSize <= 0 {
		batchSize = 1
	}

	if p.closed.Load() {
		fn(0, n)
		return
	}

	numBatches := (n + batchSize - 1) / batchSize
	workers := min(p.numWorkers, maxTasks, numBatches)

	if workers <= 1 {
		fn(0, n)
		return
	}

	var nextBatch atomic.Int64
	b := &barrier{}
	b.wg.Add(workers)

	for range workers {
		p.workC <- workItem{
			fn: func() {
				// Stop grabbing once a sibling failed; the batch is lost anyway.
				for !b.failed.Load() {
					start := int(nextBatch.Add(1)-1) * batchSize
					if start >= n {
						return
					}
					fn(start, min(start+batchSize, n))
				}
			},
			barrier: b,
		}
	}

	b.wait()
}
