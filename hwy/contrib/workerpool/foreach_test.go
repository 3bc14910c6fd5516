// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func allSchedulers() []Scheduler {
	return []Scheduler{SchedulerTasks, SchedulerDynamic, SchedulerGoroutines, SchedulerSequential}
}

func TestForEachIndexVisitsEveryIndexOnce(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	for _, sched := range allSchedulers() {
		for _, usePool := range []bool{true, false} {
			for _, n := range []int{0, 1, 7, 999, 1000, 4097} {
				name := fmt.Sprintf("%s/pool=%v/n=%d", sched, usePool, n)
				t.Run(name, func(t *testing.T) {
					p := pool
					if !usePool {
						p = nil
					}
					cfg := Config{Scheduler: sched, MaxTasks: 3, MinElems: 1, BlockSize: 64}
					hits := make([]atomic.Int32, n)
					require.NoError(t, ForEachIndex(p, n, cfg, func(i int) {
						hits[i].Add(1)
					}))
					for i := range hits {
						require.EqualValues(t, 1, hits[i].Load(), "index %d", i)
					}
				})
			}
		}
	}
}

func TestForEachRangeDisjointCover(t *testing.T) {
	for _, sched := range allSchedulers() {
		t.Run(sched.String(), func(t *testing.T) {
			const n = 10_000
			cfg := Config{Scheduler: sched, MaxTasks: 5, MinElems: 1, BlockSize: 333}

			var mu sync.Mutex
			var ranges [][2]int
			require.NoError(t, ForEachRange(nil, n, cfg, func(start, end int) {
				mu.Lock()
				ranges = append(ranges, [2]int{start, end})
				mu.Unlock()
			}))

			sort.Slice(ranges, func(i, j int) bool { return ranges[i][0] < ranges[j][0] })
			next := 0
			for _, r := range ranges {
				assert.Equal(t, next, r[0], "gap or overlap before %v", r)
				assert.Less(t, r[0], r[1])
				next = r[1]
			}
			assert.Equal(t, n, next)
		})
	}
}

func TestForEachRangeSequentialBelowMinElems(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	cfg := DefaultConfig()
	cfg.MaxTasks = 4

	var calls int
	require.NoError(t, ForEachRange(pool, cfg.MinElems-1, cfg, func(start, end int) {
		calls++
		assert.Equal(t, 0, start)
		assert.Equal(t, cfg.MinElems-1, end)
	}))
	assert.Equal(t, 1, calls)
}

func TestForEachRangeGoroutinesBlocks(t *testing.T) {
	cfg := Config{Scheduler: SchedulerGoroutines, MaxTasks: 2, MinElems: 1, BlockSize: 10}

	var blocks atomic.Int32
	require.NoError(t, ForEachRange(nil, 95, cfg, func(start, end int) {
		blocks.Add(1)
		assert.LessOrEqual(t, end-start, 10)
	}))
	assert.EqualValues(t, 10, blocks.Load())
}

func TestForEachIndexRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"zero block size", Config{MaxTasks: 1, MinElems: 1, BlockSize: 0}},
		{"negative block size", Config{MaxTasks: 1, MinElems: 1, BlockSize: -4}},
		{"zero max tasks", Config{MaxTasks: 0, MinElems: 1, BlockSize: 1}},
		{"zero min elems", Config{MaxTasks: 1, MinElems: 0, BlockSize: 1}},
		{"unknown scheduler", Config{Scheduler: Scheduler(9), MaxTasks: 1, MinElems: 1, BlockSize: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			err := ForEachIndex(nil, 10, tt.cfg, func(int) { called = true })
			require.ErrorIs(t, err, ErrInvalidConfig)
			assert.False(t, called, "fn must not run on invalid config")
		})
	}
}

func TestForEachIndexPanicPropagates(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	for _, sched := range allSchedulers() {
		for _, p := range []*Pool{pool, nil} {
			t.Run(fmt.Sprintf("%s/pool=%v", sched, p != nil), func(t *testing.T) {
				cfg := Config{Scheduler: sched, MaxTasks: 4, MinElems: 1, BlockSize: 16}
				sentinel := fmt.Errorf("key extraction failed")
				assert.PanicsWithValue(t, sentinel, func() {
					_ = ForEachIndex(p, 500, cfg, func(i int) {
						if i == 321 {
							panic(sentinel)
						}
					})
				})
			})
		}
	}
}

func TestParseScheduler(t *testing.T) {
	for _, sched := range allSchedulers() {
		got, err := ParseScheduler(sched.String())
		require.NoError(t, err)
		assert.Equal(t, sched, got)
	}

	got, err := ParseScheduler("Threads")
	require.NoError(t, err)
	assert.Equal(t, SchedulerTasks, got)

	_, err = ParseScheduler("fibers")
	require.ErrorIs(t, err, ErrInvalidConfig)

	assert.Equal(t, "Scheduler(7)", Scheduler(7).String())
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, SchedulerTasks, cfg.Scheduler)
	assert.Equal(t, DefaultMinElems, cfg.MinElems)
	assert.Equal(t, DefaultBlockSize, cfg.BlockSize)
	assert.Positive(t, cfg.MaxTasks)
}

func TestConfigYAML(t *testing.T) {
	in := []byte("scheduler: dynamic\nmax_tasks: 3\nmin_elems: 10\nblock_size: 64\n")

	var cfg Config
	require.NoError(t, yaml.Unmarshal(in, &cfg))
	assert.Equal(t, Config{Scheduler: SchedulerDynamic, MaxTasks: 3, MinElems: 10, BlockSize: 64}, cfg)

	out, err := yaml.Marshal(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(out), "scheduler: dynamic")

	require.Error(t, yaml.Unmarshal([]byte("scheduler: fibers\n"), &cfg))
}

func BenchmarkForEachIndex(b *testing.B) {
	pool := New(0)
	defer pool.Close()

	out := make([]int, 1<<16)
	for _, sched := range allSchedulers() {
		b.Run(sched.String(), func(b *testing.B) {
			cfg := DefaultConfig()
			cfg.Scheduler = sched
			for b.Loop() {
				_ = ForEachIndex(pool, len(out), cfg, func(i int) { out[i] = i * i })
			}
		})
	}
}
