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
	"log/slog"

	"github.com/ajroetker/go-searchsorted/hwy"
	"github.com/ajroetker/go-searchsorted/hwy/contrib/workerpool"
)

type options struct {
	backend hwy.DispatchLevel
	pool    *workerpool.Pool
	cfg     workerpool.Config
	logger  *slog.Logger
}

func defaultOptions() options {
	return options{
		backend: hwy.CurrentLevel(),
		cfg:     workerpool.DefaultConfig(),
		logger:  slog.New(slog.DiscardHandler),
	}
}

// Option configures how a batch search is executed. Options never change the
// results, only how the work is scheduled.
type Option func(*options)

// WithBackend sets the execution target. The default is hwy.CurrentLevel().
func WithBackend(level hwy.DispatchLevel) Option {
	return func(o *options) {
		o.backend = level
	}
}

// WithPool runs parallel work on pool instead of per-call goroutines.
func WithPool(pool *workerpool.Pool) Option {
	return func(o *options) {
		o.pool = pool
	}
}

// WithConfig replaces all scheduling knobs at once.
func WithConfig(cfg workerpool.Config) Option {
	return func(o *options) {
		o.cfg = cfg
	}
}

// WithScheduler sets the scheduling mode. The default is workerpool.SchedulerTasks.
func WithScheduler(s workerpool.Scheduler) Option {
	return func(o *options) {
		o.cfg.Scheduler = s
	}
}

// WithMaxTasks caps the number of concurrent tasks. The default is GOMAXPROCS.
func WithMaxTasks(n int) Option {
	return func(o *options) {
		o.cfg.MaxTasks = n
	}
}

// WithMinElems sets the batch size below which the search runs sequentially.
// The default is workerpool.DefaultMinElems.
func WithMinElems(n int) Option {
	return func(o *options) {
		o.cfg.MinElems = n
	}
}

// WithBlockSize sets the block size used by block-based schedulers and the
// lane kernel. It must be positive. The default is workerpool.DefaultBlockSize.
func WithBlockSize(n int) Option {
	return func(o *options) {
		o.cfg.BlockSize = n
	}
}

// WithLogger enables debug logging of batch dispatch. If nil is passed,
// logging stays disabled.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = slog.New(slog.DiscardHandler)
		}
		o.logger = logger
	}
}
