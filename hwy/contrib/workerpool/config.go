// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// Scheduling defaults.
const (
	// DefaultMinElems is the element count below which work runs inline on
	// the caller; below it, goroutine handoff costs more than it saves.
	DefaultMinElems = 1000

	// DefaultBlockSize is the batch size for Dynamic and Goroutines
	// scheduling, and the block width of lane-batched kernels.
	DefaultBlockSize = 256
)

// ErrInvalidConfig is returned when a Config fails validation.
var ErrInvalidConfig = errors.New("workerpool: invalid config")

// Scheduler selects how an operation is split across workers.
type Scheduler int

const (
	// SchedulerTasks hands each task one contiguous chunk of indices.
	SchedulerTasks Scheduler = iota

	// SchedulerDynamic lets tasks steal BlockSize batches from a shared counter.
	SchedulerDynamic

	// SchedulerGoroutines launches one short-lived goroutine per BlockSize
	// block, at most MaxTasks at a time. It ignores any Pool.
	SchedulerGoroutines

	// SchedulerSequential runs everything inline on the caller.
	SchedulerSequential
)

var schedulerNames = [...]string{
	SchedulerTasks:      "tasks",
	SchedulerDynamic:    "dynamic",
	SchedulerGoroutines: "goroutines",
	SchedulerSequential: "sequential",
}

func (s Scheduler) String() string {
	if s < 0 || int(s) >= len(schedulerNames) {
		return fmt.Sprintf("Scheduler(%d)", int(s))
	}
	return schedulerNames[s]
}

// ParseScheduler parses a scheduler name. "threads" is accepted as an alias
// for "tasks".
func ParseScheduler(s string) (Scheduler, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "tasks", "threads":
		return SchedulerTasks, nil
	case "dynamic":
		return SchedulerDynamic, nil
	case "goroutines":
		return SchedulerGoroutines, nil
	case "sequential", "serial":
		return SchedulerSequential, nil
	}
	return SchedulerTasks, fmt.Errorf("%w: unknown scheduler %q", ErrInvalidConfig, s)
}

// MarshalText implements encoding.TextMarshaler.
func (s Scheduler) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Scheduler) UnmarshalText(text []byte) error {
	v, err := ParseScheduler(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Config holds the scheduling knobs of a parallel operation. Algorithms that
// accept a Config forward it here untouched.
type Config struct {
	Scheduler Scheduler `yaml:"scheduler"`
	// MaxTasks caps the number of concurrently running tasks.
	MaxTasks int `yaml:"max_tasks"`
	// MinElems is the smallest n that is run in parallel.
	MinElems  int `yaml:"min_elems"`
	BlockSize int `yaml:"block_size"`
}

// DefaultConfig returns the task scheduler over GOMAXPROCS tasks.
func DefaultConfig() Config {
	return Config{
		Scheduler: SchedulerTasks,
		MaxTasks:  runtime.GOMAXPROCS(0),
		MinElems:  DefaultMinElems,
		BlockSize: DefaultBlockSize,
	}
}

// Validate reports the first invalid field, wrapping ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.Scheduler < SchedulerTasks || c.Scheduler > SchedulerSequential:
		return fmt.Errorf("%w: unknown scheduler %d", ErrInvalidConfig, int(c.Scheduler))
	case c.MaxTasks <= 0:
		return fmt.Errorf("%w: max tasks must be positive, got %d", ErrInvalidConfig, c.MaxTasks)
	case c.MinElems <= 0:
		return fmt.Errorf("%w: min elems must be positive, got %d", ErrInvalidConfig, c.MinElems)
	case c.BlockSize <= 0:
		return fmt.Errorf("%w: block size must be positive, got %d", ErrInvalidConfig, c.BlockSize)
	}
	return nil
}

// Sequential reports whether an operation over n elements runs inline.
func (c Config) Sequential(n int) bool {
	return c.Scheduler == SchedulerSequential || c.MaxTasks == 1 || n < c.MinElems
}
