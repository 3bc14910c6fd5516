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

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ajroetker/go-searchsorted/hwy"
	"github.com/ajroetker/go-searchsorted/hwy/contrib/search"
	"github.com/ajroetker/go-searchsorted/hwy/contrib/workerpool"
)

type flags struct {
	ref        string
	query      string
	rev        bool
	oneBased   bool
	configPath string
	scheduler  string
	backend    string
	maxTasks   int
	minElems   int
	blockSize  int
}

func (f *flags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.ref, "ref", "", "sorted reference values, comma separated, or - for stdin")
	fs.StringVar(&f.query, "query", "", "query values, comma separated, or - for stdin")
	fs.BoolVar(&f.rev, "rev", false, "reference is sorted in descending order")
	fs.BoolVar(&f.oneBased, "one-based", false, "print 1-based indices")
	fs.StringVar(&f.configPath, "config", "", "YAML file with scheduling settings")
	fs.StringVar(&f.scheduler, "scheduler", "tasks", "tasks, dynamic, goroutines or sequential")
	fs.StringVar(&f.backend, "backend", "auto", "dispatch level: auto, scalar, sse2, avx2, avx512, neon, sve")
	fs.IntVar(&f.maxTasks, "max-tasks", workerpool.DefaultConfig().MaxTasks, "maximum concurrent tasks")
	fs.IntVar(&f.minElems, "min-elems", workerpool.DefaultMinElems, "smallest batch searched in parallel")
	fs.IntVar(&f.blockSize, "block-size", workerpool.DefaultBlockSize, "block size for block-based scheduling")
}

// resolve merges the config file and the flags the user set explicitly.
func (f *flags) resolve(fs *pflag.FlagSet) (fileConfig, error) {
	cfg, err := loadConfig(f.configPath)
	if err != nil {
		return cfg, err
	}

	if fs.Changed("scheduler") {
		if cfg.Scheduler, err = workerpool.ParseScheduler(f.scheduler); err != nil {
			return cfg, err
		}
	}
	if fs.Changed("backend") {
		if cfg.Backend, err = hwy.ParseDispatchLevel(f.backend); err != nil {
			return cfg, err
		}
	}
	if fs.Changed("max-tasks") {
		cfg.MaxTasks = f.maxTasks
	}
	if fs.Changed("min-elems") {
		cfg.MinElems = f.minElems
	}
	if fs.Changed("block-size") {
		cfg.BlockSize = f.blockSize
	}
	return cfg, cfg.Validate()
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:          "searchsorted",
		Short:        "Batched binary search over a sorted reference sequence",
		SilenceUsage: true,
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn, error")

	newLogger := func() (*slog.Logger, error) {
		var level slog.Level
		if err := level.UnmarshalText([]byte(logLevel)); err != nil {
			return nil, fmt.Errorf("invalid --log-level: %w", err)
		}
		return slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})), nil
	}

	root.AddCommand(
		newSearchCmd("first", "Leftmost insertion index of each query", search.First[float64], newLogger),
		newSearchCmd("last", "Rightmost insertion index of each query", search.Last[float64], newLogger),
		newInfoCmd(),
	)
	return root
}

type searchFunc func(v, x search.Sequence[float64], ord search.Ordering[float64], opts ...search.Option) ([]int, error)

func newSearchCmd(use, short string, run searchFunc, newLogger func() (*slog.Logger, error)) *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger()
			if err != nil {
				return err
			}
			cfg, err := f.resolve(cmd.Flags())
			if err != nil {
				return err
			}

			v, x, err := f.values(cmd.InOrStdin())
			if err != nil {
				return err
			}

			ord := search.Natural[float64]()
			if f.rev {
				ord = ord.Reverse()
			}

			start := time.Now()
			ix, err := run(search.Of(v), search.Of(x), ord,
				search.WithConfig(cfg.Config),
				search.WithBackend(cfg.Backend),
				search.WithLogger(logger),
			)
			if err != nil {
				return err
			}
			logger.Info("search completed",
				"direction", use,
				"queries", len(x),
				"reference", len(v),
				"elapsed", time.Since(start),
			)

			offset := 0
			if f.oneBased {
				offset = 1
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), formatIndices(ix, offset))
			return err
		},
	}
	f.register(cmd.Flags())
	return cmd
}

// values reads the reference and query lists. At most one may come from stdin.
func (f *flags) values(stdin io.Reader) (v, x []float64, err error) {
	if f.ref == "-" && f.query == "-" {
		return nil, nil, errors.New("only one of --ref and --query may read stdin")
	}

	load := func(name, s string) ([]float64, error) {
		var (
			vals []float64
			err  error
		)
		if s == "-" {
			vals, err = readList(stdin)
		} else {
			vals, err = parseList(s)
		}
		if err != nil {
			return nil, fmt.Errorf("--%s: %w", name, err)
		}
		return vals, nil
	}

	if v, err = load("ref", f.ref); err != nil {
		return nil, nil, err
	}
	if x, err = load("query", f.query); err != nil {
		return nil, nil, err
	}
	return v, x, nil
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the detected backend and default scheduling settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := defaultFileConfig()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "backend:    %s (%d bytes)\n", cfg.Backend, cfg.Backend.Width())
			fmt.Fprintf(out, "lanes:      %d x float64\n", hwy.MaxLanes[float64]())
			fmt.Fprintf(out, "scheduler:  %s\n", cfg.Scheduler)
			fmt.Fprintf(out, "max tasks:  %d\n", cfg.MaxTasks)
			fmt.Fprintf(out, "min elems:  %d\n", cfg.MinElems)
			fmt.Fprintf(out, "block size: %d\n", cfg.BlockSize)
			return nil
		},
	}
}
