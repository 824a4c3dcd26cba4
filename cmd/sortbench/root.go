// Copyright 2025 go-sortbench Authors
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
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/convox/logger"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ajroetker/go-sortbench/bench"
)

type options struct {
	configPath string
	noColor    bool
	progress   bool
	quiet      bool
	noVerify   bool

	// flag targets, applied to the loaded config only when set
	cfg bench.Config
}

func newRootCmd(log *logger.Logger) *cobra.Command {
	opts := &options{cfg: bench.DefaultConfig()}

	cmd := &cobra.Command{
		Use:           "sortbench",
		Short:         "Compare classic in-place integer sorts on identical data",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts, log)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "config file (default "+bench.DefaultConfigFile+" if present)")
	f.IntVarP(&opts.cfg.Size, "size", "n", opts.cfg.Size, "number of values to sort")
	f.IntVar(&opts.cfg.MinValue, "min", opts.cfg.MinValue, "smallest generated value (inclusive)")
	f.IntVar(&opts.cfg.MaxValue, "max", opts.cfg.MaxValue, "largest generated value (exclusive)")
	f.Uint64Var(&opts.cfg.Seed, "seed", opts.cfg.Seed, "random seed, 0 picks one from the clock")
	f.IntVar(&opts.cfg.Sample, "sample", opts.cfg.Sample, "number of leading values to print")
	f.IntVarP(&opts.cfg.Runs, "runs", "r", opts.cfg.Runs, "timed runs per algorithm")
	f.StringSliceVarP(&opts.cfg.Algorithms, "algorithms", "a", opts.cfg.Algorithms, "glob patterns selecting algorithms")
	f.StringVarP(&opts.cfg.Format, "format", "o", opts.cfg.Format, "output format: text, json or yaml")
	f.BoolVar(&opts.noVerify, "no-verify", false, "skip checking outputs against a reference sort")
	f.BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	f.BoolVar(&opts.progress, "progress", false, "show a progress bar on stderr")
	f.BoolVarP(&opts.quiet, "quiet", "q", false, "suppress log output")

	cmd.AddCommand(newListCmd())
	return cmd
}

// loadConfig layers the config file and explicitly set flags over the
// defaults.
func loadConfig(flags *pflag.FlagSet, opts *options) (bench.Config, error) {
	path, optional := opts.configPath, false
	if path == "" {
		path, optional = bench.DefaultConfigFile, true
	}

	cfg, err := bench.LoadConfig(path, optional)
	if err != nil {
		return cfg, err
	}

	flags.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "size":
			cfg.Size = opts.cfg.Size
		case "min":
			cfg.MinValue = opts.cfg.MinValue
		case "max":
			cfg.MaxValue = opts.cfg.MaxValue
		case "seed":
			cfg.Seed = opts.cfg.Seed
		case "sample":
			cfg.Sample = opts.cfg.Sample
		case "runs":
			cfg.Runs = opts.cfg.Runs
		case "algorithms":
			cfg.Algorithms = opts.cfg.Algorithms
		case "format":
			cfg.Format = opts.cfg.Format
		case "no-verify":
			cfg.Verify = !opts.noVerify
		}
	})
	return cfg, nil
}

func run(cmd *cobra.Command, opts *options, log *logger.Logger) error {
	if opts.noColor {
		color.NoColor = true
	}
	if opts.quiet {
		log = logger.NewWriter("ns=sortbench", io.Discard)
	}

	cfg, err := loadConfig(cmd.Flags(), opts)
	if err != nil {
		return err
	}

	runnerOpts := []bench.Option{bench.WithLogger(log)}
	if opts.progress {
		runnerOpts = append(runnerOpts, bench.WithProgress(cmd.ErrOrStderr()))
	}

	r, err := bench.NewRunner(cfg, runnerOpts...)
	if err != nil {
		return err
	}
	defer r.Close()

	report, runErr := r.Run()
	if report != nil {
		if err := report.Render(cmd.OutOrStdout(), cfg.Format); err != nil {
			return err
		}
	}
	return runErr
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available algorithms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tTITLE\tSTABLE\tCOMPLEXITY")
			for _, a := range bench.Algorithms() {
				fmt.Fprintf(tw, "%s\t%s\t%t\t%s\n", a.Name, a.Title, a.Stable, a.Complexity)
			}
			return tw.Flush()
		},
	}
}
