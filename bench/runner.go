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

package bench

import (
	"io"
	"slices"
	"time"

	"github.com/convox/logger"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"gopkg.in/cheggaaa/pb.v1"

	"github.com/ajroetker/go-sortbench/cpuinfo"
	"github.com/ajroetker/go-sortbench/sort"
	"github.com/ajroetker/go-sortbench/workerpool"
)

// Runner executes the benchmark protocol: one dataset, a fresh copy per
// algorithm run, every sort timed on the calling goroutine.
type Runner struct {
	cfg        Config
	algorithms []Algorithm
	log        *logger.Logger
	progress   io.Writer
	pool       *workerpool.Pool
	ownsPool   bool
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger. The default discards output.
func WithLogger(l *logger.Logger) Option {
	return func(r *Runner) { r.log = l }
}

// WithProgress draws a progress bar on w while algorithms run.
func WithProgress(w io.Writer) Option {
	return func(r *Runner) { r.progress = w }
}

// WithPool shares an existing pool for verification. The caller keeps
// ownership and must close it.
func WithPool(p *workerpool.Pool) Option {
	return func(r *Runner) { r.pool = p }
}

// NewRunner validates cfg and resolves its algorithm patterns.
func NewRunner(cfg Config, opts ...Option) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	algorithms, err := SelectAlgorithms(cfg.Algorithms)
	if err != nil {
		return nil, err
	}

	r := &Runner{
		cfg:        cfg,
		algorithms: algorithms,
		log:        logger.NewWriter("ns=sortbench", io.Discard),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.pool == nil && cfg.Verify {
		r.pool = workerpool.New(0)
		r.ownsPool = true
	}
	return r, nil
}

// Close releases the verification pool if the Runner created it.
func (r *Runner) Close() {
	if r.ownsPool {
		r.pool.Close()
	}
}

// Run benchmarks every selected algorithm. When verification fails the
// report is still returned, together with the first failure.
func (r *Runner) Run() (*Report, error) {
	seed := r.cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	log := r.log.At("run").Start()
	data := NewDataset(r.cfg.Size, r.cfg.MinValue, r.cfg.MaxValue, sort.NewRand(seed))
	log.Logf("size=%d seed=%d runs=%d algorithms=%d", data.Len(), seed, r.cfg.Runs, len(r.algorithms))

	report := &Report{
		Host:     cpuinfo.Detect(),
		Seed:     seed,
		Size:     data.Len(),
		MinValue: r.cfg.MinValue,
		MaxValue: r.cfg.MaxValue,
		Runs:     r.cfg.Runs,
		Original: data.Head(r.cfg.Sample),
		Results:  make([]Result, len(r.algorithms)),
	}

	var bar *pb.ProgressBar
	if r.progress != nil {
		bar = pb.New(len(r.algorithms) * r.cfg.Runs)
		bar.Output = r.progress
		bar.ShowTimeLeft = false
		bar.Prefix("Sorting")
		bar.Start()
	}

	// One working buffer for the whole benchmark.
	buf := make([]int, data.Len())
	outputs := make([][]int, len(r.algorithms))

	for i, a := range r.algorithms {
		alog := log.Replace("algorithm", a.Name)
		fn := a.New(seed)

		timings := make([]Timing, 0, r.cfg.Runs)
		for range r.cfg.Runs {
			buf = data.CopyInto(buf)
			timings = append(timings, Measure(func() { fn(buf) }))
			if bar != nil {
				bar.Increment()
			}
		}

		outputs[i] = slices.Clone(buf)
		report.Results[i] = newResult(a, timings, head(buf, r.cfg.Sample))
		alog.Logf("best=%s mean=%s cpu=%s", report.Results[i].Best, report.Results[i].Mean, report.Results[i].CPU)
	}

	if bar != nil {
		bar.Finish()
	}

	if !r.cfg.Verify {
		log.Successf("verified=false")
		return report, nil
	}

	if err := r.verify(data, outputs, report.Results); err != nil {
		log.Logf("state=failure verified=false")
		return report, err
	}
	log.Successf("verified=true")
	return report, nil
}

// verify checks all outputs concurrently. Timing has finished by now, so
// this never overlaps a measured sort.
func (r *Runner) verify(data *Dataset, outputs [][]int, results []Result) error {
	want := data.Sorted()

	var g errgroup.Group
	for i := range results {
		g.Go(func() error {
			if err := Verify(r.pool, outputs[i], want); err != nil {
				results[i].Error = err.Error()
				return errors.Wrap(err, results[i].Name)
			}
			results[i].Verified = true
			return nil
		})
	}
	return g.Wait()
}
