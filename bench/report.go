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
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"gopkg.in/yaml.v2"

	"github.com/ajroetker/go-sortbench/cpuinfo"
)

// Report is the outcome of one Runner.Run.
type Report struct {
	Host     cpuinfo.Info `json:"host" yaml:"host"`
	Seed     uint64       `json:"seed" yaml:"seed"`
	Size     int          `json:"size" yaml:"size"`
	MinValue int          `json:"min_value" yaml:"min_value"`
	MaxValue int          `json:"max_value" yaml:"max_value"`
	Runs     int          `json:"runs" yaml:"runs"`
	Original []int        `json:"original" yaml:"original"`
	Results  []Result     `json:"results" yaml:"results"`
}

// Result summarizes the runs of one algorithm.
type Result struct {
	Name       string        `json:"name" yaml:"name"`
	Title      string        `json:"title" yaml:"title"`
	Stable     bool          `json:"stable" yaml:"stable"`
	Complexity string        `json:"complexity" yaml:"complexity"`
	Best       time.Duration `json:"best_ns" yaml:"best"`
	Mean       time.Duration `json:"mean_ns" yaml:"mean"`
	CPU        time.Duration `json:"cpu_ns" yaml:"cpu"`
	Timings    []Timing      `json:"timings" yaml:"timings"`
	Sample     []int         `json:"sample" yaml:"sample"`
	Verified   bool          `json:"verified" yaml:"verified"`
	Error      string        `json:"error,omitempty" yaml:"error,omitempty"`
}

func newResult(a Algorithm, timings []Timing, sample []int) Result {
	walls := lo.Map(timings, func(t Timing, _ int) time.Duration { return t.Wall })
	best := lo.MinBy(timings, func(a, b Timing) bool { return a.Wall < b.Wall })

	var mean time.Duration
	if len(walls) > 0 {
		mean = lo.Sum(walls) / time.Duration(len(walls))
	}

	return Result{
		Name:       a.Name,
		Title:      a.Title,
		Stable:     a.Stable,
		Complexity: a.Complexity,
		Best:       best.Wall,
		Mean:       mean,
		CPU:        best.CPU,
		Timings:    timings,
		Sample:     sample,
	}
}

// Fastest returns the result with the lowest best time.
func (r *Report) Fastest() (Result, bool) {
	if len(r.Results) == 0 {
		return Result{}, false
	}
	return lo.MinBy(r.Results, func(a, b Result) bool { return a.Best < b.Best }), true
}

// Render writes the report to w in the given format.
func (r *Report) Render(w io.Writer, format string) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.WithStack(enc.Encode(r))
	case FormatYAML:
		data, err := yaml.Marshal(r)
		if err != nil {
			return errors.WithStack(err)
		}
		_, err = w.Write(data)
		return errors.WithStack(err)
	case FormatText, "":
		return r.renderText(w)
	}
	return errors.Errorf("unknown format %q", format)
}

var (
	headerColor = color.New(color.FgCyan, color.Bold)
	labelColor  = color.New(color.Bold)
	okColor     = color.New(color.FgGreen)
	failColor   = color.New(color.FgRed, color.Bold)
)

func (r *Report) renderText(w io.Writer) error {
	size := humanize.Comma(int64(r.Size))
	bufBytes := humanize.Bytes(uint64(r.Size) * strconv.IntSize / 8)

	headerColor.Fprintf(w, "sortbench %s/%s %s, %d cpus, seed %d\n", r.Host.GOOS, r.Host.GOARCH, r.Host.Level, r.Host.NumCPU, r.Seed)
	fmt.Fprintf(w, "%s values in [%s, %s), %s working buffer, %d run(s) each\n\n",
		size, humanize.Comma(int64(r.MinValue)), humanize.Comma(int64(r.MaxValue)), bufBytes, r.Runs)

	fmt.Fprintln(w, "times taken are process CPU seconds of the fastest run")
	labelColor.Fprintf(w, "%d Items of %s Items Original array: ", len(r.Original), size)
	fmt.Fprintln(w, joinInts(r.Original))

	for _, res := range r.Results {
		fmt.Fprintf(w, "Time taken by %s: %f seconds\n", res.Title, res.CPU.Seconds())
	}
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "ALGORITHM\tBEST\tMEAN\tCPU\tSTABLE\tCOMPLEXITY\tVERIFIED")
	for _, res := range r.Results {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%t\t%s\t%s\n",
			res.Name, res.Best, res.Mean, res.CPU, res.Stable, res.Complexity, verifiedLabel(res))
	}
	if err := tw.Flush(); err != nil {
		return errors.WithStack(err)
	}

	if fastest, ok := r.Fastest(); ok {
		fmt.Fprintf(w, "\nfastest: %s\n", fastest.Title)
	}

	if n := len(r.Results); n > 0 {
		last := r.Results[n-1]
		labelColor.Fprintf(w, "%d Items of %s Items Sorted array: ", len(last.Sample), size)
		fmt.Fprintln(w, joinInts(last.Sample))
	}
	return nil
}

func verifiedLabel(res Result) string {
	switch {
	case res.Verified:
		return okColor.Sprint("ok")
	case res.Error != "":
		return failColor.Sprint("FAILED: " + res.Error)
	}
	return "skipped"
}

func joinInts(values []int) string {
	return strings.Join(lo.Map(values, func(v int, _ int) string { return strconv.Itoa(v) }), " ")
}
