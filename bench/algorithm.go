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
	"github.com/gobwas/glob"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/ajroetker/go-sortbench/sort"
)

// Algorithm is one entry of the benchmark registry.
type Algorithm struct {
	Name       string `json:"name" yaml:"name"`
	Title      string `json:"title" yaml:"title"`
	Stable     bool   `json:"stable" yaml:"stable"`
	Complexity string `json:"complexity" yaml:"complexity"`

	// New binds the algorithm to a seed. Only quicksort consumes it.
	New func(seed uint64) sort.Func `json:"-" yaml:"-"`
}

func unseeded(fn sort.Func) func(uint64) sort.Func {
	return func(uint64) sort.Func { return fn }
}

var registry = []Algorithm{
	{
		Name:       "quicksort",
		Title:      "quicksort",
		Complexity: "O(n log n) expected",
		New: func(seed uint64) sort.Func {
			return sort.NewQuickSorter(seed).Sort
		},
	},
	{
		Name:       "selection",
		Title:      "selection sort",
		Complexity: "O(n²)",
		New:        unseeded(sort.SelectionSort[int]),
	},
	{
		Name:       "insertion",
		Title:      "insertion sort",
		Stable:     true,
		Complexity: "O(n²), O(n) sorted",
		New:        unseeded(sort.InsertionSort[int]),
	},
	{
		Name:       "bubble",
		Title:      "bubble sort",
		Stable:     true,
		Complexity: "O(n²), O(n) sorted",
		New:        unseeded(sort.BubbleSort[int]),
	},
	{
		Name:       "shell",
		Title:      "shell sort",
		Complexity: "O(n²) worst, halving gaps",
		New:        unseeded(sort.ShellSort[int]),
	},
}

// Algorithms returns the registry in benchmark order.
func Algorithms() []Algorithm {
	return append([]Algorithm(nil), registry...)
}

// AlgorithmNames returns the registry names in benchmark order.
func AlgorithmNames() []string {
	return lo.Map(registry, func(a Algorithm, _ int) string { return a.Name })
}

// SelectAlgorithms returns the algorithms whose name matches any of the glob
// patterns, in registry order and without duplicates. Every pattern must
// match at least one algorithm.
func SelectAlgorithms(patterns []string) ([]Algorithm, error) {
	globs := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, errors.Wrapf(err, "algorithm pattern %q", p)
		}
		if !lo.ContainsBy(registry, func(a Algorithm) bool { return g.Match(a.Name) }) {
			return nil, errors.Errorf("no algorithm matches %q (have %v)", p, AlgorithmNames())
		}
		globs = append(globs, g)
	}

	selected := lo.Filter(registry, func(a Algorithm, _ int) bool {
		return lo.ContainsBy(globs, func(g glob.Glob) bool { return g.Match(a.Name) })
	})
	if len(selected) == 0 {
		return nil, errors.New("no algorithms selected")
	}
	return selected, nil
}
