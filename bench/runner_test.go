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
	"bytes"
	"math"
	"sync"
	"testing"

	"github.com/convox/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-sortbench/sort"
	"github.com/ajroetker/go-sortbench/workerpool"
)

// syncBuffer is written by the progress bar's refresh goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func smallConfig() Config {
	cfg := DefaultConfig()
	cfg.Size = 2000
	cfg.Seed = 7
	cfg.Runs = 2
	return cfg
}

func TestRunnerRun(t *testing.T) {
	var logs bytes.Buffer
	r, err := NewRunner(smallConfig(), WithLogger(logger.NewWriter("ns=test", &logs)))
	require.NoError(t, err)
	defer r.Close()

	report, err := r.Run()
	require.NoError(t, err)

	assert.Equal(t, uint64(7), report.Seed)
	assert.Equal(t, 2000, report.Size)
	assert.Equal(t, 2, report.Runs)
	assert.Equal(t, NewDataset(2000, 0, 100000, sort.NewRand(7)).Head(10), report.Original)

	require.Len(t, report.Results, 5)
	want := NewDataset(2000, 0, 100000, sort.NewRand(7)).Sorted()[:10]
	for i, res := range report.Results {
		assert.Equal(t, AlgorithmNames()[i], res.Name)
		assert.True(t, res.Verified, res.Name)
		assert.Empty(t, res.Error, res.Name)
		assert.Len(t, res.Timings, 2, res.Name)
		assert.Equal(t, want, res.Sample, res.Name)
		assert.LessOrEqual(t, res.Best, res.Mean, res.Name)
	}

	assert.Contains(t, logs.String(), "ns=test at=run")
	assert.Contains(t, logs.String(), "algorithm=bubble")
	assert.Contains(t, logs.String(), "state=success verified=true")
}

func TestRunnerSelectedAlgorithms(t *testing.T) {
	cfg := smallConfig()
	cfg.Algorithms = []string{"shell", "quick*"}

	r, err := NewRunner(cfg)
	require.NoError(t, err)
	defer r.Close()

	report, err := r.Run()
	require.NoError(t, err)
	assert.Equal(t, []string{"quicksort", "shell"}, []string{report.Results[0].Name, report.Results[1].Name})
}

func TestRunnerNoVerify(t *testing.T) {
	cfg := smallConfig()
	cfg.Verify = false

	r, err := NewRunner(cfg)
	require.NoError(t, err)
	defer r.Close()
	assert.Nil(t, r.pool)

	report, err := r.Run()
	require.NoError(t, err)
	for _, res := range report.Results {
		assert.False(t, res.Verified)
	}
}

func TestRunnerEmptyDataset(t *testing.T) {
	cfg := smallConfig()
	cfg.Size = 0

	r, err := NewRunner(cfg)
	require.NoError(t, err)
	defer r.Close()

	report, err := r.Run()
	require.NoError(t, err)
	assert.Empty(t, report.Original)
	for _, res := range report.Results {
		assert.True(t, res.Verified)
		assert.Empty(t, res.Sample)
	}
}

func TestRunnerProgress(t *testing.T) {
	var progress syncBuffer
	cfg := smallConfig()
	cfg.Algorithms = []string{"shell"}

	r, err := NewRunner(cfg, WithProgress(&progress))
	require.NoError(t, err)
	defer r.Close()

	_, err = r.Run()
	require.NoError(t, err)
	assert.Contains(t, progress.String(), "Sorting")
}

func TestRunnerSharedPool(t *testing.T) {
	pool := workerpool.New(2)
	defer pool.Close()

	r, err := NewRunner(smallConfig(), WithPool(pool))
	require.NoError(t, err)
	r.Close()

	// the runner must not close a pool it does not own
	_, err = r.Run()
	require.NoError(t, err)
	assert.Equal(t, 2, pool.NumWorkers())
}

func TestRunnerInvalidConfig(t *testing.T) {
	cfg := smallConfig()
	cfg.Runs = 0

	_, err := NewRunner(cfg)
	assert.Error(t, err)
}

func TestRunnerRangeTooWide(t *testing.T) {
	cfg := smallConfig()
	cfg.MinValue, cfg.MaxValue = math.MinInt64, math.MaxInt64

	_, err := NewRunner(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wider than an int can hold")
}

func TestRunnerVerifyFailure(t *testing.T) {
	r, err := NewRunner(smallConfig())
	require.NoError(t, err)
	defer r.Close()

	data := DatasetOf([]int{3, 1, 2})
	results := []Result{{Name: "good"}, {Name: "broken"}}
	outputs := [][]int{{1, 2, 3}, {3, 1, 2}}

	err = r.verify(data, outputs, results)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")

	assert.True(t, results[0].Verified)
	assert.False(t, results[1].Verified)
	assert.Contains(t, results[1].Error, "not sorted")
}
