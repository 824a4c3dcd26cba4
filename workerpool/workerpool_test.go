// Copyright 2025 The go-sortbench Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"runtime"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	assert.Equal(t, 4, pool.NumWorkers())
}

func TestNewDefault(t *testing.T) {
	pool := New(0)
	defer pool.Close()

	assert.Equal(t, runtime.GOMAXPROCS(0), pool.NumWorkers())
}

func TestParallelForCoversRange(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	n := 10 * MinChunk
	results := make([]int, n)
	var calls atomic.Int32

	pool.ParallelFor(n, func(start, end int) {
		calls.Add(1)
		for i := start; i < end; i++ {
			results[i] = i * 2
		}
	})

	for i := range n {
		require.Equal(t, i*2, results[i], "results[%d]", i)
	}
	assert.Equal(t, int32(4), calls.Load())
}

func TestParallelForSmallNRunsInline(t *testing.T) {
	pool := New(8)
	defer pool.Close()

	var ranges [][2]int
	pool.ParallelFor(3, func(start, end int) {
		ranges = append(ranges, [2]int{start, end})
	})

	assert.Equal(t, [][2]int{{0, 3}}, ranges)
}

func TestParallelForZeroN(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	called := false
	pool.ParallelFor(0, func(start, end int) {
		called = true
	})
	assert.False(t, called, "ParallelFor with n=0 should not call fn")
}

func TestAll(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	n := 8 * MinChunk
	assert.True(t, pool.All(n, func(start, end int) bool { return true }))
	assert.False(t, pool.All(n, func(start, end int) bool { return start != 0 }))
	assert.True(t, pool.All(0, func(start, end int) bool { return false }))
}

func TestParallelForAtomic(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	n := 1000
	counts := make([]atomic.Int32, n)
	pool.ParallelForAtomic(n, func(i int) {
		counts[i].Add(1)
	})
	for i := range n {
		require.Equal(t, int32(1), counts[i].Load(), "index %d", i)
	}

	called := false
	pool.ParallelForAtomic(0, func(i int) { called = true })
	assert.False(t, called, "ParallelForAtomic with n=0 should not call fn")
}

func TestParallelForAtomicClosedPool(t *testing.T) {
	pool := New(4)
	pool.Close()

	var order []int
	pool.ParallelForAtomic(5, func(i int) {
		order = append(order, i)
	})
	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
}

func TestCloseMultipleTimes(t *testing.T) {
	pool := New(4)
	pool.Close()
	assert.NotPanics(t, pool.Close)
}

func TestClosedPoolFallback(t *testing.T) {
	pool := New(4)
	pool.Close()

	n := 4 * MinChunk
	var covered atomic.Int64
	pool.ParallelFor(n, func(start, end int) {
		covered.Add(int64(end - start))
	})
	assert.Equal(t, int64(n), covered.Load())
}

func BenchmarkAll(b *testing.B) {
	pool := New(0)
	defer pool.Close()

	data := make([]int, 1<<20)
	for i := range data {
		data[i] = i
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pool.All(len(data), func(start, end int) bool {
			for j := max(start, 1); j < end; j++ {
				if data[j] < data[j-1] {
					return false
				}
			}
			return true
		})
	}
}
