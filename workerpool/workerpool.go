// Copyright 2025 The go-sortbench Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent worker pool for checking sort
// results in parallel. A Pool is created once per benchmark and reused for
// every algorithm's output, so verification of large datasets does not pay
// goroutine spawn costs per check.
//
// The pool is never used while an algorithm is being timed.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	ok := pool.All(len(data), func(start, end int) bool {
//	    return isSortedRange(data, start, end)
//	})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// MinChunk is the smallest range handed to a single worker. Smaller inputs
// run inline on the caller's goroutine.
const MinChunk = 4096

// Pool is a persistent worker pool. Workers are spawned once at creation
// and reused until Close.
type Pool struct {
	numWorkers int
	workC      chan task
	closeOnce  sync.Once
	closed     atomic.Bool
}

type task struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a pool with numWorkers workers.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan task, numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for t := range p.workC {
		t.fn()
		t.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the pool. Pending work completes first.
// Calling Close multiple times is safe.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// chunks returns how many workers to use for n items.
func (p *Pool) chunks(n int) int {
	if p.closed.Load() {
		return 1
	}
	return max(1, min(p.numWorkers, n/MinChunk))
}

// ParallelFor calls fn over contiguous ranges covering [0, n) and blocks
// until all of them return. A closed pool runs fn(0, n) inline.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}

	workers := p.chunks(n)
	if workers == 1 {
		fn(0, n)
		return
	}

	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := range workers {
		start := i * chunkSize
		end := min(start+chunkSize, n)
		if start >= n {
			wg.Done()
			continue
		}
		p.workC <- task{
			fn:      func() { fn(start, end) },
			barrier: &wg,
		}
	}
	wg.Wait()
}

// All reports whether fn returns true for every range of [0, n).
// Once any range fails, ranges that have not started are skipped.
func (p *Pool) All(n int, fn func(start, end int) bool) bool {
	var failed atomic.Bool
	p.ParallelFor(n, func(start, end int) {
		if failed.Load() {
			return
		}
		if !fn(start, end) {
			failed.Store(true)
		}
	})
	return !failed.Load()
}

// ParallelForAtomic calls fn for each index in [0, n), with workers taking
// the next index from a shared counter. Use it when the cost per index varies
// or when later indices may be skipped. Blocks until all work completes.
func (p *Pool) ParallelForAtomic(n int, fn func(i int)) {
	if n <= 0 {
		return
	}

	workers := min(p.numWorkers, n)
	if p.closed.Load() || workers == 1 {
		for i := range n {
			fn(i)
		}
		return
	}

	var nextIdx atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		p.workC <- task{
			fn: func() {
				for {
					idx := int(nextIdx.Add(1)) - 1
					if idx >= n {
						return
					}
					fn(idx)
				}
			},
			barrier: &wg,
		}
	}
	wg.Wait()
}
