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
	"fmt"
	"sync/atomic"

	"github.com/pkg/errors"

	"github.com/ajroetker/go-sortbench/sort"
	"github.com/ajroetker/go-sortbench/workerpool"
)

// VerifyError describes the first way an algorithm's output differs from
// the reference.
type VerifyError struct {
	Reason string
	Index  int
	Got    int
	Want   int
}

func (e *VerifyError) Error() string {
	switch e.Reason {
	case "length":
		return fmt.Sprintf("output has %d elements, want %d", e.Got, e.Want)
	case "order":
		return fmt.Sprintf("output not sorted at index %d: %d follows a larger value", e.Index, e.Got)
	default:
		return fmt.Sprintf("output is not a permutation of the input: index %d has %d, want %d", e.Index, e.Got, e.Want)
	}
}

// Verify checks that got is sorted and equal to want, the sorted input.
// Equality with the sorted input proves got is a permutation of the input.
// Both checks are spread over pool; a nil pool checks inline.
func Verify(pool *workerpool.Pool, got, want []int) error {
	if len(got) != len(want) {
		return errors.WithStack(&VerifyError{Reason: "length", Got: len(got), Want: len(want)})
	}

	if !isSorted(pool, got) {
		for i := 1; i < len(got); i++ {
			if got[i] < got[i-1] {
				return errors.WithStack(&VerifyError{Reason: "order", Index: i, Got: got[i], Want: got[i-1]})
			}
		}
	}

	if i := firstMismatch(pool, got, want); i < len(got) {
		return errors.WithStack(&VerifyError{Reason: "permutation", Index: i, Got: got[i], Want: want[i]})
	}
	return nil
}

// firstMismatch returns the lowest index where got and want differ, or
// len(got) if they are equal. Blocks of MinChunk elements are handed out in
// order, and blocks past an already found mismatch are skipped.
func firstMismatch(pool *workerpool.Pool, got, want []int) int {
	n := len(got)
	if pool == nil || n <= workerpool.MinChunk {
		for i := range n {
			if got[i] != want[i] {
				return i
			}
		}
		return n
	}

	var first atomic.Int64
	first.Store(int64(n))
	blocks := (n + workerpool.MinChunk - 1) / workerpool.MinChunk
	pool.ParallelForAtomic(blocks, func(b int) {
		start := b * workerpool.MinChunk
		if int64(start) >= first.Load() {
			return
		}
		end := min(start+workerpool.MinChunk, n)
		for i := start; i < end; i++ {
			if got[i] == want[i] {
				continue
			}
			for cur := first.Load(); int64(i) < cur; cur = first.Load() {
				if first.CompareAndSwap(cur, int64(i)) {
					break
				}
			}
			return
		}
	})
	return int(first.Load())
}

func isSorted(pool *workerpool.Pool, data []int) bool {
	if pool == nil {
		return sort.IsSorted(data)
	}
	return pool.All(len(data), func(start, end int) bool {
		// Start one early so chunk boundaries are compared too.
		return sort.IsSorted(data[max(start-1, 0):end])
	})
}
