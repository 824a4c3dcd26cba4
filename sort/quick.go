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

package sort

import "math/rand/v2"

// QuickSorter sorts with randomized quicksort using a random source it owns.
// A QuickSorter is not safe for concurrent use.
type QuickSorter struct {
	rng *rand.Rand
}

// NewQuickSorter returns a QuickSorter whose pivot choices are fully
// determined by seed.
func NewQuickSorter(seed uint64) *QuickSorter {
	return &QuickSorter{rng: NewRand(seed)}
}

// NewRand returns the PCG-backed source used for pivot selection.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Sort sorts data in place.
func (q *QuickSorter) Sort(data []int) {
	QuickSort(data, q.rng)
}

// QuickSort sorts data in place using randomized quicksort.
func QuickSort[T Integer](data []T, rng *rand.Rand) {
	QuickSortRange(data, 0, len(data)-1, rng)
}

// QuickSortRange sorts the inclusive range data[low:high+1] in place.
// A range with low >= high is already sorted.
func QuickSortRange[T Integer](data []T, low, high int, rng *rand.Rand) {
	// Recurse into the smaller side and loop on the larger one, so the
	// stack never grows past O(log n) frames.
	for low < high {
		p := Partition(data, low, high, rng)
		if p-low < high-p {
			QuickSortRange(data, low, p-1, rng)
			low = p + 1
		} else {
			QuickSortRange(data, p+1, high, rng)
			high = p - 1
		}
	}
}

// NthElement rearranges data such that the element at index k
// is the element that would be at that position if data were sorted.
// Elements before k are <= data[k], elements after are >= data[k].
// An out of range k leaves data untouched.
func NthElement[T Integer](data []T, k int, rng *rand.Rand) {
	if k < 0 || k >= len(data) {
		return
	}

	low, high := 0, len(data)-1
	for low < high {
		p := Partition(data, low, high, rng)
		switch {
		case k < p:
			high = p - 1
		case k > p:
			low = p + 1
		default:
			return
		}
	}
}
