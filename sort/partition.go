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

// Partition rearranges data[low:high+1] around a pivot chosen uniformly at
// random from that range and returns the pivot's final index p.
//
// Afterwards:
//   - data[low:p] <= data[p]
//   - data[p+1:high+1] >= data[p]
//
// low and high are inclusive and must satisfy 0 <= low <= high < len(data).
func Partition[T Integer](data []T, low, high int, rng *rand.Rand) int {
	pivotIndex := low + rng.IntN(high-low+1)
	if pivotIndex != high {
		Swap(data, pivotIndex, high)
	}

	pivot := data[high]
	i := low
	for j := low; j < high; j++ {
		if data[j] <= pivot {
			Swap(data, i, j)
			i++
		}
	}
	Swap(data, i, high)

	return i
}
