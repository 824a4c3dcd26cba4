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

// BubbleSort sorts data in place by swapping adjacent out-of-order pairs.
//
// Each pass leaves the largest unplaced element at the end of the live
// prefix, so the prefix shrinks by one per pass. The sort stops after the
// first pass that performs no swap. It is stable.
func BubbleSort[T Integer](data []T) {
	n := len(data)
	for swapped := true; swapped && n > 1; n-- {
		swapped = false
		for i := 0; i < n-1; i++ {
			if data[i] > data[i+1] {
				Swap(data, i, i+1)
				swapped = true
			}
		}
	}
}
