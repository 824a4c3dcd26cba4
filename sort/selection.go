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

// SelectionSort sorts data in place. It always performs n(n-1)/2
// comparisons and at most n-1 swaps. It is not stable.
func SelectionSort[T Integer](data []T) {
	n := len(data)
	for i := 0; i < n-1; i++ {
		minPos := i
		for j := i + 1; j < n; j++ {
			if data[j] < data[minPos] {
				minPos = j
			}
		}
		if minPos != i {
			Swap(data, i, minPos)
		}
	}
}
