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
	"math/rand/v2"
	"slices"
)

// Dataset is the input every algorithm sorts. It is generated once per run
// and never modified; algorithms work on copies.
type Dataset struct {
	values []int
}

// NewDataset fills size values drawn uniformly from [minValue, maxValue).
func NewDataset(size, minValue, maxValue int, rng *rand.Rand) *Dataset {
	values := make([]int, size)
	span := maxValue - minValue
	for i := range values {
		values[i] = minValue + rng.IntN(span)
	}
	return &Dataset{values: values}
}

// DatasetOf wraps existing values. The slice is cloned.
func DatasetOf(values []int) *Dataset {
	return &Dataset{values: slices.Clone(values)}
}

// Len returns the number of values.
func (d *Dataset) Len() int { return len(d.values) }

// CopyInto copies the dataset into buf, growing it only when it is too
// small, and returns the filled slice.
func (d *Dataset) CopyInto(buf []int) []int {
	if cap(buf) < len(d.values) {
		buf = make([]int, len(d.values))
	}
	buf = buf[:len(d.values)]
	copy(buf, d.values)
	return buf
}

// Head returns a copy of the first n values.
func (d *Dataset) Head(n int) []int {
	return head(d.values, n)
}

// Sorted returns a sorted copy used as the verification reference.
func (d *Dataset) Sorted() []int {
	s := slices.Clone(d.values)
	slices.Sort(s)
	return s
}

func head(values []int, n int) []int {
	return slices.Clone(values[:min(n, len(values))])
}
