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

// Integer is the constraint for element types the sorts accept.
// Ordering is always the built-in < operator.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Func is the uniform signature shared by every sort in this package once
// any randomness has been bound.
type Func func(data []int)
