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

import "time"

// Timing is the cost of one sort call.
type Timing struct {
	// Wall is elapsed real time.
	Wall time.Duration `json:"wall_ns" yaml:"wall"`

	// CPU is user plus system time consumed by the process, the quantity
	// C's clock() reports. Where the platform cannot report it, it equals
	// Wall.
	CPU time.Duration `json:"cpu_ns" yaml:"cpu"`
}

// Measure runs fn once on the calling goroutine and times it.
func Measure(fn func()) Timing {
	cpuStart, cpuOK := processCPUTime()
	start := time.Now()

	fn()

	wall := time.Since(start)
	cpuEnd, endOK := processCPUTime()

	t := Timing{Wall: wall, CPU: wall}
	if cpuOK && endOK {
		t.CPU = cpuEnd - cpuStart
	}
	return t
}
