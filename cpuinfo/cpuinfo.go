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

// Package cpuinfo describes the host a benchmark ran on, so that timings
// from different machines can be told apart in reports.
package cpuinfo

import (
	"os"
	"runtime"
	"strconv"
)

// Level represents the widest SIMD instruction set the host supports.
// The sorts themselves are scalar; the level is reported for context.
type Level int

const (
	// LevelScalar indicates no SIMD extension was detected or it was disabled.
	LevelScalar Level = iota

	// LevelSSE2 indicates SSE2 (x86-64 baseline).
	LevelSSE2

	// LevelAVX2 indicates AVX2 (256-bit).
	LevelAVX2

	// LevelAVX512 indicates AVX-512 foundation (512-bit).
	LevelAVX512

	// LevelNEON indicates ARM NEON/ASIMD (128-bit).
	LevelNEON

	// LevelSVE indicates ARM SVE (scalable vector).
	LevelSVE
)

// String returns a human-readable name for the level.
func (l Level) String() string {
	switch l {
	case LevelScalar:
		return "scalar"
	case LevelSSE2:
		return "sse2"
	case LevelAVX2:
		return "avx2"
	case LevelAVX512:
		return "avx512"
	case LevelNEON:
		return "neon"
	case LevelSVE:
		return "sve"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler so JSON and YAML reports
// carry the name rather than the number.
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// Info is a snapshot of the host.
type Info struct {
	GOOS       string   `json:"goos" yaml:"goos"`
	GOARCH     string   `json:"goarch" yaml:"goarch"`
	GoVersion  string   `json:"go_version" yaml:"go_version"`
	NumCPU     int      `json:"num_cpu" yaml:"num_cpu"`
	GOMAXPROCS int      `json:"gomaxprocs" yaml:"gomaxprocs"`
	Level      Level    `json:"level" yaml:"level"`
	Features   []string `json:"features,omitempty" yaml:"features,omitempty"`
}

// Detect inspects the running host.
func Detect() Info {
	level, features := LevelScalar, []string(nil)
	if !NoSIMDEnv() {
		level, features = detect()
	}

	return Info{
		GOOS:       runtime.GOOS,
		GOARCH:     runtime.GOARCH,
		GoVersion:  runtime.Version(),
		NumCPU:     runtime.NumCPU(),
		GOMAXPROCS: runtime.GOMAXPROCS(0),
		Level:      level,
		Features:   features,
	}
}

// NoSIMDEnv checks if the SORTBENCH_NO_SIMD environment variable is set.
// When set, Detect reports LevelScalar regardless of CPU capabilities, which
// keeps report headers identical across machines in tests.
func NoSIMDEnv() bool {
	val := os.Getenv("SORTBENCH_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
