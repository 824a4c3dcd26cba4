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

// Command sortbench times quicksort, selection sort, insertion sort, bubble
// sort and shell sort on one random dataset.
//
// Usage:
//
//	sortbench                          # 100,000 values, every algorithm
//	sortbench --size 20000 --runs 3    # best and mean of three runs
//	sortbench -a 'quick*' -a shell     # glob-select algorithms
//	sortbench --seed 42 --format json  # reproducible, machine readable
//	sortbench list                     # show the algorithm registry
//
// Settings are read from ~/.sortbench.yml (or --config) first; flags given
// on the command line override them.
package main

import (
	"os"

	"github.com/convox/logger"
)

func main() {
	log := logger.NewWriter("ns=sortbench", os.Stderr)

	if err := newRootCmd(log).Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
