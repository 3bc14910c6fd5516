// Copyright 2025 go-highway Authors
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

// Command searchsorted runs batched sorted searches from the command line.
//
// Usage:
//
//	searchsorted first --ref 1,3,3,5,7 --query 0,3,6,8
//	searchsorted last --ref 7,5,3,3,1 --query 3 --rev --one-based
//	seq 1 1000000 | searchsorted first --ref 10,100,1000 --query - --scheduler dynamic
//	searchsorted first --config search.yaml --ref ... --query ...
//	searchsorted info
//
// Values are parsed as float64. Results are printed space-separated on one line.
// The YAML config holds the scheduling knobs (scheduler, max_tasks, min_elems,
// block_size) and the backend; flags given explicitly override it.
package main

import (
	"os"
)

func main() {
	cmd := newRootCmd(os.Stdin, os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
