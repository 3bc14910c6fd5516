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

// Package hwy detects the execution target available at runtime and exposes
// it as a DispatchLevel tag.
//
// Batch algorithms under hwy/contrib take the tag as an opaque backend
// selector: DispatchScalar runs one element per step, wider levels process
// MaxLanes elements in lockstep. Detection uses golang.org/x/sys/cpu and can
// be overridden with HWY_NO_SIMD=1 (and HWY_NO_SVE=1 on arm64).
//
//	level := hwy.CurrentLevel()
//	fmt.Println(level, hwy.MaxLanes[float64]())
package hwy
