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

package hwy

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"unsafe"
)

// DispatchLevel identifies the execution target a batch operation runs on.
//
// Search drivers treat it as an opaque backend tag: DispatchScalar selects the
// per-element scalar path, every other level selects the lane-batched path
// with as many lanes as the level's register width allows.
type DispatchLevel int

const (
	// DispatchScalar indicates no SIMD, one element at a time.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates SSE2 (x86-64 baseline, 128-bit).
	DispatchSSE2

	// DispatchAVX2 indicates AVX2 (256-bit).
	DispatchAVX2

	// DispatchAVX512 indicates AVX-512 (512-bit).
	DispatchAVX512

	// DispatchNEON indicates ARM NEON (128-bit).
	DispatchNEON

	// DispatchSVE indicates ARM SVE. Treated as 256-bit for lane counts.
	DispatchSVE
)

var levelNames = map[DispatchLevel]string{
	DispatchScalar: "scalar",
	DispatchSSE2:   "sse2",
	DispatchAVX2:   "avx2",
	DispatchAVX512: "avx512",
	DispatchNEON:   "neon",
	DispatchSVE:    "sve",
}

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	if name, ok := levelNames[d]; ok {
		return name
	}
	return "unknown"
}

// Width returns the register width in bytes associated with the level.
func (d DispatchLevel) Width() int {
	switch d {
	case DispatchAVX512:
		return 64
	case DispatchAVX2, DispatchSVE:
		return 32
	default:
		// Scalar keeps 16 bytes so lane math stays consistent.
		return 16
	}
}

// ParseDispatchLevel parses a level name as printed by String. The empty
// string and "auto" resolve to the detected level.
func ParseDispatchLevel(s string) (DispatchLevel, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "auto" {
		return currentLevel, nil
	}
	for level, name := range levelNames {
		if name == s {
			return level, nil
		}
	}
	return DispatchScalar, fmt.Errorf("hwy: unknown dispatch level %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (d DispatchLevel) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *DispatchLevel) UnmarshalText(text []byte) error {
	level, err := ParseDispatchLevel(string(text))
	if err != nil {
		return err
	}
	*d = level
	return nil
}

// currentLevel is the detected level for this runtime.
// Set by init() in dispatch_*.go files.
var currentLevel DispatchLevel

// CurrentLevel returns the detected dispatch level.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the register width in bytes of the detected level.
func CurrentWidth() int {
	return currentLevel.Width()
}

// CurrentName returns the name of the detected level, e.g. "avx2".
func CurrentName() string {
	return currentLevel.String()
}

// NoSimdEnv checks if the HWY_NO_SIMD environment variable is set.
// When set, detection reports DispatchScalar regardless of CPU capabilities.
func NoSimdEnv() bool {
	val := os.Getenv("HWY_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// Lanes returns how many elements of elemSize bytes fit the level's width.
// It never returns less than 1.
func Lanes(level DispatchLevel, elemSize int) int {
	if elemSize <= 0 || level == DispatchScalar {
		return 1
	}
	return max(level.Width()/elemSize, 1)
}

// MaxLanes returns the number of lanes for type T at the detected level.
//
// For example, with AVX2 (32 bytes):
//   - float32: 8 lanes
//   - float64: 4 lanes
//   - string: 2 lanes (16-byte header)
func MaxLanes[T any]() int {
	var dummy T
	return Lanes(currentLevel, int(unsafe.Sizeof(dummy)))
}
