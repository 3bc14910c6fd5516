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

//go:build amd64

package hwy

import "testing"

func TestDetectX86(t *testing.T) {
	if got := detectX86(true, true); got != DispatchAVX512 {
		t.Errorf("detectX86(avx512) = %v", got)
	}
	if got := detectX86(false, true); got != DispatchAVX2 {
		t.Errorf("detectX86(avx2) = %v", got)
	}
	if got := detectX86(false, false); got != DispatchSSE2 {
		t.Errorf("detectX86(baseline) = %v", got)
	}
}
