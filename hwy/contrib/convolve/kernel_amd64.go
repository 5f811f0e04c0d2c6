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

//go:build amd64 && !purego

package convolve

import "github.com/ajroetker/go-subpel/hwy"

// horizW4SSSE3 is horizW4Lanes in SSSE3 assembly. It reads 17 bytes at src
// and writes 4 bytes at dst.
//
//go:noescape
func horizW4SSSE3(dst, src *byte, windows *[2][windowLanes]int8)

func ssse3Available() bool {
	return hwy.HasSSSE3()
}

func horizW4SSSE3Block(dst, src []uint8, pos int, s *Spec) {
	base := pos - s.lead
	// Bounds checks stand in for the ones the assembly cannot do.
	_ = src[base : base+windowLanes+1]
	_ = dst[:4]
	horizW4SSSE3(&dst[0], &src[base], &s.windows)
}
