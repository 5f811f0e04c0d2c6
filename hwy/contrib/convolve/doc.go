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

// Package convolve provides the horizontal sub-pixel interpolation filter
// used in motion-compensated video prediction.
//
// A filter is a 10 or 12 tap fixed-point kernel with unity gain (the taps sum
// to 128). Each output pixel is
//
//	dst[i] = ClipPixel(RoundPowerOfTwo(Σ src[pos+i+k]*taps[k], 7))
//
// Two implementations are provided and must agree byte for byte:
//
//   - ConvolveRow / Scalar: the reference loop.
//   - HorizBlock / Vector: a 4-pixel kernel built on 128-bit lane operations,
//     doubled up to widths 8, 16, 32 and 64. On amd64 the kernel runs as
//     SSSE3 assembly when the CPU supports it.
//
// # Example Usage
//
//	src := image.NewRandomImage(0xabc, 16, 8, convolve.Margin)
//	dst := make([]uint8, 16)
//	convolve.HorizBlock(dst, src.Buffer(), src.Offset(0), convolve.Spec12, 16)
//
// # Margins
//
// Filters address the source as a (buffer, position) pair. The vector kernel
// reads up to one sample before pos and up to width+12 samples after it, so
// callers keep Margin readable samples on both sides of every row block.
package convolve
