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

package convolve

// RowFilter filters width pixels starting at src[pos] into dst[:width].
// Implementations may read a few samples around the row; see Margin.
type RowFilter interface {
	FilterRow(dst, src []uint8, pos, width int)
	Name() string
}

// RoundPowerOfTwo divides x by 2^n rounding half up. The shift is
// arithmetic, so negative sums round toward +inf at the half as well.
func RoundPowerOfTwo(x, n int) int {
	return (x + 1<<(n-1)) >> n
}

// ClipPixel clamps x to [0, 255].
func ClipPixel(x int) uint8 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return uint8(x)
}

// ConvolveRow is the reference filter:
//
//	dst[i] = ClipPixel(RoundPowerOfTwo(Σ src[pos+i+k]*taps[k], FilterBits))
//
// for i in [0, width). It reads src[pos : pos+width+len(taps)-1]; an out of
// range read panics.
func ConvolveRow(dst, src []uint8, pos int, taps Taps, width int) {
	dst = dst[:width]
	for i := range dst {
		window := src[pos+i : pos+i+len(taps)]
		sum := 0
		for k, c := range taps {
			sum += int(window[k]) * int(c)
		}
		dst[i] = ClipPixel(RoundPowerOfTwo(sum, FilterBits))
	}
}

// Scalar is the RowFilter form of ConvolveRow.
type Scalar struct {
	spec *Spec
}

// NewScalar returns the reference filter for spec.
func NewScalar(spec *Spec) *Scalar {
	return &Scalar{spec: spec}
}

// FilterRow implements RowFilter.
func (f *Scalar) FilterRow(dst, src []uint8, pos, width int) {
	ConvolveRow(dst, src, pos, f.spec.taps, width)
}

// Name implements RowFilter.
func (f *Scalar) Name() string { return "Scalar" }

// Spec returns the filter's spec.
func (f *Scalar) Spec() *Spec { return f.spec }
