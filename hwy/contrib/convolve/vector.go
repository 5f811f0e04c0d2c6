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

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/ajroetker/go-subpel/hwy"
	"github.com/samber/lo"
)

// ErrUnsupportedWidth is the panic value (wrapped) for block widths other
// than 4, 8, 16, 32 and 64.
var ErrUnsupportedWidth = errors.New("convolve: unsupported block width")

// ErrKernelUnavailable is returned when a kernel cannot run on this CPU.
var ErrKernelUnavailable = errors.New("convolve: kernel not available")

// Kernel names the 4-pixel routine the vector filter is built from.
type Kernel int

const (
	// KernelLanes is the portable kernel written against hwy lane operations.
	KernelLanes Kernel = iota

	// KernelSSSE3 is the amd64 assembly kernel.
	KernelSSSE3
)

func (k Kernel) String() string {
	switch k {
	case KernelLanes:
		return "lanes"
	case KernelSSSE3:
		return "ssse3"
	default:
		return fmt.Sprintf("Kernel(%d)", int(k))
	}
}

// Available reports whether k can run in this process.
func (k Kernel) Available() bool {
	switch k {
	case KernelLanes:
		return true
	case KernelSSSE3:
		return ssse3Available()
	default:
		return false
	}
}

// ParseKernel maps "lanes" or "ssse3" to a Kernel.
func ParseKernel(s string) (Kernel, error) {
	for _, k := range []Kernel{KernelLanes, KernelSSSE3} {
		if strings.EqualFold(s, k.String()) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("convolve: unknown kernel %q", s)
}

// BestKernel returns the fastest kernel available in this process.
func BestKernel() Kernel {
	if KernelSSSE3.Available() {
		return KernelSSSE3
	}
	return KernelLanes
}

// blockFunc filters a block of fixed width starting at src[pos].
type blockFunc func(dst, src []uint8, pos int, s *Spec)

// double builds a 2w-wide block from a w-wide one: the left half, then the
// right half w samples further.
func double(half blockFunc, w int) blockFunc {
	return func(dst, src []uint8, pos int, s *Spec) {
		half(dst, src, pos, s)
		half(dst[w:], src, pos+w, s)
	}
}

// widthTable maps every supported width to a strategy built from w4.
func widthTable(w4 blockFunc) map[int]blockFunc {
	table := map[int]blockFunc{4: w4}
	for w := 4; w < 64; w *= 2 {
		table[2*w] = double(table[w], w)
	}
	return table
}

var kernelTables = map[Kernel]map[int]blockFunc{
	KernelLanes: widthTable(horizW4Lanes),
	KernelSSSE3: widthTable(horizW4SSSE3Block),
}

// SupportedWidths returns the block widths the vector filter accepts,
// ascending.
func SupportedWidths() []int {
	widths := lo.Keys(kernelTables[KernelLanes])
	slices.Sort(widths)
	return widths
}

// CheckWidth returns an error wrapping ErrUnsupportedWidth unless width is
// one of SupportedWidths.
func CheckWidth(width int) error {
	if _, ok := kernelTables[KernelLanes][width]; !ok {
		return fmt.Errorf("%w: %d (want one of %v)", ErrUnsupportedWidth, width, SupportedWidths())
	}
	return nil
}

func lookup(k Kernel, width int) blockFunc {
	if err := CheckWidth(width); err != nil {
		panic(err)
	}
	return kernelTables[k][width]
}

// HorizBlock filters width pixels starting at src[pos] into dst with the best
// available kernel. It panics for widths outside SupportedWidths.
func HorizBlock(dst, src []uint8, pos int, spec *Spec, width int) {
	lookup(BestKernel(), width)(dst, src, pos, spec)
}

// Vector is the RowFilter form of HorizBlock with a fixed kernel.
type Vector struct {
	spec   *Spec
	kernel Kernel
}

// NewVector returns a vector filter for spec running kernel k.
func NewVector(spec *Spec, k Kernel) (*Vector, error) {
	if !k.Available() {
		return nil, fmt.Errorf("%w: %s", ErrKernelUnavailable, k)
	}
	return &Vector{spec: spec, kernel: k}, nil
}

// FilterRow implements RowFilter. It panics for unsupported widths.
func (f *Vector) FilterRow(dst, src []uint8, pos, width int) {
	lookup(f.kernel, width)(dst, src, pos, f.spec)
}

// Name implements RowFilter.
func (f *Vector) Name() string { return "SIMD" }

// Kernel returns the kernel the filter runs.
func (f *Vector) Kernel() Kernel { return f.kernel }

// Spec returns the filter's spec.
func (f *Vector) Spec() *Spec { return f.spec }

// horizW4Lanes filters 4 pixels with hwy lane operations.
//
// Rows 0..3 hold, for outputs 0..3, eight int16 partial sums each (pairs of
// taps). Outputs 0 and 1 use window 0 at offsets 0 and 1; outputs 2 and 3
// use window 1, whose taps sit two lanes later, slid back by one int16 lane.
// A 4x8 transpose turns the partial sums into columns, reduced with
// saturating adds: the outer column pairs first, then the smaller and the
// larger of the two centre columns.
func horizW4Lanes(dst, src []uint8, pos int, s *Spec) {
	base := pos - s.lead
	w0 := hwy.Load(s.windows[0][:])
	w1 := hwy.Load(s.windows[1][:])

	px0 := hwy.Load(src[base : base+windowLanes])
	px1 := hwy.Load(src[base+1 : base+1+windowLanes])

	rows := [4]hwy.Vec[int16]{
		hwy.SatWidenMulPairwiseAdd(px0, w0),
		hwy.SatWidenMulPairwiseAdd(px1, w0),
		hwy.SlideDownLanes(hwy.SatWidenMulPairwiseAdd(px0, w1), 1),
		hwy.SlideDownLanes(hwy.SatWidenMulPairwiseAdd(px1, w1), 1),
	}
	cols := transpose4x8(rows)

	sum := hwy.SaturatedAdd(
		hwy.SaturatedAdd(cols[0], cols[1]),
		hwy.SaturatedAdd(cols[4], cols[5]),
	)
	sum = hwy.SaturatedAdd(sum, hwy.Min(cols[2], cols[3]))
	sum = hwy.SaturatedAdd(sum, hwy.Max(cols[2], cols[3]))

	// (sum + 64) >> 7
	rounded := hwy.MulFixedPoint15(sum, hwy.Set[int16](1<<(15-FilterBits)))
	hwy.Store(hwy.DemoteTwoI16ToU8(rounded, rounded), dst[:4])
}

// transpose4x8 transposes four rows of eight int16 lanes into columns of
// four lanes (the low 64 bits of each result). Columns 6 and 7 only ever
// hold zero taps and are not produced.
func transpose4x8(in [4]hwy.Vec[int16]) (out [6]hwy.Vec[int16]) {
	t0 := hwy.BitCastI16ToI32(hwy.InterleaveLower(in[0], in[1]))
	t1 := hwy.BitCastI16ToI32(hwy.InterleaveLower(in[2], in[3]))

	out[0] = hwy.BitCastI32ToI16(hwy.InterleaveLower(t0, t1))
	out[1] = hwy.SlideDownLanes(out[0], 4)
	out[2] = hwy.BitCastI32ToI16(hwy.InterleaveUpper(t0, t1))
	out[3] = hwy.SlideDownLanes(out[2], 4)

	t0 = hwy.BitCastI16ToI32(hwy.InterleaveUpper(in[0], in[1]))
	t1 = hwy.BitCastI16ToI32(hwy.InterleaveUpper(in[2], in[3]))

	out[4] = hwy.BitCastI32ToI16(hwy.InterleaveLower(t0, t1))
	out[5] = hwy.SlideDownLanes(out[4], 4)
	return out
}
