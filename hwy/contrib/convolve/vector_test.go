package convolve

import (
	"bytes"
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/ajroetker/go-subpel/hwy"
	"github.com/ajroetker/go-subpel/hwy/contrib/image"
	"github.com/google/go-cmp/cmp"
	"github.com/samber/lo"
)

// availableKernels lists every kernel that can run here.
func availableKernels() []Kernel {
	return lo.Filter([]Kernel{KernelLanes, KernelSSSE3}, func(k Kernel, _ int) bool {
		return k.Available()
	})
}

// filterBlock runs f over every row of src.
func filterBlock(f RowFilter, src *image.Image[uint8]) []uint8 {
	w, h := src.Width(), src.Height()
	out := make([]uint8, w*h)
	for y := range h {
		f.FilterRow(out[y*w:], src.Buffer(), src.Offset(y), w)
	}
	return out
}

func mustVector(t testing.TB, spec *Spec, k Kernel) *Vector {
	t.Helper()
	v, err := NewVector(spec, k)
	if err != nil {
		t.Fatal(err)
	}
	return v
}

func TestVectorMatchesScalar(t *testing.T) {
	seeds := []uint32{0, 1, 0xabc, 12345, 0xdeadbeef, 4242}
	for _, k := range availableKernels() {
		for _, spec := range Specs() {
			vec := mustVector(t, spec, k)
			ref := NewScalar(spec)
			for _, width := range SupportedWidths() {
				for _, seed := range seeds {
					src := image.NewRandomImage(seed, width, 8, Margin)
					want := filterBlock(ref, src)
					got := filterBlock(vec, src)
					if diff := cmp.Diff(want, got); diff != "" {
						t.Fatalf("%s/%s width %d seed %#x: not bit-exact (-scalar +vector):\n%s",
							k, spec, width, seed, diff)
					}
				}
			}
		}
	}
}

func TestVectorMatchesScalarFullByteRange(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	buf := make([]uint8, 64+2*Margin)
	for _, k := range availableKernels() {
		for _, spec := range Specs() {
			vec := mustVector(t, spec, k)
			for trial := range 200 {
				for i := range buf {
					buf[i] = uint8(rng.UintN(256))
				}
				// Every third trial uses only the extremes.
				if trial%3 == 0 {
					for i := range buf {
						buf[i] = 255 * (buf[i] & 1)
					}
				}
				want := make([]uint8, 64)
				got := make([]uint8, 64)
				ConvolveRow(want, buf, Margin, spec.taps, 64)
				vec.FilterRow(got, buf, Margin, 64)
				if diff := cmp.Diff(want, got); diff != "" {
					t.Fatalf("%s/%s trial %d (-scalar +vector):\n%s", k, spec, trial, diff)
				}
			}
		}
	}
}

func TestVectorUnityGain(t *testing.T) {
	for _, k := range availableKernels() {
		for _, spec := range Specs() {
			vec := mustVector(t, spec, k)
			for v := 0; v <= 255; v++ {
				src := bytes.Repeat([]byte{uint8(v)}, 64+2*Margin)
				dst := make([]uint8, 64)
				vec.FilterRow(dst, src, Margin, 64)
				if want := bytes.Repeat([]byte{uint8(v)}, 64); !bytes.Equal(dst, want) {
					t.Fatalf("%s/%s: constant %d: got %v", k, spec, v, dst)
				}
			}
		}
	}
}

func TestHorizBlockComposition(t *testing.T) {
	src := image.NewRandomImage(0xabc, 64, 1, Margin)
	pos := src.Offset(0)
	for _, spec := range Specs() {
		for w := 4; w < 64; w *= 2 {
			whole := make([]uint8, 2*w)
			halves := make([]uint8, 2*w)
			HorizBlock(whole, src.Buffer(), pos, spec, 2*w)
			HorizBlock(halves, src.Buffer(), pos, spec, w)
			HorizBlock(halves[w:], src.Buffer(), pos+w, spec, w)
			if diff := cmp.Diff(halves, whole); diff != "" {
				t.Errorf("%s width %d != two halves of %d (-halves +whole):\n%s", spec, 2*w, w, diff)
			}
		}
	}
}

func TestHorizBlockUnsupportedWidth(t *testing.T) {
	src := make([]uint8, 256)
	dst := make([]uint8, 256)
	for _, width := range []int{0, 1, 2, 3, 5, 12, 24, 48, 128} {
		func() {
			defer func() {
				err, ok := recover().(error)
				if !ok || !errors.Is(err, ErrUnsupportedWidth) {
					t.Errorf("width %d: got panic %v, want ErrUnsupportedWidth", width, err)
				}
			}()
			HorizBlock(dst, src, Margin, Spec12, width)
		}()
	}
}

func TestVectorWritesOnlyWidth(t *testing.T) {
	src := bytes.Repeat([]byte{90}, 64+2*Margin)
	for _, k := range availableKernels() {
		dst := bytes.Repeat([]byte{1}, 12)
		mustVector(t, Spec10, k).FilterRow(dst, src, Margin, 8)
		want := []uint8{90, 90, 90, 90, 90, 90, 90, 90, 1, 1, 1, 1}
		if diff := cmp.Diff(want, dst); diff != "" {
			t.Errorf("%s: (-want +got):\n%s", k, diff)
		}
	}
}

func TestVectorPanicsWithoutMargin(t *testing.T) {
	for _, k := range availableKernels() {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s: reading past the source did not panic", k)
				}
			}()
			src := make([]uint8, 16)
			mustVector(t, Spec12, k).FilterRow(make([]uint8, 4), src, 0, 4)
		}()
	}
}

func TestSupportedWidths(t *testing.T) {
	if diff := cmp.Diff([]int{4, 8, 16, 32, 64}, SupportedWidths()); diff != "" {
		t.Errorf("SupportedWidths (-want +got):\n%s", diff)
	}
	for _, w := range SupportedWidths() {
		if err := CheckWidth(w); err != nil {
			t.Errorf("CheckWidth(%d): %v", w, err)
		}
	}
	if err := CheckWidth(6); !errors.Is(err, ErrUnsupportedWidth) {
		t.Errorf("CheckWidth(6): got %v, want ErrUnsupportedWidth", err)
	}
}

func TestKernels(t *testing.T) {
	if !KernelLanes.Available() {
		t.Error("lanes kernel must always be available")
	}
	if KernelSSSE3.Available() && !hwy.HasSSSE3() {
		t.Error("ssse3 kernel available without SSSE3 dispatch")
	}
	t.Logf("best kernel: %s (dispatch %s)", BestKernel(), hwy.CurrentName())
	if !BestKernel().Available() {
		t.Errorf("BestKernel %s is not available", BestKernel())
	}

	for _, name := range []string{"lanes", "SSSE3"} {
		if _, err := ParseKernel(name); err != nil {
			t.Errorf("ParseKernel(%q): %v", name, err)
		}
	}
	if _, err := ParseKernel("avx9"); err == nil {
		t.Error("ParseKernel(avx9): want error")
	}
	if got := Kernel(7).String(); got != "Kernel(7)" {
		t.Errorf("Kernel(7).String() = %q", got)
	}

	if !KernelSSSE3.Available() {
		if _, err := NewVector(Spec12, KernelSSSE3); !errors.Is(err, ErrKernelUnavailable) {
			t.Errorf("NewVector(ssse3): got %v, want ErrKernelUnavailable", err)
		}
	}
	v := mustVector(t, Spec10, KernelLanes)
	if v.Name() != "SIMD" || v.Kernel() != KernelLanes || v.Spec() != Spec10 {
		t.Errorf("Vector accessors: %q %s %s", v.Name(), v.Kernel(), v.Spec())
	}
}

func TestTranspose4x8(t *testing.T) {
	var rows [4]hwy.Vec[int16]
	for r := range rows {
		data := make([]int16, 8)
		for c := range data {
			data[c] = int16(10*r + c)
		}
		rows[r] = hwy.Load(data)
	}
	cols := transpose4x8(rows)
	for c, col := range cols {
		want := []int16{int16(c), int16(10 + c), int16(20 + c), int16(30 + c)}
		if diff := cmp.Diff(want, col.Data()[:4]); diff != "" {
			t.Errorf("column %d (-want +got):\n%s", c, diff)
		}
	}
}
