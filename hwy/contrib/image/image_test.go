package image

import (
	"testing"
)

func TestNewImage(t *testing.T) {
	img := NewImage[uint8](100, 50)

	if img.Width() != 100 {
		t.Errorf("Width: got %d, want 100", img.Width())
	}
	if img.Height() != 50 {
		t.Errorf("Height: got %d, want 50", img.Height())
	}
	if img.Stride() != 100 {
		t.Errorf("Stride: got %d, want 100", img.Stride())
	}
	if len(img.Buffer()) != 5000 {
		t.Errorf("Buffer length: got %d, want 5000", len(img.Buffer()))
	}
}

func TestNewImage_ZeroDimensions(t *testing.T) {
	img := NewImage[uint8](0, 0)
	if img.Width() != 0 || img.Height() != 0 {
		t.Errorf("Zero dimensions: got %dx%d, want 0x0", img.Width(), img.Height())
	}

	img = NewPaddedImage[uint8](-1, 10, 4)
	if img.Width() != 0 || img.Height() != 0 {
		t.Errorf("Negative width: got %dx%d, want 0x0", img.Width(), img.Height())
	}
	if len(img.Buffer()) != 8 {
		t.Errorf("Empty padded buffer: got %d samples, want 8", len(img.Buffer()))
	}
}

func TestPaddedImage_Layout(t *testing.T) {
	img := NewPaddedImage[uint8](4, 3, 16)

	if img.Pad() != 16 {
		t.Errorf("Pad: got %d, want 16", img.Pad())
	}
	if len(img.Buffer()) != 4*3+32 {
		t.Errorf("Buffer length: got %d, want %d", len(img.Buffer()), 4*3+32)
	}
	for y := range 3 {
		if got := img.Offset(y); got != 16+4*y {
			t.Errorf("Offset(%d): got %d, want %d", y, got, 16+4*y)
		}
	}

	// Rows are contiguous: the sample after row 0 is the first of row 1.
	img.Set(0, 1, 77)
	if got := img.Buffer()[img.Offset(0)+4]; got != 77 {
		t.Errorf("row 0 does not run into row 1: got %d, want 77", got)
	}
}

func TestImage_Row(t *testing.T) {
	img := NewPaddedImage[uint8](10, 5, 2)

	row0 := img.Row(0)
	if len(row0) != 10 || cap(row0) != 10 {
		t.Fatalf("Row(0): got len %d cap %d, want 10 and 10", len(row0), cap(row0))
	}
	for i := range 10 {
		row0[i] = uint8(i)
	}
	for i := range 10 {
		if got := img.At(i, 0); got != uint8(i) {
			t.Errorf("At(%d, 0): got %v, want %v", i, got, i)
		}
	}

	row1 := img.Row(1)
	row1[0] = 99
	if row0[0] == 99 {
		t.Error("Rows should be independent")
	}

	if img.Row(-1) != nil {
		t.Error("Row(-1) should return nil")
	}
	if img.Row(5) != nil {
		t.Error("Row(5) should return nil")
	}
}

func TestImage_AtSet(t *testing.T) {
	img := NewImage[int16](8, 8)

	img.Set(3, 4, -42)
	if got := img.At(3, 4); got != -42 {
		t.Errorf("At(3,4): got %v, want -42", got)
	}

	// Out of bounds is ignored on write and zero on read.
	img.Set(-1, 0, 5)
	img.Set(8, 0, 5)
	if got := img.At(100, 100); got != 0 {
		t.Errorf("At out of bounds: got %v, want 0", got)
	}
}

func TestImage_FillKeepsGuards(t *testing.T) {
	img := NewPaddedImage[uint8](5, 2, 3)
	img.Fill(200)

	buf := img.Buffer()
	for i, v := range buf {
		inside := i >= 3 && i < 3+10
		if inside && v != 200 {
			t.Errorf("pixel %d: got %d, want 200", i, v)
		}
		if !inside && v != 0 {
			t.Errorf("guard %d: got %d, want 0", i, v)
		}
	}

	img.Clear()
	for i, v := range img.Pixels() {
		if v != 0 {
			t.Errorf("Clear: pixel %d: got %d, want 0", i, v)
		}
	}
}

func TestImage_Clone(t *testing.T) {
	img := NewPaddedImage[uint8](6, 2, 4)
	img.Set(1, 1, 9)

	clone := img.Clone()
	if !SameSize(img, clone) || clone.Pad() != img.Pad() {
		t.Fatal("Clone changed geometry")
	}
	if clone.At(1, 1) != 9 {
		t.Errorf("Clone: got %d, want 9", clone.At(1, 1))
	}

	clone.Set(1, 1, 10)
	if img.At(1, 1) != 9 {
		t.Error("Clone shares storage with the original")
	}
}

func TestSameSize(t *testing.T) {
	a := NewImage[uint8](4, 4)
	b := NewPaddedImage[int16](4, 4, 8)
	c := NewImage[uint8](4, 5)

	if !SameSize(a, b) {
		t.Error("SameSize ignores pad and type: want true")
	}
	if SameSize(a, c) {
		t.Error("SameSize(4x4, 4x5): want false")
	}
}
