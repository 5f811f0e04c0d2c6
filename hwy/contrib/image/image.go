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

package image

import (
	"github.com/ajroetker/go-subpel/hwy"
)

// Image is a single-channel 2D array of contiguous rows (stride == width)
// surrounded by pad zero-valued guard samples before the first row and after
// the last one.
//
// Filters address the image as (Buffer(), Offset(y)) pairs so that a kernel
// may read a few samples left of a row start or past a row end. Reads past a
// row end land in the next row, and reads around the block land in the guards.
type Image[T hwy.Lanes] struct {
	data   []T
	width  int
	height int
	pad    int
}

// NewImage creates a new image with the specified dimensions and no guards.
func NewImage[T hwy.Lanes](width, height int) *Image[T] {
	return NewPaddedImage[T](width, height, 0)
}

// NewPaddedImage creates a new image with pad guard samples on both sides of
// the pixel block. Non-positive dimensions produce an empty image that still
// carries its guards.
func NewPaddedImage[T hwy.Lanes](width, height, pad int) *Image[T] {
	if width <= 0 || height <= 0 {
		width, height = 0, 0
	}
	pad = max(pad, 0)
	return &Image[T]{
		data:   make([]T, width*height+2*pad),
		width:  width,
		height: height,
		pad:    pad,
	}
}

// Width returns the image width in pixels.
func (img *Image[T]) Width() int {
	return img.width
}

// Height returns the image height in pixels.
func (img *Image[T]) Height() int {
	return img.height
}

// Stride returns the number of elements between the starts of two rows.
func (img *Image[T]) Stride() int {
	return img.width
}

// Pad returns the number of guard samples on each side of the pixel block.
func (img *Image[T]) Pad() int {
	return img.pad
}

// Buffer returns the full backing slice, guards included.
func (img *Image[T]) Buffer() []T {
	return img.data
}

// Offset returns the index of the first sample of row y inside Buffer.
func (img *Image[T]) Offset(y int) int {
	return img.pad + y*img.width
}

// Row returns a mutable slice for the specified row, limited to the image
// width. It returns nil for rows outside the image.
func (img *Image[T]) Row(y int) []T {
	if y < 0 || y >= img.height {
		return nil
	}
	start := img.Offset(y)
	return img.data[start : start+img.width : start+img.width]
}

// Pixels returns the pixel block without the guards, row-major.
func (img *Image[T]) Pixels() []T {
	return img.data[img.pad : img.pad+img.width*img.height]
}

// At returns the value at position (x, y).
func (img *Image[T]) At(x, y int) T {
	if x < 0 || x >= img.width || y < 0 || y >= img.height {
		var zero T
		return zero
	}
	return img.data[img.Offset(y)+x]
}

// Set sets the value at position (x, y).
func (img *Image[T]) Set(x, y int, value T) {
	if x < 0 || x >= img.width || y < 0 || y >= img.height {
		return
	}
	img.data[img.Offset(y)+x] = value
}

// SameSize returns true if both images have the same dimensions.
func SameSize[T, U hwy.Lanes](a *Image[T], b *Image[U]) bool {
	return a.width == b.width && a.height == b.height
}

// Clone creates a deep copy of the image, guards included.
func (img *Image[T]) Clone() *Image[T] {
	clone := &Image[T]{
		data:   make([]T, len(img.data)),
		width:  img.width,
		height: img.height,
		pad:    img.pad,
	}
	copy(clone.data, img.data)
	return clone
}

// Clear sets all pixels to zero.
func (img *Image[T]) Clear() {
	clear(img.Pixels())
}

// Fill sets all pixels to the specified value. Guards stay zero.
func (img *Image[T]) Fill(value T) {
	px := img.Pixels()
	for i := range px {
		px[i] = value
	}
}
