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

package harness

import (
	"fmt"

	"github.com/ajroetker/go-subpel/hwy/contrib/image"
)

// Mismatch locates the first differing pixel of two output blocks.
type Mismatch struct {
	Row, Col  int
	Want, Got uint8
}

// String renders the two-line diagnostic the harness prints.
func (m *Mismatch) String() string {
	return fmt.Sprintf("Not bit-exact on index %d (row %d)\nExpected: 0x%x, Actual: 0x%x",
		m.Col, m.Row, m.Want, m.Got)
}

// Compare scans want and got row-major and returns the first difference, or
// nil when they are equal. Images of different sizes are a programming error
// and panic.
func Compare(want, got *image.Image[uint8]) *Mismatch {
	if !image.SameSize(want, got) {
		panic(fmt.Sprintf("harness: comparing %dx%d block with %dx%d block",
			want.Width(), want.Height(), got.Width(), got.Height()))
	}
	for y := 0; y < want.Height(); y++ {
		wr, gr := want.Row(y), got.Row(y)
		for x := range wr {
			if wr[x] != gr[x] {
				return &Mismatch{Row: y, Col: x, Want: wr[x], Got: gr[x]}
			}
		}
	}
	return nil
}
