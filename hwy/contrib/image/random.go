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

// CRand reproduces the reentrant rand_r generator of the GNU C library, so a
// seed yields the same pixel block as the C harness it replaces.
//
// Each draw advances a 32-bit linear congruential state three times and
// assembles 11+10+10 high-order bits into a 31-bit result.
//
// CRand is not safe for concurrent use; give each goroutine its own.
type CRand struct {
	state uint32
}

const (
	crandMul = 1103515245
	crandInc = 12345
)

// NewCRand returns a generator seeded like rand_r(&seed).
func NewCRand(seed uint32) *CRand {
	return &CRand{state: seed}
}

// Next returns the next value in [0, 2^31).
func (r *CRand) Next() int32 {
	next := r.state

	next = next*crandMul + crandInc
	result := (next >> 16) % 2048

	next = next*crandMul + crandInc
	result <<= 10
	result ^= (next >> 16) % 1024

	next = next*crandMul + crandInc
	result <<= 10
	result ^= (next >> 16) % 1024

	r.state = next
	return int32(result)
}

// FillRandom writes Next() % 255 into every pixel of img, row-major.
// Values lie in [0, 254]; 255 is never produced.
func FillRandom(img *Image[uint8], rng *CRand) {
	for y := 0; y < img.Height(); y++ {
		row := img.Row(y)
		for x := range row {
			row[x] = uint8(rng.Next() % 255)
		}
	}
}

// NewRandomImage returns a width x height block with pad guards, filled by a
// fresh generator seeded with seed. Two calls with the same arguments return
// byte-identical images.
func NewRandomImage(seed uint32, width, height, pad int) *Image[uint8] {
	img := NewPaddedImage[uint8](width, height, pad)
	FillRandom(img, NewCRand(seed))
	return img
}
