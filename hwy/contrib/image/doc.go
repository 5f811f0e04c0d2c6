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

// Package image provides pixel blocks for row filters and the sources that
// fill them.
//
// Image[T] stores a single-channel block of contiguous rows with zeroed guard
// samples around it, so vector kernels may over-read by a fixed margin.
//
// # Pixel Sources
//
// Test blocks come from a bit-exact port of the C library's rand_r:
//
//	img := image.NewRandomImage(0xabc, 64, 8, 16) // seed, width, height, pad
//
// Real frames come from any demuxer that implements FrameReader:
//
//	err := image.FillFromFrames(img, reader)
package image
