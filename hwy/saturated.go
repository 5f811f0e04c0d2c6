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

package hwy

import "unsafe"

// SaturatedAdd adds two vectors with saturation.
// For unsigned types, the result is clamped to [0, max].
// For signed types, the result is clamped to [min, max].
func SaturatedAdd[T Integers](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	for i := range n {
		result[i] = saturate[T](int64(a.data[i]) + int64(b.data[i]))
	}
	return Vec[T]{data: result}
}

// SaturatedSub subtracts two vectors with saturation.
// For unsigned types, the result is clamped to [0, max].
// For signed types, the result is clamped to [min, max].
func SaturatedSub[T Integers](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	for i := range n {
		result[i] = saturate[T](int64(a.data[i]) - int64(b.data[i]))
	}
	return Vec[T]{data: result}
}

// MulFixedPoint15 multiplies Q15 fixed-point lanes with rounding:
// (a*b + (1<<14)) >> 15. The only overflowing input, -32768 * -32768,
// wraps to -32768 as on x86 (PMULHRSW) hardware.
//
// Multiplying by 1<<k divides by 1<<(15-k) with round-half-up, so
// MulFixedPoint15(x, Set(256)) == (x + 64) >> 7.
func MulFixedPoint15(a, b Vec[int16]) Vec[int16] {
	n := min(len(a.data), len(b.data))
	result := make([]int16, n)
	for i := range n {
		prod := int32(a.data[i]) * int32(b.data[i])
		result[i] = int16((prod + 1<<14) >> 15)
	}
	return Vec[int16]{data: result}
}

// SatWidenMulPairwiseAdd multiplies unsigned bytes by signed bytes and adds
// adjacent products into saturated int16 lanes:
//
//	out[i] = sat16(a[2i]*b[2i] + a[2i+1]*b[2i+1])
//
// This is the PMADDUBSW instruction. Sixteen byte lanes produce eight int16
// lanes.
func SatWidenMulPairwiseAdd(a Vec[uint8], b Vec[int8]) Vec[int16] {
	n := min(len(a.data), len(b.data)) / 2
	result := make([]int16, n)
	for i := range n {
		lo := int64(a.data[2*i]) * int64(b.data[2*i])
		hi := int64(a.data[2*i+1]) * int64(b.data[2*i+1])
		result[i] = saturate[int16](lo + hi)
	}
	return Vec[int16]{data: result}
}

// saturate clamps x to the range of T.
func saturate[T Integers](x int64) T {
	lo, hi := limits[T]()
	if x < lo {
		return T(lo)
	}
	if x > hi {
		return T(hi)
	}
	return T(x)
}

// limits returns the smallest and largest values representable by T.
func limits[T Integers]() (lo, hi int64) {
	var zero T
	bits := uint(unsafe.Sizeof(zero)) * 8
	if zero-1 < zero {
		// signed
		return -(1 << (bits - 1)), 1<<(bits-1) - 1
	}
	return 0, 1<<bits - 1
}
