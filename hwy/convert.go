package hwy

// This file provides bit casts between lane widths. Lanes are laid out
// little-endian, as in an x86 or ARM vector register, so lane 2i of an int16
// vector holds the low half of lane i of the int32 view.

// BitCastI16ToI32 reinterprets eight int16 lanes as four int32 lanes.
func BitCastI16ToI32(v Vec[int16]) Vec[int32] {
	n := len(v.data) / 2
	result := make([]int32, n)
	for i := range n {
		lo := uint32(uint16(v.data[2*i]))
		hi := uint32(uint16(v.data[2*i+1]))
		result[i] = int32(lo | hi<<16)
	}
	return Vec[int32]{data: result}
}

// BitCastI32ToI16 reinterprets four int32 lanes as eight int16 lanes.
func BitCastI32ToI16(v Vec[int32]) Vec[int16] {
	result := make([]int16, 2*len(v.data))
	for i, x := range v.data {
		result[2*i] = int16(uint32(x))
		result[2*i+1] = int16(uint32(x) >> 16)
	}
	return Vec[int16]{data: result}
}

// BitCastU8ToI8 reinterprets byte lanes as signed bytes.
func BitCastU8ToI8(v Vec[uint8]) Vec[int8] {
	result := make([]int8, len(v.data))
	for i, x := range v.data {
		result[i] = int8(x)
	}
	return Vec[int8]{data: result}
}
