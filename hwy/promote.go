package hwy

// This file provides pure Go (scalar) implementations of type promotion and
// demotion. Demotions saturate to the narrower type's range.

// PromoteLowerU8ToI16 zero-extends the lower half of a byte vector to int16.
func PromoteLowerU8ToI16(v Vec[uint8]) Vec[int16] {
	n := len(v.data) / 2
	result := make([]int16, n)
	for i := range n {
		result[i] = int16(v.data[i])
	}
	return Vec[int16]{data: result}
}

// PromoteUpperU8ToI16 zero-extends the upper half of a byte vector to int16.
func PromoteUpperU8ToI16(v Vec[uint8]) Vec[int16] {
	n := len(v.data) / 2
	result := make([]int16, n)
	for i := range n {
		result[i] = int16(v.data[n+i])
	}
	return Vec[int16]{data: result}
}

// DemoteTwoI16ToU8 packs two int16 vectors into one uint8 vector with
// unsigned saturation: lanes of lo fill the lower half, lanes of hi the upper
// half. This is the PACKUSWB instruction.
func DemoteTwoI16ToU8(lo, hi Vec[int16]) Vec[uint8] {
	result := make([]uint8, len(lo.data)+len(hi.data))
	for i, x := range lo.data {
		result[i] = saturate[uint8](int64(x))
	}
	for i, x := range hi.data {
		result[len(lo.data)+i] = saturate[uint8](int64(x))
	}
	return Vec[uint8]{data: result}
}
