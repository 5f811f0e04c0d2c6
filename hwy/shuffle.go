package hwy

// This file provides shuffle and permutation operations for vectors.
// These are pure Go (scalar) implementations that work with any lane type.

// GetLane returns the value of a single lane.
func GetLane[T Lanes](v Vec[T], idx int) T {
	if idx < 0 || idx >= len(v.data) {
		var zero T
		return zero
	}
	return v.data[idx]
}

// Broadcast returns a vector with every lane set to v[lane].
func Broadcast[T Lanes](v Vec[T], lane int) Vec[T] {
	return Set(GetLane(v, lane))
}

// InterleaveLower interleaves the lower halves of two vectors.
// [a0,a1,a2,a3], [b0,b1,b2,b3] -> [a0,b0,a1,b1]
func InterleaveLower[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	half := n / 2
	result := make([]T, n)
	for i := range half {
		result[2*i] = a.data[i]
		result[2*i+1] = b.data[i]
	}
	return Vec[T]{data: result}
}

// InterleaveUpper interleaves the upper halves of two vectors.
// [a0,a1,a2,a3], [b0,b1,b2,b3] -> [a2,b2,a3,b3]
func InterleaveUpper[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	half := n / 2
	result := make([]T, n)
	for i := range half {
		result[2*i] = a.data[half+i]
		result[2*i+1] = b.data[half+i]
	}
	return Vec[T]{data: result}
}

// SlideUpLanes shifts all lanes up (toward higher indices) by the given offset.
// Lower lanes are filled with zeros, upper lanes that slide out are discarded.
// [1,2,3,4,5,6,7,8] with offset=2 -> [0,0,1,2,3,4,5,6]
func SlideUpLanes[T Lanes](v Vec[T], offset int) Vec[T] {
	n := len(v.data)
	result := make([]T, n)
	switch {
	case offset <= 0:
		copy(result, v.data)
	case offset < n:
		copy(result[offset:], v.data[:n-offset])
	}
	return Vec[T]{data: result}
}

// SlideDownLanes shifts all lanes down (toward lower indices) by the given offset.
// Upper lanes are filled with zeros, lower lanes that slide out are discarded.
// [1,2,3,4,5,6,7,8] with offset=2 -> [3,4,5,6,7,8,0,0]
//
// On int16 lanes this is the byte shift PSRLDQ by 2*offset.
func SlideDownLanes[T Lanes](v Vec[T], offset int) Vec[T] {
	n := len(v.data)
	result := make([]T, n)
	switch {
	case offset <= 0:
		copy(result, v.data)
	case offset < n:
		copy(result[:n-offset], v.data[offset:])
	}
	return Vec[T]{data: result}
}
