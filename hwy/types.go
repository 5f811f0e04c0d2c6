// Package hwy provides portable 128-bit lane vectors with runtime CPU dispatch.
//
// It follows the Highway C++ library's design philosophy: kernels are written
// once against a small set of lane operations (load, store, multiply-add,
// shuffles, min/max, saturating arithmetic) and the package reports which
// instruction set the current CPU offers so callers can swap in a hand-tuned
// routine. The operations in this package are the scalar fallback: they are
// always available, work on every GOARCH, and define the exact lane semantics
// the hardware routines must reproduce.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-subpel/hwy"
//
//	px := hwy.Load(pixels[i:])                        // 16 x uint8
//	sums := hwy.SatWidenMulPairwiseAdd(px, coeffs)    // 8 x int16
//	hwy.Store(hwy.DemoteTwoI16ToU8(sums, sums), out)
package hwy

// SignedInts is a constraint for signed integer lane types.
type SignedInts interface {
	~int8 | ~int16 | ~int32
}

// UnsignedInts is a constraint for unsigned integer lane types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32
}

// Integers is a constraint for all integer lane types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in lanes.
// Pixel kernels are fixed point, so only integers are supported.
type Lanes interface {
	Integers
}

// Vec is a portable vector handle holding one 128-bit register worth of lanes.
// In base (scalar) mode, it wraps a slice.
//
// Vec instances should not be created directly; use Load, Set, or Zero instead.
type Vec[T Lanes] struct {
	data []T
}

// NumLanes returns the number of lanes (elements) in this vector.
func (v Vec[T]) NumLanes() int {
	return len(v.data)
}

// Data returns the underlying slice representation of the vector.
// This is primarily for testing and should not be used in performance-critical code.
func (v Vec[T]) Data() []T {
	return v.data
}

// Store writes the vector's data to a slice.
// This is the method form of the hwy.Store function.
func (v Vec[T]) Store(dst []T) {
	Store(v, dst)
}
