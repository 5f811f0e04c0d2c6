package hwy

import (
	"os"
	"strconv"
	"unsafe"
)

// DispatchLevel represents the instruction set available to hand-tuned kernels.
type DispatchLevel int

const (
	// DispatchScalar indicates no SIMD, pure Go implementation.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates SSE2 instructions (x86-64 baseline).
	DispatchSSE2

	// DispatchSSSE3 indicates SSSE3 instructions (byte multiply-add, rounding multiply).
	DispatchSSSE3

	// DispatchNEON indicates ARM NEON instructions (128-bit SIMD).
	DispatchNEON
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchSSSE3:
		return "ssse3"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// vectorBytes is the width of every Vec. The kernels built on hwy are
// 128-bit algorithms, so the width does not follow the dispatch level.
const vectorBytes = 16

// currentLevel is the detected SIMD level for this runtime.
// Set by init() in dispatch_*.go files.
var currentLevel DispatchLevel

// currentWidth is the SIMD register width in bytes for the current level.
// Set by init() in dispatch_*.go files.
var currentWidth int

// currentName is the human-readable name of the current SIMD level.
// Set by init() in dispatch_*.go files.
var currentName string

// CurrentLevel returns the SIMD instruction set being used.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the SIMD register width in bytes.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns a human-readable name for the current SIMD target.
// For example: "ssse3", "neon", "scalar".
func CurrentName() string {
	return currentName
}

// HasSSSE3 reports whether SSSE3 kernels may be used. It is false when
// HWY_NO_SIMD is set, even on CPUs that support the instructions.
func HasSSSE3() bool {
	return currentLevel == DispatchSSSE3
}

// NoSimdEnv checks if the HWY_NO_SIMD environment variable is set.
// When set, hwy reports scalar mode regardless of CPU capabilities.
// This is useful for testing and debugging.
func NoSimdEnv() bool {
	val := os.Getenv("HWY_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// MaxLanes returns the number of lanes of type T in one vector.
//
//   - uint8, int8: 16 lanes
//   - uint16, int16: 8 lanes
//   - uint32, int32: 4 lanes
func MaxLanes[T Lanes]() int {
	var dummy T
	return vectorBytes / int(unsafe.Sizeof(dummy))
}

func setScalarMode() {
	currentLevel = DispatchScalar
	currentWidth = vectorBytes
	currentName = DispatchScalar.String()
}
