//go:build !amd64 || purego

package convolve

func ssse3Available() bool {
	return false
}

// horizW4SSSE3Block is never selected on this platform; it runs the lane
// kernel so the width table stays complete.
func horizW4SSSE3Block(dst, src []uint8, pos int, s *Spec) {
	horizW4Lanes(dst, src, pos, s)
}
