package image

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCRandMatchesRandR(t *testing.T) {
	// First ten rand_r(&seed) % 255 values from glibc.
	tests := []struct {
		seed uint32
		want []int32
	}{
		{0xabc, []int32{94, 112, 100, 101, 158, 104, 161, 97, 152, 143}},
		{0, []int32{134, 134, 17, 254, 243, 198, 254, 143, 215, 228}},
		{1, []int32{3, 37, 133, 191, 87, 134, 18, 218, 221, 252}},
		{12345, []int32{129, 47, 114, 162, 219, 196, 99, 221, 180, 44}},
	}
	for _, tt := range tests {
		rng := NewCRand(tt.seed)
		got := make([]int32, len(tt.want))
		for i := range got {
			got[i] = rng.Next() % 255
		}
		assert.Equal(t, tt.want, got, "seed %#x", tt.seed)
	}
}

func TestCRandRange(t *testing.T) {
	rng := NewCRand(7)
	for range 10000 {
		v := rng.Next()
		require.GreaterOrEqual(t, v, int32(0))
	}
}

func TestNewRandomImageDeterministic(t *testing.T) {
	a := NewRandomImage(0xabc, 64, 8, 16)
	b := NewRandomImage(0xabc, 64, 8, 16)
	require.Equal(t, a.Buffer(), b.Buffer())

	c := NewRandomImage(0xabd, 64, 8, 16)
	assert.NotEqual(t, a.Pixels(), c.Pixels())
}

func TestNewRandomImageFirstRow(t *testing.T) {
	img := NewRandomImage(0xabc, 4, 2, 16)
	assert.Equal(t, []uint8{94, 112, 100, 101}, img.Row(0))
	assert.Equal(t, []uint8{158, 104, 161, 97}, img.Row(1))

	// Guards are untouched.
	buf := img.Buffer()
	assert.Equal(t, make([]uint8, 16), buf[:16])
	assert.Equal(t, make([]uint8, 16), buf[len(buf)-16:])
}

func TestFillRandomNeverProduces255(t *testing.T) {
	img := NewImage[uint8](1920, 128)
	FillRandom(img, NewCRand(0))

	seen254 := false
	for _, v := range img.Pixels() {
		require.NotEqual(t, uint8(255), v)
		if v == 254 {
			seen254 = true
		}
	}
	assert.True(t, seen254, "254 should be reachable")
}
