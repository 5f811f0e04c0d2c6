package hwy

import (
	"reflect"
	"testing"
)

func TestBitCastI16ToI32(t *testing.T) {
	v := Vec[int16]{data: []int16{1, 0, -1, -1, 0, 1, -2, 0x7fff}}
	got := BitCastI16ToI32(v)

	want := []int32{1, -1, 1 << 16, 0x7fff<<16 | 0xfffe}
	if !reflect.DeepEqual(got.data, want) {
		t.Errorf("BitCastI16ToI32 = %#x, want %#x", got.data, want)
	}
}

func TestBitCastRoundTrip(t *testing.T) {
	v := Vec[int16]{data: []int16{-32768, 32767, -1, 0, 12, -12, 300, -300}}
	back := BitCastI32ToI16(BitCastI16ToI32(v))
	if !reflect.DeepEqual(back.data, v.data) {
		t.Errorf("round trip = %v, want %v", back.data, v.data)
	}
}

func TestBitCastU8ToI8(t *testing.T) {
	v := Vec[uint8]{data: []uint8{0, 1, 127, 128, 255}}
	got := BitCastU8ToI8(v)
	want := []int8{0, 1, 127, -128, -1}
	if !reflect.DeepEqual(got.data, want) {
		t.Errorf("BitCastU8ToI8 = %v, want %v", got.data, want)
	}
}
