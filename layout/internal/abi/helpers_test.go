package abi

import (
	"math"
	"testing"
)

func TestAlignTo(t *testing.T) {
	tests := []struct {
		name   string
		offset uint32
		align  uint32
		want   uint32
	}{
		{"zero_offset", 0, 8, 0},
		{"already_aligned", 16, 8, 16},
		{"round_up", 1, 8, 8},
		{"round_up_two", 3, 2, 4},
		{"align_one", 7, 1, 7},
		{"align_zero", 7, 0, 7},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := AlignTo(tc.offset, tc.align); got != tc.want {
				t.Errorf("AlignTo(%d, %d) = %d, want %d", tc.offset, tc.align, got, tc.want)
			}
		})
	}
}

func TestSafeMulU32(t *testing.T) {
	if v, ok := SafeMulU32(512, 4); !ok || v != 2048 {
		t.Errorf("got (%d, %v)", v, ok)
	}
	if _, ok := SafeMulU32(math.MaxUint32, 2); ok {
		t.Error("overflow not detected")
	}
	if v, ok := SafeMulU32(math.MaxUint32, 0); !ok || v != 0 {
		t.Errorf("multiply by zero: got (%d, %v)", v, ok)
	}
}

func TestSafeAddU32(t *testing.T) {
	if v, ok := SafeAddU32(536, 8); !ok || v != 544 {
		t.Errorf("got (%d, %v)", v, ok)
	}
	if _, ok := SafeAddU32(math.MaxUint32, 1); ok {
		t.Error("overflow not detected")
	}
}
