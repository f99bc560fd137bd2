package floatg

import (
	"fmt"
	"testing"

	"github.com/tdewolff/test"
)

func TestRoundHalfEven32(t *testing.T) {
	tests := []struct {
		x float64
		r uint32
	}{
		{0.0, 0},
		{0.25, 0},
		{0.5, 0},
		{0.75, 1},
		{1.5, 2},
		{2.5, 2},
		{3.5, 4},
		{10.5, 10},
		{11.5, 12},
		{11.4999, 11},
		{11.5001, 12},
		{999999.5, 1000000},
		{999998.5, 999998},
		{4294967294.5, 4294967294},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.x), func(t *testing.T) {
			test.T(t, RoundHalfEven32(tt.x), tt.r)
		})
	}
}

func TestRoundHalfEven64(t *testing.T) {
	tests := []struct {
		x float64
		r uint64
	}{
		{0.5, 0},
		{1.5, 2},
		{6.5, 6},
		{7.5, 8},
		{123456.25, 123456},
		{123456.75, 123457},
		{1<<40 + 0.5, 1 << 40},
		{1<<40 + 1.5, 1<<40 + 2},
		{1 << 60, 1 << 60},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.x), func(t *testing.T) {
			test.T(t, RoundHalfEven64(tt.x), tt.r)
		})
	}
}

func TestRoundHalfEvenTies(t *testing.T) {
	for v := uint32(0); v < 1000; v++ {
		x := float64(v) + 0.5
		even := v
		if v%2 == 1 {
			even = v + 1
		}
		test.T(t, RoundHalfEven32(x), even, x)
		test.T(t, RoundHalfEven64(x), uint64(even), x)
	}
}

func TestRoundHalfEvenRemainder(t *testing.T) {
	test.T(t, roundHalfEven(4, remZero), uint64(4))
	test.T(t, roundHalfEven(4, remBelowHalf), uint64(4))
	test.T(t, roundHalfEven(4, remHalf), uint64(4))
	test.T(t, roundHalfEven(5, remHalf), uint64(6))
	test.T(t, roundHalfEven(4, remAboveHalf), uint64(5))
}
