package floatg

// remainder classifies the part discarded by truncation relative to one half.
type remainder int8

const (
	remZero remainder = iota
	remBelowHalf
	remHalf
	remAboveHalf
)

func classify(frac float64) remainder {
	switch {
	case frac == 0.0:
		return remZero
	case frac < 0.5:
		return remBelowHalf
	case frac == 0.5:
		return remHalf
	}
	return remAboveHalf
}

// roundHalfEven rounds t plus a discarded remainder r to the nearest integer, breaking ties towards the even neighbour.
func roundHalfEven(t uint64, r remainder) uint64 {
	if r == remAboveHalf || r == remHalf && t&1 == 1 {
		return t + 1
	}
	return t
}

// RoundHalfEven32 rounds a non-negative x to the nearest integer, ties to even. x must be smaller than 2^32.
func RoundHalfEven32(x float64) uint32 {
	t := uint32(x)
	return uint32(roundHalfEven(uint64(t), classify(x-float64(t))))
}

// RoundHalfEven64 rounds a non-negative x to the nearest integer, ties to even. x must be smaller than 2^64.
func RoundHalfEven64(x float64) uint64 {
	t := uint64(x)
	return roundHalfEven(t, classify(x-float64(t)))
}
