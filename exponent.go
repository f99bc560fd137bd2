package floatg

import "math"

// log10Epsilon keeps exact powers of ten whose logarithm evaluates just below an integer in the right decade.
const log10Epsilon = 1e-15

// decompose splits a positive finite f into mant * 2^exp2 with mant < 2^24. Subnormals have fewer mantissa bits.
func decompose(f float32) (uint32, int) {
	fr, exp := math.Frexp(float64(f))
	return uint32(fr * (1 << 24)), exp - 24
}

// decimalExponent returns e such that 10^e <= f < 10^(e+1), where f = mant * 2^exp2 is positive and finite. The logarithm gives an estimate that is corrected by exact bracketing.
func decimalExponent(f float32, mant uint32, exp2 int) int {
	e := int(math.Floor(math.Log10(float64(f)) + log10Epsilon))
	for {
		t, _ := scale(uint64(mant), exp2, -e)
		switch {
		case t == 0:
			e--
		case 10 <= t:
			e++
		default:
			return e
		}
	}
}
