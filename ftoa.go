package floatg

// Precision is the number of significant digits, the default precision of %g.
const Precision = 6

// MaxLen is a buffer size that fits any rendering of a float32, sign included.
const MaxLen = 32

var float64pow10 = [...]float64{1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9}

var uint32pow10 = [...]uint32{1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6}

// Format writes the %g rendering of the magnitude f to the start of dst and returns the number of bytes written. f must be finite and not negative, dst must hold at least MaxLen bytes.
func Format(dst []byte, f float32) int {
	if f == 0.0 {
		dst[0] = '0'
		return 1
	}

	mant, exp2 := decompose(f)
	e := decimalExponent(f, mant, exp2)
	if e < -4 || Precision <= e {
		return formatScientific(dst, mant, exp2, e)
	}
	return formatFixed(dst, float64(f), e)
}

// formatFixed writes f without exponent, 10^e <= f < 10^(e+1) and -4 <= e < Precision. Since f has 24 significant bits and need <= 9, the split into integer and fraction and the scaling of the fraction are exact in float64.
func formatFixed(dst []byte, f float64, e int) int {
	need := Precision - (e + 1)
	if need <= 0 {
		u := RoundHalfEven32(f)
		if u == uint32pow10[Precision] {
			// rounded up into the next decade
			return formatPowerOfTen(dst, e+1)
		}
		return FormatUint32(dst, u)
	}

	intPart := uint32(f)
	mult := float64pow10[need]
	frac := RoundHalfEven64((f - float64(intPart)) * mult)
	if uint64(mult) <= frac {
		frac = 0
		intPart++
	}
	n := FormatUint32(dst, intPart)
	return n + formatFraction(dst[n:], frac, need)
}

// formatScientific writes mant*2^exp2 as d.ddddde±xx, where 10^e <= mant*2^exp2 < 10^(e+1).
func formatScientific(dst []byte, mant uint32, exp2, e int) int {
	digits := uint32(roundHalfEven(scale(uint64(mant), exp2, Precision-1-e)))
	if digits == uint32pow10[Precision] {
		digits /= 10
		e++
		if -4 <= e && e < Precision {
			// rounded up into the fixed range
			return formatPowerOfTen(dst, e)
		}
	}

	lead := uint32pow10[Precision-1]
	n := FormatUint32(dst, digits/lead)
	n += formatFraction(dst[n:], uint64(digits%lead), Precision-1)
	return n + formatExponent(dst[n:], e)
}

// formatFraction writes a decimal point followed by frac as width digits with leading zeros, and drops trailing zeros. Nothing is written when frac is zero.
func formatFraction(dst []byte, frac uint64, width int) int {
	if frac == 0 {
		return 0
	}
	var buf [20]byte
	m := FormatUint64(buf[:], frac)
	dst[0] = '.'
	n := 1
	for ; n <= width-m; n++ {
		dst[n] = '0'
	}
	n += copy(dst[n:], buf[:m])
	for dst[n-1] == '0' {
		n--
	}
	return n
}

// formatExponent writes e±dd, using at least two exponent digits.
func formatExponent(dst []byte, e int) int {
	dst[0] = 'e'
	if e < 0 {
		dst[1] = '-'
		e = -e
	} else {
		dst[1] = '+'
	}
	if e < 10 {
		dst[2] = '0'
		dst[3] = byte('0' + e)
		return 4
	}
	return 2 + FormatUint32(dst[2:], uint32(e))
}

// formatPowerOfTen writes 10^e as %g does.
func formatPowerOfTen(dst []byte, e int) int {
	if e < -4 || Precision <= e {
		dst[0] = '1'
		return 1 + formatExponent(dst[1:], e)
	} else if 0 <= e {
		return FormatUint32(dst, uint32pow10[e])
	}
	dst[0] = '0'
	dst[1] = '.'
	n := 2
	for i := 0; i < -e-1; i++ {
		dst[n] = '0'
		n++
	}
	dst[n] = '1'
	return n + 1
}
