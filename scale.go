package floatg

import (
	"math/bits"

	"github.com/shogo82148/int128"
)

// pow5[i] is 5^i; 5^55 is the largest power of five below 2^128.
var pow5 [56]int128.Uint128

func init() {
	five := int128.Uint128{L: 5}
	pow5[0] = int128.Uint128{L: 1}
	for i := 1; i < len(pow5); i++ {
		pow5[i] = pow5[i-1].Mul(five)
	}
}

// scale returns floor(mant * 2^exp2 * 10^k) and classifies the discarded remainder. The computation is exact, the caller must choose k such that the result fits in 64 bits and |k| < 56.
func scale(mant uint64, exp2, k int) (uint64, remainder) {
	if k >= 0 {
		return scaleUp(mant, exp2, k)
	}
	return scaleDown(mant, exp2, k)
}

// scaleUp multiplies by 5^k into a 192-bit product and shifts by 2^(exp2+k).
func scaleUp(mant uint64, exp2, k int) (uint64, remainder) {
	p := pow5[k]
	hiL, a0 := bits.Mul64(mant, p.L)
	hiH, loH := bits.Mul64(mant, p.H)
	a1, carry := bits.Add64(hiL, loH, 0)
	a := [3]uint64{a0, a1, hiH + carry}

	s := exp2 + k
	if s >= 0 {
		return a0 << uint(s), remZero
	}
	shift := uint(-s)
	whole := rsh192(a, shift)
	half := bit192(a, shift-1) == 1
	rest := lowBitsZero(a, shift-1)
	switch {
	case half && rest:
		return whole, remHalf
	case half:
		return whole, remAboveHalf
	case rest:
		return whole, remZero
	}
	return whole, remBelowHalf
}

// scaleDown divides mant*2^exp2 by 10^-k using 128-bit integers.
func scaleDown(mant uint64, exp2, k int) (uint64, remainder) {
	num := int128.Uint128{L: mant}
	den := pow5[-k]
	if s := exp2 + k; s >= 0 {
		num = lsh128(num, uint(s))
	} else {
		den = lsh128(den, uint(-s))
	}
	q, r := num.DivMod(den)
	if r == (int128.Uint128{}) {
		return q.L, remZero
	}
	switch c := r.Add(r).Cmp(den); {
	case c < 0:
		return q.L, remBelowHalf
	case c == 0:
		return q.L, remHalf
	}
	return q.L, remAboveHalf
}

func lsh128(x int128.Uint128, s uint) int128.Uint128 {
	if s >= 64 {
		return int128.Uint128{H: x.L << (s - 64)}
	}
	return int128.Uint128{H: x.H<<s | x.L>>(64-s), L: x.L << s}
}

// rsh192 returns the low 64 bits of a >> s, a is little-endian.
func rsh192(a [3]uint64, s uint) uint64 {
	w, b := s/64, s%64
	if w >= 3 {
		return 0
	}
	lo := a[w] >> b
	if w+1 < 3 {
		lo |= a[w+1] << (64 - b)
	}
	return lo
}

func bit192(a [3]uint64, i uint) uint64 {
	if i >= 192 {
		return 0
	}
	return a[i/64] >> (i % 64) & 1
}

// lowBitsZero reports whether the lowest n bits of a are all zero.
func lowBitsZero(a [3]uint64, n uint) bool {
	for _, w := range a {
		if n == 0 {
			return true
		}
		if n < 64 {
			return w&(1<<n-1) == 0
		}
		if w != 0 {
			return false
		}
		n -= 64
	}
	return true
}
