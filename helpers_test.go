package floatg

import (
	"math"
	"math/rand/v2"
	"strconv"
)

// reference is the %g rendering of f by the standard library.
func reference(f float32) string {
	switch {
	case f == 0.0:
		return "0"
	case math.IsNaN(float64(f)):
		return "nan"
	case math.IsInf(float64(f), 1):
		return "inf"
	case math.IsInf(float64(f), -1):
		return "-inf"
	}
	return strconv.FormatFloat(float64(f), 'g', Precision, 32)
}

// RandomFloat returns a positive value from one of four distributions: uniform up to 1e6, integers below 1e6, k*10^j and x/100*10^j.
func RandomFloat(r *rand.Rand) float32 {
	for {
		var f float32
		switch r.IntN(4) {
		case 0:
			f = r.Float32() * 1e6
		case 1:
			f = float32(r.IntN(1000000))
		case 2:
			f = float32(r.IntN(1000)+1) * float32(math.Pow10(r.IntN(20)-10))
		case 3:
			f = float32(r.IntN(1000000)) / 100.0 * float32(math.Pow10(r.IntN(10)-5))
		}
		if 0.0 < f && !math.IsInf(float64(f), 0) {
			return f
		}
	}
}
