package floatg

import (
	"math"

	"github.com/tdewolff/minify/v2"
)

// AppendCompact appends the shortest text that parses to the same number as the %g rendering of f, such as ".5" for 0.5 and "1e6" for 1e+06. This is suited for SVG and CSS output. Infinities and NaN are appended as by AppendFloat.
func AppendCompact(dst []byte, f float32) []byte {
	if f64 := float64(f); math.IsNaN(f64) || math.IsInf(f64, 0) {
		return AppendFloat(dst, f)
	}
	var buf [MaxLen]byte
	n := Write(buf[:], f)
	return append(dst, minify.Number(buf[:n], Precision)...)
}
