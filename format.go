// Package floatg formats float32 values exactly as printf("%g") does at its default precision of six significant digits, without going through a general-purpose formatter.
package floatg

import (
	"io"
	"math"
)

// Write writes the %g rendering of f to the start of dst and returns the number of bytes written. dst must hold at least MaxLen bytes. Both zeros render as "0", NaN as "nan" and infinities as "inf" and "-inf".
func Write(dst []byte, f float32) int {
	if f == 0.0 {
		dst[0] = '0'
		return 1
	}

	f64 := float64(f)
	if math.IsNaN(f64) {
		return copy(dst, "nan")
	} else if math.IsInf(f64, 1) {
		return copy(dst, "inf")
	} else if math.IsInf(f64, -1) {
		return copy(dst, "-inf")
	}

	if f < 0.0 {
		dst[0] = '-'
		return 1 + Format(dst[1:], -f)
	}
	return Format(dst, f)
}

// AppendFloat appends the %g rendering of f to dst.
func AppendFloat(dst []byte, f float32) []byte {
	var buf [MaxLen]byte
	n := Write(buf[:], f)
	return append(dst, buf[:n]...)
}

// FormatFloat returns the %g rendering of f.
func FormatFloat(f float32) string {
	var buf [MaxLen]byte
	n := Write(buf[:], f)
	return string(buf[:n])
}

// WriteFloat writes the %g rendering of f to w.
func WriteFloat(w io.Writer, f float32) (int, error) {
	var buf [MaxLen]byte
	n := Write(buf[:], f)
	return w.Write(buf[:n])
}
