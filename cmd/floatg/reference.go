package main

import (
	"math"
	stdstrconv "strconv"

	floatg "github.com/creacentblue/float-to-g"
)

// reference renders f with the standard library, which rounds the exact binary value half to even like printf("%g"). Zeros and non-finite values follow the C spelling.
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
	return stdstrconv.FormatFloat(float64(f), 'g', floatg.Precision, 32)
}

func appendReference(dst []byte, f float32) []byte {
	return stdstrconv.AppendFloat(dst, float64(f), 'g', floatg.Precision, 32)
}
