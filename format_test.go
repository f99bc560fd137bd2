package floatg

import (
	"bytes"
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestWrite(t *testing.T) {
	tests := []struct {
		f float32
		s string
	}{
		{0.0, "0"},
		{float32(math.Copysign(0.0, -1.0)), "0"},
		{float32(math.NaN()), "nan"},
		{-float32(math.NaN()), "nan"},
		{float32(math.Inf(1)), "inf"},
		{float32(math.Inf(-1)), "-inf"},
		{1.5, "1.5"},
		{-1.5, "-1.5"},
		{-0.00001, "-1e-05"},
		{-999999.5, "-1e+06"},
		{-math.MaxFloat32, "-3.40282e+38"},
	}
	for _, tt := range tests {
		t.Run(tt.s, func(t *testing.T) {
			var buf [MaxLen]byte
			n := Write(buf[:], tt.f)
			test.String(t, string(buf[:n]), tt.s)
		})
	}
}

func TestWriteNegativeMatchesReference(t *testing.T) {
	var buf [MaxLen]byte
	for bits := uint32(0x80000001); bits < 0xff800000; bits += 0x10001 {
		f := math.Float32frombits(bits)
		n := Write(buf[:], f)
		test.String(t, string(buf[:n]), reference(f), f)
	}
}

func TestAppendFloat(t *testing.T) {
	b := []byte("x=")
	b = AppendFloat(b, 0.1)
	b = append(b, ',')
	b = AppendFloat(b, -1234567.0)
	test.String(t, string(b), "x=0.1,-1.23457e+06")
}

func TestFormatFloat(t *testing.T) {
	test.String(t, FormatFloat(100000.0), "100000")
	test.String(t, FormatFloat(1e6), "1e+06")
	test.String(t, FormatFloat(float32(math.Inf(-1))), "-inf")
}

func TestWriteFloat(t *testing.T) {
	w := &bytes.Buffer{}
	n, err := WriteFloat(w, 2.5)
	test.Error(t, err)
	test.T(t, n, 3)
	test.String(t, w.String(), "2.5")
}

func TestMaxLen(t *testing.T) {
	var buf [MaxLen]byte
	longest := 0
	for _, f := range []float32{-math.SmallestNonzeroFloat32, -1.11111e-10, -0.000111111, -111111.0, -1.11111e+38} {
		if n := Write(buf[:], f); longest < n {
			longest = n
		}
	}
	test.That(t, longest <= MaxLen)
	test.T(t, longest, len("-0.000111111"))
}

func BenchmarkWrite(b *testing.B) {
	fs := []float32{0.1, 1.5, 123.456, 1234567.0, 1e-10, 999999.5}
	var buf [MaxLen]byte
	for i := 0; i < b.N; i++ {
		Write(buf[:], fs[i%len(fs)])
	}
}
