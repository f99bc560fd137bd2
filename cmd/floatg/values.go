package main

import (
	"math"
	"math/rand/v2"
)

// curated are boundary values: powers of ten, growing digit counts, carries and the float32 extremes.
var curated = []float32{
	0.0, 0.1, 0.01, 0.001, 0.0001, 0.00001, 0.000001,
	1.0, 10.0, 100.0, 1000.0, 10000.0, 100000.0,
	1.1, 1.11, 1.111, 1.1111, 1.11111, 1.111111,
	10.1, 10.11, 10.111,
	100.1, 100.11,
	1000.1,
	1e-5, 1e-4, 1e-3, 1e-2, 1e-1, 1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6,
	0.123456, 1.23456, 12.3456, 123.456,
	3.14159, 2.71828,

	999999.0, 999999.5, 999998.5, 1000005.0, 1000015.0,
	9.9999999, 0.099999999, 99999.99, 9.9999999e-5, 9.999995e-5,
	1234567.0, 123456789.0, 1e10, 1.5e-7,
	math.MaxFloat32, math.SmallestNonzeroFloat32, 1.1754944e-38,
}

// randomValue returns a positive value from one of four distributions: uniform up to 1e6, integers below 1e6, k*10^j and x/100*10^j.
func randomValue(r *rand.Rand) float32 {
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

func randomValues(seed, n int) []float32 {
	r := rand.New(rand.NewPCG(uint64(seed), uint64(seed)))
	fs := make([]float32, n)
	for i := range fs {
		fs[i] = randomValue(r)
	}
	return fs
}
