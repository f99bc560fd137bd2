// +build gofuzz

package fuzz

import (
	"encoding/binary"
	"math"
	"strconv"

	floatg "github.com/creacentblue/float-to-g"
)

// Fuzz interprets the input as float32 bit patterns and compares each rendering against strconv.
func Fuzz(data []byte) int {
	var buf [floatg.MaxLen]byte
	for ; 4 <= len(data); data = data[4:] {
		f := math.Float32frombits(binary.LittleEndian.Uint32(data))
		if f == 0.0 || math.IsNaN(float64(f)) || math.IsInf(float64(f), 0) {
			continue
		}
		n := floatg.Write(buf[:], f)
		if want := strconv.FormatFloat(float64(f), 'g', floatg.Precision, 32); string(buf[:n]) != want {
			panic(string(buf[:n]) + " != " + want)
		}
	}
	return 1
}
