package main

import (
	"fmt"
	"io"
	"os"
	"time"

	floatg "github.com/creacentblue/float-to-g"
)

func (cmd *Bench) Run() error {
	if cmd.Count <= 0 {
		return fmt.Errorf("count must be positive")
	}
	return bench(os.Stdout, randomValues(cmd.Seed, cmd.Count))
}

func bench(w io.Writer, fs []float32) error {
	fmt.Fprintf(w, "Values: %d\n", len(fs))
	t, mismatches := compare(fs, nil)
	fmt.Fprintf(w, "Correct: %v\n", t)
	if len(mismatches) != 0 {
		return fmt.Errorf("%d mismatches, first %v renders as %q instead of %q", len(mismatches), mismatches[0].f, mismatches[0].got, mismatches[0].want)
	}

	buf := make([]byte, 0, floatg.MaxLen)
	start := time.Now()
	for _, f := range fs {
		buf = appendReference(buf[:0], f)
	}
	ref := time.Since(start)

	var dst [floatg.MaxLen]byte
	start = time.Now()
	for _, f := range fs {
		floatg.Write(dst[:], f)
	}
	own := time.Since(start)

	fmt.Fprintf(w, "reference: %8.2f ms\n", ms(ref))
	fmt.Fprintf(w, "floatg:    %8.2f ms\n", ms(own))
	if 0 < own {
		fmt.Fprintf(w, "Speedup:   %8.2fx\n", float64(ref)/float64(own))
	}
	return nil
}

func ms(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
