package main

import (
	"fmt"
	"io"
	"log"
	"os"

	floatg "github.com/creacentblue/float-to-g"
)

type mismatch struct {
	f         float32
	got, want string
}

type tally struct {
	match, total int
}

func (t tally) String() string {
	if t.total == 0 {
		return "0/0"
	}
	return fmt.Sprintf("%d/%d match (%.2f%%)", t.match, t.total, 100.0*float64(t.match)/float64(t.total))
}

// compare formats every value and its negation and tallies the matches against the reference.
func compare(fs []float32, logger *log.Logger) (tally, []mismatch) {
	var t tally
	var mismatches []mismatch
	var buf [floatg.MaxLen]byte
	for _, f := range fs {
		for _, g := range []float32{f, -f} {
			n := floatg.Write(buf[:], g)
			got, want := string(buf[:n]), reference(g)
			if logger != nil {
				logger.Printf("%v: %s (reference %s)", g, got, want)
			}
			t.total++
			if got == want {
				t.match++
			} else {
				mismatches = append(mismatches, mismatch{g, got, want})
			}
		}
	}
	return t, mismatches
}

func (cmd *Verify) Run() error {
	var logger *log.Logger
	if cmd.Verbose {
		logger = log.New(os.Stderr, "", 0)
	}
	return verify(os.Stdout, randomValues(cmd.Seed, cmd.Count), cmd.MaxFailures, logger)
}

func verify(w io.Writer, fs []float32, maxFailures int, logger *log.Logger) error {
	fmt.Fprintf(w, "=== Float to %%g Format Verification ===\n\n")
	hand, handMismatches := compare(curated, logger)
	rnd, rndMismatches := compare(fs, logger)

	mismatches := append(handMismatches, rndMismatches...)
	for i, m := range mismatches {
		if i == maxFailures {
			fmt.Fprintf(w, "  ... %d more\n", len(mismatches)-maxFailures)
			break
		}
		fmt.Fprintf(w, "  %.10g -> floatg=%q reference=%q\n", m.f, m.got, m.want)
	}

	fmt.Fprintf(w, "Hand-crafted: %v\n", hand)
	fmt.Fprintf(w, "Random: %v\n", rnd)
	if len(mismatches) != 0 {
		return fmt.Errorf("%d mismatches", len(mismatches))
	}
	fmt.Fprintf(w, "All tests passed\n")
	return nil
}
