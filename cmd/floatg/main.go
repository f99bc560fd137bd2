package main

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"math"
	"os"

	floatg "github.com/creacentblue/float-to-g"
	"github.com/tdewolff/argp"
	"github.com/tdewolff/parse/v2/strconv"
)

type Format struct {
	Compact   bool   `short:"c" desc:"Print the shortest equivalent number, as used in SVG"`
	Reference bool   `short:"r" desc:"Print the reference rendering next to each value"`
	Verbose   bool   `short:"v" desc:"Log the binary representation of each value"`
	Input     string `short:"i" desc:"Input file with one value per line"`
	Value     string `index:"0" desc:"Value to format"`
}

type Verify struct {
	Count       int  `short:"n" default:"10000" desc:"Number of random values"`
	Seed        int  `short:"s" default:"42" desc:"Random seed"`
	MaxFailures int  `short:"m" default:"10" desc:"Maximum number of mismatches to print"`
	Verbose     bool `short:"v" desc:"Log every value"`
}

type Bench struct {
	Count int `short:"n" default:"1000000" desc:"Number of random values"`
	Seed  int `short:"s" default:"42" desc:"Random seed"`
}

func main() {
	root := argp.NewCmd(&Format{}, "Float32 to %g formatting toolkit")
	root.AddCmd(&Verify{}, "verify", "Compare against the reference formatter")
	root.AddCmd(&Bench{}, "bench", "Benchmark against the reference formatter")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Format) Run() error {
	var lines [][]byte
	if cmd.Input != "" {
		b, err := os.ReadFile(cmd.Input)
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
		for _, line := range bytes.Split(b, []byte("\n")) {
			if line = bytes.TrimSpace(line); len(line) != 0 {
				lines = append(lines, line)
			}
		}
	}
	if cmd.Value != "" {
		lines = append(lines, []byte(cmd.Value))
	}
	if len(lines) == 0 {
		return argp.ShowUsage
	}

	var logger *log.Logger
	if cmd.Verbose {
		logger = log.New(os.Stderr, "", 0)
	}
	for _, line := range lines {
		f, err := parseValue(line)
		if err != nil {
			return err
		}
		if logger != nil {
			logger.Printf("%s: float32 0x%08x", line, math.Float32bits(f))
		}
		writeValue(os.Stdout, f, cmd.Compact, cmd.Reference)
	}
	return nil
}

// parseValue parses a decimal number or one of nan, inf, +inf and -inf.
func parseValue(b []byte) (float32, error) {
	b = bytes.TrimSpace(b)
	switch string(bytes.ToLower(b)) {
	case "nan":
		return float32(math.NaN()), nil
	case "inf", "+inf":
		return float32(math.Inf(1)), nil
	case "-inf":
		return float32(math.Inf(-1)), nil
	}

	f, n := strconv.ParseFloat(b)
	if n == 0 || n != len(b) {
		return 0.0, fmt.Errorf("invalid number %q", b)
	} else if math.MaxFloat32 < math.Abs(f) {
		return 0.0, fmt.Errorf("number %q out of float32 range", b)
	}
	return float32(f), nil
}

func writeValue(w io.Writer, f float32, compact, ref bool) {
	var s []byte
	if compact {
		s = floatg.AppendCompact(nil, f)
	} else {
		s = floatg.AppendFloat(nil, f)
	}
	if !ref {
		fmt.Fprintf(w, "%s\n", s)
		return
	}

	want := reference(f)
	mark := "ok"
	if !compact && string(s) != want {
		mark = "MISMATCH"
	}
	fmt.Fprintf(w, "%s\t%s\t%s\n", s, want, mark)
}
