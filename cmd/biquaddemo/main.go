// Command biquaddemo runs one DF2T biquad over a constant buffer and prints
// a short summary of the output.
//
// Usage:
//
//	biquaddemo [flags]
//
// Examples:
//
//	biquaddemo
//	biquaddemo -n 4096 -head 8
//	biquaddemo -coeffs "-1.8,0.81,0.01,0.02,0.01" -value 0.5
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-biquad/dsp/filter/biquad"
)

const defaultCoeffs = "0.1,0.2,0.3,0.4,0.5"

var errCoeffCount = errors.New("expected 5 comma-separated values a1,a2,b0,b1,b2")

func main() {
	n := flag.Int("n", 1024, "buffer length in samples")
	value := flag.Float64("value", 1.0, "value every input sample is set to")
	coeffs := flag.String("coeffs", defaultCoeffs, "coefficients as a1,a2,b0,b1,b2")
	head := flag.Int("head", 4, "number of leading output samples to print")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: biquaddemo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Filters a constant buffer through one Direct Form II Transposed biquad.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *n < 0 {
		fmt.Fprintf(os.Stderr, "error: -n must not be negative, got %d\n", *n)
		os.Exit(2)
	}

	c, err := parseCoefficients(*coeffs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: -coeffs: %v\n", err)
		os.Exit(2)
	}

	if !c.IsStable() {
		fmt.Fprintf(os.Stderr, "warning: coefficients are unstable, output will diverge\n")
	}

	f := biquad.NewFilter(c)
	buf := make([]float64, *n)
	for i := range buf {
		buf[i] = *value
	}
	f.ProcessBlock(buf)

	if err := printSummary(os.Stdout, c, f, buf, *head); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to write output: %v\n", err)
		os.Exit(1)
	}
}

func parseCoefficients(s string) (biquad.Coefficients, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 5 {
		return biquad.Coefficients{}, fmt.Errorf("%w, got %d", errCoeffCount, len(parts))
	}

	var v [5]float64
	for i, p := range parts {
		x, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return biquad.Coefficients{}, fmt.Errorf("value %d: %w", i+1, err)
		}
		v[i] = x
	}

	return biquad.NewCoefficients(v[0], v[1], v[2], v[3], v[4]), nil
}

func printSummary(w io.Writer, c biquad.Coefficients, f *biquad.Filter, out []float64, head int) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "coefficients\ta1=%g a2=%g b0=%g b1=%g b2=%g\n", c.A1, c.A2, c.B0, c.B1, c.B2)
	fmt.Fprintf(tw, "stable\t%v\n", c.IsStable())
	fmt.Fprintf(tw, "samples\t%d\n", len(out))

	for i := 0; i < head && i < len(out); i++ {
		fmt.Fprintf(tw, "y[%d]\t%.6f\n", i, out[i])
	}

	if head < len(out) {
		fmt.Fprintf(tw, "y[%d]\t%.6f\n", len(out)-1, out[len(out)-1])
	}

	st := f.State()
	fmt.Fprintf(tw, "state\ts1=%.6f s2=%.6f\n", st[0], st[1])

	return tw.Flush()
}
