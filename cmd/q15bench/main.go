// Command q15bench verifies and benchmarks the q15 AXPY kernels.
//
// It generates deterministic pseudo-random Q15 inputs, runs the scalar
// reference kernel and the dispatched kernel, checks the outputs are
// bit-exact, and prints a timing table. The exit code reflects
// verification: 0 when bit-exact, 1 otherwise.
//
// Usage:
//
//	q15bench [flags]
//
// Examples:
//
//	q15bench
//	q15bench -n 65536 -alpha 8192
//	q15bench -seed 7 -noise
package main

import (
	"flag"
	"fmt"
	"os"

	q15 "github.com/cwbudde/algo-q15"
	"github.com/cwbudde/algo-q15/bench"
	"github.com/cwbudde/algo-q15/measure/qnoise"
)

func main() {
	n := flag.Int("n", bench.DefaultN, "number of elements")
	alpha := flag.Int("alpha", bench.DefaultAlpha, "Q15 scale factor in [-32768, 32767]")
	seed := flag.Int64("seed", bench.DefaultSeed, "input generator seed")
	noise := flag.Bool("noise", false, "also print quantization noise analysis")
	flag.Parse()

	if *n <= 0 {
		fmt.Fprintf(os.Stderr, "error: -n must be positive (got %d)\n", *n)
		os.Exit(1)
	}

	if *alpha < q15.MinVal || *alpha > q15.MaxVal {
		fmt.Fprintf(os.Stderr, "error: -alpha must be in [%d, %d] (got %d)\n", q15.MinVal, q15.MaxVal, *alpha)
		os.Exit(1)
	}

	cfg := bench.Config{N: *n, Alpha: int16(*alpha), Seed: *seed}
	result := bench.Run(cfg)

	if err := bench.WriteReport(os.Stdout, result); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to write report: %v\n", err)
		os.Exit(1)
	}

	if *noise {
		a, b := bench.GenerateInputs(cfg.N, cfg.Seed)
		nr := qnoise.Analyze(a, b, cfg.Alpha)
		fmt.Printf("\nQuantization noise vs float64 ideal:\n")
		fmt.Printf("  max abs error: %.9f\n", nr.MaxAbsError)
		fmt.Printf("  rms error:     %.9f\n", nr.RMSError)
		fmt.Printf("  snr:           %.1f dB\n", nr.SNRdB)
	}

	if !result.Verified {
		os.Exit(1)
	}
}
