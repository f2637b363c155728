package bench

import (
	"math/rand"
	"time"

	q15 "github.com/cwbudde/algo-q15"
)

// Default run parameters.
const (
	DefaultN     = 4096
	DefaultAlpha = 16384 // 0.5 in Q15
	DefaultSeed  = 42
)

// Config holds benchmark run parameters. A non-positive N falls back
// to DefaultN; Alpha and Seed are taken as given (zero is a valid value
// for both). Use [DefaultConfig] for the standard run.
type Config struct {
	N     int
	Alpha int16
	Seed  int64
}

// DefaultConfig returns the standard run configuration.
func DefaultConfig() Config {
	return Config{N: DefaultN, Alpha: DefaultAlpha, Seed: DefaultSeed}
}

// Mismatch records one verification failure.
type Mismatch struct {
	Index int
	Ref   int16
	Got   int16
}

// Result holds the outcome of one benchmark run.
type Result struct {
	N     int
	Alpha int16
	Seed  int64

	// Impl names the dispatched kernel variant that was measured
	// against the reference.
	Impl string

	// ReferenceNs and OptimizedNs are the elapsed monotonic-clock
	// nanoseconds for one invocation of each kernel. Timing brackets
	// only the kernel call, never allocation or input generation.
	ReferenceNs int64
	OptimizedNs int64

	// Speedup is ReferenceNs/OptimizedNs, or 0 when either reading
	// degenerated to zero and no meaningful ratio exists.
	Speedup float64

	// Verified reports whether both outputs were bit-exact.
	Verified bool

	// Mismatches lists every differing element (empty when Verified).
	Mismatches []Mismatch
}

// GenerateInputs returns two length-n input vectors drawn uniformly
// from the full 16-bit signed range. The same seed always produces the
// same sequences.
func GenerateInputs(n int, seed int64) (a, b []int16) {
	rng := rand.New(rand.NewSource(seed))

	a = make([]int16, n)
	b = make([]int16, n)
	for i := 0; i < n; i++ {
		a[i] = int16(rng.Intn(65536) - 32768)
		b[i] = int16(rng.Intn(65536) - 32768)
	}

	return a, b
}

// Verify compares two output vectors element-wise over their full
// length and returns every mismatch. It never stops early, so a
// passing result means all n elements were checked. Panics if the
// lengths differ (harness programming error).
func Verify(ref, got []int16) (bool, []Mismatch) {
	if len(ref) != len(got) {
		panic("bench: output length mismatch")
	}

	var mismatches []Mismatch
	for i := range ref {
		if ref[i] != got[i] {
			mismatches = append(mismatches, Mismatch{Index: i, Ref: ref[i], Got: got[i]})
		}
	}

	return len(mismatches) == 0, mismatches
}

// Run executes one verification/benchmark pass: generate inputs, time
// and run the reference kernel, time and run the dispatched kernel into
// a separate buffer, and verify the outputs bit-exact.
func Run(cfg Config) Result {
	cfg = normalizeConfig(cfg)

	a, b := GenerateInputs(cfg.N, cfg.Seed)
	refOut := make([]int16, cfg.N)
	optOut := make([]int16, cfg.N)

	start := time.Now()
	q15.AxpyReference(refOut, a, b, cfg.Alpha)
	refNs := time.Since(start).Nanoseconds()

	start = time.Now()
	q15.Axpy(optOut, a, b, cfg.Alpha)
	optNs := time.Since(start).Nanoseconds()

	verified, mismatches := Verify(refOut, optOut)

	speedup := 0.0
	if refNs > 0 && optNs > 0 {
		speedup = float64(refNs) / float64(optNs)
	}

	return Result{
		N:           cfg.N,
		Alpha:       cfg.Alpha,
		Seed:        cfg.Seed,
		Impl:        q15.ImplementationName(),
		ReferenceNs: refNs,
		OptimizedNs: optNs,
		Speedup:     speedup,
		Verified:    verified,
		Mismatches:  mismatches,
	}
}

func normalizeConfig(cfg Config) Config {
	if cfg.N <= 0 {
		cfg.N = DefaultN
	}
	return cfg
}
