package qnoise

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	q15 "github.com/cwbudde/algo-q15"
	"github.com/cwbudde/algo-vecmath"
)

// Result holds quantization-error statistics for one AXPY evaluation.
// Errors are expressed on the normalized scale where full range is
// [-1.0, 1.0).
type Result struct {
	N int

	// MaxAbsError is the largest absolute deviation from the exact
	// real-valued result.
	MaxAbsError float64

	// RMSError is the root-mean-square deviation.
	RMSError float64

	// SNRdB is the signal-to-error ratio in dB: +Inf for a bit-exact
	// zero-error run, -Inf when the ideal signal itself is zero but
	// the error is not.
	SNRdB float64
}

// SpectrumResult extends Result with the error power spectrum.
type SpectrumResult struct {
	Result

	// FFTSize is the transform length used (power of two, >= N).
	FFTSize int

	// NoisePower holds |FFT(err)|^2 / FFTSize for the non-negative
	// frequency bins [0..Nyquist].
	NoisePower []float64
}

// Analyze computes error statistics for the Q15 AXPY of (a, b, alpha)
// relative to the exact computation. The input slices must have equal
// length; mismatched lengths panic. An empty input yields a zero
// Result.
func Analyze(a, b []int16, alpha int16) Result {
	if len(a) != len(b) {
		panic("qnoise: slice length mismatch")
	}

	n := len(a)
	if n == 0 {
		return Result{}
	}

	errv, ideal := errorSignal(a, b, alpha)

	errEnergy := vecmath.DotProduct(errv, errv)
	sigEnergy := vecmath.DotProduct(ideal, ideal)

	return Result{
		N:           n,
		MaxAbsError: vecmath.MaxAbs(errv),
		RMSError:    math.Sqrt(errEnergy / float64(n)),
		SNRdB:       snrdB(sigEnergy, errEnergy),
	}
}

// AnalyzeSpectrum computes the same statistics as [Analyze] plus the
// error power spectrum. fftSize must be zero (auto: next power of two
// covering the input) or a power of two at least as large as the
// input, which is zero-padded up to it.
func AnalyzeSpectrum(a, b []int16, alpha int16, fftSize int) (SpectrumResult, error) {
	if len(a) != len(b) {
		panic("qnoise: slice length mismatch")
	}

	n := len(a)
	if n == 0 {
		return SpectrumResult{}, nil
	}

	if fftSize <= 0 {
		fftSize = nextPowerOf2(n)
	}

	if fftSize < n {
		return SpectrumResult{}, fmt.Errorf("qnoise: fft size %d smaller than input length %d", fftSize, n)
	}

	errv, ideal := errorSignal(a, b, alpha)

	errEnergy := vecmath.DotProduct(errv, errv)
	sigEnergy := vecmath.DotProduct(ideal, ideal)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return SpectrumResult{}, fmt.Errorf("qnoise: failed to create FFT plan: %w", err)
	}

	inData := make([]complex128, fftSize)
	for i, v := range errv {
		inData[i] = complex(v, 0)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, inData); err != nil {
		return SpectrumResult{}, fmt.Errorf("qnoise: forward FFT failed: %w", err)
	}

	bins := fftSize/2 + 1
	power := make([]float64, bins)
	for i := 0; i < bins; i++ {
		x := out[i]
		power[i] = (real(x)*real(x) + imag(x)*imag(x)) / float64(fftSize)
	}

	return SpectrumResult{
		Result: Result{
			N:           n,
			MaxAbsError: vecmath.MaxAbs(errv),
			RMSError:    math.Sqrt(errEnergy / float64(n)),
			SNRdB:       snrdB(sigEnergy, errEnergy),
		},
		FFTSize:    fftSize,
		NoisePower: power,
	}, nil
}

// errorSignal evaluates the Q15 kernel and the float64 ideal and
// returns (quantized - ideal, ideal) on the normalized scale.
func errorSignal(a, b []int16, alpha int16) (errv, ideal []float64) {
	n := len(a)

	yq := make([]int16, n)
	q15.AxpyReference(yq, a, b, alpha)

	af := make([]float64, n)
	bf := make([]float64, n)
	yf := make([]float64, n)
	for i := 0; i < n; i++ {
		af[i] = q15.ToFloat64(a[i])
		bf[i] = q15.ToFloat64(b[i])
		yf[i] = q15.ToFloat64(yq[i])
	}

	scaled := make([]float64, n)
	vecmath.ScaleBlock(scaled, bf, q15.ToFloat64(alpha))

	ideal = make([]float64, n)
	vecmath.AddBlock(ideal, af, scaled)

	// Reuse the scratch buffer for the negated ideal.
	vecmath.ScaleBlock(scaled, ideal, -1)

	errv = make([]float64, n)
	vecmath.AddBlock(errv, yf, scaled)

	return errv, ideal
}

func snrdB(sigEnergy, errEnergy float64) float64 {
	if errEnergy == 0 {
		return math.Inf(1)
	}

	if sigEnergy == 0 {
		return math.Inf(-1)
	}

	return 10 * math.Log10(sigEnergy/errEnergy)
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
