// Package qnoise measures the quantization error of the Q15 AXPY
// kernel against the exact real-valued computation a + alpha*b.
//
// The error folds together three effects: the 2^-15 quantization step,
// the floor rounding of the >>15 product shift, and saturation when the
// exact result leaves [-1.0, 1.0). For inputs that stay well inside the
// representable range the error sits near the quantization floor; for
// saturating inputs it is dominated by clipping, which is visible as a
// collapsed SNR.
//
// [Analyze] reports scalar error statistics; [AnalyzeSpectrum]
// additionally returns the error power spectrum, useful for checking
// that the rounding error is spectrally flat (noise-like) rather than
// correlated with the signal.
package qnoise
