// Package q15 provides saturating Q15 fixed-point vector kernels.
//
// Q15 is the signed 16-bit fixed-point format with 15 fractional bits:
// the bit pattern v represents the real value v/32768, covering
// approximately [-1.0, 1.0). All kernels saturate out-of-range results
// to [MinVal, MaxVal] instead of wrapping.
//
// The central operation is [Axpy], the scaled add
//
//	dst[i] = sat(a[i] + (alpha*b[i])>>15)
//
// where the product is formed at full 32-bit precision and the shift is
// arithmetic (sign-extending), so negative products floor toward
// negative infinity. [AxpyReference] is the scalar gold kernel; [Axpy]
// dispatches to the fastest registered implementation for the current
// CPU and is bit-exact against the reference for every input.
//
// Implementation variants self-register via init() in
// internal/arch/... packages and are selected at runtime through CPU
// feature detection, following the same registry scheme as the biquad
// filter runtime in algo-dsp.
package q15
