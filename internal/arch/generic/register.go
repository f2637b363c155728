// Package generic provides the scalar q15 kernels.
//
// These are the bit-exact reference implementations: every other
// registered variant must produce identical output for every input.
// They also serve as the fallback when no SIMD-tier entry is
// compatible with the current CPU.
package generic

import (
	"github.com/cwbudde/algo-q15/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,
		Axpy:      Axpy,
		AddSat:    AddSat,
		ScaleSat:  ScaleSat,
	})
}

const (
	minQ15 = -32768
	maxQ15 = 32767
)

func saturate(v int32) int16 {
	if v > maxQ15 {
		return maxQ15
	}
	if v < minQ15 {
		return minQ15
	}
	return int16(v)
}

// Axpy computes dst[i] = sat(a[i] + (alpha*b[i])>>15).
//
// The product is formed at full 32-bit precision and shifted with Go's
// arithmetic right shift, which floors negative products toward
// negative infinity. Saturation is applied after the add, never to the
// intermediate.
func Axpy(dst, a, b []int16, alpha int16) {
	for i := range dst {
		scaled := (int32(alpha) * int32(b[i])) >> 15
		dst[i] = saturate(int32(a[i]) + scaled)
	}
}

// AddSat computes dst[i] = sat(a[i] + b[i]).
func AddSat(dst, a, b []int16) {
	for i := range dst {
		dst[i] = saturate(int32(a[i]) + int32(b[i]))
	}
}

// ScaleSat computes dst[i] = sat((alpha*b[i])>>15).
//
// Saturation matters here too: (-32768)*(-32768)>>15 = +32768, one
// past the Q15 maximum.
func ScaleSat(dst, b []int16, alpha int16) {
	for i := range dst {
		dst[i] = saturate((int32(alpha) * int32(b[i])) >> 15)
	}
}
