//go:build amd64 && !purego

package sse2

import (
	"github.com/cwbudde/algo-q15/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "sse2",
		SIMDLevel: cpu.SIMDSSE2,
		Priority:  10,
		Axpy:      axpy,
		AddSat:    addSat,
		ScaleSat:  scaleSat,
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

// axpy is a 4x-unrolled scalar kernel selected for SSE2-baseline CPUs.
// TODO: replace with explicit SSE2 asm kernel.
func axpy(dst, a, b []int16, alpha int16) {
	al := int32(alpha)

	i := 0
	n := len(dst)
	for ; i+3 < n; i += 4 {
		s0 := int32(a[i+0]) + (al*int32(b[i+0]))>>15
		s1 := int32(a[i+1]) + (al*int32(b[i+1]))>>15
		s2 := int32(a[i+2]) + (al*int32(b[i+2]))>>15
		s3 := int32(a[i+3]) + (al*int32(b[i+3]))>>15

		dst[i+0] = saturate(s0)
		dst[i+1] = saturate(s1)
		dst[i+2] = saturate(s2)
		dst[i+3] = saturate(s3)
	}

	for ; i < n; i++ {
		dst[i] = saturate(int32(a[i]) + (al*int32(b[i]))>>15)
	}
}

func addSat(dst, a, b []int16) {
	i := 0
	n := len(dst)
	for ; i+3 < n; i += 4 {
		dst[i+0] = saturate(int32(a[i+0]) + int32(b[i+0]))
		dst[i+1] = saturate(int32(a[i+1]) + int32(b[i+1]))
		dst[i+2] = saturate(int32(a[i+2]) + int32(b[i+2]))
		dst[i+3] = saturate(int32(a[i+3]) + int32(b[i+3]))
	}

	for ; i < n; i++ {
		dst[i] = saturate(int32(a[i]) + int32(b[i]))
	}
}

func scaleSat(dst, b []int16, alpha int16) {
	al := int32(alpha)

	i := 0
	n := len(dst)
	for ; i+3 < n; i += 4 {
		dst[i+0] = saturate((al * int32(b[i+0])) >> 15)
		dst[i+1] = saturate((al * int32(b[i+1])) >> 15)
		dst[i+2] = saturate((al * int32(b[i+2])) >> 15)
		dst[i+3] = saturate((al * int32(b[i+3])) >> 15)
	}

	for ; i < n; i++ {
		dst[i] = saturate((al * int32(b[i])) >> 15)
	}
}
