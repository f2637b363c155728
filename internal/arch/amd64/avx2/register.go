//go:build amd64 && !purego

package avx2

import (
	"github.com/cwbudde/algo-q15/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "avx2",
		SIMDLevel: cpu.SIMDAVX2,
		Priority:  20,
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

// axpy is an 8x-unrolled scalar kernel selected for AVX2-capable CPUs.
// TODO: replace with explicit AVX2 asm kernel (VPMOVSXWD widen,
// VPMULLD, VPSRAD, VPADDD, VPACKSSDW saturating pack).
func axpy(dst, a, b []int16, alpha int16) {
	al := int32(alpha)

	i := 0
	n := len(dst)
	for ; i+7 < n; i += 8 {
		s0 := int32(a[i+0]) + (al*int32(b[i+0]))>>15
		s1 := int32(a[i+1]) + (al*int32(b[i+1]))>>15
		s2 := int32(a[i+2]) + (al*int32(b[i+2]))>>15
		s3 := int32(a[i+3]) + (al*int32(b[i+3]))>>15
		s4 := int32(a[i+4]) + (al*int32(b[i+4]))>>15
		s5 := int32(a[i+5]) + (al*int32(b[i+5]))>>15
		s6 := int32(a[i+6]) + (al*int32(b[i+6]))>>15
		s7 := int32(a[i+7]) + (al*int32(b[i+7]))>>15

		dst[i+0] = saturate(s0)
		dst[i+1] = saturate(s1)
		dst[i+2] = saturate(s2)
		dst[i+3] = saturate(s3)
		dst[i+4] = saturate(s4)
		dst[i+5] = saturate(s5)
		dst[i+6] = saturate(s6)
		dst[i+7] = saturate(s7)
	}

	for ; i < n; i++ {
		dst[i] = saturate(int32(a[i]) + (al*int32(b[i]))>>15)
	}
}

func addSat(dst, a, b []int16) {
	i := 0
	n := len(dst)
	for ; i+7 < n; i += 8 {
		dst[i+0] = saturate(int32(a[i+0]) + int32(b[i+0]))
		dst[i+1] = saturate(int32(a[i+1]) + int32(b[i+1]))
		dst[i+2] = saturate(int32(a[i+2]) + int32(b[i+2]))
		dst[i+3] = saturate(int32(a[i+3]) + int32(b[i+3]))
		dst[i+4] = saturate(int32(a[i+4]) + int32(b[i+4]))
		dst[i+5] = saturate(int32(a[i+5]) + int32(b[i+5]))
		dst[i+6] = saturate(int32(a[i+6]) + int32(b[i+6]))
		dst[i+7] = saturate(int32(a[i+7]) + int32(b[i+7]))
	}

	for ; i < n; i++ {
		dst[i] = saturate(int32(a[i]) + int32(b[i]))
	}
}

func scaleSat(dst, b []int16, alpha int16) {
	al := int32(alpha)

	i := 0
	n := len(dst)
	for ; i+7 < n; i += 8 {
		dst[i+0] = saturate((al * int32(b[i+0])) >> 15)
		dst[i+1] = saturate((al * int32(b[i+1])) >> 15)
		dst[i+2] = saturate((al * int32(b[i+2])) >> 15)
		dst[i+3] = saturate((al * int32(b[i+3])) >> 15)
		dst[i+4] = saturate((al * int32(b[i+4])) >> 15)
		dst[i+5] = saturate((al * int32(b[i+5])) >> 15)
		dst[i+6] = saturate((al * int32(b[i+6])) >> 15)
		dst[i+7] = saturate((al * int32(b[i+7])) >> 15)
	}

	for ; i < n; i++ {
		dst[i] = saturate((al * int32(b[i])) >> 15)
	}
}
