package q15

import (
	"sync"

	"github.com/cwbudde/algo-q15/internal/arch/generic"
	archregistry "github.com/cwbudde/algo-q15/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

var (
	kernelInitOnce sync.Once
	axpyImpl       archregistry.AxpyFn
	addSatImpl     archregistry.AddSatFn
	scaleSatImpl   archregistry.ScaleSatFn
	kernelName     string
)

func initKernels() {
	entry := archregistry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("q15: no kernel registered (missing generic fallback?)")
	}

	if entry.Axpy == nil || entry.AddSat == nil || entry.ScaleSat == nil {
		panic("q15: selected kernel set " + entry.Name + " is incomplete")
	}

	axpyImpl = entry.Axpy
	addSatImpl = entry.AddSat
	scaleSatImpl = entry.ScaleSat
	kernelName = entry.Name
}

// Axpy computes the saturating scaled add dst[i] = sat(a[i] +
// (alpha*b[i])>>15) using the best implementation for the current CPU.
//
// All three slices must have equal length; mismatched lengths panic.
// The result is bit-exact against [AxpyReference] for every input.
func Axpy(dst, a, b []int16, alpha int16) {
	checkLengths3(dst, a, b)
	if len(dst) == 0 {
		return
	}

	kernelInitOnce.Do(initKernels)
	axpyImpl(dst, a, b, alpha)
}

// AxpyReference is the scalar reference kernel for [Axpy], the
// bit-exact gold standard every dispatched variant is verified against.
//
// All three slices must have equal length; mismatched lengths panic.
func AxpyReference(dst, a, b []int16, alpha int16) {
	checkLengths3(dst, a, b)
	generic.Axpy(dst, a, b, alpha)
}

// AddSat computes the saturating add dst[i] = sat(a[i] + b[i]).
// All three slices must have equal length; mismatched lengths panic.
func AddSat(dst, a, b []int16) {
	checkLengths3(dst, a, b)
	if len(dst) == 0 {
		return
	}

	kernelInitOnce.Do(initKernels)
	addSatImpl(dst, a, b)
}

// ScaleSat computes the saturating scale dst[i] = sat((alpha*b[i])>>15).
// Both slices must have equal length; mismatched lengths panic.
func ScaleSat(dst, b []int16, alpha int16) {
	if len(dst) != len(b) {
		panic("q15: slice length mismatch")
	}
	if len(dst) == 0 {
		return
	}

	kernelInitOnce.Do(initKernels)
	scaleSatImpl(dst, b, alpha)
}

// ImplementationName reports which kernel variant [Axpy] dispatches to
// on this CPU (e.g. "generic", "sse2", "avx2", "neon"). Intended for
// logging and benchmark reports.
func ImplementationName() string {
	kernelInitOnce.Do(initKernels)
	return kernelName
}

// Implementation describes one registered kernel variant. The function
// fields are the raw kernels: they assume equal-length slices and do
// not validate.
type Implementation struct {
	Name     string
	Axpy     func(dst, a, b []int16, alpha int16)
	AddSat   func(dst, a, b []int16)
	ScaleSat func(dst, b []int16, alpha int16)
}

// Implementations returns all registered kernel variants in priority
// order (best first), regardless of what the current CPU supports.
// Intended for equivalence testing and diagnostics.
func Implementations() []Implementation {
	entries := archregistry.Global.ListEntries()

	impls := make([]Implementation, 0, len(entries))
	for _, e := range entries {
		impls = append(impls, Implementation{
			Name:     e.Name,
			Axpy:     e.Axpy,
			AddSat:   e.AddSat,
			ScaleSat: e.ScaleSat,
		})
	}

	return impls
}

func checkLengths3(dst, a, b []int16) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("q15: slice length mismatch")
	}
}
