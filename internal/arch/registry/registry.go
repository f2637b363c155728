// Package registry provides the implementation registry for q15 kernels.
//
// Implementation variants (generic, SSE2, AVX2, NEON, ...) register
// themselves via init() functions in their arch packages. At runtime
// Lookup selects the highest-priority entry compatible with the
// detected CPU features.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"
)

// AxpyFn computes dst[i] = sat(a[i] + (alpha*b[i])>>15).
// Slice lengths are validated by the dispatch front, not the kernel.
type AxpyFn func(dst, a, b []int16, alpha int16)

// AddSatFn computes dst[i] = sat(a[i] + b[i]).
type AddSatFn func(dst, a, b []int16)

// ScaleSatFn computes dst[i] = sat((alpha*b[i])>>15).
type ScaleSatFn func(dst, b []int16, alpha int16)

// OpEntry is one registered q15 kernel implementation set.
type OpEntry struct {
	// Name is a human-readable identifier (e.g. "generic", "avx2").
	Name string

	// SIMDLevel is the instruction set this entry requires.
	SIMDLevel cpu.SIMDLevel

	// Priority determines selection order when multiple compatible
	// entries exist. Suggested ladder: generic 0, SSE2 10, NEON 15,
	// AVX2 20.
	Priority int

	Axpy     AxpyFn
	AddSat   AddSatFn
	ScaleSat ScaleSatFn
}

// OpRegistry stores available implementations.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool
}

// Global is the default q15 kernel registry.
var Global = &OpRegistry{}

// Register adds an implementation entry. Typically called from init()
// in arch packages; all registrations should complete before the first
// Lookup.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority implementation supported by
// features, or nil if none is compatible (which cannot happen once the
// generic fallback is registered).
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if cpu.Supports(features, entry.SIMDLevel) {
			return entry
		}
	}

	return nil
}

// ListEntries returns a copy of all registered entries sorted by
// priority (descending). Intended for introspection and testing.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)

	return entries
}

// Reset clears all registered entries. Intended for tests.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}

func (r *OpRegistry) sortByPriority() {
	// Insertion sort; the registry holds a handful of entries.
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}
