// Package bench provides the q15 AXPY verification and benchmark
// harness.
//
// A run generates deterministic pseudo-random inputs, invokes the
// scalar reference kernel and the dispatched kernel into separate
// output buffers, verifies the outputs are bit-exact, and times each
// kernel invocation in isolation. Correctness comes first: timing is
// advisory and degrades gracefully, verification never does.
//
// The default configuration (4096 elements, alpha 16384, seed 42)
// matches the fixed benchmark this harness descends from; all three
// parameters are configurable via [Config].
package bench
