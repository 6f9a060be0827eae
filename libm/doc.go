// Package libm implements fma, fmax and fmin in double and single precision.
//
// Each operation has two implementations behind the Impl interface:
// Hardware, which runs on the host FPU, and Software, which emulates the
// IEEE 754 semantics bit for bit in package softfloat. Both give identical
// results for every non-NaN answer.
//
// The choice is made once. Detect reports the host capabilities (from
// golang.org/x/sys/cpu, or forced to emulation with the softfloat build tag),
// Select turns them into an Impl, and Default caches that decision for the
// package level functions. Callers that want a specific implementation use
// Hardware{} or Software{} directly.
package libm
