// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

//go:build softfloat

package libm

// Built with -tags softfloat: never select the host FPU.
const _SOFTFLOAT = true
