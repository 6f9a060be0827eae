// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

//go:build !softfloat

package libm

const _SOFTFLOAT = false
