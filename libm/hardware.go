// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package libm

import (
	"math"
)

// Hardware evaluates with the host FPU. The compiler lowers math.FMA and
// the min/max builtins to single instructions where the target has them.
type Hardware struct{}

func (Hardware) Name() string {
	return "hardware"
}

func (Hardware) Fma(x, y, z float64) float64 {
	return math.FMA(x, y, z)
}

// Fmaf rounds the sum to binary64 with round-to-odd, then to binary32.
// The binary64 product of two binary32 values is exact, and binary64 has
// more than 24+2 bits, so the second rounding is correct.
func (Hardware) Fmaf(x, y, z float32) float32 {
	xy := float64(float64(x) * float64(y))
	zz := float64(z)
	s := xy + zz
	if math.IsInf(s, 0) || math.IsNaN(s) {
		return float32(s)
	}

	// Error of the addition, exact (TwoSum).
	bv := s - xy
	e := (xy - (s - bv)) + (zz - bv)

	sb := math.Float64bits(s)
	if e == 0 || sb&1 == 1 {
		return float32(s)
	}

	if (e > 0) == (s > 0) {
		sb++
	} else {
		sb--
	}

	return float32(math.Float64frombits(sb))
}

func (Hardware) Fmax(x, y float64) float64 {
	switch {
	case x != x:
		return y
	case y != y:
		return x
	}
	return max(x, y)
}

func (Hardware) Fmaxf(x, y float32) float32 {
	switch {
	case x != x:
		return y
	case y != y:
		return x
	}
	return max(x, y)
}

func (Hardware) Fmin(x, y float64) float64 {
	switch {
	case x != x:
		return y
	case y != y:
		return x
	}
	return min(x, y)
}

func (Hardware) Fminf(x, y float32) float32 {
	switch {
	case x != x:
		return y
	case y != y:
		return x
	}
	return min(x, y)
}
