// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package softfloat

import (
	"math"
)

// Class is the category of a floating point value, numbered as the bit
// index of the RISC-V fclass result.
type Class int

//go:generate go tool stringer -linecomment -type=Class
const (
	CLASS_NEG_INF       = Class(0) // -inf
	CLASS_NEG_NORMAL    = Class(1) // -normal
	CLASS_NEG_SUBNORMAL = Class(2) // -subnormal
	CLASS_NEG_ZERO      = Class(3) // -zero
	CLASS_POS_ZERO      = Class(4) // +zero
	CLASS_POS_SUBNORMAL = Class(5) // +subnormal
	CLASS_POS_NORMAL    = Class(6) // +normal
	CLASS_POS_INF       = Class(7) // +inf
	CLASS_SNAN          = Class(8) // snan
	CLASS_QNAN          = Class(9) // qnan
)

// Mask is the one-hot fclass encoding of the class.
func (c Class) Mask() uint16 {
	return 1 << uint(c)
}

// IsNaN reports whether the class is either NaN.
func (c Class) IsNaN() bool {
	return c == CLASS_SNAN || c == CLASS_QNAN
}

// Classify64 returns the class of a binary64 value.
func Classify64(x float64) Class {
	return binary64.classify(math.Float64bits(x))
}

// Classify32 returns the class of a binary32 value.
func Classify32(x float32) Class {
	return binary32.classify(uint64(math.Float32bits(x)))
}

func (ft format) classify(b uint64) (c Class) {
	negative := ft.signOf(b)
	e := ft.expOf(b)
	m := b & ft.fracMask()

	switch {
	case e == ft.expMax() && m != 0:
		if m&ft.quietBit() != 0 {
			return CLASS_QNAN
		}
		return CLASS_SNAN
	case e == ft.expMax():
		c = CLASS_POS_INF
	case e == 0 && m == 0:
		c = CLASS_POS_ZERO
	case e == 0:
		c = CLASS_POS_SUBNORMAL
	default:
		c = CLASS_POS_NORMAL
	}

	if negative {
		// Negative classes mirror the positive ones around the zeros.
		c = CLASS_POS_ZERO + CLASS_NEG_ZERO - c
	}

	return
}
