// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package softfloat

import (
	"math/bits"
)

// format describes an IEEE 754 binary interchange format. Encodings are
// carried in the low bits of a uint64.
type format struct {
	fracBits uint // Explicit significand bits.
	expBits  uint // Biased exponent bits.
}

var (
	binary64 = format{fracBits: 52, expBits: 11}
	binary32 = format{fracBits: 23, expBits: 8}
)

// precision counts the implicit leading bit.
func (ft format) precision() int {
	return int(ft.fracBits) + 1
}

func (ft format) bias() int {
	return 1<<(ft.expBits-1) - 1
}

// emin is the exponent of the smallest normal value.
func (ft format) emin() int {
	return 1 - ft.bias()
}

func (ft format) expMax() uint64 {
	return 1<<ft.expBits - 1
}

func (ft format) signBit() uint64 {
	return 1 << (ft.fracBits + ft.expBits)
}

func (ft format) fracMask() uint64 {
	return 1<<ft.fracBits - 1
}

func (ft format) quietBit() uint64 {
	return 1 << (ft.fracBits - 1)
}

func (ft format) signOf(b uint64) bool {
	return b&ft.signBit() != 0
}

func (ft format) expOf(b uint64) uint64 {
	return (b >> ft.fracBits) & ft.expMax()
}

func (ft format) isNaN(b uint64) bool {
	return ft.expOf(b) == ft.expMax() && b&ft.fracMask() != 0
}

func (ft format) isSignalingNaN(b uint64) bool {
	return ft.isNaN(b) && b&ft.quietBit() == 0
}

func (ft format) isInf(b uint64) bool {
	return ft.expOf(b) == ft.expMax() && b&ft.fracMask() == 0
}

func (ft format) isZero(b uint64) bool {
	return b&^ft.signBit() == 0
}

// canonicalNaN is the positive quiet NaN with an empty payload.
func (ft format) canonicalNaN() uint64 {
	return ft.expMax()<<ft.fracBits | ft.quietBit()
}

func (ft format) withSign(negative bool, b uint64) uint64 {
	if negative {
		return b | ft.signBit()
	}
	return b
}

func (ft format) zero(negative bool) uint64 {
	return ft.withSign(negative, 0)
}

func (ft format) inf(negative bool) uint64 {
	return ft.withSign(negative, ft.expMax()<<ft.fracBits)
}

func (ft format) maxFinite(negative bool) uint64 {
	return ft.withSign(negative, (ft.expMax()-1)<<ft.fracBits|ft.fracMask())
}

// unpacked is a finite value as (-1)^negative * mant * 2^exp. Non-zero
// significands are normalized so the leading bit sits at fracBits.
type unpacked struct {
	negative bool
	exp      int
	mant     uint64
}

func (ft format) unpack(b uint64) (u unpacked) {
	u.negative = ft.signOf(b)
	e := ft.expOf(b)
	m := b & ft.fracMask()

	if e == 0 {
		if m == 0 {
			return
		}
		shift := bits.LeadingZeros64(m) - (63 - int(ft.fracBits))
		u.mant = m << uint(shift)
		u.exp = ft.emin() - int(ft.fracBits) - shift
		return
	}

	u.mant = m | 1<<ft.fracBits
	u.exp = int(e) - ft.bias() - int(ft.fracBits)
	return
}

// pack rounds (-1)^negative * m * 2^exp, m non-zero, into the format.
// Tininess is detected after rounding, as RISC-V and x86 do.
func (ft format) pack(negative bool, m uint128, exp int, rm RoundingMode) (b uint64, flags Flags) {
	p := ft.precision()
	emin := ft.emin()

	// The value lies in [2^e, 2^(e+1)).
	e := m.bitLen() - 1 + exp
	lsb := max(e, emin) - (p - 1)

	keep, inexact := roundShift(negative, m, lsb-exp, rm)
	if keep == 1<<p {
		keep >>= 1
		lsb++
	}

	if inexact {
		flags |= FLAG_NX
		if e < emin {
			tiny := true
			if e == emin-1 {
				wide, _ := roundShift(negative, m, e-(p-1)-exp, rm)
				tiny = wide < 1<<p
			}
			if tiny {
				flags |= FLAG_UF
			}
		}
	}

	if keep < 1<<(p-1) {
		// Subnormal or zero.
		b = ft.withSign(negative, keep)
		return
	}

	biased := lsb + (p - 1) + ft.bias()
	if biased >= int(ft.expMax()) {
		b = ft.overflow(negative, rm)
		flags |= FLAG_OF | FLAG_NX
		return
	}

	b = ft.withSign(negative, uint64(biased)<<ft.fracBits|keep&ft.fracMask())
	return
}

func (ft format) overflow(negative bool, rm RoundingMode) uint64 {
	switch rm {
	case RM_RTZ:
		return ft.maxFinite(negative)
	case RM_RDN:
		if !negative {
			return ft.maxFinite(negative)
		}
	case RM_RUP:
		if negative {
			return ft.maxFinite(negative)
		}
	}
	return ft.inf(negative)
}
