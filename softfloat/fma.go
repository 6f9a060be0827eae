// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package softfloat

import (
	"math"
	"math/bits"
)

// Accumulator layout: the product is placed with its leading bit at 124 or
// 125, the addend with its leading bit at 125. Bits 126 and 127 absorb the
// carry of the addition.
const (
	_PRODUCT_TOP = 124
	_ADDEND_TOP  = 125
)

// FMA64 computes x*y+z in binary64 with a single rounding.
func FMA64(x, y, z float64, rm RoundingMode) (r float64, flags Flags) {
	b, flags := binary64.fma(math.Float64bits(x), math.Float64bits(y), math.Float64bits(z), rm)
	r = math.Float64frombits(b)
	return
}

// FMA32 computes x*y+z in binary32 with a single rounding.
func FMA32(x, y, z float32, rm RoundingMode) (r float32, flags Flags) {
	b, flags := binary32.fma(uint64(math.Float32bits(x)), uint64(math.Float32bits(y)), uint64(math.Float32bits(z)), rm)
	r = math.Float32frombits(uint32(b))
	return
}

func (ft format) fma(x, y, z uint64, rm RoundingMode) (r uint64, flags Flags) {
	if ft.isSignalingNaN(x) || ft.isSignalingNaN(y) || ft.isSignalingNaN(z) {
		flags |= FLAG_NV
	}

	// inf * 0 is invalid even when the addend is a quiet NaN.
	if (ft.isInf(x) && ft.isZero(y)) || (ft.isZero(x) && ft.isInf(y)) {
		r = ft.canonicalNaN()
		flags |= FLAG_NV
		return
	}

	if ft.isNaN(x) || ft.isNaN(y) || ft.isNaN(z) {
		r = ft.canonicalNaN()
		return
	}

	pNeg := ft.signOf(x) != ft.signOf(y)
	zNeg := ft.signOf(z)

	if ft.isInf(x) || ft.isInf(y) {
		if ft.isInf(z) && zNeg != pNeg {
			r = ft.canonicalNaN()
			flags |= FLAG_NV
			return
		}
		r = ft.inf(pNeg)
		return
	}

	if ft.isInf(z) {
		r = z
		return
	}

	if ft.isZero(x) || ft.isZero(y) {
		if ft.isZero(z) {
			r = ft.zero(zeroSumNegative(pNeg, zNeg, rm))
			return
		}
		r = z
		return
	}

	ux := ft.unpack(x)
	uy := ft.unpack(y)
	uz := ft.unpack(z)

	hi, lo := bits.Mul64(ux.mant, uy.mant)
	pShift := _PRODUCT_TOP - 2*int(ft.fracBits)
	prod := uint128{hi, lo}.shl(uint(pShift))
	pExp := ux.exp + uy.exp - pShift

	if uz.mant == 0 {
		r, flags = ft.pack(pNeg, prod, pExp, rm)
		return
	}

	zShift := _ADDEND_TOP - int(ft.fracBits)
	addend := uint128{0, uz.mant}.shl(uint(zShift))
	zExp := uz.exp - zShift

	// Align to the larger exponent. Bits shifted out only matter as sticky,
	// since the dropped operand is then far below the rounding point.
	exp := pExp
	if pExp >= zExp {
		addend = addend.shrSticky(uint(pExp - zExp))
	} else {
		prod = prod.shrSticky(uint(zExp - pExp))
		exp = zExp
	}

	negative := pNeg
	var sum uint128
	if pNeg == zNeg {
		sum = prod.add(addend)
	} else {
		switch prod.cmp(addend) {
		case 0:
			r = ft.zero(rm == RM_RDN)
			return
		case 1:
			sum = prod.sub(addend)
		default:
			sum = addend.sub(prod)
			negative = zNeg
		}
	}

	r, rflags := ft.pack(negative, sum, exp, rm)
	flags |= rflags
	return
}

// zeroSumNegative is the sign of an exact zero sum: the operands' sign when
// they agree, else -0 only when rounding down.
func zeroSumNegative(a, b bool, rm RoundingMode) bool {
	if a == b {
		return a
	}
	return rm == RM_RDN
}
