// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package softfloat

import (
	"math/bits"
)

// uint128 is the wide accumulator for the exact product-sum.
type uint128 struct {
	hi, lo uint64
}

func (u uint128) isZero() bool {
	return u.hi|u.lo == 0
}

func (u uint128) cmp(v uint128) int {
	switch {
	case u.hi < v.hi:
		return -1
	case u.hi > v.hi:
		return 1
	case u.lo < v.lo:
		return -1
	case u.lo > v.lo:
		return 1
	}
	return 0
}

func (u uint128) add(v uint128) (w uint128) {
	var carry uint64
	w.lo, carry = bits.Add64(u.lo, v.lo, 0)
	w.hi, _ = bits.Add64(u.hi, v.hi, carry)
	return
}

// sub requires u >= v.
func (u uint128) sub(v uint128) (w uint128) {
	var borrow uint64
	w.lo, borrow = bits.Sub64(u.lo, v.lo, 0)
	w.hi, _ = bits.Sub64(u.hi, v.hi, borrow)
	return
}

func (u uint128) and(v uint128) uint128 {
	return uint128{u.hi & v.hi, u.lo & v.lo}
}

func (u uint128) shl(n uint) uint128 {
	switch {
	case n == 0:
		return u
	case n >= 128:
		return uint128{}
	case n >= 64:
		return uint128{u.lo << (n - 64), 0}
	}
	return uint128{u.hi<<n | u.lo>>(64-n), u.lo << n}
}

func (u uint128) shr(n uint) uint128 {
	switch {
	case n == 0:
		return u
	case n >= 128:
		return uint128{}
	case n >= 64:
		return uint128{0, u.hi >> (n - 64)}
	}
	return uint128{u.hi >> n, u.lo>>n | u.hi<<(64-n)}
}

// shrSticky shifts right, folding every bit shifted out into bit 0.
func (u uint128) shrSticky(n uint) uint128 {
	if n == 0 {
		return u
	}
	if n >= 128 {
		if u.isZero() {
			return u
		}
		return uint128{0, 1}
	}
	w := u.shr(n)
	if !u.and(lowMask(n)).isZero() {
		w.lo |= 1
	}
	return w
}

// bitLen is the number of bits needed to represent u.
func (u uint128) bitLen() int {
	if u.hi != 0 {
		return 64 + bits.Len64(u.hi)
	}
	return bits.Len64(u.lo)
}

// lowMask has the low n bits set, n < 128.
func lowMask(n uint) uint128 {
	return uint128{0, 1}.shl(n).sub(uint128{0, 1})
}
