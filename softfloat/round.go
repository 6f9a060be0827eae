// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package softfloat

import (
	"strings"
)

// RoundingMode selects how an inexact result is rounded.
// The values match the RISC-V frm field.
type RoundingMode int

//go:generate go tool stringer -linecomment -type=RoundingMode
const (
	RM_RNE = RoundingMode(0) // rne
	RM_RTZ = RoundingMode(1) // rtz
	RM_RDN = RoundingMode(2) // rdn
	RM_RUP = RoundingMode(3) // rup
	RM_RMM = RoundingMode(4) // rmm
)

// ParseRoundingMode accepts the mnemonic of a rounding mode, in any case.
func ParseRoundingMode(name string) (rm RoundingMode, err error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for rm = RM_RNE; rm <= RM_RMM; rm++ {
		if rm.String() == name {
			return
		}
	}

	rm = RM_RNE
	err = ErrRoundingMode(name)
	return
}

// roundShift drops the low shift bits of m, rounding the remainder per rm.
// The kept value must fit in 64 bits. Out of range modes round as RM_RNE.
func roundShift(negative bool, m uint128, shift int, rm RoundingMode) (keep uint64, inexact bool) {
	if shift <= 0 {
		keep = m.shl(uint(-shift)).lo
		return
	}

	var q, rem uint128
	if shift >= 128 {
		rem = m
	} else {
		q = m.shr(uint(shift))
		rem = m.and(lowMask(uint(shift)))
	}

	keep = q.lo
	if rem.isZero() {
		return
	}
	inexact = true

	half := -1
	if shift <= 128 {
		half = rem.cmp(uint128{0, 1}.shl(uint(shift - 1)))
	}

	var up bool
	switch rm {
	case RM_RTZ:
	case RM_RDN:
		up = negative
	case RM_RUP:
		up = !negative
	case RM_RMM:
		up = half >= 0
	default:
		up = half > 0 || (half == 0 && keep&1 == 1)
	}

	if up {
		keep++
	}

	return
}
