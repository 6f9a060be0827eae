// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package softfloat

import (
	"strings"
)

// Flags is the set of accrued IEEE 754 exceptions, laid out as the RISC-V
// fflags register.
type Flags uint8

const (
	FLAG_NX = Flags(1 << 0) // Inexact
	FLAG_UF = Flags(1 << 1) // Underflow
	FLAG_OF = Flags(1 << 2) // Overflow
	FLAG_DZ = Flags(1 << 3) // Divide by zero
	FLAG_NV = Flags(1 << 4) // Invalid operation

	FLAG_MASK = Flags(0x1f)
)

var _flag_names = [...]struct {
	flag Flags
	name string
}{
	{FLAG_NV, "NV"},
	{FLAG_DZ, "DZ"},
	{FLAG_OF, "OF"},
	{FLAG_UF, "UF"},
	{FLAG_NX, "NX"},
}

// Has reports whether every flag in mask is raised.
func (fl Flags) Has(mask Flags) bool {
	return fl&mask == mask
}

// String lists the raised flags, most severe first, as "NV|NX".
func (fl Flags) String() string {
	if fl&FLAG_MASK == 0 {
		return "none"
	}

	var names []string
	for _, fn := range _flag_names {
		if fl&fn.flag != 0 {
			names = append(names, fn.name)
		}
	}

	return strings.Join(names, "|")
}
