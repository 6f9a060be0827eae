// Package softfloat emulates the IEEE 754 binary32 and binary64 operations
// of a RISC-V F/D floating point unit in integer arithmetic.
//
// Fused multiply-add forms the exact product-sum in a 128-bit accumulator and
// rounds it once, under any of the five RISC-V rounding modes. Minimum and
// maximum follow IEEE 754-2008 minNum/maxNum. Every operation returns the
// exception flags it raised alongside its result; a Context accrues them
// the way the fflags register does.
//
// NaN results are always the canonical quiet NaN.
package softfloat
