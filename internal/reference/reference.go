// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package reference computes fused multiply-add the slow way: the exact
// product-sum in arbitrary precision decimal, rounded once by strconv.
package reference

import (
	"math"
	"math/big"
	"strconv"

	"github.com/cockroachdb/apd/v3"
)

// Enough digits to hold any binary64 product-sum exactly.
const _PRECISION = 4000

var five = big.NewInt(5)

// Fma returns x*y+z rounded once to nearest-even binary64.
func Fma(x, y, z float64) float64 {
	if r, ok := special(x, y, z); ok {
		return r
	}

	s, zero := exactSum(x, y, z)
	if zero {
		return zeroSum(x, y, z)
	}

	return parse(s, 64)
}

// Fmaf returns x*y+z rounded once to nearest-even binary32.
func Fmaf(x, y, z float32) float32 {
	dx, dy, dz := float64(x), float64(y), float64(z)
	if r, ok := special(dx, dy, dz); ok {
		return float32(r)
	}

	s, zero := exactSum(dx, dy, dz)
	if zero {
		return float32(zeroSum(dx, dy, dz))
	}

	return float32(parse(s, 32))
}

// special handles the operands whose result needs no rounding.
func special(x, y, z float64) (r float64, ok bool) {
	switch {
	case math.IsNaN(x) || math.IsNaN(y) || math.IsNaN(z):
		return math.NaN(), true
	case math.IsInf(x, 0) || math.IsInf(y, 0):
		return x*y + z, true
	case math.IsInf(z, 0):
		return z, true
	case x == 0 || y == 0:
		if z == 0 {
			return zeroSum(x, y, z), true
		}
		return z, true
	}
	return 0, false
}

func zeroSum(x, y, z float64) float64 {
	if math.Signbit(x) != math.Signbit(y) && math.Signbit(z) {
		return math.Copysign(0, -1)
	}
	return 0
}

func exactSum(x, y, z float64) (text string, zero bool) {
	ctx := apd.BaseContext.WithPrecision(_PRECISION)

	var prod, sum apd.Decimal
	cond, err := ctx.Mul(&prod, exact(x), exact(y))
	if err != nil || cond.Inexact() {
		panic("reference: product not exact")
	}

	cond, err = ctx.Add(&sum, &prod, exact(z))
	if err != nil || cond.Inexact() {
		panic("reference: sum not exact")
	}

	if sum.IsZero() {
		zero = true
		return
	}

	text = sum.Text('e')
	return
}

// exact converts a finite binary64 to the decimal of identical value.
func exact(x float64) *apd.Decimal {
	frac, e := math.Frexp(x)
	m := int64(math.Ldexp(math.Abs(frac), 53))
	e -= 53

	coeff := big.NewInt(m)
	var d *apd.Decimal
	if e >= 0 {
		coeff.Lsh(coeff, uint(e))
		d = apd.NewWithBigInt(new(apd.BigInt).SetMathBigInt(coeff), 0)
	} else {
		// m * 2^e == m * 5^-e * 10^e
		coeff.Mul(coeff, new(big.Int).Exp(five, big.NewInt(int64(-e)), nil))
		d = apd.NewWithBigInt(new(apd.BigInt).SetMathBigInt(coeff), int32(e))
	}
	d.Negative = math.Signbit(x)

	return d
}

func parse(text string, bitSize int) float64 {
	r, err := strconv.ParseFloat(text, bitSize)
	if err != nil && !math.IsInf(r, 0) {
		panic("reference: " + err.Error())
	}
	return r
}
