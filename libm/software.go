// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package libm

import (
	"github.com/ezrec/fmath/softfloat"
)

// Software evaluates with the integer emulation in softfloat. Exception
// flags are discarded; use a softfloat.Context to observe them.
type Software struct {
	Rounding softfloat.RoundingMode // Rounding mode for Fma and Fmaf.
}

func (Software) Name() string {
	return "software"
}

func (sw Software) Fma(x, y, z float64) (r float64) {
	r, _ = softfloat.FMA64(x, y, z, sw.Rounding)
	return
}

func (sw Software) Fmaf(x, y, z float32) (r float32) {
	r, _ = softfloat.FMA32(x, y, z, sw.Rounding)
	return
}

func (Software) Fmax(x, y float64) (r float64) {
	r, _ = softfloat.Max64(x, y)
	return
}

func (Software) Fmaxf(x, y float32) (r float32) {
	r, _ = softfloat.Max32(x, y)
	return
}

func (Software) Fmin(x, y float64) (r float64) {
	r, _ = softfloat.Min64(x, y)
	return
}

func (Software) Fminf(x, y float32) (r float32) {
	r, _ = softfloat.Min32(x, y)
	return
}

// Tracked is Software with a caller owned softfloat.Context supplying the
// rounding mode and accruing the exception flags.
type Tracked struct {
	*softfloat.Context
}

func (Tracked) Name() string {
	return "software"
}

func (t Tracked) Fma(x, y, z float64) float64 {
	return t.Context.FMA64(x, y, z)
}

func (t Tracked) Fmaf(x, y, z float32) float32 {
	return t.Context.FMA32(x, y, z)
}

func (t Tracked) Fmax(x, y float64) float64 {
	return t.Context.Max64(x, y)
}

func (t Tracked) Fmaxf(x, y float32) float32 {
	return t.Context.Max32(x, y)
}

func (t Tracked) Fmin(x, y float64) float64 {
	return t.Context.Min64(x, y)
}

func (t Tracked) Fminf(x, y float32) float32 {
	return t.Context.Min32(x, y)
}
