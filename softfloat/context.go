// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package softfloat

// Context mirrors the RISC-V fcsr: a dynamic rounding mode and the accrued
// exception flags. A Context must not be shared between goroutines.
type Context struct {
	Rounding RoundingMode // Dynamic rounding mode (frm).
	Flags    Flags        // Accrued exceptions (fflags).
}

// Clear returns the accrued flags and resets them.
func (ctx *Context) Clear() (flags Flags) {
	flags = ctx.Flags
	ctx.Flags = 0
	return
}

func (ctx *Context) FMA64(x, y, z float64) (r float64) {
	r, flags := FMA64(x, y, z, ctx.Rounding)
	ctx.Flags |= flags
	return
}

func (ctx *Context) FMA32(x, y, z float32) (r float32) {
	r, flags := FMA32(x, y, z, ctx.Rounding)
	ctx.Flags |= flags
	return
}

func (ctx *Context) Max64(x, y float64) (r float64) {
	r, flags := Max64(x, y)
	ctx.Flags |= flags
	return
}

func (ctx *Context) Min64(x, y float64) (r float64) {
	r, flags := Min64(x, y)
	ctx.Flags |= flags
	return
}

func (ctx *Context) Max32(x, y float32) (r float32) {
	r, flags := Max32(x, y)
	ctx.Flags |= flags
	return
}

func (ctx *Context) Min32(x, y float32) (r float32) {
	r, flags := Min32(x, y)
	ctx.Flags |= flags
	return
}
