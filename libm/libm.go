// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package libm

// Impl is one implementation of the libm core.
type Impl interface {
	Name() string

	Fma(x, y, z float64) float64  // x*y+z, rounded once.
	Fmaf(x, y, z float32) float32 // x*y+z, rounded once.
	Fmax(x, y float64) float64    // maxNum.
	Fmaxf(x, y float32) float32   // maxNum.
	Fmin(x, y float64) float64    // minNum.
	Fminf(x, y float32) float32   // minNum.
}

var (
	_ Impl = Hardware{}
	_ Impl = Software{}
	_ Impl = Tracked{}
)

// Fma computes x*y+z with a single rounding, using the default Impl.
func Fma(x, y, z float64) float64 {
	return Default().Fma(x, y, z)
}

// Fmaf computes x*y+z with a single rounding, using the default Impl.
func Fmaf(x, y, z float32) float32 {
	return Default().Fmaf(x, y, z)
}

// Fmax returns the larger of x and y, ignoring a single NaN.
func Fmax(x, y float64) float64 {
	return Default().Fmax(x, y)
}

// Fmaxf returns the larger of x and y, ignoring a single NaN.
func Fmaxf(x, y float32) float32 {
	return Default().Fmaxf(x, y)
}

// Fmin returns the smaller of x and y, ignoring a single NaN.
func Fmin(x, y float64) float64 {
	return Default().Fmin(x, y)
}

// Fminf returns the smaller of x and y, ignoring a single NaN.
func Fminf(x, y float32) float32 {
	return Default().Fminf(x, y)
}
