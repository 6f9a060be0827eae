// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package softfloat

import (
	"math"
)

// Max64 is the IEEE 754 maxNum of two binary64 values.
func Max64(x, y float64) (r float64, flags Flags) {
	b, flags := binary64.minmax(math.Float64bits(x), math.Float64bits(y), true)
	r = math.Float64frombits(b)
	return
}

// Min64 is the IEEE 754 minNum of two binary64 values.
func Min64(x, y float64) (r float64, flags Flags) {
	b, flags := binary64.minmax(math.Float64bits(x), math.Float64bits(y), false)
	r = math.Float64frombits(b)
	return
}

// Max32 is the IEEE 754 maxNum of two binary32 values.
func Max32(x, y float32) (r float32, flags Flags) {
	b, flags := binary32.minmax(uint64(math.Float32bits(x)), uint64(math.Float32bits(y)), true)
	r = math.Float32frombits(uint32(b))
	return
}

// Min32 is the IEEE 754 minNum of two binary32 values.
func Min32(x, y float32) (r float32, flags Flags) {
	b, flags := binary32.minmax(uint64(math.Float32bits(x)), uint64(math.Float32bits(y)), false)
	r = math.Float32frombits(uint32(b))
	return
}

// minmax returns the non-NaN operand when only one is NaN, and the
// canonical NaN when both are. Signaling NaNs raise FLAG_NV.
func (ft format) minmax(x, y uint64, wantMax bool) (r uint64, flags Flags) {
	if ft.isSignalingNaN(x) || ft.isSignalingNaN(y) {
		flags |= FLAG_NV
	}

	xNaN, yNaN := ft.isNaN(x), ft.isNaN(y)
	switch {
	case xNaN && yNaN:
		r = ft.canonicalNaN()
		return
	case xNaN:
		r = y
		return
	case yNaN:
		r = x
		return
	}

	if ft.less(x, y) == wantMax {
		r = y
	} else {
		r = x
	}

	return
}

// less orders non-NaN encodings, with -0 below +0.
func (ft format) less(x, y uint64) bool {
	xNeg, yNeg := ft.signOf(x), ft.signOf(y)
	if xNeg != yNeg {
		return xNeg
	}
	if xNeg {
		return x > y
	}
	return x < y
}
