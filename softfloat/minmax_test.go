// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package softfloat

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinMax64(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name     string
		x, y     float64
		max, min float64
		flags    Flags
	}){
		{"ordered", 3, 5, 5, 3, 0},
		{"reversed", 5, 3, 5, 3, 0},
		{"negative", -1, -7, -1, -7, 0},
		{"equal", 2, 2, 2, 2, 0},
		{"zeros", 0, negz, 0, negz, 0},
		{"zeros_reversed", negz, 0, 0, negz, 0},
		{"infinities", -inf, inf, inf, -inf, 0},
		{"subnormal", 0x1p-1074, -0x1p-1074, 0x1p-1074, -0x1p-1074, 0},
		{"nan_first", nan, 5, 5, 5, 0},
		{"nan_second", -5, nan, -5, -5, 0},
		{"nan_both", nan, nan, nan, nan, 0},
		{"snan", snan64, 1, 1, 1, FLAG_NV},
		{"snan_both", snan64, snan64, nan, nan, FLAG_NV},
	}

	for _, entry := range table {
		check := func(op string, got, want float64, flags Flags) {
			assert.Equal(entry.flags, flags, "%v %v flags", entry.name, op)
			if math.IsNaN(want) {
				assert.Equal(binary64.canonicalNaN(), math.Float64bits(got), "%v %v", entry.name, op)
				return
			}
			assert.Equal(math.Float64bits(want), math.Float64bits(got), "%v %v", entry.name, op)
		}

		got, flags := Max64(entry.x, entry.y)
		check("max", got, entry.max, flags)
		got, flags = Min64(entry.x, entry.y)
		check("min", got, entry.min, flags)
	}
}

func TestMinMax32(t *testing.T) {
	assert := assert.New(t)

	nan32 := float32(nan)
	negz32 := float32(negz)

	table := [](struct {
		name     string
		x, y     float32
		max, min float32
		flags    Flags
	}){
		{"ordered", 3, 5, 5, 3, 0},
		{"zeros", negz32, 0, 0, negz32, 0},
		{"limits", -math.MaxFloat32, math.MaxFloat32, math.MaxFloat32, -math.MaxFloat32, 0},
		{"nan_first", nan32, 5, 5, 5, 0},
		{"nan_both", nan32, nan32, nan32, nan32, 0},
		{"snan", 1, snan32, 1, 1, FLAG_NV},
	}

	for _, entry := range table {
		check := func(op string, got, want float32, flags Flags) {
			assert.Equal(entry.flags, flags, "%v %v flags", entry.name, op)
			if math.IsNaN(float64(want)) {
				assert.Equal(uint32(binary32.canonicalNaN()), math.Float32bits(got), "%v %v", entry.name, op)
				return
			}
			assert.Equal(math.Float32bits(want), math.Float32bits(got), "%v %v", entry.name, op)
		}

		got, flags := Max32(entry.x, entry.y)
		check("max", got, entry.max, flags)
		got, flags = Min32(entry.x, entry.y)
		check("min", got, entry.min, flags)
	}
}

func FuzzMinMax64(f *testing.F) {
	f.Add(3.0, 5.0)
	f.Add(0.0, math.Copysign(0, -1))
	f.Add(math.NaN(), 1.0)

	f.Fuzz(func(t *testing.T, x, y float64) {
		hi, _ := Max64(x, y)
		lo, _ := Min64(x, y)

		if math.IsNaN(x) || math.IsNaN(y) {
			return
		}

		if hi != math.Max(x, y) || lo != math.Min(x, y) {
			t.Errorf("minmax(%x, %x) = %x, %x", x, y, hi, lo)
		}
		if math.Signbit(hi) != math.Signbit(math.Max(x, y)) {
			t.Errorf("max(%x, %x) sign", x, y)
		}
		if math.Signbit(lo) != math.Signbit(math.Min(x, y)) {
			t.Errorf("min(%x, %x) sign", x, y)
		}
	})
}
