// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package reference

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFmaSpecial(t *testing.T) {
	assert := assert.New(t)

	negz := math.Copysign(0, -1)
	inf := math.Inf(1)

	table := [](struct {
		x, y, z float64
		want    float64
	}){
		{2, 3, 4, 10},
		{0.1, 10, -1, 0x1p-54},
		{-1, 1, 1, 0},
		{negz, 1, negz, negz},
		{0, -1, negz, negz},
		{0, 1, negz, 0},
		{0, 5, 7, 7},
		{inf, -2, 1, -inf},
		{1, 1, -inf, -inf},
		{1e308, 10, 0, inf},
		{math.MaxFloat64, 1, 0x1p970, inf},
		{math.MaxFloat64, 1, 0x1p969, math.MaxFloat64},
		{0x1p-1074, 0.5, 0, 0},
		{0x1p-1074, 0.75, 0, 0x1p-1074},
		{math.MaxFloat64, math.MaxFloat64, -inf, -inf},
		{0x1p-1074, 0x1p-1074, math.MaxFloat64, math.MaxFloat64},
	}

	for _, entry := range table {
		got := Fma(entry.x, entry.y, entry.z)
		assert.Equal(math.Float64bits(entry.want), math.Float64bits(got), "fma(%x, %x, %x)", entry.x, entry.y, entry.z)
	}

	assert.True(math.IsNaN(Fma(inf, 0, 1)))
	assert.True(math.IsNaN(Fma(1, 1, math.NaN())))
	assert.True(math.IsNaN(float64(Fmaf(float32(inf), 0, 1))))
	assert.Equal(float32(0x1.000002p0), Fmaf(0x281p-28, 0x663d81p-28, 1))
	assert.Equal(float32(-0x1p-46), Fmaf(0x1.000002p0, 0x1.fffffcp-1, -1))
}

func TestFmaAgainstMath(t *testing.T) {
	assert := assert.New(t)

	rng := rand.New(rand.NewPCG(1, 2))

	for n := 0; n < 300; n++ {
		var v [3]float64
		for i := range v {
			biased := uint64(rng.IntN(2047))
			v[i] = math.Float64frombits(rng.Uint64()&(1<<63|1<<52-1) | biased<<52)
		}

		want := math.FMA(v[0], v[1], v[2])
		got := Fma(v[0], v[1], v[2])
		assert.Equal(math.Float64bits(want), math.Float64bits(got), "fma(%x, %x, %x)", v[0], v[1], v[2])
	}
}
