// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package vectors

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/fmath/libm"
)

func TestBuiltin(t *testing.T) {
	vs := Builtin()
	assert.NotEmpty(t, vs)

	names := map[string]bool{}
	for _, v := range vs {
		assert.False(t, names[v.Name], "duplicate %v", v.Name)
		names[v.Name] = true
	}

	for _, impl := range []libm.Impl{libm.Hardware{}, libm.Software{}} {
		t.Run(impl.Name(), func(t *testing.T) {
			for _, err := range RunAll(impl, vs) {
				t.Error(err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	assert := assert.New(t)

	vs, err := Load(strings.NewReader(""))
	assert.NoError(err)
	assert.Empty(vs)

	vs, err = Load(strings.NewReader(`
- name: one
  op: fmin
  args: ["1", "-1"]
  want: "-1"
`))
	assert.NoError(err)
	assert.Equal([]Vector{{Name: "one", Op: "fmin", Args: []string{"1", "-1"}, Want: "-1"}}, vs)

	_, err = Load(strings.NewReader("name: [unclosed"))
	assert.Error(err)
}

func TestRunErrors(t *testing.T) {
	assert := assert.New(t)

	impl := libm.Software{}

	table := [](struct {
		v   Vector
		err error
	}){
		{Vector{Name: "ok", Op: "fma", Args: []string{"2", "3", "4"}, Want: "10"}, nil},
		{Vector{Name: "op", Op: "fdiv", Args: []string{"1", "2"}, Want: "0.5"}, ErrOp},
		{Vector{Name: "arity", Op: "fmax", Args: []string{"1"}, Want: "1"}, ErrArity},
		{Vector{Name: "arg", Op: "fmax", Args: []string{"1", "two"}, Want: "2"}, ErrOperand("two")},
		{Vector{Name: "want", Op: "fmax", Args: []string{"1", "2"}, Want: "two"}, ErrOperand("two")},
	}

	for _, entry := range table {
		_, err := entry.v.Run(impl)
		if entry.err == nil {
			assert.NoError(err, entry.v.Name)
			continue
		}

		var verr *ErrVector
		if assert.True(errors.As(err, &verr), entry.v.Name) {
			assert.Equal(entry.v.Name, verr.Name)
		}
		assert.True(errors.Is(err, entry.err), entry.v.Name)
	}
}

func TestRunMismatch(t *testing.T) {
	assert := assert.New(t)

	impl := libm.Software{}

	table := [](struct {
		v         Vector
		got, want uint64
	}){
		{Vector{Name: "value", Op: "fma", Args: []string{"2", "3", "4"}, Want: "11"}, math.Float64bits(10), math.Float64bits(11)},
		{Vector{Name: "zero_sign", Op: "fmin", Args: []string{"0", "-0"}, Want: "0"}, 1 << 63, 0},
		{Vector{Name: "nan", Op: "fmax", Args: []string{"nan", "1"}, Want: "nan"}, math.Float64bits(1), math.Float64bits(math.NaN())},
	}

	for _, entry := range table {
		_, err := entry.v.Run(impl)

		var mismatch *ErrMismatch
		if assert.True(errors.As(err, &mismatch), entry.v.Name) {
			assert.Equal(entry.got, mismatch.Got, entry.v.Name)
			assert.Equal(entry.want, mismatch.Want, entry.v.Name)
		}
	}

	failed := RunAll(impl, []Vector{table[0].v, {Name: "ok", Op: "fmax", Args: []string{"1", "2"}, Want: "2"}})
	assert.Len(failed, 1)
}

func TestParseOperand(t *testing.T) {
	assert := assert.New(t)

	v, err := ParseOperand("0x1p-149", true)
	assert.NoError(err)
	assert.Equal(0x1p-149, v)

	v, err = ParseOperand("0.1", true)
	assert.NoError(err)
	assert.Equal(float64(float32(0.1)), v)

	v, err = ParseOperand("-inf", false)
	assert.NoError(err)
	assert.True(math.IsInf(v, -1))

	_, err = ParseOperand("1e400", false)
	assert.Equal(ErrOperand("1e400"), err)

	assert.True(IsSingle("fmaf"))
	assert.False(IsSingle("fma"))
	assert.False(IsSingle("nope"))

	args, err := Parse("fmaxf", []string{"1", "0.1"})
	assert.NoError(err)
	assert.Equal([]float64{1, float64(float32(0.1))}, args)

	r, err := Apply(libm.Software{}, "fminf", args)
	assert.NoError(err)
	assert.Equal(float64(float32(0.1)), r)

	_, err = Apply(libm.Software{}, "fminf", args[:1])
	assert.Equal(ErrArity, err)
}
