// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package script evaluates Starlark expressions over the libm functions.
package script

import (
	"math"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/fmath/libm"
	"github.com/ezrec/fmath/softfloat"
)

type builtinFn func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error)

// Predeclared returns the names visible to an expression: the six libm
// functions bound to impl, classify, and the constants nan and inf.
func Predeclared(impl libm.Impl) starlark.StringDict {
	fns := map[string]builtinFn{
		"fma": ternary(impl.Fma),
		"fmaf": ternary(func(x, y, z float64) float64 {
			return float64(impl.Fmaf(float32(x), float32(y), float32(z)))
		}),
		"fmax": binary(impl.Fmax),
		"fmaxf": binary(func(x, y float64) float64 {
			return float64(impl.Fmaxf(float32(x), float32(y)))
		}),
		"fmin": binary(impl.Fmin),
		"fminf": binary(func(x, y float64) float64 {
			return float64(impl.Fminf(float32(x), float32(y)))
		}),
		"classify": classify,
	}

	dict := starlark.StringDict{
		"nan": starlark.Float(math.NaN()),
		"inf": starlark.Float(math.Inf(1)),
	}
	for name, fn := range fns {
		dict[name] = starlark.NewBuiltin(name, fn)
	}

	return dict
}

// Eval evaluates expr and returns its numeric value.
func Eval(impl libm.Impl, expr string) (value float64, err error) {
	thread := starlark.Thread{Name: "fmath"}
	opts := syntax.FileOptions{}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, Predeclared(impl))
	if err != nil {
		err = &ErrScript{Expr: expr, Err: err}
		return
	}

	rc, ok := dict["rc"]
	if !ok {
		err = &ErrScript{Expr: expr, Err: ErrScriptResult}
		return
	}

	value, ok = starlark.AsFloat(rc)
	if !ok {
		err = &ErrScript{Expr: expr, Err: ErrScriptResult}
		return
	}

	return
}

func ternary(op func(x, y, z float64) float64) builtinFn {
	return func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		v, err := floats(b, args, kwargs, 3)
		if err != nil {
			return nil, err
		}
		return starlark.Float(op(v[0], v[1], v[2])), nil
	}
}

func binary(op func(x, y float64) float64) builtinFn {
	return func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		v, err := floats(b, args, kwargs, 2)
		if err != nil {
			return nil, err
		}
		return starlark.Float(op(v[0], v[1])), nil
	}
}

func classify(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	v, err := floats(b, args, kwargs, 1)
	if err != nil {
		return nil, err
	}
	return starlark.String(softfloat.Classify64(v[0]).String()), nil
}

// floats unpacks exactly n numeric positional arguments.
func floats(b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple, n int) (v []float64, err error) {
	vals := make([]starlark.Value, n)
	ptrs := make([]any, n)
	for i := range vals {
		ptrs[i] = &vals[i]
	}
	err = starlark.UnpackPositionalArgs(b.Name(), args, kwargs, n, ptrs...)
	if err != nil {
		return
	}

	v = make([]float64, n)
	for i, val := range vals {
		var ok bool
		v[i], ok = starlark.AsFloat(val)
		if !ok {
			err = ErrArgument(val.Type())
			return
		}
	}

	return
}
