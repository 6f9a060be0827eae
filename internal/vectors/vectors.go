// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package vectors loads and runs YAML test vectors against a libm.Impl.
package vectors

import (
	"bytes"
	_ "embed"
	"errors"
	"io"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/ezrec/fmath/libm"
	"github.com/ezrec/fmath/translate"
)

var f = translate.From

var (
	ErrOp    = errors.New(f("operation unknown"))
	ErrArity = errors.New(f("wrong number of arguments"))
)

// ErrOperand is an argument or expectation that does not parse as a number.
type ErrOperand string

func (err ErrOperand) Error() string {
	return f("'%v' is not a number", string(err))
}

// ErrVector locates a failure in a named vector.
type ErrVector struct {
	Name string
	Err  error
}

func (err *ErrVector) Error() string {
	return f("%v: %v", err.Name, err.Err)
}

func (err *ErrVector) Unwrap() error {
	return err.Err
}

// ErrMismatch is a result that differs from the expectation.
type ErrMismatch struct {
	Got  uint64
	Want uint64
}

func (err *ErrMismatch) Error() string {
	return f("got 0x%x, want 0x%x", err.Got, err.Want)
}

//go:embed ieee.yaml
var builtin []byte

// Vector is one operation with its expected result. Numbers are written as
// strconv.ParseFloat accepts them, including hex floats, nan and inf.
// Non-NaN results must match bit for bit, so the sign of zero counts.
type Vector struct {
	Name string   `yaml:"name"`
	Op   string   `yaml:"op"`
	Args []string `yaml:"args"`
	Want string   `yaml:"want"`
}

type op struct {
	arity  int
	single bool
	run    func(impl libm.Impl, a []float64) float64
}

var _ops = map[string]op{
	"fma": {3, false, func(impl libm.Impl, a []float64) float64 {
		return impl.Fma(a[0], a[1], a[2])
	}},
	"fmaf": {3, true, func(impl libm.Impl, a []float64) float64 {
		return float64(impl.Fmaf(float32(a[0]), float32(a[1]), float32(a[2])))
	}},
	"fmax": {2, false, func(impl libm.Impl, a []float64) float64 {
		return impl.Fmax(a[0], a[1])
	}},
	"fmaxf": {2, true, func(impl libm.Impl, a []float64) float64 {
		return float64(impl.Fmaxf(float32(a[0]), float32(a[1])))
	}},
	"fmin": {2, false, func(impl libm.Impl, a []float64) float64 {
		return impl.Fmin(a[0], a[1])
	}},
	"fminf": {2, true, func(impl libm.Impl, a []float64) float64 {
		return float64(impl.Fminf(float32(a[0]), float32(a[1])))
	}},
}

// Builtin returns the vectors shipped with the package.
func Builtin() (vs []Vector) {
	vs, err := Load(bytes.NewReader(builtin))
	if err != nil {
		panic(err)
	}
	return
}

// Load decodes a YAML list of vectors.
func Load(r io.Reader) (vs []Vector, err error) {
	err = yaml.NewDecoder(r).Decode(&vs)
	if errors.Is(err, io.EOF) {
		err = nil
	}
	return
}

// Parse converts the operands of op at its precision.
func Parse(op string, texts []string) (args []float64, err error) {
	o, ok := _ops[op]
	if !ok {
		err = ErrOp
		return
	}
	if len(texts) != o.arity {
		err = ErrArity
		return
	}

	args = make([]float64, o.arity)
	for n, text := range texts {
		args[n], err = ParseOperand(text, o.single)
		if err != nil {
			return
		}
	}

	return
}

// Apply runs op on impl. Single precision results are widened exactly.
func Apply(impl libm.Impl, op string, args []float64) (r float64, err error) {
	o, ok := _ops[op]
	if !ok {
		err = ErrOp
		return
	}
	if len(args) != o.arity {
		err = ErrArity
		return
	}

	r = o.run(impl, args)
	return
}

// IsSingle reports whether op works in binary32.
func IsSingle(op string) bool {
	return _ops[op].single
}

// ParseOperand converts one number, rounding it to binary32 when single.
func ParseOperand(text string, single bool) (v float64, err error) {
	bitSize := 64
	if single {
		bitSize = 32
	}
	v, err = strconv.ParseFloat(text, bitSize)
	if err != nil {
		err = ErrOperand(text)
	}
	return
}

// Run evaluates the vector and compares the result to its expectation.
func (v Vector) Run(impl libm.Impl) (got float64, err error) {
	defer func() {
		if err != nil {
			err = &ErrVector{Name: v.Name, Err: err}
		}
	}()

	args, err := Parse(v.Op, v.Args)
	if err != nil {
		return
	}

	want, err := ParseOperand(v.Want, IsSingle(v.Op))
	if err != nil {
		return
	}

	got, err = Apply(impl, v.Op, args)
	if err != nil {
		return
	}

	if math.IsNaN(want) {
		if !math.IsNaN(got) {
			err = &ErrMismatch{Got: math.Float64bits(got), Want: math.Float64bits(want)}
		}
		return
	}

	if math.Float64bits(got) != math.Float64bits(want) {
		err = &ErrMismatch{Got: math.Float64bits(got), Want: math.Float64bits(want)}
	}

	return
}

// RunAll runs every vector, returning the failures.
func RunAll(impl libm.Impl, vs []Vector) (failed []error) {
	for _, v := range vs {
		_, err := v.Run(impl)
		if err != nil {
			failed = append(failed, err)
		}
	}
	return
}
