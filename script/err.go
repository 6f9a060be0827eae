// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package script

import (
	"errors"

	"github.com/ezrec/fmath/translate"
)

var f = translate.From

var (
	ErrScriptResult = errors.New(f("expression is not a number"))
)

// ErrScript locates an evaluation failure.
type ErrScript struct {
	Expr string
	Err  error
}

func (err *ErrScript) Error() string {
	return f("$(%v) %v", err.Expr, err.Err)
}

func (err *ErrScript) Unwrap() error {
	return err.Err
}

// ErrArgument is a function argument that is not a number.
type ErrArgument string

func (err ErrArgument) Error() string {
	return f("got %v, want float or int", string(err))
}
