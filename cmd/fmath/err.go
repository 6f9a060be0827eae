// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"

	"github.com/ezrec/fmath/translate"
)

var f = translate.From

var (
	ErrVerify = errors.New(f("vectors failed"))
	ErrCheck  = errors.New(f("results differ from the reference"))
)
