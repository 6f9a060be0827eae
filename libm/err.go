// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package libm

import (
	"github.com/ezrec/fmath/translate"
)

var f = translate.From

// ErrMode is an unknown implementation selection mode.
type ErrMode string

func (err ErrMode) Error() string {
	return f("implementation '%v' unknown (want auto, hardware or software)", string(err))
}

func (err ErrMode) Is(target error) (ok bool) {
	_, ok = target.(ErrMode)
	return
}
