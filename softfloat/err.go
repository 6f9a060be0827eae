// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package softfloat

import (
	"github.com/ezrec/fmath/translate"
)

var f = translate.From

// ErrRoundingMode is returned for an unknown rounding mode mnemonic.
type ErrRoundingMode string

func (err ErrRoundingMode) Error() string {
	return f("rounding mode '%v' unknown", string(err))
}

func (err ErrRoundingMode) Is(target error) (ok bool) {
	_, ok = target.(ErrRoundingMode)
	return
}
