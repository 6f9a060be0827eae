// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package libm

import (
	"log"
	"os"
	"strings"
	"sync"
)

// Implementation selection modes, as accepted by Resolve and $FMATH_IMPL.
const (
	MODE_AUTO     = "auto"
	MODE_HARDWARE = "hardware"
	MODE_SOFTWARE = "software"
)

// ENV_IMPL names the environment variable read by Default.
const ENV_IMPL = "FMATH_IMPL"

// Select picks Hardware when it is allowed and the host can run every
// operation natively, and Software otherwise.
func Select(caps Capabilities) Impl {
	if !caps.SoftFloat && caps.FMA && caps.MinMax {
		return Hardware{}
	}

	return Software{}
}

// Resolve maps a selection mode to an implementation for the given host.
// The softfloat build tag overrides an explicit hardware request.
func Resolve(mode string, caps Capabilities, verbose bool) (impl Impl, err error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", MODE_AUTO:
		impl = Select(caps)
	case MODE_HARDWARE:
		if caps.SoftFloat {
			impl = Software{}
		} else {
			impl = Hardware{}
		}
	case MODE_SOFTWARE:
		impl = Software{}
	default:
		err = ErrMode(mode)
		return
	}

	if verbose {
		log.Printf("libm: mode %q, fma %v, minmax %v, softfloat %v: %v",
			mode, caps.FMA, caps.MinMax, caps.SoftFloat, impl.Name())
	}

	return
}

var defaultImpl = sync.OnceValue(func() Impl {
	caps := Detect()
	mode := os.Getenv(ENV_IMPL)

	impl, err := Resolve(mode, caps, false)
	if err != nil {
		log.Printf("libm: %v: %v", ENV_IMPL, err)
		impl = Select(caps)
	}

	return impl
})

// Default is the implementation chosen for this process, resolved on first
// use from Detect and $FMATH_IMPL.
func Default() Impl {
	return defaultImpl()
}
