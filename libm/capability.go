// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package libm

import (
	"iter"
	"maps"
	"runtime"

	"golang.org/x/sys/cpu"

	"github.com/ezrec/fmath/internal"
)

// Capabilities of the host floating point unit.
type Capabilities struct {
	FMA       bool // Fused multiply-add instruction.
	MinMax    bool // Floating point min/max or compare-select instructions.
	SoftFloat bool // Emulation forced by the softfloat build tag.
}

// Detect probes the host once per call. The result only depends on the
// build and the CPU, so callers may cache it.
func Detect() (caps Capabilities) {
	caps.SoftFloat = _SOFTFLOAT

	switch runtime.GOARCH {
	case "amd64":
		caps.FMA = cpu.X86.HasFMA
		caps.MinMax = cpu.X86.HasSSE2
	case "386":
		// math.FMA has no intrinsic here.
		caps.MinMax = cpu.X86.HasSSE2
	case "arm":
		caps.FMA = cpu.ARM.HasVFPv4
	case "arm64", "riscv64", "loong64":
		// Scalar FMA and min/max are in the base ISA.
		caps.FMA = true
		caps.MinMax = true
	case "ppc64", "ppc64le", "s390x":
		caps.FMA = true
	}

	return
}

// All lists the capabilities by name.
func (caps Capabilities) All() iter.Seq2[string, bool] {
	return maps.All(map[string]bool{
		"fma":       caps.FMA,
		"minmax":    caps.MinMax,
		"softfloat": caps.SoftFloat,
	})
}

// Features lists the capabilities followed by the raw host CPU feature bits
// they were derived from.
func (caps Capabilities) Features() iter.Seq2[string, bool] {
	var host map[string]bool

	switch runtime.GOARCH {
	case "amd64", "386":
		host = map[string]bool{
			"x86.fma":     cpu.X86.HasFMA,
			"x86.sse2":    cpu.X86.HasSSE2,
			"x86.sse41":   cpu.X86.HasSSE41,
			"x86.avx":     cpu.X86.HasAVX,
			"x86.avx2":    cpu.X86.HasAVX2,
			"x86.avx512f": cpu.X86.HasAVX512F,
		}
	case "arm64":
		host = map[string]bool{
			"arm64.fp":    cpu.ARM64.HasFP,
			"arm64.asimd": cpu.ARM64.HasASIMD,
			"arm64.fphp":  cpu.ARM64.HasFPHP,
		}
	case "arm":
		host = map[string]bool{
			"arm.vfp":   cpu.ARM.HasVFP,
			"arm.vfpv3": cpu.ARM.HasVFPv3,
			"arm.vfpv4": cpu.ARM.HasVFPv4,
		}
	}

	return internal.IterSeq2Concat(caps.All(), maps.All(host))
}
