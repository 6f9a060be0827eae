// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"fmt"
	"io"
	"math"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/ezrec/fmath/internal/reference"
	"github.com/ezrec/fmath/libm"
)

// CheckOptions holds the flags of the check command.
type CheckOptions struct {
	Count  int
	Seed   uint64
	Single bool
}

// NewCheckCommand creates the command comparing fma against the exact
// decimal reference on random operands.
func NewCheckCommand(opts *RootOptions) *cobra.Command {
	co := &CheckOptions{}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Compare fma on random operands against an arbitrary precision reference",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			impl, err := opts.impl()
			if err != nil {
				return
			}

			bad := runCheck(cmd.OutOrStdout(), impl, co)
			if bad != 0 {
				err = ErrCheck
			}
			return
		},
	}

	cmd.Flags().IntVarP(&co.Count, "count", "n", 1000, "number of random operand triples")
	cmd.Flags().Uint64Var(&co.Seed, "seed", 1, "random seed")
	cmd.Flags().BoolVar(&co.Single, "f32", false, "single precision (binary32)")

	return cmd
}

// randomFloat has a random sign and significand, and a binary exponent in
// [-span, span], so that products and addends overlap often.
func randomFloat(rng *rand.Rand, span int) float64 {
	m := 1 + float64(rng.Uint64()>>11)/(1<<53)
	e := rng.IntN(2*span+1) - span
	if rng.IntN(2) == 1 {
		m = -m
	}
	return math.Ldexp(m, e)
}

func runCheck(out io.Writer, impl libm.Impl, co *CheckOptions) (bad int) {
	rng := rand.New(rand.NewPCG(co.Seed, co.Seed^0x9e3779b97f4a7c15))

	for range co.Count {
		if co.Single {
			x := float32(randomFloat(rng, 20))
			y := float32(randomFloat(rng, 20))
			z := float32(randomFloat(rng, 40))
			got, want := impl.Fmaf(x, y, z), reference.Fmaf(x, y, z)
			if math.Float32bits(got) != math.Float32bits(want) {
				fmt.Fprintf(out, "fmaf(%v, %v, %v) = %v, want %v\n", x, y, z, got, want)
				bad++
			}
			continue
		}

		x := randomFloat(rng, 40)
		y := randomFloat(rng, 40)
		z := randomFloat(rng, 80)
		got, want := impl.Fma(x, y, z), reference.Fma(x, y, z)
		if math.Float64bits(got) != math.Float64bits(want) {
			fmt.Fprintf(out, "fma(%v, %v, %v) = %v, want %v\n", x, y, z, got, want)
			bad++
		}
	}

	fmt.Fprintf(out, "%v: checked %d, %d mismatched\n", impl.Name(), co.Count, bad)
	return
}
