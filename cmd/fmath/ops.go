// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"fmt"
	"io"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ezrec/fmath/internal/vectors"
	"github.com/ezrec/fmath/libm"
	"github.com/ezrec/fmath/softfloat"
)

// OpOptions holds the flags of the fma, fmax and fmin commands.
type OpOptions struct {
	Single   bool   // binary32 instead of binary64.
	Rounding string // Rounding mode; selects emulation.
	Flags    bool   // Print accrued flags; selects emulation.
}

// NewOpCommand creates the command running one libm operation.
func NewOpCommand(opts *RootOptions, name string, operands string) *cobra.Command {
	oo := &OpOptions{}
	arity := len(strings.Fields(operands))

	cmd := &cobra.Command{
		Use:   name + " " + operands,
		Short: fmt.Sprintf("Evaluate %v(%v)", name, strings.Join(strings.Fields(strings.ToLower(operands)), ", ")),
		Long: "Operands are decimal or hex floats, nan or inf. Prefix negative operands\n" +
			"with -- so they are not taken as flags.",
		Args: cobra.ExactArgs(arity),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOp(cmd.OutOrStdout(), opts, oo, name, args)
		},
	}

	cmd.Flags().BoolVar(&oo.Single, "f32", false, "single precision (binary32)")
	cmd.Flags().StringVar(&oo.Rounding, "rm", "", "rounding mode (rne|rtz|rdn|rup|rmm), implies software")
	cmd.Flags().BoolVar(&oo.Flags, "flags", false, "print the exception flags raised, implies software")

	return cmd
}

func runOp(out io.Writer, opts *RootOptions, oo *OpOptions, name string, texts []string) (err error) {
	op := name
	if oo.Single {
		op += "f"
	}

	args, err := vectors.Parse(op, texts)
	if err != nil {
		return
	}

	var impl libm.Impl
	var ctx *softfloat.Context
	if oo.Rounding != "" || oo.Flags {
		ctx = &softfloat.Context{}
		if oo.Rounding != "" {
			ctx.Rounding, err = softfloat.ParseRoundingMode(oo.Rounding)
			if err != nil {
				return
			}
		}
		impl = libm.Tracked{Context: ctx}
		if opts.Verbose {
			log.Printf("fmath: %v with software, rounding %v", op, ctx.Rounding)
		}
	} else {
		impl, err = opts.impl()
		if err != nil {
			return
		}
	}

	r, err := vectors.Apply(impl, op, args)
	if err != nil {
		return
	}

	fmt.Fprintln(out, formatValue(r, oo.Single))
	if oo.Flags {
		fmt.Fprintf(out, "flags: %v\n", ctx.Flags)
	}

	return
}

// formatValue prints the shortest decimal that round-trips, then the encoding.
func formatValue(r float64, single bool) string {
	if single {
		r32 := float32(r)
		return strconv.FormatFloat(float64(r32), 'g', -1, 32) + fmt.Sprintf(" (0x%08x)", math.Float32bits(r32))
	}
	return strconv.FormatFloat(r, 'g', -1, 64) + fmt.Sprintf(" (0x%016x)", math.Float64bits(r))
}

// NewClassifyCommand creates the command printing the fclass of a value.
func NewClassifyCommand(opts *RootOptions) *cobra.Command {
	var single bool

	cmd := &cobra.Command{
		Use:   "classify X",
		Short: "Print the IEEE 754 class of X",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			x, err := vectors.ParseOperand(args[0], single)
			if err != nil {
				return
			}

			var class softfloat.Class
			if single {
				class = softfloat.Classify32(float32(x))
			} else {
				class = softfloat.Classify64(x)
			}

			fmt.Fprintln(cmd.OutOrStdout(), class)
			return
		},
	}

	cmd.Flags().BoolVar(&single, "f32", false, "single precision (binary32)")

	return cmd
}
