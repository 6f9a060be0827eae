// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"github.com/spf13/cobra"

	"github.com/ezrec/fmath/libm"
)

// RootOptions holds the flags shared by every command.
type RootOptions struct {
	Verbose bool   // Log the implementation decision.
	Impl    string // auto, hardware or software.
}

// impl resolves the --impl flag against the host capabilities.
func (opts *RootOptions) impl() (libm.Impl, error) {
	return libm.Resolve(opts.Impl, libm.Detect(), opts.Verbose)
}

// NewRootCommand creates the fmath command tree.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "fmath",
		Short: "Fused multiply-add, min and max, in hardware or emulation",
		Long: "fmath evaluates fma, fmax and fmin in binary64 or binary32, on the host FPU\n" +
			"or with a bit exact IEEE 754 emulation of the RISC-V F and D extensions.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose logging")
	cmd.PersistentFlags().StringVar(&opts.Impl, "impl", libm.MODE_AUTO, "implementation (auto|hardware|software)")

	cmd.AddCommand(NewOpCommand(opts, "fma", "X Y Z"))
	cmd.AddCommand(NewOpCommand(opts, "fmax", "X Y"))
	cmd.AddCommand(NewOpCommand(opts, "fmin", "X Y"))
	cmd.AddCommand(NewClassifyCommand(opts))
	cmd.AddCommand(NewEvalCommand(opts))
	cmd.AddCommand(NewCapsCommand(opts))
	cmd.AddCommand(NewVerifyCommand(opts))
	cmd.AddCommand(NewCheckCommand(opts))

	return cmd
}
