// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ezrec/fmath/internal"
	"github.com/ezrec/fmath/libm"
)

// NewCapsCommand creates the command reporting the host capabilities.
func NewCapsCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "caps",
		Short: "Report FPU capabilities and the implementation selected",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			out := cmd.OutOrStdout()
			caps := libm.Detect()

			impl, err := libm.Resolve(opts.Impl, caps, opts.Verbose)
			if err != nil {
				return
			}

			fmt.Fprintf(out, "impl: %v\n", impl.Name())
			for name, ok := range internal.IterSeq2Sorted(caps.Features()) {
				fmt.Fprintf(out, "%v: %v\n", name, ok)
			}

			return
		},
	}

	return cmd
}
