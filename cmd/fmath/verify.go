// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ezrec/fmath/internal/vectors"
)

// NewVerifyCommand creates the command running YAML test vectors.
func NewVerifyCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify [FILE.yaml]",
		Short: "Run test vectors against the selected implementation",
		Long:  "Without FILE, the built in IEEE 754 vectors are used.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			out := cmd.OutOrStdout()

			impl, err := opts.impl()
			if err != nil {
				return
			}

			var vs []vectors.Vector
			if len(args) == 0 {
				vs = vectors.Builtin()
			} else {
				var inf *os.File
				inf, err = os.Open(args[0])
				if err != nil {
					return
				}
				defer inf.Close()

				vs, err = vectors.Load(inf)
				if err != nil {
					err = fmt.Errorf("%v: %w", args[0], err)
					return
				}
			}

			failed := vectors.RunAll(impl, vs)
			for _, ferr := range failed {
				fmt.Fprintln(out, ferr)
			}
			fmt.Fprintf(out, "%v: %d vectors, %d failed\n", impl.Name(), len(vs), len(failed))

			if len(failed) != 0 {
				err = ErrVerify
			}
			return
		},
	}

	return cmd
}
