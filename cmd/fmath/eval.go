// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ezrec/fmath/script"
)

// NewEvalCommand creates the command evaluating a Starlark expression.
func NewEvalCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval EXPR...",
		Short: "Evaluate a Starlark expression over fma, fmax, fmin and friends",
		Long: "The expression may call fma, fmaf, fmax, fmaxf, fmin, fminf and classify,\n" +
			"and use the constants nan and inf. Arguments are joined with spaces.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			impl, err := opts.impl()
			if err != nil {
				return
			}

			value, err := script.Eval(impl, strings.Join(args, " "))
			if err != nil {
				return
			}

			fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(value, 'g', -1, 64))
			return
		},
	}

	return cmd
}
