package main

import (
	"io"
	"log"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	quiet  bool
	logger *log.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "msd",
		Short:         "Mean square displacement of 1-D periodic trajectories",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			w := cmd.ErrOrStderr()
			if opts.quiet {
				w = io.Discard
			}
			opts.logger = log.New(w, "", log.LstdFlags)
		},
	}

	root.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress progress messages")

	root.AddCommand(computeCmd(opts), unwrapCmd(opts))
	return root
}
