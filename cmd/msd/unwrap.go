package main

import (
	"errors"
	"io"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-msd/internal/trajio"
	"github.com/cwbudde/algo-msd/traj/pbc"
)

func unwrapCmd(root *rootOptions) *cobra.Command {
	var (
		in, out string
		box     float64
		column  int
	)

	cmd := &cobra.Command{
		Use:   "unwrap",
		Short: "Unwrap a trajectory folded into a periodic box",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if in == "" || out == "" {
				return errors.New("--in and --out are required")
			}

			root.logger.Printf("Reading trajectory `%s`", in)
			x, err := trajio.ReadFile(in, column)
			if err != nil {
				return err
			}

			root.logger.Printf("Unwrapping %d samples with box %g", len(x), box)
			if err := pbc.UnwrapInPlace(x, box); err != nil {
				return err
			}

			err = trajio.CreateFile(out, func(w io.Writer) error {
				return trajio.WriteSeries(w, x)
			})
			if err != nil {
				return err
			}

			root.logger.Printf("Wrote `%s` (largest step %g)", out, pbc.MaxStep(x))
			return nil
		},
	}

	cmd.Flags().StringVar(&in, "in", "", "trajectory file")
	cmd.Flags().StringVar(&out, "out", "", "output file")
	cmd.Flags().Float64Var(&box, "box", 0, "periodic box size")
	cmd.Flags().IntVar(&column, "column", 0, "0-based column holding the position")

	return cmd
}
