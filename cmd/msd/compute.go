package main

import (
	"io"
	"log"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-msd/internal/config"
	"github.com/cwbudde/algo-msd/internal/trajio"
	"github.com/cwbudde/algo-msd/measure/diffusion"
	"github.com/cwbudde/algo-msd/traj/msd"
	"github.com/cwbudde/algo-msd/traj/pbc"
)

func computeCmd(root *rootOptions) *cobra.Command {
	var (
		cfgPath string
		flags   = config.Default()
	)

	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Compute the mean square displacement of a trajectory",
		Long: "Compute D(m) for every lag m < N/4 and write \"time msd\" rows.\n" +
			"Flags override the values of the configuration file.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := config.Default()
			if cfgPath != "" {
				root.logger.Printf("Reading configuration file `%s`", cfgPath)
				loaded, err := config.New(cfgPath)
				if err != nil {
					return err
				}
				c = *loaded
			}
			override(cmd, &c, &flags)
			if err := c.Check(); err != nil {
				return err
			}

			return runCompute(root.logger, &c)
		},
	}

	f := cmd.Flags()
	f.StringVar(&cfgPath, "config", "", "YAML configuration file")
	f.StringVar(&flags.Traj, "in", "", "trajectory file")
	f.StringVar(&flags.Out, "out", "", "output file (default <in>_msd.out)")
	f.IntVar(&flags.Column, "column", 0, "0-based column holding the position")
	f.BoolVar(&flags.PBC, "pbc", false, "the trajectory is folded into [0, box)")
	f.Float64Var(&flags.Box, "box", 0, "periodic box size")
	f.Float64Var(&flags.Dt, "dt", flags.Dt, "time between samples")
	f.StringVar(&flags.Backend, "backend", flags.Backend, "FFT backend: algofft or gonum")
	f.IntVar(&flags.FitFrom, "fit-from", 0, "first lag of the diffusion fit")
	f.IntVar(&flags.FitTo, "fit-to", 0, "last lag of the diffusion fit")

	return cmd
}

// override copies the flags the user actually set onto c.
func override(cmd *cobra.Command, c, flags *config.Config) {
	set := cmd.Flags().Changed
	if set("in") {
		c.Traj = flags.Traj
	}
	if set("out") {
		c.Out = flags.Out
	}
	if set("column") {
		c.Column = flags.Column
	}
	if set("pbc") {
		c.PBC = flags.PBC
	}
	if set("box") {
		c.Box = flags.Box
	}
	if set("dt") {
		c.Dt = flags.Dt
	}
	if set("backend") {
		c.Backend = flags.Backend
	}
	if set("fit-from") {
		c.FitFrom = flags.FitFrom
	}
	if set("fit-to") {
		c.FitTo = flags.FitTo
	}
}

func runCompute(logger *log.Logger, c *config.Config) error {
	logger.Printf("Reading trajectory `%s`", c.Traj)
	x, err := trajio.ReadFile(c.Traj, c.Column)
	if err != nil {
		return err
	}

	if c.PBC {
		logger.Println("Converting the PBC trajectory into a non PBC one")
		if err := pbc.UnwrapInPlace(x, c.Box); err != nil {
			return err
		}
	}

	logger.Printf("Calculating the mean square displacement (%d samples, %s backend)", len(x), c.Backend)
	d, err := msd.Compute(x, msd.WithBackend(c.CorrBackend()))
	if err != nil {
		return err
	}
	if len(d) == 0 {
		logger.Printf("Trajectory too short: %d samples give no lag below N/4", len(x))
	}

	out := c.OutPath()
	err = trajio.CreateFile(out, func(w io.Writer) error {
		return trajio.WriteMSD(w, c.Dt, d)
	})
	if err != nil {
		return err
	}
	logger.Printf("Wrote %d lags to `%s`", len(d), out)

	if c.Fit() {
		res, err := diffusion.NewAnalyzer(c.Dt).Fit(d, c.FitFrom, c.FitTo)
		if err != nil {
			return err
		}
		logger.Printf("Diffusion coefficient %g (slope %g, intercept %g, R2 %.4f, lags %d-%d)",
			res.Coefficient, res.Slope, res.Intercept, res.R2, res.From, res.To)
	}

	logger.Println("Done")
	return nil
}
