package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/san-kum/tumorkit/internal/config"
	"github.com/san-kum/tumorkit/internal/curves"
	"github.com/san-kum/tumorkit/internal/figure"
)

var (
	pMin, pMax   float64
	dtMin, dtMax float64
	fitXBar      float64
	fitDt        float64
)

var (
	hp     = curves.HParams{A: 0.1, B: 0.1, Gamma: 1, XBar: 0.5, Dt: 0.1}
	lp     = curves.LParams{C: 0.1, XBar: 0.5, Dt: 0.1}
	forces = curves.DefaultForces
)

const (
	previewHeight = 12
	previewWidth  = 70
)

func curvesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "curves",
		Short: "model helper functions and probability curves",
	}

	bernoulliCmd := &cobra.Command{
		Use:   "bernoulli",
		Short: "probability of no event (1-p)^N for 1h to 24h",
		RunE:  plotBernoulli,
	}
	bernoulliCmd.Flags().Float64Var(&pMin, "pmin", -5, "log10 of the smallest p")
	bernoulliCmd.Flags().Float64Var(&pMax, "pmax", -2.5, "log10 of the largest p")

	timestepCmd := &cobra.Command{
		Use:   "timestep",
		Short: "survival ratio against the smallest timestep",
		RunE:  plotTimestep,
	}
	timestepCmd.Flags().Float64Var(&dtMin, "dtmin", -6, "log10 of the smallest dt")
	timestepCmd.Flags().Float64Var(&dtMax, "dtmax", 1, "log10 of the largest dt")

	hCmd := &cobra.Command{
		Use:   "h",
		Short: "plot the smooth step h(x; a, b, xbar)",
		RunE:  plotH,
	}
	hCmd.Flags().Float64Var(&hp.XBar, "xbar", hp.XBar, "xbar")
	hCmd.Flags().Float64Var(&hp.A, "a", hp.A, "a")
	hCmd.Flags().Float64Var(&hp.B, "b", hp.B, "b")
	hCmd.Flags().Float64Var(&hp.Gamma, "gamma", hp.Gamma, "gamma")
	hCmd.Flags().Float64Var(&hp.Dt, "dt", hp.Dt, "dt")

	lCmd := &cobra.Command{
		Use:   "l",
		Short: "plot the ramp l(x; c, xbar)",
		RunE:  plotL,
	}
	lCmd.Flags().Float64Var(&lp.XBar, "xbar", lp.XBar, "xbar")
	lCmd.Flags().Float64Var(&lp.C, "c", lp.C, "c")
	lCmd.Flags().Float64Var(&lp.Dt, "dt", lp.Dt, "dt")

	sweepCmd := &cobra.Command{
		Use:   "sweep [preset]",
		Short: "plot h or l over a parameter grid",
		Args:  cobra.MaximumNArgs(1),
		RunE:  plotSweep,
	}

	forcesCmd := &cobra.Command{
		Use:   "forces",
		Short: "plot adhesive and repulsive forces over distance",
		RunE:  plotForces,
	}
	forcesCmd.Flags().Float64Var(&forces.R, "r", forces.R, "agent radius")
	forcesCmd.Flags().Float64Var(&forces.RA, "ra", forces.RA, "action radius")
	forcesCmd.Flags().Float64Var(&forces.RN, "rn", forces.RN, "nuclear radius")
	forcesCmd.Flags().Float64Var(&forces.CA, "ca", forces.CA, "adhesive coefficient")
	forcesCmd.Flags().Float64Var(&forces.CR, "cr", forces.CR, "repulsive coefficient")

	fitHCmd := &cobra.Command{
		Use:   "fit-h",
		Short: "fit a, b and gamma of h to data points",
		RunE:  fitH,
	}
	fitHCmd.Flags().Float64Var(&fitXBar, "xbar", 0.16, "xbar")
	fitHCmd.Flags().Float64Var(&fitDt, "dt", 1, "dt")

	cmd.AddCommand(bernoulliCmd, timestepCmd, hCmd, lCmd, sweepCmd, forcesCmd, fitHCmd)
	return cmd
}

// render saves the line plot to every named file under the curves results
// directory and prints a terminal preview.
func render(cfg *config.Config, spec figure.LineSpec, names ...string) error {
	paths := make([]string, len(names))
	for i, name := range names {
		p, err := resultPath(cfg, "curves", name)
		if err != nil {
			return err
		}
		paths[i] = p
	}
	if err := figure.Lines(spec, paths...); err != nil {
		return err
	}
	logger.Info("figure written", "files", strings.Join(paths, ","))

	preview := spec.Series
	if len(preview) == 0 {
		preview = spec.Points
	}
	fmt.Println(figure.Terminal(preview, previewHeight, previewWidth, spec.YLabel))
	return nil
}

func plotBernoulli(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	fmt.Printf("pmin = 10^%g\npmax = 10^%g\n", pMin, pMax)
	return render(cfg, figure.LineSpec{
		XLabel: "p",
		YLabel: "(1-p)^N",
		LogX:   true,
		Series: curves.BernoulliSeries(pMin, pMax, cfg.Curves.Points),
	}, "bernoulli.png")
}

func plotTimestep(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	fmt.Printf("dtmin = 10^%g\ndtmax = 10^%g\n", dtMin, dtMax)
	return render(cfg, figure.LineSpec{
		XLabel: "Δt [min]",
		YLabel: "P(Δt) / P(Δt_min)",
		LogX:   true,
		Series: curves.TimestepSeries(dtMin, dtMax, cfg.Curves.Points),
	}, "timestep.png")
}

func plotH(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	fmt.Printf("xbar = %g\na = %g\nb = %g\ngamma = %g\ndt = %g\n", hp.XBar, hp.A, hp.B, hp.Gamma, hp.Dt)
	xs := curves.Linspace(0, 1, 500)
	return render(cfg, figure.LineSpec{
		XLabel:  "x",
		YLabel:  "h(x; a, b, xbar)",
		Series:  []curves.Series{{X: xs, Y: curves.HSeries(xs, hp)}},
		Markers: []float64{hp.XBar},
	}, "hfunction.png")
}

func plotL(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	fmt.Printf("xbar = %g\nc = %g\ndt = %g\n", lp.XBar, lp.C, lp.Dt)
	xs := curves.Linspace(0, 1, 500)
	return render(cfg, figure.LineSpec{
		XLabel:  "x",
		YLabel:  "l(x; c, xbar)",
		Series:  []curves.Series{{X: xs, Y: curves.LSeries(xs, lp)}},
		Markers: []float64{lp.XBar},
	}, "lfunction.png")
}

func plotSweep(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	name := "custom"
	var sweep curves.Sweep
	switch {
	case len(args) == 1:
		s, ok := cfg.SweepFor(args[0])
		if !ok {
			return fmt.Errorf("unknown preset: %s (available: %v)", args[0], config.ListPresets("sweep"))
		}
		name, sweep = args[0], s
	case cfg.Curves.Sweep != nil:
		sweep = *cfg.Curves.Sweep
		if sweep.Dt == 0 {
			sweep.Dt = cfg.Curves.Dt
		}
		if sweep.Points == 0 {
			sweep.Points = cfg.Curves.Points
		}
	default:
		return fmt.Errorf("no sweep given: pass a preset (%v) or set curves.sweep in the config", config.ListPresets("sweep"))
	}

	series, err := sweep.Series()
	if err != nil {
		return err
	}
	fmt.Printf("function = %s\npresets = %d curves\ndt = %g\n", sweep.Function, len(series), sweep.Dt)
	return render(cfg, figure.LineSpec{
		XLabel: "x",
		YLabel: sweep.Function + "(x)",
		Series: series,
	}, name+".png", name+".pdf")
}

func plotForces(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	fmt.Printf("r = %g\nra = %g\nrn = %g\nca = %g\ncr = %g\n", forces.R, forces.RA, forces.RN, forces.CA, forces.CR)
	return render(cfg, figure.LineSpec{
		XLabel:  "Distance",
		YLabel:  "Force",
		Series:  forces.Series(),
		Markers: forces.Markers(),
	}, "forces.png")
}

func fitH(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	data := curves.DefaultHData
	fmt.Printf("xbar = %g\ndt = %g\n", fitXBar, fitDt)

	fit, err := curves.FitH(data, fitXBar, fitDt)
	if err != nil {
		return err
	}
	fmt.Printf("initial: a = %g, b = %g, gamma = %g\n", fit.Initial.A, fit.Initial.B, fit.Initial.Gamma)
	fmt.Printf("fitted:  a = %.6g, b = %.6g, gamma = %.6g\n", fit.Params.A, fit.Params.B, fit.Params.Gamma)
	fmt.Printf("rms = %.6g\n", fit.RMS)

	pts := curves.Series{Label: "data"}
	for _, d := range data {
		pts.X = append(pts.X, d.X)
		pts.Y = append(pts.Y, d.Y)
	}
	xs := curves.Linspace(0, 1, cfg.Curves.Points)
	return render(cfg, figure.LineSpec{
		XLabel: "x",
		YLabel: "h(x)",
		Series: []curves.Series{
			{Label: "initial guess", X: xs, Y: curves.HSeries(xs, fit.Initial)},
			{Label: "optimized", X: xs, Y: curves.HSeries(xs, fit.Params)},
		},
		Points: []curves.Series{pts},
	}, "hfunction_optimizer.png")
}
