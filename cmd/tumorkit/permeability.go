package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/san-kum/tumorkit/internal/curves"
	"github.com/san-kum/tumorkit/internal/figure"
	"github.com/san-kum/tumorkit/internal/permeability"
)

var (
	permInput      string
	permFrom       float64
	permTo         float64
	permTickStep   float64
	permSampleMins float64
	permOffsetDays float64
)

func permeabilityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "permeability",
		Short: "vessel permeability over time",
	}

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "chart φ(t) = 1 + χ(t) with treatment spans",
		RunE:  plotPermeability,
	}
	plotCmd.Flags().StringVar(&permInput, "input", "", "comma or newline separated χ samples")
	plotCmd.Flags().Float64Var(&permFrom, "from", 0, "first day shown")
	plotCmd.Flags().Float64Var(&permTo, "to", 20, "last day shown")
	plotCmd.Flags().Float64Var(&permTickStep, "tick", 2, "days between ticks")
	plotCmd.Flags().Float64Var(&permSampleMins, "sample-minutes", permeability.DefaultSampleMinutes, "minutes between samples")
	plotCmd.Flags().Float64Var(&permOffsetDays, "offset-days", permeability.DefaultOffsetDays, "day of the first sample")

	cmd.AddCommand(plotCmd)
	return cmd
}

func plotPermeability(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	pc := cfg.Permeability
	if cmd.Flags().Changed("input") {
		pc.Input = permInput
	}
	if cmd.Flags().Changed("sample-minutes") || pc.SampleMinutes == 0 {
		pc.SampleMinutes = permSampleMins
	}
	if cmd.Flags().Changed("offset-days") {
		pc.OffsetDays = permOffsetDays
	}
	if err := requireFile(pc.Input); err != nil {
		return err
	}

	logger.Info("reading data", "file", pc.Input)
	chi, err := permeability.Read(pc.Input)
	if err != nil {
		return err
	}
	s := permeability.NewSeries(chi, pc.SampleMinutes, pc.OffsetDays)
	fmt.Printf("samples = %d\n", len(chi))

	path, err := resultPath(cfg, "permeability", "permeability.png")
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	err = figure.PermeabilityChart(f, s, figure.ChartSpec{
		XMin:     permFrom,
		XMax:     permTo,
		TickStep: permTickStep,
		Spans:    permeability.DefaultSpans,
	})
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}
	logger.Info("chart written", "file", path)

	win := s.Window(permFrom, permTo)
	preview := []curves.Series{{X: win.Time, Y: downsample(win.Phi, previewWidth)}}
	fmt.Println(figure.Terminal(preview, previewHeight, previewWidth, "φ(t)"))
	return nil
}

// downsample keeps every k-th value so at most n remain.
func downsample(xs []float64, n int) []float64 {
	if len(xs) <= n || n <= 0 {
		return xs
	}
	k := (len(xs) + n - 1) / n
	out := make([]float64, 0, n)
	for i := 0; i < len(xs); i += k {
		out = append(out, xs[i])
	}
	return out
}
