package main

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/san-kum/tumorkit/internal/figure"
	"github.com/san-kum/tumorkit/internal/growth"
)

var (
	growthInput   string
	growthOutput  string
	growthLastDay float64
	growthSizes   []int
)

func growthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "growth",
		Short: "tumor growth curves",
	}

	combineCmd := &cobra.Command{
		Use:   "combine",
		Short: "pool all groups into one mean/std per day",
		RunE:  combineGrowth,
	}
	combineCmd.Flags().StringVar(&growthInput, "input", "", "growth csv (days, mean_i, std_i)")
	combineCmd.Flags().StringVar(&growthOutput, "output", "", "combined csv")
	combineCmd.Flags().Float64Var(&growthLastDay, "last-day", growth.DefaultLastDay, "last day before treatment")
	combineCmd.Flags().IntSliceVar(&growthSizes, "sizes", growth.DefaultGroupSizes, "animals per group")

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "plot every group with its std band and treatment days",
		RunE:  plotGrowth,
	}
	plotCmd.Flags().StringVar(&growthInput, "input", "", "growth csv (days, mean_i, std_i)")

	cmd.AddCommand(combineCmd, plotCmd)
	return cmd
}

func combineGrowth(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	gc := cfg.Growth
	if cmd.Flags().Changed("input") {
		gc.Input = growthInput
	}
	if cmd.Flags().Changed("output") {
		gc.Output = growthOutput
	}
	if cmd.Flags().Changed("last-day") || gc.LastDay == 0 {
		gc.LastDay = growthLastDay
	}
	if cmd.Flags().Changed("sizes") || len(gc.GroupSizes) == 0 {
		gc.GroupSizes = growthSizes
	}
	if err := requireFile(gc.Input); err != nil {
		return err
	}

	logger.Info("reading data", "file", gc.Input)
	t, err := growth.ReadTable(gc.Input, gc.Index)
	if err != nil {
		return err
	}
	rows, err := growth.Combine(t, gc.GroupSizes, gc.LastDay)
	if err != nil {
		return err
	}
	for _, r := range rows {
		fmt.Printf("day %-6s %s\n", strconv.FormatFloat(r.Day, 'g', -1, 64), r.Group)
	}

	if err := growth.WriteTable(gc.Output, growth.PooledTable(gc.Index, rows)); err != nil {
		return err
	}
	logger.Info("combined data written", "file", gc.Output, "rows", len(rows))
	return nil
}

func plotGrowth(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	input := cfg.Growth.Input
	if cmd.Flags().Changed("input") {
		input = growthInput
	}
	if err := requireFile(input); err != nil {
		return err
	}

	logger.Info("reading data", "file", input)
	t, err := growth.ReadTable(input, cfg.Growth.Index)
	if err != nil {
		return err
	}
	bands, err := growth.Bands(t)
	if err != nil {
		return err
	}

	for _, b := range bands {
		logger.Info("plotting group", "group", b.Group)
		path, err := resultPath(cfg, "data-visualization", fmt.Sprintf("growth_group_%d.png", b.Group))
		if err != nil {
			return err
		}
		spec := figure.BandSpec{
			XLabel:  "Time (Days)",
			YLabel:  "Tumor volume (mm³)",
			X:       t.Days,
			Mean:    b.Mean,
			Lower:   b.Lower,
			Upper:   b.Upper,
			Markers: treatmentMarkers(growth.DefaultSchedule[b.Group]),
			YMin:    0,
			YMax:    cfg.Growth.YMax,
		}
		if err := figure.Band(spec, path); err != nil {
			return fmt.Errorf("group %d: %w", b.Group, err)
		}
	}
	return nil
}

var (
	fuchsia       = color.RGBA{R: 255, B: 255, A: 255}
	lightSeaGreen = color.RGBA{R: 32, G: 178, B: 170, A: 255}
	orange        = color.RGBA{R: 255, G: 165, A: 255}
)

func treatmentMarkers(tr growth.Treatment) []figure.Marker {
	var out []figure.Marker
	for _, d := range tr.TRA {
		out = append(out, figure.Marker{Label: "TRA", X: d, Dashes: figure.Dashed, Color: fuchsia})
	}
	for _, d := range tr.DOX {
		out = append(out, figure.Marker{Label: "DOX", X: d, Dashes: figure.Dotted, Color: lightSeaGreen})
	}
	for _, d := range tr.SAL {
		out = append(out, figure.Marker{Label: "SAL", X: d, Dashes: figure.DashDot, Color: orange})
	}
	return out
}
