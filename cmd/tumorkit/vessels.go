package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/san-kum/tumorkit/internal/config"
	"github.com/san-kum/tumorkit/internal/describe"
	"github.com/san-kum/tumorkit/internal/distfit"
	"github.com/san-kum/tumorkit/internal/figure"
	"github.com/san-kum/tumorkit/internal/report"
	"github.com/san-kum/tumorkit/internal/storage"
	"github.com/san-kum/tumorkit/internal/vessels"
)

var (
	diamFile   string
	browse     bool
	workers    int
	maxIter    int
	candidates []string
	columns    []string
	useCase    string
)

var columnLabels = map[string]string{
	"diam":   "Diameter (µm)",
	"length": "Length (µm)",
}

func vesselsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vessels",
		Short: "vessel diameters, lengths and segments",
	}

	fitCmd := &cobra.Command{
		Use:   "fit",
		Short: "fit candidate distributions to vessel diameters and lengths",
		RunE:  fitVessels,
	}
	fitCmd.Flags().StringVar(&diamFile, "input", "", "diameter/length csv")
	fitCmd.Flags().BoolVar(&browse, "browse", false, "open the interactive ranking browser")
	fitCmd.Flags().IntVar(&workers, "workers", config.DefaultWorkers, "concurrent fits")
	fitCmd.Flags().IntVar(&maxIter, "max-iter", config.DefaultMaxIter, "optimizer iterations per fit")
	fitCmd.Flags().StringSliceVar(&candidates, "dist", nil, "candidate distributions (default: all)")
	fitCmd.Flags().StringSliceVar(&columns, "columns", []string{"diam", "length"}, "columns to fit")

	describeCmd := &cobra.Command{
		Use:   "describe",
		Short: "summary statistics and correlations",
		RunE:  describeVessels,
	}
	describeCmd.Flags().StringVar(&diamFile, "input", "", "diameter/length csv")

	segmentsCmd := &cobra.Command{
		Use:   "segments [use-case]",
		Short: "parse vessel segments, render them and write their lengths",
		Args:  cobra.MaximumNArgs(1),
		RunE:  vesselSegments,
	}

	distsCmd := &cobra.Command{
		Use:   "dists",
		Short: "list candidate distributions",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range distfit.Names() {
				fmt.Println(name)
			}
		},
	}

	cmd.AddCommand(fitCmd, describeCmd, segmentsCmd, distsCmd)
	return cmd
}

func readCylinders(cmd *cobra.Command, cfg *config.Config) (*vessels.Cylinders, string, error) {
	path := cfg.Vessels.Diameters
	if cmd.Flags().Changed("input") {
		path = diamFile
	}
	if err := requireFile(path); err != nil {
		return nil, "", err
	}
	logger.Info("reading data", "file", path)
	c, err := vessels.ReadDiameters(path)
	if err != nil {
		return nil, "", err
	}
	return c, path, nil
}

func printDescription(w io.Writer, c *vessels.Cylinders, box vessels.Box) error {
	vol, frac := c.VolumeFraction(box)
	fmt.Fprintln(w, report.KV("Number of vessels", c.Len()))
	fmt.Fprintln(w, report.KV("Volume", vol))
	fmt.Fprintln(w, report.KV("Volume fraction", frac))
	fmt.Fprintln(w)

	names := []string{"diam", "length"}
	cols := [][]float64{c.Diam, c.Length}
	sums := make([]describe.Summary, len(cols))
	for i, col := range cols {
		s, err := describe.Summarize(col)
		if err != nil {
			return fmt.Errorf("%s: %w", names[i], err)
		}
		sums[i] = s
	}
	fmt.Fprintln(w, report.Header.Render("summary"))
	if err := describe.WriteTable(w, names, sums); err != nil {
		return err
	}
	for _, m := range describe.Methods {
		fmt.Fprintln(w)
		fmt.Fprintln(w, report.Header.Render(m.String()))
		if err := describe.WriteMatrix(w, names, cols, m); err != nil {
			return err
		}
	}
	return nil
}

func boxOf(cfg *config.Config) vessels.Box {
	b := vessels.Box{X: cfg.Vessels.BoxX, Y: cfg.Vessels.BoxY, Z: cfg.Vessels.BoxZ}
	if b.Volume() <= 0 {
		return vessels.DefaultBox
	}
	return b
}

func describeVessels(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	c, _, err := readCylinders(cmd, cfg)
	if err != nil {
		return err
	}
	return printDescription(os.Stdout, c, boxOf(cfg))
}

func fitVessels(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	fc := cfg.Fit
	if cmd.Flags().Changed("workers") || fc.Workers == 0 {
		fc.Workers = workers
	}
	if cmd.Flags().Changed("max-iter") || fc.MaxIter == 0 {
		fc.MaxIter = maxIter
	}
	if cmd.Flags().Changed("dist") {
		fc.Candidates = candidates
	}

	c, source, err := readCylinders(cmd, cfg)
	if err != nil {
		return err
	}
	if err := printDescription(os.Stdout, c, boxOf(cfg)); err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	for _, name := range columns {
		xs, err := c.Column(name)
		if err != nil {
			return err
		}
		fmt.Println()
		logger.Info("fitting distributions", "column", name, "candidates", len(fc.Candidates), "workers", fc.Workers)
		res, err := distfit.Search(context.Background(), xs, distfit.Options{
			Names:   fc.Candidates,
			Workers: fc.Workers,
			MaxIter: fc.MaxIter,
			Logger:  logger,
		})
		fmt.Println(report.Banner(name, res))
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		if err := report.WriteRanking(os.Stdout, res, fc.Top); err != nil {
			return err
		}

		best := res.Best.Fitted
		path, err := resultPath(cfg, "vessels", name+"-hist.pdf")
		if err != nil {
			return err
		}
		err = figure.Hist(figure.HistSpec{
			XLabel:     columnLabels[name],
			Data:       xs,
			Curve:      best.PDF,
			CurveLabel: "PDF " + best.Name,
		}, path)
		if err != nil {
			return err
		}
		logger.Info("histogram written", "file", path)

		runID, err := st.Save(source, name, len(xs), res)
		if err != nil {
			return err
		}
		fmt.Printf("saved: %s\n", runID)

		if browse {
			if err := report.Run(report.Browse(res, xs)); err != nil {
				return err
			}
		}
	}
	return nil
}

func vesselSegments(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	name := cfg.Vessels.UseCase
	if len(args) == 1 {
		name = args[0]
	}
	uc, err := vessels.GetUseCase(name)
	if err != nil {
		return fmt.Errorf("%w (available: %v)", err, config.ListPresets("segments"))
	}
	// A config file may point at other data for the same use case.
	if cfg.Vessels.UseCase == uc.Name {
		if cfg.Vessels.Segments != "" {
			uc.File = cfg.Vessels.Segments
		}
		if cfg.Vessels.ColsToDrop > 0 {
			uc.ColsToDrop = cfg.Vessels.ColsToDrop
		}
		if cfg.Vessels.Title != "" {
			uc.Title = cfg.Vessels.Title
		}
	}
	if err := requireFile(uc.File); err != nil {
		return err
	}

	logger.Info("reading segments", "file", uc.File, "cols_to_drop", uc.ColsToDrop)
	segs, err := vessels.ReadSegments(uc.File, uc.ColsToDrop)
	if err != nil {
		return err
	}
	fmt.Println(report.KV("Segments", len(segs)))
	for _, line := range vessels.Preview(segs) {
		fmt.Println(line)
	}

	svgPath, err := resultPath(cfg, "vessels", uc.Name+"-segments.svg")
	if err != nil {
		return err
	}
	svg := figure.SegmentsSVG(segs, 800, 800, uc.Title, "#b22222", figure.DefaultProjection)
	if err := os.WriteFile(svgPath, []byte(svg), 0644); err != nil {
		return err
	}

	fmt.Println(figure.SegmentsBraille(segs, 60, 20, figure.DefaultProjection))

	lengths := vessels.Lengths(segs)
	kde, err := describe.KDE(lengths)
	if err != nil {
		return err
	}
	histPath, err := resultPath(cfg, "vessels", uc.Name+"-lengths.png")
	if err != nil {
		return err
	}
	err = figure.Hist(figure.HistSpec{
		Title:      "Histogram of vessel lengths",
		XLabel:     "Length",
		YLabel:     "Density",
		Data:       lengths,
		Curve:      kde,
		CurveLabel: "KDE",
	}, histPath)
	if err != nil {
		return err
	}

	if err := vessels.WriteLengths(cfg.Vessels.Lengths, lengths); err != nil {
		return err
	}
	logger.Info("segments processed", "svg", svgPath, "hist", histPath, "lengths", cfg.Vessels.Lengths)
	return nil
}
