package figure

import (
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/san-kum/tumorkit/internal/curves"
)

// LineSpec describes a multi-series line plot.
type LineSpec struct {
	Title  string
	XLabel string
	YLabel string
	LogX   bool
	Series []curves.Series
	// Markers are vertical dotted reference lines.
	Markers []float64
	// Points draws the series as markers only.
	Points []curves.Series
}

// Lines renders spec to each of paths.
func Lines(spec LineSpec, paths ...string) error {
	p := plot.New()
	p.Title.Text = spec.Title
	p.X.Label.Text = spec.XLabel
	p.Y.Label.Text = spec.YLabel
	p.Legend.Top = true
	if spec.LogX {
		p.X.Scale = plot.LogScale{}
		p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	}

	ymin, ymax := math.Inf(1), math.Inf(-1)
	for i, s := range spec.Series {
		pts := xys(s.X, s.Y)
		if spec.LogX {
			pts = positiveX(pts)
		}
		l, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		l.Color = palette(i)
		l.Width = vg.Points(1.5)
		p.Add(l)
		if s.Label != "" {
			p.Legend.Add(s.Label, l)
		}
		for _, pt := range pts {
			ymin = math.Min(ymin, pt.Y)
			ymax = math.Max(ymax, pt.Y)
		}
	}
	for i, s := range spec.Points {
		sc, err := plotter.NewScatter(xys(s.X, s.Y))
		if err != nil {
			return err
		}
		sc.Color = palette(len(spec.Series) + i)
		p.Add(sc)
		if s.Label != "" {
			p.Legend.Add(s.Label, sc)
		}
	}

	if len(spec.Markers) > 0 && ymin <= ymax {
		for _, x := range spec.Markers {
			l, err := vline(x, ymin, ymax, lightGray, Dotted)
			if err != nil {
				return err
			}
			p.Add(l)
		}
	}
	p.Add(plotter.NewGrid())

	for _, path := range paths {
		if err := save(p, path); err != nil {
			return err
		}
	}
	return nil
}

func positiveX(pts plotter.XYs) plotter.XYs {
	out := pts[:0]
	for _, pt := range pts {
		if pt.X > 0 {
			out = append(out, pt)
		}
	}
	return out
}
