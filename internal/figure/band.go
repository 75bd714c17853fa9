package figure

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Marker is a labelled vertical line.
type Marker struct {
	Label  string
	X      float64
	Dashes []vg.Length
	// Color defaults to black.
	Color color.Color
}

// BandSpec describes a mean curve with a shaded ±std band.
type BandSpec struct {
	Title        string
	XLabel       string
	YLabel       string
	X            []float64
	Mean         []float64
	Lower, Upper []float64
	Markers      []Marker
	YMin, YMax   float64
}

// Band renders the mean with point markers over the lower/upper polygon.
func Band(spec BandSpec, path string) error {
	p := plot.New()
	p.Title.Text = spec.Title
	p.X.Label.Text = spec.XLabel
	p.Y.Label.Text = spec.YLabel
	p.Legend.Top = true
	p.Legend.Left = true
	if spec.YMax > spec.YMin {
		p.Y.Min, p.Y.Max = spec.YMin, spec.YMax
	}

	upper := xys(spec.X, spec.Upper)
	lower := xys(spec.X, spec.Lower)
	outline := make(plotter.XYs, 0, len(upper)+len(lower))
	outline = append(outline, upper...)
	for i := len(lower) - 1; i >= 0; i-- {
		outline = append(outline, lower[i])
	}
	if len(outline) >= 3 {
		poly, err := plotter.NewPolygon(outline)
		if err != nil {
			return err
		}
		poly.Color = color.RGBA{R: 31, G: 119, B: 180, A: 50}
		poly.LineStyle.Width = 0
		p.Add(poly)
	}

	l, s, err := plotter.NewLinePoints(xys(spec.X, spec.Mean))
	if err != nil {
		return err
	}
	l.Color = palette(0)
	s.Color = palette(0)
	s.Shape = draw.CircleGlyph{}
	p.Add(l, s)
	p.Legend.Add("mean", l, s)

	ymin, ymax := spec.YMin, spec.YMax
	if ymax <= ymin {
		ymin, ymax = minMax(append(append([]float64(nil), spec.Lower...), spec.Upper...))
	}
	seen := make(map[string]bool)
	for _, m := range spec.Markers {
		c := m.Color
		if c == nil {
			c = black
		}
		v, err := vline(m.X, ymin, ymax, c, m.Dashes)
		if err != nil {
			return err
		}
		p.Add(v)
		if m.Label != "" && !seen[m.Label] {
			seen[m.Label] = true
			p.Legend.Add(m.Label, v)
		}
	}

	return save(p, path)
}
