// Package figure renders the analysis plots. Static figures use gonum/plot
// (format chosen by file extension), the permeability time series uses
// go-chart, vessel segments are projected to SVG and quick previews go to
// the terminal through asciigraph.
package figure

import (
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

var (
	DefaultWidth  = 6 * vg.Inch
	DefaultHeight = 4 * vg.Inch

	lightGray = color.RGBA{R: 211, G: 211, B: 211, A: 255}
	black     = color.RGBA{A: 255}
)

// Line dash patterns.
var (
	Solid   []vg.Length
	Dashed  = []vg.Length{vg.Points(6), vg.Points(3)}
	Dotted  = []vg.Length{vg.Points(1.5), vg.Points(2)}
	DashDot = []vg.Length{vg.Points(6), vg.Points(2), vg.Points(1.5), vg.Points(2)}
)

// save writes p to path, creating the parent directory.
func save(p *plot.Plot, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return p.Save(DefaultWidth, DefaultHeight, path)
}

func xys(x, y []float64) plotter.XYs {
	pts := make(plotter.XYs, 0, len(x))
	for i := range x {
		if isFinite(x[i]) && isFinite(y[i]) {
			pts = append(pts, plotter.XY{X: x[i], Y: y[i]})
		}
	}
	return pts
}

func isFinite(v float64) bool {
	return v == v && v-v == 0
}

// vline draws a vertical line at x spanning [ymin, ymax].
func vline(x, ymin, ymax float64, c color.Color, dashes []vg.Length) (*plotter.Line, error) {
	l, err := plotter.NewLine(plotter.XYs{{X: x, Y: ymin}, {X: x, Y: ymax}})
	if err != nil {
		return nil, err
	}
	l.Color = c
	l.Dashes = dashes
	return l, nil
}

func palette(i int) color.Color {
	return plotutil.Color(i)
}
