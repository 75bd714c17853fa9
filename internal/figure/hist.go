package figure

import (
	"image/color"
	"math"

	"github.com/aclements/go-moremath/stats"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// AutoBins picks the larger of the Sturges and Freedman–Diaconis bin
// counts.
func AutoBins(xs []float64) int {
	n := len(xs)
	if n < 2 {
		return 1
	}
	sturges := int(math.Ceil(math.Log2(float64(n)))) + 1

	s := stats.Sample{Xs: append([]float64(nil), xs...)}
	s.Sort()
	lo, hi := s.Bounds()
	iqr := s.IQR()
	if iqr <= 0 || hi <= lo {
		return sturges
	}
	width := 2 * iqr / math.Cbrt(float64(n))
	fd := int(math.Ceil((hi - lo) / width))
	if fd > sturges {
		return fd
	}
	return sturges
}

// HistSpec describes a density histogram with an overlaid curve.
type HistSpec struct {
	Title  string
	XLabel string
	YLabel string
	Data   []float64
	// Bins below 1 select AutoBins.
	Bins int
	// Curve is evaluated on CurvePoints points over the data range.
	Curve       func(float64) float64
	CurveLabel  string
	CurvePoints int
}

// Hist renders a normalized histogram of spec.Data and the curve.
func Hist(spec HistSpec, path string) error {
	p := plot.New()
	p.Title.Text = spec.Title
	p.X.Label.Text = spec.XLabel
	p.Y.Label.Text = spec.YLabel
	if p.Y.Label.Text == "" {
		p.Y.Label.Text = "Frequency"
	}
	p.Legend.Top = true

	bins := spec.Bins
	if bins < 1 {
		bins = AutoBins(spec.Data)
	}
	h, err := plotter.NewHist(plotter.Values(spec.Data), bins)
	if err != nil {
		return err
	}
	h.Normalize(1)
	h.FillColor = color.RGBA{R: 31, G: 119, B: 180, A: 128}
	h.LineStyle.Color = color.RGBA{A: 160}
	p.Add(h)
	p.Legend.Add("Data", h)

	if spec.Curve != nil {
		n := spec.CurvePoints
		if n < 2 {
			n = 1000
		}
		lo, hi := minMax(spec.Data)
		pts := make(plotter.XYs, 0, n)
		for i := 0; i < n; i++ {
			x := lo + (hi-lo)*float64(i)/float64(n-1)
			if y := spec.Curve(x); isFinite(y) {
				pts = append(pts, plotter.XY{X: x, Y: y})
			}
		}
		l, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		l.Width = vg.Points(2)
		l.Color = palette(1)
		p.Add(l)
		label := spec.CurveLabel
		if label == "" {
			label = "PDF"
		}
		p.Legend.Add(label, l)
	}

	return save(p, path)
}

// minMax returns the bounds of xs ignoring NaN, or (+Inf, -Inf) when xs is
// empty.
func minMax(xs []float64) (lo, hi float64) {
	if len(xs) == 0 {
		return math.Inf(1), math.Inf(-1)
	}
	return floats.Min(xs), floats.Max(xs)
}
