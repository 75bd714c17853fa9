package figure

import (
	"fmt"
	"io"
	"math"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/san-kum/tumorkit/internal/permeability"
)

var spanColors = map[string]drawing.Color{
	"TRA": drawing.ColorFromHex("ff00ff").WithAlpha(51),
	"DOX": drawing.ColorFromHex("20b2aa").WithAlpha(51),
}

// ChartSpec sets the visible window of the permeability chart.
type ChartSpec struct {
	XMin, XMax float64
	TickStep   float64
	Spans      []permeability.Span
}

func generateTicks(xMin, xMax, interval float64) []chart.Tick {
	var ticks []chart.Tick
	for _, v := range permeability.Ticks(xMin, xMax, interval) {
		ticks = append(ticks, chart.Tick{Value: v, Label: fmt.Sprintf("%.0f", v)})
	}
	return ticks
}

// PermeabilityChart renders φ(t) inside the window with shaded treatment
// spans as PNG.
func PermeabilityChart(w io.Writer, s permeability.Series, spec ChartSpec) error {
	win := s.Window(spec.XMin, spec.XMax)
	if len(win.Time) < 2 {
		return fmt.Errorf("figure: fewer than two samples in [%g, %g]", spec.XMin, spec.XMax)
	}
	ymin, ymax := minMax(win.Phi)
	if ymax == ymin {
		ymin, ymax = ymin-1, ymax+1
	}
	pad := 0.05 * (ymax - ymin)
	ymin, ymax = ymin-pad, ymax+pad

	series := []chart.Series{}
	labelled := make(map[string]bool)
	for _, sp := range spec.Spans {
		name := ""
		if !labelled[sp.Label] {
			labelled[sp.Label] = true
			name = sp.Label
		}
		c, ok := spanColors[sp.Label]
		if !ok {
			c = drawing.ColorFromHex("cccccc").WithAlpha(51)
		}
		series = append(series, chart.ContinuousSeries{
			Name:    name,
			XValues: []float64{sp.From, sp.From, sp.To, sp.To},
			YValues: []float64{ymin, ymax, ymax, ymin},
			Style: chart.Style{
				StrokeColor: c,
				FillColor:   c,
			},
		})
	}
	series = append(series, chart.ContinuousSeries{
		Name:    "φ(t) = 1 + χ(t)",
		XValues: win.Time,
		YValues: win.Phi,
		Style: chart.Style{
			StrokeColor: chart.ColorBlue,
			StrokeWidth: 2,
		},
	})

	step := spec.TickStep
	if step <= 0 {
		step = math.Max(1, (spec.XMax-spec.XMin)/10)
	}
	graph := chart.Chart{
		Width:  600,
		Height: 400,
		XAxis: chart.XAxis{
			Name:  "Time (Days)",
			Range: &chart.ContinuousRange{Min: spec.XMin, Max: spec.XMax},
			Ticks: generateTicks(spec.XMin, spec.XMax, step),
		},
		YAxis: chart.YAxis{
			Name:  "φ(t)",
			Range: &chart.ContinuousRange{Min: ymin, Max: ymax},
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	return graph.Render(chart.PNG, w)
}
