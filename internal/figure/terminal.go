package figure

import (
	"math"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/tumorkit/internal/curves"
)

// Terminal renders the series as an ASCII chart. Non-finite values are
// left as gaps.
func Terminal(series []curves.Series, height, width int, caption string) string {
	data := make([][]float64, 0, len(series))
	for _, s := range series {
		ys := make([]float64, len(s.Y))
		for i, y := range s.Y {
			if isFinite(y) {
				ys[i] = y
			} else {
				ys[i] = math.NaN()
			}
		}
		if len(ys) > 0 {
			data = append(data, ys)
		}
	}
	if len(data) == 0 {
		return ""
	}
	colors := []asciigraph.AnsiColor{asciigraph.Blue, asciigraph.Red, asciigraph.Green, asciigraph.Yellow, asciigraph.Magenta, asciigraph.Cyan}
	opts := []asciigraph.Option{
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
		asciigraph.SeriesColors(seriesColors(colors, len(data))...),
	}
	return asciigraph.PlotMany(data, opts...)
}

func seriesColors(palette []asciigraph.AnsiColor, n int) []asciigraph.AnsiColor {
	out := make([]asciigraph.AnsiColor, n)
	for i := range out {
		out[i] = palette[i%len(palette)]
	}
	return out
}
