package curves

import (
	"errors"
	"fmt"
	"strconv"
)

var ErrUnknownFunction = errors.New("curves: unknown helper function")

// Sweep evaluates h or l over a grid of parameters. For h the grid is
// a × b × xbar; for l it is c × xbar with c taken from A.
type Sweep struct {
	Function string    `yaml:"function"`
	A        []float64 `yaml:"a"`
	B        []float64 `yaml:"b,omitempty"`
	XBar     []float64 `yaml:"xbar"`
	Gamma    float64   `yaml:"gamma"`
	Dt       float64   `yaml:"dt"`
	Points   int       `yaml:"points"`
}

// Series returns one curve per grid point in nesting order.
func (s Sweep) Series() ([]Series, error) {
	n := s.Points
	if n <= 0 {
		n = 1000
	}
	xs := Linspace(0, 1, n)

	var out []Series
	switch s.Function {
	case "h":
		grid := NewGrid([]string{"a", "b", "xbar"}, [][]float64{s.A, s.B, s.XBar})
		grid.Each(func(p map[string]float64) {
			hp := HParams{A: p["a"], B: p["b"], Gamma: s.Gamma, XBar: p["xbar"], Dt: s.Dt}
			out = append(out, Series{
				Label: fmt.Sprintf("a=%s, b=%s, xbar=%s", num(hp.A), num(hp.B), num(hp.XBar)),
				X:     xs,
				Y:     HSeries(xs, hp),
			})
		})
	case "l":
		grid := NewGrid([]string{"c", "xbar"}, [][]float64{s.A, s.XBar})
		grid.Each(func(p map[string]float64) {
			lp := LParams{C: p["c"], XBar: p["xbar"], Dt: s.Dt}
			out = append(out, Series{
				Label: fmt.Sprintf("c=%s, xbar=%s", num(lp.C), num(lp.XBar)),
				X:     xs,
				Y:     LSeries(xs, lp),
			})
		})
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFunction, s.Function)
	}
	return out, nil
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
