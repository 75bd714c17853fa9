package curves

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/optimize"
)

var ErrNoData = errors.New("curves: no data points")

// Point is an observed (x, y) pair.
type Point struct {
	X, Y float64
}

// DefaultHData is a sharp rise from 0 to 1 just below xbar = 0.16.
var DefaultHData = []Point{
	{0.0, 0}, {0.05, 0.5}, {0.1, 1}, {0.16, 1}, {0.4, 1}, {0.5, 1},
	{0.6, 1}, {0.7, 1}, {0.8, 1}, {0.9, 1}, {1.0, 1},
}

// HFit is the outcome of FitH.
type HFit struct {
	Params  HParams
	Initial HParams
	RMS     float64
}

// RMS is the root mean square error of h against data.
func RMS(data []Point, p HParams) float64 {
	sum := 0.0
	for _, d := range data {
		e := H(d.X, p) - d.Y
		sum += e * e
	}
	return math.Sqrt(sum / float64(len(data)))
}

// FitH finds a, b and gamma minimizing the RMS error of h with fixed xbar
// and dt. The search starts at (0, 10, 1), with b = -1 when the data rise.
func FitH(data []Point, xbar, dt float64) (HFit, error) {
	if len(data) == 0 {
		return HFit{}, ErrNoData
	}
	init := HParams{A: 0, B: 10, Gamma: 1, XBar: xbar, Dt: dt}
	if data[0].Y < data[len(data)-1].Y {
		init.B = -1
	}

	obj := func(x []float64) float64 {
		return RMS(data, HParams{A: x[0], B: x[1], Gamma: x[2], XBar: xbar, Dt: dt})
	}
	settings := &optimize.Settings{
		MajorIterations: 20000,
		Converger: &optimize.FunctionConverge{
			Absolute:   1e-12,
			Iterations: 500,
		},
	}
	x0 := []float64{init.A, init.B, init.Gamma}
	res, err := optimize.Minimize(optimize.Problem{Func: obj}, x0, settings, &optimize.NelderMead{})
	if res == nil {
		return HFit{}, err
	}

	fit := HFit{
		Params:  HParams{A: res.X[0], B: res.X[1], Gamma: res.X[2], XBar: xbar, Dt: dt},
		Initial: init,
		RMS:     res.F,
	}
	if math.IsNaN(fit.RMS) {
		return fit, errors.New("curves: h fit diverged")
	}
	return fit, nil
}
