package distfit

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/optimize"
	"gonum.org/v1/gonum/stat"
)

const defaultMaxIter = 4000

// Fitted is a family with estimated parameters.
type Fitted struct {
	Name   string
	Shapes []float64
	Loc    float64
	Scale  float64
	LogLik float64

	fam *family
}

// Params returns the shapes followed by loc and scale.
func (f *Fitted) Params() []float64 {
	p := make([]float64, 0, len(f.Shapes)+2)
	p = append(p, f.Shapes...)
	return append(p, f.Loc, f.Scale)
}

func (f *Fitted) LogPDF(x float64) float64 {
	return f.fam.logProb((x-f.Loc)/f.Scale, f.Shapes) - math.Log(f.Scale)
}

func (f *Fitted) PDF(x float64) float64 {
	return math.Exp(f.LogPDF(x))
}

func (f *Fitted) CDF(x float64) float64 {
	return f.fam.cumulative((x-f.Loc)/f.Scale, f.Shapes)
}

func (f *Fitted) String() string {
	parts := make([]string, 0, len(f.Shapes)+2)
	for i, s := range f.Shapes {
		parts = append(parts, fmt.Sprintf("%s=%.4g", f.fam.shapes[i].name, s))
	}
	parts = append(parts, fmt.Sprintf("loc=%.4g", f.Loc), fmt.Sprintf("scale=%.4g", f.Scale))
	return fmt.Sprintf("%s(%s)", f.Name, strings.Join(parts, ", "))
}

// Fit estimates the parameters of the named family by maximum likelihood.
func Fit(name string, xs []float64) (*Fitted, error) {
	return fit(name, xs, defaultMaxIter)
}

func fit(name string, xs []float64, maxIter int) (*Fitted, error) {
	fam, err := lookup(name)
	if err != nil {
		return nil, err
	}
	data, err := finite(xs)
	if err != nil {
		return nil, &FitError{Name: name, Wrapped: err}
	}

	if fam.closed != nil {
		ls := fam.closed(data)
		out := &Fitted{Name: name, Loc: ls[0], Scale: ls[1], fam: fam}
		if err := out.finish(data); err != nil {
			return nil, err
		}
		return out, nil
	}

	// Fit on standardized data; loc and scale map back afterwards.
	mean, std := stat.MeanStdDev(data, nil)
	zs := make([]float64, len(data))
	min, max := math.Inf(1), math.Inf(-1)
	for i, x := range data {
		zs[i] = (x - mean) / std
		min = math.Min(min, zs[i])
		max = math.Max(max, zs[i])
	}

	k := fam.nshapes()
	nll := func(theta []float64) float64 {
		shapes := make([]float64, k)
		for i, sh := range fam.shapes {
			shapes[i] = sh.c.decode(theta[i])
		}
		loc, scale := theta[k], math.Exp(theta[k+1])
		sum := float64(len(zs)) * math.Log(scale)
		for _, z := range zs {
			lp := fam.logProb((z-loc)/scale, shapes)
			if math.IsInf(lp, -1) || math.IsNaN(lp) {
				return math.Inf(1)
			}
			sum -= lp
		}
		return sum
	}

	start := fam.startShapes()
	loc0, scale0 := fam.startLocScale(min, max, 0, 1)
	theta0 := make([]float64, k+2)
	for i, sh := range fam.shapes {
		theta0[i] = sh.c.encode(start[i])
	}
	theta0[k], theta0[k+1] = loc0, math.Log(scale0)
	if math.IsInf(nll(theta0), 1) {
		return nil, &FitError{Name: name, Wrapped: ErrInfeasible}
	}

	settings := &optimize.Settings{
		MajorIterations: maxIter,
		Converger: &optimize.FunctionConverge{
			Absolute:   1e-10,
			Relative:   1e-10,
			Iterations: 200,
		},
	}
	res, err := optimize.Minimize(optimize.Problem{Func: nll}, theta0, settings, &optimize.NelderMead{})
	if res == nil {
		return nil, &FitError{Name: name, Wrapped: err}
	}
	if math.IsInf(res.F, 0) || math.IsNaN(res.F) {
		return nil, &FitError{Name: name, Wrapped: ErrInfeasible}
	}

	out := &Fitted{
		Name:   name,
		Shapes: make([]float64, k),
		Loc:    mean + std*res.X[k],
		Scale:  std * math.Exp(res.X[k+1]),
		fam:    fam,
	}
	for i, sh := range fam.shapes {
		out.Shapes[i] = sh.c.decode(res.X[i])
	}
	if err := out.checkScale(); err != nil {
		return nil, err
	}
	// Raw points can fall just outside the support after the loc/scale
	// round trip, so the likelihood comes from the standardized optimum.
	out.LogLik = -res.F - float64(len(zs))*math.Log(std)
	return out, nil
}

func (f *Fitted) checkScale() error {
	if !(f.Scale > 0) || math.IsInf(f.Scale, 0) {
		return &FitError{Name: f.Name, Wrapped: ErrDegenerateSample}
	}
	return nil
}

// finish computes the log-likelihood of a closed-form fit on the unscaled data.
func (f *Fitted) finish(xs []float64) error {
	if err := f.checkScale(); err != nil {
		return err
	}
	ll := 0.0
	for _, x := range xs {
		ll += f.LogPDF(x)
	}
	if math.IsInf(ll, 0) || math.IsNaN(ll) {
		return &FitError{Name: f.Name, Wrapped: ErrInfeasible}
	}
	f.LogLik = ll
	return nil
}

func finite(xs []float64) ([]float64, error) {
	out := make([]float64, 0, len(xs))
	for _, x := range xs {
		if !math.IsNaN(x) && !math.IsInf(x, 0) {
			out = append(out, x)
		}
	}
	if len(out) < 2 {
		return nil, ErrEmptySample
	}
	if _, std := stat.MeanStdDev(out, nil); !(std > 0) {
		return nil, ErrDegenerateSample
	}
	return out, nil
}
