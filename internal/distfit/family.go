package distfit

import "math"

type constraint int

const (
	unbounded constraint = iota
	positive
	unit      // (0, 1)
	symmetric // (-1, 1)
)

func (c constraint) decode(t float64) float64 {
	switch c {
	case positive:
		return math.Exp(t)
	case unit:
		return 1 / (1 + math.Exp(-t))
	case symmetric:
		return math.Tanh(t)
	default:
		return t
	}
}

func (c constraint) encode(v float64) float64 {
	switch c {
	case positive:
		return math.Log(v)
	case unit:
		return math.Log(v / (1 - v))
	case symmetric:
		return math.Atanh(v)
	default:
		return v
	}
}

type shape struct {
	name  string
	c     constraint
	start float64
}

// family is a distribution in standard form (loc 0, scale 1).
type family struct {
	name   string
	shapes []shape

	// lo and hi bound the standard support used to place the starting
	// loc and scale. Shape-dependent supports are enforced by logpdf.
	lo, hi float64

	logpdf func(z float64, s []float64) float64
	cdf    func(z float64, s []float64) float64

	// closed returns the exact MLE (shapes, loc, scale) when one exists.
	closed func(xs []float64) []float64
}

func (f *family) nshapes() int {
	return len(f.shapes)
}

// logProb evaluates the standard log density, returning -Inf outside the
// nominal support.
func (f *family) logProb(z float64, s []float64) float64 {
	if z < f.lo || z > f.hi {
		return math.Inf(-1)
	}
	v := f.logpdf(z, s)
	if math.IsNaN(v) {
		return math.Inf(-1)
	}
	return v
}

func (f *family) cumulative(z float64, s []float64) float64 {
	if z <= f.lo {
		return 0
	}
	if z >= f.hi {
		return 1
	}
	return clamp01(f.cdf(z, s))
}

// startShapes returns the default shape guesses.
func (f *family) startShapes() []float64 {
	s := make([]float64, len(f.shapes))
	for i, sh := range f.shapes {
		s[i] = sh.start
	}
	return s
}

// startLocScale places the standard support over the sample range.
func (f *family) startLocScale(min, max, mean, std float64) (loc, scale float64) {
	eps := 1e-3 * (max - min)
	switch {
	case !math.IsInf(f.lo, 0) && !math.IsInf(f.hi, 0):
		scale = (max - min + 2*eps) / (f.hi - f.lo)
		loc = min - eps - f.lo*scale
	case !math.IsInf(f.lo, 0):
		scale = std
		loc = min - eps - f.lo*scale
	case !math.IsInf(f.hi, 0):
		scale = std
		loc = max + eps - f.hi*scale
	default:
		loc, scale = mean, std
	}
	return loc, scale
}
