package curves

import "math"

// HParams parameterize the smooth step h.
type HParams struct {
	A, B, Gamma, XBar, Dt float64
}

// H is the probability of a transition in one step dt for a rate that
// drops smoothly from a + 1/(gamma+1) to a around xbar. b sets the
// steepness and its sign the direction.
func H(x float64, p HParams) float64 {
	return 1 - math.Exp(-(p.A+1/(p.Gamma+math.Exp(2*p.B*(x-p.XBar))))*p.Dt)
}

// LParams parameterize the ramp l.
type LParams struct {
	C, XBar, Dt float64
}

// L is the probability of a transition in one step dt for a rate that
// grows linearly from zero at xbar to c at x=1.
func L(x float64, p LParams) float64 {
	t := math.Max((x-p.XBar)/(1-p.XBar), 0)
	return 1 - math.Exp(-p.C*t*p.Dt)
}

func HSeries(xs []float64, p HParams) []float64 {
	return apply(xs, func(x float64) float64 { return H(x, p) })
}

func LSeries(xs []float64, p LParams) []float64 {
	return apply(xs, func(x float64) float64 { return L(x, p) })
}
