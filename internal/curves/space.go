// Package curves evaluates the closed-form helper curves used to pick
// simulation parameters: Bernoulli survival, timestep error, the smooth
// step h, the ramp l and the cell-cell forces.
package curves

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Linspace returns n evenly spaced values over [start, stop].
func Linspace(start, stop float64, n int) []float64 {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []float64{start}
	}
	return floats.Span(make([]float64, n), start, stop)
}

// Logspace returns n values spaced evenly on a log scale from 10^start to
// 10^stop.
func Logspace(start, stop float64, n int) []float64 {
	out := Linspace(start, stop, n)
	for i, e := range out {
		out[i] = math.Pow(10, e)
	}
	return out
}

// Arange returns start, start+step, ... below stop.
func Arange(start, stop, step float64) []float64 {
	if step <= 0 || stop <= start {
		return nil
	}
	n := int(math.Ceil((stop - start) / step))
	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}

// Series is a labelled curve.
type Series struct {
	Label string
	X, Y  []float64
}

func apply(xs []float64, f func(float64) float64) []float64 {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = f(x)
	}
	return ys
}
