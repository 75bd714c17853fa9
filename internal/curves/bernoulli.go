package curves

import (
	"fmt"
	"math"
)

// Step lengths in minutes.
const (
	Hour       = 60
	QuarterDay = 6 * Hour
	HalfDay    = 12 * Hour
	Day        = 2 * HalfDay
)

// Bernoulli is the probability of no event in steps independent trials
// with per-step probability p.
func Bernoulli(p float64, steps float64) float64 {
	return math.Pow(1-p, steps)
}

// BernoulliSeries evaluates Bernoulli on a log grid 10^pmin..10^pmax for
// the 1h, 6h, 12h and 24h horizons.
func BernoulliSeries(pmin, pmax float64, n int) []Series {
	xs := Logspace(pmin, pmax, n)
	var out []Series
	for _, h := range []struct {
		label string
		steps float64
	}{
		{"1h (N=60)", Hour},
		{"6h (N=360)", QuarterDay},
		{"12h (N=720)", HalfDay},
		{"24h (N=1440)", Day},
	} {
		steps := h.steps
		out = append(out, Series{
			Label: h.label,
			X:     xs,
			Y:     apply(xs, func(p float64) float64 { return Bernoulli(p, steps) }),
		})
	}
	return out
}

// survival is the probability of no event over T when stepping with dt.
func survival(dt, rate, T float64) float64 {
	return math.Pow(1-rate*dt, T/dt)
}

// TimestepRatio compares the survival probability at step dt with the one
// at the reference step dtMin.
func TimestepRatio(dt, rate, T, dtMin float64) float64 {
	return survival(dt, rate, T) / survival(dtMin, rate, T)
}

var TimestepRates = []float64{1e-4, 5e-4, 1e-3, 2e-3}

// TimestepSeries evaluates TimestepRatio on a log grid of steps for every
// rate in TimestepRates and horizons of 12h and 24h. The first grid point
// is the reference step.
func TimestepSeries(dtmin, dtmax float64, n int) []Series {
	xs := Logspace(dtmin, dtmax, n)
	var out []Series
	for _, rate := range TimestepRates {
		for _, T := range []float64{HalfDay, Day} {
			rate, T := rate, T
			out = append(out, Series{
				Label: fmt.Sprintf("T=%gh, r=%g/min", T/Hour, rate),
				X:     xs,
				Y:     apply(xs, func(dt float64) float64 { return TimestepRatio(dt, rate, T, xs[0]) }),
			})
		}
	}
	return out
}
