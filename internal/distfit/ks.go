package distfit

import (
	"math"
	"sort"
)

// KSTest runs the one-sample two-sided Kolmogorov–Smirnov test of xs
// against cdf. The p-value uses the asymptotic Kolmogorov distribution
// with Stephens' small-sample correction.
func KSTest(xs []float64, cdf func(float64) float64) (d, p float64) {
	s := make([]float64, 0, len(xs))
	for _, x := range xs {
		if !math.IsNaN(x) {
			s = append(s, x)
		}
	}
	n := len(s)
	if n == 0 {
		return math.NaN(), math.NaN()
	}
	sort.Float64s(s)

	fn := float64(n)
	for i, x := range s {
		f := cdf(x)
		if math.IsNaN(f) {
			return math.NaN(), math.NaN()
		}
		d = math.Max(d, math.Max(float64(i+1)/fn-f, f-float64(i)/fn))
	}
	sq := math.Sqrt(fn)
	return d, kolmogorovQ((sq + 0.12 + 0.11/sq) * d)
}

// kolmogorovQ is the survival function of the Kolmogorov distribution.
func kolmogorovQ(lambda float64) float64 {
	if lambda <= 0 {
		return 1
	}
	if lambda < 1.18 {
		y := math.Exp(-math.Pi * math.Pi / (8 * lambda * lambda))
		sum := 0.0
		for k := 1; k <= 6; k++ {
			m := float64(2*k - 1)
			sum += math.Pow(y, m*m)
		}
		return clamp01(1 - math.Sqrt(2*math.Pi)/lambda*sum)
	}
	sum := 0.0
	sign := 1.0
	for j := 1; j <= 100; j++ {
		fj := float64(j)
		term := math.Exp(-2 * fj * fj * lambda * lambda)
		sum += sign * term
		if term < 1e-16 {
			break
		}
		sign = -sign
	}
	return clamp01(2 * sum)
}
