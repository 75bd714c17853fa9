package distfit

import (
	"math"

	"gonum.org/v1/gonum/mathext"
	"gonum.org/v1/gonum/stat/distuv"
)

var (
	ln2       = math.Ln2
	lnPi      = math.Log(math.Pi)
	halfLn2Pi = 0.5 * math.Log(2*math.Pi)
)

func lgamma(x float64) float64 {
	v, _ := math.Lgamma(x)
	return v
}

func lbeta(a, b float64) float64 {
	return lgamma(a) + lgamma(b) - lgamma(a+b)
}

// softplus computes log(1 + e^t) without overflow.
func softplus(t float64) float64 {
	if t > 30 {
		return t
	}
	return math.Log1p(math.Exp(t))
}

func normLogPDF(z float64) float64 {
	return distuv.UnitNormal.LogProb(z)
}

func normCDF(z float64) float64 {
	return distuv.UnitNormal.CDF(z)
}

// gammaP is the regularized lower incomplete gamma function.
func gammaP(a, x float64) float64 {
	if x <= 0 {
		return 0
	}
	return mathext.GammaIncReg(a, x)
}

func betaI(a, b, x float64) float64 {
	switch {
	case x <= 0:
		return 0
	case x >= 1:
		return 1
	}
	return mathext.RegIncBeta(a, b, x)
}

func logAbsCosh(z float64) float64 {
	a := math.Abs(z)
	return a + math.Log1p(math.Exp(-2*a)) - ln2
}

func clamp01(p float64) float64 {
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}
