package distfit

import (
	"math"

	"github.com/aclements/go-moremath/stats"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

var (
	inf  = math.Inf(1)
	ninf = math.Inf(-1)
)

func pos(name string, start float64) shape  { return shape{name: name, c: positive, start: start} }
func free(name string, start float64) shape { return shape{name: name, c: unbounded, start: start} }

// catalog lists the candidates in search order.
var catalog = []*family{
	{
		name:   "alpha",
		shapes: []shape{pos("a", 3)},
		lo:     0, hi: inf,
		logpdf: func(z float64, s []float64) float64 {
			a := s[0]
			return normLogPDF(a-1/z) - 2*math.Log(z) - math.Log(normCDF(a))
		},
		cdf: func(z float64, s []float64) float64 {
			return normCDF(s[0]-1/z) / normCDF(s[0])
		},
	},
	{
		name: "anglit",
		lo:   -math.Pi / 4, hi: math.Pi / 4,
		logpdf: func(z float64, _ []float64) float64 { return math.Log(math.Cos(2 * z)) },
		cdf: func(z float64, _ []float64) float64 {
			v := math.Sin(z + math.Pi/4)
			return v * v
		},
	},
	{
		name: "arcsine",
		lo:   0, hi: 1,
		logpdf: func(z float64, _ []float64) float64 {
			return -lnPi - 0.5*math.Log(z*(1-z))
		},
		cdf: func(z float64, _ []float64) float64 { return 2 / math.Pi * math.Asin(math.Sqrt(z)) },
	},
	{
		name:   "beta",
		shapes: []shape{pos("a", 2), pos("b", 2)},
		lo:     0, hi: 1,
		logpdf: func(z float64, s []float64) float64 { return distuv.Beta{Alpha: s[0], Beta: s[1]}.LogProb(z) },
		cdf:    func(z float64, s []float64) float64 { return distuv.Beta{Alpha: s[0], Beta: s[1]}.CDF(z) },
	},
	{
		name:   "betaprime",
		shapes: []shape{pos("a", 2), pos("b", 4)},
		lo:     0, hi: inf,
		logpdf: func(z float64, s []float64) float64 {
			a, b := s[0], s[1]
			return (a-1)*math.Log(z) - (a+b)*math.Log1p(z) - lbeta(a, b)
		},
		cdf: func(z float64, s []float64) float64 { return betaI(s[0], s[1], z/(1+z)) },
	},
	{
		name:   "bradford",
		shapes: []shape{pos("c", 1)},
		lo:     0, hi: 1,
		logpdf: func(z float64, s []float64) float64 {
			c := s[0]
			return math.Log(c) - math.Log(math.Log1p(c)) - math.Log1p(c*z)
		},
		cdf: func(z float64, s []float64) float64 { return math.Log1p(s[0]*z) / math.Log1p(s[0]) },
	},
	{
		name:   "burr",
		shapes: []shape{pos("c", 2), pos("d", 1)},
		lo:     0, hi: inf,
		logpdf: func(z float64, s []float64) float64 {
			c, d := s[0], s[1]
			return math.Log(c) + math.Log(d) - (c+1)*math.Log(z) - (d+1)*math.Log1p(math.Pow(z, -c))
		},
		cdf: func(z float64, s []float64) float64 { return math.Pow(1+math.Pow(z, -s[0]), -s[1]) },
	},
	{
		name:   "burr12",
		shapes: []shape{pos("c", 2), pos("d", 1)},
		lo:     0, hi: inf,
		logpdf: func(z float64, s []float64) float64 {
			c, d := s[0], s[1]
			return math.Log(c) + math.Log(d) + (c-1)*math.Log(z) - (d+1)*math.Log1p(math.Pow(z, c))
		},
		cdf: func(z float64, s []float64) float64 { return -math.Expm1(-s[1] * math.Log1p(math.Pow(z, s[0]))) },
	},
	{
		name: "cauchy",
		lo:   ninf, hi: inf,
		logpdf: func(z float64, _ []float64) float64 { return -lnPi - math.Log1p(z*z) },
		cdf:    func(z float64, _ []float64) float64 { return 0.5 + math.Atan(z)/math.Pi },
	},
	{
		name:   "chi",
		shapes: []shape{pos("df", 2)},
		lo:     0, hi: inf,
		logpdf: func(z float64, s []float64) float64 {
			k := s[0]
			return (1-k/2)*ln2 - lgamma(k/2) + (k-1)*math.Log(z) - z*z/2
		},
		cdf: func(z float64, s []float64) float64 { return gammaP(s[0]/2, z*z/2) },
	},
	{
		name:   "chi2",
		shapes: []shape{pos("df", 4)},
		lo:     0, hi: inf,
		logpdf: func(z float64, s []float64) float64 { return distuv.ChiSquared{K: s[0]}.LogProb(z) },
		cdf:    func(z float64, s []float64) float64 { return distuv.ChiSquared{K: s[0]}.CDF(z) },
	},
	{
		name: "cosine",
		lo:   -math.Pi, hi: math.Pi,
		logpdf: func(z float64, _ []float64) float64 {
			return math.Log1p(math.Cos(z)) - math.Log(2*math.Pi)
		},
		cdf: func(z float64, _ []float64) float64 { return (math.Pi + z + math.Sin(z)) / (2 * math.Pi) },
	},
	{
		name:   "dgamma",
		shapes: []shape{pos("a", 1)},
		lo:     ninf, hi: inf,
		logpdf: func(z float64, s []float64) float64 {
			a := s[0]
			return (a-1)*math.Log(math.Abs(z)) - math.Abs(z) - ln2 - lgamma(a)
		},
		cdf: func(z float64, s []float64) float64 {
			if z > 0 {
				return 0.5 + 0.5*gammaP(s[0], z)
			}
			return 0.5 - 0.5*gammaP(s[0], -z)
		},
	},
	{
		name:   "dweibull",
		shapes: []shape{pos("c", 2)},
		lo:     ninf, hi: inf,
		logpdf: func(z float64, s []float64) float64 {
			c, a := s[0], math.Abs(z)
			return math.Log(c/2) + (c-1)*math.Log(a) - math.Pow(a, c)
		},
		cdf: func(z float64, s []float64) float64 {
			if z <= 0 {
				return 0.5 * math.Exp(-math.Pow(-z, s[0]))
			}
			return 1 - 0.5*math.Exp(-math.Pow(z, s[0]))
		},
	},
	{
		name: "expon",
		lo:   0, hi: inf,
		logpdf: func(z float64, _ []float64) float64 { return distuv.Exponential{Rate: 1}.LogProb(z) },
		cdf:    func(z float64, _ []float64) float64 { return distuv.Exponential{Rate: 1}.CDF(z) },
		closed: func(xs []float64) []float64 {
			min, mean := floats.Min(xs), stat.Mean(xs, nil)
			return []float64{min, mean - min}
		},
	},
	{
		name:   "exponweib",
		shapes: []shape{pos("a", 1), pos("c", 1)},
		lo:     0, hi: inf,
		logpdf: func(z float64, s []float64) float64 {
			a, c := s[0], s[1]
			zc := math.Pow(z, c)
			return math.Log(a) + math.Log(c) + (a-1)*math.Log(-math.Expm1(-zc)) - zc + (c-1)*math.Log(z)
		},
		cdf: func(z float64, s []float64) float64 {
			return math.Pow(-math.Expm1(-math.Pow(z, s[1])), s[0])
		},
	},
	{
		name:   "exponpow",
		shapes: []shape{pos("b", 1)},
		lo:     0, hi: inf,
		logpdf: func(z float64, s []float64) float64 {
			b := s[0]
			zb := math.Pow(z, b)
			return math.Log(b) + (b-1)*math.Log(z) + 1 + zb - math.Exp(zb)
		},
		cdf: func(z float64, s []float64) float64 { return -math.Expm1(-math.Expm1(math.Pow(z, s[0]))) },
	},
	{
		name:   "f",
		shapes: []shape{pos("dfn", 5), pos("dfd", 10)},
		lo:     0, hi: inf,
		logpdf: func(z float64, s []float64) float64 { return distuv.F{D1: s[0], D2: s[1]}.LogProb(z) },
		cdf:    func(z float64, s []float64) float64 { return distuv.F{D1: s[0], D2: s[1]}.CDF(z) },
	},
	{
		name:   "fatiguelife",
		shapes: []shape{pos("c", 0.5)},
		lo:     0, hi: inf,
		logpdf: func(z float64, s []float64) float64 {
			c := s[0]
			return math.Log1p(z) - math.Log(2*c) - halfLn2Pi - 1.5*math.Log(z) - (z-1)*(z-1)/(2*z*c*c)
		},
		cdf: func(z float64, s []float64) float64 {
			r := math.Sqrt(z)
			return normCDF((r - 1/r) / s[0])
		},
	},
	{
		name:   "fisk",
		shapes: []shape{pos("c", 3)},
		lo:     0, hi: inf,
		logpdf: func(z float64, s []float64) float64 {
			c := s[0]
			return math.Log(c) + (c-1)*math.Log(z) - 2*math.Log1p(math.Pow(z, c))
		},
		cdf: func(z float64, s []float64) float64 { return 1 / (1 + math.Pow(z, -s[0])) },
	},
	{
		name:   "foldcauchy",
		shapes: []shape{pos("c", 1)},
		lo:     0, hi: inf,
		logpdf: func(z float64, s []float64) float64 {
			c := s[0]
			return math.Log(1/(1+(z-c)*(z-c))+1/(1+(z+c)*(z+c))) - lnPi
		},
		cdf: func(z float64, s []float64) float64 {
			return (math.Atan(z-s[0]) + math.Atan(z+s[0])) / math.Pi
		},
	},
	{
		name:   "foldnorm",
		shapes: []shape{pos("c", 1)},
		lo:     0, hi: inf,
		logpdf: func(z float64, s []float64) float64 {
			c := s[0]
			return math.Log(math.Exp(normLogPDF(z-c)) + math.Exp(normLogPDF(z+c)))
		},
		cdf: func(z float64, s []float64) float64 { return normCDF(z-s[0]) + normCDF(z+s[0]) - 1 },
	},
	{
		name:   "genlogistic",
		shapes: []shape{pos("c", 1)},
		lo:     ninf, hi: inf,
		logpdf: func(z float64, s []float64) float64 {
			c := s[0]
			return math.Log(c) - z - (c+1)*softplus(-z)
		},
		cdf: func(z float64, s []float64) float64 { return math.Exp(-s[0] * softplus(-z)) },
	},
	{
		name:   "gennorm",
		shapes: []shape{pos("beta", 2)},
		lo:     ninf, hi: inf,
		logpdf: func(z float64, s []float64) float64 {
			b := s[0]
			return math.Log(b) - ln2 - lgamma(1/b) - math.Pow(math.Abs(z), b)
		},
		cdf: func(z float64, s []float64) float64 {
			b := s[0]
			half := 0.5 * gammaP(1/b, math.Pow(math.Abs(z), b))
			if z < 0 {
				return 0.5 - half
			}
			return 0.5 + half
		},
	},
	{
		name:   "genpareto",
		shapes: []shape{free("c", 0.1)},
		lo:     0, hi: inf,
		logpdf: func(z float64, s []float64) float64 {
			c := s[0]
			if c == 0 {
				return -z
			}
			t := 1 + c*z
			if t <= 0 {
				return ninf
			}
			return -(1 + 1/c) * math.Log(t)
		},
		cdf: func(z float64, s []float64) float64 {
			c := s[0]
			if c == 0 {
				return -math.Expm1(-z)
			}
			t := 1 + c*z
			if t <= 0 {
				return 1
			}
			return 1 - math.Pow(t, -1/c)
		},
	},
	{
		name:   "genextreme",
		shapes: []shape{free("c", 0.1)},
		lo:     ninf, hi: inf,
		logpdf: func(z float64, s []float64) float64 {
			c := s[0]
			if c == 0 {
				return -z - math.Exp(-z)
			}
			t := 1 - c*z
			if t <= 0 {
				return ninf
			}
			return (1/c-1)*math.Log(t) - math.Pow(t, 1/c)
		},
		cdf: func(z float64, s []float64) float64 {
			c := s[0]
			if c == 0 {
				return math.Exp(-math.Exp(-z))
			}
			t := 1 - c*z
			if t <= 0 {
				if c > 0 {
					return 1
				}
				return 0
			}
			return math.Exp(-math.Pow(t, 1/c))
		},
	},
	{
		name:   "gamma",
		shapes: []shape{pos("a", 2)},
		lo:     0, hi: inf,
		logpdf: func(z float64, s []float64) float64 { return distuv.Gamma{Alpha: s[0], Beta: 1}.LogProb(z) },
		cdf:    func(z float64, s []float64) float64 { return distuv.Gamma{Alpha: s[0], Beta: 1}.CDF(z) },
	},
	{
		name:   "gompertz",
		shapes: []shape{pos("c", 1)},
		lo:     0, hi: inf,
		logpdf: func(z float64, s []float64) float64 {
			c := s[0]
			return math.Log(c) + z - c*math.Expm1(z)
		},
		cdf: func(z float64, s []float64) float64 { return -math.Expm1(-s[0] * math.Expm1(z)) },
	},
	{
		name: "gumbel_r",
		lo:   ninf, hi: inf,
		logpdf: func(z float64, _ []float64) float64 { return distuv.GumbelRight{Mu: 0, Beta: 1}.LogProb(z) },
		cdf:    func(z float64, _ []float64) float64 { return distuv.GumbelRight{Mu: 0, Beta: 1}.CDF(z) },
	},
	{
		name: "gumbel_l",
		lo:   ninf, hi: inf,
		logpdf: func(z float64, _ []float64) float64 { return z - math.Exp(z) },
		cdf:    func(z float64, _ []float64) float64 { return -math.Expm1(-math.Exp(z)) },
	},
	{
		name: "halfcauchy",
		lo:   0, hi: inf,
		logpdf: func(z float64, _ []float64) float64 { return ln2 - lnPi - math.Log1p(z*z) },
		cdf:    func(z float64, _ []float64) float64 { return 2 / math.Pi * math.Atan(z) },
	},
	{
		name: "halflogistic",
		lo:   0, hi: inf,
		logpdf: func(z float64, _ []float64) float64 { return ln2 - z - 2*softplus(-z) },
		cdf:    func(z float64, _ []float64) float64 { return math.Tanh(z / 2) },
	},
	{
		name: "halfnorm",
		lo:   0, hi: inf,
		logpdf: func(z float64, _ []float64) float64 { return ln2 + normLogPDF(z) },
		cdf:    func(z float64, _ []float64) float64 { return math.Erf(z / math.Sqrt2) },
	},
	{
		name:   "halfgennorm",
		shapes: []shape{pos("beta", 2)},
		lo:     0, hi: inf,
		logpdf: func(z float64, s []float64) float64 {
			b := s[0]
			return math.Log(b) - lgamma(1/b) - math.Pow(z, b)
		},
		cdf: func(z float64, s []float64) float64 { return gammaP(1/s[0], math.Pow(z, s[0])) },
	},
	{
		name: "hypsecant",
		lo:   ninf, hi: inf,
		logpdf: func(z float64, _ []float64) float64 { return -lnPi - logAbsCosh(z) },
		cdf:    func(z float64, _ []float64) float64 { return 2 / math.Pi * math.Atan(math.Exp(z)) },
	},
	{
		name:   "invgamma",
		shapes: []shape{pos("a", 3)},
		lo:     0, hi: inf,
		logpdf: func(z float64, s []float64) float64 { return distuv.InverseGamma{Alpha: s[0], Beta: 1}.LogProb(z) },
		cdf:    func(z float64, s []float64) float64 { return distuv.InverseGamma{Alpha: s[0], Beta: 1}.CDF(z) },
	},
	{
		name:   "invweibull",
		shapes: []shape{pos("c", 2)},
		lo:     0, hi: inf,
		logpdf: func(z float64, s []float64) float64 {
			c := s[0]
			return math.Log(c) - (c+1)*math.Log(z) - math.Pow(z, -c)
		},
		cdf: func(z float64, s []float64) float64 { return math.Exp(-math.Pow(z, -s[0])) },
	},
	{
		name:   "johnsonsb",
		shapes: []shape{free("a", 0), pos("b", 1)},
		lo:     0, hi: 1,
		logpdf: func(z float64, s []float64) float64 {
			a, b := s[0], s[1]
			return math.Log(b) - math.Log(z*(1-z)) + normLogPDF(a+b*math.Log(z/(1-z)))
		},
		cdf: func(z float64, s []float64) float64 { return normCDF(s[0] + s[1]*math.Log(z/(1-z))) },
	},
	{
		name:   "johnsonsu",
		shapes: []shape{free("a", 0), pos("b", 1)},
		lo:     ninf, hi: inf,
		logpdf: func(z float64, s []float64) float64 {
			a, b := s[0], s[1]
			return math.Log(b) - 0.5*math.Log1p(z*z) + normLogPDF(a+b*math.Asinh(z))
		},
		cdf: func(z float64, s []float64) float64 { return normCDF(s[0] + s[1]*math.Asinh(z)) },
	},
	{
		name: "laplace",
		lo:   ninf, hi: inf,
		logpdf: func(z float64, _ []float64) float64 { return distuv.Laplace{Mu: 0, Scale: 1}.LogProb(z) },
		cdf:    func(z float64, _ []float64) float64 { return distuv.Laplace{Mu: 0, Scale: 1}.CDF(z) },
		closed: func(xs []float64) []float64 {
			med := stats.Sample{Xs: xs}.Quantile(0.5)
			dev := 0.0
			for _, x := range xs {
				dev += math.Abs(x - med)
			}
			return []float64{med, dev / float64(len(xs))}
		},
	},
	{
		name:   "laplace_asymmetric",
		shapes: []shape{pos("kappa", 1)},
		lo:     ninf, hi: inf,
		logpdf: func(z float64, s []float64) float64 {
			k := s[0]
			norm := math.Log(k) - math.Log1p(k*k)
			if z >= 0 {
				return norm - k*z
			}
			return norm + z/k
		},
		cdf: func(z float64, s []float64) float64 {
			k := s[0]
			if z >= 0 {
				return 1 - math.Exp(-k*z)/(1+k*k)
			}
			return k * k * math.Exp(z/k) / (1 + k*k)
		},
	},
	{
		name: "levy",
		lo:   0, hi: inf,
		logpdf: func(z float64, _ []float64) float64 {
			return -halfLn2Pi - 1.5*math.Log(z) - 1/(2*z)
		},
		cdf: func(z float64, _ []float64) float64 { return math.Erfc(1 / math.Sqrt(2*z)) },
	},
	{
		name: "levy_l",
		lo:   ninf, hi: 0,
		logpdf: func(z float64, _ []float64) float64 {
			return -halfLn2Pi - 1.5*math.Log(-z) + 1/(2*z)
		},
		cdf: func(z float64, _ []float64) float64 { return math.Erf(1 / math.Sqrt(-2*z)) },
	},
	{
		name: "logistic",
		lo:   ninf, hi: inf,
		logpdf: func(z float64, _ []float64) float64 { return -z - 2*softplus(-z) },
		cdf:    func(z float64, _ []float64) float64 { return 1 / (1 + math.Exp(-z)) },
	},
	{
		name:   "loggamma",
		shapes: []shape{pos("c", 1)},
		lo:     ninf, hi: inf,
		logpdf: func(z float64, s []float64) float64 {
			c := s[0]
			return c*z - math.Exp(z) - lgamma(c)
		},
		cdf: func(z float64, s []float64) float64 { return gammaP(s[0], math.Exp(z)) },
	},
	{
		name:   "loglaplace",
		shapes: []shape{pos("c", 2)},
		lo:     0, hi: inf,
		logpdf: func(z float64, s []float64) float64 {
			c := s[0]
			if z < 1 {
				return math.Log(c/2) + (c-1)*math.Log(z)
			}
			return math.Log(c/2) - (c+1)*math.Log(z)
		},
		cdf: func(z float64, s []float64) float64 {
			if z < 1 {
				return 0.5 * math.Pow(z, s[0])
			}
			return 1 - 0.5*math.Pow(z, -s[0])
		},
	},
	{
		name:   "lognorm",
		shapes: []shape{pos("s", 0.5)},
		lo:     0, hi: inf,
		logpdf: func(z float64, s []float64) float64 { return distuv.LogNormal{Mu: 0, Sigma: s[0]}.LogProb(z) },
		cdf:    func(z float64, s []float64) float64 { return distuv.LogNormal{Mu: 0, Sigma: s[0]}.CDF(z) },
	},
	{
		name:   "lomax",
		shapes: []shape{pos("c", 3)},
		lo:     0, hi: inf,
		logpdf: func(z float64, s []float64) float64 {
			c := s[0]
			return math.Log(c) - (c+1)*math.Log1p(z)
		},
		cdf: func(z float64, s []float64) float64 { return -math.Expm1(-s[0] * math.Log1p(z)) },
	},
	{
		name: "maxwell",
		lo:   0, hi: inf,
		logpdf: func(z float64, _ []float64) float64 {
			return 0.5*math.Log(2/math.Pi) + 2*math.Log(z) - z*z/2
		},
		cdf: func(z float64, _ []float64) float64 {
			return math.Erf(z/math.Sqrt2) - math.Sqrt(2/math.Pi)*z*math.Exp(-z*z/2)
		},
	},
	{
		name:   "mielke",
		shapes: []shape{pos("k", 2), pos("s", 2)},
		lo:     0, hi: inf,
		logpdf: func(z float64, s []float64) float64 {
			k, sh := s[0], s[1]
			return math.Log(k) + (k-1)*math.Log(z) - (1+k/sh)*math.Log1p(math.Pow(z, sh))
		},
		cdf: func(z float64, s []float64) float64 {
			k, sh := s[0], s[1]
			return math.Pow(z, k) / math.Pow(1+math.Pow(z, sh), k/sh)
		},
	},
	{
		name: "moyal",
		lo:   ninf, hi: inf,
		logpdf: func(z float64, _ []float64) float64 { return -0.5*(z+math.Exp(-z)) - halfLn2Pi },
		cdf:    func(z float64, _ []float64) float64 { return math.Erfc(math.Exp(-z/2) / math.Sqrt2) },
	},
	{
		name:   "nakagami",
		shapes: []shape{pos("nu", 1)},
		lo:     0, hi: inf,
		logpdf: func(z float64, s []float64) float64 {
			nu := s[0]
			return ln2 + nu*math.Log(nu) - lgamma(nu) + (2*nu-1)*math.Log(z) - nu*z*z
		},
		cdf: func(z float64, s []float64) float64 { return gammaP(s[0], s[0]*z*z) },
	},
	{
		name: "norm",
		lo:   ninf, hi: inf,
		logpdf: func(z float64, _ []float64) float64 { return normLogPDF(z) },
		cdf:    func(z float64, _ []float64) float64 { return normCDF(z) },
		closed: func(xs []float64) []float64 {
			mean := stat.Mean(xs, nil)
			ss := 0.0
			for _, x := range xs {
				ss += (x - mean) * (x - mean)
			}
			return []float64{mean, math.Sqrt(ss / float64(len(xs)))}
		},
	},
	{
		name:   "pareto",
		shapes: []shape{pos("b", 3)},
		lo:     1, hi: inf,
		logpdf: func(z float64, s []float64) float64 { return distuv.Pareto{Xm: 1, Alpha: s[0]}.LogProb(z) },
		cdf:    func(z float64, s []float64) float64 { return distuv.Pareto{Xm: 1, Alpha: s[0]}.CDF(z) },
	},
	{
		name:   "powerlaw",
		shapes: []shape{pos("a", 1.5)},
		lo:     0, hi: 1,
		logpdf: func(z float64, s []float64) float64 {
			a := s[0]
			return math.Log(a) + (a-1)*math.Log(z)
		},
		cdf: func(z float64, s []float64) float64 { return math.Pow(z, s[0]) },
	},
	{
		name:   "powernorm",
		shapes: []shape{pos("c", 1)},
		lo:     ninf, hi: inf,
		logpdf: func(z float64, s []float64) float64 {
			c := s[0]
			return math.Log(c) + normLogPDF(z) + (c-1)*math.Log(normCDF(-z))
		},
		cdf: func(z float64, s []float64) float64 { return 1 - math.Pow(normCDF(-z), s[0]) },
	},
	{
		name:   "rdist",
		shapes: []shape{pos("c", 4)},
		lo:     -1, hi: 1,
		logpdf: func(z float64, s []float64) float64 {
			c := s[0]
			return (c/2-1)*math.Log1p(-z*z) - lbeta(0.5, c/2)
		},
		cdf: func(z float64, s []float64) float64 { return betaI(s[0]/2, s[0]/2, (z+1)/2) },
	},
	{
		name: "rayleigh",
		lo:   0, hi: inf,
		logpdf: func(z float64, _ []float64) float64 { return math.Log(z) - z*z/2 },
		cdf:    func(z float64, _ []float64) float64 { return -math.Expm1(-z * z / 2) },
	},
	{
		name: "semicircular",
		lo:   -1, hi: 1,
		logpdf: func(z float64, _ []float64) float64 {
			return math.Log(2/math.Pi) + 0.5*math.Log1p(-z*z)
		},
		cdf: func(z float64, _ []float64) float64 {
			return 0.5 + (z*math.Sqrt(1-z*z)+math.Asin(z))/math.Pi
		},
	},
	{
		name:   "skewcauchy",
		shapes: []shape{{name: "a", c: symmetric, start: 0}},
		lo:     ninf, hi: inf,
		logpdf: func(z float64, s []float64) float64 {
			a := s[0]
			d := a*math.Copysign(1, z) + 1
			return -lnPi - math.Log1p(z*z/(d*d))
		},
		cdf: func(z float64, s []float64) float64 {
			a := s[0]
			if z <= 0 {
				return (1-a)/2 + (1-a)/math.Pi*math.Atan(z/(1-a))
			}
			return (1-a)/2 + (1+a)/math.Pi*math.Atan(z/(1+a))
		},
	},
	{
		name:   "t",
		shapes: []shape{pos("df", 5)},
		lo:     ninf, hi: inf,
		logpdf: func(z float64, s []float64) float64 { return distuv.StudentsT{Mu: 0, Sigma: 1, Nu: s[0]}.LogProb(z) },
		cdf:    func(z float64, s []float64) float64 { return distuv.StudentsT{Mu: 0, Sigma: 1, Nu: s[0]}.CDF(z) },
	},
	{
		name:   "triang",
		shapes: []shape{{name: "c", c: unit, start: 0.5}},
		lo:     0, hi: 1,
		logpdf: func(z float64, s []float64) float64 {
			c := s[0]
			if z < c {
				return ln2 + math.Log(z) - math.Log(c)
			}
			return ln2 + math.Log(1-z) - math.Log(1-c)
		},
		cdf: func(z float64, s []float64) float64 {
			c := s[0]
			if z < c {
				return z * z / c
			}
			return 1 - (1-z)*(1-z)/(1-c)
		},
	},
	{
		name:   "truncexpon",
		shapes: []shape{pos("b", 10)},
		lo:     0, hi: inf,
		logpdf: func(z float64, s []float64) float64 {
			b := s[0]
			if z > b {
				return ninf
			}
			return -z - math.Log(-math.Expm1(-b))
		},
		cdf: func(z float64, s []float64) float64 {
			b := s[0]
			if z >= b {
				return 1
			}
			return math.Expm1(-z) / math.Expm1(-b)
		},
	},
	{
		name: "uniform",
		lo:   0, hi: 1,
		logpdf: func(z float64, _ []float64) float64 { return distuv.Uniform{Min: 0, Max: 1}.LogProb(z) },
		cdf:    func(z float64, _ []float64) float64 { return distuv.Uniform{Min: 0, Max: 1}.CDF(z) },
		closed: func(xs []float64) []float64 {
			min, max := floats.Min(xs), floats.Max(xs)
			return []float64{min, max - min}
		},
	},
	{
		name: "wald",
		lo:   0, hi: inf,
		logpdf: func(z float64, _ []float64) float64 {
			return -halfLn2Pi - 1.5*math.Log(z) - (z-1)*(z-1)/(2*z)
		},
		cdf: func(z float64, _ []float64) float64 {
			r := math.Sqrt(z)
			return normCDF((z-1)/r) + math.Exp(2)*normCDF(-(z+1)/r)
		},
	},
	{
		name:   "weibull_min",
		shapes: []shape{pos("c", 1.5)},
		lo:     0, hi: inf,
		logpdf: func(z float64, s []float64) float64 { return distuv.Weibull{K: s[0], Lambda: 1}.LogProb(z) },
		cdf:    func(z float64, s []float64) float64 { return distuv.Weibull{K: s[0], Lambda: 1}.CDF(z) },
	},
	{
		name:   "weibull_max",
		shapes: []shape{pos("c", 1.5)},
		lo:     ninf, hi: 0,
		logpdf: func(z float64, s []float64) float64 {
			c := s[0]
			return math.Log(c) + (c-1)*math.Log(-z) - math.Pow(-z, c)
		},
		cdf: func(z float64, s []float64) float64 { return math.Exp(-math.Pow(-z, s[0])) },
	},
}

var byName = func() map[string]*family {
	m := make(map[string]*family, len(catalog))
	for _, f := range catalog {
		m[f.name] = f
	}
	return m
}()

// Names returns the candidate names in search order.
func Names() []string {
	names := make([]string, len(catalog))
	for i, f := range catalog {
		names[i] = f.name
	}
	return names
}

func lookup(name string) (*family, error) {
	f, ok := byName[name]
	if !ok {
		return nil, &FitError{Name: name, Wrapped: ErrUnknownDistribution}
	}
	return f, nil
}
