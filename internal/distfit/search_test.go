package distfit_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/san-kum/tumorkit/internal/distfit"
)

// quantileSample returns n evenly spaced quantiles of q.
func quantileSample(n int, q func(float64) float64) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = q((float64(i) + 0.5) / float64(n))
	}
	return xs
}

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

var _ = Describe("Fit", func() {
	normal := quantileSample(200, distuv.Normal{Mu: 10, Sigma: 2}.Quantile)

	It("uses the closed form for norm", func() {
		f, err := distfit.Fit("norm", normal)
		Expect(err).NotTo(HaveOccurred())
		Expect(f.Loc).To(BeNumerically("~", 10, 1e-9))
		Expect(f.Scale).To(BeNumerically("~", 2, 0.1))
		Expect(f.Params()).To(HaveLen(2))
	})

	It("uses the closed form for expon", func() {
		xs := []float64{1, 2, 3, 6}
		f, err := distfit.Fit("expon", xs)
		Expect(err).NotTo(HaveOccurred())
		Expect(f.Loc).To(Equal(1.0))
		Expect(f.Scale).To(Equal(2.0))
		Expect(f.CDF(0.5)).To(Equal(0.0))
	})

	It("uses the closed forms for uniform and laplace", func() {
		u, err := distfit.Fit("uniform", []float64{4, 1, 3, 9})
		Expect(err).NotTo(HaveOccurred())
		Expect(u.Loc).To(Equal(1.0))
		Expect(u.Scale).To(Equal(8.0))

		l, err := distfit.Fit("laplace", []float64{1, 2, 4, 10})
		Expect(err).NotTo(HaveOccurred())
		Expect(l.Loc).To(BeNumerically("~", 3, 1e-12))
		Expect(l.Scale).To(BeNumerically("~", 2.75, 1e-12))
	})

	It("recovers a gamma sample", func() {
		xs := quantileSample(200, distuv.Gamma{Alpha: 3, Beta: 0.5}.Quantile)
		f, err := distfit.Fit("gamma", xs)
		Expect(err).NotTo(HaveOccurred())
		Expect(f.Shapes).To(HaveLen(1))
		Expect(f.Scale).To(BeNumerically(">", 0))
		_, p := distfit.KSTest(xs, f.CDF)
		Expect(p).To(BeNumerically(">", 0.5))
	})

	It("orders params as shapes, loc, scale", func() {
		f, err := distfit.Fit("lognorm", quantileSample(100, distuv.LogNormal{Mu: 0, Sigma: 0.5}.Quantile))
		Expect(err).NotTo(HaveOccurred())
		p := f.Params()
		Expect(p).To(HaveLen(3))
		Expect(p[0]).To(Equal(f.Shapes[0]))
		Expect(p[1]).To(Equal(f.Loc))
		Expect(p[2]).To(Equal(f.Scale))
		Expect(f.String()).To(HavePrefix("lognorm(s="))
	})

	It("fits genpareto to a shifted sample", func() {
		xs := quantileSample(300, distuv.Gamma{Alpha: 2, Beta: 0.5}.Quantile)
		for i := range xs {
			xs[i] += 5
		}
		f, err := distfit.Fit("genpareto", xs)
		Expect(err).NotTo(HaveOccurred())
		Expect(math.IsInf(f.LogLik, 0) || math.IsNaN(f.LogLik)).To(BeFalse())
		Expect(f.Scale).To(BeNumerically(">", 0))
		Expect(f.Loc).To(BeNumerically("<=", xs[0]+1e-6))

		res, err := distfit.Search(context.Background(), xs, distfit.Options{
			Names:  []string{"genpareto", "gamma"},
			Logger: quiet,
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Failed()).To(BeEmpty())
		Expect(res.Ranking()).To(HaveLen(2))
	})

	It("reports the log-likelihood of the unscaled data", func() {
		xs := quantileSample(200, distuv.Gamma{Alpha: 3, Beta: 0.5}.Quantile)
		f, err := distfit.Fit("gamma", xs)
		Expect(err).NotTo(HaveOccurred())
		ll := 0.0
		for _, x := range xs {
			ll += f.LogPDF(x)
		}
		Expect(f.LogLik).To(BeNumerically("~", ll, 1e-6*math.Abs(ll)))
	})

	It("rejects unknown names", func() {
		_, err := distfit.Fit("nosuch", normal)
		Expect(errors.Is(err, distfit.ErrUnknownDistribution)).To(BeTrue())
		var fe *distfit.FitError
		Expect(errors.As(err, &fe)).To(BeTrue())
		Expect(fe.Name).To(Equal("nosuch"))
	})

	It("rejects short and constant samples", func() {
		_, err := distfit.Fit("norm", []float64{1, math.NaN()})
		Expect(err).To(MatchError(distfit.ErrEmptySample))
		_, err = distfit.Fit("gamma", []float64{4, 4, 4})
		Expect(err).To(MatchError(distfit.ErrDegenerateSample))
	})
})

var _ = Describe("KSTest", func() {
	It("is near zero for the exact distribution", func() {
		n := 50
		xs := quantileSample(n, func(p float64) float64 { return p })
		d, p := distfit.KSTest(xs, func(x float64) float64 { return x })
		Expect(d).To(BeNumerically("~", 0.5/float64(n), 1e-12))
		Expect(p).To(BeNumerically("~", 1, 1e-9))
	})

	It("computes the statistic for a single point", func() {
		d, p := distfit.KSTest([]float64{0.9}, func(x float64) float64 { return x })
		Expect(d).To(BeNumerically("~", 0.9, 1e-12))
		Expect(p).To(BeNumerically(">=", 0))
		Expect(p).To(BeNumerically("<", 0.2))
	})

	It("returns NaN for an empty sample", func() {
		d, p := distfit.KSTest(nil, func(x float64) float64 { return x })
		Expect(math.IsNaN(d)).To(BeTrue())
		Expect(math.IsNaN(p)).To(BeTrue())
	})
})

var _ = Describe("Search", func() {
	normal := quantileSample(200, distuv.Normal{Mu: 10, Sigma: 2}.Quantile)

	It("picks the largest p-value", func() {
		res, err := distfit.Search(context.Background(), normal, distfit.Options{
			Names:  []string{"uniform", "expon", "norm"},
			Logger: quiet,
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Best.Name).To(Equal("norm"))
		Expect(res.Outcomes).To(HaveLen(3))
		Expect(res.Ranking()[0].Name).To(Equal("norm"))
	})

	It("breaks ties by candidate order", func() {
		res, err := distfit.Search(context.Background(), normal, distfit.Options{
			Names:  []string{"norm", "norm"},
			Logger: quiet,
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Best).To(BeIdenticalTo(&res.Outcomes[0]))
	})

	It("ranks by p descending with head and tail", func() {
		res, err := distfit.Search(context.Background(), normal, distfit.Options{
			Names:  []string{"uniform", "norm", "laplace", "cauchy", "logistic"},
			Logger: quiet,
		})
		Expect(err).NotTo(HaveOccurred())
		rank := res.Ranking()
		for i := 1; i < len(rank); i++ {
			Expect(rank[i-1].P).To(BeNumerically(">=", rank[i].P))
		}
		Expect(res.Head(2)).To(Equal(rank[:2]))
		Expect(res.Tail(2)).To(Equal(rank[len(rank)-2:]))
		Expect(res.Head(100)).To(HaveLen(len(rank)))
		Expect(res.Head(0)).To(BeEmpty())
		Expect(res.Head(-1)).To(BeEmpty())
		Expect(res.Tail(-3)).To(BeEmpty())
	})

	It("gives the same result with parallel workers", func() {
		names := []string{"norm", "gamma", "logistic", "lognorm", "t", "uniform"}
		seq, err := distfit.Search(context.Background(), normal, distfit.Options{Names: names, Logger: quiet})
		Expect(err).NotTo(HaveOccurred())
		par, err := distfit.Search(context.Background(), normal, distfit.Options{Names: names, Workers: 4, Logger: quiet})
		Expect(err).NotTo(HaveOccurred())
		Expect(par.Best.Name).To(Equal(seq.Best.Name))
		for i := range names {
			Expect(par.Outcomes[i].Name).To(Equal(seq.Outcomes[i].Name))
			Expect(par.Outcomes[i].P).To(Equal(seq.Outcomes[i].P))
		}
	})

	It("fails on an unknown candidate before fitting", func() {
		_, err := distfit.Search(context.Background(), normal, distfit.Options{Names: []string{"norm", "bogus"}})
		Expect(err).To(MatchError(distfit.ErrUnknownDistribution))
	})

	It("reports when every candidate fails", func() {
		res, err := distfit.Search(context.Background(), []float64{2, 2, 2}, distfit.Options{
			Names:  []string{"norm", "gamma"},
			Logger: quiet,
		})
		Expect(err).To(MatchError(distfit.ErrNoFit))
		Expect(res.Failed()).To(HaveLen(2))
	})

	It("stops on a canceled context", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := distfit.Search(ctx, normal, distfit.Options{Names: []string{"norm"}, Logger: quiet})
		Expect(err).To(MatchError(context.Canceled))
	})
})
