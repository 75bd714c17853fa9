package describe

import "github.com/aclements/go-moremath/stats"

// Curve is a sampled function.
type Curve struct {
	X, Y []float64
}

// KDE returns the Gaussian kernel density estimate of xs as a function.
func KDE(xs []float64) (func(float64) float64, error) {
	if len(xs) < 2 {
		return nil, ErrEmpty
	}
	kde := &stats.KDE{Sample: stats.Sample{Xs: append([]float64(nil), xs...)}}
	return kde.PDF, nil
}

// Density evaluates a Gaussian kernel density estimate of xs on n points
// spanning the sample range. The bandwidth follows Scott's rule.
func Density(xs []float64, n int) (Curve, error) {
	if len(xs) < 2 || n < 2 {
		return Curve{}, ErrEmpty
	}
	s := stats.Sample{Xs: append([]float64(nil), xs...)}
	s.Sort()
	kde := &stats.KDE{Sample: s}

	lo, hi := s.Bounds()
	c := Curve{X: make([]float64, n), Y: make([]float64, n)}
	step := (hi - lo) / float64(n-1)
	for i := range c.X {
		x := lo + float64(i)*step
		c.X[i] = x
		c.Y[i] = kde.PDF(x)
	}
	return c, nil
}
