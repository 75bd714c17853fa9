// Package describe summarizes samples the way the vessel analysis reports
// them: a count/mean/quartile table, pairwise correlations and a smoothed
// density.
package describe

import (
	"errors"
	"fmt"
	"io"
	"math"
	"sort"
	"text/tabwriter"

	"github.com/aclements/go-moremath/stats"
	"gonum.org/v1/gonum/stat"
)

var ErrEmpty = errors.New("describe: empty sample")

// Summary holds the rows of a describe table.
type Summary struct {
	Count int
	Mean  float64
	Std   float64
	Min   float64
	Q25   float64
	Q50   float64
	Q75   float64
	Max   float64
}

// Summarize computes the summary of xs. Std is the sample (n-1) standard
// deviation. Quartiles interpolate linearly between order statistics at
// rank (n-1)p.
func Summarize(xs []float64) (Summary, error) {
	if len(xs) == 0 {
		return Summary{}, ErrEmpty
	}
	s := stats.Sample{Xs: append([]float64(nil), xs...)}
	s.Sort()

	sum := Summary{Count: len(xs)}
	sum.Mean, sum.Std = stat.MeanStdDev(s.Xs, nil)
	if len(xs) == 1 {
		sum.Std = math.NaN()
	}
	sum.Min, sum.Max = s.Bounds()
	sum.Q25 = quantile(s.Xs, 0.25)
	sum.Q50 = quantile(s.Xs, 0.5)
	sum.Q75 = quantile(s.Xs, 0.75)
	return sum, nil
}

// quantile interpolates the sorted sample at rank (n-1)p.
func quantile(sorted []float64, p float64) float64 {
	h := float64(len(sorted)-1) * p
	lo := int(math.Floor(h))
	if lo+1 >= len(sorted) {
		return sorted[len(sorted)-1]
	}
	return sorted[lo] + (h-float64(lo))*(sorted[lo+1]-sorted[lo])
}

func (s Summary) rows() []float64 {
	return []float64{float64(s.Count), s.Mean, s.Std, s.Min, s.Q25, s.Q50, s.Q75, s.Max}
}

var rowLabels = []string{"count", "mean", "std", "min", "25%", "50%", "75%", "max"}

// WriteTable prints one column per named summary.
func WriteTable(w io.Writer, names []string, sums []Summary) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprint(tw, "\t")
	for _, n := range names {
		fmt.Fprintf(tw, "%s\t", n)
	}
	fmt.Fprintln(tw)
	for i, label := range rowLabels {
		fmt.Fprintf(tw, "%s\t", label)
		for _, s := range sums {
			fmt.Fprintf(tw, "%.6g\t", s.rows()[i])
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}

// Correlation holds the three coefficients for a pair of columns.
type Correlation struct {
	Pearson  float64
	Spearman float64
	Kendall  float64
}

// Method selects a correlation coefficient.
type Method int

const (
	Pearson Method = iota
	Spearman
	Kendall
)

// Methods lists every coefficient in report order.
var Methods = []Method{Pearson, Spearman, Kendall}

func (m Method) String() string {
	switch m {
	case Pearson:
		return "pearson"
	case Spearman:
		return "spearman"
	case Kendall:
		return "kendall"
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// Coefficient computes the coefficient of x and y, which must have equal
// length.
func (m Method) Coefficient(x, y []float64) float64 {
	switch m {
	case Spearman:
		return stat.Correlation(Ranks(x), Ranks(y), nil)
	case Kendall:
		return KendallTauB(x, y)
	}
	return stat.Correlation(x, y, nil)
}

// Correlate computes the Pearson, Spearman and Kendall (tau-b)
// coefficients of x and y.
func Correlate(x, y []float64) (Correlation, error) {
	if len(x) != len(y) {
		return Correlation{}, fmt.Errorf("describe: length mismatch %d != %d", len(x), len(y))
	}
	if len(x) < 2 {
		return Correlation{}, ErrEmpty
	}
	return Correlation{
		Pearson:  Pearson.Coefficient(x, y),
		Spearman: Spearman.Coefficient(x, y),
		Kendall:  Kendall.Coefficient(x, y),
	}, nil
}

// KendallTauB returns Kendall's tau-b, which corrects the denominator for
// pairs tied in x or in y. It is NaN when either column is constant.
func KendallTauB(x, y []float64) float64 {
	var conc, disc, tx, ty float64
	for i := range x {
		for j := i + 1; j < len(x); j++ {
			dx, dy := x[i]-x[j], y[i]-y[j]
			switch {
			case dx == 0 && dy == 0:
				tx++
				ty++
			case dx == 0:
				tx++
			case dy == 0:
				ty++
			case (dx > 0) == (dy > 0):
				conc++
			default:
				disc++
			}
		}
	}
	n := float64(len(x))
	pairs := n * (n - 1) / 2
	den := math.Sqrt((pairs - tx) * (pairs - ty))
	if den == 0 {
		return math.NaN()
	}
	return (conc - disc) / den
}

// Ranks returns 1-based ranks with ties given their average rank.
func Ranks(xs []float64) []float64 {
	idx := make([]int, len(xs))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return xs[idx[a]] < xs[idx[b]] })

	ranks := make([]float64, len(xs))
	for i := 0; i < len(idx); {
		j := i
		for j+1 < len(idx) && xs[idx[j+1]] == xs[idx[i]] {
			j++
		}
		avg := float64(i+j)/2 + 1
		for k := i; k <= j; k++ {
			ranks[idx[k]] = avg
		}
		i = j + 1
	}
	return ranks
}

// WriteMatrix prints the correlation matrix of the named columns using the
// given coefficient.
func WriteMatrix(w io.Writer, names []string, cols [][]float64, m Method) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprint(tw, "\t")
	for _, n := range names {
		fmt.Fprintf(tw, "%s\t", n)
	}
	fmt.Fprintln(tw)
	for i, n := range names {
		fmt.Fprintf(tw, "%s\t", n)
		for j := range names {
			fmt.Fprintf(tw, "%.6f\t", m.Coefficient(cols[i], cols[j]))
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}
