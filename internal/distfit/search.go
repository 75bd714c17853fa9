package distfit

import (
	"context"
	"log/slog"
	"math"
	"sort"

	"golang.org/x/sync/errgroup"
)

// Options controls a catalog search.
type Options struct {
	// Names restricts the candidates. Empty means the whole catalog.
	Names []string
	// Workers bounds the number of concurrent fits. Values below 1 mean 1.
	Workers int
	MaxIter int
	Logger  *slog.Logger
}

// Outcome is the result for one candidate. Err is set when the fit failed.
type Outcome struct {
	Name   string
	Fitted *Fitted
	D, P   float64
	Err    error
}

func (o Outcome) OK() bool {
	return o.Err == nil && !math.IsNaN(o.P)
}

// Result holds every outcome in candidate order.
type Result struct {
	Outcomes []Outcome
	Best     *Outcome
}

// Ranking returns the successful outcomes sorted by p-value, largest
// first. Equal p-values keep candidate order.
func (r *Result) Ranking() []Outcome {
	out := make([]Outcome, 0, len(r.Outcomes))
	for _, o := range r.Outcomes {
		if o.OK() {
			out = append(out, o)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].P > out[j].P })
	return out
}

// Head returns the k best ranked outcomes. Negative k yields none.
func (r *Result) Head(k int) []Outcome {
	rank := r.Ranking()
	k = max(k, 0)
	if k < len(rank) {
		rank = rank[:k]
	}
	return rank
}

// Tail returns the k worst ranked outcomes. Negative k yields none.
func (r *Result) Tail(k int) []Outcome {
	rank := r.Ranking()
	k = max(k, 0)
	if k < len(rank) {
		rank = rank[len(rank)-k:]
	}
	return rank
}

// Failed returns the outcomes whose fit or test did not succeed.
func (r *Result) Failed() []Outcome {
	var out []Outcome
	for _, o := range r.Outcomes {
		if !o.OK() {
			out = append(out, o)
		}
	}
	return out
}

// Search fits every candidate to xs, tests each fit with [KSTest] and
// selects the largest p-value.
func Search(ctx context.Context, xs []float64, opts Options) (*Result, error) {
	names := opts.Names
	if len(names) == 0 {
		names = Names()
	}
	for _, name := range names {
		if _, err := lookup(name); err != nil {
			return nil, err
		}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	maxIter := opts.MaxIter
	if maxIter <= 0 {
		maxIter = defaultMaxIter
	}
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}

	outcomes := make([]Outcome, len(names))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, name := range names {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			outcomes[i] = evaluate(name, xs, maxIter)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := &Result{Outcomes: outcomes}
	for i := range outcomes {
		o := &outcomes[i]
		if o.Err != nil {
			logger.Warn("candidate fit failed", "dist", o.Name, "err", o.Err)
			continue
		}
		logger.Debug("candidate tested", "dist", o.Name, "D", o.D, "p", o.P)
		if math.IsNaN(o.P) {
			continue
		}
		if res.Best == nil || o.P > res.Best.P {
			res.Best = o
		}
	}
	if res.Best == nil {
		return res, ErrNoFit
	}
	return res, nil
}

func evaluate(name string, xs []float64, maxIter int) Outcome {
	f, err := fit(name, xs, maxIter)
	if err != nil {
		return Outcome{Name: name, D: math.NaN(), P: math.NaN(), Err: err}
	}
	d, p := KSTest(xs, f.CDF)
	return Outcome{Name: name, Fitted: f, D: d, P: p}
}
