package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/san-kum/tumorkit/internal/distfit"
	"github.com/san-kum/tumorkit/internal/storage"
)

// DefaultRows is how many entries are shown at each end of a ranking.
const DefaultRows = 10

func format(v any) string {
	switch x := v.(type) {
	case float64:
		return fmt.Sprintf("%.6g", x)
	case string:
		return x
	default:
		return fmt.Sprint(v)
	}
}

func params(ps []float64) string {
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = fmt.Sprintf("%.6g", p)
	}
	return strings.Join(parts, " ")
}

// Banner renders the best-fitting distribution of a search on column.
func Banner(column string, res *distfit.Result) string {
	if res == nil || res.Best == nil {
		return Panel.Render(Warn.Render("no distribution could be fitted to " + column))
	}
	b := res.Best
	lines := []string{
		Title.Render("best fit for " + column),
		Best.Render(b.Fitted.String()),
		KV("D", b.D) + "   " + KV("p", b.P),
	}
	if failed := len(res.Failed()); failed > 0 {
		lines = append(lines, Label.Render(fmt.Sprintf("%d of %d candidates failed", failed, len(res.Outcomes))))
	}
	return Panel.Render(strings.Join(lines, "\n"))
}

// WriteRanking prints the k best and k worst candidates. The tail is only
// printed separately when the ranking is longer than 2k.
func WriteRanking(w io.Writer, res *distfit.Result, k int) error {
	if k <= 0 {
		k = DefaultRows
	}
	rank := res.Ranking()
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tdist\tD\tp\tparams")
	row := func(i int, o distfit.Outcome) {
		fmt.Fprintf(tw, "%d\t%s\t%.4f\t%.4g\t%s\n", i+1, o.Name, o.D, o.P, params(o.Fitted.Params()))
	}
	if len(rank) <= 2*k {
		for i, o := range rank {
			row(i, o)
		}
		return tw.Flush()
	}
	for i, o := range rank[:k] {
		row(i, o)
	}
	fmt.Fprintln(tw, "...\t\t\t\t")
	for i := len(rank) - k; i < len(rank); i++ {
		row(i, rank[i])
	}
	return tw.Flush()
}

// WriteRuns prints saved fit runs, newest first.
func WriteRuns(w io.Writer, runs []storage.RunMetadata) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "id\tcolumn\tn\tbest\tp\tfailed")
	for _, r := range runs {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%.4g\t%d/%d\n", r.ID, r.Column, r.SampleSize, r.Best, r.BestP, r.Failed, r.Candidates)
	}
	return tw.Flush()
}

// WriteRankRows prints a stored ranking.
func WriteRankRows(w io.Writer, rows []storage.RankRow) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tdist\tD\tp\tparams")
	for i, r := range rows {
		fmt.Fprintf(tw, "%d\t%s\t%.4f\t%.4g\t%s\n", i+1, r.Dist, r.D, r.P, params(r.Params))
	}
	return tw.Flush()
}
