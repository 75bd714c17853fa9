package report

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/tumorkit/internal/distfit"
	"github.com/san-kum/tumorkit/internal/storage"
)

func search(t *testing.T) (*distfit.Result, []float64) {
	t.Helper()
	xs := []float64{2.1, 2.4, 2.5, 2.9, 3.0, 3.1, 3.3, 3.6, 3.8, 4.4, 4.9, 5.2}
	res, err := distfit.Search(context.Background(), xs, distfit.Options{
		Names:  []string{"norm", "expon", "uniform", "laplace"},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	return res, xs
}

func key(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestBanner(t *testing.T) {
	res, _ := search(t)
	out := Banner("diam", res)
	if !strings.Contains(out, "best fit for diam") {
		t.Errorf("banner missing title: %q", out)
	}
	if !strings.Contains(out, res.Best.Name) {
		t.Errorf("banner missing best name %s", res.Best.Name)
	}
	if !strings.Contains(Banner("length", nil), "no distribution") {
		t.Error("expected warning banner without a result")
	}
}

func TestWriteRanking(t *testing.T) {
	res, _ := search(t)

	var buf bytes.Buffer
	if err := WriteRanking(&buf, res, 10); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected header and 4 rows, got %d lines", len(lines))
	}
	if !strings.Contains(lines[1], res.Best.Name) {
		t.Errorf("first row should be the best fit, got %q", lines[1])
	}

	buf.Reset()
	if err := WriteRanking(&buf, res, 1); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "...") {
		t.Error("expected an ellipsis between head and tail")
	}
	if got := strings.Count(strings.TrimSpace(out), "\n"); got != 3 {
		t.Errorf("expected header, head, ellipsis and tail, got %d newlines", got)
	}
}

func TestWriteRuns(t *testing.T) {
	var buf bytes.Buffer
	runs := []storage.RunMetadata{{ID: "diam_1", Column: "diam", SampleSize: 12, Best: "norm", BestP: 0.9, Candidates: 4}}
	if err := WriteRuns(&buf, runs); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "diam_1") || !strings.Contains(buf.String(), "0/4") {
		t.Errorf("unexpected runs table: %q", buf.String())
	}

	buf.Reset()
	rows := []storage.RankRow{{Dist: "norm", D: 0.1, P: 0.9, Params: []float64{3, 1}}}
	if err := WriteRankRows(&buf, rows); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "3 1") {
		t.Errorf("params should be space separated: %q", buf.String())
	}
}

func TestBrowserNavigation(t *testing.T) {
	res, xs := search(t)
	var m tea.Model = Browse(res, xs)

	first, ok := m.(Browser).Selected()
	if !ok || first.Name != res.Best.Name {
		t.Fatalf("cursor should start on the best fit")
	}

	m, _ = m.Update(key("down"))
	m, _ = m.Update(key("j"))
	if got, _ := m.(Browser).Selected(); got.Name != res.Ranking()[2].Name {
		t.Errorf("expected third entry, got %s", got.Name)
	}

	for i := 0; i < 10; i++ {
		m, _ = m.Update(key("down"))
	}
	if got, _ := m.(Browser).Selected(); got.Name != res.Ranking()[3].Name {
		t.Errorf("cursor should stop at the last entry, got %s", got.Name)
	}

	m, _ = m.Update(key("g"))
	m, _ = m.Update(key("up"))
	if got, _ := m.(Browser).Selected(); got.Name != res.Best.Name {
		t.Errorf("cursor should stop at the first entry, got %s", got.Name)
	}

	if _, cmd := m.Update(key("q")); cmd == nil {
		t.Error("q should quit")
	}
}

func TestBrowserView(t *testing.T) {
	res, xs := search(t)
	var m tea.Model = Browse(res, xs)
	m, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	view := m.View()
	if !strings.Contains(view, "fit ranking") {
		t.Error("view should have a header")
	}
	if !strings.Contains(view, "data density") {
		t.Error("view should include the preview caption")
	}

	empty := Browse(&distfit.Result{}, nil)
	if !strings.Contains(empty.View(), "nothing to show") {
		t.Error("empty browser should say so")
	}
}
