package storage

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/tumorkit/internal/distfit"
)

func searchResult(t *testing.T) *distfit.Result {
	t.Helper()
	xs := []float64{1.2, 2.3, 2.9, 3.1, 3.8, 4.4, 5.0, 5.9, 7.1}
	res, err := distfit.Search(context.Background(), xs, distfit.Options{
		Names:  []string{"norm", "uniform", "expon"},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	return res
}

func TestStoreSaveLoad(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	res := searchResult(t)
	runID, err := st.Save("vessel-diameter.txt", "diam", 9, res)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if runID == "" {
		t.Error("expected non-empty run id")
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if meta.Column != "diam" {
		t.Errorf("expected column 'diam', got '%s'", meta.Column)
	}
	if meta.Best != res.Best.Name {
		t.Errorf("expected best %s, got %s", res.Best.Name, meta.Best)
	}
	if meta.SampleSize != 9 || meta.Candidates != 3 {
		t.Errorf("unexpected counts %+v", meta)
	}

	rows, err := st.LoadRanking(runID)
	if err != nil {
		t.Fatalf("load ranking failed: %v", err)
	}
	if len(rows) != len(res.Ranking()) {
		t.Fatalf("expected %d rows, got %d", len(res.Ranking()), len(rows))
	}
	if rows[0].Dist != res.Best.Name || rows[0].P != res.Best.P {
		t.Errorf("first row should be the best fit, got %+v", rows[0])
	}
	if len(rows[0].Params) != len(res.Best.Fitted.Params()) {
		t.Errorf("unexpected params %v", rows[0].Params)
	}
}

func TestStoreSaveSameSecond(t *testing.T) {
	st := New(t.TempDir())
	res := searchResult(t)
	a, err := st.Save("x", "length", 9, res)
	if err != nil {
		t.Fatal(err)
	}
	b, err := st.Save("x", "length", 9, res)
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Errorf("expected distinct run ids, got %s twice", a)
	}
}

func TestStoreList(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected 0 runs, got %d", len(runs))
	}

	if _, err := st.Save("x", "diam", 9, searchResult(t)); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(tmpDir, "junk"), 0755); err != nil {
		t.Fatal(err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("expected 1 run, got %d", len(runs))
	}
}

func TestStoreLoadNotFound(t *testing.T) {
	st := New(t.TempDir())
	if _, err := st.Load("nonexistent"); err == nil {
		t.Error("expected error for nonexistent run")
	}
}
