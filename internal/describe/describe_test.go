package describe

import (
	"bytes"
	"math"
	"strings"
	"testing"
)

func TestSummarize(t *testing.T) {
	s, err := Summarize([]float64{5, 1, 3, 2, 4})
	if err != nil {
		t.Fatal(err)
	}
	if s.Count != 5 {
		t.Errorf("expected count 5, got %d", s.Count)
	}
	if s.Mean != 3 {
		t.Errorf("expected mean 3, got %f", s.Mean)
	}
	if math.Abs(s.Std-math.Sqrt(2.5)) > 1e-12 {
		t.Errorf("expected sample std sqrt(2.5), got %f", s.Std)
	}
	if s.Min != 1 || s.Max != 5 {
		t.Errorf("expected bounds [1, 5], got [%f, %f]", s.Min, s.Max)
	}
	if s.Q50 != 3 {
		t.Errorf("expected median 3, got %f", s.Q50)
	}
	if !(s.Q25 > 1 && s.Q25 < 3 && s.Q75 > 3 && s.Q75 < 5) {
		t.Errorf("quartiles out of order: %f %f", s.Q25, s.Q75)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	if _, err := Summarize(nil); err != ErrEmpty {
		t.Errorf("expected ErrEmpty, got %v", err)
	}
}

func TestWriteTable(t *testing.T) {
	s, _ := Summarize([]float64{1, 2, 3})
	var buf bytes.Buffer
	if err := WriteTable(&buf, []string{"diam"}, []Summary{s}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"diam", "count", "25%", "max"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}

func TestRanksTies(t *testing.T) {
	got := Ranks([]float64{10, 20, 20, 5})
	want := []float64{2, 3.5, 3.5, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("rank[%d] = %f, want %f", i, got[i], want[i])
		}
	}
}

func TestCorrelateMonotone(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	y := []float64{1, 4, 9, 16, 25}
	c, err := Correlate(x, y)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(c.Spearman-1) > 1e-12 {
		t.Errorf("spearman of monotone data should be 1, got %f", c.Spearman)
	}
	if math.Abs(c.Kendall-1) > 1e-12 {
		t.Errorf("kendall of monotone data should be 1, got %f", c.Kendall)
	}
	if c.Pearson >= 1 || c.Pearson < 0.9 {
		t.Errorf("pearson of quadratic data should be just under 1, got %f", c.Pearson)
	}
}

func TestCorrelateMismatch(t *testing.T) {
	if _, err := Correlate([]float64{1, 2}, []float64{1}); err == nil {
		t.Error("expected error for length mismatch")
	}
}

func TestDensity(t *testing.T) {
	xs := []float64{-1, -0.5, 0, 0, 0.5, 1}
	c, err := Density(xs, 101)
	if err != nil {
		t.Fatal(err)
	}
	if c.X[0] != -1 || math.Abs(c.X[100]-1) > 1e-12 {
		t.Errorf("grid should span the sample, got [%f, %f]", c.X[0], c.X[100])
	}
	if c.Y[50] <= c.Y[0] {
		t.Errorf("density should peak near the center: %f <= %f", c.Y[50], c.Y[0])
	}
	for i, y := range c.Y {
		if y < 0 || math.IsNaN(y) {
			t.Fatalf("density[%d] = %f", i, y)
		}
	}
}

func TestKDE(t *testing.T) {
	if _, err := KDE([]float64{1}); err == nil {
		t.Error("expected error for a single value")
	}
	pdf, err := KDE([]float64{-1, -0.5, 0, 0, 0.5, 1})
	if err != nil {
		t.Fatal(err)
	}
	if pdf(0) <= pdf(3) {
		t.Errorf("density should be larger at the center: %f <= %f", pdf(0), pdf(3))
	}
}

func TestSummarizeQuartilesEven(t *testing.T) {
	s, err := Summarize([]float64{6, 1, 5, 2, 4, 3})
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range []struct {
		name      string
		got, want float64
	}{
		{"25%", s.Q25, 2.25},
		{"50%", s.Q50, 3.5},
		{"75%", s.Q75, 4.75},
	} {
		if math.Abs(c.got-c.want) > 1e-12 {
			t.Errorf("%s = %f, want %f", c.name, c.got, c.want)
		}
	}
}

func TestSummarizeSingle(t *testing.T) {
	s, err := Summarize([]float64{7})
	if err != nil {
		t.Fatal(err)
	}
	if s.Q25 != 7 || s.Q50 != 7 || s.Q75 != 7 {
		t.Errorf("quartiles of a single value should equal it, got %f %f %f", s.Q25, s.Q50, s.Q75)
	}
	if !math.IsNaN(s.Std) {
		t.Errorf("std of a single value should be NaN, got %f", s.Std)
	}
}

func TestKendallTauBTies(t *testing.T) {
	x := []float64{1, 2, 2, 3}
	y := []float64{1, 2, 3, 3}
	if got := KendallTauB(x, y); math.Abs(got-0.8) > 1e-12 {
		t.Errorf("tau-b = %f, want 0.8", got)
	}
	if got := KendallTauB([]float64{1, 2, 3}, []float64{3, 2, 1}); math.Abs(got+1) > 1e-12 {
		t.Errorf("tau-b of reversed data = %f, want -1", got)
	}
	if got := KendallTauB([]float64{1, 1, 1}, []float64{1, 2, 3}); !math.IsNaN(got) {
		t.Errorf("tau-b with a constant column = %f, want NaN", got)
	}
}

func TestWriteMatrixMethods(t *testing.T) {
	names := []string{"a", "b"}
	cols := [][]float64{{1, 2, 2, 3}, {1, 2, 3, 3}}
	want := map[Method]string{
		Pearson:  "0.852803",
		Spearman: "0.833333",
		Kendall:  "0.800000",
	}
	for _, m := range Methods {
		var buf bytes.Buffer
		if err := WriteMatrix(&buf, names, cols, m); err != nil {
			t.Fatal(err)
		}
		out := buf.String()
		if !strings.Contains(out, "1.000000") {
			t.Errorf("%s: diagonal missing:\n%s", m, out)
		}
		if !strings.Contains(out, want[m]) {
			t.Errorf("%s: expected %s in:\n%s", m, want[m], out)
		}
	}
	if Kendall.String() != "kendall" {
		t.Errorf("unexpected method name %q", Kendall.String())
	}
}
