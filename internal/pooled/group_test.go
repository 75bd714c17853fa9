package pooled

import (
	"errors"
	"math"
	"testing"
)

func sampleStats(xs []float64) Group {
	mean := 0.0
	for _, x := range xs {
		mean += x
	}
	mean /= float64(len(xs))
	ss := 0.0
	for _, x := range xs {
		ss += (x - mean) * (x - mean)
	}
	return Group{N: len(xs), Mean: mean, Std: math.Sqrt(ss / float64(len(xs)-1))}
}

func TestCombineMatchesRawData(t *testing.T) {
	a := []float64{1, 2, 3, 8}
	b := []float64{4, 5, 6, 7, 12}

	got := Combine(sampleStats(a), sampleStats(b))
	want := sampleStats(append(append([]float64{}, a...), b...))

	if got.N != want.N {
		t.Errorf("expected n=%d, got %d", want.N, got.N)
	}
	if math.Abs(got.Mean-want.Mean) > 1e-12 {
		t.Errorf("expected mean %.12f, got %.12f", want.Mean, got.Mean)
	}
	if math.Abs(got.Std-want.Std) > 1e-12 {
		t.Errorf("expected std %.12f, got %.12f", want.Std, got.Std)
	}
}

func TestCombineIdenticalGroups(t *testing.T) {
	g := Group{N: 7, Mean: 120.5, Std: 14.2}
	got := Combine(g, g)

	if got.N != 14 {
		t.Errorf("expected n=14, got %d", got.N)
	}
	if math.Abs(got.Mean-g.Mean) > 1e-12 {
		t.Errorf("mean changed: %f -> %f", g.Mean, got.Mean)
	}

	want := g.Std * math.Sqrt(12.0/13.0)
	if math.Abs(got.Std-want) > 1e-12 {
		t.Errorf("expected std %.12f, got %.12f", want, got.Std)
	}
	if got == g {
		t.Error("combine should not be idempotent")
	}
}

func TestCombineEdgeCases(t *testing.T) {
	tests := []struct {
		name string
		g1   Group
		g2   Group
		want Group
	}{
		{"both empty", Group{}, Group{}, Group{}},
		{"single point", Group{N: 1, Mean: 3}, Group{}, Group{N: 1, Mean: 3}},
		{"empty right", Group{N: 5, Mean: 2, Std: 1}, Group{}, Group{N: 5, Mean: 2, Std: 1}},
	}

	for _, tt := range tests {
		got := Combine(tt.g1, tt.g2)
		if got.N != tt.want.N || math.Abs(got.Mean-tt.want.Mean) > 1e-12 || math.Abs(got.Std-tt.want.Std) > 1e-12 {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, got)
		}
	}
}

func TestFoldSixGroups(t *testing.T) {
	groups := []Group{
		{7, 100, 10}, {8, 110, 12}, {7, 95, 9},
		{7, 105, 11}, {6, 98, 8}, {7, 102, 10},
	}

	got, err := Fold(groups...)
	if err != nil {
		t.Fatalf("fold failed: %v", err)
	}
	if got.N != 42 {
		t.Errorf("expected n=42, got %d", got.N)
	}

	sum := 0.0
	for _, g := range groups {
		sum += float64(g.N) * g.Mean
	}
	if math.Abs(got.Mean-sum/42) > 1e-9 {
		t.Errorf("expected weighted mean %f, got %f", sum/42, got.Mean)
	}

	// reversed order agrees up to rounding
	rev := make([]Group, len(groups))
	for i := range groups {
		rev[i] = groups[len(groups)-1-i]
	}
	back, _ := Fold(rev...)
	if math.Abs(back.Std-got.Std) > 1e-9 {
		t.Errorf("fold order changed std: %f vs %f", got.Std, back.Std)
	}
}

func TestFoldEmpty(t *testing.T) {
	if _, err := Fold(); !errors.Is(err, ErrNoGroups) {
		t.Errorf("expected ErrNoGroups, got %v", err)
	}
}
