package curves

import (
	"errors"
	"math"
	"testing"
)

func TestLinspace(t *testing.T) {
	xs := Linspace(0, 1, 5)
	want := []float64{0, 0.25, 0.5, 0.75, 1}
	for i := range want {
		if math.Abs(xs[i]-want[i]) > 1e-15 {
			t.Errorf("xs[%d] = %f, want %f", i, xs[i], want[i])
		}
	}
	if Linspace(0, 1, 0) != nil {
		t.Error("expected nil for n=0")
	}
	if xs := Linspace(3, 7, 1); len(xs) != 1 || xs[0] != 3 {
		t.Errorf("Linspace(3, 7, 1) = %v, want [3]", xs)
	}
	xs = Linspace(-1, 2, 7)
	if xs[0] != -1 || xs[6] != 2 {
		t.Errorf("endpoints = %f, %f, want -1, 2", xs[0], xs[6])
	}
}

func TestLogspace(t *testing.T) {
	xs := Logspace(-2, 1, 4)
	want := []float64{0.01, 0.1, 1, 10}
	for i := range want {
		if math.Abs(xs[i]-want[i]) > 1e-12 {
			t.Errorf("xs[%d] = %g, want %g", i, xs[i], want[i])
		}
	}
	if xs := Logspace(0, 3, 0); xs != nil {
		t.Errorf("Logspace(0, 3, 0) = %v, want nil", xs)
	}
}

func TestArange(t *testing.T) {
	xs := Arange(0.001, 2.31, 0.01)
	if len(xs) != 231 {
		t.Errorf("expected 231 points, got %d", len(xs))
	}
	if xs[len(xs)-1] >= 2.31 {
		t.Errorf("last point %f should be below stop", xs[len(xs)-1])
	}
}

func TestBernoulli(t *testing.T) {
	if Bernoulli(0, Day) != 1 {
		t.Error("zero probability should give certain survival")
	}
	got := Bernoulli(0.01, 2)
	if math.Abs(got-0.9801) > 1e-12 {
		t.Errorf("expected 0.9801, got %f", got)
	}
	series := BernoulliSeries(-5, -2.5, 100)
	if len(series) != 4 {
		t.Fatalf("expected 4 horizons, got %d", len(series))
	}
	// longer horizons survive less
	if series[3].Y[50] >= series[0].Y[50] {
		t.Error("24h survival should be below 1h survival")
	}
}

func TestTimestepRatio(t *testing.T) {
	if r := TimestepRatio(1e-6, 1e-3, Day, 1e-6); r != 1 {
		t.Errorf("ratio at the reference step should be 1, got %f", r)
	}
	series := TimestepSeries(-6, 1, 50)
	if len(series) != 8 {
		t.Fatalf("expected 8 curves, got %d", len(series))
	}
	for _, s := range series {
		if s.Y[0] != 1 {
			t.Errorf("%s: first ratio should be 1, got %f", s.Label, s.Y[0])
		}
		if s.Y[len(s.Y)-1] >= 1 {
			t.Errorf("%s: large steps should lower survival", s.Label)
		}
	}
}

func TestH(t *testing.T) {
	p := HParams{A: 0, B: 30, Gamma: 1, XBar: 0.5, Dt: 1}
	mid := H(0.5, p)
	if math.Abs(mid-(1-math.Exp(-0.5))) > 1e-12 {
		t.Errorf("h at xbar should be 1-e^-0.5, got %f", mid)
	}
	if H(0, p) <= H(1, p) {
		t.Error("positive b should make h decrease")
	}
}

func TestL(t *testing.T) {
	p := LParams{C: 2, XBar: 0.2, Dt: 0.5}
	if L(0.1, p) != 0 {
		t.Error("l should vanish below xbar")
	}
	if math.Abs(L(1, p)-(1-math.Exp(-1))) > 1e-12 {
		t.Errorf("unexpected l(1) = %f", L(1, p))
	}
}

func TestForces(t *testing.T) {
	f := DefaultForces
	if f.Adhesive(2.2) != 0 || f.Adhesive(0) != 0 {
		t.Error("adhesion vanishes at 0 and beyond the action diameter")
	}
	if math.Abs(f.Adhesive(1.1)+0.25) > 1e-12 {
		t.Errorf("adhesive(1.1) = %f, want -0.25", f.Adhesive(1.1))
	}
	// at d = r the quadratic branch reaches zero
	if math.Abs(f.Repulsive(2)) > 1e-12 {
		t.Errorf("repulsive(2) = %f, want 0", f.Repulsive(2))
	}
	if math.Abs(f.Repulsive(0.5)-0.625) > 1e-12 {
		t.Errorf("repulsive(0.5) = %f", f.Repulsive(0.5))
	}
	if f.Total(1.1) != f.CA*f.Adhesive(1.1)+f.CR*f.Repulsive(1.1) {
		t.Error("total should combine both forces")
	}
	s := f.Series()
	if len(s) != 3 || len(s[0].X) != len(f.Distances()) {
		t.Error("unexpected series shape")
	}
}

func TestGridEach(t *testing.T) {
	g := NewGrid([]string{"a", "b"}, [][]float64{{1, 2}, {10, 20, 30}})
	if g.Size() != 6 {
		t.Fatalf("expected 6 points, got %d", g.Size())
	}
	var got [][2]float64
	g.Each(func(p map[string]float64) {
		got = append(got, [2]float64{p["a"], p["b"]})
	})
	if len(got) != 6 {
		t.Fatalf("expected 6 calls, got %d", len(got))
	}
	if got[0] != [2]float64{1, 10} || got[1] != [2]float64{1, 20} || got[5] != [2]float64{2, 30} {
		t.Errorf("unexpected order %v", got)
	}
}

func TestSweep(t *testing.T) {
	s := Sweep{Function: "h", A: []float64{1, 2}, B: []float64{30}, XBar: []float64{0.5}, Gamma: 1, Dt: 0.01, Points: 11}
	series, err := s.Series()
	if err != nil {
		t.Fatal(err)
	}
	if len(series) != 2 {
		t.Fatalf("expected 2 curves, got %d", len(series))
	}
	if series[0].Label != "a=1, b=30, xbar=0.5" {
		t.Errorf("unexpected label %q", series[0].Label)
	}

	s = Sweep{Function: "l", A: []float64{2}, XBar: []float64{0.15, 0.3}, Dt: 0.01}
	series, err = s.Series()
	if err != nil {
		t.Fatal(err)
	}
	if len(series) != 2 || len(series[0].X) != 1000 {
		t.Errorf("unexpected l sweep shape")
	}

	if _, err := (Sweep{Function: "q"}).Series(); !errors.Is(err, ErrUnknownFunction) {
		t.Errorf("expected ErrUnknownFunction, got %v", err)
	}
}

func TestFitH(t *testing.T) {
	truth := HParams{A: 0, B: -20, Gamma: 1, XBar: 0.16, Dt: 1}
	var data []Point
	for _, x := range Linspace(0, 1, 21) {
		data = append(data, Point{x, H(x, truth)})
	}
	fit, err := FitH(data, 0.16, 1)
	if err != nil {
		t.Fatal(err)
	}
	if fit.Initial.B != -1 {
		t.Errorf("rising data should start with b = -1, got %f", fit.Initial.B)
	}
	if fit.RMS >= RMS(data, fit.Initial) {
		t.Errorf("fit did not improve: %g >= %g", fit.RMS, RMS(data, fit.Initial))
	}
	if fit.RMS > 0.05 {
		t.Errorf("rms too large: %g", fit.RMS)
	}
}

func TestFitHNoData(t *testing.T) {
	if _, err := FitH(nil, 0.16, 1); !errors.Is(err, ErrNoData) {
		t.Errorf("expected ErrNoData, got %v", err)
	}
}
