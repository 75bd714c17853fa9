// Package permeability turns a sampled vessel permeability perturbation χ
// into the time series φ(t) = 1 + χ(t).
package permeability

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

const (
	DefaultSampleMinutes = 5.0
	DefaultOffsetDays    = -100.0
)

// Span marks a treatment interval in days.
type Span struct {
	Label    string
	From, To float64
}

// DefaultSpans are the TRA and DOX administration windows.
var DefaultSpans = []Span{
	{Label: "TRA", From: 2, To: 3},
	{Label: "TRA", From: 5, To: 6},
	{Label: "DOX", From: 8, To: 9},
}

func Read(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	vals, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return vals, nil
}

// Parse reads floats separated by commas or newlines.
func Parse(r io.Reader) ([]float64, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	var out []float64
	line := 0
	for sc.Scan() {
		line++
		for _, field := range strings.Split(sc.Text(), ",") {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			out = append(out, v)
		}
	}
	return out, sc.Err()
}

// Series holds time in days and φ.
type Series struct {
	Time []float64
	Phi  []float64
}

// NewSeries maps sample i to t = i·sampleMinutes/60/24 + offsetDays and
// φ = 1 + χ.
func NewSeries(chi []float64, sampleMinutes, offsetDays float64) Series {
	s := Series{Time: make([]float64, len(chi)), Phi: make([]float64, len(chi))}
	for i, c := range chi {
		s.Time[i] = float64(i)*sampleMinutes/60/24 + offsetDays
		s.Phi[i] = 1 + c
	}
	return s
}

// Window returns the samples with from <= t <= to.
func (s Series) Window(from, to float64) Series {
	var out Series
	for i, t := range s.Time {
		if t >= from && t <= to {
			out.Time = append(out.Time, t)
			out.Phi = append(out.Phi, s.Phi[i])
		}
	}
	return out
}

// Ticks returns from, from+step, ..., up to and including to.
func Ticks(from, to, step float64) []float64 {
	var out []float64
	for v := from; v <= to+1e-9; v += step {
		out = append(out, v)
	}
	return out
}
