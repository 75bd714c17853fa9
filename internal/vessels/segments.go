package vessels

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

type Point struct {
	X, Y, Z float64
}

func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y, p.Z - q.Z}
}

func (p Point) Norm() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
}

func (p Point) String() string {
	return fmt.Sprintf("[%g %g %g]", p.X, p.Y, p.Z)
}

// Segment is a straight vessel piece between two points.
type Segment struct {
	Start, End Point
}

func (s Segment) Length() float64 {
	return s.End.Sub(s.Start).Norm()
}

// UseCase names a segment data file and its fixed-width prefix.
type UseCase struct {
	Name       string
	File       string
	Title      string
	ColsToDrop int
}

var useCases = map[string]UseCase{
	"rattumor": {Name: "rattumor", File: "data/rattum98_0.txt", Title: "Rat Tumor", ColsToDrop: 38},
	"ratbrain": {Name: "ratbrain", File: "data/brain99.txt", Title: "Rat Brain", ColsToDrop: 33},
}

func GetUseCase(name string) (UseCase, error) {
	uc, ok := useCases[name]
	if !ok {
		return UseCase{}, fmt.Errorf("%w: %s", ErrUnknownUseCase, name)
	}
	return uc, nil
}

func ReadSegments(path string, colsToDrop int) ([]Segment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	segs, err := ParseSegments(f, colsToDrop)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return segs, nil
}

// ParseSegments skips two header lines, drops the first colsToDrop
// characters of each remaining line and reads start and end coordinates
// from the rest. Blank lines are ignored.
func ParseSegments(r io.Reader, colsToDrop int) ([]Segment, error) {
	sc := bufio.NewScanner(r)
	var segs []Segment
	line := 0
	for sc.Scan() {
		line++
		if line <= 2 {
			continue
		}
		text := sc.Text()
		if len(text) > colsToDrop {
			text = text[colsToDrop:]
		} else {
			text = ""
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 6 {
			return nil, fmt.Errorf("line %d: %w", line, ErrShortSegment)
		}
		var v [6]float64
		for i := range v {
			x, err := strconv.ParseFloat(fields[i], 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			v[i] = x
		}
		segs = append(segs, Segment{
			Start: Point{v[0], v[1], v[2]},
			End:   Point{v[3], v[4], v[5]},
		})
	}
	return segs, sc.Err()
}

func Lengths(segs []Segment) []float64 {
	out := make([]float64, len(segs))
	for i, s := range segs {
		out[i] = s.Length()
	}
	return out
}

// WriteLengths writes one length per line.
func WriteLengths(path string, lengths []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	for _, l := range lengths {
		fmt.Fprintln(w, strconv.FormatFloat(l, 'g', -1, 64))
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Preview returns the first two and last two segments formatted for display.
func Preview(segs []Segment) []string {
	var out []string
	add := func(label string, s Segment) {
		out = append(out, fmt.Sprintf("Line %s: start = %v, end = %v", label, s.Start, s.End))
	}
	n := len(segs)
	if n <= 4 {
		for i, s := range segs {
			add(strconv.Itoa(i+1), s)
		}
		return out
	}
	add("1", segs[0])
	add("2", segs[1])
	out = append(out, "...")
	add("-2", segs[n-2])
	add("-1", segs[n-1])
	return out
}
