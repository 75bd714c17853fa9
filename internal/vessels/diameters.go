package vessels

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// Box is the tissue volume the vessels were measured in, in µm.
type Box struct {
	X, Y, Z float64
}

var DefaultBox = Box{X: 550, Y: 550, Z: 230}

func (b Box) Volume() float64 {
	return b.X * b.Y * b.Z
}

// Cylinders holds one diameter and length per vessel.
type Cylinders struct {
	Diam   []float64
	Length []float64
}

func (c *Cylinders) Len() int {
	return len(c.Diam)
}

// Column returns the named column ("diam" or "length").
func (c *Cylinders) Column(name string) ([]float64, error) {
	switch name {
	case "diam":
		return c.Diam, nil
	case "length":
		return c.Length, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
}

// ReadDiameters loads a diam/length CSV. Header names may be padded with
// whitespace.
func ReadDiameters(path string) (*Cylinders, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c, err := ParseDiameters(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

func ParseDiameters(r io.Reader) (*Cylinders, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: diam", ErrMissingColumn)
	}

	di, li := -1, -1
	for i, h := range records[0] {
		switch strings.TrimSpace(h) {
		case "diam":
			di = i
		case "length":
			li = i
		}
	}
	if di < 0 {
		return nil, fmt.Errorf("%w: diam", ErrMissingColumn)
	}
	if li < 0 {
		return nil, fmt.Errorf("%w: length", ErrMissingColumn)
	}

	c := &Cylinders{}
	for n, rec := range records[1:] {
		d, err := strconv.ParseFloat(strings.TrimSpace(rec[di]), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", n+2, err)
		}
		l, err := strconv.ParseFloat(strings.TrimSpace(rec[li]), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", n+2, err)
		}
		c.Diam = append(c.Diam, d)
		c.Length = append(c.Length, l)
	}
	return c, nil
}

// Volume sums π(d/2)²l over all cylinders.
func (c *Cylinders) Volume() float64 {
	v := 0.0
	for i, d := range c.Diam {
		v += math.Pi * (d / 2) * (d / 2) * c.Length[i]
	}
	return v
}

// VolumeFraction returns the total vessel volume and its share of box.
func (c *Cylinders) VolumeFraction(box Box) (volume, fraction float64) {
	volume = c.Volume()
	return volume, volume / box.Volume()
}
