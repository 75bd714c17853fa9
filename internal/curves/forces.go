package curves

// Forces holds the agent radii (r, action ra, nuclear rn) and the weights
// of the adhesive and repulsive forces. Forces act on the distance between
// agent centers, so radii are doubled into diameters.
type Forces struct {
	R, RA, RN float64
	CA, CR    float64
}

var DefaultForces = Forces{R: 1, RA: 1.1, RN: 0.5, CA: 0.1, CR: 1}

// Adhesive is -(d/ra-1)² inside the action diameter and 0 outside.
func (f Forces) Adhesive(d float64) float64 {
	ra := 2 * f.RA
	if d > 0 && d < ra {
		t := d/ra - 1
		return -t * t
	}
	return 0
}

// Repulsive is linear in d inside the nuclear diameter, quadratic up to
// the cell diameter and 0 beyond.
func (f Forces) Repulsive(d float64) float64 {
	r, rn := 2*f.R, 2*f.RN
	switch {
	case d > 0 && d < rn:
		return rn*d/(r*r) - 2*d/r + 1
	case d >= rn && d <= r:
		return d*d/(r*r) - 2*d/r + 1
	}
	return 0
}

func (f Forces) Total(d float64) float64 {
	return f.CA*f.Adhesive(d) + f.CR*f.Repulsive(d)
}

// Distances returns the sampling grid [0.001, 2.1·ra) with step 0.01.
func (f Forces) Distances() []float64 {
	return Arange(0.001, 2.1*f.RA, 0.01)
}

// Series returns the adhesive, repulsive and total force curves.
func (f Forces) Series() []Series {
	ds := f.Distances()
	return []Series{
		{Label: "F_a", X: ds, Y: apply(ds, f.Adhesive)},
		{Label: "F_r", X: ds, Y: apply(ds, f.Repulsive)},
		{Label: "c_a F_a + c_r F_r", X: ds, Y: apply(ds, f.Total)},
	}
}

// Markers returns the vertical reference lines at 2ra, 2r and 2rn.
func (f Forces) Markers() []float64 {
	return []float64{2 * f.RA, 2 * f.R, 2 * f.RN}
}
