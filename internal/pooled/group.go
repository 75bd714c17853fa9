// Package pooled combines summary statistics of independently measured
// sample groups.
//
// A [Group] carries only a count, a mean and a sample standard deviation.
// Two groups are merged with the closed-form pooled estimate
//
//	mean = (n1*m1 + n2*m2) / (n1 + n2)
//	var  = ((n1-1)s1² + (n2-1)s2² + n1*n2*(m1-m2)²/(n1+n2)) / (n1+n2-1)
//
// which reproduces the sample variance of the concatenated raw data.
package pooled

import (
	"errors"
	"fmt"
	"math"
)

// ErrNoGroups is returned when folding an empty group list.
var ErrNoGroups = errors.New("pooled: no groups to combine")

type Group struct {
	N    int
	Mean float64
	Std  float64
}

func (g Group) Variance() float64 {
	return g.Std * g.Std
}

func (g Group) String() string {
	return fmt.Sprintf("n=%d mean=%.6g std=%.6g", g.N, g.Mean, g.Std)
}

// Combine merges two groups. The result is not idempotent: Combine(g, g)
// doubles the count and shrinks the std by sqrt((2n-2)/(2n-1)).
func Combine(g1, g2 Group) Group {
	n := g1.N + g2.N
	if n == 0 {
		return Group{}
	}
	n1, n2, nf := float64(g1.N), float64(g2.N), float64(n)

	mean := (n1*g1.Mean + n2*g2.Mean) / nf

	if n == 1 {
		return Group{N: 1, Mean: mean}
	}

	delta := g1.Mean - g2.Mean
	ss := (n1-1)*g1.Variance() + (n2-1)*g2.Variance() + n1*n2*delta*delta/nf

	return Group{
		N:    n,
		Mean: mean,
		Std:  math.Sqrt(ss / (nf - 1)),
	}
}

// Fold combines groups left to right.
func Fold(groups ...Group) (Group, error) {
	if len(groups) == 0 {
		return Group{}, ErrNoGroups
	}
	acc := groups[0]
	for _, g := range groups[1:] {
		acc = Combine(acc, g)
	}
	return acc, nil
}
