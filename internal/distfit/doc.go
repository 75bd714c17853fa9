// Package distfit fits named parametric distributions to a sample by
// maximum likelihood and ranks them with the Kolmogorov–Smirnov test.
//
// Every candidate is a standardized family (shape parameters only)
// extended with a location and a scale, so a fitted distribution has the
// parameter vector (shapes..., loc, scale):
//
//	f, err := distfit.Fit("gamma", xs)
//	d, p := distfit.KSTest(xs, f.CDF)
//
// [Search] fits the whole catalog and picks the candidate with the largest
// p-value. Ties go to the candidate that comes first in [Names] order.
// No correction for multiple comparisons is applied.
package distfit
