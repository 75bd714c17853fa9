package distfit

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownDistribution indicates a name missing from the catalog.
	ErrUnknownDistribution = errors.New("distfit: unknown distribution")

	// ErrEmptySample indicates fewer than two finite observations.
	ErrEmptySample = errors.New("distfit: sample needs at least two finite values")

	// ErrDegenerateSample indicates a sample with zero spread.
	ErrDegenerateSample = errors.New("distfit: sample has zero variance")

	// ErrInfeasible indicates the likelihood is zero at the starting point or the optimum.
	ErrInfeasible = errors.New("distfit: likelihood is zero for the sample")

	// ErrNoFit indicates that no candidate could be fitted.
	ErrNoFit = errors.New("distfit: no candidate distribution could be fitted")
)

// FitError wraps a failure of a single candidate.
type FitError struct {
	Name    string
	Wrapped error
}

func (e *FitError) Error() string {
	return fmt.Sprintf("fit %s: %v", e.Name, e.Wrapped)
}

func (e *FitError) Unwrap() error {
	return e.Wrapped
}
