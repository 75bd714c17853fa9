package growth

import "errors"

var (
	// ErrMissingIndex indicates the index column is absent from the header.
	ErrMissingIndex = errors.New("growth: index column not found")

	// ErrMissingColumn indicates a mean_i column without its std_i partner (or vice versa).
	ErrMissingColumn = errors.New("growth: missing mean/std column")

	// ErrGroupSizes indicates the number of group sizes does not match the table.
	ErrGroupSizes = errors.New("growth: group sizes do not match table groups")

	// ErrEmptyTable indicates a table without data rows.
	ErrEmptyTable = errors.New("growth: table has no rows")
)
