package simmeta

import "errors"

var (
	// ErrNoMetadata indicates a file without a JSON object.
	ErrNoMetadata = errors.New("simmeta: no metadata object found")

	// ErrFilterNotFound indicates the requested parameter group is absent.
	ErrFilterNotFound = errors.New("simmeta: filter key not found")

	// ErrDuplicateRow indicates two files that map to the same row key.
	ErrDuplicateRow = errors.New("simmeta: duplicate row key")
)
