package vessels

import "errors"

var (
	// ErrUnknownUseCase indicates a segment data set name that is not registered.
	ErrUnknownUseCase = errors.New("vessels: unknown use case")

	ErrMissingColumn = errors.New("vessels: missing column")

	// ErrShortSegment indicates a segment line with fewer than six coordinates.
	ErrShortSegment = errors.New("vessels: segment needs six coordinates")
)
