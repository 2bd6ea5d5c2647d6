package awareness

import "errors"

var (
	// ErrInvalidConfig indicates a Config field outside its accepted range.
	ErrInvalidConfig = errors.New("awareness: invalid config")

	// ErrNoBoundaryData indicates that the boundary query returned no segments.
	ErrNoBoundaryData = errors.New("awareness: no boundary data")

	// ErrNilSource indicates a Rebuild on an Analyzer without a BoundarySource.
	ErrNilSource = errors.New("awareness: boundary source is nil")
)
