package span

import "errors"

// Errors returned by Validate.
var (
	// ErrInvalidRegion indicates a region with a non-positive span or a negative origin.
	ErrInvalidRegion = errors.New("invalid region")

	// ErrOverlap indicates two regions share at least one cell.
	ErrOverlap = errors.New("regions overlap")
)
