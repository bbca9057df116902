package sheet

import "errors"

// Sheet validation errors. Overlapping merges wrap span.ErrOverlap instead.
var (
	ErrNoColumns        = errors.New("sheet has no columns")
	ErrRaggedRow        = errors.New("row length does not match columns")
	ErrMergeOutOfBounds = errors.New("merge outside the sheet")
	ErrInvalidMerge     = errors.New("invalid merge")
	ErrUnknownColumn    = errors.New("merge_runs names an unknown column")
)
