package cursor

import "errors"

// Contract violations. Both are raised as panics: they can only come from a host
// that maps gestures to deltas wrongly or reports a selection that contradicts
// its own extent.
var (
	// ErrInvalidDelta indicates a stay-in-selection step whose dx and dy are both
	// zero or both nonzero.
	ErrInvalidDelta = errors.New("invalid selection step delta")

	// ErrSelectionInconsistent indicates a stay-in-selection search that visited
	// every cell of the selection's extent without finding a selected cell.
	ErrSelectionInconsistent = errors.New("selection extent holds no selected cell")
)
