// Package cursor computes the next lead cell of a grid for navigation gestures.
//
// Merged regions are atomic: stepping out of a region lands just past its far
// edge instead of on the next cell inside it. Every call is independent; the host
// passes in the live lead and selection and applies the returned lead itself.
package cursor

import (
	"fmt"

	"github.com/zjrosen/spangrid/internal/span"
)

// Lead is the cursor cell. Either axis may be -1 when unset.
type Lead struct {
	Row    int
	Column int
}

// Bounds is the size of the grid.
type Bounds struct {
	Rows    int
	Columns int
}

// Empty reports whether the grid has no cells.
func (b Bounds) Empty() bool {
	return b.Rows <= 0 || b.Columns <= 0
}

// AdjustedLead reports a lead index as -1 when it is not below count.
// Selection models keep their lead when rows or columns are removed, so a stale
// lead has to read as unset.
func AdjustedLead(index, count int) int {
	if index < count {
		return index
	}
	return -1
}

// StepWithinGrid moves lead by (dx, dy) and clamps the result to the grid.
//
// When the lead sits inside a region, a forward step lands one past the region's
// last row or column and a backward step one before its first, so the region is
// crossed as a single cell. Larger deltas (paging, to-limit) keep whichever is
// farther, the full delta or the region's edge, instead of stopping at the edge.
func StepWithinGrid(lead Lead, dx, dy int, regions span.Model, bounds Bounds) Lead {
	nextRow := lead.Row + dy
	nextColumn := lead.Column + dx

	if r := regions.ContainingRegion(lead.Row, lead.Column); r != nil {
		switch {
		case dy > 0:
			nextRow = max(nextRow, r.EndRow()+1)
		case dy < 0:
			nextRow = min(nextRow, r.StartRow-1)
		}
		switch {
		case dx > 0:
			nextColumn = max(nextColumn, r.EndColumn()+1)
		case dx < 0:
			nextColumn = min(nextColumn, r.StartColumn-1)
		}
	}

	return Lead{
		Row:    clip(nextRow, bounds.Rows),
		Column: clip(nextColumn, bounds.Columns),
	}
}

// clip clamps i to [0, count-1]. An empty axis yields -1.
func clip(i, count int) int {
	return min(max(i, 0), count-1)
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}

// unitDelta reduces (dx, dy) to a single-axis unit step.
// Any other combination is a wiring bug in the caller and panics.
func unitDelta(dx, dy int) (int, int) {
	dx, dy = sign(dx), sign(dy)
	if (dx == 0) == (dy == 0) {
		panic(fmt.Errorf("%w: dx=%d dy=%d", ErrInvalidDelta, dx, dy))
	}
	return dx, dy
}
