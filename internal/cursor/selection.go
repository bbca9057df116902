package cursor

import "fmt"

// Extent summarizes the host's selection for a stay-in-selection step.
type Extent struct {
	// RowSelection and ColumnSelection say which axes the host selects along.
	// With both set a cell is selected when its row and its column are.
	RowSelection    bool
	ColumnSelection bool

	SelectedRows    int
	SelectedColumns int

	// Min and max selected indices per axis. Ignored for an axis that is not
	// selectable.
	MinRow, MaxRow       int
	MinColumn, MaxColumn int
}

// Selection is the host's view of what is selected.
// IsCellSelected must agree with Extent: when the extent reports selected cells,
// at least one cell inside it must be selected.
type Selection interface {
	Extent() Extent
	IsCellSelected(row, column int) bool
}

// box is the inclusive search area of a stay-in-selection step.
type box struct {
	minX, maxX int
	minY, maxY int
}

func (b box) area() int {
	return (b.maxX - b.minX + 1) * (b.maxY - b.minY + 1)
}

// StepWithinSelection moves lead one cell along a single axis, wrapping row by
// row (or column by column) inside the current selection.
//
// It returns the new lead and whether the step stayed inside the selection. When
// nothing is selected, or the only selected cell is the lead itself, the step
// escapes instead: it wraps across the whole grid and lands on the next cell
// whether selected or not. The host typically updates the lead and anchor
// without touching the selection when the step stayed, and selects the single
// new cell when it escaped.
//
// dx and dy are reduced to their signs; exactly one must be nonzero or the call
// panics with ErrInvalidDelta. An empty grid leaves lead unchanged.
func StepWithinSelection(lead Lead, dx, dy int, sel Selection, bounds Bounds) (Lead, bool) {
	dx, dy = unitDelta(dx, dy)
	if bounds.Empty() {
		return lead, false
	}

	ext := sel.Extent()
	var (
		total int
		b     box
	)
	switch {
	case ext.RowSelection && ext.ColumnSelection:
		total = ext.SelectedRows * ext.SelectedColumns
		b = box{minX: ext.MinColumn, maxX: ext.MaxColumn, minY: ext.MinRow, maxY: ext.MaxRow}
	case ext.RowSelection:
		total = ext.SelectedRows
		b = box{minX: 0, maxX: bounds.Columns - 1, minY: ext.MinRow, maxY: ext.MaxRow}
	case ext.ColumnSelection:
		total = ext.SelectedColumns
		b = box{minX: ext.MinColumn, maxX: ext.MaxColumn, minY: 0, maxY: bounds.Rows - 1}
	}

	stay := true
	if total == 0 || (total == 1 && sel.IsCellSelected(lead.Row, lead.Column)) {
		stay = false
		b.maxX = bounds.Columns - 1
		b.maxY = bounds.Rows - 1
		b.minX = min(0, b.maxX)
		b.minY = min(0, b.maxY)
	}

	row, col := lead.Row, lead.Column

	// Seat an unset axis so the first wrap step lands on the box edge.
	switch {
	case dy == 1 && col == -1:
		col, row = b.minX, -1
	case dx == 1 && row == -1:
		row, col = b.minY, -1
	case dy == -1 && col == -1:
		col, row = b.maxX, b.maxY+1
	case dx == -1 && row == -1:
		row, col = b.maxY, b.maxX+1
	}

	// Bring a lead outside the box to within one cell of it.
	row = min(max(row, b.minY-1), b.maxY+1)
	col = min(max(col, b.minX-1), b.maxX+1)

	if !stay {
		row, col = b.next(row, col, dx, dy)
		return Lead{Row: row, Column: col}, false
	}

	limit := b.area() + 2
	for i := 0; ; i++ {
		if i == limit {
			panic(fmt.Errorf("%w: rows %d-%d, columns %d-%d",
				ErrSelectionInconsistent, b.minY, b.maxY, b.minX, b.maxX))
		}
		row, col = b.next(row, col, dx, dy)
		if sel.IsCellSelected(row, col) {
			return Lead{Row: row, Column: col}, true
		}
	}
}

// next advances one cell along the active axis, carrying into the other axis and
// wrapping min to max at both ends.
func (b box) next(row, col, dx, dy int) (int, int) {
	if dx != 0 {
		col += dx
		switch {
		case col > b.maxX:
			col = b.minX
			row++
			if row > b.maxY {
				row = b.minY
			}
		case col < b.minX:
			col = b.maxX
			row--
			if row < b.minY {
				row = b.maxY
			}
		}
		return row, col
	}

	row += dy
	switch {
	case row > b.maxY:
		row = b.minY
		col++
		if col > b.maxX {
			col = b.minX
		}
	case row < b.minY:
		row = b.maxY
		col--
		if col < b.minX {
			col = b.maxX
		}
	}
	return row, col
}
