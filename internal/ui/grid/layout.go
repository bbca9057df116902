package grid

import (
	"image"
	"slices"
)

// separatorWidth is the width of the rule drawn after every column.
const separatorWidth = 1

// Layout maps cells to terminal coordinates. Column c starts at x = the sum
// of the preceding widths and separators; row r is line r. Each cell
// rectangle includes the separator after it, so cells tile without gaps.
type Layout struct {
	widths []int
	starts []int
	rows   int
	total  int
}

// NewLayout creates a layout for rows rows with the given column widths.
func NewLayout(widths []int, rows int) Layout {
	starts := make([]int, len(widths))
	x := 0
	for c, w := range widths {
		starts[c] = x
		x += w + separatorWidth
	}
	return Layout{widths: slices.Clone(widths), starts: starts, rows: rows, total: x}
}

// Rows returns the row count.
func (l Layout) Rows() int { return l.rows }

// Columns returns the column count.
func (l Layout) Columns() int { return len(l.widths) }

// Width returns the width of column c, without its separator.
func (l Layout) Width(c int) int { return l.widths[c] }

// TotalWidth returns the width of every column and separator.
func (l Layout) TotalWidth() int { return l.total }

// CellRect returns the rectangle of (row, column).
func (l Layout) CellRect(row, column int) image.Rectangle {
	x := l.starts[column]
	return image.Rect(x, row, x+l.widths[column]+separatorWidth, row+1)
}

// SpanWidth returns the drawable width of columns [first, last] drawn as one
// segment: their widths plus the separators between them.
func (l Layout) SpanWidth(first, last int) int {
	return l.starts[last] + l.widths[last] - l.starts[first]
}

// RowAt returns the row at p.Y, clamped to the grid, or -1 for a grid
// without rows.
func (l Layout) RowAt(p image.Point) int {
	if l.rows == 0 {
		return -1
	}
	return min(max(p.Y, 0), l.rows-1)
}

// ColumnAt returns the column at p.X, clamped to the grid, or -1 for a grid
// without columns.
func (l Layout) ColumnAt(p image.Point) int {
	if len(l.starts) == 0 {
		return -1
	}
	if p.X < 0 {
		return 0
	}
	i, found := slices.BinarySearch(l.starts, p.X)
	if found {
		return i
	}
	return i - 1
}

// Bounds returns the rectangle covering the whole grid.
func (l Layout) Bounds() image.Rectangle {
	return image.Rect(0, 0, l.total, l.rows)
}

// VisibleColumns returns the last column that fits in width when drawing
// starts at column first. At least first itself is always visible.
func (l Layout) VisibleColumns(first, width int) int {
	last := first
	for c := first + 1; c < len(l.widths); c++ {
		if l.starts[c]+l.widths[c]+separatorWidth-l.starts[first] > width {
			break
		}
		last = c
	}
	return last
}
