// Package span indexes merged cell regions of a grid.
//
// A Region is a rectangle of cells that behaves as one logical cell. A Set is an
// immutable index over non-overlapping regions, built once per data snapshot and
// queried on every repaint and every navigation gesture. Queries never fail: a
// missing region is reported as nil or an empty slice.
package span

import "fmt"

// Region is a rectangular block of cells in grid coordinates.
// RowSpan and ColumnSpan are always at least 1 for regions accepted by Validate.
type Region struct {
	StartRow    int
	StartColumn int
	RowSpan     int
	ColumnSpan  int
}

// New creates a region from its origin and extent.
func New(startRow, startColumn, rowSpan, columnSpan int) Region {
	return Region{
		StartRow:    startRow,
		StartColumn: startColumn,
		RowSpan:     rowSpan,
		ColumnSpan:  columnSpan,
	}
}

// FromStartEnd creates a region from inclusive start and end coordinates.
func FromStartEnd(startRow, startColumn, endRow, endColumn int) Region {
	return Region{
		StartRow:    startRow,
		StartColumn: startColumn,
		RowSpan:     endRow - startRow + 1,
		ColumnSpan:  endColumn - startColumn + 1,
	}
}

// Cell returns the 1x1 region at (row, column).
func Cell(row, column int) Region {
	return Region{StartRow: row, StartColumn: column, RowSpan: 1, ColumnSpan: 1}
}

// EndRow returns the last row covered by the region.
func (r Region) EndRow() int {
	return r.StartRow + r.RowSpan - 1
}

// EndColumn returns the last column covered by the region.
func (r Region) EndColumn() int {
	return r.StartColumn + r.ColumnSpan - 1
}

// Contains reports whether (row, column) lies inside the region.
func (r Region) Contains(row, column int) bool {
	return row >= r.StartRow && row <= r.EndRow() &&
		column >= r.StartColumn && column <= r.EndColumn()
}

// Intersects reports whether the two regions share at least one cell.
// Row and column intervals are closed.
func (r Region) Intersects(other Region) bool {
	return r.StartRow <= other.EndRow() &&
		r.EndRow() >= other.StartRow &&
		r.StartColumn <= other.EndColumn() &&
		r.EndColumn() >= other.StartColumn
}

// IsOrigin reports whether (row, column) is the top-left cell of the region.
func (r Region) IsOrigin(row, column int) bool {
	return row == r.StartRow && column == r.StartColumn
}

// SpannedColumns returns every column index the region covers, in ascending order.
func (r Region) SpannedColumns() []int {
	if r.ColumnSpan <= 0 {
		return nil
	}
	cols := make([]int, r.ColumnSpan)
	for i := range cols {
		cols[i] = r.StartColumn + i
	}
	return cols
}

// Cells returns every (row, column) pair covered by the region in row-major order.
func (r Region) Cells() [][2]int {
	if r.RowSpan <= 0 || r.ColumnSpan <= 0 {
		return nil
	}
	cells := make([][2]int, 0, r.RowSpan*r.ColumnSpan)
	for row := r.StartRow; row <= r.EndRow(); row++ {
		for col := r.StartColumn; col <= r.EndColumn(); col++ {
			cells = append(cells, [2]int{row, col})
		}
	}
	return cells
}

func (r Region) String() string {
	return fmt.Sprintf("Region{row=%d, column=%d, rowSpan=%d, columnSpan=%d}",
		r.StartRow, r.StartColumn, r.RowSpan, r.ColumnSpan)
}

// Compare orders regions that share a column.
// Intersecting regions compare equal; otherwise regions are ordered by StartRow.
// Within one column of a non-overlapping set this is a total order, which is what
// makes a binary search over regions of uneven height possible.
func Compare(a, b Region) int {
	if a.Intersects(b) {
		return 0
	}
	if a.StartRow < b.StartRow {
		return -1
	}
	return 1
}
