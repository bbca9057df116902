// Package geometry turns merged regions into rectangles in the host's coordinate
// space. It owns no state: the host supplies a cell rectangle function and the
// inverse point-to-index functions, and the region Model answers lookups.
package geometry

import (
	"image"

	"github.com/zjrosen/spangrid/internal/span"
)

// CellRectFunc returns the rectangle of a single cell.
type CellRectFunc func(row, column int) image.Rectangle

// IndexFunc maps a point to a row or column index. Points outside the grid should
// be clamped to the nearest index; a negative result means the grid is empty.
type IndexFunc func(p image.Point) int

// BoundingRect returns the rectangle of the logical cell at (row, column).
// Inside a region that is the union of the region's first and last cells, so a
// region paints and selects as one block whichever of its cells is addressed.
func BoundingRect(regions span.Model, cellRect CellRectFunc, row, column int) image.Rectangle {
	if r := regions.ContainingRegion(row, column); r != nil {
		upperLeft := cellRect(r.StartRow, r.StartColumn)
		lowerRight := cellRect(r.EndRow(), r.EndColumn())
		return upperLeft.Union(lowerRight)
	}
	return cellRect(row, column)
}

// ExpandDirtyRegion grows dirty until it covers every region it touches.
//
// The dirty rectangle is converted to a provisional cell span with rowAt and
// columnAt, the span is widened to the extents of every intersecting region, and
// the rectangles of the widened span's corner cells are added to dirty. Partially
// repainting a region that draws as one block leaves artifacts behind.
func ExpandDirtyRegion(regions span.Model, cellRect CellRectFunc, rowAt, columnAt IndexFunc, dirty image.Rectangle) image.Rectangle {
	if dirty.Empty() {
		return dirty
	}

	upperLeft := dirty.Min
	lowerRight := dirty.Max.Sub(image.Pt(1, 1))

	upperRow, lowerRow := rowAt(upperLeft), rowAt(lowerRight)
	leftColumn, rightColumn := columnAt(upperLeft), columnAt(lowerRight)
	if upperRow < 0 || lowerRow < 0 || leftColumn < 0 || rightColumn < 0 {
		return dirty
	}

	query := span.FromStartEnd(upperRow, leftColumn, lowerRow, rightColumn)
	for _, r := range regions.IntersectingRegions(query) {
		upperRow = min(upperRow, r.StartRow)
		lowerRow = max(lowerRow, r.EndRow())
		leftColumn = min(leftColumn, r.StartColumn)
		rightColumn = max(rightColumn, r.EndColumn())
	}

	return dirty.
		Union(cellRect(upperRow, leftColumn)).
		Union(cellRect(lowerRow, rightColumn))
}

// Cell is one step of a Walk.
type Cell struct {
	Row    int
	Column int

	// Region is the region covering the cell, or nil for a plain cell.
	Region *span.Region

	// Columns is how many visible columns this step covers: 1 for a plain cell,
	// the visible width of the region otherwise.
	Columns int

	// Anchor marks the first visible cell of a region, where its content is drawn
	// even when the region starts above or left of the visible area. Plain cells
	// are always anchors.
	Anchor bool
}

// Walk visits the visible cells of rows [minRow, maxRow] and columns
// [minColumn, maxColumn] in row-major order. In every row a region is visited once,
// at its leftmost visible column; the columns it covers are skipped.
func Walk(regions span.Model, minRow, maxRow, minColumn, maxColumn int, visit func(Cell)) {
	for row := minRow; row <= maxRow; row++ {
		col := minColumn
		for col <= maxColumn {
			var r *span.Region
			if regions.CouldContainRegion(col) {
				r = regions.ContainingRegion(row, col)
			}
			if r == nil {
				visit(Cell{Row: row, Column: col, Columns: 1, Anchor: true})
				col++
				continue
			}

			last := min(r.EndColumn(), maxColumn)
			visit(Cell{
				Row:     row,
				Column:  col,
				Region:  r,
				Columns: last - col + 1,
				Anchor:  row == max(r.StartRow, minRow) && col == max(r.StartColumn, minColumn),
			})
			col = last + 1
		}
	}
}
