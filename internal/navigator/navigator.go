// Package navigator applies navigation and selection actions to a grid.
//
// It owns the row and column selection models, reads regions through a
// span.Model and delegates the next-lead computation to package cursor. Every
// selection change lands on the origin of the region it touches, so a region is
// always selected and led as one cell.
package navigator

import (
	"errors"
	"fmt"

	"github.com/zjrosen/spangrid/internal/cursor"
	"github.com/zjrosen/spangrid/internal/log"
	"github.com/zjrosen/spangrid/internal/selection"
	"github.com/zjrosen/spangrid/internal/span"
)

// ErrUnknownAction is returned by Perform for an unregistered action name.
var ErrUnknownAction = errors.New("unknown action")

// Options control which axes are selectable and how.
type Options struct {
	RowSelection    bool
	ColumnSelection bool
	RowMode         selection.Mode
	ColumnMode      selection.Mode
}

// DefaultOptions selects whole rows in multiple-interval mode.
func DefaultOptions() Options {
	return Options{
		RowSelection: true,
		RowMode:      selection.MultipleInterval,
		ColumnMode:   selection.MultipleInterval,
	}
}

// Navigator is the grid's selection controller. It is not safe for concurrent
// use; the UI drives it from its update loop.
type Navigator struct {
	regions span.Model
	bounds  cursor.Bounds

	rows    *selection.List
	columns *selection.List

	rowSelection    bool
	columnSelection bool
}

// New creates a navigator over a grid of the given size.
// A nil regions model is treated as a grid without regions.
func New(regions span.Model, bounds cursor.Bounds, opts Options) *Navigator {
	if regions == nil {
		regions = span.Plain()
	}
	return &Navigator{
		regions:         regions,
		bounds:          bounds,
		rows:            selection.NewList(opts.RowMode),
		columns:         selection.NewList(opts.ColumnMode),
		rowSelection:    opts.RowSelection,
		columnSelection: opts.ColumnSelection,
	}
}

// SetRegions replaces the region model.
func (n *Navigator) SetRegions(regions span.Model) {
	if regions == nil {
		regions = span.Plain()
	}
	n.regions = regions
}

// Regions returns the region model.
func (n *Navigator) Regions() span.Model {
	return n.regions
}

// Bounds returns the grid size.
func (n *Navigator) Bounds() cursor.Bounds {
	return n.bounds
}

// SetBounds resizes the grid, dropping selected indices that no longer exist.
func (n *Navigator) SetBounds(bounds cursor.Bounds) {
	n.bounds = bounds
	n.rows.Truncate(bounds.Rows)
	n.columns.Truncate(bounds.Columns)
}

// Rows returns the row selection model.
func (n *Navigator) Rows() *selection.List {
	return n.rows
}

// Columns returns the column selection model.
func (n *Navigator) Columns() *selection.List {
	return n.columns
}

// Lead returns the lead cell, with an index that is out of range reported as -1.
func (n *Navigator) Lead() cursor.Lead {
	return cursor.Lead{
		Row:    cursor.AdjustedLead(n.rows.Lead(), n.bounds.Rows),
		Column: cursor.AdjustedLead(n.columns.Lead(), n.bounds.Columns),
	}
}

// Anchor returns the anchor cell, with an index that is out of range reported as -1.
func (n *Navigator) Anchor() cursor.Lead {
	return cursor.Lead{
		Row:    cursor.AdjustedLead(n.rows.Anchor(), n.bounds.Rows),
		Column: cursor.AdjustedLead(n.columns.Anchor(), n.bounds.Columns),
	}
}

// IsCellSelected reports whether a cell shows as selected. With both axes
// selectable a cell needs its row and its column selected; with one axis only
// that axis counts; with neither nothing is selected.
func (n *Navigator) IsCellSelected(row, column int) bool {
	if !n.rowSelection && !n.columnSelection {
		return false
	}
	return (!n.rowSelection || n.rows.IsSelected(row)) &&
		(!n.columnSelection || n.columns.IsSelected(column))
}

// Extent implements cursor.Selection.
func (n *Navigator) Extent() cursor.Extent {
	return cursor.Extent{
		RowSelection:    n.rowSelection,
		ColumnSelection: n.columnSelection,
		SelectedRows:    n.rows.Count(),
		SelectedColumns: n.columns.Count(),
		MinRow:          n.rows.Min(),
		MaxRow:          n.rows.Max(),
		MinColumn:       n.columns.Min(),
		MaxColumn:       n.columns.Max(),
	}
}

// ChangeSelection updates the selection for a click or keyboard move onto
// (row, column), moving the lead there.
//
//   - toggle=false, extend=false: select only the cell.
//   - toggle=true, extend=false: flip the cell's selected state.
//   - toggle=false, extend=true: select from the anchor to the cell.
//   - toggle=true, extend=true: apply the anchor's state to the range from the
//     anchor to the cell.
//
// A cell inside a region is replaced by the region's origin first.
func (n *Navigator) ChangeSelection(row, column int, toggle, extend bool) {
	if r := n.regions.ContainingRegion(row, column); r != nil {
		row, column = r.StartRow, r.StartColumn
	}

	anchor := n.Anchor()
	anchorSelected := true
	if anchor.Row == -1 {
		if n.bounds.Rows > 0 {
			anchor.Row = 0
		}
		anchorSelected = false
	}
	if anchor.Column == -1 {
		if n.bounds.Columns > 0 {
			anchor.Column = 0
		}
		anchorSelected = false
	}

	selected := n.IsCellSelected(row, column)
	anchorSelected = anchorSelected && n.IsCellSelected(anchor.Row, anchor.Column)

	changeList(n.columns, column, toggle, extend, selected, anchor.Column, anchorSelected)
	changeList(n.rows, row, toggle, extend, selected, anchor.Row, anchorSelected)
}

func changeList(l *selection.List, index int, toggle, extend, selected bool, anchor int, anchorSelected bool) {
	switch {
	case extend && toggle:
		if anchorSelected {
			l.AddInterval(anchor, index)
		} else {
			l.RemoveInterval(anchor, index)
		}
	case extend:
		l.SetInterval(anchor, index)
	case toggle:
		if selected {
			l.RemoveInterval(index, index)
		} else {
			l.AddInterval(index, index)
		}
	default:
		l.SetInterval(index, index)
	}
}

// Perform runs the named action. page is the visible size used by paging
// actions.
func (n *Navigator) Perform(name cursor.Name, page cursor.Page) error {
	a, ok := cursor.Lookup(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownAction, name)
	}

	before := n.Lead()
	switch a.Kind {
	case cursor.KindSelect:
		n.performSelect(a.Name, before)
	case cursor.KindChangeLead:
		if n.changeLead(a, before) {
			break
		}
		n.move(a, before, page)
	case cursor.KindInSelection:
		n.moveInSelection(a, before)
	default:
		n.move(a, before, page)
	}

	log.Debug(log.CatCursor, "action", "name", name, "from", leadString(before), "to", leadString(n.Lead()),
		"rows", n.rows, "columns", n.columns)
	return nil
}

func (n *Navigator) move(a cursor.Action, lead cursor.Lead, page cursor.Page) {
	dx, dy := a.Resolve(n.bounds, page)
	next := cursor.StepWithinGrid(lead, dx, dy, n.regions, n.bounds)
	n.ChangeSelection(next.Row, next.Column, false, a.Extend)
}

// changeLead moves only the lead. It applies in multiple-interval mode only and
// reports whether it did.
func (n *Navigator) changeLead(a cursor.Action, lead cursor.Lead) bool {
	list := n.columns
	if a.DY != 0 {
		list = n.rows
	}
	if list.Mode() != selection.MultipleInterval {
		return false
	}

	next := cursor.StepWithinGrid(lead, a.DX, a.DY, n.regions, n.bounds)
	if a.DY != 0 {
		n.rows.MoveLead(next.Row)
		if lead.Column == -1 && n.bounds.Columns > 0 {
			n.columns.MoveLead(0)
		}
	} else {
		n.columns.MoveLead(next.Column)
		if lead.Row == -1 && n.bounds.Rows > 0 {
			n.rows.MoveLead(0)
		}
	}
	return true
}

func (n *Navigator) moveInSelection(a cursor.Action, lead cursor.Lead) {
	if n.bounds.Empty() {
		return
	}

	next, stayed := cursor.StepWithinSelection(lead, a.DX, a.DY, n, n.bounds)
	if !stayed {
		n.ChangeSelection(next.Row, next.Column, false, false)
		return
	}

	// Re-adding or re-removing the same index is the only way to move both the
	// lead and the anchor without changing what is selected.
	if n.rows.IsSelected(next.Row) {
		n.rows.AddInterval(next.Row, next.Row)
	} else {
		n.rows.RemoveInterval(next.Row, next.Row)
	}
	if n.columns.IsSelected(next.Column) {
		n.columns.AddInterval(next.Column, next.Column)
	} else {
		n.columns.RemoveInterval(next.Column, next.Column)
	}
}

func (n *Navigator) performSelect(name cursor.Name, lead cursor.Lead) {
	switch name {
	case cursor.AddToSelection:
		if n.IsCellSelected(lead.Row, lead.Column) {
			return
		}
		anchorRow, anchorColumn := n.rows.Anchor(), n.columns.Anchor()
		n.ChangeSelection(lead.Row, lead.Column, true, false)
		n.rows.SetAnchor(anchorRow)
		n.columns.SetAnchor(anchorColumn)
	case cursor.ToggleAndAnchor:
		n.ChangeSelection(lead.Row, lead.Column, true, false)
	case cursor.ExtendTo:
		n.ChangeSelection(lead.Row, lead.Column, false, true)
	case cursor.MoveSelectionTo:
		n.ChangeSelection(lead.Row, lead.Column, false, false)
	}
}

func leadString(l cursor.Lead) string {
	return fmt.Sprintf("(%d,%d)", l.Row, l.Column)
}
