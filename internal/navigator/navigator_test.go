package navigator

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/zjrosen/spangrid/internal/cursor"
	"github.com/zjrosen/spangrid/internal/selection"
	"github.com/zjrosen/spangrid/internal/span"
)

var page = cursor.Page{Rows: 4, Columns: 2}

func newExample(opts Options) *Navigator {
	regions := span.Build([]span.Region{span.New(0, 0, 2, 2)}, []int{0, 1})
	return New(regions, cursor.Bounds{Rows: 10, Columns: 3}, opts)
}

func perform(t *testing.T, n *Navigator, names ...cursor.Name) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, n.Perform(name, page), name)
	}
}

func TestPerform_RegionIsOneStep(t *testing.T) {
	n := newExample(DefaultOptions())
	require.Equal(t, cursor.Lead{Row: -1, Column: -1}, n.Lead())

	perform(t, n, cursor.NextRow)
	require.Equal(t, cursor.Lead{Row: 0, Column: 0}, n.Lead())

	perform(t, n, cursor.NextRow)
	require.Equal(t, cursor.Lead{Row: 2, Column: 0}, n.Lead())
	require.Equal(t, []int{2}, n.Rows().Selected())

	perform(t, n, cursor.PreviousRow)
	require.Equal(t, cursor.Lead{Row: 0, Column: 0}, n.Lead(), "moving into a region lands on its origin")
}

func TestPerform_ColumnMovesSnapToOrigin(t *testing.T) {
	n := newExample(DefaultOptions())
	n.ChangeSelection(0, 2, false, false)

	perform(t, n, cursor.PreviousColumn)
	require.Equal(t, cursor.Lead{Row: 0, Column: 0}, n.Lead())

	perform(t, n, cursor.NextColumn)
	require.Equal(t, cursor.Lead{Row: 0, Column: 2}, n.Lead())
}

func TestChangeSelection_SnapsToRegionOrigin(t *testing.T) {
	n := newExample(DefaultOptions())
	n.ChangeSelection(1, 1, false, false)

	require.Equal(t, cursor.Lead{Row: 0, Column: 0}, n.Lead())
	require.Equal(t, cursor.Lead{Row: 0, Column: 0}, n.Anchor())
	require.Equal(t, []int{0}, n.Rows().Selected())
}

func TestChangeSelection_Modes(t *testing.T) {
	n := newExample(DefaultOptions())

	n.ChangeSelection(3, 1, false, false)
	n.ChangeSelection(6, 1, false, true)
	require.Equal(t, []int{3, 4, 5, 6}, n.Rows().Selected())
	require.Equal(t, 3, n.Anchor().Row)
	require.Equal(t, 6, n.Lead().Row)

	n.ChangeSelection(4, 1, true, false)
	require.Equal(t, []int{3, 5, 6}, n.Rows().Selected(), "toggle removes a selected row")

	n.ChangeSelection(8, 1, true, false)
	require.Equal(t, []int{3, 5, 6, 8}, n.Rows().Selected(), "toggle adds an unselected row")

	n.ChangeSelection(9, 1, true, true)
	require.Equal(t, []int{3, 5, 6, 8, 9}, n.Rows().Selected(), "toggle+extend applies the anchor's state")
}

func TestIsCellSelected(t *testing.T) {
	rows := newExample(Options{RowSelection: true, RowMode: selection.MultipleInterval, ColumnMode: selection.MultipleInterval})
	rows.ChangeSelection(4, 1, false, false)
	require.True(t, rows.IsCellSelected(4, 0))
	require.True(t, rows.IsCellSelected(4, 2))
	require.False(t, rows.IsCellSelected(5, 1))

	cells := newExample(Options{RowSelection: true, ColumnSelection: true, RowMode: selection.MultipleInterval, ColumnMode: selection.MultipleInterval})
	cells.ChangeSelection(4, 1, false, false)
	require.True(t, cells.IsCellSelected(4, 1))
	require.False(t, cells.IsCellSelected(4, 2))

	none := newExample(Options{})
	none.ChangeSelection(4, 1, false, false)
	require.False(t, none.IsCellSelected(4, 1))
}

func TestPerform_InSelectionWraps(t *testing.T) {
	n := newExample(DefaultOptions())
	n.ChangeSelection(2, 0, false, false)
	n.ChangeSelection(4, 0, false, true)
	require.Equal(t, []int{2, 3, 4}, n.Rows().Selected())

	perform(t, n, cursor.NextColumnCell)
	require.Equal(t, cursor.Lead{Row: 4, Column: 1}, n.Lead())
	perform(t, n, cursor.NextColumnCell)
	require.Equal(t, cursor.Lead{Row: 4, Column: 2}, n.Lead())
	perform(t, n, cursor.NextColumnCell)
	require.Equal(t, cursor.Lead{Row: 2, Column: 0}, n.Lead())

	require.Equal(t, []int{2, 3, 4}, n.Rows().Selected(), "stepping inside the selection keeps it")
	require.Equal(t, 2, n.Anchor().Row)
}

func TestPerform_InSelectionEscapesSingleCell(t *testing.T) {
	n := newExample(DefaultOptions())
	n.ChangeSelection(5, 1, false, false)

	perform(t, n, cursor.NextRowCell)
	require.Equal(t, cursor.Lead{Row: 6, Column: 1}, n.Lead())
	require.Equal(t, []int{6}, n.Rows().Selected())
}

func TestPerform_InSelectionIgnoredOnEmptyGrid(t *testing.T) {
	n := New(nil, cursor.Bounds{}, DefaultOptions())
	perform(t, n, cursor.NextRowCell, cursor.NextRow, cursor.LastColumn)
	require.Equal(t, cursor.Lead{Row: -1, Column: -1}, n.Lead())
	require.True(t, n.Rows().IsEmpty())
}

func TestPerform_ChangeLead(t *testing.T) {
	n := newExample(DefaultOptions())
	n.ChangeSelection(0, 0, false, false)

	perform(t, n, cursor.NextRowChangeLead)
	require.Equal(t, cursor.Lead{Row: 2, Column: 0}, n.Lead())
	require.Equal(t, []int{0}, n.Rows().Selected(), "the selection stays put")

	perform(t, n, cursor.AddToSelection)
	require.Equal(t, []int{0, 2}, n.Rows().Selected())
	require.Equal(t, 0, n.Anchor().Row, "adding keeps the anchor")

	perform(t, n, cursor.ToggleAndAnchor)
	require.Equal(t, []int{0}, n.Rows().Selected())
	require.Equal(t, 2, n.Anchor().Row)
}

func TestPerform_ChangeLeadSeatsUnsetAxis(t *testing.T) {
	n := newExample(DefaultOptions())
	n.Rows().SetInterval(5, 5)

	perform(t, n, cursor.NextRowChangeLead)
	require.Equal(t, cursor.Lead{Row: 6, Column: 0}, n.Lead())
}

func TestPerform_ChangeLeadFallsBackOutsideMultipleMode(t *testing.T) {
	opts := DefaultOptions()
	opts.RowMode = selection.SingleInterval
	n := newExample(opts)
	n.ChangeSelection(4, 2, false, false)

	perform(t, n, cursor.NextRowChangeLead)
	require.Equal(t, []int{5}, n.Rows().Selected())
}

func TestPerform_PagingAndLimits(t *testing.T) {
	n := newExample(DefaultOptions())
	n.ChangeSelection(0, 2, false, false)

	perform(t, n, cursor.ScrollDownChangeSelection)
	require.Equal(t, cursor.Lead{Row: 4, Column: 2}, n.Lead())

	perform(t, n, cursor.ScrollDownExtendSelection)
	require.Equal(t, []int{4, 5, 6, 7, 8}, n.Rows().Selected())

	perform(t, n, cursor.LastRow)
	require.Equal(t, cursor.Lead{Row: 9, Column: 2}, n.Lead())

	perform(t, n, cursor.FirstColumn)
	require.Equal(t, cursor.Lead{Row: 9, Column: 0}, n.Lead())

	perform(t, n, cursor.FirstRow)
	require.Equal(t, cursor.Lead{Row: 0, Column: 0}, n.Lead())
}

func TestPerform_SelectActions(t *testing.T) {
	n := newExample(DefaultOptions())
	n.ChangeSelection(3, 2, false, false)
	perform(t, n, cursor.NextRowChangeLead, cursor.NextRowChangeLead, cursor.ExtendTo)
	require.Equal(t, []int{3, 4, 5}, n.Rows().Selected())

	perform(t, n, cursor.MoveSelectionTo)
	require.Equal(t, []int{5}, n.Rows().Selected())
	require.Equal(t, 5, n.Anchor().Row)
}

func TestPerform_UnknownAction(t *testing.T) {
	n := newExample(DefaultOptions())
	err := n.Perform("selectSideways", page)
	require.ErrorIs(t, err, ErrUnknownAction)
}

func TestSetBounds_TruncatesSelection(t *testing.T) {
	n := newExample(DefaultOptions())
	n.ChangeSelection(3, 2, false, false)
	n.ChangeSelection(8, 2, false, true)

	n.SetBounds(cursor.Bounds{Rows: 6, Columns: 3})
	require.Equal(t, []int{3, 4, 5}, n.Rows().Selected())
	require.Equal(t, -1, n.Lead().Row)
}

func TestProperty_MovesKeepLeadOnGridAndOnOrigins(t *testing.T) {
	names := cursor.Names()
	rapid.Check(t, func(rt *rapid.T) {
		opts := Options{
			RowSelection:    rapid.Bool().Draw(rt, "rowSelection"),
			ColumnSelection: rapid.Bool().Draw(rt, "columnSelection"),
			RowMode:         rapid.SampledFrom([]selection.Mode{selection.Single, selection.SingleInterval, selection.MultipleInterval}).Draw(rt, "rowMode"),
			ColumnMode:      rapid.SampledFrom([]selection.Mode{selection.Single, selection.SingleInterval, selection.MultipleInterval}).Draw(rt, "columnMode"),
		}
		n := newExample(opts)
		steps := rapid.IntRange(1, 40).Draw(rt, "steps")
		for range steps {
			name := rapid.SampledFrom(names).Draw(rt, "action")
			if err := n.Perform(name, page); err != nil {
				rt.Fatalf("%s: %v", name, err)
			}
			lead := n.Lead()
			if lead.Row < -1 || lead.Row >= 10 || lead.Column < -1 || lead.Column >= 3 {
				rt.Fatalf("%s left lead at %v", name, lead)
			}
			a, _ := cursor.Lookup(name)
			if a.Kind != cursor.KindMove {
				continue
			}
			if r := n.Regions().ContainingRegion(lead.Row, lead.Column); r != nil && !r.IsOrigin(lead.Row, lead.Column) {
				rt.Fatalf("%s left lead inside %v at %v", name, r, lead)
			}
		}
	})
}
