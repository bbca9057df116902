package span

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegion_Intersects(t *testing.T) {
	tests := []struct {
		name string
		a, b Region
		want bool
	}{
		{"diagonal neighbours", New(0, 0, 2, 2), New(2, 2, 2, 2), false},
		{"overlapping corner", New(0, 0, 2, 2), New(1, 1, 2, 2), true},
		{"shared edge row", New(0, 0, 2, 1), New(1, 0, 1, 1), true},
		{"adjacent rows", New(0, 0, 2, 1), New(2, 0, 1, 1), false},
		{"adjacent columns", New(0, 0, 1, 2), New(0, 2, 1, 1), false},
		{"contained", New(0, 0, 5, 5), New(2, 2, 1, 1), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.a.Intersects(tt.b))
			require.Equal(t, tt.want, tt.b.Intersects(tt.a), "intersection must be symmetric")
		})
	}
}

func TestRegion_Bounds(t *testing.T) {
	r := New(3, 1, 2, 4)
	require.Equal(t, 4, r.EndRow())
	require.Equal(t, 4, r.EndColumn())
	require.Equal(t, []int{1, 2, 3, 4}, r.SpannedColumns())
	require.True(t, r.Contains(3, 1))
	require.True(t, r.Contains(4, 4))
	require.False(t, r.Contains(5, 1))
	require.False(t, r.Contains(3, 0))
	require.True(t, r.IsOrigin(3, 1))
	require.False(t, r.IsOrigin(4, 1))
}

func TestFromStartEnd(t *testing.T) {
	r := FromStartEnd(1, 2, 3, 2)
	require.Equal(t, New(1, 2, 3, 1), r)
	require.Equal(t, Cell(4, 4), FromStartEnd(4, 4, 4, 4))
}

func TestRegion_Cells(t *testing.T) {
	r := New(0, 0, 2, 2)
	require.Equal(t, [][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}}, r.Cells())
	require.Nil(t, Region{}.Cells())
}

func TestCompare(t *testing.T) {
	tall := New(2, 0, 3, 1)
	require.Equal(t, 0, Compare(Cell(3, 0), tall))
	require.Equal(t, -1, Compare(Cell(0, 0), tall))
	require.Equal(t, 1, Compare(Cell(5, 0), tall))
}

func TestRegion_String(t *testing.T) {
	require.Equal(t, "Region{row=0, column=1, rowSpan=2, columnSpan=3}", New(0, 1, 2, 3).String())
}
