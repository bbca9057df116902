package sheet

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/spangrid/internal/span"
)

const exampleYAML = `
name: Inventory
columns:
  - {title: Group, width: 8}
  - {title: Kind}
  - {title: "#", width: 3}
rows:
  - [foo, bar, "0"]
  - [foo, bar, "1"]
  - [foo, asdf, "2"]
  - [foo2, asdf, "3"]
merges:
  - {row: 0, column: 1, rows: 2, columns: 2}
merge_runs: [0]
`

func TestParse(t *testing.T) {
	s, err := Parse([]byte(exampleYAML))
	require.NoError(t, err)

	require.Equal(t, "Inventory", s.Name)
	require.Equal(t, 4, s.RowCount())
	require.Equal(t, 3, s.ColumnCount())
	require.Equal(t, []span.Region{
		span.New(0, 1, 2, 2),
		span.New(0, 0, 3, 1),
	}, s.Regions())
	require.Equal(t, []int{0, 1, 2}, s.CandidateColumns())
	require.Equal(t, "asdf", s.Cell(2, 1))
	require.Empty(t, s.Cell(4, 0))
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"no columns", "name: x\nrows: []\n", ErrNoColumns},
		{"ragged row", "columns: [{title: A}, {title: B}]\nrows: [[a]]\n", ErrRaggedRow},
		{"merge out of bounds", "columns: [{title: A}]\nrows: [[a]]\nmerges: [{row: 0, column: 0, rows: 2, columns: 1}]\n", ErrMergeOutOfBounds},
		{"empty merge", "columns: [{title: A}]\nrows: [[a]]\nmerges: [{row: 0, column: 0, rows: 0, columns: 1}]\n", ErrInvalidMerge},
		{"overlapping merges", "columns: [{title: A}, {title: B}]\nrows: [[a, b], [c, d]]\nmerges: [{row: 0, column: 0, rows: 2, columns: 1}, {row: 1, column: 0, rows: 1, columns: 2}]\n", span.ErrOverlap},
		{"unknown run column", "columns: [{title: A}]\nrows: [[a]]\nmerge_runs: [3]\n", ErrUnknownColumn},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParse_RejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte("columns: [{title: A}]\nrows: [[a]]\nspans: []\n"))
	require.Error(t, err)
}

func TestMergeRuns(t *testing.T) {
	s := Example()
	s.Merges = nil
	s.MergeRuns = []int{0, 0}
	require.NoError(t, s.Validate())

	require.Equal(t, []span.Region{
		span.New(0, 0, 4, 1),
		span.New(4, 0, 4, 1),
	}, s.Regions(), "single foo3 and foo4 rows stay unmerged")
}

func TestMergeRuns_StopAtMergesAndBlanks(t *testing.T) {
	s := &Sheet{
		Columns: []Column{{Title: "A"}, {Title: "B"}},
		Rows: [][]string{
			{"x", "1"},
			{"x", "2"},
			{"x", "3"},
			{"", "4"},
			{"", "5"},
			{"y", "6"},
			{"y", "7"},
		},
		Merges:    []Merge{{Row: 1, Column: 0, Rows: 1, Columns: 2}},
		MergeRuns: []int{0},
	}
	require.NoError(t, s.Validate())
	require.Equal(t, []span.Region{
		span.New(1, 0, 1, 2),
		span.New(5, 0, 2, 1),
	}, s.Regions())
	require.NoError(t, span.Validate(s.Regions()))
}

func TestExample(t *testing.T) {
	s := Example()
	require.Equal(t, 10, s.RowCount())
	require.Equal(t, 3, s.ColumnCount())
	require.Equal(t, []span.Region{span.New(0, 0, 2, 2)}, s.Regions())
	require.Equal(t, []int{0, 1}, s.CandidateColumns())
}

func TestWidths(t *testing.T) {
	s, err := Parse([]byte(exampleYAML))
	require.NoError(t, err)

	require.Equal(t, []int{8, 4, 3}, s.Widths(1), "Kind fits its title and the unmerged asdf")
	require.Equal(t, []int{8, 6, 6}, s.Widths(6))

	wide := &Sheet{Columns: []Column{{Title: "名前"}}, Rows: [][]string{{"日本語"}}}
	require.NoError(t, wide.Validate())
	require.Equal(t, []int{6}, wide.Widths(1))
}

func TestMarshal_ParsesBack(t *testing.T) {
	data, err := Example().Marshal()
	require.NoError(t, err)

	s, err := Parse(data)
	require.NoError(t, err)
	require.Equal(t, Example().Rows, s.Rows)
	require.Equal(t, Example().Regions(), s.Regions())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet.yaml")
	require.NoError(t, os.WriteFile(path, []byte(exampleYAML), 0o600))

	s, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "Inventory", s.Name)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("columns: []\n"), 0o600))
	_, err = Load(bad)
	require.ErrorIs(t, err, ErrNoColumns)
	require.Contains(t, err.Error(), bad)
}
