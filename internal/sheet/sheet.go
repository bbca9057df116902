// Package sheet loads the YAML documents spangrid displays: a table of string
// cells plus the merged regions laid over it.
package sheet

import (
	"bytes"
	"fmt"
	"os"
	"slices"

	"github.com/rivo/uniseg"
	"gopkg.in/yaml.v3"

	"github.com/zjrosen/spangrid/internal/span"
)

// Column describes one column. A zero Width means size to content.
type Column struct {
	Title string `yaml:"title"`
	Width int    `yaml:"width,omitempty"`
}

// Merge is an explicit merged region.
type Merge struct {
	Row     int `yaml:"row"`
	Column  int `yaml:"column"`
	Rows    int `yaml:"rows"`
	Columns int `yaml:"columns"`
}

// Region converts the merge to a span.Region.
func (m Merge) Region() span.Region {
	return span.New(m.Row, m.Column, m.Rows, m.Columns)
}

// Sheet is a parsed sheet document.
type Sheet struct {
	Name    string     `yaml:"name"`
	Columns []Column   `yaml:"columns"`
	Rows    [][]string `yaml:"rows"`
	Merges  []Merge    `yaml:"merges,omitempty"`
	// MergeRuns lists columns in which consecutive equal values are merged
	// vertically.
	MergeRuns []int `yaml:"merge_runs,omitempty"`

	regions []span.Region
}

// Parse decodes and validates a sheet document.
func Parse(data []byte) (*Sheet, error) {
	var s Sheet
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("decoding sheet: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads and parses the sheet at path.
func Load(path string) (*Sheet, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path comes from the user
	if err != nil {
		return nil, fmt.Errorf("reading sheet: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Marshal encodes the sheet as YAML.
func (s *Sheet) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return nil, fmt.Errorf("encoding sheet: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding sheet: %w", err)
	}
	return buf.Bytes(), nil
}

// Validate checks the table shape and the merges, then derives the region list.
func (s *Sheet) Validate() error {
	if len(s.Columns) == 0 {
		return ErrNoColumns
	}
	for i, row := range s.Rows {
		if len(row) != len(s.Columns) {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedRow, i, len(row), len(s.Columns))
		}
	}

	regions := make([]span.Region, 0, len(s.Merges))
	for _, m := range s.Merges {
		r := m.Region()
		if r.RowSpan < 1 || r.ColumnSpan < 1 || r.StartRow < 0 || r.StartColumn < 0 {
			return fmt.Errorf("%w: %s", ErrInvalidMerge, r)
		}
		if r.EndRow() >= len(s.Rows) || r.EndColumn() >= len(s.Columns) {
			return fmt.Errorf("%w: %s in %dx%d", ErrMergeOutOfBounds, r, len(s.Rows), len(s.Columns))
		}
		regions = append(regions, r)
	}
	if err := span.Validate(regions); err != nil {
		return fmt.Errorf("merges: %w", err)
	}

	for _, c := range s.MergeRuns {
		if c < 0 || c >= len(s.Columns) {
			return fmt.Errorf("%w: %d", ErrUnknownColumn, c)
		}
	}
	regions = append(regions, s.runs(regions)...)

	s.regions = regions
	return nil
}

// runs derives vertical regions from equal consecutive values in the MergeRuns
// columns. A run stops at an empty cell and at any cell already merged.
func (s *Sheet) runs(explicit []span.Region) []span.Region {
	covered := func(row, column int) bool {
		for _, r := range explicit {
			if r.Contains(row, column) {
				return true
			}
		}
		return false
	}

	var out []span.Region
	columns := slices.Clone(s.MergeRuns)
	slices.Sort(columns)
	columns = slices.Compact(columns)
	for _, c := range columns {
		start := 0
		for start < len(s.Rows) {
			end := start
			if !covered(start, c) && s.Rows[start][c] != "" {
				for end+1 < len(s.Rows) && s.Rows[end+1][c] == s.Rows[start][c] && !covered(end+1, c) {
					end++
				}
			}
			if end > start {
				out = append(out, span.FromStartEnd(start, c, end, c))
			}
			start = end + 1
		}
	}
	return out
}

// RowCount returns the number of rows.
func (s *Sheet) RowCount() int {
	return len(s.Rows)
}

// ColumnCount returns the number of columns.
func (s *Sheet) ColumnCount() int {
	return len(s.Columns)
}

// Regions returns explicit merges followed by derived runs.
func (s *Sheet) Regions() []span.Region {
	return slices.Clone(s.regions)
}

// CandidateColumns returns the columns touched by any region.
func (s *Sheet) CandidateColumns() []int {
	return span.ColumnsOf(s.regions)
}

// Cell returns the raw value at (row, column), or "" outside the sheet.
func (s *Sheet) Cell(row, column int) string {
	if row < 0 || row >= len(s.Rows) || column < 0 || column >= len(s.Columns) {
		return ""
	}
	return s.Rows[row][column]
}

// Widths returns the display width of every column. Columns without a set width
// fit their title and every value that sits in that column alone; the result is
// never below minWidth.
func (s *Sheet) Widths(minWidth int) []int {
	widths := make([]int, len(s.Columns))
	for c, col := range s.Columns {
		if col.Width > 0 {
			widths[c] = max(col.Width, minWidth)
			continue
		}
		w := uniseg.StringWidth(col.Title)
		for row := range s.Rows {
			if s.spansColumns(row, c) {
				continue
			}
			w = max(w, uniseg.StringWidth(s.Rows[row][c]))
		}
		widths[c] = max(w, minWidth)
	}
	return widths
}

func (s *Sheet) spansColumns(row, column int) bool {
	for _, r := range s.regions {
		if r.ColumnSpan > 1 && r.Contains(row, column) {
			return true
		}
	}
	return false
}

// Example returns the built-in demo sheet: ten rows of three columns with the
// top-left 2x2 block merged.
func Example() *Sheet {
	s := &Sheet{
		Name:    "Example",
		Columns: []Column{{Title: "A"}, {Title: "B"}, {Title: "C"}},
		Rows: [][]string{
			{"foo", "bar", "0"},
			{"foo", "bar", "1"},
			{"foo", "asdf", "2"},
			{"foo", "asdf", "3"},
			{"foo2", "bar", "4"},
			{"foo2", "bar", "5"},
			{"foo2", "asdf", "6"},
			{"foo2", "asdf", "7"},
			{"foo3", "bar", "8"},
			{"foo4", "bar", "9"},
		},
		Merges: []Merge{{Row: 0, Column: 0, Rows: 2, Columns: 2}},
	}
	if err := s.Validate(); err != nil {
		panic(err)
	}
	return s
}
