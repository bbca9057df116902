package span

import (
	"cmp"
	"fmt"
	"slices"
)

// Validate checks the preconditions Build trusts: every region has a non-negative
// origin and positive spans, and no two regions intersect.
//
// Overlap detection sorts each column by StartRow and compares neighbours only; in
// a sorted column any overlap implies an overlapping adjacent pair.
func Validate(regions []Region) error {
	columns := make(map[int][]Region)
	for _, r := range regions {
		if r.RowSpan < 1 || r.ColumnSpan < 1 || r.StartRow < 0 || r.StartColumn < 0 {
			return fmt.Errorf("%w: %s", ErrInvalidRegion, r)
		}
		for _, col := range r.SpannedColumns() {
			columns[col] = append(columns[col], r)
		}
	}

	cols := make([]int, 0, len(columns))
	for col := range columns {
		cols = append(cols, col)
	}
	slices.Sort(cols)

	for _, col := range cols {
		seq := columns[col]
		slices.SortStableFunc(seq, func(a, b Region) int {
			return cmp.Compare(a.StartRow, b.StartRow)
		})
		for i := 1; i < len(seq); i++ {
			if seq[i-1].Intersects(seq[i]) {
				return fmt.Errorf("%w: %s and %s", ErrOverlap, seq[i-1], seq[i])
			}
		}
	}
	return nil
}

// ColumnsOf returns the sorted, distinct columns touched by regions.
// Hosts that do not track candidate columns separately pass this to Build.
func ColumnsOf(regions []Region) []int {
	seen := make(map[int]struct{})
	var cols []int
	for _, r := range regions {
		for _, col := range r.SpannedColumns() {
			if _, ok := seen[col]; ok {
				continue
			}
			seen[col] = struct{}{}
			cols = append(cols, col)
		}
	}
	slices.Sort(cols)
	return cols
}
