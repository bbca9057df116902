package span

import (
	"cmp"
	"slices"
)

// Model answers region queries for a grid.
// Hosts pick an implementation once, when the grid is configured: a *Set or *Index
// for region-aware grids, Plain() for grids without merged cells.
type Model interface {
	// ContainingRegion returns the region covering (row, column), or nil.
	ContainingRegion(row, column int) *Region
	// IntersectingRegions returns every region sharing a cell with query.
	IntersectingRegions(query Region) []*Region
	// CouldContainRegion reports whether column is a candidate column.
	CouldContainRegion(column int) bool
}

// Set is an immutable index over non-overlapping regions.
//
// Regions are stored once and referenced from a per-column sequence ordered by
// StartRow, so every cell of a region resolves to the same *Region. The constructor
// trusts the caller that no two regions intersect; use Validate first when the
// input is untrusted. Overlapping input never panics, it only yields unspecified
// (but deterministic) query results.
//
// A Set is safe for concurrent readers. A nil *Set behaves as an empty set.
type Set struct {
	regions    []*Region
	columns    map[int][]*Region
	candidates map[int]struct{}
}

// Build indexes regions for the given candidate columns.
// Each region is appended to the sequence of every column it spans, and every
// sequence is then sorted by StartRow.
func Build(regions []Region, candidateColumns []int) *Set {
	s := &Set{
		regions:    make([]*Region, 0, len(regions)),
		columns:    make(map[int][]*Region),
		candidates: make(map[int]struct{}, len(candidateColumns)),
	}
	for _, col := range candidateColumns {
		s.candidates[col] = struct{}{}
	}

	for i := range regions {
		r := regions[i]
		s.regions = append(s.regions, &r)
		for _, col := range r.SpannedColumns() {
			s.columns[col] = append(s.columns[col], &r)
		}
	}

	for _, seq := range s.columns {
		slices.SortStableFunc(seq, func(a, b *Region) int {
			return cmp.Compare(a.StartRow, b.StartRow)
		})
	}

	return s
}

// Len returns the number of indexed regions.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.regions)
}

// Regions returns the indexed regions in construction order.
func (s *Set) Regions() []*Region {
	if s == nil {
		return nil
	}
	return slices.Clone(s.regions)
}

// CandidateColumns returns the candidate columns in ascending order.
func (s *Set) CandidateColumns() []int {
	if s == nil {
		return nil
	}
	cols := make([]int, 0, len(s.candidates))
	for col := range s.candidates {
		cols = append(cols, col)
	}
	slices.Sort(cols)
	return cols
}

// CouldContainRegion reports whether column was declared a candidate column.
func (s *Set) CouldContainRegion(column int) bool {
	if s == nil {
		return false
	}
	_, ok := s.candidates[column]
	return ok
}

// ContainingRegion returns the region covering (row, column), or nil.
// Columns that are not candidates are rejected before any search.
func (s *Set) ContainingRegion(row, column int) *Region {
	if !s.CouldContainRegion(column) {
		return nil
	}
	seq := s.columns[column]
	if len(seq) == 0 {
		return nil
	}
	i, found := search(seq, Cell(row, column))
	if !found {
		return nil
	}
	return seq[i]
}

// IntersectingRegions returns every region that shares a cell with query.
// The result holds no duplicates; its order is unspecified.
func (s *Set) IntersectingRegions(query Region) []*Region {
	if s == nil || query.RowSpan <= 0 || query.ColumnSpan <= 0 {
		return nil
	}

	var (
		result []*Region
		seen   map[*Region]struct{}
	)
	add := func(r *Region) {
		if seen == nil {
			seen = make(map[*Region]struct{})
		}
		if _, dup := seen[r]; dup {
			return
		}
		seen[r] = struct{}{}
		result = append(result, r)
	}

	for col := query.StartColumn; col <= query.EndColumn(); col++ {
		if !s.CouldContainRegion(col) {
			continue
		}
		seq := s.columns[col]
		if len(seq) == 0 {
			continue
		}
		i, found := search(seq, query)
		if !found {
			continue
		}
		// Intersection with query is contiguous in a sorted, non-overlapping
		// column, so widen from the hit until the first miss on each side.
		lo := i
		for lo > 0 && seq[lo-1].Intersects(query) {
			lo--
		}
		hi := i
		for hi < len(seq)-1 && seq[hi+1].Intersects(query) {
			hi++
		}
		for _, r := range seq[lo : hi+1] {
			add(r)
		}
	}

	return result
}

func search(seq []*Region, key Region) (int, bool) {
	return slices.BinarySearchFunc(seq, key, func(e *Region, k Region) int {
		return Compare(*e, k)
	})
}

type plain struct{}

func (plain) ContainingRegion(int, int) *Region    { return nil }
func (plain) IntersectingRegions(Region) []*Region { return nil }
func (plain) CouldContainRegion(int) bool          { return false }

// Plain returns a Model for grids without merged cells.
func Plain() Model {
	return plain{}
}
