package sheet

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/zjrosen/spangrid/internal/cachemanager"
	"github.com/zjrosen/spangrid/internal/log"
	"github.com/zjrosen/spangrid/internal/span"
)

// Digest identifies a region layout: the regions and candidate columns a Set is
// built from. Sheets that differ only in cell values share a digest.
type Digest string

// LayoutDigest hashes the region layout of s.
func LayoutDigest(s *Sheet) Digest {
	h := sha256.New()
	for _, r := range s.regions {
		fmt.Fprintf(h, "%d,%d,%d,%d;", r.StartRow, r.StartColumn, r.RowSpan, r.ColumnSpan)
	}
	fmt.Fprintf(h, "|%v", s.CandidateColumns())
	return Digest(hex.EncodeToString(h.Sum(nil)))
}

// Snapshot is one loaded version of a sheet with its region index.
type Snapshot struct {
	ID       uuid.UUID
	Path     string
	Sheet    *Sheet
	Set      *span.Set
	Digest   Digest
	LoadedAt time.Time
}

// Value returns the value shown at (row, column): the origin's value for a cell
// inside a region.
func (s *Snapshot) Value(row, column int) string {
	if r := s.Set.ContainingRegion(row, column); r != nil {
		row, column = r.StartRow, r.StartColumn
	}
	return s.Sheet.Cell(row, column)
}

// DefaultSetTTL is how long an unused region index stays cached.
const DefaultSetTTL = cachemanager.DefaultExpiration

// Loader turns sheets into snapshots. Region indexes are cached by layout
// digest, so reloading a file whose merges did not change reuses the Set.
type Loader struct {
	sets *cachemanager.ReadThroughCache[Digest, *span.Set, *Sheet]
	ttl  time.Duration
}

// NewLoader creates a loader caching Sets in cache.
func NewLoader(cache cachemanager.CacheManager[Digest, *span.Set], ttl time.Duration) *Loader {
	return &Loader{
		sets: cachemanager.NewReadThroughCache[Digest, *span.Set, *Sheet](cache, buildSet, false),
		ttl:  ttl,
	}
}

// NewMemoryLoader creates a loader with an in-memory cache.
func NewMemoryLoader() *Loader {
	cache := cachemanager.NewInMemoryCacheManager[Digest, *span.Set]("region-sets",
		cachemanager.DefaultExpiration, cachemanager.DefaultCleanupInterval)
	return NewLoader(cache, DefaultSetTTL)
}

func buildSet(_ context.Context, s *Sheet) (*span.Set, error) {
	set := span.Build(s.Regions(), s.CandidateColumns())
	log.Debug(log.CatSpan, "built region set", "regions", set.Len(), "candidates", len(set.CandidateColumns()))
	return set, nil
}

// Load reads path and returns a snapshot of it.
func (l *Loader) Load(ctx context.Context, path string) (*Snapshot, error) {
	s, err := Load(path)
	if err != nil {
		log.ErrorErr(log.CatSheet, "load failed", err, "path", path)
		return nil, err
	}
	snap, err := l.Snapshot(ctx, s)
	if err != nil {
		return nil, err
	}
	snap.Path = path
	log.Info(log.CatSheet, "loaded", "path", path, "rows", s.RowCount(), "columns", s.ColumnCount(),
		"regions", snap.Set.Len(), "id", snap.ID)
	return snap, nil
}

// Snapshot indexes an already validated sheet.
func (l *Loader) Snapshot(ctx context.Context, s *Sheet) (*Snapshot, error) {
	digest := LayoutDigest(s)
	set, err := l.sets.Get(ctx, digest, s, l.ttl)
	if err != nil {
		return nil, fmt.Errorf("indexing regions: %w", err)
	}
	return &Snapshot{
		ID:       uuid.New(),
		Sheet:    s,
		Set:      set,
		Digest:   digest,
		LoadedAt: time.Now(),
	}, nil
}
