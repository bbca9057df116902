package span

import (
	"context"
	"sync/atomic"

	"github.com/zjrosen/spangrid/internal/pubsub"
)

// Index publishes the current Set of a grid.
//
// Sets are never patched in place. A changed region list produces a new Set that
// replaces the old one in a single atomic store, so a reader sees either the old
// index or the new one, never a partially built one. Subscribers are told about
// every swap.
//
// Index satisfies Model by reading the current Set on every call. Callers that run
// several queries for one repaint or gesture should Load once and query the Set.
type Index struct {
	current atomic.Pointer[Set]
	broker  *pubsub.Broker[*Set]
}

// NewIndex creates an index publishing initial. A nil initial is an empty set.
func NewIndex(initial *Set) *Index {
	if initial == nil {
		initial = Build(nil, nil)
	}
	idx := &Index{broker: pubsub.NewBroker[*Set]()}
	idx.current.Store(initial)
	return idx
}

// Load returns the current Set.
func (i *Index) Load() *Set {
	return i.current.Load()
}

// Swap publishes next and returns the Set it replaced.
// Swapping in the Set that is already current is a no-op and notifies nobody.
func (i *Index) Swap(next *Set) *Set {
	if next == nil {
		next = Build(nil, nil)
	}
	prev := i.current.Swap(next)
	if prev != next {
		i.broker.Publish(pubsub.UpdatedEvent, next)
	}
	return prev
}

// Subscribe returns a channel receiving every Set swapped in after the call.
// The channel closes when ctx is cancelled or the index is closed.
func (i *Index) Subscribe(ctx context.Context) <-chan pubsub.Event[*Set] {
	return i.broker.Subscribe(ctx)
}

// Close releases subscribers.
func (i *Index) Close() {
	i.broker.Close()
}

func (i *Index) ContainingRegion(row, column int) *Region {
	return i.Load().ContainingRegion(row, column)
}

func (i *Index) IntersectingRegions(query Region) []*Region {
	return i.Load().IntersectingRegions(query)
}

func (i *Index) CouldContainRegion(column int) bool {
	return i.Load().CouldContainRegion(column)
}
