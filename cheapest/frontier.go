package cheapest

import (
	"container/heap"

	"github.com/shopspring/decimal"
)

// frontierEntry is a location waiting to be settled with its best known fare.
type frontierEntry struct {
	id    string          // location id
	fare  decimal.Decimal // cumulative fare from start
	index int             // position in the heap, kept current by Swap
}

// frontier is an indexed min-heap of *frontierEntry ordered by fare, then by id.
//
// Unlike a lazy-decrease-key heap it holds at most one entry per location:
// lowering the fare of a queued location rewrites its entry and restores heap
// order with heap.Fix, which removes the stale fare in the same step.
type frontier struct {
	items []*frontierEntry
	byID  map[string]*frontierEntry
}

// newFrontier allocates a frontier sized for n locations.
func newFrontier(n int) *frontier {
	return &frontier{
		items: make([]*frontierEntry, 0, n),
		byID:  make(map[string]*frontierEntry, n),
	}
}

// Len returns the number of queued locations.
func (f *frontier) Len() int { return len(f.items) }

// Less orders by fare ascending; equal fares fall back to id ascending.
func (f *frontier) Less(i, j int) bool {
	if c := f.items[i].fare.Cmp(f.items[j].fare); c != 0 {
		return c < 0
	}

	return f.items[i].id < f.items[j].id
}

// Swap exchanges two entries and refreshes their indices.
func (f *frontier) Swap(i, j int) {
	f.items[i], f.items[j] = f.items[j], f.items[i]
	f.items[i].index = i
	f.items[j].index = j
}

// Push appends x; called by heap.Push only.
func (f *frontier) Push(x interface{}) {
	e := x.(*frontierEntry)
	e.index = len(f.items)
	f.items = append(f.items, e)
	f.byID[e.id] = e
}

// Pop removes the last entry; called by heap.Pop only.
func (f *frontier) Pop() interface{} {
	old := f.items
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	f.items = old[:n-1]
	delete(f.byID, e.id)
	e.index = -1

	return e
}

// upsert queues id at fare, or lowers the fare of its existing entry.
func (f *frontier) upsert(id string, fare decimal.Decimal) {
	if e, ok := f.byID[id]; ok {
		e.fare = fare
		heap.Fix(f, e.index)
		return
	}
	heap.Push(f, &frontierEntry{id: id, fare: fare})
}

// popMin removes and returns the cheapest entry.
func (f *frontier) popMin() *frontierEntry {
	return heap.Pop(f).(*frontierEntry)
}
