package frontier

import (
	"cmp"
	"container/heap"
)

// Order selects which end of the bound range a Frontier pops first.
type Order int

const (
	// HighestFirst pops the entry with the largest bound (maximization).
	HighestFirst Order = iota

	// LowestFirst pops the entry with the smallest bound (shortest path).
	LowestFirst
)

// String returns a short human-readable name for the order.
func (o Order) String() string {
	switch o {
	case HighestFirst:
		return "highest-first"
	case LowestFirst:
		return "lowest-first"
	default:
		return "unknown"
	}
}

// entry pairs a pending state with its bound.
// seq is the insertion counter used for LIFO tie-breaking.
type entry[S any, B cmp.Ordered] struct {
	state S
	bound B
	seq   uint64
}

// entryHeap implements heap.Interface over entries.
// The order field flips the bound comparison so a single type serves both
// maximization and shortest-path searches.
type entryHeap[S any, B cmp.Ordered] struct {
	items []entry[S, B]
	order Order
}

// Len returns the number of entries in the heap.
func (h *entryHeap[S, B]) Len() int { return len(h.items) }

// Less ranks a before b when its bound is more extremal, falling back to the
// newer entry for equal bounds.
func (h *entryHeap[S, B]) Less(i, j int) bool {
	a, b := h.items[i], h.items[j]
	if c := cmp.Compare(a.bound, b.bound); c != 0 {
		if h.order == LowestFirst {
			return c < 0
		}

		return c > 0
	}

	return a.seq > b.seq
}

// Swap swaps two entries.
func (h *entryHeap[S, B]) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }

// Push appends x; called by heap.Push only.
func (h *entryHeap[S, B]) Push(x any) { h.items = append(h.items, x.(entry[S, B])) }

// Pop removes the last entry; called by heap.Pop only.
// The vacated slot is zeroed so the popped state is not retained by the
// backing array.
func (h *entryHeap[S, B]) Pop() any {
	old := h.items
	n := len(old)
	it := old[n-1]
	old[n-1] = entry[S, B]{}
	h.items = old[:n-1]

	return it
}

// Frontier is a bound-ordered priority queue of pending search states.
// The zero value is not usable; construct with New.
//
// A Frontier is not safe for concurrent use; each search owns its own.
type Frontier[S any, B cmp.Ordered] struct {
	h    entryHeap[S, B]
	next uint64
}

// New returns an empty Frontier popping in the given order.
// capacity is a sizing hint for the backing slice (values ≤ 0 mean none).
func New[S any, B cmp.Ordered](order Order, capacity int) *Frontier[S, B] {
	if capacity < 0 {
		capacity = 0
	}

	return &Frontier[S, B]{
		h: entryHeap[S, B]{
			items: make([]entry[S, B], 0, capacity),
			order: order,
		},
	}
}

// Order reports the order the frontier was constructed with.
func (f *Frontier[S, B]) Order() Order { return f.h.order }

// Push adds state with the given bound.
func (f *Frontier[S, B]) Push(state S, bound B) {
	heap.Push(&f.h, entry[S, B]{state: state, bound: bound, seq: f.next})
	f.next++
}

// Pop removes and returns the entry with the extremal bound.
// On an empty frontier it returns zero values and false.
func (f *Frontier[S, B]) Pop() (S, B, bool) {
	if len(f.h.items) == 0 {
		var (
			s S
			b B
		)

		return s, b, false
	}
	it := heap.Pop(&f.h).(entry[S, B])

	return it.state, it.bound, true
}

// Peek returns the entry Pop would return, without removing it.
func (f *Frontier[S, B]) Peek() (S, B, bool) {
	if len(f.h.items) == 0 {
		var (
			s S
			b B
		)

		return s, b, false
	}
	it := f.h.items[0]

	return it.state, it.bound, true
}

// Len returns the number of pending entries.
func (f *Frontier[S, B]) Len() int { return len(f.h.items) }

// IsEmpty reports whether no entries are pending.
func (f *Frontier[S, B]) IsEmpty() bool { return len(f.h.items) == 0 }

// Reset drops every pending entry but keeps the allocated capacity.
func (f *Frontier[S, B]) Reset() {
	clear(f.h.items)
	f.h.items = f.h.items[:0]
	f.next = 0
}
