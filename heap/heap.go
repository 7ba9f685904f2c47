package heap

import "container/heap"

// entry is a single (distance, grid index) pair held in the heap.
type entry struct {
	distance float64
	index    int
}

// innerHeap implements container/heap.Interface over a slice of *entry,
// ordered by ascending distance. Every Swap keeps pos in sync with the
// array so that an index can be located in O(1) and Fix-ed in O(log n).
type innerHeap struct {
	items []*entry
	pos   map[int]int // grid index -> position in items
}

func (h *innerHeap) Len() int { return len(h.items) }

func (h *innerHeap) Less(i, j int) bool { return h.items[i].distance < h.items[j].distance }

func (h *innerHeap) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.pos[h.items[i].index] = i
	h.pos[h.items[j].index] = j
}

func (h *innerHeap) Push(x interface{}) {
	e := x.(*entry)
	h.pos[e.index] = len(h.items)
	h.items = append(h.items, e)
}

func (h *innerHeap) Pop() interface{} {
	old := h.items
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	h.items = old[:n-1]
	delete(h.pos, e.index)
	return e
}

// NarrowBandHeap is a min-heap of (distance, grid index) pairs supporting
// O(log n) insert, pop-minimum, and decrease/increase-key addressed by
// grid index rather than by heap position.
type NarrowBandHeap struct {
	h *innerHeap
}

// New returns an empty NarrowBandHeap.
func New() *NarrowBandHeap {
	return &NarrowBandHeap{h: &innerHeap{pos: make(map[int]int)}}
}

// Empty reports whether the heap holds no entries.
// Complexity: O(1).
func (nb *NarrowBandHeap) Empty() bool { return nb.h.Len() == 0 }

// Len returns the number of entries currently held.
// Complexity: O(1).
func (nb *NarrowBandHeap) Len() int { return nb.h.Len() }

// Contains reports whether idx currently has a live entry.
// Complexity: O(1) amortized.
func (nb *NarrowBandHeap) Contains(idx int) bool {
	_, ok := nb.h.pos[idx]
	return ok
}

// Insert adds (d, idx) to the heap. Returns ErrDuplicateIndex if idx is
// already present.
// Complexity: O(log n + avg-hash).
func (nb *NarrowBandHeap) Insert(d float64, idx int) error {
	if _, ok := nb.h.pos[idx]; ok {
		return ErrDuplicateIndex
	}
	heap.Push(nb.h, &entry{distance: d, index: idx})
	return nil
}

// Pop removes and returns the minimum-distance entry. Returns ErrHeapEmpty
// if the heap has no entries.
// Complexity: O(log n + avg-hash).
func (nb *NarrowBandHeap) Pop() (d float64, idx int, err error) {
	if nb.Empty() {
		return 0, 0, ErrHeapEmpty
	}
	e := heap.Pop(nb.h).(*entry)
	return e.distance, e.index, nil
}

// DecreaseDistance lowers the distance recorded for idx to d and restores
// the heap invariant. Requires d strictly less than the current distance.
// Returns ErrNotFound or ErrNotDecreasing.
// Complexity: O(log n + avg-hash).
func (nb *NarrowBandHeap) DecreaseDistance(idx int, d float64) error {
	p, ok := nb.h.pos[idx]
	if !ok {
		return ErrNotFound
	}
	if !(d < nb.h.items[p].distance) {
		return ErrNotDecreasing
	}
	nb.h.items[p].distance = d
	heap.Fix(nb.h, p)
	return nil
}

// IncreaseDistance raises the distance recorded for idx to d and restores
// the heap invariant. Requires d strictly greater than the current
// distance. Kept for completeness; the Marcher only invokes
// DecreaseDistance. Returns ErrNotFound or ErrNotIncreasing.
// Complexity: O(log n + avg-hash).
func (nb *NarrowBandHeap) IncreaseDistance(idx int, d float64) error {
	p, ok := nb.h.pos[idx]
	if !ok {
		return ErrNotFound
	}
	if !(d > nb.h.items[p].distance) {
		return ErrNotIncreasing
	}
	nb.h.items[p].distance = d
	heap.Fix(nb.h, p)
	return nil
}
