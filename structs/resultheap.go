package structs

import "container/heap"

// ResultHeap is the bounded-size max-heap from spec §4.1: it keeps the K
// best (least-distance) items seen so far, where K is its capacity. Pushing
// past capacity first evicts the current maximum, then inserts the
// candidate, but only if the candidate is smaller than that maximum.
type ResultHeap struct {
	h   MaxHeap
	cap int
}

// NewResultHeap creates a ResultHeap bounded to at most cap items.
func NewResultHeap(cap int) *ResultHeap {
	h := MaxHeap(make([]uint64, 0, cap))
	return &ResultHeap{h: h, cap: cap}
}

// Reset empties the heap and rebinds its capacity, so pooled instances
// can be reused across calls that ask for a different max_neighbors.
func (r *ResultHeap) Reset(cap int) {
	r.h = r.h[:0]
	r.cap = cap
}

// Len returns the number of items currently held.
func (r *ResultHeap) Len() int { return r.h.Len() }

// Peek returns the current maximum (worst) item, or math.MaxUint64 if
// empty.
func (r *ResultHeap) Peek() uint64 { return r.h.Peek() }

// Push offers a packed (distance, id) item. If there is room it is kept
// unconditionally; otherwise it replaces the current maximum only if it
// is strictly smaller.
func (r *ResultHeap) Push(item uint64) {
	if r.h.Len() < r.cap {
		heap.Push(&r.h, item)
		return
	}
	if item < r.h.Peek() {
		heap.Pop(&r.h)
		heap.Push(&r.h, item)
	}
}

// DrainAny empties the heap and returns its (distance, id) items in
// unspecified order — the index-build mode of spec §4.2.
func (r *ResultHeap) DrainAny() []NodeHeap {
	out := make([]NodeHeap, 0, r.h.Len())
	for r.h.Len() > 0 {
		item := heap.Pop(&r.h).(uint64)
		dist, id := DecodeHeapItem(item)
		out = append(out, NodeHeap{Dist: dist, Id: id})
	}
	return out
}

// Drain empties the heap and returns its items sorted ascending by
// distance — the query mode of spec §4.2. It reverses DrainAny's order,
// since popping a max-heap yields largest-first.
func (r *ResultHeap) Drain() []NodeHeap {
	items := r.DrainAny()
	for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
		items[i], items[j] = items[j], items[i]
	}
	return items
}
