package structs

import "math"

// MaxHeap is a binary heap over packed (distance, id) items, largest
// distance on top. It shares its item encoding with MinHeap so both
// queues used by the traversal primitive (the frontier and the bounded
// result set) drain through the same EncodeHeapItem/DecodeHeapItem pair.
type MaxHeap []uint64

// NewMaxHeap creates an empty max-heap with a small initial capacity.
func NewMaxHeap() *MaxHeap {
	h := MaxHeap(make([]uint64, 0, 64))
	return &h
}

func (h MaxHeap) Len() int { return len(h) }

// Less reports whether element i should sort above element j. Larger
// distance wins; EncodeHeapItem already breaks distance ties by
// NodeIndex, so no separate tie-break is needed here.
func (h MaxHeap) Less(i, j int) bool { return h[i] > h[j] }

func (h MaxHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push adds x (a uint64 produced by EncodeHeapItem). The complexity is
// O(log n). Callers drive ordering through container/heap.Push; ResultHeap
// wraps this with the capacity-aware push from spec §4.1.
func (h *MaxHeap) Push(x interface{}) {
	*h = append(*h, x.(uint64))
}

// Pop removes and returns the largest element. The complexity is
// O(log n).
func (h *MaxHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// Peek returns the largest item without removing it, or math.MaxUint64
// if the heap is empty.
func (h MaxHeap) Peek() uint64 {
	if len(h) == 0 {
		return math.MaxUint64
	}
	return h[0]
}

// Reset empties the heap while keeping the underlying array.
func (h *MaxHeap) Reset() {
	*h = (*h)[:0]
}
