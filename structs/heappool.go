package structs

import (
	"sync"
)

// HeapPoolManager pools the frontier (MinHeap) and bounded result
// (ResultHeap) instances the traversal primitive allocates on every call,
// so a build that performs one traversal per inserted element does not
// allocate a fresh heap each time.
type HeapPoolManager struct {
	minHeapPool    sync.Pool
	resultHeapPool sync.Pool
	visitedPool    *VisitedPool
}

// NewHeapPoolManager creates a new pool manager.
func NewHeapPoolManager() *HeapPoolManager {
	return &HeapPoolManager{
		minHeapPool: sync.Pool{
			New: func() interface{} {
				return NewMinHeap()
			},
		},
		resultHeapPool: sync.Pool{
			New: func() interface{} {
				return NewResultHeap(0)
			},
		},
		visitedPool: NewVisitedPool(),
	}
}

// GetFrontier returns a reset MinHeap for use as a traversal frontier.
func (p *HeapPoolManager) GetFrontier() *MinHeap {
	h := p.minHeapPool.Get().(*MinHeap)
	h.Reset()
	return h
}

// PutFrontier returns a frontier to the pool.
func (p *HeapPoolManager) PutFrontier(h *MinHeap) {
	p.minHeapPool.Put(h)
}

// GetResultHeap returns a ResultHeap bounded to cap items.
func (p *HeapPoolManager) GetResultHeap(cap int) *ResultHeap {
	h := p.resultHeapPool.Get().(*ResultHeap)
	h.Reset(cap)
	return h
}

// PutResultHeap returns a ResultHeap to the pool.
func (p *HeapPoolManager) PutResultHeap(h *ResultHeap) {
	p.resultHeapPool.Put(h)
}

// GetVisited returns a cleared visited set.
func (p *HeapPoolManager) GetVisited() map[int]struct{} {
	return p.visitedPool.Get()
}

// PutVisited returns a visited set to the pool.
func (p *HeapPoolManager) PutVisited(m map[int]struct{}) {
	p.visitedPool.Put(m)
}
