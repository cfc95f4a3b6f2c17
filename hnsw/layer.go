package hnsw

import "sync"

// layer is the read-only query-time representation of one Layer: a
// dense, contiguous array of node records with no per-node locking.
type layer []node

// buildLayer is the same dense array, under construction, paired with a
// parallel array of per-node locks (§5, §9's "array of per-slot
// read/write locks" strategy). The lock array is never persisted — it
// exists only for the lifetime of one Build call.
type buildLayer struct {
	nodes []node
	locks []sync.RWMutex
}

// newBuildLayer implements §4.6 step 2: copy prev's Nodes into the first
// len(prev) slots, extend with default (empty) Nodes up to size n.
func newBuildLayer(prev []node, n int) *buildLayer {
	nodes := make([]node, n)
	copy(nodes, prev)
	return &buildLayer{
		nodes: nodes,
		locks: make([]sync.RWMutex, n),
	}
}

// layerView unifies the read-only query layer and the lock-guarded build
// layer so §4.2's traversal has a single implementation serving both
// insertion and query. The two only differ in how a node's neighbors are
// fetched: the build layer takes a read lock for the duration of the
// copy, the query layer needs no lock at all.
type layerView interface {
	// size returns the number of nodes in the layer.
	size() int
	// readNeighbors copies the neighbors of idx into buf, which must
	// have length >= MaxNeighbors, and returns the count written.
	readNeighbors(idx NodeIndex, buf []NodeIndex) int
}

func (l layer) size() int { return len(l) }

func (l layer) readNeighbors(idx NodeIndex, buf []NodeIndex) int {
	return l[idx].neighborsInto(buf)
}

func (b *buildLayer) size() int { return len(b.nodes) }

func (b *buildLayer) readNeighbors(idx NodeIndex, buf []NodeIndex) int {
	b.locks[idx].RLock()
	defer b.locks[idx].RUnlock()
	return b.nodes[idx].neighborsInto(buf)
}

// frozen snapshots a completed buildLayer into the plain layer type used
// by both the next layer's copy step and the final Index. The lock array
// is dropped: by the time a layer is frozen, §4.6's happens-before
// barrier has already published every write to it.
func (b *buildLayer) frozen() layer {
	out := make(layer, len(b.nodes))
	copy(out, b.nodes)
	return out
}
