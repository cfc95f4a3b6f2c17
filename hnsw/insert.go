package hnsw

import (
	"github.com/corvidlabs/hnsw/structs"
	"github.com/corvidlabs/hnsw/vector"
)

// insertElement implements §4.5: insert element idx into current, the
// Layer under construction, given completed, the views over all
// previously-finished Layers in order.
func insertElement(
	idx NodeIndex,
	current *buildLayer,
	completed []layerView,
	elements vector.Elements,
	cfg Config,
	pools *structs.HeapPoolManager,
) {
	goal := elements.At(int(idx))

	entry := descend(completed, elements, cfg.Distance, goal, cfg.MaxIndexSearch, pools)

	candidates := search(current, elements, cfg.Distance, goal, entry, cfg.MaxIndexSearch, MaxNeighbors, pools, false)

	for _, c := range candidates {
		n := NodeIndex(c.Id)
		if n == idx {
			continue
		}
		// idx's own list starts empty, but idx can already be reachable as
		// someone else's neighbor by the time this runs (via that node's
		// own reverse connect), so a concurrent connect(j=idx, ...) from
		// another insertion can race this link and idx's list may already
		// hold n or be full. So the forward link goes through connect too
		// (locked, duplicate-checked, bounded), like granne does at
		// hnsw.rs:181.
		connect(current, elements, cfg.Distance, idx, n)
		connect(current, elements, cfg.Distance, n, idx)
	}
}
