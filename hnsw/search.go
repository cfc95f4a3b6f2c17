package hnsw

import (
	"container/heap"

	"github.com/corvidlabs/hnsw/structs"
	"github.com/corvidlabs/hnsw/vector"
)

// search implements the bounded best-first traversal of §4.2. It is
// generic over layerView so the identical algorithm serves both
// insertion (buildLayer, read-locked neighbor access) and query (layer,
// lock-free). sorted selects between the two output modes §4.2 names:
// true for query mode (ascending by distance), false for index-build
// mode (unspecified order).
func search(
	view layerView,
	elements vector.Elements,
	dist vector.DistanceFunc,
	goal []float32,
	entry NodeIndex,
	maxSearch, maxNeighbors int,
	pools *structs.HeapPoolManager,
	sorted bool,
) []structs.NodeHeap {
	frontier := pools.GetFrontier()
	defer pools.PutFrontier(frontier)
	result := pools.GetResultHeap(maxNeighbors)
	defer pools.PutResultHeap(result)
	visited := pools.GetVisited()
	defer pools.PutVisited(visited)

	entryDist := dist(elements.At(int(entry)), goal)
	heap.Push(frontier, structs.EncodeHeapItem(entryDist, int(entry)))
	visited[int(entry)] = struct{}{}

	var nbrBuf [MaxNeighbors]NodeIndex

	for i := 0; i < maxSearch && frontier.Len() > 0; i++ {
		item := heap.Pop(frontier).(uint64)
		d, idx := structs.DecodeHeapItem(item)

		result.Push(structs.EncodeHeapItem(d, idx))

		n := view.readNeighbors(NodeIndex(idx), nbrBuf[:])
		for j := 0; j < n; j++ {
			neighbor := int(nbrBuf[j])
			if _, seen := visited[neighbor]; seen {
				continue
			}
			visited[neighbor] = struct{}{}
			nd := dist(elements.At(neighbor), goal)
			heap.Push(frontier, structs.EncodeHeapItem(nd, neighbor))
		}
	}

	if sorted {
		return result.Drain()
	}
	return result.DrainAny()
}

// descend implements §4.3: starting at node 0 in the first (single-node)
// layer of views, run search with max_neighbors=1 through each
// layer in views (all layers above the target layer), carrying
// the single returned NodeIndex forward as the next layer's entrypoint.
func descend(
	views []layerView,
	elements vector.Elements,
	dist vector.DistanceFunc,
	goal []float32,
	maxSearch int,
	pools *structs.HeapPoolManager,
) NodeIndex {
	entry := NodeIndex(0)
	for _, v := range views {
		results := search(v, elements, dist, goal, entry, maxSearch, 1, pools, false)
		if len(results) == 0 {
			break
		}
		entry = NodeIndex(results[0].Id)
	}
	return entry
}
