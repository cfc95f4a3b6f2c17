package hnsw

import "github.com/corvidlabs/hnsw/vector"

// connect implements the §4.4 neighbor connection heuristic: propose
// linking j to candidate. If j has room, candidate is appended
// unconditionally. Otherwise j's current farthest neighbor is found; if
// candidate is strictly closer to j than 2x that farthest distance, it
// replaces the farthest neighbor. The whole check runs under j's
// exclusive lock, since concurrent insertions may propose links to the
// same j simultaneously (§5).
func connect(b *buildLayer, elements vector.Elements, dist vector.DistanceFunc, j, candidate NodeIndex) {
	b.locks[j].Lock()
	defer b.locks[j].Unlock()

	n := &b.nodes[j]
	if n.contains(candidate) {
		return
	}
	if !n.full() {
		n.append(candidate)
		return
	}

	distTo := func(a, c NodeIndex) float32 {
		return dist(elements.At(int(a)), elements.At(int(c)))
	}
	slot, worst := n.farthest(j, distTo)
	candDist := distTo(j, candidate)
	if candDist < 2*worst {
		n.replace(slot, candidate)
	}
}
