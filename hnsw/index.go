package hnsw

import (
	"github.com/corvidlabs/hnsw/structs"
	"github.com/corvidlabs/hnsw/vector"
)

// Result pairs a NodeIndex with its exact distance to a query vector, as
// returned by Search.
type Result struct {
	Index    NodeIndex
	Distance float32
}

// Index is the read-only query view over a built graph (§4.8), typically
// backed by memory-mapped bytes but equally constructible directly from a
// Builder. It is immutable; queries against it are safe from multiple
// goroutines concurrently, since no writer exists once it is constructed.
type Index struct {
	layers   []layer
	elements vector.Elements
	cfg      Config
	pools    *structs.HeapPoolManager

	// closer releases resources backing layers (an mmap'd region), or is
	// nil when layers were built in-process and own their own memory.
	closer func() error
}

// Index derives a query view directly from a built Builder, without a
// save/load round-trip. It returns ErrNotBuilt if Build has not run.
func (b *Builder) Index() (*Index, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.built || b.layers == nil {
		return nil, ErrNotBuilt
	}
	return &Index{
		layers:   b.layers,
		elements: b.elements,
		cfg:      b.cfg,
		pools:    b.pools,
	}, nil
}

// Search implements §4.8: compute an entrypoint by descending Layers
// L_0..L_{K-2} with max_search=MaxSearch, max_neighbors=1, then run the
// bounded traversal on the bottom Layer L_{K-1} with the caller-supplied
// maxSearch and max_neighbors=k. Results are exact distances to vec,
// sorted ascending. It fails with ErrDimensionMismatch if len(vec) !=
// Config.Dim.
func (idx *Index) Search(vec []float32, k, maxSearch int) ([]Result, error) {
	if len(vec) != idx.cfg.Dim {
		return nil, ErrDimensionMismatch
	}
	if idx.elements.Len() == 0 {
		return nil, nil
	}

	query := make([]float32, len(vec))
	copy(query, vec)
	vector.Normalize(query)

	upper := make([]layerView, len(idx.layers)-1)
	for i := 0; i < len(idx.layers)-1; i++ {
		upper[i] = idx.layers[i]
	}

	entry := descend(upper, idx.elements, idx.cfg.Distance, query, idx.cfg.MaxSearch, idx.pools)

	bottom := idx.layers[len(idx.layers)-1]
	found := search(bottom, idx.elements, idx.cfg.Distance, query, entry, maxSearch, k, idx.pools, true)

	results := make([]Result, len(found))
	for i, f := range found {
		results[i] = Result{Index: NodeIndex(f.Id), Distance: f.Dist}
	}
	return results, nil
}

// Close releases any resources backing the Index's Layers (a memory
// mapping acquired via LoadIndex). It is a no-op for an Index derived
// directly from a Builder.
func (idx *Index) Close() error {
	if idx.closer == nil {
		return nil
	}
	return idx.closer()
}
