package hnsw

import (
	"context"
	"runtime"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/corvidlabs/hnsw/structs"
	"github.com/corvidlabs/hnsw/vector"
)

// Builder accumulates elements and constructs the layered graph described
// in §3/§4.6/§4.7. A Builder is created empty, grown by Add, and
// transitions to built exactly once by Build.
type Builder struct {
	cfg      Config
	elements vector.MutableElements
	pools    *structs.HeapPoolManager

	mu     sync.Mutex
	built  bool
	layers []layer
}

// NewBuilder creates an empty Builder. elements is the mutable element
// store Add will append to; it must start empty and must not be shared
// with any other Builder.
func NewBuilder(cfg Config, elements vector.MutableElements) (*Builder, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return &Builder{
		cfg:      cfg,
		elements: elements,
		pools:    structs.NewHeapPoolManager(),
	}, nil
}

// Add appends vec to the element store, normalizing it to unit length,
// and returns its assigned NodeIndex. It fails with ErrDimensionMismatch
// if len(vec) != Config.Dim, and with ErrAlreadyBuilt once Build has run
// — the open question in spec.md §9 about add after build is resolved
// here by rejecting it outright.
func (b *Builder) Add(vec []float32) (NodeIndex, error) {
	if len(vec) != b.cfg.Dim {
		return 0, ErrDimensionMismatch
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.built {
		return 0, ErrAlreadyBuilt
	}

	idx, err := b.elements.Add(vec)
	if err != nil {
		return 0, err
	}
	return NodeIndex(idx), nil
}

// Len returns the current element count.
func (b *Builder) Len() int {
	return b.elements.Len()
}

// layerSize computes n_k = min(N, LM^k).
func layerSize(n, lm, k int) int {
	size := 1
	for i := 0; i < k; i++ {
		size *= lm
		if size >= n {
			return n
		}
	}
	if size > n {
		return n
	}
	return size
}

// Build constructs all K Layers in sequence (§4.7). It is single-shot: a
// second call returns ErrAlreadyBuilt. Each Layer is built per §4.6 by
// copying the previous Layer's Nodes, extending with defaults (to
// layerSize's min(N, LM^k), except the bottom Layer, which always holds
// all N elements), then
// inserting the new elements concurrently with bounded parallelism; the
// errgroup.Wait() between Layers is the happens-before barrier §4.6
// requires. ctx is checked between insertion units, not within a single
// insertion — cancellation is not a spec.md guarantee (§5), this is a
// best-effort addition on top of it.
func (b *Builder) Build(ctx context.Context) error {
	b.mu.Lock()
	if b.built {
		b.mu.Unlock()
		return ErrAlreadyBuilt
	}
	b.built = true
	n := b.elements.Len()
	b.mu.Unlock()

	var prevNodes []node
	var views []layerView
	layers := make([]layer, 0, b.cfg.Layers)

	for k := 0; k < b.cfg.Layers; k++ {
		nk := layerSize(n, b.cfg.LevelMultiplier, k)
		if k == b.cfg.Layers-1 {
			nk = n
		}
		prevLen := len(prevNodes)

		current := newBuildLayer(prevNodes, nk)

		if b.cfg.Progress {
			log.Info().Int("layer", k).Int("size", nk).Msg("hnsw: building layer")
		}

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(runtime.GOMAXPROCS(0))

		for i := prevLen; i < nk; i++ {
			i := i
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				insertElement(NodeIndex(i), current, views, b.elements, b.cfg, b.pools)
				return nil
			})
		}

		if err := g.Wait(); err != nil {
			b.mu.Lock()
			b.built = false
			b.mu.Unlock()
			return err
		}

		frozen := current.frozen()
		layers = append(layers, frozen)
		views = append(views, frozen)
		prevNodes = frozen
	}

	b.mu.Lock()
	b.layers = layers
	b.mu.Unlock()

	if b.cfg.Progress {
		log.Info().Int("layers", len(layers)).Msg("hnsw: build complete")
	}
	return nil
}
