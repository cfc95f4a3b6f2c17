package hnsw

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"
	"unsafe"

	"github.com/rs/zerolog/log"

	"github.com/corvidlabs/hnsw/structs"
	"github.com/corvidlabs/hnsw/vector"
)

// nativeOrder is detected once at startup rather than assumed, since the
// format is explicitly host-native (§4.9, §9) rather than pinned to a
// fixed byte order.
var nativeOrder = detectNativeOrder()

func detectNativeOrder() binary.ByteOrder {
	var x uint16 = 1
	b := (*[2]byte)(unsafe.Pointer(&x))
	if b[0] == 1 {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

const wordSize = 8 // header words are uint64, per SPEC_FULL.md §4.9.

var nodeSize = int(unsafe.Sizeof(node{}))

// nodeBytes reinterprets nodes as its raw byte image, with no packing or
// copying — the zero-copy write side of §4.9's ownership clause.
func nodeBytes(nodes []node) []byte {
	if len(nodes) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&nodes[0])), len(nodes)*nodeSize)
}

// Save writes the built graph to path per §4.9's wire format: N (total
// node count summed over Layers), K, the K level counts, then all
// Layers' Nodes concatenated, each Node's byte image equal to its
// in-memory representation. It returns ErrNotBuilt if Build has not run.
func (b *Builder) Save(path string) error {
	b.mu.Lock()
	built := b.built
	layers := b.layers
	b.mu.Unlock()
	if !built || layers == nil {
		return ErrNotBuilt
	}

	totalNodes := 0
	levelCounts := make([]uint64, len(layers))
	for i, l := range layers {
		levelCounts[i] = uint64(len(l))
		totalNodes += len(l)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("hnsw: create %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := binary.Write(w, nativeOrder, uint64(totalNodes)); err != nil {
		return fmt.Errorf("hnsw: write header: %w", err)
	}
	if err := binary.Write(w, nativeOrder, uint64(len(layers))); err != nil {
		return fmt.Errorf("hnsw: write header: %w", err)
	}
	if err := binary.Write(w, nativeOrder, levelCounts); err != nil {
		return fmt.Errorf("hnsw: write header: %w", err)
	}
	for _, l := range layers {
		if _, err := w.Write(nodeBytes(l)); err != nil {
			return fmt.Errorf("hnsw: write nodes: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("hnsw: flush: %w", err)
	}

	if b.cfg.Progress {
		log.Info().Str("path", path).Int("nodes", totalNodes).Msg("hnsw: saved index")
	}
	return nil
}

// LoadIndex opens the graph saved at path and reconstitutes a query-only
// Index, memory-mapping it where available (§4.9's zero-copy read).
// elements is the caller's element store for the same corpus the
// Builder used; per §3's Ownership clause, only topology is persisted,
// vectors are borrowed again at load time. cfg supplies the distance
// function and search parameters for Search.
func LoadIndex(path string, elements vector.Elements, cfg Config) (*Index, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("hnsw: open %s: %w", path, err)
	}
	defer f.Close()

	buf, closer, err := mapFile(f)
	if err != nil {
		return nil, fmt.Errorf("hnsw: map %s: %w", path, err)
	}

	layers, err := decodeLayers(buf, elements.Len())
	if err != nil {
		if closer != nil {
			closer()
		}
		return nil, err
	}

	if cfg.Progress {
		log.Info().Str("path", path).Int("layers", len(layers)).Msg("hnsw: loaded index")
	}

	return &Index{
		layers:   layers,
		elements: elements,
		cfg:      cfg,
		pools:    structs.NewHeapPoolManager(),
		closer:   closer,
	}, nil
}

// decodeLayers validates buf against §4.9's preconditions and slices it
// into Layers. When the node region is not aligned for direct
// reinterpretation, it falls back to a copy into a freshly allocated,
// guaranteed-aligned []node (§9's "allocate an aligned region and copy").
func decodeLayers(buf []byte, elementCount int) ([]layer, error) {
	headerMin := 2 * wordSize
	if len(buf) < headerMin {
		return nil, ErrLoadFormat
	}

	totalNodes := int(nativeOrder.Uint64(buf[0:wordSize]))
	k := int(nativeOrder.Uint64(buf[wordSize : 2*wordSize]))
	if k < 0 {
		return nil, ErrLoadFormat
	}

	levelsEnd := headerMin + k*wordSize
	if len(buf) < levelsEnd {
		return nil, ErrLoadFormat
	}

	levelCounts := make([]int, k)
	sum := 0
	for i := 0; i < k; i++ {
		off := headerMin + i*wordSize
		c := int(nativeOrder.Uint64(buf[off : off+wordSize]))
		if c < 0 {
			return nil, ErrLoadFormat
		}
		levelCounts[i] = c
		sum += c
	}
	if sum != totalNodes {
		return nil, ErrLoadFormat
	}
	if k > 0 && levelCounts[k-1] > elementCount {
		return nil, ErrLoadFormat
	}

	nodesStart := levelsEnd
	nodesLen := totalNodes * nodeSize
	if len(buf) < nodesStart+nodesLen {
		return nil, ErrLoadFormat
	}

	var flat []node
	region := buf[nodesStart : nodesStart+nodesLen]
	if totalNodes == 0 {
		flat = nil
	} else if uintptr(unsafe.Pointer(&region[0]))%unsafe.Alignof(node{}) == 0 {
		flat = unsafe.Slice((*node)(unsafe.Pointer(&region[0])), totalNodes)
	} else {
		flat = make([]node, totalNodes)
		copy(nodeBytes(flat), region)
	}

	layers := make([]layer, k)
	offset := 0
	for i, c := range levelCounts {
		layers[i] = layer(flat[offset : offset+c])
		offset += c
	}
	return layers, nil
}
