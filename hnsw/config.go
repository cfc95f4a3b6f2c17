package hnsw

import (
	"errors"

	"github.com/corvidlabs/hnsw/vector"
)

// MaxNeighbors (M) is the per-node neighbor cap. It is a compile-time
// constant, not a Config field, because the on-disk Node record's byte
// size must stay fixed across a build (§3, §4.9).
const MaxNeighbors = 20

// Config holds the build- and query-time parameters for an HNSW graph.
type Config struct {
	// Dim is the vector dimension D. All elements added to a Builder and
	// all query vectors must have this length.
	Dim int

	// Layers is K, the number of Layers in the graph.
	Layers int

	// LevelMultiplier is LM, controlling the geometric growth of Layer
	// sizes: |L_k| = min(N, LM^k), except that the bottom Layer L_{K-1}
	// always holds all N elements.
	LevelMultiplier int

	// MaxIndexSearch bounds the traversal run during insertion (§4.5
	// step 2).
	MaxIndexSearch int

	// MaxSearch bounds the traversal run during entrypoint descent at
	// query time (§4.3). Search's bottom-layer traversal is bounded by its
	// own maxSearch argument instead.
	MaxSearch int

	// Distance computes the distance between two vectors. Required.
	Distance vector.DistanceFunc

	// Progress enables build/save/load progress logging (builder.go,
	// persist.go).
	Progress bool
}

// DefaultConfig returns a Config with the reference parameters from the
// specification: K=5, LM=12, MaxIndexSearch=500, MaxSearch=800, Euclidean
// distance.
func DefaultConfig(dim int) Config {
	return Config{
		Dim:             dim,
		Layers:          5,
		LevelMultiplier: 12,
		MaxIndexSearch:  500,
		MaxSearch:       800,
		Distance:        vector.EuclideanDistance,
	}
}

func validateConfig(cfg Config) error {
	if cfg.Dim <= 0 {
		return errors.New("hnsw: Dim must be positive")
	}
	if cfg.Layers <= 0 {
		return errors.New("hnsw: Layers must be positive")
	}
	if cfg.LevelMultiplier <= 1 {
		return errors.New("hnsw: LevelMultiplier must be greater than 1")
	}
	if cfg.MaxIndexSearch <= 0 {
		return errors.New("hnsw: MaxIndexSearch must be positive")
	}
	if cfg.MaxSearch <= 0 {
		return errors.New("hnsw: MaxSearch must be positive")
	}
	if cfg.Distance == nil {
		return errors.New("hnsw: Distance must be provided")
	}
	return nil
}
