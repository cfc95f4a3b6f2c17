package vector

import (
	"errors"
	"sync"
)

// ErrDimensionMismatch is returned by Store.Add when a vector's length
// does not match the store's configured dimension.
var ErrDimensionMismatch = errors.New("vector: dimension mismatch")

// Store is the default MutableElements implementation: a growable,
// dimension-checked slice of unit vectors. Add normalizes its input
// before storing it, per spec.md's requirement that vectors supplied via
// add and search are normalized to unit length before use.
type Store struct {
	dim  int
	vecs [][]float32
	mu   sync.RWMutex
}

// NewStore creates an empty Store for vectors of dimension dim.
func NewStore(dim int) *Store {
	return &Store{dim: dim}
}

// Dim returns the store's fixed vector dimension.
func (s *Store) Dim() int { return s.dim }

// Len returns the number of vectors currently stored.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.vecs)
}

// At returns the vector at index i. The caller must not mutate it.
func (s *Store) At(i int) []float32 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.vecs[i]
}

// Add normalizes vec to unit length, appends a copy of it, and returns
// its assigned index. It fails with ErrDimensionMismatch if len(vec)
// does not equal the store's dimension; no mutation occurs in that case.
func (s *Store) Add(vec []float32) (int, error) {
	if len(vec) != s.dim {
		return 0, ErrDimensionMismatch
	}
	cp := make([]float32, len(vec))
	copy(cp, vec)
	Normalize(cp)

	s.mu.Lock()
	defer s.mu.Unlock()
	idx := len(s.vecs)
	s.vecs = append(s.vecs, cp)
	return idx, nil
}
