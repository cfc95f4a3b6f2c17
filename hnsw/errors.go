package hnsw

import "errors"

var (
	// ErrDimensionMismatch is returned by Add and Search when a vector's
	// length does not equal Config.Dim.
	ErrDimensionMismatch = errors.New("hnsw: dimension mismatch")

	// ErrNotBuilt is returned by Save and by any query operation invoked
	// before Build has completed.
	ErrNotBuilt = errors.New("hnsw: graph not built")

	// ErrAlreadyBuilt is returned by Build on a second invocation, and by
	// Add once Build has run. build_index in the source is not safe to
	// call twice (§9); this module enforces that rather than merely
	// documenting it.
	ErrAlreadyBuilt = errors.New("hnsw: already built")

	// ErrLoadFormat is returned by LoadIndex when the persisted buffer
	// fails the §4.9 preconditions (short buffer, inconsistent header
	// counts, oversized final layer).
	ErrLoadFormat = errors.New("hnsw: malformed index file")
)
