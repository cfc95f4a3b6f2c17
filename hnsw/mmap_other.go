//go:build !unix

package hnsw

import (
	"io"
	"os"
)

// mapFile falls back to reading the whole file into memory on platforms
// without a byte-aliasing mmap story (§9's non-mmap fallback). It is
// correct but not zero-copy; the returned closer is a no-op since the
// buffer is an ordinary Go allocation, not a mapped region.
func mapFile(f *os.File) ([]byte, func() error, error) {
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, nil, err
	}
	return data, func() error { return nil }, nil
}
