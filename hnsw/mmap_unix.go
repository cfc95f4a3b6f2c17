//go:build unix

package hnsw

import (
	"os"

	"golang.org/x/sys/unix"
)

// mapFile memory-maps f read-only, giving the zero-copy read path §4.9
// describes. The returned closer unmaps the region; callers must call it
// before the file is expected to be fully released.
func mapFile(f *os.File) ([]byte, func() error, error) {
	info, err := f.Stat()
	if err != nil {
		return nil, nil, err
	}
	size := info.Size()
	if size == 0 {
		return nil, func() error { return nil }, nil
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, nil, err
	}
	closer := func() error {
		return unix.Munmap(data)
	}
	return data, closer, nil
}
