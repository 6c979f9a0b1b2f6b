//go:build linux || darwin || freebsd

package sysmem

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Map allocates a zeroed region of n bytes via anonymous private mmap.
// The region is page-aligned and invisible to the Go garbage collector.
func Map(n int) ([]byte, error) {
	if n <= 0 {
		return nil, fmt.Errorf("sysmem: invalid region size %d", n)
	}
	b, err := unix.Mmap(-1, 0, n,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANON|unix.MAP_PRIVATE,
	)
	if err != nil {
		return nil, fmt.Errorf("sysmem: mmap %d bytes: %w", n, err)
	}
	mappedBytes.Add(int64(len(b)))
	return b, nil
}

// Unmap returns a region obtained from Map to the operating system.
// The caller must not touch the region afterwards.
func Unmap(b []byte) error {
	if b == nil {
		return nil
	}
	n := len(b)
	if err := unix.Munmap(b); err != nil {
		return fmt.Errorf("sysmem: munmap: %w", err)
	}
	mappedBytes.Add(-int64(n))
	return nil
}
