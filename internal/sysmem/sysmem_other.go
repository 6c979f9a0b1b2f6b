//go:build !(linux || darwin || freebsd)

package sysmem

import "fmt"

// Map allocates a zeroed region of n bytes from the Go heap. Portable
// fallback for platforms without anonymous mmap support; the region stays
// pinned because the caller holds the slice for the pool's lifetime.
func Map(n int) ([]byte, error) {
	if n <= 0 {
		return nil, fmt.Errorf("sysmem: invalid region size %d", n)
	}
	b := make([]byte, n)
	mappedBytes.Add(int64(n))
	return b, nil
}

// Unmap releases a region obtained from Map. The heap fallback only updates
// accounting; the garbage collector reclaims the memory once the caller drops
// the slice.
func Unmap(b []byte) error {
	if b == nil {
		return nil
	}
	mappedBytes.Add(-int64(len(b)))
	return nil
}
