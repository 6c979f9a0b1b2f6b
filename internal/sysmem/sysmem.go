// Package sysmem obtains raw storage regions from the operating system.
//
// On unix platforms regions come from anonymous private mmap, so they live
// outside the Go heap: the garbage collector neither moves nor scans them,
// which is exactly what a pointer-stable allocator needs. Elsewhere a plain
// heap slice is used as a portable fallback.
//
// The package keeps a process-wide count of outstanding mapped bytes. This is
// cheap enough to maintain unconditionally and lets tests observe that leaked
// pools really keep their blocks.
package sysmem

import "sync/atomic"

var mappedBytes atomic.Int64

// MappedBytes reports the total size of regions handed out by Map and not yet
// returned through Unmap.
func MappedBytes() int64 {
	return mappedBytes.Load()
}
