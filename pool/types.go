package pool

import (
	"unsafe"

	"github.com/onsen-go/onsen/internal/arch"
)

// Status word values for allocated cells. A free cell stores its freelist
// prev link in the status word instead; link values are real cell addresses,
// which never fall inside the small sentinel range, so the two encodings can
// never collide. An unformed cell (past the bump cursor of a fresh block) has a
// zeroed status word.
const (
	statusUninit     uintptr = 1 // handed out, not yet written
	statusInit       uintptr = 2 // handed out and initialized
	statusReferenced uintptr = 3 // a mutable reference was projected
	statusPinned     uintptr = 4 // a pinned reference was projected

	// statusMaxSentinel bounds the sentinel range. Anything at or above it is
	// a freelist link; the zeroed status word of an unformed cell lies below
	// statusUninit.
	statusMaxSentinel uintptr = 8
)

func statusIsAllocated(st uintptr) bool {
	return st >= statusUninit && st < statusMaxSentinel
}

func statusIsInitialized(st uintptr) bool {
	return st == statusInit || st == statusReferenced || st == statusPinned
}

// layout describes the cell geometry for one element type. A cell is the
// payload (big enough for either a T or one freelist link) followed by one
// status word; the stride keeps successive cells correctly aligned.
type layout struct {
	cellSize  uintptr // full cell stride in bytes
	statusOff uintptr // offset of the status word within the cell
	align     uintptr
}

func layoutOf[T any]() layout {
	var zero T
	align := max(unsafe.Alignof(zero), arch.WordSize)
	payload := arch.AlignUp(max(unsafe.Sizeof(zero), arch.WordSize), align)
	return layout{
		cellSize:  arch.AlignUp(payload+arch.WordSize, align),
		statusOff: payload,
		align:     align,
	}
}

func loadStatus(cell, statusOff uintptr) uintptr {
	return *(*uintptr)(unsafe.Pointer(cell + statusOff))
}

func storeStatus(cell, statusOff, st uintptr) {
	*(*uintptr)(unsafe.Pointer(cell + statusOff)) = st
}
