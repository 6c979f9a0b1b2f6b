package pool

import (
	"unsafe"

	"github.com/onsen-go/onsen/internal/arch"
)

// Slot is a pointer-sized handle to one pool cell. Slots do not track which
// pool they came from: the caller must give every slot back to its
// originating pool exactly once, must not let it outlive that pool, and must
// drop all projected references before freeing. Safe wrappers (boxed,
// refcount, shared) layer those duties into types; the raw slot exists for
// callers that need the last word of performance or an integer encoding.
//
// A slot starts uninitialized. Write through Uninit and promote with
// AssumeInit, or allocate through Pool.Alloc which does both. The transition
// is one-way. Mutable and pinned projections are mutually exclusive: once
// GetMut was called, Pin panics, and vice versa.
//
// The zero Slot is invalid; its state queries and projections panic, while
// ToUint64 returns 0 and Dup returns another zero Slot.
type Slot[T any] struct {
	addr uintptr
}

func (s Slot[T]) ptr() *T {
	return (*T)(unsafe.Pointer(s.addr))
}

func (s Slot[T]) status() uintptr {
	return loadStatus(s.addr, layoutOf[T]().statusOff)
}

func (s Slot[T]) setStatus(st uintptr) {
	storeStatus(s.addr, layoutOf[T]().statusOff, st)
}

// Uninit returns a pointer to the cell's uninitialized storage for the caller
// to fill in. Panics unless the slot is in the uninitialized state. The
// pointer must not be held across AssumeInit.
func (s Slot[T]) Uninit() *T {
	if s.status() != statusUninit {
		panic("pool: slot is not uninitialized")
	}
	return s.ptr()
}

// AssumeInit marks a fully written slot as initialized and returns the value
// pointer. Panics unless the slot is in the uninitialized state. There is no
// way back to the uninitialized state.
func (s Slot[T]) AssumeInit() *T {
	if s.status() != statusUninit {
		panic("pool: slot is not uninitialized")
	}
	s.setStatus(statusInit)
	return s.ptr()
}

// Get returns a read pointer to the initialized value.
// Panics when the slot is free or uninitialized.
func (s Slot[T]) Get() *T {
	if !statusIsInitialized(s.status()) {
		panic("pool: slot is not initialized")
	}
	return s.ptr()
}

// GetMut returns a mutable pointer to the initialized value and records that
// a mutable reference was taken. Panics when the slot is not initialized or
// was pinned before; pinned and mutable projections exclude each other.
func (s Slot[T]) GetMut() *T {
	st := s.status()
	if !statusIsInitialized(st) {
		panic("pool: slot is not initialized")
	}
	if st == statusPinned {
		panic("pool: slot was pinned, mutable reference refused")
	}
	s.setStatus(statusReferenced)
	return s.ptr()
}

// Pin returns a pointer to the initialized value with address-stability
// intent and records that the slot was pinned. Pool cells never move, so the
// only obligation is the exclusion against GetMut: Pin panics when a mutable
// reference was taken before.
func (s Slot[T]) Pin() *T {
	st := s.status()
	if !statusIsInitialized(st) {
		panic("pool: slot is not initialized")
	}
	if st == statusReferenced {
		panic("pool: slot was mutably referenced, pin refused")
	}
	s.setStatus(statusPinned)
	return s.ptr()
}

// IsFree reports whether the cell is on the freelist or unformed.
func (s Slot[T]) IsFree() bool {
	return !statusIsAllocated(s.status())
}

// IsUninitialized reports whether the cell is allocated but not yet written.
func (s Slot[T]) IsUninitialized() bool {
	return s.status() == statusUninit
}

// IsInitialized reports whether the cell holds a value (initialized,
// referenced or pinned).
func (s Slot[T]) IsInitialized() bool {
	return statusIsInitialized(s.status())
}

// IsReferenced reports whether a mutable or pinned reference was ever taken.
func (s Slot[T]) IsReferenced() bool {
	st := s.status()
	return st == statusReferenced || st == statusPinned
}

// IsPinned reports whether the slot was ever pinned.
func (s Slot[T]) IsPinned() bool {
	return s.status() == statusPinned
}

// ToUint64 encodes the slot as a 64-bit word. The address is guaranteed to be
// an 8-aligned 48-bit pointer, so the upper 16 bits and the low 3 bits are
// zero and free for caller tags.
func (s Slot[T]) ToUint64() uint64 {
	id := uint64(s.addr)
	if id&arch.TagMask != 0 {
		panic("pool: slot address does not fit the tag encoding")
	}
	return id
}

// FromUint64 decodes a word produced by ToUint64. The caller must ensure the
// word identifies a live cell of the same pool and element type; the decoded
// slot re-enters the normal single-free contract.
func FromUint64[T any](id uint64) Slot[T] {
	if id == 0 || id&arch.TagMask != 0 {
		panic("pool: invalid slot identifier")
	}
	return Slot[T]{addr: uintptr(id)}
}

// FromUint64Masked decodes a word that may carry caller tags in the upper 16
// bits or the low 3 bits, stripping them first. Same contract as FromUint64.
func FromUint64Masked[T any](id uint64) Slot[T] {
	id &^= arch.TagMask
	if id == 0 {
		panic("pool: invalid slot identifier")
	}
	return Slot[T]{addr: uintptr(id)}
}

// Dup copies the handle. The single-free duty does not multiply with it: all
// copies are invalidated by the one Free. Reserved for reference-counting
// wrappers and tag encodings that need two tokens for the same cell.
func (s Slot[T]) Dup() Slot[T] {
	return Slot[T]{addr: s.addr}
}
