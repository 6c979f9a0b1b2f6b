package arch

import "unsafe"

// Alignment and word-size utilities shared by the allocator core.

// WordSize is the size of a pointer word on the target platform.
const WordSize = unsafe.Sizeof(uintptr(0))

// TagMask covers the bits of a 64-bit word that are never set in a canonical
// 8-aligned 48-bit user-space pointer: the upper 16 bits and the low 3 bits.
// Handle encoding reserves these bits for caller tags (NaN boxing and the
// like); masked decoding strips them before reconstructing an address.
const TagMask uint64 = 0xffff_0000_0000_0007

// AlignUp returns n aligned up to the next multiple of a.
// a must be a power of two.
//
// Example:
//
//	AlignUp(1, 8)  = 8
//	AlignUp(8, 8)  = 8
//	AlignUp(9, 8)  = 16
func AlignUp(n, a uintptr) uintptr {
	return (n + a - 1) &^ (a - 1)
}
