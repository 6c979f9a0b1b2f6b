package pool

import "errors"

var (
	// ErrNotAllocated indicates a free of a cell that is not currently
	// allocated: a double free, or memory that never came from a pool.
	ErrNotAllocated = errors.New("pool: cell is not allocated")

	// ErrNotInitialized indicates an attempt to take the value out of a slot
	// that was never initialized.
	ErrNotInitialized = errors.New("pool: slot is not initialized")

	// ErrLive indicates a Close on a pool that still has live allocations.
	// The blocks are leaked instead of unmapped so no handle ever dangles.
	ErrLive = errors.New("pool: closed with live allocations, blocks leaked")

	// ErrTooManyBlocks indicates the block table is exhausted. With geometric
	// doubling this means the pool outgrew the address space.
	ErrTooManyBlocks = errors.New("pool: block table exhausted")
)
