package pool

import "fmt"

// Pool is a single-threaded object pool for one element type. It owns a
// sequence of geometrically growing blocks and recycles freed cells through
// an intrusive freelist, so repeated alloc/free cycles keep handing back the
// same neighbourhood of addresses. Cell addresses are stable for the life of
// the pool.
//
// A Pool must not be used from more than one goroutine at a time; the shared
// package wraps it for concurrent callers.
type Pool[T any] struct {
	lay    layout
	blocks blockList
	free   recycler

	live   int
	leaked bool
	closed bool
	cfg    Config

	allocCalls int
	freeCalls  int
}

// New creates an empty pool. A nil config selects DefaultConfig. No memory is
// mapped until the first allocation.
func New[T any](config *Config) *Pool[T] {
	if config == nil {
		config = &DefaultConfig
	}
	cfg := *config
	if cfg.BaseEntries <= 0 {
		cfg.BaseEntries = DefaultConfig.BaseEntries
	}

	lay := layoutOf[T]()
	p := &Pool[T]{lay: lay, cfg: cfg}
	p.blocks.lay = lay
	p.blocks.base = cfg.BaseEntries
	p.free.statusOff = lay.statusOff
	return p
}

// AllocUninit hands out an uninitialized slot: freelist first, then the bump
// cursor of the newest block, growing the block list when both are exhausted.
// The caller must write the value and call AssumeInit before reading. Fails
// only when no new block can be mapped, leaving the pool unchanged.
func (p *Pool[T]) AllocUninit() (Slot[T], error) {
	cell := p.free.pop()
	if cell == 0 {
		var err error
		cell, err = p.blocks.reserveCell()
		if err != nil {
			return Slot[T]{}, err
		}
	}
	storeStatus(cell, p.lay.statusOff, statusUninit)
	p.live++
	p.allocCalls++
	return Slot[T]{addr: cell}, nil
}

// Alloc hands out a slot initialized to v.
func (p *Pool[T]) Alloc(v T) (Slot[T], error) {
	s, err := p.AllocUninit()
	if err != nil {
		return Slot[T]{}, err
	}
	*s.ptr() = v
	s.setStatus(statusInit)
	return s, nil
}

// Free returns a slot's cell to the freelist. The slot and every copy of it
// become invalid.
//
// A cell whose status word is not an allocated sentinel is rejected. This
// catches every double free and most frees of foreign memory at the cost of
// one word compare. In checked mode, Free additionally verifies that the
// address is a cell of this pool and panics otherwise; without it, freeing a
// live cell of another pool corrupts only that pool's freelist.
func (p *Pool[T]) Free(s Slot[T]) error {
	if s.addr == 0 {
		return ErrNotAllocated
	}
	if !statusIsAllocated(loadStatus(s.addr, p.lay.statusOff)) {
		if p.cfg.Checked {
			panic("pool: double free or free of foreign memory")
		}
		return ErrNotAllocated
	}
	if p.cfg.Checked && !p.blocks.contains(s.addr) {
		panic("pool: free of a slot that does not belong to this pool")
	}
	p.free.push(s.addr)
	p.live--
	p.freeCalls++
	return nil
}

// Take copies the value out of an initialized slot and frees it.
func (p *Pool[T]) Take(s Slot[T]) (T, error) {
	var zero T
	if s.addr == 0 || !statusIsInitialized(loadStatus(s.addr, p.lay.statusOff)) {
		return zero, ErrNotInitialized
	}
	v := *s.ptr()
	if err := p.Free(s); err != nil {
		return zero, err
	}
	return v, nil
}

// LiveCount returns the number of slots handed out and not yet freed.
func (p *Pool[T]) LiveCount() int {
	return p.live
}

// FreeCount returns the current freelist length.
func (p *Pool[T]) FreeCount() int {
	return p.free.len()
}

// Leak disowns the pool's blocks: a later Close skips the live-count check
// and keeps every mapping alive for the rest of the process. Intended for
// alloc-only workloads where outstanding slots outlive the pool value.
func (p *Pool[T]) Leak() {
	p.leaked = true
}

// Close releases every block in reverse order of allocation. Closing a pool
// that still has live allocations panics in checked mode; otherwise the
// blocks are leaked (handles stay readable forever) and ErrLive is returned.
// Close after Leak, and a second Close, are no-ops.
func (p *Pool[T]) Close() error {
	if p.closed || p.leaked {
		p.closed = true
		return nil
	}
	p.closed = true
	if p.live != 0 {
		if p.cfg.Checked {
			panic(fmt.Sprintf("pool: close with %d live allocations", p.live))
		}
		p.leaked = true
		return ErrLive
	}
	return p.blocks.release()
}
