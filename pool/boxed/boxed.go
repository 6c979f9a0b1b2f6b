// Package boxed pairs a pool slot with a reference to its pool, turning the
// raw handle contract into a type: a Box frees its cell exactly once through
// Close, a Leaky box never frees at all. Both keep the cell address stable
// and the value addressable for their whole life.
package boxed

import "github.com/onsen-go/onsen/pool"

// Box owns one pool cell. Close returns the cell to the pool; a Box that is
// never closed leaks its cell within the pool until the pool itself is
// closed.
type Box[T any] struct {
	slot pool.Slot[T]
	p    *pool.Pool[T]
	done bool
}

// New allocates a cell initialized to v.
func New[T any](p *pool.Pool[T], v T) (*Box[T], error) {
	s, err := p.Alloc(v)
	if err != nil {
		return nil, err
	}
	return &Box[T]{slot: s, p: p}, nil
}

// Get returns a read pointer to the value. Panics after Close.
func (b *Box[T]) Get() *T {
	if b.done {
		panic("boxed: use of closed box")
	}
	return b.slot.Get()
}

// GetMut returns a mutable pointer to the value. Panics after Close.
func (b *Box[T]) GetMut() *T {
	if b.done {
		panic("boxed: use of closed box")
	}
	return b.slot.GetMut()
}

// Take copies the value out, frees the cell and marks the box closed.
func (b *Box[T]) Take() (T, error) {
	if b.done {
		var zero T
		return zero, pool.ErrNotAllocated
	}
	b.done = true
	return b.p.Take(b.slot)
}

// Close frees the cell. A second Close is a no-op.
func (b *Box[T]) Close() error {
	if b.done {
		return nil
	}
	b.done = true
	return b.p.Free(b.slot)
}

// Leaky holds one pool cell and never frees it. The cell counts as live for
// the rest of the pool's life, so Leaky boxes belong to arena-style
// workloads where the pool is leaked wholesale rather than closed.
type Leaky[T any] struct {
	slot pool.Slot[T]
}

// NewLeaky allocates a cell initialized to v with no freeing path.
func NewLeaky[T any](p *pool.Pool[T], v T) (Leaky[T], error) {
	s, err := p.Alloc(v)
	if err != nil {
		return Leaky[T]{}, err
	}
	return Leaky[T]{slot: s}, nil
}

// Get returns a read pointer to the value.
func (l Leaky[T]) Get() *T {
	return l.slot.Get()
}

// GetMut returns a mutable pointer to the value.
func (l Leaky[T]) GetMut() *T {
	return l.slot.GetMut()
}
