package refcount

import "github.com/onsen-go/onsen/pool"

// ScInner is the cell payload for Sc: a strong count plus the value. It
// drops Inner's 4-byte weak count; when T is 8-byte aligned, padding makes
// both payloads the same size.
type ScInner[T any] struct {
	count uint32
	val   T
}

// Sc is a strong-only counted reference to a pool-allocated value.
type Sc[T any] struct {
	slot pool.Slot[ScInner[T]]
	p    *pool.Pool[ScInner[T]]
}

// NewSc allocates a cell holding v with one reference.
func NewSc[T any](p *pool.Pool[ScInner[T]], v T) (Sc[T], error) {
	s, err := p.Alloc(ScInner[T]{count: 1, val: v})
	if err != nil {
		return Sc[T]{}, err
	}
	return Sc[T]{slot: s, p: p}, nil
}

// Clone takes another reference to the same value.
func (sc Sc[T]) Clone() Sc[T] {
	sc.slot.Get().count++
	return Sc[T]{slot: sc.slot.Dup(), p: sc.p}
}

// Get returns a read pointer to the value.
func (sc Sc[T]) Get() *T {
	in := sc.slot.Get()
	if in.count == 0 {
		panic("refcount: access after last reference dropped")
	}
	return &in.val
}

// GetMut returns a mutable pointer to the value.
func (sc Sc[T]) GetMut() *T {
	return sc.Get()
}

// Count returns the number of references.
func (sc Sc[T]) Count() int {
	return int(sc.slot.Get().count)
}

// Drop releases this reference, freeing the cell when it was the last one.
func (sc Sc[T]) Drop() error {
	if sc.slot.IsFree() {
		return ErrReleased
	}
	in := sc.slot.Get()
	if in.count == 0 {
		return ErrReleased
	}
	in.count--
	if in.count == 0 {
		return sc.p.Free(sc.slot)
	}
	return nil
}
