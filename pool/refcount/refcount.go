// Package refcount provides reference-counted boxes over pool cells. The
// counts live in the cell ahead of the value, so a counted allocation costs
// one cell and no separate header allocation.
//
// Rc splits strong and weak counts: the value becomes unreachable when the
// last strong reference drops, the cell returns to the pool when the last
// reference of either kind drops. Sc keeps a strong count only, which shrinks
// the payload only where T's alignment leaves no padding after the count.
//
// Like everything built on the core pool, these types are single-threaded;
// counts are plain integers, not atomics.
package refcount

import (
	"errors"

	"github.com/onsen-go/onsen/pool"
)

// ErrReleased indicates a Drop through a reference whose count already
// reached zero. Projections through such a reference panic instead.
var ErrReleased = errors.New("refcount: reference already released")

// Inner is the cell payload for Rc: both counts plus the value. Pools
// backing Rc allocations hold Inner[T], not T.
type Inner[T any] struct {
	strong uint32
	weak   uint32
	val    T
}

// Rc is a strong reference to a pool-allocated value.
type Rc[T any] struct {
	slot pool.Slot[Inner[T]]
	p    *pool.Pool[Inner[T]]
}

// New allocates a cell holding v with one strong reference.
func New[T any](p *pool.Pool[Inner[T]], v T) (Rc[T], error) {
	s, err := p.Alloc(Inner[T]{strong: 1, val: v})
	if err != nil {
		return Rc[T]{}, err
	}
	return Rc[T]{slot: s, p: p}, nil
}

func (rc Rc[T]) inner() *Inner[T] {
	return rc.slot.Get()
}

// Clone takes another strong reference to the same value.
func (rc Rc[T]) Clone() Rc[T] {
	rc.inner().strong++
	return Rc[T]{slot: rc.slot.Dup(), p: rc.p}
}

// Get returns a read pointer to the value. Panics when the value was already
// released through the last strong drop.
func (rc Rc[T]) Get() *T {
	in := rc.inner()
	if in.strong == 0 {
		panic("refcount: access after last strong reference dropped")
	}
	return &in.val
}

// GetMut returns a mutable pointer to the value under the same conditions as
// Get. The single-threaded contract makes aliasing the caller's concern.
func (rc Rc[T]) GetMut() *T {
	return rc.Get()
}

// StrongCount returns the number of strong references.
func (rc Rc[T]) StrongCount() int {
	return int(rc.inner().strong)
}

// WeakCount returns the number of weak references.
func (rc Rc[T]) WeakCount() int {
	return int(rc.inner().weak)
}

// Downgrade takes a weak reference to the same cell.
func (rc Rc[T]) Downgrade() Weak[T] {
	rc.inner().weak++
	return Weak[T]{slot: rc.slot.Dup(), p: rc.p}
}

// Drop releases this strong reference. When the last strong reference drops
// the value becomes unreachable; the cell returns to the pool once no weak
// references remain either. Dropping an already-released reference returns
// ErrReleased.
func (rc Rc[T]) Drop() error {
	if rc.slot.IsFree() {
		return ErrReleased
	}
	in := rc.inner()
	if in.strong == 0 {
		return ErrReleased
	}
	in.strong--
	if in.strong == 0 && in.weak == 0 {
		return rc.p.Free(rc.slot)
	}
	return nil
}

// Weak is a non-owning reference to an Rc cell. It keeps the cell allocated
// but not the value alive.
type Weak[T any] struct {
	slot pool.Slot[Inner[T]]
	p    *pool.Pool[Inner[T]]
}

// Upgrade attempts to take a strong reference. It fails once the last strong
// reference has dropped.
func (w Weak[T]) Upgrade() (Rc[T], bool) {
	if w.slot.IsFree() {
		return Rc[T]{}, false
	}
	in := w.slot.Get()
	if in.strong == 0 {
		return Rc[T]{}, false
	}
	in.strong++
	return Rc[T]{slot: w.slot.Dup(), p: w.p}, true
}

// Drop releases this weak reference, returning the cell to the pool when it
// was the last reference of either kind.
func (w Weak[T]) Drop() error {
	if w.slot.IsFree() {
		return ErrReleased
	}
	in := w.slot.Get()
	if in.weak == 0 {
		return ErrReleased
	}
	in.weak--
	if in.weak == 0 && in.strong == 0 {
		return w.p.Free(w.slot)
	}
	return nil
}
