// Package shared layers concurrent access onto the single-threaded core
// pool. SyncPool gates every pool operation behind one mutex; Global hands
// out one process-wide SyncPool per element type.
//
// The mutex serializes pool operations only. Projections from live slots
// (Get, GetMut) stay lock-free and safe as long as each live cell is touched
// by one goroutine at a time, which is the cell-ownership discipline the
// core already requires.
package shared

import (
	"sync"

	"github.com/onsen-go/onsen/pool"
)

// SyncPool is a mutex-guarded pool for one element type.
type SyncPool[T any] struct {
	mu sync.Mutex
	p  *pool.Pool[T]
}

// NewSync creates an empty mutex-guarded pool. A nil config selects
// pool.DefaultConfig.
func NewSync[T any](config *pool.Config) *SyncPool[T] {
	return &SyncPool[T]{p: pool.New[T](config)}
}

// Alloc hands out a slot initialized to v.
func (sp *SyncPool[T]) Alloc(v T) (pool.Slot[T], error) {
	sp.mu.Lock()
	defer sp.mu.Unlock()
	return sp.p.Alloc(v)
}

// AllocUninit hands out an uninitialized slot. The caller owns the cell
// exclusively until Free, including the init transition.
func (sp *SyncPool[T]) AllocUninit() (pool.Slot[T], error) {
	sp.mu.Lock()
	defer sp.mu.Unlock()
	return sp.p.AllocUninit()
}

// Free returns a slot's cell to the pool.
func (sp *SyncPool[T]) Free(s pool.Slot[T]) error {
	sp.mu.Lock()
	defer sp.mu.Unlock()
	return sp.p.Free(s)
}

// Take copies the value out of an initialized slot and frees it.
func (sp *SyncPool[T]) Take(s pool.Slot[T]) (T, error) {
	sp.mu.Lock()
	defer sp.mu.Unlock()
	return sp.p.Take(s)
}

// LiveCount returns the number of slots handed out and not yet freed.
func (sp *SyncPool[T]) LiveCount() int {
	sp.mu.Lock()
	defer sp.mu.Unlock()
	return sp.p.LiveCount()
}

// Stats returns a snapshot of the allocator counters.
func (sp *SyncPool[T]) Stats() pool.Stats {
	sp.mu.Lock()
	defer sp.mu.Unlock()
	return sp.p.Stats()
}

// Leak disowns the pool's blocks; see pool.Pool.Leak.
func (sp *SyncPool[T]) Leak() {
	sp.mu.Lock()
	defer sp.mu.Unlock()
	sp.p.Leak()
}

// Close releases the pool; see pool.Pool.Close.
func (sp *SyncPool[T]) Close() error {
	sp.mu.Lock()
	defer sp.mu.Unlock()
	return sp.p.Close()
}
