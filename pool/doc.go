// Package pool implements a per-type object pool allocator for
// single-threaded hot paths.
//
// # Overview
//
// A Pool hands out pointer-stable cells for one element type. Storage grows
// in geometrically doubling blocks that are mapped once and never move, and
// freed cells are recycled through an intrusive cyclic freelist with a hot
// cursor, so a burst of frees followed by a burst of allocations returns a
// locality cluster of neighbouring addresses. This is the point of the
// design: not just cheap allocation, but cache-hot traversals of
// pool-resident objects.
//
// # Usage
//
//	p := pool.New[Node](nil)
//	defer p.Close()
//
//	s, err := p.Alloc(Node{Key: 42})
//	if err != nil {
//	    return err
//	}
//	n := s.GetMut()
//	n.Key++
//	if err := p.Free(s); err != nil {
//	    return err
//	}
//
// Two-phase initialization is available through AllocUninit, Slot.Uninit and
// Slot.AssumeInit for values that are expensive to construct by copy.
//
// # Handles
//
// Slot is a bare address token. It carries no reference to its pool and no
// lifetime: the caller owes the pool exactly one Free per slot, before the
// pool is closed, with all projected pointers dropped. The boxed, refcount
// and shared packages wrap those duties into safe types; Slot itself is the
// currency between them and supports a 48-bit tagged integer encoding
// (ToUint64, FromUint64Masked) for callers that pack handles into words.
//
// # Element types
//
// Cells live outside the Go heap on unix platforms. The garbage collector
// does not scan them, so element types that contain Go pointers must keep
// their referents alive elsewhere; the pool is designed for plain value
// payloads, which is where locality pays off most anyway.
//
// # Misuse detection
//
// Every Free checks the cell's status word, which cannot hold an allocated
// marker after the cell was freed, so double frees are always caught. The more
// expensive assertions (free-to-wrong-pool containment, panic on Close with
// live slots) are enabled per pool via Config.Checked; the ONSEN_POOL_CHECK
// environment variable turns them on for pools created with a nil config. Without them, misuse degrades
// to errors and leaks, never to dangling memory: a pool closed with live
// slots keeps its blocks mapped forever.
//
// # Thread safety
//
// Pool instances are not thread-safe. Every operation assumes exclusive
// access; see the shared package for a mutex-gated wrapper and the
// process-wide per-type pool.
package pool
