package pool

import (
	"fmt"
	"unsafe"
)

// recycler keeps the currently-free cells on a doubly-linked cyclic list
// threaded through the cells themselves: the next link occupies the first
// payload word, the prev link the status word. The hot cursor points at the
// last-touched node, which biases recycling toward recently freed addresses
// without paying for a sorted structure.
type recycler struct {
	hot       uintptr // last-touched node, 0 when the list is empty
	length    int
	statusOff uintptr
}

func (r *recycler) next(c uintptr) uintptr {
	return *(*uintptr)(unsafe.Pointer(c))
}

func (r *recycler) prev(c uintptr) uintptr {
	return *(*uintptr)(unsafe.Pointer(c + r.statusOff))
}

func (r *recycler) setNext(c, v uintptr) {
	*(*uintptr)(unsafe.Pointer(c)) = v
}

func (r *recycler) setPrev(c, v uintptr) {
	*(*uintptr)(unsafe.Pointer(c + r.statusOff)) = v
}

// push links cell into the list immediately after the cursor and moves the
// cursor onto it. Freeing a batch of neighbouring cells therefore leaves them
// adjacent in list order, so later pops hand back a locality cluster.
func (r *recycler) push(cell uintptr) {
	if r.hot == 0 {
		r.setNext(cell, cell)
		r.setPrev(cell, cell)
	} else {
		n := r.next(r.hot)
		r.setNext(cell, n)
		r.setPrev(cell, r.hot)
		r.setNext(r.hot, cell)
		r.setPrev(n, cell)
	}
	r.hot = cell
	r.length++
}

// pop unlinks and returns the cell at the cursor, or 0 when the list is
// empty. Before unlinking, the cursor advances to whichever neighbour is
// closest in memory (lower address on ties), keeping the list weakly ordered
// by address around recent activity.
func (r *recycler) pop() uintptr {
	cell := r.hot
	if cell == 0 {
		return 0
	}
	n, p := r.next(cell), r.prev(cell)
	if n == cell {
		r.hot = 0
	} else {
		dn, dp := addrDelta(n, cell), addrDelta(p, cell)
		switch {
		case dn < dp:
			r.hot = n
		case dp < dn:
			r.hot = p
		case n < p:
			r.hot = n
		default:
			r.hot = p
		}
		r.setNext(p, n)
		r.setPrev(n, p)
	}
	r.length--
	return cell
}

func (r *recycler) len() int {
	return r.length
}

func addrDelta(a, b uintptr) uintptr {
	if a > b {
		return a - b
	}
	return b - a
}

// verify walks the cycle in both directions and checks it against the length
// counter. Expensive; used by tests.
func (r *recycler) verify() error {
	if r.hot == 0 {
		if r.length != 0 {
			return fmt.Errorf("pool: empty freelist with length %d", r.length)
		}
		return nil
	}
	seen := make(map[uintptr]struct{}, r.length)
	c := r.hot
	for i := 0; i < r.length; i++ {
		if _, dup := seen[c]; dup {
			return fmt.Errorf("pool: freelist cycle shorter than length %d", r.length)
		}
		seen[c] = struct{}{}
		if r.prev(r.next(c)) != c {
			return fmt.Errorf("pool: freelist prev/next mismatch at %#x", c)
		}
		c = r.next(c)
	}
	if c != r.hot {
		return fmt.Errorf("pool: freelist cycle longer than length %d", r.length)
	}
	c = r.hot
	for i := 0; i < r.length; i++ {
		c = r.prev(c)
	}
	if c != r.hot {
		return fmt.Errorf("pool: freelist prev cycle does not close")
	}
	return nil
}
