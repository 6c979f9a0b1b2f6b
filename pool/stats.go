package pool

import "github.com/samber/lo"

// Stats holds allocator counters for instrumentation and tests.
type Stats struct {
	AllocCalls int   // total AllocUninit/Alloc calls
	FreeCalls  int   // total successful Free calls
	GrowCalls  int   // blocks mapped
	GrowBytes  int64 // total bytes mapped
	Blocks     int   // current block count
	Live       int   // slots handed out and not freed
	Free       int   // freelist length
	Capacity   int   // total cells across all blocks
}

// BlockInfo describes one block for diagnostics.
type BlockInfo struct {
	Cells int // capacity in cells
	Used  int // cells handed out at least once
	Bytes int // mapping size
}

// Stats returns a snapshot of the allocator counters.
func (p *Pool[T]) Stats() Stats {
	_, capacity := p.blocks.reserved()
	return Stats{
		AllocCalls: p.allocCalls,
		FreeCalls:  p.freeCalls,
		GrowCalls:  p.blocks.growCalls,
		GrowBytes:  p.blocks.growBytes,
		Blocks:     len(p.blocks.blocks),
		Live:       p.live,
		Free:       p.free.len(),
		Capacity:   capacity,
	}
}

// Reserved returns how many cells have been handed out at least once
// (live + free, excluding unformed cells) and the total capacity.
func (p *Pool[T]) Reserved() (used, capacity int) {
	return p.blocks.reserved()
}

// Stat returns the live, free and capacity cell counts.
func (p *Pool[T]) Stat() (live, free, capacity int) {
	_, capacity = p.blocks.reserved()
	return p.live, p.free.len(), capacity
}

// BlockSizes returns a per-block diagnostic summary in allocation order.
func (p *Pool[T]) BlockSizes() []BlockInfo {
	return lo.Map(p.blocks.blocks, func(b block, _ int) BlockInfo {
		return BlockInfo{Cells: b.cap, Used: b.used, Bytes: len(b.mem)}
	})
}
