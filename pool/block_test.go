package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestBlockList(base int) *blockList {
	bl := &blockList{lay: layoutOf[payload](), base: base}
	return bl
}

func Test_BlockListBump(t *testing.T) {
	bl := newTestBlockList(4)
	defer func() { require.NoError(t, bl.release()) }()

	var prev uintptr
	for i := 0; i < 4; i++ {
		addr, err := bl.reserveCell()
		require.NoError(t, err)
		if i > 0 {
			require.Equal(t, bl.lay.cellSize, addr-prev, "cells must be contiguous")
		}
		prev = addr
	}
	require.Len(t, bl.blocks, 1)
	require.Equal(t, 4, bl.blocks[0].used)

	// The fifth reservation crosses into a new, doubled block.
	addr, err := bl.reserveCell()
	require.NoError(t, err)
	require.Len(t, bl.blocks, 2)
	require.Equal(t, 8, bl.blocks[1].cap)
	require.Equal(t, bl.blocks[1].base, addr)
}

func Test_BlockListContains(t *testing.T) {
	bl := newTestBlockList(4)
	defer func() { require.NoError(t, bl.release()) }()

	a, err := bl.reserveCell()
	require.NoError(t, err)
	b, err := bl.reserveCell()
	require.NoError(t, err)

	require.True(t, bl.contains(a))
	require.True(t, bl.contains(b))

	// Interior of a cell is not a cell address.
	require.False(t, bl.contains(a+1))
	require.False(t, bl.contains(a+bl.lay.cellSize/2))

	// Past the bump cursor is unformed, not handed out.
	require.False(t, bl.contains(b+bl.lay.cellSize))

	// Outside every block.
	require.False(t, bl.contains(a-bl.lay.cellSize))
	require.False(t, bl.contains(0))
}

func Test_BlockListReserved(t *testing.T) {
	bl := newTestBlockList(2)
	defer func() { require.NoError(t, bl.release()) }()

	used, capacity := bl.reserved()
	require.Zero(t, used)
	require.Zero(t, capacity)

	for i := 0; i < 5; i++ {
		_, err := bl.reserveCell()
		require.NoError(t, err)
	}

	used, capacity = bl.reserved()
	require.Equal(t, 5, used)
	require.Equal(t, 2+4, capacity) // blocks of 2 and 4 cells
	require.Equal(t, 2, bl.growCalls)
}

func Test_BlockListRelease(t *testing.T) {
	bl := newTestBlockList(4)

	_, err := bl.reserveCell()
	require.NoError(t, err)
	require.NotEmpty(t, bl.blocks)

	require.NoError(t, bl.release())
	require.Empty(t, bl.blocks)

	// Release on an empty list stays a no-op.
	require.NoError(t, bl.release())
}
