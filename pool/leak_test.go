package pool

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/onsen-go/onsen/internal/sysmem"
)

// Test_CloseReturnsBlocks verifies that a clean close gives every mapping
// back to the system.
func Test_CloseReturnsBlocks(t *testing.T) {
	before := sysmem.MappedBytes()

	p := New[payload](&Config{BaseEntries: 4})
	var slots []Slot[payload]
	for i := 0; i < 20; i++ {
		s, err := p.Alloc(payload{})
		require.NoError(t, err)
		slots = append(slots, s)
	}
	require.Greater(t, sysmem.MappedBytes(), before)

	for _, s := range slots {
		require.NoError(t, p.Free(s))
	}
	require.NoError(t, p.Close())
	require.Equal(t, before, sysmem.MappedBytes())
}

// Test_CloseWithLiveLeaks closes a pool that still has a live slot: the
// close reports ErrLive, keeps the blocks mapped, and the slot's memory
// stays readable.
func Test_CloseWithLiveLeaks(t *testing.T) {
	before := sysmem.MappedBytes()

	p := New[payload](&Config{BaseEntries: 4})
	s, err := p.Alloc(payload{key: 1234})
	require.NoError(t, err)

	mapped := sysmem.MappedBytes() - before
	require.Positive(t, mapped)

	require.ErrorIs(t, p.Close(), ErrLive)

	// Blocks were not returned and the value is still there.
	require.Equal(t, before+mapped, sysmem.MappedBytes())
	require.Equal(t, uint64(1234), s.Get().key)

	// The second close stays a no-op; the leak is final.
	require.NoError(t, p.Close())
	require.Equal(t, before+mapped, sysmem.MappedBytes())
}

// Test_LeakPath exercises the intentional leak: Leak then Close skips both
// the live check and the unmapping.
func Test_LeakPath(t *testing.T) {
	before := sysmem.MappedBytes()

	p := New[payload](&Config{BaseEntries: 4, Checked: true})
	s, err := p.Alloc(payload{key: 77})
	require.NoError(t, err)

	mapped := sysmem.MappedBytes() - before
	require.Positive(t, mapped)

	p.Leak()

	// Even a checked pool closes silently after Leak.
	require.NoError(t, p.Close())
	require.Equal(t, before+mapped, sysmem.MappedBytes())
	require.Equal(t, uint64(77), s.Get().key)
}
