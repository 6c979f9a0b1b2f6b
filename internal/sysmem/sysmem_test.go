package sysmem

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_MapUnmap(t *testing.T) {
	before := MappedBytes()

	b, err := Map(4096)
	require.NoError(t, err)
	require.Len(t, b, 4096)
	require.Equal(t, before+4096, MappedBytes())

	// The region is zeroed and writable.
	for _, c := range b {
		require.Zero(t, c)
	}
	b[0] = 0xAA
	b[4095] = 0x55

	require.NoError(t, Unmap(b))
	require.Equal(t, before, MappedBytes())
}

func Test_MapRejectsBadSize(t *testing.T) {
	_, err := Map(0)
	require.Error(t, err)
	_, err = Map(-1)
	require.Error(t, err)
}

func Test_UnmapNil(t *testing.T) {
	require.NoError(t, Unmap(nil))
}
