package shared

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type alpha struct{ n int }
type beta struct{ n int }

func Test_GlobalSamePoolPerType(t *testing.T) {
	a1 := Global[alpha](nil)
	a2 := Global[alpha](nil)
	require.Same(t, a1, a2)

	s, err := a1.Alloc(alpha{n: 1})
	require.NoError(t, err)
	require.Equal(t, 1, a2.LiveCount())
	require.NoError(t, a2.Free(s))
}

func Test_GlobalDistinctPoolsAcrossTypes(t *testing.T) {
	a := Global[alpha](nil)
	b := Global[beta](nil)

	s, err := a.Alloc(alpha{n: 2})
	require.NoError(t, err)
	require.Zero(t, b.LiveCount(), "pools for distinct types must not share state")
	require.NoError(t, a.Free(s))
}
