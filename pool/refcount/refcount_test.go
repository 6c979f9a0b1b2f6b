package refcount

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/onsen-go/onsen/pool"
)

func Test_RcLifecycle(t *testing.T) {
	p := pool.New[Inner[string]](nil)
	defer func() { require.NoError(t, p.Close()) }()

	rc, err := New(p, "shared")
	require.NoError(t, err)
	require.Equal(t, 1, rc.StrongCount())
	require.Equal(t, "shared", *rc.Get())

	clone := rc.Clone()
	require.Equal(t, 2, rc.StrongCount())
	require.Equal(t, 2, clone.StrongCount())

	// Both handles see one value.
	*clone.GetMut() = "renamed"
	require.Equal(t, "renamed", *rc.Get())

	require.NoError(t, clone.Drop())
	require.Equal(t, 1, rc.StrongCount())
	require.Equal(t, 1, p.LiveCount())

	require.NoError(t, rc.Drop())
	require.Zero(t, p.LiveCount())
}

func Test_RcDropAfterRelease(t *testing.T) {
	p := pool.New[Inner[int]](nil)
	defer func() { require.NoError(t, p.Close()) }()

	rc, err := New(p, 1)
	require.NoError(t, err)
	require.NoError(t, rc.Drop())

	require.ErrorIs(t, rc.Drop(), ErrReleased)
}

func Test_WeakKeepsCellNotValue(t *testing.T) {
	p := pool.New[Inner[int]](nil)
	defer func() { require.NoError(t, p.Close()) }()

	rc, err := New(p, 41)
	require.NoError(t, err)
	w := rc.Downgrade()
	require.Equal(t, 1, rc.WeakCount())

	// Last strong drop: value unreachable, cell still allocated.
	require.NoError(t, rc.Drop())
	require.Equal(t, 1, p.LiveCount())

	_, ok := w.Upgrade()
	require.False(t, ok, "upgrade must fail after last strong drop")

	// Last weak drop returns the cell.
	require.NoError(t, w.Drop())
	require.Zero(t, p.LiveCount())
	require.ErrorIs(t, w.Drop(), ErrReleased)
}

func Test_WeakUpgradeWhileStrong(t *testing.T) {
	p := pool.New[Inner[int]](nil)
	defer func() { require.NoError(t, p.Close()) }()

	rc, err := New(p, 7)
	require.NoError(t, err)
	w := rc.Downgrade()

	up, ok := w.Upgrade()
	require.True(t, ok)
	require.Equal(t, 2, rc.StrongCount())
	require.Equal(t, 7, *up.Get())

	require.NoError(t, up.Drop())
	require.NoError(t, rc.Drop())
	require.NoError(t, w.Drop())
	require.Zero(t, p.LiveCount())
}

func Test_ScLifecycle(t *testing.T) {
	p := pool.New[ScInner[string]](nil)
	defer func() { require.NoError(t, p.Close()) }()

	sc, err := NewSc(p, "strong")
	require.NoError(t, err)
	require.Equal(t, 1, sc.Count())

	clone := sc.Clone()
	require.Equal(t, 2, sc.Count())
	*clone.GetMut() = "mutated"
	require.Equal(t, "mutated", *sc.Get())

	require.NoError(t, clone.Drop())
	require.Equal(t, 1, p.LiveCount())
	require.NoError(t, sc.Drop())
	require.Zero(t, p.LiveCount())

	require.ErrorIs(t, sc.Drop(), ErrReleased)
}

// Test_CountsShareTheCell pins down the layout decision: the counts live in
// the same cell as the value, so a counted pool needs exactly one live cell
// per allocation.
func Test_CountsShareTheCell(t *testing.T) {
	p := pool.New[Inner[[4]uint64]](nil)
	defer func() { require.NoError(t, p.Close()) }()

	rc, err := New(p, [4]uint64{1, 2, 3, 4})
	require.NoError(t, err)
	w := rc.Downgrade()
	clone := rc.Clone()

	require.Equal(t, 1, p.LiveCount())

	require.NoError(t, clone.Drop())
	require.NoError(t, rc.Drop())
	require.NoError(t, w.Drop())
	require.Zero(t, p.LiveCount())
}
