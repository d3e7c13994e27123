package node

import (
	"testing"

	"go-ownlist/pkg/allocator"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestAliasSharesChain(t *testing.T) {
	head := FromValues([]int{1, 2, 3, 4, 5})
	alias := head.AliasUnsafe()

	n, ok := head.GetMut(3)
	require.True(t, ok)
	n.SetValue(333)

	require.Equal(t, []int{1, 2, 3, 333, 5}, alias.Values())

	// the head itself is a copy, only the successors are shared
	head.SetValue(100)
	require.Equal(t, 1, alias.Value())
}

func TestAliasDoubleRelease(t *testing.T) {
	a := allocator.New(nil)
	head := FromValues([]int{1, 2, 3}, WithTracker(a))
	alias := head.AliasUnsafe()

	require.NoError(t, head.Release())
	require.Equal(t, 0, a.Live())

	err := alias.Release()
	require.Error(t, err)
	require.Equal(t, allocator.ErrDoubleFree, errors.Cause(err))
	require.Contains(t, err.Error(), "position 0")
}

func TestCycle(t *testing.T) {
	head := FromValues([]int{1, 2, 3, 4})
	require.False(t, head.HasCycle())

	tail, ok := head.GetMut(3)
	require.True(t, ok)
	tail.LinkUnsafe(head)

	require.True(t, head.HasCycle())
	require.Equal(t, 4, head.Len())
	require.Equal(t, []int{1, 2, 3, 4}, head.Values())
	require.Equal(t, "[1 2 3 4 ...]", head.String())

	// positional access keeps going round
	v, ok := head.Get(5)
	require.True(t, ok)
	require.Equal(t, 2, v.Value())
}

func TestCycleIntoMiddle(t *testing.T) {
	head := FromValues([]int{1, 2, 3, 4, 5})
	third, _ := head.GetMut(2)
	tail, _ := head.GetMut(4)
	tail.LinkUnsafe(third)

	require.True(t, head.HasCycle())
	require.Equal(t, []int{1, 2, 3, 4, 5}, head.Values())
	require.Equal(t, 5, head.Len())
}

func TestCycleRelease(t *testing.T) {
	a := allocator.New(nil)
	head := FromValues([]int{1, 2, 3}, WithTracker(a))
	tail, _ := head.GetMut(2)
	tail.LinkUnsafe(head)

	err := head.Release()
	require.Equal(t, allocator.ErrDoubleFree, errors.Cause(err))
	require.Contains(t, err.Error(), "position 3")
	require.Equal(t, 0, a.Live())
	require.False(t, head.HasCycle())
}

func TestCycleReleaseUntracked(t *testing.T) {
	head := FromValues([]int{1, 2, 3})
	tail, _ := head.GetMut(2)
	tail.LinkUnsafe(head)

	require.NoError(t, head.Release())
	require.Equal(t, 1, head.Len())
}

func TestLinkUnsafeDropsPreviousChain(t *testing.T) {
	head := FromValues([]int{1, 2, 3})
	other := FromValues([]int{7, 8})

	head.LinkUnsafe(other)
	require.Equal(t, []int{1, 7, 8}, head.Values())
	require.False(t, head.HasCycle())
}
