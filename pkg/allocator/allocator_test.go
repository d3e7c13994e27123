package allocator

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestAllocFree(t *testing.T) {
	a := New(nil)

	ids := make([]uint64, 0, 10)
	for i := 0; i < 10; i++ {
		ids = append(ids, a.Alloc())
	}

	require.Equal(t, uint64(1), ids[0])
	require.Equal(t, 10, a.Live())
	require.Equal(t, uint64(10), a.Allocs())

	for _, id := range ids {
		require.NoError(t, a.Free(id))
	}

	require.Equal(t, 0, a.Live())
	require.Equal(t, uint64(10), a.Frees())
}

func TestDoubleFree(t *testing.T) {
	a := New(&Options{FirstID: 100})

	id := a.Alloc()
	require.Equal(t, uint64(100), id)
	require.NoError(t, a.Free(id))

	err := a.Free(id)
	require.Error(t, err)
	require.Equal(t, ErrDoubleFree, errors.Cause(err))
	require.Equal(t, uint64(1), a.Frees())
}

func TestInvalidPointer(t *testing.T) {
	a := New(&Options{FirstID: 5})
	a.Alloc()

	err := a.Free(4)
	require.Equal(t, ErrInvalidPointer, errors.Cause(err))

	err = a.Free(6)
	require.Equal(t, ErrInvalidPointer, errors.Cause(err))

	err = a.Free(0)
	require.Equal(t, ErrInvalidPointer, errors.Cause(err))
	require.Equal(t, 1, a.Live())
}

func TestRejectedFreeIsLogged(t *testing.T) {
	buf := &bytes.Buffer{}
	l := logrus.New()
	l.Out = buf
	l.Formatter = &logrus.TextFormatter{DisableTimestamp: true}

	a := New(&Options{Logger: l.WithField("prefix", "allocator")})
	id := a.Alloc()
	require.NoError(t, a.Free(id))
	require.Empty(t, buf.String())

	require.Error(t, a.Free(id))
	require.Contains(t, buf.String(), "rejected free")
	require.Contains(t, buf.String(), "double free")
}
