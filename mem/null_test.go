package mem

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/memkit/memkit/mem/alloc"
)

func TestNullIdentity(t *testing.T) {
	require.Equal(t, int64(0), Null.Size())
	require.Equal(t, uintptr(0), Null.Address())

	// Reallocating to zero always lands on the one shared instance
	a := alloc.NewHeap()
	r1, err := Allocate(a, 8)
	require.NoError(t, err)
	n1, err := r1.Reallocate(0)
	require.NoError(t, err)

	r2, err := Allocate(a, 8)
	require.NoError(t, err)
	n2, err := r2.Reallocate(0)
	require.NoError(t, err)

	require.True(t, n1 == Null)
	require.True(t, n1 == n2)
}

func TestNullLifecycle(t *testing.T) {
	// Free is idempotent and never fails
	require.NoError(t, Null.Free())
	require.NoError(t, Null.Free())

	// The null allocation cannot grow
	_, err := Null.Reallocate(16)
	require.ErrorIs(t, err, ErrNilAllocator)
	_, err = Null.Reallocate(0)
	require.ErrorIs(t, err, ErrNilAllocator)
}

func TestNullAccessors(t *testing.T) {
	_, err := Null.Byte(0)
	require.ErrorIs(t, err, ErrOutOfBounds)
	err = Null.PutByte(0, 1)
	require.ErrorIs(t, err, ErrOutOfBounds)
	_, err = Null.Int64(0)
	require.ErrorIs(t, err, ErrOutOfBounds)
	err = Null.PutFloat64(0, 1)
	require.ErrorIs(t, err, ErrOutOfBounds)

	require.True(t, Null.InBounds(0, 0))
	require.False(t, Null.InBounds(0, 1))
	require.False(t, Null.InBounds(-1, 0))
	require.NoError(t, Null.CheckBounds(0, 0))
	require.ErrorIs(t, Null.CheckBounds(0, 1), ErrOutOfBounds)
}

func TestNullZeroLengthOps(t *testing.T) {
	n, err := Null.ReadAt(nil, 0)
	require.NoError(t, err)
	require.Zero(t, n)
	n, err = Null.WriteAt(nil, 0)
	require.NoError(t, err)
	require.Zero(t, n)

	_, err = Null.ReadAt(make([]byte, 1), 0)
	require.ErrorIs(t, err, ErrOutOfBounds)

	data, err := Null.Bytes(0, 0)
	require.NoError(t, err)
	require.Empty(t, data)

	require.NoError(t, Null.Set(0, 0, 0xFF))
	require.ErrorIs(t, Null.Set(0, 1, 0xFF), ErrOutOfBounds)

	v, err := Null.Slice(0, 0)
	require.NoError(t, err)
	require.Equal(t, int64(0), v.Size())
	_, err = Null.Slice(0, 1)
	require.ErrorIs(t, err, ErrOutOfBounds)
	_, err = Null.SliceFrom(0)
	require.ErrorIs(t, err, ErrOutOfBounds)
}

func TestNullCopyCompare(t *testing.T) {
	other := checkedBlock(t, 4)

	require.NoError(t, Null.CopyTo(0, other, 0, 0))
	err := Null.CopyTo(0, other, 0, 1)
	require.ErrorIs(t, err, ErrOutOfBounds)

	// Copying zero bytes into the null region is fine too
	require.NoError(t, other.CopyTo(0, Null, 0, 0))
	err = other.CopyTo(0, Null, 0, 1)
	require.ErrorIs(t, err, ErrOutOfBounds)

	c, err := Null.Compare(0, other, 0, 0)
	require.NoError(t, err)
	require.Equal(t, 0, c)
	_, err = Null.Compare(0, other, 0, 1)
	require.ErrorIs(t, err, ErrOutOfBounds)
}

func TestNullString(t *testing.T) {
	s, ok := Null.(interface{ String() string })
	require.True(t, ok)
	require.Equal(t, "NullAllocation{}", s.String())
}
