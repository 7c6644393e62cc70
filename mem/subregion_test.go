package mem

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/memkit/memkit/mem/alloc"
)

func TestSliceConstruction(t *testing.T) {
	r := checkedBlock(t, 32)

	v, err := r.Slice(8, 16)
	require.NoError(t, err)
	require.Equal(t, int64(16), v.Size())

	// Construction is eager: a window outside the parent fails immediately
	_, err = r.Slice(24, 16)
	require.ErrorIs(t, err, ErrOutOfBounds)
	_, err = r.Slice(-1, 4)
	require.ErrorIs(t, err, ErrOutOfBounds)
	_, err = r.Slice(0, -1)
	require.ErrorIs(t, err, ErrOutOfBounds)

	// A zero-length window at the very end is allowed
	empty, err := r.Slice(32, 0)
	require.NoError(t, err)
	require.Equal(t, int64(0), empty.Size())

	// SliceFrom covers the tail and needs at least one byte
	tail, err := r.SliceFrom(24)
	require.NoError(t, err)
	require.Equal(t, int64(8), tail.Size())
	_, err = r.SliceFrom(32)
	require.ErrorIs(t, err, ErrOutOfBounds)
}

func TestViewSeesParentBytes(t *testing.T) {
	r := checkedBlock(t, 32)
	for i := int64(0); i < 32; i++ {
		require.NoError(t, r.PutByte(i, byte(i)))
	}

	v, err := r.Slice(8, 16)
	require.NoError(t, err)

	// Every view offset maps to parent offset+8
	for p := int64(0); p < 16; p++ {
		got, err := v.Byte(p)
		require.NoError(t, err)
		want, err := r.Byte(8 + p)
		require.NoError(t, err)
		require.Equal(t, want, got, "offset %d", p)
	}

	// Writes through the view land in the parent
	require.NoError(t, v.PutInt32(0, 0x01020304))
	got, err := r.Int32(8)
	require.NoError(t, err)
	require.Equal(t, int32(0x01020304), got)

	u64 := uint64(0xABCDEF0123456789)
	require.NoError(t, v.PutUint64(8, u64))
	back, err := r.Uint64(16)
	require.NoError(t, err)
	require.Equal(t, u64, back)
}

func TestViewWindowClamp(t *testing.T) {
	r := checkedBlock(t, 32)
	v, err := r.Slice(8, 8)
	require.NoError(t, err)

	// Offset 10 is valid in the parent but outside this window
	require.True(t, r.InBounds(18, 1))
	_, err = v.Byte(10)
	require.ErrorIs(t, err, ErrOutOfBounds)
	require.False(t, v.InBounds(10, 1))

	_, err = v.Byte(-1)
	require.ErrorIs(t, err, ErrOutOfBounds)
	err = v.CheckBounds(4, 8)
	require.ErrorIs(t, err, ErrOutOfBounds)
	require.NoError(t, v.CheckBounds(0, 8))
	require.True(t, v.InBounds(8, 0))
}

func TestViewWindowOverUncheckedParent(t *testing.T) {
	a := alloc.NewHeap()
	r, err := AllocateUnchecked(a, 32)
	require.NoError(t, err)
	defer func() { require.NoError(t, r.Free()) }()

	v, err := r.Slice(8, 8)
	require.NoError(t, err)

	// The parent skips its own checks but the view still clamps its window
	_, err = v.Byte(9)
	require.ErrorIs(t, err, ErrOutOfBounds)
	err = v.PutInt64(1, 1)
	require.ErrorIs(t, err, ErrOutOfBounds)

	require.NoError(t, v.PutInt64(0, 77))
	got, err := r.Int64(8)
	require.NoError(t, err)
	require.Equal(t, int64(77), got)

	// Structurally invalid windows are rejected even without parent checks
	_, err = r.Slice(-1, 4)
	require.ErrorIs(t, err, ErrOutOfBounds)
	_, err = r.Slice(0, -4)
	require.ErrorIs(t, err, ErrOutOfBounds)
}

func TestViewAfterParentFree(t *testing.T) {
	r := checkedBlock(t, 16)
	v, err := r.Slice(4, 8)
	require.NoError(t, err)

	require.NoError(t, r.Free())

	// The view delegates, so the released parent rejects every access
	_, err = v.Byte(0)
	require.ErrorIs(t, err, ErrReleased)
	err = v.PutFloat64(0, 1.0)
	require.ErrorIs(t, err, ErrReleased)
	err = v.CheckBounds(0, 8)
	require.ErrorIs(t, err, ErrReleased)
	_, err = v.Slice(0, 4)
	require.ErrorIs(t, err, ErrReleased)

	// Window arithmetic still answers without touching memory
	require.True(t, v.InBounds(0, 8))
	require.False(t, v.InBounds(0, 9))
}

func TestNestedViews(t *testing.T) {
	r := checkedBlock(t, 64)
	for i := int64(0); i < 64; i++ {
		require.NoError(t, r.PutByte(i, byte(i)))
	}

	outer, err := r.Slice(16, 32)
	require.NoError(t, err)
	inner, err := outer.Slice(8, 16)
	require.NoError(t, err)
	require.Equal(t, int64(16), inner.Size())

	// Offsets compose: inner 0 is parent 24
	b, err := inner.Byte(0)
	require.NoError(t, err)
	require.Equal(t, byte(24), b)
	b, err = inner.Byte(15)
	require.NoError(t, err)
	require.Equal(t, byte(39), b)

	_, err = inner.Byte(16)
	require.ErrorIs(t, err, ErrOutOfBounds)

	// A nested window cannot exceed its immediate parent
	_, err = outer.Slice(24, 16)
	require.ErrorIs(t, err, ErrOutOfBounds)

	sv, ok := inner.(*SubRegion)
	require.True(t, ok)
	require.Equal(t, int64(8), sv.Offset())
	require.Same(t, Region(outer), sv.Parent())
}

func TestViewReadWriteAt(t *testing.T) {
	r := checkedBlock(t, 32)
	v, err := r.Slice(8, 16)
	require.NoError(t, err)

	payload := []byte{1, 2, 3, 4}
	n, err := v.WriteAt(payload, 4)
	require.NoError(t, err)
	require.Equal(t, 4, n)

	got, err := r.Bytes(12, 4)
	require.NoError(t, err)
	require.Equal(t, payload, got)

	back := make([]byte, 4)
	_, err = v.ReadAt(back, 4)
	require.NoError(t, err)
	require.Equal(t, payload, back)

	_, err = v.WriteAt(make([]byte, 4), 14)
	require.ErrorIs(t, err, ErrOutOfBounds)
}

func TestViewSetAndBytes(t *testing.T) {
	r := checkedBlock(t, 16)
	require.NoError(t, r.SetAll(0xEE))

	v, err := r.Slice(4, 8)
	require.NoError(t, err)
	require.NoError(t, v.Set(0, 8, 0x00))

	// Only the window changed
	b, err := r.Byte(3)
	require.NoError(t, err)
	require.Equal(t, byte(0xEE), b)
	b, err = r.Byte(4)
	require.NoError(t, err)
	require.Equal(t, byte(0x00), b)
	b, err = r.Byte(12)
	require.NoError(t, err)
	require.Equal(t, byte(0xEE), b)

	data, err := v.Bytes(0, 8)
	require.NoError(t, err)
	require.Equal(t, make([]byte, 8), data)

	err = v.Set(4, 8, 0xAA)
	require.ErrorIs(t, err, ErrOutOfBounds)
}
