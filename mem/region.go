package mem

// Region is the capability contract over a range of raw memory. It is
// implemented by the owning allocation, by sub-region views of it, and by the
// shared Null allocation, so copy and compare can move bytes between any two
// implementations.
//
// All offsets are in bytes from the start of the region. Scalar accessors use
// the host's native in-memory byte order; this is raw memory, not a wire
// format.
type Region interface {
	// Size returns the region's length in bytes.
	Size() int64

	// Typed scalar access. Each accessor validates the type's byte width at
	// off before touching memory.
	Byte(off int64) (byte, error)
	PutByte(off int64, v byte) error
	Int16(off int64) (int16, error)
	PutInt16(off int64, v int16) error
	Uint16(off int64) (uint16, error)
	PutUint16(off int64, v uint16) error
	Int32(off int64) (int32, error)
	PutInt32(off int64, v int32) error
	Uint32(off int64) (uint32, error)
	PutUint32(off int64, v uint32) error
	Int64(off int64) (int64, error)
	PutInt64(off int64, v int64) error
	Uint64(off int64) (uint64, error)
	PutUint64(off int64, v uint64) error
	Float32(off int64) (float32, error)
	PutFloat32(off int64, v float32) error
	Float64(off int64) (float64, error)
	PutFloat64(off int64, v float64) error

	// ReadAt fills p with len(p) bytes starting at off, implementing
	// io.ReaderAt. Bounds violations surface as ErrOutOfBounds rather than
	// io.EOF; there are no short reads.
	ReadAt(p []byte, off int64) (int, error)

	// WriteAt copies len(p) bytes from p into the region starting at off,
	// implementing io.WriterAt.
	WriteAt(p []byte, off int64) (int, error)

	// Bytes returns a fresh copy of n bytes starting at off.
	Bytes(off, n int64) ([]byte, error)

	// Set fills [off, off+n) with v.
	Set(off, n int64, v byte) error

	// Slice returns a view over [off, off+n). SliceFrom covers off to the
	// end. A view beyond the region's range fails at construction, not on
	// first use.
	Slice(off, n int64) (Region, error)
	SliceFrom(off int64) (Region, error)

	// CopyTo copies n bytes from this region at srcOff into dst at dstOff.
	// When both sides expose a raw address the transfer is a single raw
	// copy; otherwise it falls back to byte-by-byte through this interface.
	CopyTo(srcOff int64, dst Region, dstOff, n int64) error

	// Compare lexicographically compares n bytes of this region at srcOff
	// with dst at dstOff as unsigned bytes, returning <0, 0, or >0 in the
	// manner of bytes.Compare.
	Compare(srcOff int64, dst Region, dstOff, n int64) (int, error)

	// InBounds reports whether [off, off+n) lies inside the region and its
	// absolute address math stays inside the 64-bit space. It never fails:
	// it ignores released state and the per-instance checking mode.
	InBounds(off, n int64) bool

	// CheckBounds runs the full access policy for [off, off+n): released
	// state, range, then address overflow. A no-op on instances constructed
	// without bounds checking.
	CheckBounds(off, n int64) error
}

// Raw marks regions whose bytes live at a stable absolute address. CopyTo
// switches to a single raw copy when the destination implements it, instead
// of inspecting concrete types.
type Raw interface {
	Region

	// Address returns the absolute base address of the region's storage.
	Address() uintptr
}

// Allocation is a Region that owns its memory block and controls its
// lifecycle.
type Allocation interface {
	Raw

	// Free releases the block. On a bounds-checked instance a second Free
	// fails with ErrReleased; unchecked instances pass the double free
	// through to the allocator.
	Free() error

	// Reallocate resizes the block. An unchanged size returns the same
	// instance; zero frees the block and returns the shared Null; any other
	// size invalidates this instance and returns a fresh owner at the
	// allocator's new address, inheriting the checking mode.
	Reallocate(newSize int64) (Allocation, error)
}

// Key identifies an allocation by location. Two allocations over the same
// address and size share a Key and therefore compare equal and hash
// identically as map keys, regardless of checking mode or released state.
type Key struct {
	Address uintptr
	Size    int64
}
