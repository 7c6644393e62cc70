package mem

import (
	"fmt"

	"github.com/memkit/memkit/internal/buf"
)

// Null is the shared zero-size allocation. Reallocate(0) returns it in place
// of a freed block. It is never dereferenceable: every access needing at
// least one byte fails out of bounds, zero-length operations succeed as
// no-ops, Free does nothing, and Reallocate fails because the null region
// carries no allocator to draw from.
var Null Allocation = nullAllocation{}

type nullAllocation struct{}

func (nullAllocation) Size() int64      { return 0 }
func (nullAllocation) Address() uintptr { return 0 }

func (nullAllocation) String() string { return "NullAllocation{}" }

// Free on the null allocation releases nothing and always succeeds.
func (nullAllocation) Free() error { return nil }

// Reallocate cannot grow the null allocation: it has no backing allocator.
func (nullAllocation) Reallocate(newSize int64) (Allocation, error) {
	return nil, fmt.Errorf("%w: null allocation cannot be resized", ErrNilAllocator)
}

func (nullAllocation) CheckBounds(off, n int64) error { return checkRange(0, off, n) }

func (nullAllocation) InBounds(off, n int64) bool { return buf.HasRange(0, off, n) }

func (nullAllocation) Byte(off int64) (byte, error)      { return 0, checkRange(0, off, 1) }
func (nullAllocation) PutByte(off int64, v byte) error   { return checkRange(0, off, 1) }
func (nullAllocation) Int16(off int64) (int16, error)    { return 0, checkRange(0, off, 2) }
func (nullAllocation) PutInt16(off int64, v int16) error { return checkRange(0, off, 2) }
func (nullAllocation) Uint16(off int64) (uint16, error)  { return 0, checkRange(0, off, 2) }
func (nullAllocation) PutUint16(off int64, v uint16) error {
	return checkRange(0, off, 2)
}
func (nullAllocation) Int32(off int64) (int32, error)    { return 0, checkRange(0, off, 4) }
func (nullAllocation) PutInt32(off int64, v int32) error { return checkRange(0, off, 4) }
func (nullAllocation) Uint32(off int64) (uint32, error)  { return 0, checkRange(0, off, 4) }
func (nullAllocation) PutUint32(off int64, v uint32) error {
	return checkRange(0, off, 4)
}
func (nullAllocation) Int64(off int64) (int64, error)    { return 0, checkRange(0, off, 8) }
func (nullAllocation) PutInt64(off int64, v int64) error { return checkRange(0, off, 8) }
func (nullAllocation) Uint64(off int64) (uint64, error)  { return 0, checkRange(0, off, 8) }
func (nullAllocation) PutUint64(off int64, v uint64) error {
	return checkRange(0, off, 8)
}
func (nullAllocation) Float32(off int64) (float32, error) { return 0, checkRange(0, off, 4) }
func (nullAllocation) PutFloat32(off int64, v float32) error {
	return checkRange(0, off, 4)
}
func (nullAllocation) Float64(off int64) (float64, error) { return 0, checkRange(0, off, 8) }
func (nullAllocation) PutFloat64(off int64, v float64) error {
	return checkRange(0, off, 8)
}

func (nullAllocation) ReadAt(p []byte, off int64) (int, error) {
	if err := checkRange(0, off, int64(len(p))); err != nil {
		return 0, err
	}
	return 0, nil
}

func (nullAllocation) WriteAt(p []byte, off int64) (int, error) {
	if err := checkRange(0, off, int64(len(p))); err != nil {
		return 0, err
	}
	return 0, nil
}

func (nullAllocation) Bytes(off, n int64) ([]byte, error) {
	if err := checkRange(0, off, n); err != nil {
		return nil, err
	}
	return []byte{}, nil
}

func (nullAllocation) Set(off, n int64, v byte) error { return checkRange(0, off, n) }

func (n nullAllocation) Slice(off, length int64) (Region, error) {
	return newSubRegion(n, off, length)
}

func (n nullAllocation) SliceFrom(off int64) (Region, error) {
	return nil, checkRange(0, off, 1)
}

func (n nullAllocation) CopyTo(srcOff int64, dst Region, dstOff, length int64) error {
	// Only the empty copy can pass; the destination is never touched.
	return checkRange(0, srcOff, length)
}

func (n nullAllocation) Compare(srcOff int64, dst Region, dstOff, length int64) (int, error) {
	return compareByteByByte(n, srcOff, dst, dstOff, length)
}
