package mem

import (
	"fmt"

	"github.com/memkit/memkit/internal/buf"
	"github.com/memkit/memkit/mem/alloc"
)

// RawAllocation owns a block of raw memory obtained from an alloc.Allocator.
// Every accessor funnels through CheckBounds before touching memory;
// instances built with AllocateUnchecked skip that policy entirely and trade
// all safety for speed.
//
// A RawAllocation is not safe for concurrent use. The released flag only
// guards sequential misuse (stale instances after Free or Reallocate), never
// races.
type RawAllocation struct {
	a        alloc.Allocator
	addr     uintptr
	size     int64
	check    bool
	released bool
}

var _ Allocation = (*RawAllocation)(nil)

// Allocate reserves size bytes from a and wraps them in a bounds-checked
// allocation.
func Allocate(a alloc.Allocator, size int64) (*RawAllocation, error) {
	return allocate(a, size, true)
}

// AllocateUnchecked reserves size bytes from a and wraps them with bounds,
// overflow, and release checking disabled. Out-of-range accesses and
// use-after-free on the result are undefined behavior; the caller asserts it
// has proven safety externally.
func AllocateUnchecked(a alloc.Allocator, size int64) (*RawAllocation, error) {
	return allocate(a, size, false)
}

func allocate(a alloc.Allocator, size int64, check bool) (*RawAllocation, error) {
	if a == nil {
		return nil, ErrNilAllocator
	}
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadSize, size)
	}
	addr, err := a.Allocate(size)
	if err != nil {
		return nil, err
	}
	r, err := NewRaw(a, addr, size, check)
	if err != nil {
		_ = a.Free(addr)
		return nil, err
	}
	return r, nil
}

// NewRaw wraps an existing block at addr, owned by allocator a. The block
// must have been handed out by a, or Free and Reallocate will run against
// the wrong backend. Fails on a nil allocator, a zero address, a non-positive
// size, or an address range that wraps the 64-bit space.
func NewRaw(a alloc.Allocator, addr uintptr, size int64, checkBounds bool) (*RawAllocation, error) {
	if a == nil {
		return nil, ErrNilAllocator
	}
	if addr == 0 {
		return nil, ErrBadAddress
	}
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadSize, size)
	}
	if _, ok := buf.AddOverflowSafeU64(uint64(addr), uint64(size)); !ok {
		return nil, fmt.Errorf("%w: address=0x%X size=%d", ErrAddressOverflow, addr, size)
	}
	return &RawAllocation{a: a, addr: addr, size: size, check: checkBounds}, nil
}

// Address returns the absolute base address of the block.
func (r *RawAllocation) Address() uintptr { return r.addr }

// Size returns the block length in bytes.
func (r *RawAllocation) Size() int64 { return r.size }

// Checked reports whether this instance validates accesses.
func (r *RawAllocation) Checked() bool { return r.check }

// Released reports whether the block was freed or invalidated by Reallocate.
func (r *RawAllocation) Released() bool { return r.released }

// Key returns this allocation's identity-by-location. See Key.
func (r *RawAllocation) Key() Key { return Key{Address: r.addr, Size: r.size} }

// Equal reports whether other covers the same address range. Checking mode
// and released state do not participate.
func (r *RawAllocation) Equal(other Allocation) bool {
	if other == nil {
		return false
	}
	return r.addr == other.Address() && r.size == other.Size()
}

func (r *RawAllocation) String() string {
	if !r.check {
		return fmt.Sprintf("RawAllocation{address: 0x%X, size: %d, checks disabled}", r.addr, r.size)
	}
	return fmt.Sprintf("RawAllocation{address: 0x%X, size: %d}", r.addr, r.size)
}

func (r *RawAllocation) checkReleased() error {
	if r.check && r.released {
		return fmt.Errorf("%w: address=0x%X size=%d", ErrReleased, r.addr, r.size)
	}
	return nil
}

// CheckBounds runs the access policy for [off, off+n): released state first,
// then range, then 64-bit address arithmetic. A no-op on unchecked instances.
func (r *RawAllocation) CheckBounds(off, n int64) error {
	if !r.check {
		return nil
	}
	if err := r.checkReleased(); err != nil {
		return err
	}
	if err := checkRange(r.size, off, n); err != nil {
		return err
	}
	return checkAddrEnd(r.addr, off, n)
}

// InBounds reports whether [off, off+n) lies inside the block without
// wrapping the address space. Pure arithmetic: released state and the
// checking mode do not participate.
func (r *RawAllocation) InBounds(off, n int64) bool {
	return buf.HasRange(r.size, off, n) && !buf.AddrEndOverflows(uint64(r.addr), off, n)
}

// Free releases the block. The released flag is set before the allocator
// call, so the instance is dead even if the backend reports a failure.
func (r *RawAllocation) Free() error {
	if err := r.checkReleased(); err != nil {
		return err
	}
	r.released = true
	return r.a.Free(r.addr)
}

// Reallocate resizes the block. An unchanged size is a no-op returning the
// same instance. Zero frees the block and returns the shared Null. Any other
// positive size moves the contents to a fresh block, marks this instance
// released (the old address is meaningless even if the backend did not move
// the block), and returns a new owner inheriting the checking mode.
func (r *RawAllocation) Reallocate(newSize int64) (Allocation, error) {
	if err := r.checkReleased(); err != nil {
		return nil, err
	}
	if newSize < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadSize, newSize)
	}
	if newSize == r.size {
		return r, nil
	}
	if newSize == 0 {
		if err := r.Free(); err != nil {
			return nil, err
		}
		return Null, nil
	}
	newAddr, err := r.a.Reallocate(r.addr, newSize)
	if err != nil {
		return nil, err
	}
	r.released = true
	return &RawAllocation{a: r.a, addr: newAddr, size: newSize, check: r.check}, nil
}

// Byte reads the byte at off.
func (r *RawAllocation) Byte(off int64) (byte, error) {
	if err := r.CheckBounds(off, 1); err != nil {
		return 0, err
	}
	return alloc.ReadU8(r.addr + uintptr(off)), nil
}

// PutByte writes v at off.
func (r *RawAllocation) PutByte(off int64, v byte) error {
	if err := r.CheckBounds(off, 1); err != nil {
		return err
	}
	alloc.PutU8(r.addr+uintptr(off), v)
	return nil
}

// Int16 reads the 16-bit signed value at off.
func (r *RawAllocation) Int16(off int64) (int16, error) {
	if err := r.CheckBounds(off, 2); err != nil {
		return 0, err
	}
	return alloc.ReadI16(r.addr + uintptr(off)), nil
}

// PutInt16 writes v at off.
func (r *RawAllocation) PutInt16(off int64, v int16) error {
	if err := r.CheckBounds(off, 2); err != nil {
		return err
	}
	alloc.PutI16(r.addr+uintptr(off), v)
	return nil
}

// Uint16 reads the 16-bit unsigned value (code unit) at off.
func (r *RawAllocation) Uint16(off int64) (uint16, error) {
	if err := r.CheckBounds(off, 2); err != nil {
		return 0, err
	}
	return alloc.ReadU16(r.addr + uintptr(off)), nil
}

// PutUint16 writes v at off.
func (r *RawAllocation) PutUint16(off int64, v uint16) error {
	if err := r.CheckBounds(off, 2); err != nil {
		return err
	}
	alloc.PutU16(r.addr+uintptr(off), v)
	return nil
}

// Int32 reads the 32-bit signed value at off.
func (r *RawAllocation) Int32(off int64) (int32, error) {
	if err := r.CheckBounds(off, 4); err != nil {
		return 0, err
	}
	return alloc.ReadI32(r.addr + uintptr(off)), nil
}

// PutInt32 writes v at off.
func (r *RawAllocation) PutInt32(off int64, v int32) error {
	if err := r.CheckBounds(off, 4); err != nil {
		return err
	}
	alloc.PutI32(r.addr+uintptr(off), v)
	return nil
}

// Uint32 reads the 32-bit unsigned value at off.
func (r *RawAllocation) Uint32(off int64) (uint32, error) {
	if err := r.CheckBounds(off, 4); err != nil {
		return 0, err
	}
	return alloc.ReadU32(r.addr + uintptr(off)), nil
}

// PutUint32 writes v at off.
func (r *RawAllocation) PutUint32(off int64, v uint32) error {
	if err := r.CheckBounds(off, 4); err != nil {
		return err
	}
	alloc.PutU32(r.addr+uintptr(off), v)
	return nil
}

// Int64 reads the 64-bit signed value at off.
func (r *RawAllocation) Int64(off int64) (int64, error) {
	if err := r.CheckBounds(off, 8); err != nil {
		return 0, err
	}
	return alloc.ReadI64(r.addr + uintptr(off)), nil
}

// PutInt64 writes v at off.
func (r *RawAllocation) PutInt64(off int64, v int64) error {
	if err := r.CheckBounds(off, 8); err != nil {
		return err
	}
	alloc.PutI64(r.addr+uintptr(off), v)
	return nil
}

// Uint64 reads the 64-bit unsigned value at off.
func (r *RawAllocation) Uint64(off int64) (uint64, error) {
	if err := r.CheckBounds(off, 8); err != nil {
		return 0, err
	}
	return alloc.ReadU64(r.addr + uintptr(off)), nil
}

// PutUint64 writes v at off.
func (r *RawAllocation) PutUint64(off int64, v uint64) error {
	if err := r.CheckBounds(off, 8); err != nil {
		return err
	}
	alloc.PutU64(r.addr+uintptr(off), v)
	return nil
}

// Float32 reads the 32-bit float at off.
func (r *RawAllocation) Float32(off int64) (float32, error) {
	if err := r.CheckBounds(off, 4); err != nil {
		return 0, err
	}
	return alloc.ReadF32(r.addr + uintptr(off)), nil
}

// PutFloat32 writes v at off.
func (r *RawAllocation) PutFloat32(off int64, v float32) error {
	if err := r.CheckBounds(off, 4); err != nil {
		return err
	}
	alloc.PutF32(r.addr+uintptr(off), v)
	return nil
}

// Float64 reads the 64-bit float at off.
func (r *RawAllocation) Float64(off int64) (float64, error) {
	if err := r.CheckBounds(off, 8); err != nil {
		return 0, err
	}
	return alloc.ReadF64(r.addr + uintptr(off)), nil
}

// PutFloat64 writes v at off.
func (r *RawAllocation) PutFloat64(off int64, v float64) error {
	if err := r.CheckBounds(off, 8); err != nil {
		return err
	}
	alloc.PutF64(r.addr+uintptr(off), v)
	return nil
}

// ReadAt copies len(p) bytes starting at off into p.
func (r *RawAllocation) ReadAt(p []byte, off int64) (int, error) {
	if err := r.CheckBounds(off, int64(len(p))); err != nil {
		return 0, err
	}
	alloc.TransferOut(r.addr+uintptr(off), p)
	return len(p), nil
}

// WriteAt copies len(p) bytes from p into the block starting at off.
func (r *RawAllocation) WriteAt(p []byte, off int64) (int, error) {
	if err := r.CheckBounds(off, int64(len(p))); err != nil {
		return 0, err
	}
	alloc.TransferIn(r.addr+uintptr(off), p)
	return len(p), nil
}

// Bytes returns a fresh copy of n bytes starting at off.
func (r *RawAllocation) Bytes(off, n int64) ([]byte, error) {
	if err := r.CheckBounds(off, n); err != nil {
		return nil, err
	}
	if n < 0 {
		// A managed slice cannot have a negative length even when this
		// instance skips memory checks.
		return nil, fmt.Errorf("%w: %d", ErrBadSize, n)
	}
	p := make([]byte, n)
	alloc.TransferOut(r.addr+uintptr(off), p)
	return p, nil
}

// Set fills [off, off+n) with v.
func (r *RawAllocation) Set(off, n int64, v byte) error {
	if err := r.CheckBounds(off, n); err != nil {
		return err
	}
	alloc.SetMemory(r.addr+uintptr(off), n, v)
	return nil
}

// SetAll fills the entire block with v. The range is the block itself, so
// only the released state is checked.
func (r *RawAllocation) SetAll(v byte) error {
	if err := r.checkReleased(); err != nil {
		return err
	}
	alloc.SetMemory(r.addr, r.size, v)
	return nil
}

// Slice returns a view over [off, off+n).
func (r *RawAllocation) Slice(off, n int64) (Region, error) {
	return newSubRegion(r, off, n)
}

// SliceFrom returns a view from off to the end of the block. The offset must
// address at least one byte.
func (r *RawAllocation) SliceFrom(off int64) (Region, error) {
	if err := r.CheckBounds(off, 1); err != nil {
		return nil, err
	}
	return newSubRegion(r, off, r.size-off)
}

// CopyTo copies n bytes from this block at srcOff into dst at dstOff. A
// destination exposing a raw address gets a single raw copy after both sides
// pass their own bounds policy; any other Region goes byte by byte.
func (r *RawAllocation) CopyTo(srcOff int64, dst Region, dstOff, n int64) error {
	raw, ok := dst.(Raw)
	if !ok {
		return copyByteByByte(r, srcOff, dst, dstOff, n)
	}
	if err := r.CheckBounds(srcOff, n); err != nil {
		return err
	}
	if err := raw.CheckBounds(dstOff, n); err != nil {
		return err
	}
	alloc.CopyMemory(raw.Address()+uintptr(dstOff), r.addr+uintptr(srcOff), n)
	return nil
}

// CopyToAddress copies n bytes from this block at off to an absolute raw
// address, bypassing the Region abstraction. Only the source side can be
// validated; the destination is the caller's problem.
func (r *RawAllocation) CopyToAddress(off int64, dst uintptr, n int64) error {
	if err := r.CheckBounds(off, n); err != nil {
		return err
	}
	alloc.CopyMemory(dst, r.addr+uintptr(off), n)
	return nil
}

// Compare lexicographically compares n bytes of this block at srcOff with
// dst at dstOff, always through the generic byte-by-byte path so any Region
// implementation works as the other side.
func (r *RawAllocation) Compare(srcOff int64, dst Region, dstOff, n int64) (int, error) {
	return compareByteByByte(r, srcOff, dst, dstOff, n)
}
