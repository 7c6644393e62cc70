package mem

import "errors"

var (
	// ErrBadAddress indicates a zero base address at construction.
	ErrBadAddress = errors.New("mem: address must be positive")

	// ErrBadSize indicates a non-positive size at construction or a negative
	// size passed to Reallocate.
	ErrBadSize = errors.New("mem: invalid size")

	// ErrNilAllocator indicates construction without a backing allocator.
	ErrNilAllocator = errors.New("mem: nil allocator")

	// ErrAddressOverflow indicates address arithmetic that wraps the 64-bit
	// address space.
	ErrAddressOverflow = errors.New("mem: address range wraps 64-bit space")

	// ErrOutOfBounds indicates an access outside a region's valid range.
	ErrOutOfBounds = errors.New("mem: access out of bounds")

	// ErrReleased indicates use of an allocation after it was freed.
	ErrReleased = errors.New("mem: allocation already released")
)
