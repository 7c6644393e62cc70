package alloc

import "errors"

var (
	// ErrOutOfMemory indicates the backend could not satisfy an allocation.
	ErrOutOfMemory = errors.New("alloc: out of memory")

	// ErrBadAddress indicates an address that does not refer to a live block
	// of this allocator.
	ErrBadAddress = errors.New("alloc: address does not refer to a live block")

	// ErrBadSize indicates a non-positive allocation size.
	ErrBadSize = errors.New("alloc: size must be positive")

	// ErrUnsupported indicates a backend that is not available on this
	// platform or in this build.
	ErrUnsupported = errors.New("alloc: backend not supported in this build")
)
