package alloc

import "os"

// Runtime debug flag for allocation logging - controlled by MEMKIT_LOG_ALLOC env var.
var logAlloc = os.Getenv("MEMKIT_LOG_ALLOC") != ""

// Allocator hands out raw memory blocks identified by their absolute base
// address. It models the host allocator: implementations are safe for
// concurrent use, and a block's address stays valid until Free or Reallocate
// retires it.
type Allocator interface {
	// Allocate reserves a block of size bytes and returns its base address.
	// Fails with ErrBadSize for non-positive sizes and ErrOutOfMemory when
	// the backend cannot satisfy the request.
	Allocate(size int64) (uintptr, error)

	// Free releases the block at addr.
	Free(addr uintptr) error

	// Reallocate resizes the block at addr to newSize bytes, preserving the
	// leading min(old, new) bytes. The block may move; the returned address
	// supersedes addr.
	Reallocate(addr uintptr, newSize int64) (uintptr, error)

	// Stats returns cumulative counters for this allocator.
	Stats() Stats
}

// Stats holds internal allocator statistics.
type Stats struct {
	AllocCalls     int   // Total Allocate() calls that succeeded
	FreeCalls      int   // Total Free() calls that succeeded
	ReallocCalls   int   // Total Reallocate() calls that succeeded
	BytesAllocated int64 // Total bytes handed out (including reallocations)
	BytesFreed     int64 // Total bytes returned (including reallocations)
	LiveBlocks     int   // Blocks currently outstanding
	LiveBytes      int64 // Bytes currently outstanding
}
