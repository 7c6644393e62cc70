// Package alloc provides the raw memory primitives underneath mem: allocator
// backends that hand out blocks by absolute address, and unchecked
// address-level loads and stores.
//
// # Overview
//
// The mem package enforces bounds; this package touches memory. An Allocator
// owns the allocate/free/reallocate lifecycle of raw blocks, and the package
// functions (ReadU8 through PutF64, SetMemory, CopyMemory, TransferIn,
// TransferOut) perform raw access at addresses with no validation of any
// kind.
//
// # Backends
//
// Three implementations of Allocator ship with the package:
//
//   - Heap: blocks from the Go heap, pinned in a registry so their addresses
//     stay valid. Portable default; blocks come zeroed.
//   - Mmap: anonymous private mappings on linux, darwin, and freebsd. Pages
//     live outside the Go heap; resizing uses mremap on linux.
//   - CMalloc: the C library's malloc/realloc/free behind a cgo build tag.
//     Blocks are uninitialized, like any malloc.
//
// Constructors of unavailable backends fail with ErrUnsupported, so callers
// can probe:
//
//	a, err := alloc.NewMmap()
//	if errors.Is(err, alloc.ErrUnsupported) {
//	    a = alloc.NewHeap()
//	}
//
// # Debug Logging
//
// Setting the MEMKIT_LOG_ALLOC environment variable makes every backend
// trace allocate/free/reallocate calls to stderr with addresses and sizes.
//
// # Thread Safety
//
// Allocator implementations are safe for concurrent use; they model the host
// allocator. The raw load/store functions synchronize nothing.
//
// # Related Packages
//
//   - github.com/memkit/memkit/mem: the bounds-checked layer over these
//     primitives
package alloc
