//go:build cgo

package alloc

/*
#include <stdlib.h>

// Plain wrappers: cgo special-cases C.malloc to abort on failure, while these
// return NULL and let Go surface ErrOutOfMemory.
static void* memkit_malloc(size_t n)            { return malloc(n); }
static void* memkit_realloc(void* p, size_t n)  { return realloc(p, n); }
static void  memkit_free(void* p)               { free(p); }
*/
import "C"

import (
	"fmt"
	"os"
	"sync"
)

// CMalloc allocates with the C library's malloc/realloc/free. Blocks live
// entirely outside the Go heap, so no pinning registry is needed; a size map
// is kept for statistics only. Unlike the Heap and Mmap backends, blocks are
// not zeroed, and a Free or Reallocate on a foreign address is passed
// straight to the C library, exactly as the host allocator would take it.
type CMalloc struct {
	mu    sync.Mutex
	sizes map[uintptr]int64
	stats Stats
}

var _ Allocator = (*CMalloc)(nil)

// NewCMalloc returns an allocator backed by the C library. Requires cgo; in
// pure-Go builds the constructor fails with ErrUnsupported.
func NewCMalloc() (*CMalloc, error) {
	return &CMalloc{sizes: make(map[uintptr]int64)}, nil
}

// Allocate reserves size bytes with malloc. The contents are uninitialized.
func (c *CMalloc) Allocate(size int64) (uintptr, error) {
	if size <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrBadSize, size)
	}
	p := C.memkit_malloc(C.size_t(size))
	if p == nil {
		return 0, fmt.Errorf("%w: malloc %d bytes", ErrOutOfMemory, size)
	}
	addr := uintptr(p)

	c.mu.Lock()
	c.sizes[addr] = size
	c.stats.AllocCalls++
	c.stats.BytesAllocated += size
	c.stats.LiveBlocks++
	c.stats.LiveBytes += size
	c.mu.Unlock()

	if logAlloc {
		fmt.Fprintf(os.Stderr, "[CMALLOC] alloc addr=0x%X size=%d\n", addr, size)
	}
	return addr, nil
}

// Free releases the block at addr with free. Unknown addresses go to the C
// library anyway; double frees are the caller's undefined behavior, as with
// any malloc.
func (c *CMalloc) Free(addr uintptr) error {
	c.mu.Lock()
	size, tracked := c.sizes[addr]
	if tracked {
		delete(c.sizes, addr)
		c.stats.FreeCalls++
		c.stats.BytesFreed += size
		c.stats.LiveBlocks--
		c.stats.LiveBytes -= size
	}
	c.mu.Unlock()

	C.memkit_free(pointer(addr))
	if logAlloc {
		fmt.Fprintf(os.Stderr, "[CMALLOC] free addr=0x%X size=%d\n", addr, size)
	}
	return nil
}

// Reallocate resizes the block at addr with realloc, which preserves the
// leading min(old, new) bytes and may move the block. On failure the old
// block stays valid, per the realloc contract.
func (c *CMalloc) Reallocate(addr uintptr, newSize int64) (uintptr, error) {
	if newSize <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrBadSize, newSize)
	}
	p := C.memkit_realloc(pointer(addr), C.size_t(newSize))
	if p == nil {
		return 0, fmt.Errorf("%w: realloc %d bytes", ErrOutOfMemory, newSize)
	}
	newAddr := uintptr(p)

	c.mu.Lock()
	oldSize, tracked := c.sizes[addr]
	if tracked {
		delete(c.sizes, addr)
	}
	c.sizes[newAddr] = newSize
	c.stats.ReallocCalls++
	c.stats.BytesAllocated += newSize
	c.stats.BytesFreed += oldSize
	c.stats.LiveBytes += newSize - oldSize
	if !tracked {
		c.stats.LiveBlocks++
	}
	c.mu.Unlock()

	if logAlloc {
		fmt.Fprintf(os.Stderr, "[CMALLOC] realloc addr=0x%X size=%d -> addr=0x%X size=%d\n",
			addr, oldSize, newAddr, newSize)
	}
	return newAddr, nil
}

// Stats returns cumulative counters for this allocator.
func (c *CMalloc) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}
