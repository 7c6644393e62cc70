package alloc

import (
	"fmt"
	"math"
	"os"
	"sync"
	"unsafe"
)

// Heap allocates blocks from the Go heap and pins them in a registry keyed by
// base address. The Go collector does not move heap objects, so an address
// stays valid until Free or Reallocate drops the registry entry and the
// backing array becomes collectable. This is the portable default backend.
//
// Unlike a host malloc, blocks from this backend come zeroed.
type Heap struct {
	mu     sync.Mutex
	blocks map[uintptr][]byte
	stats  Stats
}

var _ Allocator = (*Heap)(nil)

// NewHeap returns an allocator backed by the Go heap.
func NewHeap() *Heap {
	return &Heap{blocks: make(map[uintptr][]byte)}
}

// Allocate reserves a zeroed block of size bytes. The runtime aborts the
// process when the heap is truly exhausted, so ErrOutOfMemory from this
// backend only reports sizes the platform cannot represent.
func (h *Heap) Allocate(size int64) (uintptr, error) {
	if size <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrBadSize, size)
	}
	if size > math.MaxInt {
		return 0, fmt.Errorf("%w: %d bytes exceeds the platform slice limit", ErrOutOfMemory, size)
	}
	b := make([]byte, size)
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(b)))

	h.mu.Lock()
	h.blocks[addr] = b
	h.stats.AllocCalls++
	h.stats.BytesAllocated += size
	h.stats.LiveBlocks++
	h.stats.LiveBytes += size
	h.mu.Unlock()

	if logAlloc {
		fmt.Fprintf(os.Stderr, "[HEAP] alloc addr=0x%X size=%d\n", addr, size)
	}
	return addr, nil
}

// Free drops the block at addr from the registry, letting the collector
// reclaim it.
func (h *Heap) Free(addr uintptr) error {
	h.mu.Lock()
	b, ok := h.blocks[addr]
	if !ok {
		h.mu.Unlock()
		return fmt.Errorf("%w: 0x%X", ErrBadAddress, addr)
	}
	delete(h.blocks, addr)
	h.stats.FreeCalls++
	h.stats.BytesFreed += int64(len(b))
	h.stats.LiveBlocks--
	h.stats.LiveBytes -= int64(len(b))
	h.mu.Unlock()

	if logAlloc {
		fmt.Fprintf(os.Stderr, "[HEAP] free addr=0x%X size=%d\n", addr, len(b))
	}
	return nil
}

// Reallocate moves the block at addr to a fresh backing array of newSize
// bytes, preserving the leading min(old, new) bytes. The address always
// changes with this backend.
func (h *Heap) Reallocate(addr uintptr, newSize int64) (uintptr, error) {
	if newSize <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrBadSize, newSize)
	}
	if newSize > math.MaxInt {
		return 0, fmt.Errorf("%w: %d bytes exceeds the platform slice limit", ErrOutOfMemory, newSize)
	}

	h.mu.Lock()
	old, ok := h.blocks[addr]
	if !ok {
		h.mu.Unlock()
		return 0, fmt.Errorf("%w: 0x%X", ErrBadAddress, addr)
	}
	nb := make([]byte, newSize)
	copy(nb, old)
	newAddr := uintptr(unsafe.Pointer(unsafe.SliceData(nb)))
	delete(h.blocks, addr)
	h.blocks[newAddr] = nb
	h.stats.ReallocCalls++
	h.stats.BytesAllocated += newSize
	h.stats.BytesFreed += int64(len(old))
	h.stats.LiveBytes += newSize - int64(len(old))
	h.mu.Unlock()

	if logAlloc {
		fmt.Fprintf(os.Stderr, "[HEAP] realloc addr=0x%X size=%d -> addr=0x%X size=%d\n",
			addr, len(old), newAddr, newSize)
	}
	return newAddr, nil
}

// Stats returns cumulative counters for this allocator.
func (h *Heap) Stats() Stats {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.stats
}
