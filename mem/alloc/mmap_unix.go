//go:build linux || darwin || freebsd

package alloc

import (
	"fmt"
	"math"
	"os"
	"sync"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Mmap allocates blocks as anonymous private mappings. Mapped pages sit
// outside the Go heap and never move; the kernel rounds each block up to
// whole pages and zeroes it.
type Mmap struct {
	mu     sync.Mutex
	blocks map[uintptr][]byte
	stats  Stats
}

var _ Allocator = (*Mmap)(nil)

// NewMmap returns an allocator backed by anonymous memory mappings. On
// platforms without mmap the constructor fails with ErrUnsupported.
func NewMmap() (*Mmap, error) {
	return &Mmap{blocks: make(map[uintptr][]byte)}, nil
}

// Allocate maps a zeroed block of size bytes.
func (m *Mmap) Allocate(size int64) (uintptr, error) {
	if size <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrBadSize, size)
	}
	if size > math.MaxInt {
		return 0, fmt.Errorf("%w: %d bytes exceeds the platform mapping limit", ErrOutOfMemory, size)
	}
	data, err := unix.Mmap(
		-1,
		0,
		int(size),
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANON|unix.MAP_PRIVATE,
	)
	if err != nil {
		return 0, fmt.Errorf("%w: mmap %d bytes: %v", ErrOutOfMemory, size, err)
	}
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(data)))

	m.mu.Lock()
	m.blocks[addr] = data
	m.stats.AllocCalls++
	m.stats.BytesAllocated += size
	m.stats.LiveBlocks++
	m.stats.LiveBytes += size
	m.mu.Unlock()

	if logAlloc {
		fmt.Fprintf(os.Stderr, "[MMAP] alloc addr=0x%X size=%d\n", addr, size)
	}
	return addr, nil
}

// Free unmaps the block at addr.
func (m *Mmap) Free(addr uintptr) error {
	m.mu.Lock()
	data, ok := m.blocks[addr]
	if !ok {
		m.mu.Unlock()
		return fmt.Errorf("%w: 0x%X", ErrBadAddress, addr)
	}
	delete(m.blocks, addr)
	m.stats.FreeCalls++
	m.stats.BytesFreed += int64(len(data))
	m.stats.LiveBlocks--
	m.stats.LiveBytes -= int64(len(data))
	m.mu.Unlock()

	if err := unix.Munmap(data); err != nil {
		return fmt.Errorf("alloc: munmap failed: %w", err)
	}
	if logAlloc {
		fmt.Fprintf(os.Stderr, "[MMAP] free addr=0x%X size=%d\n", addr, len(data))
	}
	return nil
}

// Reallocate resizes the mapping at addr to newSize bytes, preserving the
// leading min(old, new) bytes. On linux the kernel remaps in place when it
// can; elsewhere the block is remapped by copy. Either way it may move.
func (m *Mmap) Reallocate(addr uintptr, newSize int64) (uintptr, error) {
	if newSize <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrBadSize, newSize)
	}
	if newSize > math.MaxInt {
		return 0, fmt.Errorf("%w: %d bytes exceeds the platform mapping limit", ErrOutOfMemory, newSize)
	}

	m.mu.Lock()
	old, ok := m.blocks[addr]
	if !ok {
		m.mu.Unlock()
		return 0, fmt.Errorf("%w: 0x%X", ErrBadAddress, addr)
	}
	data, err := remap(old, int(newSize))
	if err != nil {
		m.mu.Unlock()
		return 0, fmt.Errorf("%w: remap to %d bytes: %v", ErrOutOfMemory, newSize, err)
	}
	newAddr := uintptr(unsafe.Pointer(unsafe.SliceData(data)))
	delete(m.blocks, addr)
	m.blocks[newAddr] = data
	m.stats.ReallocCalls++
	m.stats.BytesAllocated += newSize
	m.stats.BytesFreed += int64(len(old))
	m.stats.LiveBytes += newSize - int64(len(old))
	m.mu.Unlock()

	if logAlloc {
		fmt.Fprintf(os.Stderr, "[MMAP] realloc addr=0x%X size=%d -> addr=0x%X size=%d\n",
			addr, len(old), newAddr, newSize)
	}
	return newAddr, nil
}

// Stats returns cumulative counters for this allocator.
func (m *Mmap) Stats() Stats {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stats
}
