//go:build !linux && !darwin && !freebsd

package alloc

// Mmap is unavailable on this platform; NewMmap reports ErrUnsupported. Use
// NewHeap instead.
type Mmap struct{}

var _ Allocator = (*Mmap)(nil)

// NewMmap fails on platforms without anonymous memory mappings.
func NewMmap() (*Mmap, error) { return nil, ErrUnsupported }

func (m *Mmap) Allocate(size int64) (uintptr, error) { return 0, ErrUnsupported }

func (m *Mmap) Free(addr uintptr) error { return ErrUnsupported }

func (m *Mmap) Reallocate(addr uintptr, newSize int64) (uintptr, error) {
	return 0, ErrUnsupported
}

func (m *Mmap) Stats() Stats { return Stats{} }
