//go:build !cgo

package alloc

// CMalloc requires cgo; this build has it disabled. NewCMalloc reports
// ErrUnsupported. Use NewHeap or NewMmap instead.
type CMalloc struct{}

var _ Allocator = (*CMalloc)(nil)

// NewCMalloc fails in pure-Go builds.
func NewCMalloc() (*CMalloc, error) { return nil, ErrUnsupported }

func (c *CMalloc) Allocate(size int64) (uintptr, error) { return 0, ErrUnsupported }

func (c *CMalloc) Free(addr uintptr) error { return ErrUnsupported }

func (c *CMalloc) Reallocate(addr uintptr, newSize int64) (uintptr, error) {
	return 0, ErrUnsupported
}

func (c *CMalloc) Stats() Stats { return Stats{} }
