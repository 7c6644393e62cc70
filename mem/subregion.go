package mem

import (
	"fmt"

	"github.com/memkit/memkit/internal/buf"
)

// SubRegion is a window into a parent Region. It owns no memory and has no
// lifecycle of its own: every operation validates against the window,
// translates the offset, and delegates, so the parent's released state and
// checking mode keep applying. Once the parent is released, a checked access
// through the view fails exactly as a direct access on the parent would.
//
// The parent must outlive the view; nothing enforces that.
type SubRegion struct {
	parent Region
	off    int64
	size   int64
}

var _ Region = (*SubRegion)(nil)

func newSubRegion(parent Region, off, n int64) (*SubRegion, error) {
	if err := parent.CheckBounds(off, n); err != nil {
		return nil, err
	}
	// An unchecked parent skips the call above, but a view still needs a
	// structurally sane window.
	if off < 0 || n < 0 {
		return nil, fmt.Errorf("%w: offset=%d length=%d size=%d", ErrOutOfBounds, off, n, parent.Size())
	}
	return &SubRegion{parent: parent, off: off, size: n}, nil
}

// Size returns the window length in bytes.
func (s *SubRegion) Size() int64 { return s.size }

// Parent returns the region this view delegates to.
func (s *SubRegion) Parent() Region { return s.parent }

// Offset returns the window's starting offset within the parent.
func (s *SubRegion) Offset() int64 { return s.off }

func (s *SubRegion) String() string {
	return fmt.Sprintf("SubRegion{offset: %d, size: %d}", s.off, s.size)
}

// window validates [off, off+n) against the view itself. The window is the
// view's contract, so it holds even when the owning allocation was built
// unchecked; released state and address math stay the parent's business.
func (s *SubRegion) window(off, n int64) error {
	return checkRange(s.size, off, n)
}

// CheckBounds validates against the window, then lets the parent apply its
// own policy at the translated offset.
func (s *SubRegion) CheckBounds(off, n int64) error {
	if err := s.window(off, n); err != nil {
		return err
	}
	return s.parent.CheckBounds(s.off+off, n)
}

// InBounds reports whether the range stays inside the window and the parent
// agrees at the translated offset.
func (s *SubRegion) InBounds(off, n int64) bool {
	return buf.HasRange(s.size, off, n) && s.parent.InBounds(s.off+off, n)
}

// Byte reads the byte at off within the window.
func (s *SubRegion) Byte(off int64) (byte, error) {
	if err := s.window(off, 1); err != nil {
		return 0, err
	}
	return s.parent.Byte(s.off + off)
}

// PutByte writes v at off within the window.
func (s *SubRegion) PutByte(off int64, v byte) error {
	if err := s.window(off, 1); err != nil {
		return err
	}
	return s.parent.PutByte(s.off+off, v)
}

func (s *SubRegion) Int16(off int64) (int16, error) {
	if err := s.window(off, 2); err != nil {
		return 0, err
	}
	return s.parent.Int16(s.off + off)
}

func (s *SubRegion) PutInt16(off int64, v int16) error {
	if err := s.window(off, 2); err != nil {
		return err
	}
	return s.parent.PutInt16(s.off+off, v)
}

func (s *SubRegion) Uint16(off int64) (uint16, error) {
	if err := s.window(off, 2); err != nil {
		return 0, err
	}
	return s.parent.Uint16(s.off + off)
}

func (s *SubRegion) PutUint16(off int64, v uint16) error {
	if err := s.window(off, 2); err != nil {
		return err
	}
	return s.parent.PutUint16(s.off+off, v)
}

func (s *SubRegion) Int32(off int64) (int32, error) {
	if err := s.window(off, 4); err != nil {
		return 0, err
	}
	return s.parent.Int32(s.off + off)
}

func (s *SubRegion) PutInt32(off int64, v int32) error {
	if err := s.window(off, 4); err != nil {
		return err
	}
	return s.parent.PutInt32(s.off+off, v)
}

func (s *SubRegion) Uint32(off int64) (uint32, error) {
	if err := s.window(off, 4); err != nil {
		return 0, err
	}
	return s.parent.Uint32(s.off + off)
}

func (s *SubRegion) PutUint32(off int64, v uint32) error {
	if err := s.window(off, 4); err != nil {
		return err
	}
	return s.parent.PutUint32(s.off+off, v)
}

func (s *SubRegion) Int64(off int64) (int64, error) {
	if err := s.window(off, 8); err != nil {
		return 0, err
	}
	return s.parent.Int64(s.off + off)
}

func (s *SubRegion) PutInt64(off int64, v int64) error {
	if err := s.window(off, 8); err != nil {
		return err
	}
	return s.parent.PutInt64(s.off+off, v)
}

func (s *SubRegion) Uint64(off int64) (uint64, error) {
	if err := s.window(off, 8); err != nil {
		return 0, err
	}
	return s.parent.Uint64(s.off + off)
}

func (s *SubRegion) PutUint64(off int64, v uint64) error {
	if err := s.window(off, 8); err != nil {
		return err
	}
	return s.parent.PutUint64(s.off+off, v)
}

func (s *SubRegion) Float32(off int64) (float32, error) {
	if err := s.window(off, 4); err != nil {
		return 0, err
	}
	return s.parent.Float32(s.off + off)
}

func (s *SubRegion) PutFloat32(off int64, v float32) error {
	if err := s.window(off, 4); err != nil {
		return err
	}
	return s.parent.PutFloat32(s.off+off, v)
}

func (s *SubRegion) Float64(off int64) (float64, error) {
	if err := s.window(off, 8); err != nil {
		return 0, err
	}
	return s.parent.Float64(s.off + off)
}

func (s *SubRegion) PutFloat64(off int64, v float64) error {
	if err := s.window(off, 8); err != nil {
		return err
	}
	return s.parent.PutFloat64(s.off+off, v)
}

// ReadAt fills p from the window starting at off.
func (s *SubRegion) ReadAt(p []byte, off int64) (int, error) {
	if err := s.window(off, int64(len(p))); err != nil {
		return 0, err
	}
	return s.parent.ReadAt(p, s.off+off)
}

// WriteAt copies p into the window starting at off.
func (s *SubRegion) WriteAt(p []byte, off int64) (int, error) {
	if err := s.window(off, int64(len(p))); err != nil {
		return 0, err
	}
	return s.parent.WriteAt(p, s.off+off)
}

// Bytes returns a fresh copy of n bytes starting at off within the window.
func (s *SubRegion) Bytes(off, n int64) ([]byte, error) {
	if err := s.window(off, n); err != nil {
		return nil, err
	}
	return s.parent.Bytes(s.off+off, n)
}

// Set fills [off, off+n) of the window with v.
func (s *SubRegion) Set(off, n int64, v byte) error {
	if err := s.window(off, n); err != nil {
		return err
	}
	return s.parent.Set(s.off+off, n, v)
}

// Slice returns a nested view over [off, off+n) of this window.
func (s *SubRegion) Slice(off, n int64) (Region, error) {
	return newSubRegion(s, off, n)
}

// SliceFrom returns a nested view from off to the end of this window.
func (s *SubRegion) SliceFrom(off int64) (Region, error) {
	if err := s.CheckBounds(off, 1); err != nil {
		return nil, err
	}
	return newSubRegion(s, off, s.size-off)
}

// CopyTo copies n bytes from the window at srcOff into dst at dstOff. The
// transfer runs through the parent, so a raw-to-raw pair still takes the
// fast path.
func (s *SubRegion) CopyTo(srcOff int64, dst Region, dstOff, n int64) error {
	if err := s.window(srcOff, n); err != nil {
		return err
	}
	return s.parent.CopyTo(s.off+srcOff, dst, dstOff, n)
}

// Compare lexicographically compares n bytes of the window at srcOff with
// dst at dstOff.
func (s *SubRegion) Compare(srcOff int64, dst Region, dstOff, n int64) (int, error) {
	if err := s.window(srcOff, n); err != nil {
		return 0, err
	}
	return s.parent.Compare(s.off+srcOff, dst, dstOff, n)
}
