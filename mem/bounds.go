package mem

import (
	"fmt"

	"github.com/memkit/memkit/internal/buf"
)

// checkRange validates [off, off+n) against a region of size bytes, reporting
// the attempted range alongside the size on failure.
func checkRange(size, off, n int64) error {
	if _, err := buf.CheckRange(size, off, n); err != nil {
		return fmt.Errorf("%w: offset=%d length=%d size=%d", ErrOutOfBounds, off, n, size)
	}
	return nil
}

// checkAddrEnd validates that addr + off + n stays inside the 64-bit address
// space. Range validation runs first, so off and n are non-negative here.
// Raw addresses are unsigned 64-bit quantities; naive signed addition can
// wrap, pass a size check, and still point outside the block.
func checkAddrEnd(addr uintptr, off, n int64) error {
	if buf.AddrEndOverflows(uint64(addr), off, n) {
		return fmt.Errorf("%w: address=0x%X offset=%d length=%d", ErrAddressOverflow, addr, off, n)
	}
	return nil
}

// copyByteByByte moves n bytes between two regions through the generic Region
// contract, one byte at a time. Each access runs the bounds policy of its own
// side, so the copy stops at the first failing byte and may leave a partial
// write behind. This is the portable slow path for region implementations
// that expose no raw address.
func copyByteByByte(src Region, srcOff int64, dst Region, dstOff, n int64) error {
	for i := int64(0); i < n; i++ {
		b, err := src.Byte(srcOff + i)
		if err != nil {
			return err
		}
		if err := dst.PutByte(dstOff+i, b); err != nil {
			return err
		}
	}
	return nil
}

// compareByteByByte compares n bytes of src and dst as unsigned bytes,
// returning <0, 0, >0 in the manner of bytes.Compare.
func compareByteByByte(src Region, srcOff int64, dst Region, dstOff, n int64) (int, error) {
	for i := int64(0); i < n; i++ {
		a, err := src.Byte(srcOff + i)
		if err != nil {
			return 0, err
		}
		b, err := dst.Byte(dstOff + i)
		if err != nil {
			return 0, err
		}
		switch {
		case a < b:
			return -1, nil
		case a > b:
			return 1, nil
		}
	}
	return 0, nil
}
