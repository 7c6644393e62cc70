package buf

import (
	"fmt"
	"math"
)

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int64.
func AddOverflowSafe(a, b int64) (int64, bool) {
	switch {
	case b > 0 && a > math.MaxInt64-b:
		return 0, false
	case b < 0 && a < math.MinInt64-b:
		return 0, false
	default:
		return a + b, true
	}
}

// MulOverflowSafe multiplies a and b, returning ok = false when the result would overflow int64.
// This is essential for count * elementSize calculations.
func MulOverflowSafe(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	// For positive numbers, check if result would overflow
	if a > 0 && b > 0 {
		if a > math.MaxInt64/b {
			return 0, false
		}
	}
	// For negative numbers
	if a < 0 && b < 0 {
		if a < math.MaxInt64/b {
			return 0, false
		}
	}
	// Mixed signs - check against MinInt64
	if a > 0 && b < 0 {
		if b < math.MinInt64/a {
			return 0, false
		}
	}
	if a < 0 && b > 0 {
		if a < math.MinInt64/b {
			return 0, false
		}
	}
	return a * b, true
}

// AddOverflowSafeU64 adds a and b as unsigned 64-bit quantities, returning
// ok = false when the sum wraps past 2^64. Raw addresses live in unsigned
// 64-bit space, so wrap detection is a simple sum < a comparison.
func AddOverflowSafeU64(a, b uint64) (uint64, bool) {
	sum := a + b
	if sum < a {
		return 0, false
	}
	return sum, true
}

// CheckRange validates that the byte range [offset, offset+length) fits in a
// region of size bytes. Returns the end offset if valid, or an error describing
// the specific failure (overflow or out of bounds).
//
// This is the recommended way to validate a range before touching memory:
//
//	end, err := buf.CheckRange(r.Size(), offset, length)
//	if err != nil {
//	    return fmt.Errorf("region: %w", err)
//	}
//	// Safe to access from offset to end
func CheckRange(size, offset, length int64) (int64, error) {
	if offset < 0 {
		return 0, fmt.Errorf("negative offset: %d", offset)
	}
	if length < 0 {
		return 0, fmt.Errorf("negative length: %d", length)
	}

	// Check offset + length for overflow
	end, ok := AddOverflowSafe(offset, length)
	if !ok {
		return 0, fmt.Errorf("overflow: offset=%d + length=%d", offset, length)
	}

	// Check bounds
	if end > size {
		return 0, fmt.Errorf("bounds: end=%d > size=%d", end, size)
	}

	return end, nil
}

// HasRange reports whether [offset, offset+length) fits in a region of size
// bytes. It is the non-failing twin of CheckRange.
func HasRange(size, offset, length int64) bool {
	_, err := CheckRange(size, offset, length)
	return err == nil
}

// AddrEndOverflows reports whether addr + offset + length wraps past the
// 64-bit address space. Callers are expected to have validated the range with
// CheckRange first, so offset and length are non-negative here.
func AddrEndOverflows(addr uint64, offset, length int64) bool {
	end, ok := AddOverflowSafeU64(addr, uint64(offset))
	if !ok {
		return true
	}
	_, ok = AddOverflowSafeU64(end, uint64(length))
	return !ok
}

