package buf

import (
	"math"
	"testing"
)

func TestAddOverflowSafe(t *testing.T) {
	if sum, ok := AddOverflowSafe(10, 5); !ok || sum != 15 {
		t.Fatalf("AddOverflowSafe(10,5)=%d,%v want 15,true", sum, ok)
	}
	if _, ok := AddOverflowSafe(math.MaxInt64, 1); ok {
		t.Fatalf("expected overflow when adding to MaxInt64")
	}
	if _, ok := AddOverflowSafe(math.MinInt64, -1); ok {
		t.Fatalf("expected underflow when subtracting from MinInt64")
	}
}

func TestMulOverflowSafe(t *testing.T) {
	if got, ok := MulOverflowSafe(3, 7); !ok || got != 21 {
		t.Fatalf("MulOverflowSafe(3,7)=%d,%v want 21,true", got, ok)
	}
	if got, ok := MulOverflowSafe(0, math.MaxInt64); !ok || got != 0 {
		t.Fatalf("MulOverflowSafe(0,max)=%d,%v want 0,true", got, ok)
	}
	if _, ok := MulOverflowSafe(math.MaxInt64, 2); ok {
		t.Fatalf("expected overflow for MaxInt64*2")
	}
	if _, ok := MulOverflowSafe(math.MaxInt64/2+1, 2); ok {
		t.Fatalf("expected overflow just past MaxInt64")
	}
}

func TestAddOverflowSafeU64(t *testing.T) {
	if sum, ok := AddOverflowSafeU64(1, 2); !ok || sum != 3 {
		t.Fatalf("AddOverflowSafeU64(1,2)=%d,%v want 3,true", sum, ok)
	}
	if _, ok := AddOverflowSafeU64(math.MaxUint64, 1); ok {
		t.Fatalf("expected wrap when adding to MaxUint64")
	}
	if sum, ok := AddOverflowSafeU64(math.MaxUint64, 0); !ok || sum != math.MaxUint64 {
		t.Fatalf("adding zero must never wrap")
	}
}

func TestCheckRange(t *testing.T) {
	end, err := CheckRange(100, 10, 20)
	if err != nil || end != 30 {
		t.Fatalf("CheckRange(100,10,20)=%d,%v want 30,nil", end, err)
	}
	if _, err := CheckRange(100, -1, 5); err == nil {
		t.Fatalf("expected error for negative offset")
	}
	if _, err := CheckRange(100, 5, -1); err == nil {
		t.Fatalf("expected error for negative length")
	}
	if _, err := CheckRange(100, 90, 11); err == nil {
		t.Fatalf("expected error for range past end")
	}
	if _, err := CheckRange(100, math.MaxInt64, 1); err == nil {
		t.Fatalf("expected error for overflowing range")
	}

	// Zero-length ranges are valid anywhere up to and including size.
	if _, err := CheckRange(100, 100, 0); err != nil {
		t.Fatalf("zero-length range at end should be valid: %v", err)
	}
	if _, err := CheckRange(100, 101, 0); err == nil {
		t.Fatalf("zero-length range past end should fail")
	}
}

func TestHasRange(t *testing.T) {
	if !HasRange(8, 0, 8) {
		t.Fatalf("HasRange(8,0,8) should be true")
	}
	if HasRange(8, 1, 8) {
		t.Fatalf("HasRange(8,1,8) should be false")
	}
}

func TestAddrEndOverflows(t *testing.T) {
	if AddrEndOverflows(0x1000, 0, 16) {
		t.Fatalf("small range should not overflow")
	}
	if !AddrEndOverflows(math.MaxUint64-4, 0, 8) {
		t.Fatalf("range past 2^64 should overflow")
	}
	if !AddrEndOverflows(math.MaxUint64, 1, 0) {
		t.Fatalf("offset wrap should overflow")
	}
	if AddrEndOverflows(math.MaxUint64, 0, 0) {
		t.Fatalf("empty range at top of address space should not overflow")
	}
}
