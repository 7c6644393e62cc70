package alloc

import "unsafe"

// Address-level loads and stores. These are the raw primitives the mem
// package builds its checked accessors on: no validation happens here, the
// address must be live, and on architectures that enforce alignment it must
// meet the type's natural alignment. Values use the host's native byte order.

// pointer reinterprets addr as a pointer. The address must reference memory
// that stays fixed for the duration of the use; blocks handed out by this
// package qualify (heap blocks are pinned by their registry, mapped and
// C-allocated blocks never move).
func pointer(addr uintptr) unsafe.Pointer {
	return unsafe.Pointer(addr) //nolint:govet // raw address reinterpretation is this package's contract
}

// ReadU8 loads the byte at addr.
func ReadU8(addr uintptr) byte { return *(*byte)(pointer(addr)) }

// PutU8 stores v at addr.
func PutU8(addr uintptr, v byte) { *(*byte)(pointer(addr)) = v }

// ReadI16 loads the 16-bit signed value at addr.
func ReadI16(addr uintptr) int16 { return *(*int16)(pointer(addr)) }

// PutI16 stores v at addr.
func PutI16(addr uintptr, v int16) { *(*int16)(pointer(addr)) = v }

// ReadU16 loads the 16-bit unsigned value at addr.
func ReadU16(addr uintptr) uint16 { return *(*uint16)(pointer(addr)) }

// PutU16 stores v at addr.
func PutU16(addr uintptr, v uint16) { *(*uint16)(pointer(addr)) = v }

// ReadI32 loads the 32-bit signed value at addr.
func ReadI32(addr uintptr) int32 { return *(*int32)(pointer(addr)) }

// PutI32 stores v at addr.
func PutI32(addr uintptr, v int32) { *(*int32)(pointer(addr)) = v }

// ReadU32 loads the 32-bit unsigned value at addr.
func ReadU32(addr uintptr) uint32 { return *(*uint32)(pointer(addr)) }

// PutU32 stores v at addr.
func PutU32(addr uintptr, v uint32) { *(*uint32)(pointer(addr)) = v }

// ReadI64 loads the 64-bit signed value at addr.
func ReadI64(addr uintptr) int64 { return *(*int64)(pointer(addr)) }

// PutI64 stores v at addr.
func PutI64(addr uintptr, v int64) { *(*int64)(pointer(addr)) = v }

// ReadU64 loads the 64-bit unsigned value at addr.
func ReadU64(addr uintptr) uint64 { return *(*uint64)(pointer(addr)) }

// PutU64 stores v at addr.
func PutU64(addr uintptr, v uint64) { *(*uint64)(pointer(addr)) = v }

// ReadF32 loads the 32-bit float at addr.
func ReadF32(addr uintptr) float32 { return *(*float32)(pointer(addr)) }

// PutF32 stores v at addr.
func PutF32(addr uintptr, v float32) { *(*float32)(pointer(addr)) = v }

// ReadF64 loads the 64-bit float at addr.
func ReadF64(addr uintptr) float64 { return *(*float64)(pointer(addr)) }

// PutF64 stores v at addr.
func PutF64(addr uintptr, v float64) { *(*float64)(pointer(addr)) = v }

// SetMemory fills n bytes at addr with v. Negative and zero counts are
// no-ops.
func SetMemory(addr uintptr, n int64, v byte) {
	if n <= 0 {
		return
	}
	s := unsafe.Slice((*byte)(pointer(addr)), n)
	for i := range s {
		s[i] = v
	}
}

// CopyMemory copies n bytes from src to dst with memmove semantics:
// overlapping ranges are safe. Negative and zero counts are no-ops.
func CopyMemory(dst, src uintptr, n int64) {
	if n <= 0 {
		return
	}
	d := unsafe.Slice((*byte)(pointer(dst)), n)
	s := unsafe.Slice((*byte)(pointer(src)), n)
	copy(d, s)
}

// TransferOut copies len(dst) bytes of raw memory at addr into the managed
// buffer dst. Go slice backing arrays do not relocate during a copy, so a
// single copy through an unsafe view suffices; the function exists to keep
// the raw/managed crossing in one audited place.
func TransferOut(addr uintptr, dst []byte) {
	if len(dst) == 0 {
		return
	}
	copy(dst, unsafe.Slice((*byte)(pointer(addr)), len(dst)))
}

// TransferIn copies the managed buffer src into raw memory at addr.
func TransferIn(addr uintptr, src []byte) {
	if len(src) == 0 {
		return
	}
	copy(unsafe.Slice((*byte)(pointer(addr)), len(src)), src)
}
