package mem

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf16"

	"golang.org/x/text/encoding/charmap"

	"github.com/memkit/memkit/internal/buf"
)

// Raw structs interop with C-style strings in two flavors: NUL-terminated
// byte strings in a single-byte code page, and NUL-terminated UTF-16 in the
// host's byte order. These helpers run on any Region, so the bounds policy of
// the underlying allocation applies to every unit they touch.

// ReadCString reads a NUL-terminated byte string starting at off, decoding it
// as Windows-1252. maxLen bounds the scan, terminator included; running out
// of budget before a NUL is an error.
func ReadCString(r Region, off, maxLen int64) (string, error) {
	var data []byte
	found := false
	for i := int64(0); i < maxLen; i++ {
		b, err := r.Byte(off + i)
		if err != nil {
			return "", err
		}
		if b == 0 {
			found = true
			break
		}
		data = append(data, b)
	}
	if !found {
		return "", fmt.Errorf("mem: no NUL terminator within %d bytes", maxLen)
	}
	// Fast path: ASCII needs no decoding (same bytes in Windows-1252 and UTF-8)
	if isASCII(data) {
		return string(data), nil
	}
	decoded, err := charmap.Windows1252.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("mem: decode Windows-1252 string: %w", err)
	}
	return string(decoded), nil
}

// WriteCString encodes s as Windows-1252 and writes it at off with a trailing
// NUL. Runes outside the code page fail the encode. Returns the number of
// bytes written, terminator included.
func WriteCString(r Region, off int64, s string) (int64, error) {
	encoded, err := charmap.Windows1252.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return 0, fmt.Errorf("mem: encode Windows-1252 string: %w", err)
	}
	n, err := r.WriteAt(append(encoded, 0), off)
	if err != nil {
		return 0, err
	}
	return int64(n), nil
}

func isASCII(data []byte) bool {
	for _, b := range data {
		if b >= 0x80 {
			return false
		}
	}
	return true
}

// ReadUTF16 reads NUL-terminated UTF-16 text in host byte order starting at
// off, scanning at most maxUnits 16-bit units, terminator included. Surrogate
// pairs are combined.
func ReadUTF16(r Region, off, maxUnits int64) (string, error) {
	var units []uint16
	found := false
	for i := int64(0); i < maxUnits; i++ {
		byteOff, ok := buf.MulOverflowSafe(i, 2)
		if !ok {
			return "", errors.New("mem: utf16 scan offset overflows")
		}
		u, err := r.Uint16(off + byteOff)
		if err != nil {
			return "", err
		}
		if u == 0 {
			found = true
			break
		}
		units = append(units, u)
	}
	if !found {
		return "", fmt.Errorf("mem: no NUL terminator within %d units", maxUnits)
	}

	// Fast path: pure ASCII units skip the utf16 round trip
	allASCII := true
	for _, u := range units {
		if u >= 0x80 {
			allASCII = false
			break
		}
	}
	if allASCII {
		var b strings.Builder
		b.Grow(len(units))
		for _, u := range units {
			b.WriteByte(byte(u))
		}
		return b.String(), nil
	}

	return string(utf16.Decode(units)), nil
}

// WriteUTF16 encodes s as UTF-16 in host byte order and writes it at off with
// a trailing NUL unit. The whole range is validated up front, so a checked
// region fails before any partial write. Returns the number of bytes written,
// terminator included.
func WriteUTF16(r Region, off int64, s string) (int64, error) {
	units := utf16.Encode([]rune(s))
	total, ok := buf.MulOverflowSafe(int64(len(units))+1, 2)
	if !ok {
		return 0, fmt.Errorf("%w: %d utf16 units", ErrBadSize, len(units))
	}
	if err := r.CheckBounds(off, total); err != nil {
		return 0, err
	}
	for i, u := range units {
		if err := r.PutUint16(off+int64(i)*2, u); err != nil {
			return 0, err
		}
	}
	if err := r.PutUint16(off+int64(len(units))*2, 0); err != nil {
		return 0, err
	}
	return total, nil
}
