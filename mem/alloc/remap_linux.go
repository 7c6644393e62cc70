//go:build linux

package alloc

import "golang.org/x/sys/unix"

// remap resizes an anonymous mapping, growing or shrinking in place when the
// kernel can and moving it otherwise.
func remap(old []byte, newSize int) ([]byte, error) {
	return unix.Mremap(old, newSize, unix.MREMAP_MAYMOVE)
}
