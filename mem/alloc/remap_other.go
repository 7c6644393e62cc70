//go:build darwin || freebsd

package alloc

import "golang.org/x/sys/unix"

// remap resizes an anonymous mapping by mapping a fresh region, copying the
// overlapping prefix, and unmapping the old one. Only linux exposes mremap.
func remap(old []byte, newSize int) ([]byte, error) {
	data, err := unix.Mmap(
		-1,
		0,
		newSize,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANON|unix.MAP_PRIVATE,
	)
	if err != nil {
		return nil, err
	}
	copy(data, old)
	if err := unix.Munmap(old); err != nil {
		_ = unix.Munmap(data)
		return nil, err
	}
	return data, nil
}
