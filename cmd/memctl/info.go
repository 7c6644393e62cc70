package main

import (
	"fmt"
	"math/bits"
	"os"
	"runtime"

	"github.com/memkit/memkit/mem"
	"github.com/memkit/memkit/mem/alloc"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Report host memory characteristics and backend availability",
		Long: `The info command reports what the host offers to raw allocations:
page size, pointer width, byte order, and which allocation backends
this build can actually use.

Example:
  memctl info
  memctl info --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo()
		},
	}
	return cmd
}

type HostInfo struct {
	GoVersion   string
	OS          string
	Arch        string
	PageSize    int
	PointerBits int
	ByteOrder   string
	Backends    map[string]string
}

func runInfo() error {
	info := HostInfo{
		GoVersion:   runtime.Version(),
		OS:          runtime.GOOS,
		Arch:        runtime.GOARCH,
		PageSize:    os.Getpagesize(),
		PointerBits: bits.UintSize,
		Backends:    make(map[string]string),
	}

	order, err := probeByteOrder()
	if err != nil {
		return fmt.Errorf("failed to probe byte order: %w", err)
	}
	info.ByteOrder = order

	info.Backends["heap"] = probeBackend(func() (alloc.Allocator, error) {
		return alloc.NewHeap(), nil
	})
	info.Backends["mmap"] = probeBackend(func() (alloc.Allocator, error) {
		return alloc.NewMmap()
	})
	info.Backends["cmalloc"] = probeBackend(func() (alloc.Allocator, error) {
		return alloc.NewCMalloc()
	})

	// Output as JSON if requested
	if jsonOut {
		return printJSON(info)
	}

	printInfo("\nHost Information:\n")
	printInfo("  Go: %s (%s/%s)\n", info.GoVersion, info.OS, info.Arch)
	printInfo("  Page size: %d bytes\n", info.PageSize)
	printInfo("  Pointers: %d-bit\n", info.PointerBits)
	printInfo("  Byte order: %s\n", info.ByteOrder)

	printInfo("\nBackends:\n")
	for _, name := range []string{"heap", "mmap", "cmalloc"} {
		printInfo("  %s: %s\n", name, info.Backends[name])
	}

	return nil
}

// probeByteOrder writes a two-byte value through the library and inspects
// which byte lands first.
func probeByteOrder() (string, error) {
	r, err := mem.Allocate(alloc.NewHeap(), 2)
	if err != nil {
		return "", err
	}
	defer func() { _ = r.Free() }()

	if err := r.PutUint16(0, 0x0102); err != nil {
		return "", err
	}
	first, err := r.Byte(0)
	if err != nil {
		return "", err
	}
	if first == 0x01 {
		return "big-endian", nil
	}
	return "little-endian", nil
}

// probeBackend builds the backend and runs one allocate/free roundtrip.
func probeBackend(build func() (alloc.Allocator, error)) string {
	a, err := build()
	if err != nil {
		return fmt.Sprintf("unavailable (%v)", err)
	}
	r, err := mem.Allocate(a, 64)
	if err != nil {
		return fmt.Sprintf("broken (%v)", err)
	}
	if err := r.PutUint64(0, 0xA5A5A5A5A5A5A5A5); err != nil {
		return fmt.Sprintf("broken (%v)", err)
	}
	if err := r.Free(); err != nil {
		return fmt.Sprintf("broken (%v)", err)
	}
	return "available"
}
