package main

import (
	"fmt"
	"time"

	"github.com/memkit/memkit/mem"
	"github.com/memkit/memkit/mem/alloc"
	"github.com/spf13/cobra"
)

var (
	benchBackend string
	benchSize    int64
	benchCount   int
	benchTouch   bool
)

func init() {
	cmd := newBenchCmd()
	cmd.Flags().StringVar(&benchBackend, "backend", "heap", "Backend to exercise (heap, mmap, cmalloc)")
	cmd.Flags().Int64Var(&benchSize, "size", 4096, "Bytes per block")
	cmd.Flags().IntVar(&benchCount, "count", 1000, "Number of blocks")
	cmd.Flags().BoolVar(&benchTouch, "touch", true, "Write and read every block")
	rootCmd.AddCommand(cmd)
}

func newBenchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run an allocation workload against a backend",
		Long: `The bench command allocates a batch of blocks from the chosen backend,
optionally sweeps each block with writes and reads, then frees
everything and reports timings plus the backend's own counters.

Example:
  memctl bench
  memctl bench --backend=mmap --size=65536 --count=200
  memctl bench --backend=cmalloc --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench()
		},
	}
	return cmd
}

type BenchResult struct {
	Backend    string
	BlockSize  int64
	BlockCount int

	AllocNanos int64
	TouchNanos int64
	FreeNanos  int64

	AllocsPerSec float64
	TouchMBPerS  float64

	Stats alloc.Stats
}

func runBench() error {
	if benchSize <= 0 {
		return fmt.Errorf("invalid block size: %d", benchSize)
	}
	if benchCount <= 0 {
		return fmt.Errorf("invalid block count: %d", benchCount)
	}

	backend, err := newBackend(benchBackend)
	if err != nil {
		return err
	}

	printVerbose("Allocating %d blocks of %d bytes from %s\n", benchCount, benchSize, benchBackend)

	result := BenchResult{
		Backend:    benchBackend,
		BlockSize:  benchSize,
		BlockCount: benchCount,
	}

	blocks := make([]*mem.RawAllocation, 0, benchCount)
	start := time.Now()
	for i := 0; i < benchCount; i++ {
		r, err := mem.Allocate(backend, benchSize)
		if err != nil {
			freeAll(blocks)
			return fmt.Errorf("allocation %d failed: %w", i, err)
		}
		blocks = append(blocks, r)
	}
	result.AllocNanos = time.Since(start).Nanoseconds()

	if benchTouch {
		start = time.Now()
		for _, r := range blocks {
			if err := touchBlock(r); err != nil {
				freeAll(blocks)
				return fmt.Errorf("touch failed: %w", err)
			}
		}
		result.TouchNanos = time.Since(start).Nanoseconds()
	}

	start = time.Now()
	if err := freeAll(blocks); err != nil {
		return fmt.Errorf("free failed: %w", err)
	}
	result.FreeNanos = time.Since(start).Nanoseconds()

	result.Stats = backend.Stats()

	if result.AllocNanos > 0 {
		result.AllocsPerSec = float64(result.BlockCount) / (float64(result.AllocNanos) / 1e9)
	}
	if benchTouch && result.TouchNanos > 0 {
		// Each block is written once and read once
		moved := 2 * result.BlockSize * int64(result.BlockCount)
		result.TouchMBPerS = float64(moved) / (1024 * 1024) / (float64(result.TouchNanos) / 1e9)
	}

	// Output as JSON if requested
	if jsonOut {
		return printJSON(result)
	}

	printInfo("\nBench: %s\n", result.Backend)
	printInfo("  Blocks: %d x %d bytes\n", result.BlockCount, result.BlockSize)
	printInfo("  Allocate: %s (%.0f allocs/sec)\n", time.Duration(result.AllocNanos), result.AllocsPerSec)
	if benchTouch {
		printInfo("  Touch: %s (%.1f MB/s)\n", time.Duration(result.TouchNanos), result.TouchMBPerS)
	}
	printInfo("  Free: %s\n", time.Duration(result.FreeNanos))

	printInfo("\nBackend counters:\n")
	printInfo("  Alloc calls: %d\n", result.Stats.AllocCalls)
	printInfo("  Free calls: %d\n", result.Stats.FreeCalls)
	printInfo("  Bytes allocated: %d\n", result.Stats.BytesAllocated)
	printInfo("  Bytes freed: %d\n", result.Stats.BytesFreed)
	printInfo("  Live blocks: %d\n", result.Stats.LiveBlocks)

	return nil
}

func newBackend(name string) (alloc.Allocator, error) {
	switch name {
	case "heap":
		return alloc.NewHeap(), nil
	case "mmap":
		m, err := alloc.NewMmap()
		if err != nil {
			return nil, err
		}
		return m, nil
	case "cmalloc":
		c, err := alloc.NewCMalloc()
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, fmt.Errorf("unknown backend %q (want heap, mmap, or cmalloc)", name)
	}
}

// touchBlock writes a pattern across the block and reads it back through the
// checked accessors.
func touchBlock(r *mem.RawAllocation) error {
	if err := r.SetAll(0x5A); err != nil {
		return err
	}
	for off := int64(0); off+8 <= r.Size(); off += 8 {
		if err := r.PutUint64(off, uint64(off)); err != nil {
			return err
		}
	}
	var sum uint64
	for off := int64(0); off+8 <= r.Size(); off += 8 {
		v, err := r.Uint64(off)
		if err != nil {
			return err
		}
		sum += v
	}
	_ = sum
	return nil
}

func freeAll(blocks []*mem.RawAllocation) error {
	var firstErr error
	for _, r := range blocks {
		if r.Released() {
			continue
		}
		if err := r.Free(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
