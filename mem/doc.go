// Package mem provides bounds-checked access to raw, manually managed memory.
//
// # Overview
//
// This package wraps memory that lives outside the Go heap (or is pinned
// within it) behind a small capability contract. A caller allocates a block,
// reads and writes typed scalars at byte offsets, derives windowed views,
// copies and compares across blocks, and resizes or frees the block. Every
// access is optionally validated against the block's size, its released
// state, and 64-bit address arithmetic.
//
// # Key Types
//
// The main types provided by this package are:
//
//   - Region: the capability contract (typed access, views, copy, compare,
//     bounds queries) shared by every implementation
//   - Raw: a Region that additionally exposes its absolute base address,
//     unlocking the raw-to-raw copy fast path
//   - Allocation: a Raw region that owns its block (Free, Reallocate)
//   - RawAllocation: the concrete owner, built on an alloc.Allocator
//   - SubRegion: a non-owning window over a parent Region
//   - Null: the shared zero-size allocation returned by Reallocate(0)
//   - Key: identity-by-location, usable as a map key
//
// # Allocating
//
// Blocks come from an allocator backend in mem/alloc:
//
//	a := alloc.NewHeap()
//	block, err := mem.Allocate(a, 4096)
//	if err != nil {
//	    return err
//	}
//	defer block.Free()
//
//	if err := block.PutInt64(0, 42); err != nil {
//	    return err
//	}
//
// # Bounds Checking
//
// Every access on a checked allocation runs the same policy: released state
// first, then 0 <= offset, 0 <= length, offset+length <= size with
// overflow-safe arithmetic, then a check that address+offset+length does not
// wrap the 64-bit space. Only then is memory touched.
//
// AllocateUnchecked builds instances that skip the policy entirely. That is a
// per-instance escape hatch for hot paths whose safety is proven externally:
// out-of-range accesses and use-after-free on unchecked instances are
// undefined behavior, exactly as with raw pointers. Checked and unchecked
// instances coexist freely.
//
// # Views
//
// Slice and SliceFrom derive SubRegion windows. A view translates offsets and
// delegates to its parent, so the parent's released state and checking mode
// propagate; the view additionally clamps every access to its own window. A
// view holds a plain reference to its parent and must not be used after the
// parent is released; a checked parent turns that misuse into ErrReleased,
// an unchecked one does not.
//
// # Identity
//
// Allocations are identified by location only. Key{Address, Size} is
// comparable: two wrappers over the same range are equal and hash identically
// as map keys regardless of checking mode or released state.
//
// # Thread Safety
//
// Nothing in this package synchronizes. An allocation and its views assume
// single-threaded or externally serialized use; the released flag guards
// sequential misuse, never races. Allocator backends in mem/alloc are
// internally synchronized, since they model the host allocator.
//
// # Related Packages
//
//   - github.com/memkit/memkit/mem/alloc: allocator backends and the raw
//     address-level load/store primitives
package mem
