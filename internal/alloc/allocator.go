package alloc

import "sync"

// Allocator hands out file space for the container writer. Allocation is
// append-only: every block is placed at the current end-of-file address,
// which then advances. Nothing is ever reused; the writer finalizes the
// file in one pass.
type Allocator struct {
	mu   sync.Mutex
	base uint64
	eof  uint64

	stats Stats
}

// Stats summarizes what the allocator has handed out.
type Stats struct {
	TotalAllocations uint64
	TotalBytesAlloc  uint64
	LargestAlloc     uint64
}

// New returns an allocator whose first block starts at base, normally the
// first byte after the superblock.
func New(base uint64) *Allocator {
	return &Allocator{base: base, eof: base}
}

// Alloc reserves size bytes and returns the block's address. A zero size
// reserves nothing and returns the current end-of-file address.
func (a *Allocator) Alloc(size uint64) uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()

	addr := a.eof
	if size == 0 {
		return addr
	}
	a.eof += size

	a.stats.TotalAllocations++
	a.stats.TotalBytesAlloc += size
	if size > a.stats.LargestAlloc {
		a.stats.LargestAlloc = size
	}
	return addr
}

// EOFAddr returns the current end-of-file address, the value the
// superblock records on finalize.
func (a *Allocator) EOFAddr() uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.eof
}

// Base returns the address allocation started from.
func (a *Allocator) Base() uint64 {
	return a.base
}

// Stats returns a snapshot of the allocation counters.
func (a *Allocator) Stats() Stats {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.stats
}
