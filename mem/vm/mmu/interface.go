package mmu

// A TLB caches page to frame mappings in front of the page table.
type TLB interface {
	Lookup(pageNum uint64) (frameNum uint64, found bool)
	Update(pageNum, frameNum uint64)
}
