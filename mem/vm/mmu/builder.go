package mmu

import (
	"github.com/sarchlab/tlbsim/mem/vm"
	"github.com/sarchlab/tlbsim/mem/vm/tlb"
)

// A Builder can build MMU component
type Builder struct {
	log2PageSize uint64
	tlb          TLB
	pageTable    vm.PageTable
}

// MakeBuilder creates a new builder
func MakeBuilder() Builder {
	return Builder{
		log2PageSize: 12,
	}
}

// WithLog2PageSize sets the page size that the mmu support.
func (b Builder) WithLog2PageSize(log2PageSize uint64) Builder {
	b.log2PageSize = log2PageSize
	return b
}

// WithTLB sets the TLB that the MMU consults before the page table. If not
// set, a default TLB is built.
func (b Builder) WithTLB(t TLB) Builder {
	b.tlb = t
	return b
}

// WithPageTable sets the page table that the MMU uses.
func (b Builder) WithPageTable(pageTable vm.PageTable) Builder {
	b.pageTable = pageTable
	return b
}

// Build returns a newly created MMU component. It panics without a page table
// or when the page table is built for a different page size.
func (b Builder) Build(name string) *Comp {
	mmu := &Comp{
		name:         name,
		log2PageSize: b.log2PageSize,
	}

	b.createPageTable(mmu)
	b.createTLB(name, mmu)

	return mmu
}

func (b Builder) createPageTable(mmu *Comp) {
	if b.pageTable == nil {
		panic("MMU requires a page table")
	}

	if b.pageTable.Log2PageSize() != b.log2PageSize {
		panic("page table page size does not match MMU page size")
	}

	mmu.pageTable = b.pageTable
}

func (b Builder) createTLB(name string, mmu *Comp) {
	if b.tlb != nil {
		mmu.tlb = b.tlb
		return
	}

	mmu.tlb = tlb.MakeBuilder().Build(name + ".TLB")
}
