// Package mmu provides a memory management unit that translates virtual
// addresses through a TLB backed by a page table.
package mmu

import (
	"fmt"

	"github.com/sarchlab/tlbsim/mem/vm"
	"github.com/sarchlab/tlbsim/sim/hooking"
)

// HookPosTranslation marks a completed translation. The hook item is a
// Translation.
var HookPosTranslation = &hooking.HookPos{Name: "MMU Translation"}

// Outcome tells whether a translation was served by the TLB.
type Outcome int

// Possible outcomes of a translation.
const (
	Hit Outcome = iota
	Miss
)

func (o Outcome) String() string {
	switch o {
	case Hit:
		return "hit"
	case Miss:
		return "miss"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// A Translation is the result of translating one virtual address.
type Translation struct {
	Outcome  Outcome
	VAddr    uint64
	PAddr    uint64
	PageNum  uint64
	FrameNum uint64
	Offset   uint64
}

// Comp is the default mmu implementation.
type Comp struct {
	hooking.HookableBase

	name         string
	log2PageSize uint64
	tlb          TLB
	pageTable    vm.PageTable
}

// Name returns the name of the MMU.
func (c *Comp) Name() string {
	return c.name
}

// Log2PageSize returns the page offset width.
func (c *Comp) Log2PageSize() uint64 {
	return c.log2PageSize
}

// TLB returns the TLB that the MMU consults first.
func (c *Comp) TLB() TLB {
	return c.tlb
}

// PageTable returns the page table that the MMU walks on TLB misses.
func (c *Comp) PageTable() vm.PageTable {
	return c.pageTable
}

// Translate converts a virtual address into a physical address. A TLB hit
// leaves the TLB untouched. A miss reads the page table and caches the
// mapping in the TLB. Addresses whose page is not covered by the page table
// return an error wrapping vm.ErrAddressOutOfRange and change nothing.
func (c *Comp) Translate(vAddr uint64) (Translation, error) {
	pageNum, offset := vm.SplitAddress(vAddr, c.log2PageSize)

	t := Translation{
		VAddr:   vAddr,
		PageNum: pageNum,
		Offset:  offset,
	}

	frameNum, found := c.tlb.Lookup(pageNum)
	if found {
		t.Outcome = Hit
	} else {
		frameNum, found = c.pageTable.Find(pageNum)
		if !found {
			return Translation{}, fmt.Errorf(
				"%w: virtual address 0x%x is on page %d, page table has %d entries",
				vm.ErrAddressOutOfRange, vAddr, pageNum, c.pageTable.NumEntries())
		}

		c.tlb.Update(pageNum, frameNum)
		t.Outcome = Miss
	}

	t.FrameNum = frameNum
	t.PAddr = vm.JoinAddress(frameNum, offset, c.log2PageSize)

	c.InvokeHook(hooking.HookCtx{
		Domain: c,
		Pos:    HookPosTranslation,
		Item:   t,
	})

	return t, nil
}
