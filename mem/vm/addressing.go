package vm

import "fmt"

const (
	// MaxAddressBits is the widest virtual address space that can be
	// simulated.
	MaxAddressBits = 62

	// MaxPageTableEntries caps the page table, since every entry is
	// materialized in memory.
	MaxPageTableEntries = 1 << 24
)

// SplitAddress breaks a virtual address into its page number and its offset
// within the page.
//
//	-----------------------
//	| page number | offset |
//	-----------------------
//	|    M - N    |    N   |
//	-----------------------
//
// Bits above the address width are not checked here. They end up in the page
// number and are caught by the page table.
func SplitAddress(addr, log2PageSize uint64) (pageNum, offset uint64) {
	pageNum = addr >> log2PageSize
	offset = addr & (uint64(1)<<log2PageSize - 1)

	return pageNum, offset
}

// JoinAddress rebuilds an address from a frame number and an in-page offset.
func JoinAddress(frameNum, offset, log2PageSize uint64) uint64 {
	return frameNum<<log2PageSize + offset
}

// AddressSpace describes the width of a virtual address and how it is split
// into a page number and a page offset.
type AddressSpace struct {
	AddressBits  uint64
	Log2PageSize uint64
}

// Validate checks that the address space can be simulated.
func (s AddressSpace) Validate() error {
	if s.AddressBits > MaxAddressBits {
		return fmt.Errorf("%w: address width %d exceeds %d bits",
			ErrInvalidConfig, s.AddressBits, MaxAddressBits)
	}

	if s.Log2PageSize > s.AddressBits {
		return fmt.Errorf("%w: page offset width %d exceeds address width %d",
			ErrInvalidConfig, s.Log2PageSize, s.AddressBits)
	}

	if s.NumPages() > MaxPageTableEntries {
		return fmt.Errorf("%w: page table would need %d entries, limit is %d",
			ErrInvalidConfig, s.NumPages(), MaxPageTableEntries)
	}

	return nil
}

// NumPages returns the number of virtual pages, which is also the number of
// page table entries.
func (s AddressSpace) NumPages() uint64 {
	return uint64(1) << (s.AddressBits - s.Log2PageSize)
}

// NumFrames returns the size of the range that frame numbers are drawn from.
func (s AddressSpace) NumFrames() uint64 {
	return uint64(1) << s.AddressBits
}

// PageSize returns the number of bytes in a page.
func (s AddressSpace) PageSize() uint64 {
	return uint64(1) << s.Log2PageSize
}
