package vm

import (
	"fmt"
	"math/rand"
)

// A PageTable maps virtual page numbers to physical frame numbers. It is a
// single-level table with one entry per virtual page.
type PageTable interface {
	// Find returns the frame that the page maps to. The bool return value
	// indicates if the page number is covered by the table.
	Find(pageNum uint64) (frameNum uint64, found bool)

	// NumEntries returns the number of pages the table covers.
	NumEntries() uint64

	// Log2PageSize returns the page size the table is built for.
	Log2PageSize() uint64
}

// NewPageTable creates a PageTable from an explicit list of frames, where the
// i-th frame is the mapping of page i. The frames are copied.
func NewPageTable(log2PageSize uint64, frames []uint64) PageTable {
	entries := make([]uint64, len(frames))
	copy(entries, frames)

	return &pageTableImpl{
		log2PageSize: log2PageSize,
		entries:      entries,
	}
}

// NewRandomPageTable creates a page table with one entry per page of the
// address space. The frames are unique and drawn without replacement from
// [0, 2^AddressBits) using rng.
func NewRandomPageTable(space AddressSpace, rng *rand.Rand) (PageTable, error) {
	if err := space.Validate(); err != nil {
		return nil, err
	}

	if rng == nil {
		return nil, fmt.Errorf("%w: no random source", ErrInvalidConfig)
	}

	pt := &pageTableImpl{
		log2PageSize: space.Log2PageSize,
		entries:      sampleFrames(rng, space.NumFrames(), space.NumPages()),
	}

	return pt, nil
}

// sampleFrames picks k distinct values from [0, n) with Floyd's algorithm and
// shuffles them so that the page-to-frame assignment is random too.
func sampleFrames(rng *rand.Rand, n, k uint64) []uint64 {
	picked := make(map[uint64]struct{}, k)
	frames := make([]uint64, 0, k)

	for j := n - k; j < n; j++ {
		t := uint64(rng.Int63n(int64(j + 1)))
		if _, taken := picked[t]; taken {
			t = j
		}

		picked[t] = struct{}{}
		frames = append(frames, t)
	}

	rng.Shuffle(len(frames), func(i, j int) {
		frames[i], frames[j] = frames[j], frames[i]
	})

	return frames
}

// pageTableImpl is the default implementation of a Page Table. It is
// immutable once built.
type pageTableImpl struct {
	log2PageSize uint64
	entries      []uint64
}

func (pt *pageTableImpl) Find(pageNum uint64) (uint64, bool) {
	if pageNum >= uint64(len(pt.entries)) {
		return 0, false
	}

	return pt.entries[pageNum], true
}

func (pt *pageTableImpl) NumEntries() uint64 {
	return uint64(len(pt.entries))
}

func (pt *pageTableImpl) Log2PageSize() uint64 {
	return pt.log2PageSize
}
