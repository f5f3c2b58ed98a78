// Package internal provides the slot storage behind the TLB.
package internal

// A Set holds a fixed number of ways. Each way caches at most one page to
// frame mapping. Ways are replaced in the order they were filled.
type Set interface {
	// Lookup scans the ways in order and returns the first valid way that
	// caches the page.
	Lookup(pageNum uint64) (wayID int, frameNum uint64, found bool)

	// Update writes the mapping into the next victim way, whatever it
	// holds, and moves the victim cursor forward. It returns the way used.
	Update(pageNum, frameNum uint64) (wayID int)

	// NextVictim returns the way that the next Update will overwrite.
	NextVictim() int

	// NumWays returns the capacity of the set.
	NumWays() int

	// NumValid returns how many ways hold a mapping.
	NumValid() int

	// Blocks returns a copy of all the ways, in way order.
	Blocks() []Block

	// Reset invalidates all ways and rewinds the victim cursor.
	Reset()
}

// A Block is one way of a set.
type Block struct {
	WayID    int
	PageNum  uint64
	FrameNum uint64
	Valid    bool
}

// NewSet creates a new set with numWays empty ways.
func NewSet(numWays int) Set {
	if numWays <= 0 {
		panic("number of ways must be positive")
	}

	s := &setImpl{}
	s.blocks = make([]Block, numWays)
	s.Reset()

	return s
}

type setImpl struct {
	blocks     []Block
	nextVictim int
}

func (s *setImpl) Lookup(pageNum uint64) (int, uint64, bool) {
	for _, b := range s.blocks {
		if b.Valid && b.PageNum == pageNum {
			return b.WayID, b.FrameNum, true
		}
	}

	return 0, 0, false
}

func (s *setImpl) Update(pageNum, frameNum uint64) int {
	wayID := s.nextVictim

	s.blocks[wayID] = Block{
		WayID:    wayID,
		PageNum:  pageNum,
		FrameNum: frameNum,
		Valid:    true,
	}
	s.nextVictim = (s.nextVictim + 1) % len(s.blocks)

	return wayID
}

func (s *setImpl) NextVictim() int {
	return s.nextVictim
}

func (s *setImpl) NumWays() int {
	return len(s.blocks)
}

func (s *setImpl) NumValid() int {
	n := 0

	for _, b := range s.blocks {
		if b.Valid {
			n++
		}
	}

	return n
}

func (s *setImpl) Blocks() []Block {
	blocks := make([]Block, len(s.blocks))
	copy(blocks, s.blocks)

	return blocks
}

func (s *setImpl) Reset() {
	for i := range s.blocks {
		s.blocks[i] = Block{WayID: i}
	}

	s.nextVictim = 0
}
