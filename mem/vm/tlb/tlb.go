// Package tlb provides a fully associative translation lookaside buffer that
// replaces entries in first-in first-out order.
package tlb

import "github.com/sarchlab/tlbsim/mem/vm/tlb/internal"

// A Slot is a snapshot of one TLB slot.
type Slot struct {
	WayID    int    `json:"way_id"`
	PageNum  uint64 `json:"page_num"`
	FrameNum uint64 `json:"frame_num"`
	Valid    bool   `json:"valid"`
}

// Comp is a cache(TLB) that maintains some page information.
type Comp struct {
	name string
	set  internal.Set
}

// Name returns the name of the TLB.
func (c *Comp) Name() string {
	return c.name
}

// Lookup returns the frame cached for the page. A hit does not change the
// replacement order.
func (c *Comp) Lookup(pageNum uint64) (frameNum uint64, found bool) {
	_, frameNum, found = c.set.Lookup(pageNum)
	return frameNum, found
}

// Update caches the mapping in the oldest slot. It does not check whether the
// page is already cached, so calling it for a cached page leaves two copies
// until the older one is replaced.
func (c *Comp) Update(pageNum, frameNum uint64) {
	c.set.Update(pageNum, frameNum)
}

// Capacity returns the number of slots.
func (c *Comp) Capacity() int {
	return c.set.NumWays()
}

// NumValid returns the number of slots that hold a mapping.
func (c *Comp) NumValid() int {
	return c.set.NumValid()
}

// NextVictim returns the slot the next Update writes to.
func (c *Comp) NextVictim() int {
	return c.set.NextVictim()
}

// Slots returns a snapshot of every slot in slot order.
func (c *Comp) Slots() []Slot {
	blocks := c.set.Blocks()
	slots := make([]Slot, 0, len(blocks))

	for _, b := range blocks {
		slots = append(slots, Slot{
			WayID:    b.WayID,
			PageNum:  b.PageNum,
			FrameNum: b.FrameNum,
			Valid:    b.Valid,
		})
	}

	return slots
}

// Snapshot returns the slots for monitoring.
func (c *Comp) Snapshot() any {
	return c.Slots()
}

// Reset sets all the entries in the TLB to be invalid.
func (c *Comp) Reset() {
	c.set.Reset()
}
