package tlb

import "github.com/sarchlab/tlbsim/mem/vm/tlb/internal"

// A Builder can build TLBs
type Builder struct {
	numWays int
}

// MakeBuilder returns a Builder
func MakeBuilder() Builder {
	return Builder{
		numWays: 2,
	}
}

// WithNumWays sets the number of entries in the TLB.
func (b Builder) WithNumWays(n int) Builder {
	b.numWays = n
	return b
}

// Build creates a new TLB. It panics if the TLB would have no entries.
func (b Builder) Build(name string) *Comp {
	if b.numWays <= 0 {
		panic("TLB must have at least one entry")
	}

	tlb := &Comp{name: name}
	tlb.set = internal.NewSet(b.numWays)

	return tlb
}
