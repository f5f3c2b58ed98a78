package tlb

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/tlbsim/mem/vm/tlb/internal"
	"go.uber.org/mock/gomock"
)

var _ = Describe("TLB", func() {
	var (
		mockCtrl *gomock.Controller
		set      *MockSet
		tlb      *Comp
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		set = NewMockSet(mockCtrl)

		tlb = MakeBuilder().WithNumWays(4).Build("TLB")
		tlb.set = set
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should report hits from the set", func() {
		set.EXPECT().Lookup(uint64(3)).Return(1, uint64(30), true)

		frame, found := tlb.Lookup(3)

		Expect(found).To(BeTrue())
		Expect(frame).To(Equal(uint64(30)))
	})

	It("should not write to the set on lookup", func() {
		set.EXPECT().Lookup(uint64(3)).Return(0, uint64(0), false)
		set.EXPECT().Update(gomock.Any(), gomock.Any()).Times(0)

		_, found := tlb.Lookup(3)

		Expect(found).To(BeFalse())
	})

	It("should update the set without checking for the page first", func() {
		set.EXPECT().Update(uint64(3), uint64(30)).Return(2)
		set.EXPECT().Lookup(gomock.Any()).Times(0)

		tlb.Update(3, 30)
	})

	It("should convert blocks to slots", func() {
		set.EXPECT().Blocks().Return([]internal.Block{
			{WayID: 0, PageNum: 1, FrameNum: 10, Valid: true},
			{WayID: 1},
		})

		slots := tlb.Slots()

		Expect(slots).To(Equal([]Slot{
			{WayID: 0, PageNum: 1, FrameNum: 10, Valid: true},
			{WayID: 1},
		}))
	})
})

var _ = Describe("FIFO replacement", func() {
	var tlb *Comp

	BeforeEach(func() {
		tlb = MakeBuilder().WithNumWays(4).Build("TLB")
	})

	It("should refuse to build without entries", func() {
		Expect(func() { MakeBuilder().WithNumWays(0).Build("TLB") }).To(Panic())
	})

	It("should default to two entries", func() {
		Expect(MakeBuilder().Build("TLB").Capacity()).To(Equal(2))
	})

	It("should evict the first inserted page", func() {
		for page := uint64(0); page < 4; page++ {
			tlb.Update(page, page)
		}

		for page := uint64(0); page < 4; page++ {
			frame, found := tlb.Lookup(page)
			Expect(found).To(BeTrue())
			Expect(frame).To(Equal(page))
		}

		tlb.Update(4, 4)

		_, found := tlb.Lookup(0)
		Expect(found).To(BeFalse())
		for page := uint64(1); page <= 4; page++ {
			_, found := tlb.Lookup(page)
			Expect(found).To(BeTrue())
		}
	})

	It("should not let lookups refresh a page", func() {
		for page := uint64(0); page < 4; page++ {
			tlb.Update(page, page)
		}

		for i := 0; i < 10; i++ {
			tlb.Lookup(0)
		}
		tlb.Update(4, 4)

		_, found := tlb.Lookup(0)
		Expect(found).To(BeFalse())
	})

	It("should evict the first page exactly at the capacity-th later insert", func() {
		tlb.Update(100, 1)

		for page := uint64(0); page < 3; page++ {
			tlb.Update(page, page)
			_, found := tlb.Lookup(100)
			Expect(found).To(BeTrue())
		}

		tlb.Update(3, 3)

		_, found := tlb.Lookup(100)
		Expect(found).To(BeFalse())
	})

	It("should never hold more mappings than its capacity", func() {
		for page := uint64(0); page < 50; page++ {
			tlb.Update(page%7, page)
			Expect(tlb.NumValid()).To(BeNumerically("<=", tlb.Capacity()))
		}
	})

	It("should keep a duplicated page in two slots", func() {
		tlb.Update(9, 90)
		tlb.Update(9, 90)

		Expect(tlb.NumValid()).To(Equal(2))
		Expect(tlb.NextVictim()).To(Equal(2))

		slots := tlb.Slots()
		Expect(slots[0]).To(Equal(Slot{WayID: 0, PageNum: 9, FrameNum: 90, Valid: true}))
		Expect(slots[1]).To(Equal(Slot{WayID: 1, PageNum: 9, FrameNum: 90, Valid: true}))
		Expect(tlb.Snapshot()).To(Equal(slots))
	})

	It("should forget everything on reset", func() {
		tlb.Update(1, 1)

		tlb.Reset()

		_, found := tlb.Lookup(1)
		Expect(found).To(BeFalse())
		Expect(tlb.NumValid()).To(Equal(0))
	})
})
