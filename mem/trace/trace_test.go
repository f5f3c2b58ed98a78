package trace

import (
	"errors"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Trace", func() {
	It("should parse tagged accesses", func() {
		t, err := ParseString("07b243a0 R\n08b24312 W")

		Expect(err).NotTo(HaveOccurred())
		Expect(t.Accesses()).To(Equal([]Access{
			{Address: 0x07b243a0, Kind: Read},
			{Address: 0x08b24312, Kind: Write},
		}))
	})

	It("should parse untagged and prefixed addresses", func() {
		t, err := ParseString("  0x07B243A0  \n08b24380\n")

		Expect(err).NotTo(HaveOccurred())
		Expect(t.Len()).To(Equal(2))
		Expect(t.At(0)).To(Equal(Access{Address: 0x07b243a0}))
		Expect(t.At(1).Kind).To(Equal(Unknown))
	})

	It("should skip blank lines and comments", func() {
		t, err := ParseString("# header\n\n1000 r # first\n\n2000 w\n")

		Expect(err).NotTo(HaveOccurred())
		Expect(t.Accesses()).To(Equal([]Access{
			{Address: 0x1000, Kind: Read},
			{Address: 0x2000, Kind: Write},
		}))
	})

	It("should accept an empty input", func() {
		t, err := Parse(strings.NewReader(""))

		Expect(err).NotTo(HaveOccurred())
		Expect(t.Len()).To(Equal(0))
	})

	DescribeTable("malformed lines",
		func(input string, line int) {
			_, err := ParseString(input)

			Expect(err).To(MatchError(ErrMalformedLine))

			var parseErr *ParseError
			Expect(errors.As(err, &parseErr)).To(BeTrue())
			Expect(parseErr.Line).To(Equal(line))
		},
		Entry("non-hex address", "1000 R\nxyz R", 2),
		Entry("bad tag", "1000 X", 1),
		Entry("too many fields", "1000\n\n1000 R extra", 3),
		Entry("address overflows 64 bits", "1ffffffffffffffff", 1),
	)

	It("should not share storage with callers", func() {
		accesses := []Access{{Address: 1}}
		t := NewTrace(accesses...)

		accesses[0].Address = 2
		t.Accesses()[0].Address = 3

		Expect(t.At(0).Address).To(Equal(uint64(1)))
	})

	It("should replay in order and stop at the first error", func() {
		t := NewTrace(
			Access{Address: 0x10},
			Access{Address: 0x20},
			Access{Address: 0x30},
		)
		stop := errors.New("stop")

		var seen []uint64
		err := t.Each(func(i int, a Access) error {
			seen = append(seen, a.Address)
			if i == 1 {
				return stop
			}
			return nil
		})

		Expect(err).To(MatchError(stop))
		Expect(seen).To(Equal([]uint64{0x10, 0x20}))
	})

	It("should name access kinds", func() {
		Expect(Read.String()).To(Equal("R"))
		Expect(Write.String()).To(Equal("W"))
		Expect(Unknown.String()).To(Equal("-"))
	})
})
