// Copyright (c) 2026 Neomantra Corp

package xbf_test

import (
	"github.com/nimblemarkets/xbf-go"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ValueToJSON", func() {
	It("renders wide integers as decimal strings to avoid precision loss", func() {
		j, err := xbf.ValueToJSON(xbf.U64(18446744073709551615))
		Expect(err).NotTo(HaveOccurred())
		Expect(j).To(Equal("18446744073709551615"))
	})

	It("renders a struct as a map keyed by field name", func() {
		sm := dragonRiderMetadata()
		s, err := xbf.NewStruct(sm, []xbf.Value{xbf.String("Eragon"), xbf.U16(16)})
		Expect(err).NotTo(HaveOccurred())

		j, err := xbf.ValueToJSON(s)
		Expect(err).NotTo(HaveOccurred())
		m, ok := j.(map[string]any)
		Expect(ok).To(BeTrue())
		Expect(m["name"]).To(Equal("Eragon"))
		Expect(m["age"]).To(Equal(float64(16)))
	})

	It("renders a vector as a slice in order", func() {
		vm := xbf.NewVectorMetadata(xbf.PrimitiveMetadata_I32)
		v, err := xbf.NewVector(vm, []xbf.Value{xbf.I32(1), xbf.I32(2)})
		Expect(err).NotTo(HaveOccurred())

		j, err := xbf.ValueToJSON(v)
		Expect(err).NotTo(HaveOccurred())
		Expect(j).To(Equal([]any{float64(1), float64(2)}))
	})
})

var _ = Describe("DescribeMetadata", func() {
	It("names each layer's kind", func() {
		sm := dragonRiderMetadata()
		desc := xbf.DescribeMetadata(sm)
		m, ok := desc.(map[string]any)
		Expect(ok).To(BeTrue())
		Expect(m["kind"]).To(Equal("struct"))
		Expect(m["name"]).To(Equal("DragonRider"))
	})
})
