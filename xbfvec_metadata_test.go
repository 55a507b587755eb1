// Copyright (c) 2026 Neomantra Corp

package xbf_test

import (
	"bytes"

	"github.com/nimblemarkets/xbf-go"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("VectorMetadata", func() {
	It("serializes to discriminant 17 followed by the inner metadata", func() {
		vm := xbf.NewVectorMetadata(xbf.PrimitiveMetadata_I32)
		var buf bytes.Buffer
		Expect(vm.SerializeMetadata(&buf)).To(Succeed())
		Expect(buf.Bytes()).To(Equal([]byte{byte(xbf.Disc_Vector), byte(xbf.Disc_I32)}))
	})

	It("round trips through the base dispatcher", func() {
		vm := xbf.NewVectorMetadata(xbf.PrimitiveMetadata_I32)
		var buf bytes.Buffer
		Expect(vm.SerializeMetadata(&buf)).To(Succeed())
		m, err := xbf.DeserializeMetadata(&buf)
		Expect(err).NotTo(HaveOccurred())
		Expect(m.Equal(vm)).To(BeTrue())
	})

	It("supports nested vectors", func() {
		inner := xbf.NewVectorMetadata(xbf.PrimitiveMetadata_U8)
		outer := xbf.NewVectorMetadata(inner)
		var buf bytes.Buffer
		Expect(outer.SerializeMetadata(&buf)).To(Succeed())
		m, err := xbf.DeserializeMetadata(&buf)
		Expect(err).NotTo(HaveOccurred())
		Expect(m.Equal(outer)).To(BeTrue())
	})

	Context("Equal", func() {
		It("compares by inner metadata, not identity", func() {
			a := xbf.NewVectorMetadata(xbf.PrimitiveMetadata_F64)
			b := xbf.NewVectorMetadata(xbf.PrimitiveMetadata_F64)
			Expect(a.Equal(b)).To(BeTrue())
		})
		It("reports unequal for different inner types", func() {
			a := xbf.NewVectorMetadata(xbf.PrimitiveMetadata_F64)
			b := xbf.NewVectorMetadata(xbf.PrimitiveMetadata_F32)
			Expect(a.Equal(b)).To(BeFalse())
		})
	})
})
