// Copyright (c) 2026 Neomantra Corp

package xbf_test

import (
	"bytes"

	"github.com/nimblemarkets/xbf-go"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("base dispatcher", func() {
	Context("DeserializeMetadata", func() {
		It("dispatches primitive discriminants", func() {
			m, err := xbf.DeserializeMetadata(bytes.NewReader([]byte{byte(xbf.Disc_Bool)}))
			Expect(err).NotTo(HaveOccurred())
			Expect(m).To(Equal(xbf.PrimitiveMetadata_Bool))
		})
		It("dispatches vector discriminants recursively", func() {
			var buf bytes.Buffer
			Expect(xbf.NewVectorMetadata(xbf.PrimitiveMetadata_F32).SerializeMetadata(&buf)).To(Succeed())
			m, err := xbf.DeserializeMetadata(&buf)
			Expect(err).NotTo(HaveOccurred())
			vm, ok := m.(*xbf.VectorMetadata)
			Expect(ok).To(BeTrue())
			Expect(vm.Inner()).To(Equal(xbf.PrimitiveMetadata_F32))
		})
		It("dispatches struct discriminants recursively", func() {
			sm, err := xbf.NewStructMetadata("S", []xbf.StructField{{Name: "x", Metadata: xbf.PrimitiveMetadata_I32}})
			Expect(err).NotTo(HaveOccurred())
			var buf bytes.Buffer
			Expect(sm.SerializeMetadata(&buf)).To(Succeed())
			m, err := xbf.DeserializeMetadata(&buf)
			Expect(err).NotTo(HaveOccurred())
			Expect(m.Equal(sm)).To(BeTrue())
		})
		It("fails with a message naming the offending byte for an unknown discriminant", func() {
			_, err := xbf.DeserializeMetadata(bytes.NewReader([]byte{69}))
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(Equal("invalid discriminant: Unknown metadata discriminant 69"))
		})
	})

	Context("DeserializeValue", func() {
		It("dispatches on the dynamic metadata type", func() {
			var buf bytes.Buffer
			Expect(xbf.I32(42).SerializeValue(&buf)).To(Succeed())
			v, err := xbf.DeserializeValue(xbf.PrimitiveMetadata_I32, &buf)
			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(Equal(xbf.I32(42)))
		})
	})

	Context("MetadataOf", func() {
		It("is a pure projection for primitives", func() {
			Expect(xbf.MetadataOf(xbf.I32(0))).To(Equal(xbf.PrimitiveMetadata_I32))
		})
	})
})
