// Copyright (c) 2026 Neomantra Corp

package xbf_test

import (
	"bytes"

	"github.com/nimblemarkets/xbf-go"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("PrimitiveMetadata", func() {
	Context("String", func() {
		It("names the Bool, I32 and String kinds", func() {
			Expect(xbf.PrimitiveMetadata_Bool.String()).To(Equal("Bool"))
			Expect(xbf.PrimitiveMetadata_I32.String()).To(Equal("I32"))
			Expect(xbf.PrimitiveMetadata_String.String()).To(Equal("String"))
		})
	})

	Context("Equal", func() {
		It("reports equal for the same kind", func() {
			Expect(xbf.PrimitiveMetadata_U64.Equal(xbf.PrimitiveMetadata_U64)).To(BeTrue())
		})
		It("reports unequal for different kinds", func() {
			Expect(xbf.PrimitiveMetadata_U64.Equal(xbf.PrimitiveMetadata_I64)).To(BeFalse())
		})
		It("reports unequal against a non-primitive metadata", func() {
			vm := xbf.NewVectorMetadata(xbf.PrimitiveMetadata_U8)
			Expect(xbf.PrimitiveMetadata_U8.Equal(vm)).To(BeFalse())
		})
	})

	Context("round trip", func() {
		It("serializes I32 metadata to its single discriminant byte", func() {
			var buf bytes.Buffer
			Expect(xbf.PrimitiveMetadata_I32.SerializeMetadata(&buf)).To(Succeed())
			Expect(buf.Bytes()).To(Equal([]byte{byte(xbf.Disc_I32)}))
		})
		It("deserializes the same byte back to I32", func() {
			m, err := xbf.DeserializeMetadata(bytes.NewReader([]byte{byte(xbf.Disc_I32)}))
			Expect(err).NotTo(HaveOccurred())
			Expect(m).To(Equal(xbf.PrimitiveMetadata_I32))
		})
	})

	Context("invalid discriminants", func() {
		It("fails on a discriminant above the primitive range", func() {
			_, err := xbf.DeserializePrimitiveMetadata(bytes.NewReader([]byte{69}))
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("Unknown metadata discriminant 69"))
		})
		It("fails via the base dispatcher on an unknown discriminant", func() {
			_, err := xbf.DeserializeMetadata(bytes.NewReader([]byte{69}))
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("Unknown metadata discriminant 69"))
			Expect(err).To(MatchError(xbf.ErrInvalidDiscriminant))
		})
	})
})
