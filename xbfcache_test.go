// Copyright (c) 2026 Neomantra Corp

package xbf_test

import (
	"github.com/nimblemarkets/xbf-go"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("MetadataCache", func() {
	It("fingerprints deterministically for equal metadata", func() {
		a := xbf.NewVectorMetadata(xbf.PrimitiveMetadata_I32)
		b := xbf.NewVectorMetadata(xbf.PrimitiveMetadata_I32)
		fpA, _, err := xbf.Fingerprint(a)
		Expect(err).NotTo(HaveOccurred())
		fpB, _, err := xbf.Fingerprint(b)
		Expect(err).NotTo(HaveOccurred())
		Expect(fpA).To(Equal(fpB))
	})

	It("stores and looks up metadata by fingerprint", func() {
		c := xbf.NewMetadataCache()
		sm, err := xbf.NewStructMetadata("S", []xbf.StructField{{Name: "x", Metadata: xbf.PrimitiveMetadata_I32}})
		Expect(err).NotTo(HaveOccurred())

		fp, raw, err := c.Store(sm)
		Expect(err).NotTo(HaveOccurred())
		Expect(raw).NotTo(BeEmpty())

		got, ok := c.Lookup(fp)
		Expect(ok).To(BeTrue())
		Expect(got.Equal(sm)).To(BeTrue())

		gotRaw, ok := c.SerializedBytes(fp)
		Expect(ok).To(BeTrue())
		Expect(gotRaw).To(Equal(raw))
	})

	It("reports a miss for an unknown fingerprint", func() {
		c := xbf.NewMetadataCache()
		_, ok := c.Lookup(0xDEADBEEF)
		Expect(ok).To(BeFalse())
	})
})
