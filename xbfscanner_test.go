// Copyright (c) 2026 Neomantra Corp

package xbf_test

import (
	"bytes"

	"github.com/nimblemarkets/xbf-go"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("StreamScanner", func() {
	It("reads one leading metadata blob followed by many values", func() {
		var buf bytes.Buffer
		Expect(xbf.PrimitiveMetadata_I32.SerializeMetadata(&buf)).To(Succeed())
		Expect(xbf.I32(1).SerializeValue(&buf)).To(Succeed())
		Expect(xbf.I32(2).SerializeValue(&buf)).To(Succeed())
		Expect(xbf.I32(3).SerializeValue(&buf)).To(Succeed())

		s := xbf.NewStreamScanner(&buf)
		m, err := s.Metadata()
		Expect(err).NotTo(HaveOccurred())
		Expect(m).To(Equal(xbf.PrimitiveMetadata_I32))

		var got []xbf.Value
		for s.Next() {
			got = append(got, s.Value())
		}
		Expect(s.Err()).NotTo(HaveOccurred())
		Expect(got).To(Equal([]xbf.Value{xbf.I32(1), xbf.I32(2), xbf.I32(3)}))
	})

	It("treats end of stream at a record boundary as not an error", func() {
		var buf bytes.Buffer
		Expect(xbf.PrimitiveMetadata_Bool.SerializeMetadata(&buf)).To(Succeed())

		s := xbf.NewStreamScanner(&buf)
		Expect(s.Next()).To(BeFalse())
		Expect(s.Err()).NotTo(HaveOccurred())
	})

	It("surfaces a truncated value as an error", func() {
		var buf bytes.Buffer
		Expect(xbf.PrimitiveMetadata_I32.SerializeMetadata(&buf)).To(Succeed())
		buf.Write([]byte{1, 2}) // only 2 of 4 bytes for an I32

		s := xbf.NewStreamScanner(&buf)
		Expect(s.Next()).To(BeFalse())
		Expect(s.Err()).To(HaveOccurred())
	})
})
