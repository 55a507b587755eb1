// Copyright (c) 2026 Neomantra Corp

package xbf_test

import (
	"bytes"

	"github.com/nimblemarkets/xbf-go"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Vector", func() {
	Context("construction", func() {
		It("accepts homogeneous elements", func() {
			vm := xbf.NewVectorMetadata(xbf.PrimitiveMetadata_I32)
			v, err := xbf.NewVector(vm, []xbf.Value{xbf.I32(1), xbf.I32(2)})
			Expect(err).NotTo(HaveOccurred())
			Expect(v.Len()).To(Equal(2))
		})
		It("rejects a mismatched element with ErrNotHomogeneous", func() {
			vm := xbf.NewVectorMetadata(xbf.PrimitiveMetadata_I32)
			_, err := xbf.NewVector(vm, []xbf.Value{xbf.I32(1), xbf.U8(2)})
			Expect(err).To(MatchError(xbf.ErrNotHomogeneous))
		})
		It("accepts an empty vector", func() {
			vm := xbf.NewVectorMetadata(xbf.PrimitiveMetadata_I32)
			v, err := xbf.NewVector(vm, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(v.Len()).To(Equal(0))
		})
	})

	Context("serialization", func() {
		It("writes a u64 count then each element in order", func() {
			vm := xbf.NewVectorMetadata(xbf.PrimitiveMetadata_I32)
			v, err := xbf.NewVector(vm, []xbf.Value{xbf.I32(1), xbf.I32(2)})
			Expect(err).NotTo(HaveOccurred())

			var buf bytes.Buffer
			Expect(v.SerializeValue(&buf)).To(Succeed())
			want := []byte{
				2, 0, 0, 0, 0, 0, 0, 0, // count = 2
				1, 0, 0, 0, // I32(1)
				2, 0, 0, 0, // I32(2)
			}
			Expect(buf.Bytes()).To(Equal(want))
		})
		It("writes a zero count for an empty vector", func() {
			vm := xbf.NewVectorMetadata(xbf.PrimitiveMetadata_I32)
			v, err := xbf.NewVector(vm, nil)
			Expect(err).NotTo(HaveOccurred())

			var buf bytes.Buffer
			Expect(v.SerializeValue(&buf)).To(Succeed())
			Expect(buf.Bytes()).To(Equal([]byte{0, 0, 0, 0, 0, 0, 0, 0}))
		})
	})

	Context("round trip", func() {
		It("reconstructs elements directed by the inner metadata", func() {
			vm := xbf.NewVectorMetadata(xbf.PrimitiveMetadata_String)
			v, err := xbf.NewVector(vm, []xbf.Value{xbf.String("a"), xbf.String("bb")})
			Expect(err).NotTo(HaveOccurred())

			var buf bytes.Buffer
			Expect(v.SerializeValue(&buf)).To(Succeed())

			got, err := xbf.DeserializeVectorValue(vm, &buf)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Len()).To(Equal(2))
			Expect(got.Get(0)).To(Equal(xbf.String("a")))
			Expect(got.Get(1)).To(Equal(xbf.String("bb")))
		})
	})
})
