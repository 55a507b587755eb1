// Copyright (c) 2026 Neomantra Corp

package xbf_test

import (
	"bytes"
	"encoding/binary"

	"github.com/nimblemarkets/xbf-go"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// lpString builds the length-prefixed (u64-le length + raw bytes) framing
// used for struct/field names and the String primitive payload.
func lpString(s string) []byte {
	var buf bytes.Buffer
	binary.Write(&buf, binary.LittleEndian, uint64(len(s)))
	buf.WriteString(s)
	return buf.Bytes()
}

var _ = Describe("StructMetadata", func() {
	Context("construction", func() {
		It("rejects a duplicate field name", func() {
			_, err := xbf.NewStructMetadata("Dup", []xbf.StructField{
				{Name: "x", Metadata: xbf.PrimitiveMetadata_I32},
				{Name: "x", Metadata: xbf.PrimitiveMetadata_U8},
			})
			Expect(err).To(MatchError(xbf.ErrDuplicateFieldName))
		})
		It("preserves declaration order and O(1) lookups", func() {
			sm, err := xbf.NewStructMetadata("DragonRider", []xbf.StructField{
				{Name: "name", Metadata: xbf.PrimitiveMetadata_String},
				{Name: "age", Metadata: xbf.PrimitiveMetadata_U16},
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(sm.FieldCount()).To(Equal(2))
			idx, ok := sm.FieldIndex("age")
			Expect(ok).To(BeTrue())
			Expect(idx).To(Equal(1))
			meta, ok := sm.FieldMetadata("name")
			Expect(ok).To(BeTrue())
			Expect(meta).To(Equal(xbf.PrimitiveMetadata_String))
		})
	})

	Context("the DragonRider worked example", func() {
		It("serializes to the documented metadata bytes", func() {
			sm, err := xbf.NewStructMetadata("DragonRider", []xbf.StructField{
				{Name: "name", Metadata: xbf.PrimitiveMetadata_String},
				{Name: "age", Metadata: xbf.PrimitiveMetadata_U16},
			})
			Expect(err).NotTo(HaveOccurred())

			var want bytes.Buffer
			want.WriteByte(byte(xbf.Disc_Struct))
			want.Write(lpString("DragonRider"))
			binary.Write(&want, binary.LittleEndian, uint16(2))
			want.Write(lpString("name"))
			want.WriteByte(byte(xbf.Disc_String))
			want.Write(lpString("age"))
			want.WriteByte(byte(xbf.Disc_U16))

			var got bytes.Buffer
			Expect(sm.SerializeMetadata(&got)).To(Succeed())
			Expect(got.Bytes()).To(Equal(want.Bytes()))
		})
	})

	Context("round trip", func() {
		It("reconstructs an equal struct metadata", func() {
			sm, err := xbf.NewStructMetadata("DragonRider", []xbf.StructField{
				{Name: "name", Metadata: xbf.PrimitiveMetadata_String},
				{Name: "age", Metadata: xbf.PrimitiveMetadata_U16},
			})
			Expect(err).NotTo(HaveOccurred())

			var buf bytes.Buffer
			Expect(sm.SerializeMetadata(&buf)).To(Succeed())

			got, err := xbf.DeserializeMetadata(&buf)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Equal(sm)).To(BeTrue())
		})
	})

	Context("Equal", func() {
		It("requires matching field order, not just matching field sets", func() {
			a, _ := xbf.NewStructMetadata("S", []xbf.StructField{
				{Name: "x", Metadata: xbf.PrimitiveMetadata_I32},
				{Name: "y", Metadata: xbf.PrimitiveMetadata_I32},
			})
			b, _ := xbf.NewStructMetadata("S", []xbf.StructField{
				{Name: "y", Metadata: xbf.PrimitiveMetadata_I32},
				{Name: "x", Metadata: xbf.PrimitiveMetadata_I32},
			})
			Expect(a.Equal(b)).To(BeFalse())
		})
	})
})
