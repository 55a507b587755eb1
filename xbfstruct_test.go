// Copyright (c) 2026 Neomantra Corp

package xbf_test

import (
	"bytes"
	"encoding/binary"

	"github.com/nimblemarkets/xbf-go"

	"github.com/google/go-cmp/cmp"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func dragonRiderMetadata() *xbf.StructMetadata {
	sm, err := xbf.NewStructMetadata("DragonRider", []xbf.StructField{
		{Name: "name", Metadata: xbf.PrimitiveMetadata_String},
		{Name: "age", Metadata: xbf.PrimitiveMetadata_U16},
	})
	Expect(err).NotTo(HaveOccurred())
	return sm
}

var _ = Describe("Struct", func() {
	Context("construction", func() {
		It("rejects a field count mismatch", func() {
			sm := dragonRiderMetadata()
			_, err := xbf.NewStruct(sm, []xbf.Value{xbf.String("Eragon")})
			Expect(err).To(MatchError(xbf.ErrFieldCountMismatch))
		})
		It("rejects a field type mismatch", func() {
			sm := dragonRiderMetadata()
			_, err := xbf.NewStruct(sm, []xbf.Value{xbf.String("Eragon"), xbf.I32(16)})
			Expect(err).To(MatchError(xbf.ErrFieldTypeMismatch))
		})
		It("accepts matching field types in declaration order", func() {
			sm := dragonRiderMetadata()
			s, err := xbf.NewStruct(sm, []xbf.Value{xbf.String("Eragon"), xbf.U16(16)})
			Expect(err).NotTo(HaveOccurred())
			v, ok := s.Get("name")
			Expect(ok).To(BeTrue())
			Expect(v).To(Equal(xbf.String("Eragon")))
		})
	})

	Context("the DragonRider worked example", func() {
		It("serializes field payloads back to back with no framing", func() {
			sm := dragonRiderMetadata()
			s, err := xbf.NewStruct(sm, []xbf.Value{xbf.String("Eragon"), xbf.U16(16)})
			Expect(err).NotTo(HaveOccurred())

			var want bytes.Buffer
			binary.Write(&want, binary.LittleEndian, uint64(len("Eragon")))
			want.WriteString("Eragon")
			binary.Write(&want, binary.LittleEndian, uint16(16))

			var got bytes.Buffer
			Expect(s.SerializeValue(&got)).To(Succeed())
			Expect(got.Bytes()).To(Equal(want.Bytes()))
		})
	})

	Context("Get/Set", func() {
		It("replaces a field when the new value's type matches", func() {
			sm := dragonRiderMetadata()
			s, err := xbf.NewStruct(sm, []xbf.Value{xbf.String("Eragon"), xbf.U16(16)})
			Expect(err).NotTo(HaveOccurred())

			prev, ok := s.Set("age", xbf.U16(17))
			Expect(ok).To(BeTrue())
			Expect(prev).To(Equal(xbf.U16(16)))

			v, _ := s.Get("age")
			Expect(v).To(Equal(xbf.U16(17)))
		})
		It("leaves the struct unchanged when the new value's type doesn't match", func() {
			sm := dragonRiderMetadata()
			s, err := xbf.NewStruct(sm, []xbf.Value{xbf.String("Eragon"), xbf.U16(16)})
			Expect(err).NotTo(HaveOccurred())

			_, ok := s.Set("age", xbf.I32(17))
			Expect(ok).To(BeFalse())

			v, _ := s.Get("age")
			Expect(v).To(Equal(xbf.U16(16)))
		})
		It("reports false for an unknown field", func() {
			sm := dragonRiderMetadata()
			s, err := xbf.NewStruct(sm, []xbf.Value{xbf.String("Eragon"), xbf.U16(16)})
			Expect(err).NotTo(HaveOccurred())

			_, ok := s.Get("unknown")
			Expect(ok).To(BeFalse())
		})
	})

	Context("round trip", func() {
		It("reconstructs fields in declaration order", func() {
			sm := dragonRiderMetadata()
			s, err := xbf.NewStruct(sm, []xbf.Value{xbf.String("Eragon"), xbf.U16(16)})
			Expect(err).NotTo(HaveOccurred())

			var buf bytes.Buffer
			Expect(s.SerializeValue(&buf)).To(Succeed())

			got, err := xbf.DeserializeStructValue(sm, &buf)
			Expect(err).NotTo(HaveOccurred())

			wantJSON, err := xbf.ValueToJSON(s)
			Expect(err).NotTo(HaveOccurred())
			gotJSON, err := xbf.ValueToJSON(got)
			Expect(err).NotTo(HaveOccurred())
			Expect(cmp.Diff(wantJSON, gotJSON)).To(BeEmpty())
		})
	})
})
