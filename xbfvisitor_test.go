// Copyright (c) 2026 Neomantra Corp

package xbf_test

import (
	"github.com/nimblemarkets/xbf-go"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type recordingVisitor struct {
	xbf.NullVisitor
	events []string
}

func (r *recordingVisitor) OnPrimitive(v xbf.Value) error {
	r.events = append(r.events, "primitive")
	return nil
}

func (r *recordingVisitor) OnVectorStart(v *xbf.Vector) error {
	r.events = append(r.events, "vector-start")
	return nil
}

func (r *recordingVisitor) OnVectorEnd(v *xbf.Vector) error {
	r.events = append(r.events, "vector-end")
	return nil
}

func (r *recordingVisitor) OnStructStart(s *xbf.Struct) error {
	r.events = append(r.events, "struct-start")
	return nil
}

func (r *recordingVisitor) OnStructField(name string, v xbf.Value) error {
	r.events = append(r.events, "field:"+name)
	return nil
}

func (r *recordingVisitor) OnStructEnd(s *xbf.Struct) error {
	r.events = append(r.events, "struct-end")
	return nil
}

var _ = Describe("Accept", func() {
	It("walks a struct's fields in declaration order", func() {
		sm, err := xbf.NewStructMetadata("DragonRider", []xbf.StructField{
			{Name: "name", Metadata: xbf.PrimitiveMetadata_String},
			{Name: "age", Metadata: xbf.PrimitiveMetadata_U16},
		})
		Expect(err).NotTo(HaveOccurred())
		s, err := xbf.NewStruct(sm, []xbf.Value{xbf.String("Eragon"), xbf.U16(16)})
		Expect(err).NotTo(HaveOccurred())

		rv := &recordingVisitor{}
		Expect(xbf.Accept(s, rv)).To(Succeed())
		Expect(rv.events).To(Equal([]string{
			"struct-start",
			"field:name", "primitive",
			"field:age", "primitive",
			"struct-end",
		}))
	})

	It("walks vector elements in order, wrapped by start/end", func() {
		vm := xbf.NewVectorMetadata(xbf.PrimitiveMetadata_I32)
		v, err := xbf.NewVector(vm, []xbf.Value{xbf.I32(1), xbf.I32(2)})
		Expect(err).NotTo(HaveOccurred())

		rv := &recordingVisitor{}
		Expect(xbf.Accept(v, rv)).To(Succeed())
		Expect(rv.events).To(Equal([]string{"vector-start", "primitive", "primitive", "vector-end"}))
	})

	It("visits a bare primitive directly", func() {
		rv := &recordingVisitor{}
		Expect(xbf.Accept(xbf.I32(5), rv)).To(Succeed())
		Expect(rv.events).To(Equal([]string{"primitive"}))
	})
})
