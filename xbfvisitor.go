// Copyright (c) 2026 Neomantra Corp

package xbf

// Visitor walks a decoded Value tree. Every recursive descent into a
// vector or struct that the base dispatcher performs (spec.md §2.4)
// can equally be driven by a Visitor instead of direct recursion, which
// is convenient for tooling that wants to render or index a value
// without pattern-matching on its concrete Go type at every call site.
type Visitor interface {
	OnPrimitive(v Value) error

	OnVectorStart(v *Vector) error
	OnVectorEnd(v *Vector) error

	OnStructStart(s *Struct) error
	OnStructField(name string, v Value) error
	OnStructEnd(s *Struct) error
}

// NullVisitor implements all of Visitor as no-ops. Embed it and
// override only the methods a concrete visitor cares about.
type NullVisitor struct{}

func (NullVisitor) OnPrimitive(v Value) error { return nil }

func (NullVisitor) OnVectorStart(v *Vector) error { return nil }
func (NullVisitor) OnVectorEnd(v *Vector) error   { return nil }

func (NullVisitor) OnStructStart(s *Struct) error          { return nil }
func (NullVisitor) OnStructField(name string, v Value) error { return nil }
func (NullVisitor) OnStructEnd(s *Struct) error            { return nil }

// Accept performs a pre-order walk of v, dispatching to visitor at each
// node. Vectors visit OnVectorStart, then each element (recursively),
// then OnVectorEnd. Structs visit OnStructStart, then each field in
// declaration order via OnStructField with the recursive walk of that
// field's value, then OnStructEnd.
func Accept(v Value, visitor Visitor) error {
	switch val := v.(type) {
	case *Vector:
		if err := visitor.OnVectorStart(val); err != nil {
			return err
		}
		for _, el := range val.Elements() {
			if err := Accept(el, visitor); err != nil {
				return err
			}
		}
		return visitor.OnVectorEnd(val)
	case *Struct:
		if err := visitor.OnStructStart(val); err != nil {
			return err
		}
		for _, decl := range val.StructMetadata().Fields() {
			fieldValue, _ := val.Get(decl.Name)
			if err := visitor.OnStructField(decl.Name, fieldValue); err != nil {
				return err
			}
			if err := Accept(fieldValue, visitor); err != nil {
				return err
			}
		}
		return visitor.OnStructEnd(val)
	default:
		return visitor.OnPrimitive(v)
	}
}
