// Copyright (c) 2026 Neomantra Corp

package xbf

import "io"

// Struct is a named ordered record of named field values (spec.md §3
// "Struct value"). It exclusively owns its field values; fields is kept
// in the same order as metadata.Fields(), which is what lets
// SerializeStructValue write no per-field framing.
type Struct struct {
	metadata *StructMetadata
	fields   []Value
}

// NewStruct constructs a struct, verifying that fields has the same
// count as metadata's declared fields and that each value's derived
// metadata equals the corresponding declared field metadata, in
// declaration order.
func NewStruct(metadata *StructMetadata, fields []Value) (*Struct, error) {
	if len(fields) != metadata.FieldCount() {
		return nil, fieldCountMismatchError(metadata.FieldCount(), len(fields))
	}
	for i, decl := range metadata.Fields() {
		if !decl.Metadata.Equal(MetadataOf(fields[i])) {
			return nil, fieldTypeMismatchError(decl.Name, decl.Metadata, MetadataOf(fields[i]))
		}
	}
	return NewStructUnchecked(metadata, fields), nil
}

// NewStructUnchecked constructs a struct without verifying field count
// or field types. It is the fast path used internally by
// deserialization, which has already parsed each field under its
// declared metadata.
func NewStructUnchecked(metadata *StructMetadata, fields []Value) *Struct {
	return &Struct{metadata: metadata, fields: fields}
}

// StructMetadata returns the struct's stored metadata.
func (s *Struct) StructMetadata() *StructMetadata {
	return s.metadata
}

// FieldValues returns the field values in declaration order. The
// returned slice must not be mutated; use Set to replace a field.
func (s *Struct) FieldValues() []Value {
	return s.fields
}

// Get returns the value stored for fieldName, or (nil, false) if no
// such field exists. O(1) via the metadata's name->index map.
func (s *Struct) Get(fieldName string) (Value, bool) {
	idx, ok := s.metadata.FieldIndex(fieldName)
	if !ok {
		return nil, false
	}
	return s.fields[idx], true
}

// Set replaces fieldName's value with newValue, returning the previous
// value. The replacement is accepted only when newValue's derived
// metadata equals the declared field metadata; otherwise Set leaves the
// struct unchanged and returns (nil, false).
func (s *Struct) Set(fieldName string, newValue Value) (Value, bool) {
	idx, ok := s.metadata.FieldIndex(fieldName)
	if !ok {
		return nil, false
	}
	declared, _ := s.metadata.FieldMetadata(fieldName)
	if !declared.Equal(MetadataOf(newValue)) {
		return nil, false
	}
	previous := s.fields[idx]
	s.fields[idx] = newValue
	return previous, true
}

func (*Struct) isValue() {}

// Metadata implements Value.
func (s *Struct) Metadata() Metadata {
	return s.metadata
}

// SerializeStructValue concatenates the fields' value payloads in
// declaration order. There is no per-field framing and no field names
// on the wire: the parser must consume field metadata in exactly the
// order it was written (spec.md §4.3).
func (s *Struct) SerializeStructValue(w io.Writer) error {
	for _, field := range s.fields {
		if err := field.SerializeValue(w); err != nil {
			return err
		}
	}
	return nil
}

// SerializeValue implements Value.
func (s *Struct) SerializeValue(w io.Writer) error {
	return s.SerializeStructValue(w)
}

// deserializeStructValueBody reads, for each field in declaration
// order, the value payload directed by that field's metadata.
func deserializeStructValueBody(metadata *StructMetadata, r io.Reader) (*Struct, error) {
	decls := metadata.Fields()
	values := make([]Value, 0, len(decls))
	for _, decl := range decls {
		v, err := DeserializeValue(decl.Metadata, r)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return NewStructUnchecked(metadata, values), nil
}

// DeserializeStructValue reads, for each field in declaration order,
// the value payload directed by that field's metadata.
func DeserializeStructValue(metadata *StructMetadata, r io.Reader) (*Struct, error) {
	return deserializeStructValueBody(metadata, r)
}
