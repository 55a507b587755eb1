// Copyright (c) 2026 Neomantra Corp

package xbf

import (
	"io"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// StructField pairs a field name with its metadata, in declaration
// order — the shape NewStructMetadata takes so callers don't need to
// build an ordered map themselves.
type StructField struct {
	Name     string
	Metadata Metadata
}

// StructMetadata is a named ordered record of named fields (spec.md §3
// "Struct metadata"). The field container preserves insertion order
// (the order is observable on the wire, spec.md §9) while still
// offering O(1) name lookup, via an insertion-ordered map rather than
// the parallel slice+map pair spec.md §9 mentions as the alternative.
type StructMetadata struct {
	name   string
	fields *orderedmap.OrderedMap[string, Metadata]
	index  map[string]int
}

// NewStructMetadata builds metadata for a named record. fields are
// stored in the order given; a duplicate field name fails with
// ErrDuplicateFieldName, reporting the name and both conflicting
// metadata values.
func NewStructMetadata(name string, fields []StructField) (*StructMetadata, error) {
	om := orderedmap.New[string, Metadata]()
	index := make(map[string]int, len(fields))
	for _, f := range fields {
		if existing, ok := om.Get(f.Name); ok {
			return nil, duplicateFieldNameError(f.Name, existing, f.Metadata)
		}
		om.Set(f.Name, f.Metadata)
		index[f.Name] = len(index)
	}
	return &StructMetadata{name: name, fields: om, index: index}, nil
}

// Name returns the record name.
func (s *StructMetadata) Name() string {
	return s.name
}

// FieldCount returns the number of declared fields.
func (s *StructMetadata) FieldCount() int {
	return s.fields.Len()
}

// FieldMetadata returns the metadata declared for fieldName, and
// whether it exists, in O(1).
func (s *StructMetadata) FieldMetadata(fieldName string) (Metadata, bool) {
	return s.fields.Get(fieldName)
}

// FieldIndex returns fieldName's position in declaration order, and
// whether it exists, in O(1).
func (s *StructMetadata) FieldIndex(fieldName string) (int, bool) {
	i, ok := s.index[fieldName]
	return i, ok
}

// Fields returns the declared fields in declaration order.
func (s *StructMetadata) Fields() []StructField {
	out := make([]StructField, 0, s.fields.Len())
	for pair := s.fields.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, StructField{Name: pair.Key, Metadata: pair.Value})
	}
	return out
}

func (*StructMetadata) isMetadata() {}

// Equal reports whether two struct metadata values describe records
// with the same name and the same fields in the same order.
func (s *StructMetadata) Equal(other Metadata) bool {
	o, ok := other.(*StructMetadata)
	if !ok || s.name != o.name || s.fields.Len() != o.fields.Len() {
		return false
	}
	a, b := s.fields.Oldest(), o.fields.Oldest()
	for a != nil {
		if b == nil || a.Key != b.Key || !a.Value.Equal(b.Value) {
			return false
		}
		a, b = a.Next(), b.Next()
	}
	return b == nil
}

// SerializeStructMetadata writes the struct discriminant byte (18), the
// record name as a length-prefixed UTF-8 string, an unsigned 16-bit
// little-endian field count, then for each field the field name
// (length-prefixed UTF-8) followed by the field's base metadata
// recursively, in declaration order.
func (s *StructMetadata) SerializeStructMetadata(w io.Writer) error {
	if _, err := w.Write([]byte{byte(Disc_Struct)}); err != nil {
		return err
	}
	if err := writeLpString(w, s.name); err != nil {
		return err
	}
	if err := writeU16(w, uint16(s.fields.Len())); err != nil {
		return err
	}
	for pair := s.fields.Oldest(); pair != nil; pair = pair.Next() {
		if err := writeLpString(w, pair.Key); err != nil {
			return err
		}
		if err := pair.Value.SerializeMetadata(w); err != nil {
			return err
		}
	}
	return nil
}

// SerializeMetadata implements Metadata.
func (s *StructMetadata) SerializeMetadata(w io.Writer) error {
	return s.SerializeStructMetadata(w)
}

// deserializeStructMetadataBody is the inverse of
// SerializeStructMetadata's body. The caller has already consumed the
// Disc_Struct discriminant byte. Duplicate field names fail with
// ErrDuplicateFieldName.
func deserializeStructMetadataBody(r io.Reader) (*StructMetadata, error) {
	name, err := readLpString(r)
	if err != nil {
		return nil, err
	}
	fieldCount, err := readU16(r)
	if err != nil {
		return nil, err
	}
	fields := make([]StructField, 0, fieldCount)
	for i := uint16(0); i < fieldCount; i++ {
		fieldName, err := readLpString(r)
		if err != nil {
			return nil, err
		}
		fieldMeta, err := DeserializeMetadata(r)
		if err != nil {
			return nil, err
		}
		fields = append(fields, StructField{Name: fieldName, Metadata: fieldMeta})
	}
	return NewStructMetadata(name, fields)
}

// DeserializeStructMetadata reads a Disc_Struct-tagged metadata blob,
// assuming the caller already knows the next bytes describe a struct.
// Most callers should go through DeserializeMetadata instead.
func DeserializeStructMetadata(r io.Reader) (*StructMetadata, error) {
	d, err := readU8(r)
	if err != nil {
		return nil, err
	}
	if Discriminant(d) != Disc_Struct {
		return nil, unknownDiscriminantError(d)
	}
	return deserializeStructMetadataBody(r)
}
