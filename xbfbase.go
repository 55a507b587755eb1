// Copyright (c) 2026 Neomantra Corp

package xbf

import "io"

// Metadata is the tagged union over PrimitiveMetadata, *VectorMetadata,
// and *StructMetadata (spec.md §3 "Base metadata"). Every recursive
// descent into a vector or struct metadata goes through this interface,
// which makes arbitrary nesting a natural fixed point (spec.md §2.4).
type Metadata interface {
	isMetadata()
	// SerializeMetadata writes this metadata's wire representation,
	// including its own leading discriminant byte.
	SerializeMetadata(w io.Writer) error
	// Equal reports whether two Metadata values describe the same type.
	Equal(other Metadata) bool
}

// Value is the tagged union over the primitive value types, *Vector, and
// *Struct (spec.md §3 "Base value").
type Value interface {
	isValue()
	// SerializeValue writes this value's payload. The discriminant lives
	// in the metadata, not the value, so no tag byte is written here.
	SerializeValue(w io.Writer) error
	// Metadata returns the metadata this value was constructed or
	// deserialized under. For primitives this is a pure projection of
	// the value's Go type; for vectors and structs it is the metadata
	// stored at construction time (spec.md §9 "Derived metadata vs
	// stored metadata").
	Metadata() Metadata
}

// SerializeMetadata dispatches on m's dynamic type to the matching
// layer's metadata serializer (spec.md §4.4). Exactly one leading
// discriminant byte is written by the callee.
func SerializeMetadata(m Metadata, w io.Writer) error {
	return m.SerializeMetadata(w)
}

// DeserializeMetadata reads one discriminant byte and dispatches:
// 0..=16 builds primitive metadata, 17 recurses into vector metadata,
// 18 recurses into struct metadata. Anything else is
// ErrInvalidDiscriminant.
func DeserializeMetadata(r io.Reader) (Metadata, error) {
	b, err := readU8(r)
	if err != nil {
		return nil, err
	}
	d := Discriminant(b)
	switch {
	case d.IsPrimitive():
		pm, err := primitiveMetadataFromDiscriminant(b)
		if err != nil {
			return nil, err
		}
		return pm, nil
	case d == Disc_Vector:
		return deserializeVectorMetadataBody(r)
	case d == Disc_Struct:
		return deserializeStructMetadataBody(r)
	default:
		return nil, unknownDiscriminantError(b)
	}
}

// SerializeValue dispatches on v's dynamic type to the matching layer's
// value serializer. No discriminant is written: the caller is assumed
// to already hold (or have just written) the metadata that directs
// decoding.
func SerializeValue(v Value, w io.Writer) error {
	return v.SerializeValue(w)
}

// DeserializeValue reads a value payload directed by metadata, dispatching
// on metadata's dynamic type.
func DeserializeValue(metadata Metadata, r io.Reader) (Value, error) {
	switch m := metadata.(type) {
	case PrimitiveMetadata:
		return DeserializePrimitiveValue(m, r)
	case *VectorMetadata:
		return deserializeVectorValueBody(m, r)
	case *StructMetadata:
		return deserializeStructValueBody(m, r)
	default:
		return nil, unknownDiscriminantError(0)
	}
}

// MetadataOf returns v's derived metadata, the canonical projection used
// by the homogeneity and field-type invariants.
func MetadataOf(v Value) Metadata {
	return v.Metadata()
}
