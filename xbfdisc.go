// Copyright (c) 2026 Neomantra Corp
//
// Package xbf implements the Extensible Binary Format: a self-describing
// binary encoding whose value is a type system defined at the byte level,
// plus a pair of reciprocal codecs that serialize typed values to a
// compact binary stream and reconstruct them by first reading their type
// descriptor.
package xbf

// Discriminant is the single leading byte tagging a metadata variant on
// the wire. Primitive discriminants occupy 0..=16; Vector and Struct
// occupy the two slots immediately after.
type Discriminant uint8

const (
	Disc_Bool   Discriminant = 0
	Disc_U8     Discriminant = 1
	Disc_U16    Discriminant = 2
	Disc_U32    Discriminant = 3
	Disc_U64    Discriminant = 4
	Disc_U128   Discriminant = 5
	Disc_U256   Discriminant = 6
	Disc_I8     Discriminant = 7
	Disc_I16    Discriminant = 8
	Disc_I32    Discriminant = 9
	Disc_I64    Discriminant = 10
	Disc_I128   Discriminant = 11
	Disc_I256   Discriminant = 12
	Disc_F32    Discriminant = 13
	Disc_F64    Discriminant = 14
	Disc_Bytes  Discriminant = 15
	Disc_String Discriminant = 16

	// Disc_Vector is one past the last primitive discriminant.
	Disc_Vector Discriminant = Disc_String + 1
	// Disc_Struct is one past Disc_Vector.
	Disc_Struct Discriminant = Disc_Vector + 1

	// Disc_PrimitiveMax is the highest discriminant value that belongs to
	// the primitive range.
	Disc_PrimitiveMax Discriminant = Disc_String
)

// IsPrimitive reports whether d falls in the primitive discriminant range.
func (d Discriminant) IsPrimitive() bool {
	return d <= Disc_PrimitiveMax
}
