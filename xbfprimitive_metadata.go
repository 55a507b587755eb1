// Copyright (c) 2026 Neomantra Corp

package xbf

import (
	"fmt"
	"io"
)

// PrimitiveMetadata is the discriminant for one of the 17 scalar kinds
// (spec.md §3, §6). Values in adjacent slots are numerically contiguous.
type PrimitiveMetadata Discriminant

const (
	PrimitiveMetadata_Bool   PrimitiveMetadata = PrimitiveMetadata(Disc_Bool)
	PrimitiveMetadata_U8     PrimitiveMetadata = PrimitiveMetadata(Disc_U8)
	PrimitiveMetadata_U16    PrimitiveMetadata = PrimitiveMetadata(Disc_U16)
	PrimitiveMetadata_U32    PrimitiveMetadata = PrimitiveMetadata(Disc_U32)
	PrimitiveMetadata_U64    PrimitiveMetadata = PrimitiveMetadata(Disc_U64)
	PrimitiveMetadata_U128   PrimitiveMetadata = PrimitiveMetadata(Disc_U128)
	PrimitiveMetadata_U256   PrimitiveMetadata = PrimitiveMetadata(Disc_U256)
	PrimitiveMetadata_I8     PrimitiveMetadata = PrimitiveMetadata(Disc_I8)
	PrimitiveMetadata_I16    PrimitiveMetadata = PrimitiveMetadata(Disc_I16)
	PrimitiveMetadata_I32    PrimitiveMetadata = PrimitiveMetadata(Disc_I32)
	PrimitiveMetadata_I64    PrimitiveMetadata = PrimitiveMetadata(Disc_I64)
	PrimitiveMetadata_I128   PrimitiveMetadata = PrimitiveMetadata(Disc_I128)
	PrimitiveMetadata_I256   PrimitiveMetadata = PrimitiveMetadata(Disc_I256)
	PrimitiveMetadata_F32    PrimitiveMetadata = PrimitiveMetadata(Disc_F32)
	PrimitiveMetadata_F64    PrimitiveMetadata = PrimitiveMetadata(Disc_F64)
	PrimitiveMetadata_Bytes  PrimitiveMetadata = PrimitiveMetadata(Disc_Bytes)
	PrimitiveMetadata_String PrimitiveMetadata = PrimitiveMetadata(Disc_String)
)

var primitiveMetadataNames = map[PrimitiveMetadata]string{
	PrimitiveMetadata_Bool:   "Bool",
	PrimitiveMetadata_U8:     "U8",
	PrimitiveMetadata_U16:    "U16",
	PrimitiveMetadata_U32:    "U32",
	PrimitiveMetadata_U64:    "U64",
	PrimitiveMetadata_U128:   "U128",
	PrimitiveMetadata_U256:   "U256",
	PrimitiveMetadata_I8:     "I8",
	PrimitiveMetadata_I16:    "I16",
	PrimitiveMetadata_I32:    "I32",
	PrimitiveMetadata_I64:    "I64",
	PrimitiveMetadata_I128:   "I128",
	PrimitiveMetadata_I256:   "I256",
	PrimitiveMetadata_F32:    "F32",
	PrimitiveMetadata_F64:    "F64",
	PrimitiveMetadata_Bytes:  "Bytes",
	PrimitiveMetadata_String: "String",
}

// String implements fmt.Stringer.
func (p PrimitiveMetadata) String() string {
	if name, ok := primitiveMetadataNames[p]; ok {
		return name
	}
	return fmt.Sprintf("PrimitiveMetadata(%d)", uint8(p))
}

// isMetadata marks PrimitiveMetadata as satisfying the Metadata interface.
func (p PrimitiveMetadata) isMetadata() {}

// Equal reports whether two metadata values describe the same type.
func (p PrimitiveMetadata) Equal(other Metadata) bool {
	o, ok := other.(PrimitiveMetadata)
	return ok && o == p
}

// SerializePrimitiveMetadata writes the single discriminant byte.
func (p PrimitiveMetadata) SerializePrimitiveMetadata(w io.Writer) error {
	_, err := w.Write([]byte{byte(p)})
	return err
}

// SerializeMetadata implements Metadata.
func (p PrimitiveMetadata) SerializeMetadata(w io.Writer) error {
	return p.SerializePrimitiveMetadata(w)
}

// primitiveMetadataFromDiscriminant converts a raw byte into
// PrimitiveMetadata, failing for anything outside 0..=16.
func primitiveMetadataFromDiscriminant(b byte) (PrimitiveMetadata, error) {
	if b > byte(Disc_PrimitiveMax) {
		return 0, unknownDiscriminantError(b)
	}
	return PrimitiveMetadata(b), nil
}

// DeserializePrimitiveMetadata reads and validates a single discriminant
// byte as primitive metadata.
func DeserializePrimitiveMetadata(r io.Reader) (PrimitiveMetadata, error) {
	b, err := readU8(r)
	if err != nil {
		return 0, err
	}
	return primitiveMetadataFromDiscriminant(b)
}
