// Copyright (c) 2026 Neomantra Corp

package xbf

import "io"

// VectorMetadata carries exactly one reference to the element type's
// base metadata (spec.md §3 "Vector metadata"). Metadata is immutable
// after construction, so a *VectorMetadata can be shared by any number
// of Vector values or nested inside other metadata without deep-copying
// its inner type — the Go garbage collector gives reference-counted-like
// sharing for free, which is why this is a pointer rather than a value
// type (spec.md §5 "Shared resources").
type VectorMetadata struct {
	inner Metadata
}

// NewVectorMetadata builds metadata for a vector whose elements all
// share innerMetadata.
func NewVectorMetadata(innerMetadata Metadata) *VectorMetadata {
	return &VectorMetadata{inner: innerMetadata}
}

// Inner returns the element type's metadata.
func (v *VectorMetadata) Inner() Metadata {
	return v.inner
}

func (*VectorMetadata) isMetadata() {}

// Equal reports whether two vector metadata values describe vectors of
// the same element type.
func (v *VectorMetadata) Equal(other Metadata) bool {
	o, ok := other.(*VectorMetadata)
	return ok && v.inner.Equal(o.inner)
}

// SerializeVectorMetadata writes the vector discriminant byte (17),
// then recursively serializes the inner base metadata.
func (v *VectorMetadata) SerializeVectorMetadata(w io.Writer) error {
	if _, err := w.Write([]byte{byte(Disc_Vector)}); err != nil {
		return err
	}
	return v.inner.SerializeMetadata(w)
}

// SerializeMetadata implements Metadata.
func (v *VectorMetadata) SerializeMetadata(w io.Writer) error {
	return v.SerializeVectorMetadata(w)
}

// deserializeVectorMetadataBody reads the inner base metadata
// recursively. The caller has already consumed the Disc_Vector
// discriminant byte.
func deserializeVectorMetadataBody(r io.Reader) (*VectorMetadata, error) {
	inner, err := DeserializeMetadata(r)
	if err != nil {
		return nil, err
	}
	return &VectorMetadata{inner: inner}, nil
}

// DeserializeVectorMetadata reads a Disc_Vector-tagged metadata blob,
// assuming the caller already knows the next bytes describe a vector.
// Most callers should go through DeserializeMetadata instead.
func DeserializeVectorMetadata(r io.Reader) (*VectorMetadata, error) {
	d, err := readU8(r)
	if err != nil {
		return nil, err
	}
	if Discriminant(d) != Disc_Vector {
		return nil, unknownDiscriminantError(d)
	}
	return deserializeVectorMetadataBody(r)
}
