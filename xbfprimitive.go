// Copyright (c) 2026 Neomantra Corp

package xbf

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Uint128 holds a 128-bit unsigned integer as two 64-bit limbs, Lo being
// the least-significant 64 bits. Go has no native 128-bit integer type,
// so the limb pair is the wire-equivalent of the 16 little-endian bytes
// spec.md §6 calls for (`uN_val := N/8 bytes little-endian`).
type Uint128 struct {
	Lo, Hi uint64
}

// Int128 holds a 128-bit two's-complement integer as two 64-bit limbs,
// Lo being the least-significant 64 bits and Hi carrying the sign in its
// top bit.
type Int128 struct {
	Lo, Hi uint64
}

// Uint256 holds a 256-bit unsigned integer as four 64-bit limbs in index
// order, limb 0 least significant, matching `original_source`'s
// `U256([u64; 4])` representation (spec.md §3, §9 Open Question).
type Uint256 [4]uint64

// Int256 holds a 256-bit two's-complement integer as four 64-bit limbs
// in index order, limb 0 least significant.
type Int256 [4]uint64

// Bool is the XBF Bool primitive. Deserialization treats any nonzero
// byte as true and only 0 as false (spec.md §4.1).
type Bool bool

type U8 uint8
type U16 uint16
type U32 uint32
type U64 uint64
type U128 Uint128
type U256 Uint256
type I8 int8
type I16 int16
type I32 int32
type I64 int64
type I128 Int128
type I256 Int256
type F32 float32
type F64 float64

// Bytes is the XBF Bytes primitive: a length-prefixed, arbitrary byte
// sequence.
type Bytes []byte

// String is the XBF String primitive: a length-prefixed UTF-8 sequence.
// Its payload is not null-terminated.
type String string

func (Bool) isValue()   {}
func (U8) isValue()     {}
func (U16) isValue()    {}
func (U32) isValue()    {}
func (U64) isValue()    {}
func (U128) isValue()   {}
func (U256) isValue()   {}
func (I8) isValue()     {}
func (I16) isValue()    {}
func (I32) isValue()    {}
func (I64) isValue()    {}
func (I128) isValue()   {}
func (I256) isValue()   {}
func (F32) isValue()    {}
func (F64) isValue()    {}
func (Bytes) isValue()  {}
func (String) isValue() {}

func (Bool) Metadata() Metadata   { return PrimitiveMetadata_Bool }
func (U8) Metadata() Metadata     { return PrimitiveMetadata_U8 }
func (U16) Metadata() Metadata    { return PrimitiveMetadata_U16 }
func (U32) Metadata() Metadata    { return PrimitiveMetadata_U32 }
func (U64) Metadata() Metadata    { return PrimitiveMetadata_U64 }
func (U128) Metadata() Metadata   { return PrimitiveMetadata_U128 }
func (U256) Metadata() Metadata   { return PrimitiveMetadata_U256 }
func (I8) Metadata() Metadata     { return PrimitiveMetadata_I8 }
func (I16) Metadata() Metadata    { return PrimitiveMetadata_I16 }
func (I32) Metadata() Metadata    { return PrimitiveMetadata_I32 }
func (I64) Metadata() Metadata    { return PrimitiveMetadata_I64 }
func (I128) Metadata() Metadata   { return PrimitiveMetadata_I128 }
func (I256) Metadata() Metadata   { return PrimitiveMetadata_I256 }
func (F32) Metadata() Metadata    { return PrimitiveMetadata_F32 }
func (F64) Metadata() Metadata    { return PrimitiveMetadata_F64 }
func (Bytes) Metadata() Metadata  { return PrimitiveMetadata_Bytes }
func (String) Metadata() Metadata { return PrimitiveMetadata_String }

func (b Bool) SerializeValue(w io.Writer) error {
	var v byte
	if b {
		v = 1
	}
	_, err := w.Write([]byte{v})
	return err
}

func (x U8) SerializeValue(w io.Writer) error {
	_, err := w.Write([]byte{byte(x)})
	return err
}

func (x U16) SerializeValue(w io.Writer) error { return binary.Write(w, binary.LittleEndian, uint16(x)) }
func (x U32) SerializeValue(w io.Writer) error { return binary.Write(w, binary.LittleEndian, uint32(x)) }
func (x U64) SerializeValue(w io.Writer) error { return binary.Write(w, binary.LittleEndian, uint64(x)) }

func (x U128) SerializeValue(w io.Writer) error {
	if err := binary.Write(w, binary.LittleEndian, x.Lo); err != nil {
		return err
	}
	return binary.Write(w, binary.LittleEndian, x.Hi)
}

func (x U256) SerializeValue(w io.Writer) error {
	for _, limb := range x {
		if err := binary.Write(w, binary.LittleEndian, limb); err != nil {
			return err
		}
	}
	return nil
}

func (x I8) SerializeValue(w io.Writer) error {
	_, err := w.Write([]byte{byte(x)})
	return err
}

func (x I16) SerializeValue(w io.Writer) error { return binary.Write(w, binary.LittleEndian, int16(x)) }
func (x I32) SerializeValue(w io.Writer) error { return binary.Write(w, binary.LittleEndian, int32(x)) }
func (x I64) SerializeValue(w io.Writer) error { return binary.Write(w, binary.LittleEndian, int64(x)) }

func (x I128) SerializeValue(w io.Writer) error {
	if err := binary.Write(w, binary.LittleEndian, x.Lo); err != nil {
		return err
	}
	return binary.Write(w, binary.LittleEndian, x.Hi)
}

func (x I256) SerializeValue(w io.Writer) error {
	for _, limb := range x {
		if err := binary.Write(w, binary.LittleEndian, limb); err != nil {
			return err
		}
	}
	return nil
}

func (x F32) SerializeValue(w io.Writer) error { return binary.Write(w, binary.LittleEndian, float32(x)) }
func (x F64) SerializeValue(w io.Writer) error { return binary.Write(w, binary.LittleEndian, float64(x)) }

func (x Bytes) SerializeValue(w io.Writer) error { return writeLpBytes(w, x) }
func (x String) SerializeValue(w io.Writer) error { return writeLpString(w, string(x)) }

// DeserializePrimitiveValue reads a primitive value payload directed by
// metadata (spec.md §4.1). The byte count read is exact: there is no
// varint encoding, so a short read surfaces as an IO error from the
// underlying reader.
func DeserializePrimitiveValue(metadata PrimitiveMetadata, r io.Reader) (Value, error) {
	switch metadata {
	case PrimitiveMetadata_Bool:
		b, err := readU8(r)
		if err != nil {
			return nil, err
		}
		return Bool(b != 0), nil
	case PrimitiveMetadata_U8:
		b, err := readU8(r)
		if err != nil {
			return nil, err
		}
		return U8(b), nil
	case PrimitiveMetadata_U16:
		var v uint16
		if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
			return nil, err
		}
		return U16(v), nil
	case PrimitiveMetadata_U32:
		var v uint32
		if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
			return nil, err
		}
		return U32(v), nil
	case PrimitiveMetadata_U64:
		var v uint64
		if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
			return nil, err
		}
		return U64(v), nil
	case PrimitiveMetadata_U128:
		var lo, hi uint64
		if err := binary.Read(r, binary.LittleEndian, &lo); err != nil {
			return nil, err
		}
		if err := binary.Read(r, binary.LittleEndian, &hi); err != nil {
			return nil, err
		}
		return U128{Lo: lo, Hi: hi}, nil
	case PrimitiveMetadata_U256:
		var limbs Uint256
		for i := range limbs {
			if err := binary.Read(r, binary.LittleEndian, &limbs[i]); err != nil {
				return nil, err
			}
		}
		return U256(limbs), nil
	case PrimitiveMetadata_I8:
		b, err := readU8(r)
		if err != nil {
			return nil, err
		}
		return I8(int8(b)), nil
	case PrimitiveMetadata_I16:
		var v int16
		if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
			return nil, err
		}
		return I16(v), nil
	case PrimitiveMetadata_I32:
		var v int32
		if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
			return nil, err
		}
		return I32(v), nil
	case PrimitiveMetadata_I64:
		var v int64
		if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
			return nil, err
		}
		return I64(v), nil
	case PrimitiveMetadata_I128:
		var lo, hi uint64
		if err := binary.Read(r, binary.LittleEndian, &lo); err != nil {
			return nil, err
		}
		if err := binary.Read(r, binary.LittleEndian, &hi); err != nil {
			return nil, err
		}
		return I128{Lo: lo, Hi: hi}, nil
	case PrimitiveMetadata_I256:
		var limbs Int256
		for i := range limbs {
			if err := binary.Read(r, binary.LittleEndian, &limbs[i]); err != nil {
				return nil, err
			}
		}
		return I256(limbs), nil
	case PrimitiveMetadata_F32:
		var v float32
		if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
			return nil, err
		}
		return F32(v), nil
	case PrimitiveMetadata_F64:
		var v float64
		if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
			return nil, err
		}
		return F64(v), nil
	case PrimitiveMetadata_Bytes:
		b, err := readLpBytes(r)
		if err != nil {
			return nil, err
		}
		return Bytes(b), nil
	case PrimitiveMetadata_String:
		s, err := readLpString(r)
		if err != nil {
			return nil, err
		}
		return String(s), nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrInvalidDiscriminant, metadata)
	}
}
