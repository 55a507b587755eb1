// Copyright (c) 2026 Neomantra Corp

// Package xbffixture builds sample XBF metadata+value pairs from a
// compact JSON description, for use by the file CLI's `stub`
// subcommand. The JSON grammar mirrors Databento's
// own convention (seen in the teacher's structs.go) of carrying
// wide integers as JSON strings and parsing them with fastfloat rather
// than through encoding/json's float64 path, which would lose
// precision above 2^53.
package xbffixture

import (
	"fmt"

	"github.com/nimblemarkets/xbf-go"
	"github.com/valyala/fastjson"
	"github.com/valyala/fastjson/fastfloat"
)

// Parse parses a fixture document into metadata and a matching value.
//
//	{
//	  "name": "DragonRider",
//	  "fields": [
//	    {"name": "name", "type": "string", "value": "Eragon"},
//	    {"name": "age", "type": "u16", "value": 16}
//	  ]
//	}
//
// A "vector" field carries an "element" kind and a "values" array of
// naked literals; a "struct" field nests another {"name",
// "fields": [...]} document under "value".
func Parse(jsonBytes []byte) (*xbf.StructMetadata, *xbf.Struct, error) {
	var p fastjson.Parser
	root, err := p.ParseBytes(jsonBytes)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid fixture JSON: %w", err)
	}
	return parseStructDoc(root)
}

func parseStructDoc(doc *fastjson.Value) (*xbf.StructMetadata, *xbf.Struct, error) {
	name := string(doc.GetStringBytes("name"))
	fieldsArr := doc.GetArray("fields")

	declFields := make([]xbf.StructField, 0, len(fieldsArr))
	values := make([]xbf.Value, 0, len(fieldsArr))
	for _, fv := range fieldsArr {
		fieldName := string(fv.GetStringBytes("name"))
		kind := string(fv.GetStringBytes("type"))
		m, v, err := parseTyped(kind, fv)
		if err != nil {
			return nil, nil, fmt.Errorf("field %q: %w", fieldName, err)
		}
		declFields = append(declFields, xbf.StructField{Name: fieldName, Metadata: m})
		values = append(values, v)
	}

	metadata, err := xbf.NewStructMetadata(name, declFields)
	if err != nil {
		return nil, nil, err
	}
	structValue, err := xbf.NewStruct(metadata, values)
	if err != nil {
		return nil, nil, err
	}
	return metadata, structValue, nil
}

// parseTyped decodes fieldDoc's "value" (or, for vector/struct, its
// "values"/nested document) per kind.
func parseTyped(kind string, fieldDoc *fastjson.Value) (xbf.Metadata, xbf.Value, error) {
	switch kind {
	case "bool":
		return xbf.PrimitiveMetadata_Bool, xbf.Bool(fieldDoc.GetBool("value")), nil
	case "u8":
		return xbf.PrimitiveMetadata_U8, xbf.U8(fieldDoc.GetUint("value")), nil
	case "u16":
		return xbf.PrimitiveMetadata_U16, xbf.U16(fieldDoc.GetUint("value")), nil
	case "u32":
		return xbf.PrimitiveMetadata_U32, xbf.U32(fieldDoc.GetUint("value")), nil
	case "u64":
		return xbf.PrimitiveMetadata_U64, xbf.U64(parseUint64Field(fieldDoc, "value")), nil
	case "i8":
		return xbf.PrimitiveMetadata_I8, xbf.I8(fieldDoc.GetInt("value")), nil
	case "i16":
		return xbf.PrimitiveMetadata_I16, xbf.I16(fieldDoc.GetInt("value")), nil
	case "i32":
		return xbf.PrimitiveMetadata_I32, xbf.I32(fieldDoc.GetInt("value")), nil
	case "i64":
		return xbf.PrimitiveMetadata_I64, xbf.I64(parseInt64Field(fieldDoc, "value")), nil
	case "f32":
		return xbf.PrimitiveMetadata_F32, xbf.F32(fieldDoc.GetFloat64("value")), nil
	case "f64":
		return xbf.PrimitiveMetadata_F64, xbf.F64(fieldDoc.GetFloat64("value")), nil
	case "bytes":
		return xbf.PrimitiveMetadata_Bytes, xbf.Bytes(fieldDoc.GetStringBytes("value")), nil
	case "string":
		return xbf.PrimitiveMetadata_String, xbf.String(fieldDoc.GetStringBytes("value")), nil
	case "u128":
		lo, hi := parseLoHi(fieldDoc.Get("value"))
		return xbf.PrimitiveMetadata_U128, xbf.U128{Lo: lo, Hi: hi}, nil
	case "i128":
		lo, hi := parseLoHi(fieldDoc.Get("value"))
		return xbf.PrimitiveMetadata_I128, xbf.I128{Lo: lo, Hi: hi}, nil
	case "u256":
		return xbf.PrimitiveMetadata_U256, xbf.U256(parseLimbs4(fieldDoc.Get("value"))), nil
	case "i256":
		return xbf.PrimitiveMetadata_I256, xbf.I256(parseLimbs4(fieldDoc.Get("value"))), nil
	case "vector":
		return parseVector(fieldDoc)
	case "struct":
		return parseStructField(fieldDoc)
	default:
		return nil, nil, fmt.Errorf("unknown fixture kind %q", kind)
	}
}

func parseVector(fieldDoc *fastjson.Value) (xbf.Metadata, xbf.Value, error) {
	elementKind := string(fieldDoc.GetStringBytes("element"))
	valuesArr := fieldDoc.GetArray("values")

	elements := make([]xbf.Value, 0, len(valuesArr))
	var inner xbf.Metadata
	for i, ev := range valuesArr {
		wrapper := wrapAsValue(ev)
		m, v, err := parseTyped(elementKind, wrapper)
		if err != nil {
			return nil, nil, fmt.Errorf("element %d: %w", i, err)
		}
		inner = m
		elements = append(elements, v)
	}
	if inner == nil {
		var err error
		inner, err = primitiveMetadataForKind(elementKind)
		if err != nil {
			return nil, nil, err
		}
	}

	vm := xbf.NewVectorMetadata(inner)
	vec, err := xbf.NewVector(vm, elements)
	if err != nil {
		return nil, nil, err
	}
	return vm, vec, nil
}

// wrapAsValue wraps a naked JSON literal (from a vector's "values"
// array) into a synthetic one-field document so parseTyped's
// fieldDoc.GetX("value") lookups work uniformly for top-level fields
// and vector elements alike.
func wrapAsValue(naked *fastjson.Value) *fastjson.Value {
	obj := fastjson.MustParse(`{}`)
	obj.Set("value", naked)
	return obj
}

func primitiveMetadataForKind(kind string) (xbf.Metadata, error) {
	switch kind {
	case "bool":
		return xbf.PrimitiveMetadata_Bool, nil
	case "u8":
		return xbf.PrimitiveMetadata_U8, nil
	case "u16":
		return xbf.PrimitiveMetadata_U16, nil
	case "u32":
		return xbf.PrimitiveMetadata_U32, nil
	case "u64":
		return xbf.PrimitiveMetadata_U64, nil
	case "i8":
		return xbf.PrimitiveMetadata_I8, nil
	case "i16":
		return xbf.PrimitiveMetadata_I16, nil
	case "i32":
		return xbf.PrimitiveMetadata_I32, nil
	case "i64":
		return xbf.PrimitiveMetadata_I64, nil
	case "f32":
		return xbf.PrimitiveMetadata_F32, nil
	case "f64":
		return xbf.PrimitiveMetadata_F64, nil
	case "bytes":
		return xbf.PrimitiveMetadata_Bytes, nil
	case "string":
		return xbf.PrimitiveMetadata_String, nil
	case "u128":
		return xbf.PrimitiveMetadata_U128, nil
	case "i128":
		return xbf.PrimitiveMetadata_I128, nil
	case "u256":
		return xbf.PrimitiveMetadata_U256, nil
	case "i256":
		return xbf.PrimitiveMetadata_I256, nil
	default:
		return nil, fmt.Errorf("unknown fixture kind %q for an empty vector", kind)
	}
}

func parseStructField(fieldDoc *fastjson.Value) (xbf.Metadata, xbf.Value, error) {
	nested := fieldDoc.Get("value")
	if nested == nil {
		return nil, nil, fmt.Errorf("struct field missing \"value\"")
	}
	m, v, err := parseStructDoc(nested)
	if err != nil {
		return nil, nil, err
	}
	return m, v, nil
}

// parseUint64Field/parseInt64Field read a value that may be a JSON
// string (to preserve full 64-bit precision, Databento's own
// convention) or a JSON number, using fastfloat for the string form
// exactly as the teacher's fastjson_GetUint64FromString/
// fastjson_GetInt64FromString do.
func parseUint64Field(fieldDoc *fastjson.Value, key string) uint64 {
	if s := fieldDoc.GetStringBytes(key); s != nil {
		return fastfloat.ParseUint64BestEffort(string(s))
	}
	return fieldDoc.GetUint64(key)
}

func parseInt64Field(fieldDoc *fastjson.Value, key string) int64 {
	if s := fieldDoc.GetStringBytes(key); s != nil {
		return fastfloat.ParseInt64BestEffort(string(s))
	}
	return fieldDoc.GetInt64(key)
}

func parseLoHi(v *fastjson.Value) (lo, hi uint64) {
	if v == nil {
		return 0, 0
	}
	return limbUint64(v.Get("lo")), limbUint64(v.Get("hi"))
}

func parseLimbs4(v *fastjson.Value) [4]uint64 {
	var limbs [4]uint64
	if v == nil {
		return limbs
	}
	arr := v.GetArray("limbs")
	for i := 0; i < len(arr) && i < 4; i++ {
		limbs[i] = limbUint64(arr[i])
	}
	return limbs
}

func limbUint64(v *fastjson.Value) uint64 {
	if v == nil {
		return 0
	}
	if s, err := v.StringBytes(); err == nil {
		return fastfloat.ParseUint64BestEffort(string(s))
	}
	n, _ := v.Uint64()
	return n
}
