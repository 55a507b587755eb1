// Copyright (c) 2026 Neomantra Corp

package xbf

import (
	"encoding/base64"
	"fmt"
)

// DescribeMetadata renders metadata as a JSON-marshalable tree naming
// each layer's kind, for tooling that wants a human/LLM-readable shape
// description without hand-rolling a JSON schema per discriminant —
// used by internal/xbfmcp's xbf_describe tool and
// cmd/xbf-go-file's `metadata` subcommand.
func DescribeMetadata(m Metadata) any {
	switch v := m.(type) {
	case PrimitiveMetadata:
		return map[string]any{"kind": "primitive", "type": v.String()}
	case *VectorMetadata:
		return map[string]any{"kind": "vector", "element": DescribeMetadata(v.Inner())}
	case *StructMetadata:
		fields := make([]any, 0, v.FieldCount())
		for _, decl := range v.Fields() {
			fields = append(fields, map[string]any{
				"name": decl.Name,
				"type": DescribeMetadata(decl.Metadata),
			})
		}
		return map[string]any{"kind": "struct", "name": v.Name(), "fields": fields}
	default:
		return map[string]any{"kind": "unknown"}
	}
}

// ValueToJSON projects a decoded Value into plain JSON-marshalable Go
// values (map[string]any, []any, string, float64, bool). Wide integers
// are rendered as strings to avoid precision loss in JSON number
// decoding on the reading side: U64/I64 as decimal strings,
// U128/I128/U256/I256 as "0x"-prefixed hex strings (most significant
// limb first) —
// the same convention the teacher's DBN records use for 64-bit
// timestamps and prices in their JSON form (structs.go's
// fastjson_GetInt64FromString/fastjson_GetUint64FromString exist
// precisely to read that convention back).
func ValueToJSON(v Value) (any, error) {
	switch val := v.(type) {
	case Bool:
		return bool(val), nil
	case U8:
		return float64(val), nil
	case U16:
		return float64(val), nil
	case U32:
		return float64(val), nil
	case U64:
		return fmt.Sprintf("%d", uint64(val)), nil
	case I8:
		return float64(val), nil
	case I16:
		return float64(val), nil
	case I32:
		return float64(val), nil
	case I64:
		return fmt.Sprintf("%d", int64(val)), nil
	case U128:
		return fmt.Sprintf("0x%016x%016x", val.Hi, val.Lo), nil
	case I128:
		return fmt.Sprintf("0x%016x%016x", val.Hi, val.Lo), nil
	case U256:
		return hexLimbs(val[:]), nil
	case I256:
		return hexLimbs(val[:]), nil
	case F32:
		return float64(val), nil
	case F64:
		return float64(val), nil
	case Bytes:
		return base64.StdEncoding.EncodeToString(val), nil
	case String:
		return string(val), nil
	case *Vector:
		out := make([]any, 0, val.Len())
		for _, el := range val.Elements() {
			j, err := ValueToJSON(el)
			if err != nil {
				return nil, err
			}
			out = append(out, j)
		}
		return out, nil
	case *Struct:
		out := make(map[string]any, len(val.FieldValues()))
		for _, decl := range val.StructMetadata().Fields() {
			fv, _ := val.Get(decl.Name)
			j, err := ValueToJSON(fv)
			if err != nil {
				return nil, err
			}
			out[decl.Name] = j
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported value type %T", v)
	}
}

func hexLimbs(limbs []uint64) string {
	s := "0x"
	for i := len(limbs) - 1; i >= 0; i-- {
		s += fmt.Sprintf("%016x", limbs[i])
	}
	return s
}
