// Copyright (c) 2026 Neomantra Corp

// Package xbfparquet exports a vector of XBF structs to Parquet, so
// downstream analytics tooling (DuckDB, pandas, Spark) can query
// captured XBF data without a bespoke reader. The column mapping is
// grounded on the teacher's internal/file/parquet_writer.go: one
// Parquet primitive column per XBF primitive field, written through
// apache/arrow-go's buffered row-group writer one row at a time.
//
// Nested Vector and Struct fields have no Parquet-native equivalent in
// this mapping's scope, so they are stored as a ByteArray column
// holding that field's raw XBF-serialized value bytes — queryable by
// round-tripping back through xbf.DeserializeValue, not by SQL
// projection into the nested shape.
package xbfparquet

import (
	"bytes"
	"fmt"
	"os"

	"github.com/apache/arrow-go/v18/parquet"
	"github.com/apache/arrow-go/v18/parquet/compress"
	pqfile "github.com/apache/arrow-go/v18/parquet/file"
	pqschema "github.com/apache/arrow-go/v18/parquet/schema"

	"github.com/nimblemarkets/xbf-go"
)

// GroupNodeForStructMetadata builds the Parquet schema for one row of
// metadata's declared fields, in declaration order.
func GroupNodeForStructMetadata(metadata *xbf.StructMetadata) (*pqschema.GroupNode, error) {
	decls := metadata.Fields()
	fields := make(pqschema.FieldList, 0, len(decls))
	for _, decl := range decls {
		node, err := fieldNode(decl.Name, decl.Metadata)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", decl.Name, err)
		}
		fields = append(fields, node)
	}
	return pqschema.MustGroup(pqschema.NewGroupNode(metadata.Name(), parquet.Repetitions.Required, fields, -1)), nil
}

func fieldNode(name string, metadata xbf.Metadata) (pqschema.Node, error) {
	pm, ok := metadata.(xbf.PrimitiveMetadata)
	if !ok {
		// Vector/Struct fields fall back to their raw serialized bytes.
		return pqschema.MustPrimitive(pqschema.NewPrimitiveNodeConverted(
			name, parquet.Repetitions.Optional, parquet.Types.ByteArray, pqschema.ConvertedTypes.None, 0, 0, 0, -1)), nil
	}
	switch pm {
	case xbf.PrimitiveMetadata_Bool:
		return pqschema.NewBooleanNode(name, parquet.Repetitions.Optional, -1), nil
	case xbf.PrimitiveMetadata_U8:
		return pqschema.MustPrimitive(pqschema.NewPrimitiveNodeLogical(name, parquet.Repetitions.Optional, pqschema.NewIntLogicalType(8, false), parquet.Types.Int32, 0, -1)), nil
	case xbf.PrimitiveMetadata_U16:
		return pqschema.MustPrimitive(pqschema.NewPrimitiveNodeLogical(name, parquet.Repetitions.Optional, pqschema.NewIntLogicalType(16, false), parquet.Types.Int32, 0, -1)), nil
	case xbf.PrimitiveMetadata_U32:
		return pqschema.MustPrimitive(pqschema.NewPrimitiveNodeLogical(name, parquet.Repetitions.Optional, pqschema.NewIntLogicalType(32, false), parquet.Types.Int32, 0, -1)), nil
	case xbf.PrimitiveMetadata_U64:
		return pqschema.MustPrimitive(pqschema.NewPrimitiveNodeLogical(name, parquet.Repetitions.Optional, pqschema.NewIntLogicalType(64, false), parquet.Types.Int64, 0, -1)), nil
	case xbf.PrimitiveMetadata_I8:
		return pqschema.MustPrimitive(pqschema.NewPrimitiveNodeLogical(name, parquet.Repetitions.Optional, pqschema.NewIntLogicalType(8, true), parquet.Types.Int32, 0, -1)), nil
	case xbf.PrimitiveMetadata_I16:
		return pqschema.MustPrimitive(pqschema.NewPrimitiveNodeLogical(name, parquet.Repetitions.Optional, pqschema.NewIntLogicalType(16, true), parquet.Types.Int32, 0, -1)), nil
	case xbf.PrimitiveMetadata_I32:
		return pqschema.NewInt32Node(name, parquet.Repetitions.Optional, -1), nil
	case xbf.PrimitiveMetadata_I64:
		return pqschema.NewInt64Node(name, parquet.Repetitions.Optional, -1), nil
	case xbf.PrimitiveMetadata_F32:
		return pqschema.NewFloat32Node(name, parquet.Repetitions.Optional, -1), nil
	case xbf.PrimitiveMetadata_F64:
		return pqschema.NewFloat64Node(name, parquet.Repetitions.Optional, -1), nil
	case xbf.PrimitiveMetadata_String:
		return pqschema.MustPrimitive(pqschema.NewPrimitiveNodeConverted(name, parquet.Repetitions.Optional, parquet.Types.ByteArray, pqschema.ConvertedTypes.UTF8, 0, 0, 0, -1)), nil
	case xbf.PrimitiveMetadata_Bytes, xbf.PrimitiveMetadata_U128, xbf.PrimitiveMetadata_I128, xbf.PrimitiveMetadata_U256, xbf.PrimitiveMetadata_I256:
		// Widths beyond Parquet's native int64 (and raw byte strings)
		// are stored as their little-endian wire bytes.
		return pqschema.MustPrimitive(pqschema.NewPrimitiveNodeConverted(name, parquet.Repetitions.Optional, parquet.Types.ByteArray, pqschema.ConvertedTypes.None, 0, 0, 0, -1)), nil
	default:
		return nil, fmt.Errorf("unsupported primitive kind %v", pm)
	}
}

// WriteVector writes every *xbf.Struct element of elements (which must
// all share metadata) to destFile as a single-row-group Parquet file.
func WriteVector(metadata *xbf.StructMetadata, elements []*xbf.Struct, destFile string) error {
	groupNode, err := GroupNodeForStructMetadata(metadata)
	if err != nil {
		return err
	}

	props := parquet.NewWriterProperties(
		parquet.WithVersion(parquet.V2_LATEST),
		parquet.WithCompression(compress.Codecs.Snappy))

	out, err := os.Create(destFile)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", destFile, err)
	}
	defer out.Close()

	pw := pqfile.NewParquetWriter(out, groupNode, pqfile.WithWriterProps(props))
	defer pw.Close()

	rgw := pw.AppendBufferedRowGroup()
	for _, s := range elements {
		if err := writeRow(rgw, metadata, s); err != nil {
			rgw.Close()
			return err
		}
	}
	if err := rgw.Close(); err != nil {
		return err
	}
	return pw.FlushWithFooter()
}

func writeRow(rgw pqfile.BufferedRowGroupWriter, metadata *xbf.StructMetadata, s *xbf.Struct) error {
	for i, decl := range metadata.Fields() {
		value, _ := s.Get(decl.Name)
		cw, err := rgw.Column(i)
		if err != nil {
			return fmt.Errorf("column %q: %w", decl.Name, err)
		}
		if err := writeColumn(cw, decl.Metadata, value); err != nil {
			return fmt.Errorf("column %q: %w", decl.Name, err)
		}
	}
	return nil
}

func writeColumn(cw pqfile.ColumnChunkWriter, metadata xbf.Metadata, value xbf.Value) error {
	pm, ok := metadata.(xbf.PrimitiveMetadata)
	if !ok {
		raw, err := serializedBytesOf(value)
		if err != nil {
			return err
		}
		_, err = cw.(*pqfile.ByteArrayColumnChunkWriter).WriteBatch([]parquet.ByteArray{raw}, []int16{1}, nil)
		return err
	}
	switch pm {
	case xbf.PrimitiveMetadata_Bool:
		_, err := cw.(*pqfile.BooleanColumnChunkWriter).WriteBatch([]bool{bool(value.(xbf.Bool))}, []int16{1}, nil)
		return err
	case xbf.PrimitiveMetadata_U8:
		_, err := cw.(*pqfile.Int32ColumnChunkWriter).WriteBatch([]int32{int32(value.(xbf.U8))}, []int16{1}, nil)
		return err
	case xbf.PrimitiveMetadata_U16:
		_, err := cw.(*pqfile.Int32ColumnChunkWriter).WriteBatch([]int32{int32(value.(xbf.U16))}, []int16{1}, nil)
		return err
	case xbf.PrimitiveMetadata_U32:
		_, err := cw.(*pqfile.Int32ColumnChunkWriter).WriteBatch([]int32{int32(value.(xbf.U32))}, []int16{1}, nil)
		return err
	case xbf.PrimitiveMetadata_U64:
		_, err := cw.(*pqfile.Int64ColumnChunkWriter).WriteBatch([]int64{int64(value.(xbf.U64))}, []int16{1}, nil)
		return err
	case xbf.PrimitiveMetadata_I8:
		_, err := cw.(*pqfile.Int32ColumnChunkWriter).WriteBatch([]int32{int32(value.(xbf.I8))}, []int16{1}, nil)
		return err
	case xbf.PrimitiveMetadata_I16:
		_, err := cw.(*pqfile.Int32ColumnChunkWriter).WriteBatch([]int32{int32(value.(xbf.I16))}, []int16{1}, nil)
		return err
	case xbf.PrimitiveMetadata_I32:
		_, err := cw.(*pqfile.Int32ColumnChunkWriter).WriteBatch([]int32{int32(value.(xbf.I32))}, []int16{1}, nil)
		return err
	case xbf.PrimitiveMetadata_I64:
		_, err := cw.(*pqfile.Int64ColumnChunkWriter).WriteBatch([]int64{int64(value.(xbf.I64))}, []int16{1}, nil)
		return err
	case xbf.PrimitiveMetadata_F32:
		_, err := cw.(*pqfile.Float32ColumnChunkWriter).WriteBatch([]float32{float32(value.(xbf.F32))}, []int16{1}, nil)
		return err
	case xbf.PrimitiveMetadata_F64:
		_, err := cw.(*pqfile.Float64ColumnChunkWriter).WriteBatch([]float64{float64(value.(xbf.F64))}, []int16{1}, nil)
		return err
	case xbf.PrimitiveMetadata_String:
		_, err := cw.(*pqfile.ByteArrayColumnChunkWriter).WriteBatch([]parquet.ByteArray{[]byte(value.(xbf.String))}, []int16{1}, nil)
		return err
	case xbf.PrimitiveMetadata_Bytes:
		_, err := cw.(*pqfile.ByteArrayColumnChunkWriter).WriteBatch([]parquet.ByteArray{[]byte(value.(xbf.Bytes))}, []int16{1}, nil)
		return err
	default:
		// U128/I128/U256/I256: stored as their serialized little-endian bytes.
		raw, err := serializedBytesOf(value)
		if err != nil {
			return err
		}
		_, err = cw.(*pqfile.ByteArrayColumnChunkWriter).WriteBatch([]parquet.ByteArray{raw}, []int16{1}, nil)
		return err
	}
}

func serializedBytesOf(value xbf.Value) ([]byte, error) {
	var buf bytes.Buffer
	if err := value.SerializeValue(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
