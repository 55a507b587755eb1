// Copyright (c) 2026 Neomantra Corp

package xbf

import (
	"encoding/binary"
	"io"
	"unicode/utf8"
)

// writeLpBytes writes a u64-le length prefix followed by the raw bytes,
// the shared framing for both Bytes and String payloads and for struct
// field/record names (spec.md §4.1, §4.3).
func writeLpBytes(w io.Writer, b []byte) error {
	if err := binary.Write(w, binary.LittleEndian, uint64(len(b))); err != nil {
		return err
	}
	if len(b) == 0 {
		return nil
	}
	_, err := w.Write(b)
	return err
}

// readLpBytes reads a u64-le length prefix followed by that many raw
// bytes.
func readLpBytes(r io.Reader) ([]byte, error) {
	var length uint64
	if err := binary.Read(r, binary.LittleEndian, &length); err != nil {
		return nil, err
	}
	buf := make([]byte, length)
	if length == 0 {
		return buf, nil
	}
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// writeLpString writes a length-prefixed UTF-8 string, used for struct
// record/field names and the String primitive payload.
func writeLpString(w io.Writer, s string) error {
	return writeLpBytes(w, []byte(s))
}

// readLpString reads a length-prefixed UTF-8 string and validates it.
func readLpString(r io.Reader) (string, error) {
	b, err := readLpBytes(r)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", ErrInvalidUtf8
	}
	return string(b), nil
}

func readU8(r io.Reader) (uint8, error) {
	var b [1]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}

// writeU16 writes a u16-le, the struct field-count framing (spec.md
// §4.3 and §9 "Length width inconsistencies" — field counts are always
// 16-bit, never the 64-bit width used for names and string/byte
// payloads).
func writeU16(w io.Writer, v uint16) error {
	return binary.Write(w, binary.LittleEndian, v)
}

func readU16(r io.Reader) (uint16, error) {
	var v uint16
	if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
		return 0, err
	}
	return v, nil
}
