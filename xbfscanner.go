// Copyright (c) 2026 Neomantra Corp

package xbf

import (
	"bufio"
	"io"
)

// DefaultScannerBufferSize is the default size of the buffered reader a
// StreamScanner wraps its source in.
const DefaultScannerBufferSize = 16 * 1024

// StreamScanner scans a sequence of values sharing one leading metadata
// blob: `[metadata][value]*`. This is the concrete shape spec.md §1
// describes as "a receiver may transmit metadata once and then reuse it
// across many payload exchanges" applied to a single stream instead of
// repeated socket requests — used by cmd/xbf-go-file to read capture
// files holding many records of one shape.
type StreamScanner struct {
	buf       *bufio.Reader
	metadata  Metadata
	lastValue Value
	lastErr   error
}

// NewStreamScanner wraps sourceReader for scanning.
func NewStreamScanner(sourceReader io.Reader) *StreamScanner {
	return &StreamScanner{
		buf: bufio.NewReaderSize(sourceReader, DefaultScannerBufferSize),
	}
}

// Metadata returns the stream's metadata, reading it from the stream on
// first call.
func (s *StreamScanner) Metadata() (Metadata, error) {
	if s.metadata != nil {
		return s.metadata, nil
	}
	m, err := DeserializeMetadata(s.buf)
	if err != nil {
		s.lastErr = err
		return nil, err
	}
	s.metadata = m
	return m, nil
}

// Next reads the metadata if it hasn't been read yet, then decodes the
// next value directed by that metadata. It returns false at end of
// stream or on error; call Err to distinguish the two (a plain io.EOF
// with no partial record is not an error).
func (s *StreamScanner) Next() bool {
	if s.metadata == nil {
		if _, err := s.Metadata(); err != nil {
			return false
		}
	}
	if _, err := s.buf.Peek(1); err != nil {
		s.lastErr = err
		return false
	}
	v, err := DeserializeValue(s.metadata, s.buf)
	if err != nil {
		if err == io.EOF {
			// the record had started, so this is a truncated record
			err = io.ErrUnexpectedEOF
		}
		s.lastErr = err
		return false
	}
	s.lastValue = v
	s.lastErr = nil
	return true
}

// Value returns the most recently decoded value.
func (s *StreamScanner) Value() Value {
	return s.lastValue
}

// Err returns the error that stopped the last Next call, or nil if the
// stream simply ended cleanly (io.EOF at a record boundary is not
// surfaced as an error).
func (s *StreamScanner) Err() error {
	if s.lastErr == io.EOF {
		return nil
	}
	return s.lastErr
}
