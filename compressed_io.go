// Copyright (c) 2026 Neomantra Corp
//
// Reader/Writer compression helpers shared by the xbf-go-file CLI, the
// MCP server, and the TUI. These wrap a metadata+value stream in zstd
// at the transport level; the wire format they carry is untouched, so
// this does not reintroduce spec.md's "no compression" Non-goal for
// the format itself.
//
// Filename-suffix detection (".zst"/".zstd") breaks down for "-"
// (stdin/stdout), which none of these callers can label with an
// extension, so the reader side additionally sniffs the zstd magic
// frame header off the stream itself.

package xbf

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// zstdMagic is the little-endian zstd frame magic number, used to
// sniff compression on inputs (like stdin) that have no filename
// suffix to go by.
var zstdMagic = [4]byte{0x28, 0xB5, 0x2F, 0xFD}

///////////////////////////////////////////////////////////////////////////////

// MakeCompressedWriter returns an io.Writer for filename, or os.Stdout
// if filename is "-". It also returns a closing function to defer and
// any error. The writer zstd-compresses its output when useZstd is
// true or filename ends in ".zst"/".zstd".
func MakeCompressedWriter(filename string, useZstd bool) (io.Writer, func(), error) {
	var writer io.Writer
	var closer io.Closer
	fileCloser := func() {
		if closer != nil {
			closer.Close()
		}
	}
	if filename != "-" {
		if file, err := os.Create(filename); err == nil {
			writer, closer = file, file
		} else {
			return nil, nil, err
		}
	} else {
		writer, closer = os.Stdout, nil
	}

	if useZstd || strings.HasSuffix(filename, ".zst") || strings.HasSuffix(filename, ".zstd") {
		zstdWriter, err := zstd.NewWriter(writer)
		if err != nil {
			fileCloser()
			return nil, nil, err
		}
		zstdCloser := func() {
			zstdWriter.Close()
			fileCloser()
		}
		return zstdWriter, zstdCloser, nil
	}
	return writer, fileCloser, nil
}

///////////////////////////////////////////////////////////////////////////////

// MakeCompressedReader returns an io.Reader for filename, or os.Stdin
// if filename is "-". It also returns an io.Closer to defer. The
// reader zstd-decompresses its input when useZstd is true, filename
// ends in ".zst"/".zstd", or (since "-" has no suffix to check) the
// stream itself begins with the zstd frame magic number.
func MakeCompressedReader(filename string, useZstd bool) (io.Reader, io.Closer, error) {
	var reader io.Reader
	var closer io.Closer

	if filename != "-" {
		if file, err := os.Open(filename); err == nil {
			reader, closer = file, file
		} else {
			return nil, nil, err
		}
	} else {
		reader, closer = os.Stdin, io.NopCloser(os.Stdin)
	}

	wantZstd := useZstd || strings.HasSuffix(filename, ".zst") || strings.HasSuffix(filename, ".zstd")
	if !wantZstd && filename == "-" {
		bufReader := bufio.NewReader(reader)
		reader = bufReader
		if magic, err := bufReader.Peek(len(zstdMagic)); err == nil && string(magic) == string(zstdMagic[:]) {
			wantZstd = true
		}
	}

	if !wantZstd {
		return reader, closer, nil
	}

	zstdReader, err := zstd.NewReader(reader)
	if err != nil {
		if closer != nil {
			closer.Close()
		}
		return nil, nil, err
	}
	return zstdReader, closer, nil
}
