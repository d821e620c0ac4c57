// Copyright 2025, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package fileio

import (
	"compress/bzip2"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// StdinName is the display name used for standard input
const StdinName = "(standard input)"

// Source is one named, already-decoded input stream. Compressed files are
// decompressed transparently based on their suffix.
type Source struct {
	Name    string
	reader  io.Reader
	closers []io.Closer
}

// Open resolves a command line argument to a readable source. "-" denotes
// standard input.
func Open(arg string) (*Source, error) {
	if arg == "-" {
		return &Source{Name: StdinName, reader: os.Stdin}, nil
	}
	f, err := os.Open(arg)
	if err != nil {
		return nil, err
	}
	src := &Source{Name: arg, reader: f, closers: []io.Closer{f}}
	switch {
	case strings.HasSuffix(arg, ".gz"):
		zr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("%s: %w", arg, err)
		}
		src.reader = zr
		src.closers = append([]io.Closer{zr}, src.closers...)
	case strings.HasSuffix(arg, ".zst"):
		zr, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("%s: %w", arg, err)
		}
		rc := zr.IOReadCloser()
		src.reader = rc
		src.closers = append([]io.Closer{rc}, src.closers...)
	case strings.HasSuffix(arg, ".bz2"):
		src.reader = bzip2.NewReader(f)
	}
	return src, nil
}

func (s *Source) Read(p []byte) (int, error) {
	return s.reader.Read(p)
}

// Close closes the decompressor (if any) before the underlying file
func (s *Source) Close() error {
	var firstErr error
	for _, c := range s.closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
