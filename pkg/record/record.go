// Copyright 2025, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package record

import (
	"strings"
)

// Record is one separator-delimited span of an input stream. Header holds
// the boundary text that started the record (empty for a record that was
// opened at the start of the stream rather than by a separator match).
// Header and Body lines keep their raw line endings, so concatenating the
// RawSpan of adjacent records reproduces the input byte for byte.
type Record struct {
	Header string
	Body   []string
}

// IsZero returns true if the record has no header and no body lines
func (r *Record) IsZero() bool {
	return r.Header == "" && len(r.Body) == 0
}

// RawSpan returns the exact input bytes the record covers
func (r *Record) RawSpan() string {
	var sb strings.Builder
	sb.WriteString(r.Header)
	for _, line := range r.Body {
		sb.WriteString(line)
	}
	return sb.String()
}

// HeaderVisible returns true if the header carries printable text
// beyond its line ending (a blank separator line is not visible)
func (r *Record) HeaderVisible() bool {
	return TrimEOL(r.Header) != ""
}

// TrimEOL strips a single trailing line ending ("\n" or "\r\n") if present
func TrimEOL(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
