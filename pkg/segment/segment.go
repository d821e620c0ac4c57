// Copyright 2025, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package segment

import (
	"io"

	"github.com/ryo1kato/mllgrep/pkg/boundary"
	"github.com/ryo1kato/mllgrep/pkg/record"
	"github.com/ryo1kato/mllgrep/pkg/utilfn"
)

const readBufSize = 16 * 1024

// Segmenter turns a character stream into a forward-only sequence of
// records. It buffers at most one record plus the separator's lookahead
// window; it never holds the whole input. A Segmenter is single-use: once
// Next returns io.EOF the stream is exhausted and cannot be rescanned.
type Segmenter struct {
	reader  io.Reader
	sep     *boundary.Separator
	lineBuf *utilfn.LineBuf
	readBuf []byte
	pending []string
	cur     record.Record
	eof     bool
	done    bool
}

func New(r io.Reader, sep *boundary.Separator) *Segmenter {
	return &Segmenter{
		reader:  r,
		sep:     sep,
		lineBuf: utilfn.MakeLineBuf(),
		readBuf: make([]byte, readBufSize),
	}
}

// Next returns the next record, or io.EOF after the last one. Boundary
// policy: the matched separator text becomes the header of the record it
// starts; a separator at the very start of the stream opens the first
// record without emitting an empty one before it; a separator at end of
// stream with nothing after it yields no trailing record.
func (s *Segmenter) Next() (*record.Record, error) {
	if s.done {
		return nil, io.EOF
	}
	for {
		if err := s.fill(); err != nil {
			return nil, err
		}
		if len(s.pending) == 0 {
			// End of stream: close whatever is buffered. A dangling
			// header with no body lines is a trailing separator and
			// is not emitted as a record.
			s.done = true
			if len(s.cur.Body) > 0 {
				rec := s.cur
				s.cur = record.Record{}
				return &rec, nil
			}
			return nil, io.EOF
		}
		window := s.pending
		if w := s.sep.WindowLines(); len(window) > w {
			window = window[:w]
		}
		if consumed, ok := s.sep.MatchWindow(window); ok {
			header := join(s.pending[:consumed])
			s.pending = s.pending[consumed:]
			closed := s.cur
			s.cur = record.Record{Header: header}
			if !closed.IsZero() {
				return &closed, nil
			}
			continue
		}
		s.cur.Body = append(s.cur.Body, s.pending[0])
		s.pending = s.pending[1:]
	}
}

// fill tops up the lookahead window to the separator's line count
func (s *Segmenter) fill() error {
	need := s.sep.WindowLines()
	for !s.eof && len(s.pending) < need {
		n, err := s.reader.Read(s.readBuf)
		if n > 0 {
			s.pending = append(s.pending, s.lineBuf.ProcessBuf(s.readBuf[:n])...)
		}
		if err == io.EOF {
			s.eof = true
			if partial := s.lineBuf.GetPartialAndReset(); partial != "" {
				s.pending = append(s.pending, partial)
			}
			return nil
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func join(lines []string) string {
	if len(lines) == 1 {
		return lines[0]
	}
	total := 0
	for _, l := range lines {
		total += len(l)
	}
	buf := make([]byte, 0, total)
	for _, l := range lines {
		buf = append(buf, l...)
	}
	return string(buf)
}
