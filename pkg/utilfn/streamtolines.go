// Copyright 2025, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package utilfn

type LineBuf struct {
	buf []byte
}

// MaxLineLength caps the per-line buffer. A longer line is emitted in
// MaxLineLength-sized chunks; no input bytes are ever dropped, so callers
// that reassemble the chunks get the original line back.
const MaxLineLength = 64 * 1024

func MakeLineBuf() *LineBuf {
	return &LineBuf{
		buf: make([]byte, 0, 4096),
	}
}

// GetPartialAndReset returns any buffered partial line (a trailing line
// with no newline before EOF) and resets the buffer.
func (lb *LineBuf) GetPartialAndReset() string {
	rtn := string(lb.buf)
	lb.buf = lb.buf[:0]
	return rtn
}

// processes the buffer, returns complete lines (partial lines are retained)
func (lb *LineBuf) ProcessBuf(readBuf []byte) (lines []string) {
	for _, ch := range readBuf {
		lb.buf = append(lb.buf, ch)
		if ch == '\n' || len(lb.buf) >= MaxLineLength {
			lines = append(lines, string(lb.buf))
			lb.buf = lb.buf[:0]
		}
	}
	return
}
