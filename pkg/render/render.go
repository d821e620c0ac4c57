// Copyright 2025, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/ryo1kato/mllgrep/pkg/record"
	"github.com/ryo1kato/mllgrep/pkg/recsearch"
)

const (
	ModePlain     = "plain"
	ModeHighlight = "highlight"
	ModeCount     = "count"
)

// ANSI emphasis markers for highlighted match spans (GNU grep's default)
const (
	hlStart = "\x1b[01;31m"
	hlEnd   = "\x1b[0m"
)

// RunCounters accumulates matching-record counts for one invocation.
// Source is reset after each input source; Total spans the whole run.
type RunCounters struct {
	Total  int
	Source int
}

// Renderer turns matched records into output bytes and advances the run
// counters. One renderer serves the whole run so the blank separator
// between successive emitted records works across source boundaries.
type Renderer struct {
	out      io.Writer
	mode     string
	ps       *recsearch.PatternSet
	counters RunCounters
	emitted  bool
}

func MakeRenderer(out io.Writer, mode string, ps *recsearch.PatternSet) *Renderer {
	return &Renderer{
		out:  out,
		mode: mode,
		ps:   ps,
	}
}

// Counters returns the accumulated counts
func (r *Renderer) Counters() *RunCounters {
	return &r.counters
}

// EmitRecord renders one matched record and counts it exactly once,
// regardless of how many lines inside it matched.
func (r *Renderer) EmitRecord(rec *record.Record) error {
	r.counters.Total++
	r.counters.Source++
	if r.mode == ModeCount {
		return nil
	}
	// A record with no visible text (a blank separator header and no body
	// lines) still counts, but it must not trigger the introduced blank
	// line between its neighbors.
	if !rec.HeaderVisible() && len(rec.Body) == 0 {
		return nil
	}
	var sb strings.Builder
	if r.emitted {
		sb.WriteString("\n")
	}
	r.emitted = true
	if rec.HeaderVisible() {
		r.writeLine(&sb, rec.Header)
	}
	for _, line := range rec.Body {
		r.writeLine(&sb, line)
	}
	_, err := io.WriteString(r.out, sb.String())
	return err
}

// writeLine writes one raw line, wrapping match spans in the emphasis
// markers when in highlight mode. The line ending is passed through
// untouched; spans are computed on the content only.
func (r *Renderer) writeLine(sb *strings.Builder, line string) {
	if r.mode != ModeHighlight {
		sb.WriteString(line)
		return
	}
	content := record.TrimEOL(line)
	spans := r.ps.FindSpans(content)
	if len(spans) == 0 {
		sb.WriteString(line)
		return
	}
	pos := 0
	for _, span := range spans {
		sb.WriteString(content[pos:span.Start])
		sb.WriteString(hlStart)
		sb.WriteString(content[span.Start:span.End])
		sb.WriteString(hlEnd)
		pos = span.End
	}
	sb.WriteString(content[pos:])
	sb.WriteString(line[len(content):])
}

// AbortSource drops the partial count of a source that failed mid-read,
// so a failed source's contribution cannot leak into the next source's
// report.
func (r *Renderer) AbortSource() {
	r.counters.Source = 0
}

// FinishSource reports a source's count in count mode (prefixed with the
// source name when the run covers more than one source) and resets the
// per-source counter.
func (r *Renderer) FinishSource(name string, multiSource bool) error {
	count := r.counters.Source
	r.counters.Source = 0
	if r.mode != ModeCount {
		return nil
	}
	var err error
	if multiSource {
		_, err = fmt.Fprintf(r.out, "%s:%d\n", name, count)
	} else {
		_, err = fmt.Fprintf(r.out, "%d\n", count)
	}
	return err
}
