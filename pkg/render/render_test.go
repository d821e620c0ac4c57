// Copyright 2025, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"bytes"
	"testing"

	"github.com/ryo1kato/mllgrep/pkg/record"
	"github.com/ryo1kato/mllgrep/pkg/recsearch"
)

func makePS(t *testing.T, patterns ...string) *recsearch.PatternSet {
	t.Helper()
	ps, err := recsearch.MakePatternSet(recsearch.Config{Patterns: patterns})
	if err != nil {
		t.Fatalf("MakePatternSet failed: %v", err)
	}
	return ps
}

func TestPlainEmission(t *testing.T) {
	var buf bytes.Buffer
	r := MakeRenderer(&buf, ModePlain, makePS(t, "foo"))
	rec := &record.Record{Header: "\n", Body: []string{" b\n", "foo\n"}}
	if err := r.EmitRecord(rec); err != nil {
		t.Fatalf("EmitRecord failed: %v", err)
	}
	// A blank separator header prints nothing extra
	if got := buf.String(); got != " b\nfoo\n" {
		t.Errorf("Expected %q, got %q", " b\nfoo\n", got)
	}
}

func TestVisibleHeaderEmission(t *testing.T) {
	var buf bytes.Buffer
	r := MakeRenderer(&buf, ModePlain, makePS(t, "body"))
	rec := &record.Record{Header: "---\n", Body: []string{"body\n"}}
	if err := r.EmitRecord(rec); err != nil {
		t.Fatalf("EmitRecord failed: %v", err)
	}
	if got := buf.String(); got != "---\nbody\n" {
		t.Errorf("Expected %q, got %q", "---\nbody\n", got)
	}
}

func TestBlankSeparatorBetweenRecords(t *testing.T) {
	var buf bytes.Buffer
	r := MakeRenderer(&buf, ModePlain, makePS(t, "x"))
	r.EmitRecord(&record.Record{Body: []string{"x1\n"}})
	r.EmitRecord(&record.Record{Body: []string{"x2\n"}})
	r.EmitRecord(&record.Record{Body: []string{"x3\n"}})
	want := "x1\n\nx2\n\nx3\n"
	if got := buf.String(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestInvisibleRecordNoSeparator(t *testing.T) {
	// A header-only record with a blank header has nothing to print; it
	// still counts, but must not insert a stray blank line
	var buf bytes.Buffer
	r := MakeRenderer(&buf, ModePlain, makePS(t, "x"))
	r.EmitRecord(&record.Record{Body: []string{"x1\n"}})
	r.EmitRecord(&record.Record{Header: "\n"})
	r.EmitRecord(&record.Record{Body: []string{"x2\n"}})
	want := "x1\n\nx2\n"
	if got := buf.String(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
	if r.Counters().Total != 3 {
		t.Errorf("Expected total of 3, got %d", r.Counters().Total)
	}
}

func TestAbortSourceDropsPartialCount(t *testing.T) {
	var buf bytes.Buffer
	r := MakeRenderer(&buf, ModeCount, makePS(t, "x"))
	r.EmitRecord(&record.Record{Body: []string{"x\n"}})
	r.EmitRecord(&record.Record{Body: []string{"x\n"}})
	r.AbortSource()
	r.EmitRecord(&record.Record{Body: []string{"x\n"}})
	if err := r.FinishSource("b.log", true); err != nil {
		t.Fatalf("FinishSource failed: %v", err)
	}
	if got := buf.String(); got != "b.log:1\n" {
		t.Errorf("Expected %q, got %q", "b.log:1\n", got)
	}
}

func TestHighlightSpans(t *testing.T) {
	var buf bytes.Buffer
	r := MakeRenderer(&buf, ModeHighlight, makePS(t, "ab"))
	r.EmitRecord(&record.Record{Body: []string{"xaby\n"}})
	want := "x" + hlStart + "ab" + hlEnd + "y\n"
	if got := buf.String(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestHighlightHeaderAsContext(t *testing.T) {
	var buf bytes.Buffer
	r := MakeRenderer(&buf, ModeHighlight, makePS(t, "boot"))
	rec := &record.Record{
		Header: "Jan 12 03:04:05 boot\n",
		Body:   []string{"boot ok\n"},
	}
	r.EmitRecord(rec)
	want := "Jan 12 03:04:05 " + hlStart + "boot" + hlEnd + "\n" +
		hlStart + "boot" + hlEnd + " ok\n"
	if got := buf.String(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestCountModeSuppressesText(t *testing.T) {
	var buf bytes.Buffer
	r := MakeRenderer(&buf, ModeCount, makePS(t, "x"))
	r.EmitRecord(&record.Record{Body: []string{"x\n"}})
	r.EmitRecord(&record.Record{Body: []string{"x again\n", "x more\n"}})
	if buf.Len() != 0 {
		t.Errorf("Expected no record text in count mode, got %q", buf.String())
	}
	if err := r.FinishSource("file.log", false); err != nil {
		t.Fatalf("FinishSource failed: %v", err)
	}
	if got := buf.String(); got != "2\n" {
		t.Errorf("Expected %q, got %q", "2\n", got)
	}
}

func TestCountModeMultiSourcePrefix(t *testing.T) {
	var buf bytes.Buffer
	r := MakeRenderer(&buf, ModeCount, makePS(t, "x"))
	r.EmitRecord(&record.Record{Body: []string{"x\n"}})
	r.FinishSource("a.log", true)
	r.FinishSource("b.log", true)
	want := "a.log:1\nb.log:0\n"
	if got := buf.String(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestCountersPerRecordNotPerLine(t *testing.T) {
	var buf bytes.Buffer
	r := MakeRenderer(&buf, ModePlain, makePS(t, "x"))
	r.EmitRecord(&record.Record{Body: []string{"x\n", "x\n", "x\n"}})
	if r.Counters().Total != 1 {
		t.Errorf("Expected total of 1 for one record, got %d", r.Counters().Total)
	}
}

func TestSourceCounterReset(t *testing.T) {
	var buf bytes.Buffer
	r := MakeRenderer(&buf, ModeCount, makePS(t, "x"))
	r.EmitRecord(&record.Record{Body: []string{"x\n"}})
	r.FinishSource("a", true)
	r.EmitRecord(&record.Record{Body: []string{"x\n"}})
	r.EmitRecord(&record.Record{Body: []string{"x\n"}})
	r.FinishSource("b", true)
	if got := buf.String(); got != "a:1\nb:2\n" {
		t.Errorf("Expected %q, got %q", "a:1\nb:2\n", got)
	}
	if r.Counters().Total != 3 {
		t.Errorf("Expected run total of 3, got %d", r.Counters().Total)
	}
}
