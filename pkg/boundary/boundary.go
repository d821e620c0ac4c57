// Copyright 2025, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package boundary

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ryo1kato/mllgrep/pkg/record"
)

// DefaultPattern recognizes an empty line or a rule of three or more
// repeated '=' or '-' characters.
const DefaultPattern = `^(?:={3,}|-{3,})?$`

// TimestampPattern recognizes common log timestamp headers: an optional
// day-of-week, a month name or ISO date, a time of day, and an optional
// year, anchored at the start of a line.
const TimestampPattern = `^(?:(?:Mon|Tue|Wed|Thu|Fri|Sat|Sun)[a-z]*,?[ \t]+)?` +
	`(?:(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?[ \t]+[0-9]{1,2}|[0-9]{4}-[0-9]{2}-[0-9]{2})` +
	`(?:[ \t]+|T)[0-9]{1,2}:[0-9]{2}(?::[0-9]{2})?` +
	`(?:[ \t]+[0-9]{4})?`

// Separator is a compiled record boundary predicate. It is immutable after
// construction and owned by the engine for the lifetime of one run.
type Separator struct {
	expr   string
	re     *regexp.Regexp
	window int
}

// Compile compiles a user-supplied boundary expression. An expression that
// contains newlines (literal or as the \n escape) is matched against a
// rolling multi-line window instead of a single line.
func Compile(expr string) (*Separator, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid separator regexp: %w", err)
	}
	return &Separator{
		expr:   expr,
		re:     re,
		window: windowLines(expr),
	}, nil
}

// Default returns the blank-line / dashed-rule separator
func Default() *Separator {
	sep, err := Compile(DefaultPattern)
	if err != nil {
		panic(err)
	}
	return sep
}

// Timestamp returns the timestamp-header separator preset
func Timestamp() *Separator {
	sep, err := Compile(TimestampPattern)
	if err != nil {
		panic(err)
	}
	return sep
}

// Expr returns the separator's source expression
func (s *Separator) Expr() string {
	return s.expr
}

// WindowLines returns how many consecutive lines the separator needs to
// inspect when testing a candidate boundary position.
func (s *Separator) WindowLines() int {
	return s.window
}

// MatchWindow tests whether a record boundary starts at the first line of
// the given window. The window holds raw lines (line endings included),
// at most WindowLines of them, fewer near end of stream. On a match it
// returns the number of leading lines consumed as the boundary header.
func (s *Separator) MatchWindow(lines []string) (consumed int, ok bool) {
	if len(lines) == 0 {
		return 0, false
	}
	if s.window == 1 {
		if s.re.MatchString(record.TrimEOL(lines[0])) {
			return 1, true
		}
		return 0, false
	}
	joined := strings.Join(lines, "")
	loc := s.re.FindStringIndex(joined)
	if loc == nil || loc[0] != 0 {
		return 0, false
	}
	// Consume every line the match reaches into, at least one.
	consumed = 1
	lineEnd := len(lines[0])
	for consumed < len(lines) && loc[1] > lineEnd {
		lineEnd += len(lines[consumed])
		consumed++
	}
	return consumed, true
}

// windowLines counts the newlines an expression can span. Both a raw
// newline character and the two-character \n escape count; an escaped
// backslash before the 'n' does not.
func windowLines(expr string) int {
	n := 1
	n += strings.Count(expr, "\n")
	for i := 0; i+1 < len(expr); i++ {
		if expr[i] != '\\' {
			continue
		}
		if expr[i+1] == 'n' {
			n++
		}
		// skip the escaped character either way
		i++
	}
	return n
}
