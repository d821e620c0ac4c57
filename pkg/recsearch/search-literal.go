// Copyright 2025, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package recsearch

import (
	"fmt"
	"strings"

	"github.com/coregx/ahocorasick"
	"github.com/ryo1kato/mllgrep/pkg/record"
)

// MultiLiteralSearcher matches a set of plain literal patterns with one
// Aho-Corasick pass per line. It is the OR fast path the pattern set
// builder selects when every pattern is metacharacter-free; the match
// result is identical to an OrSearcher over the same literals.
type MultiLiteralSearcher struct {
	terms         []string
	automaton     *ahocorasick.Automaton
	caseSensitive bool
}

// MakeMultiLiteralSearcher creates an Aho-Corasick searcher over literal terms
func MakeMultiLiteralSearcher(terms []string, caseSensitive bool) (*MultiLiteralSearcher, error) {
	builder := ahocorasick.NewBuilder()
	for _, term := range terms {
		if !caseSensitive {
			term = strings.ToLower(term)
		}
		builder.AddPattern([]byte(term))
	}
	automaton, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("building literal matcher: %w", err)
	}
	return &MultiLiteralSearcher{
		terms:         terms,
		automaton:     automaton,
		caseSensitive: caseSensitive,
	}, nil
}

// Match checks if any body line contains any of the literal terms
func (s *MultiLiteralSearcher) Match(rec *record.Record) bool {
	for _, line := range rec.Body {
		if !s.caseSensitive {
			line = strings.ToLower(line)
		}
		if s.automaton.IsMatch([]byte(line)) {
			return true
		}
	}
	return false
}

// GetType returns the search type identifier
func (s *MultiLiteralSearcher) GetType() string {
	return SearchTypeLiteral
}
