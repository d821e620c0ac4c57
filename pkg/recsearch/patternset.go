// Copyright 2025, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package recsearch

import (
	"errors"
	"regexp"

	"github.com/ryo1kato/mllgrep/pkg/record"
)

// Config describes how the per-run patterns combine
type Config struct {
	Patterns   []string
	RequireAll bool
	Invert     bool
	IgnoreCase bool
	Fuzzy      bool
}

// PatternSet is the compiled, immutable matching configuration for one
// run: a composed searcher for the match decision plus a single union
// alternation the renderer uses to highlight every pattern occurrence.
type PatternSet struct {
	searcher Searcher
	union    *regexp.Regexp
}

// MakePatternSet compiles all patterns and composes them according to the
// configuration. Any uncompilable pattern fails the whole construction,
// before a single record is read.
func MakePatternSet(cfg Config) (*PatternSet, error) {
	if len(cfg.Patterns) == 0 {
		return nil, errors.New("no search pattern given")
	}
	caseSensitive := !cfg.IgnoreCase

	searcher, err := composeSearcher(cfg, caseSensitive)
	if err != nil {
		return nil, err
	}
	if cfg.Invert {
		searcher = MakeNotSearcher(searcher)
	}

	var union *regexp.Regexp
	if !cfg.Fuzzy {
		union, err = CompileUnion(cfg.Patterns, caseSensitive)
		if err != nil {
			return nil, err
		}
	}

	return &PatternSet{
		searcher: searcher,
		union:    union,
	}, nil
}

func composeSearcher(cfg Config, caseSensitive bool) (Searcher, error) {
	// OR over plain literals collapses into one Aho-Corasick pass
	if !cfg.Fuzzy && !cfg.RequireAll && len(cfg.Patterns) > 1 && allLiteral(cfg.Patterns) {
		return MakeMultiLiteralSearcher(cfg.Patterns, caseSensitive)
	}

	searchers := make([]Searcher, 0, len(cfg.Patterns))
	for _, pattern := range cfg.Patterns {
		var searcher Searcher
		var err error
		if pattern == "" {
			// An empty search term matches everything
			searcher = MakeAllSearcher()
		} else if cfg.Fuzzy {
			searcher, err = MakeFzfSearcher(pattern, caseSensitive)
		} else {
			searcher, err = MakeRegexpSearcher(pattern, caseSensitive)
		}
		if err != nil {
			return nil, err
		}
		searchers = append(searchers, searcher)
	}
	if len(searchers) == 1 {
		return searchers[0], nil
	}
	if cfg.RequireAll {
		return MakeAndSearcher(searchers), nil
	}
	return MakeOrSearcher(searchers), nil
}

func allLiteral(patterns []string) bool {
	for _, p := range patterns {
		// empty terms are handled by AllSearcher, not the automaton
		if p == "" || !IsLiteral(p) {
			return false
		}
	}
	return true
}

// Match checks if the record counts under the composed configuration
func (ps *PatternSet) Match(rec *record.Record) bool {
	return ps.searcher.Match(rec)
}

// Searcher exposes the composed searcher tree (used for diagnostics)
func (ps *PatternSet) Searcher() Searcher {
	return ps.searcher
}

// Union returns the highlight alternation, or nil when highlighting is
// unavailable (fuzzy mode has no meaningful substring spans).
func (ps *PatternSet) Union() *regexp.Regexp {
	return ps.union
}
