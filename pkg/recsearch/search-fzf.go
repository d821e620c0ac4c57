// Copyright 2025, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package recsearch

import (
	"strings"

	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"
	"github.com/ryo1kato/mllgrep/pkg/record"
)

// FzfSearcher implements fuzzy matching using the fzf algorithm
type FzfSearcher struct {
	searchTerm    string
	pattern       []rune
	slab          *util.Slab
	caseSensitive bool
}

// MakeFzfSearcher creates a new FZF searcher
func MakeFzfSearcher(searchTerm string, caseSensitive bool) (*FzfSearcher, error) {
	term := searchTerm
	if !caseSensitive {
		term = strings.ToLower(term)
	}
	return &FzfSearcher{
		searchTerm:    searchTerm,
		pattern:       []rune(term),
		slab:          util.MakeSlab(64, 4096),
		caseSensitive: caseSensitive,
	}, nil
}

// Match checks if any body line matches the fuzzy search pattern
func (s *FzfSearcher) Match(rec *record.Record) bool {
	for _, line := range rec.Body {
		if s.matchLine(record.TrimEOL(line)) {
			return true
		}
	}
	return false
}

func (s *FzfSearcher) matchLine(line string) bool {
	if !s.caseSensitive {
		line = strings.ToLower(line)
	}
	chars := util.ToChars([]byte(line))
	result, _ := algo.FuzzyMatchV2(false, true, true, &chars, s.pattern, true, s.slab)
	return result.Score > 0
}

// GetType returns the search type identifier
func (s *FzfSearcher) GetType() string {
	if s.caseSensitive {
		return SearchTypeFzfCase
	}
	return SearchTypeFzf
}
