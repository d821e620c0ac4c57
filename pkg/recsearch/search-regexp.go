// Copyright 2025, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package recsearch

import (
	"regexp"

	"github.com/ryo1kato/mllgrep/pkg/record"
)

// RegexpSearcher implements regular expression matching over body lines
type RegexpSearcher struct {
	searchTerm    string
	regex         *regexp.Regexp
	caseSensitive bool
}

// MakeRegexpSearcher creates a new regexp searcher
func MakeRegexpSearcher(searchTerm string, caseSensitive bool) (*RegexpSearcher, error) {
	regex, err := CompilePattern(searchTerm, caseSensitive)
	if err != nil {
		return nil, err
	}
	return &RegexpSearcher{
		searchTerm:    searchTerm,
		regex:         regex,
		caseSensitive: caseSensitive,
	}, nil
}

// Match checks if any body line matches the regular expression. Lines are
// tested without their endings so $ anchors behave as line anchors.
func (s *RegexpSearcher) Match(rec *record.Record) bool {
	for _, line := range rec.Body {
		if s.regex.MatchString(record.TrimEOL(line)) {
			return true
		}
	}
	return false
}

// GetType returns the search type identifier
func (s *RegexpSearcher) GetType() string {
	if s.caseSensitive {
		return SearchTypeRegexpCase
	}
	return SearchTypeRegexp
}
