// Copyright 2025, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package recsearch

import (
	"github.com/ryo1kato/mllgrep/pkg/record"
)

// OrSearcher implements a searcher that matches if any contained searcher matches
type OrSearcher struct {
	searchers []Searcher
}

// MakeOrSearcher creates a new OR searcher from a slice of searchers
func MakeOrSearcher(searchers []Searcher) Searcher {
	return &OrSearcher{
		searchers: searchers,
	}
}

// Match checks if the record matches any contained searcher
func (s *OrSearcher) Match(rec *record.Record) bool {
	// If we have no searchers, nothing matches
	if len(s.searchers) == 0 {
		return false
	}
	for _, searcher := range s.searchers {
		if searcher.Match(rec) {
			return true
		}
	}
	return false
}

// GetType returns the search type identifier
func (s *OrSearcher) GetType() string {
	return SearchTypeOr
}
