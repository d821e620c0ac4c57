// Copyright 2025, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package recsearch

import (
	"github.com/ryo1kato/mllgrep/pkg/record"
)

// AndSearcher implements a searcher that requires all contained searchers
// to match. Each child only needs to match somewhere in the record, so
// different patterns may be satisfied by different lines.
type AndSearcher struct {
	searchers []Searcher
}

// MakeAndSearcher creates a new AND searcher from a slice of searchers
func MakeAndSearcher(searchers []Searcher) *AndSearcher {
	return &AndSearcher{
		searchers: searchers,
	}
}

// Match checks if the record matches all contained searchers
func (s *AndSearcher) Match(rec *record.Record) bool {
	// If we have no searchers, everything matches
	if len(s.searchers) == 0 {
		return true
	}
	for _, searcher := range s.searchers {
		if !searcher.Match(rec) {
			return false
		}
	}
	return true
}

// GetType returns the search type identifier
func (s *AndSearcher) GetType() string {
	return SearchTypeAnd
}
