// Copyright 2025, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package recsearch

import (
	"github.com/ryo1kato/mllgrep/pkg/record"
)

// AllSearcher implements a searcher that matches everything
type AllSearcher struct{}

// MakeAllSearcher creates a new searcher that matches all records
func MakeAllSearcher() Searcher {
	return &AllSearcher{}
}

// Match always returns true
func (s *AllSearcher) Match(rec *record.Record) bool {
	return true
}

// GetType returns the search type identifier
func (s *AllSearcher) GetType() string {
	return SearchTypeAll
}
