// Copyright 2025, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package recsearch

import (
	"github.com/ryo1kato/mllgrep/pkg/record"
)

// NotSearcher implements a searcher that inverts the result of another
// searcher. Inversion is applied to the combined AND/OR result, never
// pushed down into the individual patterns.
type NotSearcher struct {
	searcher Searcher
}

// MakeNotSearcher creates a new NOT searcher that inverts the result of the provided searcher
func MakeNotSearcher(searcher Searcher) Searcher {
	return &NotSearcher{
		searcher: searcher,
	}
}

// Match checks if the record does NOT match the contained searcher
func (s *NotSearcher) Match(rec *record.Record) bool {
	return !s.searcher.Match(rec)
}

// GetType returns the search type identifier
func (s *NotSearcher) GetType() string {
	return SearchTypeNot
}
