// Copyright 2025, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package recsearch

import (
	"github.com/ryo1kato/mllgrep/pkg/record"
)

const (
	SearchTypeRegexp     = "regexp"
	SearchTypeRegexpCase = "regexpcase"
	SearchTypeLiteral    = "literal"
	SearchTypeFzf        = "fzf"
	SearchTypeFzfCase    = "fzfcase"
	SearchTypeAnd        = "and"
	SearchTypeOr         = "or"
	SearchTypeNot        = "not"
	SearchTypeAll        = "all"
)

// Searcher defines the interface for different record matching strategies
type Searcher interface {
	// Match checks if a record matches the search criteria. Only body
	// lines are scanned; the header is context, not match material.
	Match(rec *record.Record) bool

	// GetType returns the search type identifier
	GetType() string
}
