// Copyright 2025, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package recsearch

import (
	"fmt"
	"strings"
)

// PrettyPrint returns a human-readable string representation of a searcher
func PrettyPrint(s Searcher) string {
	if s == nil {
		return "<nil>"
	}

	switch searcher := s.(type) {
	case *RegexpSearcher:
		sensitivity := "case-insensitive"
		if searcher.caseSensitive {
			sensitivity = "case-sensitive"
		}
		return fmt.Sprintf("RegexpSearcher{pattern: %q, %s}", searcher.searchTerm, sensitivity)

	case *FzfSearcher:
		sensitivity := "case-insensitive"
		if searcher.caseSensitive {
			sensitivity = "case-sensitive"
		}
		return fmt.Sprintf("FzfSearcher{term: %q, %s}", searcher.searchTerm, sensitivity)

	case *MultiLiteralSearcher:
		sensitivity := "case-insensitive"
		if searcher.caseSensitive {
			sensitivity = "case-sensitive"
		}
		return fmt.Sprintf("MultiLiteralSearcher{terms: %q, %s}", searcher.terms, sensitivity)

	case *AndSearcher:
		children := make([]string, 0, len(searcher.searchers))
		for _, child := range searcher.searchers {
			children = append(children, PrettyPrint(child))
		}
		return fmt.Sprintf("AndSearcher{%s}", strings.Join(children, " AND "))

	case *OrSearcher:
		children := make([]string, 0, len(searcher.searchers))
		for _, child := range searcher.searchers {
			children = append(children, PrettyPrint(child))
		}
		return fmt.Sprintf("OrSearcher{%s}", strings.Join(children, " OR "))

	case *NotSearcher:
		return fmt.Sprintf("NotSearcher{%s}", PrettyPrint(searcher.searcher))

	case *AllSearcher:
		return "AllSearcher{}"

	default:
		return fmt.Sprintf("UnknownSearcher{type: %s}", s.GetType())
	}
}
