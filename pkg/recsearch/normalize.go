// Copyright 2025, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package recsearch

import (
	"fmt"
	"regexp"
	"strings"
)

// CompilePattern compiles one user-supplied search pattern. Case folding
// is handled here, in one place, by prefixing the (?i) flag, so searchers
// never re-implement it.
func CompilePattern(searchTerm string, caseSensitive bool) (*regexp.Regexp, error) {
	src := searchTerm
	if !caseSensitive {
		src = "(?i)" + src
	}
	regex, err := regexp.Compile(src)
	if err != nil {
		return nil, fmt.Errorf("invalid regular expression %q: %w", searchTerm, err)
	}
	return regex, nil
}

// CompileUnion compiles a single alternation covering every pattern in the
// set. The renderer highlights with this union regardless of AND/OR mode.
func CompileUnion(patterns []string, caseSensitive bool) (*regexp.Regexp, error) {
	if len(patterns) == 0 {
		return nil, nil
	}
	if len(patterns) == 1 {
		return CompilePattern(patterns[0], caseSensitive)
	}
	parts := make([]string, 0, len(patterns))
	for _, p := range patterns {
		parts = append(parts, "(?:"+p+")")
	}
	return CompilePattern(strings.Join(parts, "|"), caseSensitive)
}

// IsLiteral reports whether a pattern contains no regexp metacharacters
// and can therefore be matched as a plain substring.
func IsLiteral(searchTerm string) bool {
	return regexp.QuoteMeta(searchTerm) == searchTerm
}
