// Copyright 2025, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package recsearch

// Position represents the start and end byte offsets of a match in a line
type Position struct {
	Start int
	End   int
}

// FindSpans returns every non-empty span in the line that any pattern in
// the set matches. Spans come from the union alternation, so an occurrence
// of any pattern is reported even when it was not decisive for an AND
// match. Returns nil when the set has no highlightable union.
func (ps *PatternSet) FindSpans(line string) []Position {
	if ps.union == nil {
		return nil
	}
	locs := ps.union.FindAllStringIndex(line, -1)
	if len(locs) == 0 {
		return nil
	}
	spans := make([]Position, 0, len(locs))
	for _, loc := range locs {
		if loc[0] == loc[1] {
			continue
		}
		spans = append(spans, Position{Start: loc[0], End: loc[1]})
	}
	return spans
}
