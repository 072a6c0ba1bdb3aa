package tui

import (
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/sky-xo/treediff/internal/difftree"
)

// searchMatches returns the indices of node rows whose path fuzzy-matches
// the query, in document order.
func searchMatches(rows []renderedRow, query string) []int {
	if query == "" {
		return nil
	}
	var matches []int
	for i, r := range rows {
		if r.row.Kind != difftree.RowNode {
			continue
		}
		if fuzzy.MatchFold(query, displayPath(r.row.Path)) {
			matches = append(matches, i)
		}
	}
	return matches
}

// nextMatch picks the first match at or after the cursor, wrapping around.
func nextMatch(matches []int, cursor int) (int, bool) {
	if len(matches) == 0 {
		return 0, false
	}
	for _, idx := range matches {
		if idx >= cursor {
			return idx, true
		}
	}
	return matches[0], true
}

// prevMatch picks the last match before the cursor, wrapping around.
func prevMatch(matches []int, cursor int) (int, bool) {
	if len(matches) == 0 {
		return 0, false
	}
	for i := len(matches) - 1; i >= 0; i-- {
		if matches[i] < cursor {
			return matches[i], true
		}
	}
	return matches[len(matches)-1], true
}
