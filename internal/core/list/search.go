package list

import (
	"strconv"
	"strings"

	"github.com/colonyops/tada/internal/core/item"
)

// SearchTerms matches tasks against user supplied terms. A term starting with
// @ matches a context, + a tag, # a line number; anything else is a
// case-insensitive substring of the description.
type SearchTerms []string

func (st SearchTerms) matches(it *item.Item, term string) bool {
	switch {
	case strings.HasPrefix(term, "@"):
		return it.HasContext(term)
	case strings.HasPrefix(term, "+"):
		return it.HasTag(term)
	case strings.HasPrefix(term, "#"):
		n, err := strconv.Atoi(term[1:])
		return err == nil && it.LineNumber() == n
	default:
		return strings.Contains(strings.ToLower(it.Description()), strings.ToLower(term))
	}
}

// MatchesAny reports whether at least one term matches.
func (st SearchTerms) MatchesAny(it *item.Item) bool {
	for _, term := range st {
		if st.matches(it, term) {
			return true
		}
	}
	return false
}

// MatchesAll reports whether every term matches. No terms match everything.
func (st SearchTerms) MatchesAll(it *item.Item) bool {
	for _, term := range st {
		if !st.matches(it, term) {
			return false
		}
	}
	return true
}
