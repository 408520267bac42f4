// Package match resolves a query against a candidate set using an exact
// pass followed by a substring pass.
package match

import (
	"strings"

	"github.com/bral/git-fuzzy-go/internal/types"
)

// Match returns the branches in candidates that a query selects.
//
// An exact name match always wins over substring matches. Otherwise every
// candidate containing query is returned, with the span of the first
// occurrence, in candidate order. Comparison is case-sensitive and literal.
// An empty query never matches.
func Match(candidates types.CandidateSet, query string) types.MatchResult {
	if query == "" {
		return types.MatchResult{Kind: types.NoMatch, Tier: types.TierNone}
	}

	if exact := exactMatches(candidates, query); len(exact) > 0 {
		return result(types.TierExact, exact)
	}
	return result(types.TierSubstring, substringMatches(candidates, query))
}

func exactMatches(candidates types.CandidateSet, query string) []types.Candidate {
	var out []types.Candidate
	for i := 0; i < candidates.Len(); i++ {
		ref := candidates.At(i)
		if ref.Name == query {
			out = append(out, types.Candidate{Ref: ref, Span: types.Span{Start: 0, Len: len(ref.Name)}})
		}
	}
	return out
}

func substringMatches(candidates types.CandidateSet, query string) []types.Candidate {
	var out []types.Candidate
	for i := 0; i < candidates.Len(); i++ {
		ref := candidates.At(i)
		if pos := strings.Index(ref.Name, query); pos >= 0 {
			out = append(out, types.Candidate{Ref: ref, Span: types.Span{Start: pos, Len: len(query)}})
		}
	}
	return out
}

func result(tier types.MatchTier, matches []types.Candidate) types.MatchResult {
	switch len(matches) {
	case 0:
		return types.MatchResult{Kind: types.NoMatch, Tier: types.TierNone}
	case 1:
		return types.MatchResult{Kind: types.SingleMatch, Tier: tier, Matches: matches}
	default:
		return types.MatchResult{Kind: types.AmbiguousMatch, Tier: tier, Matches: matches}
	}
}
