// Package types holds the data shared between the resolution stages.
package types

// Origin records where a candidate branch was discovered.
type Origin string

const (
	OriginLocal      Origin = "Local"
	OriginRemoteOnly Origin = "RemoteOnly"
)

// BranchRef is a bare branch name plus where it came from.
type BranchRef struct {
	Name   string
	Origin Origin
	Remote string // e.g., "origin"; only set for OriginRemoteOnly
}

// IsLocal reports whether the branch exists as a local head.
func (b BranchRef) IsLocal() bool {
	return b.Origin == OriginLocal
}

// CandidateSet is the ordered, deduplicated list of branches a query is
// matched against. Names are unique. Build one with the candidates package.
type CandidateSet struct {
	refs []BranchRef
}

// NewCandidateSet wraps refs that are already known to be unique by name.
// Callers outside the candidates package should use candidates.Build.
func NewCandidateSet(refs []BranchRef) CandidateSet {
	return CandidateSet{refs: refs}
}

// Len returns the number of candidates.
func (s CandidateSet) Len() int { return len(s.refs) }

// At returns the i-th candidate in discovery order.
func (s CandidateSet) At(i int) BranchRef { return s.refs[i] }

// Refs returns a copy of the candidates in discovery order.
func (s CandidateSet) Refs() []BranchRef {
	out := make([]BranchRef, len(s.refs))
	copy(out, s.refs)
	return out
}

// Names returns the candidate names in discovery order.
func (s CandidateSet) Names() []string {
	names := make([]string, len(s.refs))
	for i, ref := range s.refs {
		names[i] = ref.Name
	}
	return names
}

// Span is a byte range inside a branch name.
type Span struct {
	Start int
	Len   int
}

// End returns the offset one past the last byte of the span.
func (s Span) End() int { return s.Start + s.Len }

// MatchKind is the outcome of matching a query against a CandidateSet.
type MatchKind int

const (
	NoMatch MatchKind = iota
	SingleMatch
	AmbiguousMatch
)

func (k MatchKind) String() string {
	switch k {
	case NoMatch:
		return "NoMatch"
	case SingleMatch:
		return "SingleMatch"
	case AmbiguousMatch:
		return "AmbiguousMatch"
	default:
		return "MatchKind(?)"
	}
}

// MatchTier says which matching pass produced a result.
type MatchTier string

const (
	TierNone      MatchTier = ""
	TierExact     MatchTier = "exact"
	TierSubstring MatchTier = "substring"
)

// Candidate is a matched branch and the part of its name that matched.
type Candidate struct {
	Ref  BranchRef
	Span Span
}

// MatchResult holds the matches of one query. Matches is empty for NoMatch,
// has one entry for SingleMatch and two or more for AmbiguousMatch.
type MatchResult struct {
	Kind    MatchKind
	Tier    MatchTier
	Matches []Candidate
}

// Single returns the resolved branch of a SingleMatch result.
func (r MatchResult) Single() (Candidate, bool) {
	if r.Kind != SingleMatch || len(r.Matches) != 1 {
		return Candidate{}, false
	}
	return r.Matches[0], true
}

// RawRefs is what a ref lister reports before deduplication.
type RawRefs struct {
	Locals      []string // e.g., "feature/x"
	Remotes     []string // e.g., "origin/feature/x"
	RemoteNames []string // e.g., "origin"
}
