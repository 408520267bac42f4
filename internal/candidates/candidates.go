// Package candidates merges local and remote-tracking branch names into the
// deduplicated set that queries are matched against.
package candidates

import (
	"sort"
	"strings"

	"github.com/bral/git-fuzzy-go/internal/types"
)

// headRef is the symbolic branch a remote advertises (e.g. "origin/HEAD").
const headRef = "HEAD"

// Build returns every distinct bare branch name from locals and remotes.
// Locals come first, in order, tagged Local. Remote names ("origin/feature")
// are stripped of their remote prefix and added tagged RemoteOnly only if no
// entry with that bare name exists yet, so a branch present on several
// remotes appears once, at its first-seen position.
//
// remoteNames lists the configured remotes and is used to strip prefixes of
// remotes whose names contain a slash; it may be nil.
func Build(locals, remotes, remoteNames []string) types.CandidateSet {
	refs := make([]types.BranchRef, 0, len(locals)+len(remotes))
	seen := make(map[string]struct{}, len(locals)+len(remotes))

	add := func(ref types.BranchRef) {
		if _, ok := seen[ref.Name]; ok {
			return
		}
		seen[ref.Name] = struct{}{}
		refs = append(refs, ref)
	}

	for _, name := range locals {
		if name == "" {
			continue
		}
		add(types.BranchRef{Name: name, Origin: types.OriginLocal})
	}

	known := sortedRemotes(remoteNames)
	for _, full := range remotes {
		remote, bare, ok := splitRemote(full, known)
		if !ok {
			continue
		}
		add(types.BranchRef{Name: bare, Origin: types.OriginRemoteOnly, Remote: remote})
	}

	return types.NewCandidateSet(refs)
}

// splitRemote splits a remote-tracking name into remote and bare branch
// name. known is sorted longest first so "my/fork" wins over "my". Without
// a known match the name is cut at its first slash. ok is false for names
// with no branch part and for the remote's symbolic HEAD.
func splitRemote(full string, known []string) (remote, bare string, ok bool) {
	for _, r := range known {
		if strings.HasPrefix(full, r+"/") {
			remote, bare = r, full[len(r)+1:]
			return remote, bare, bare != "" && bare != headRef
		}
	}
	remote, bare, found := strings.Cut(full, "/")
	if !found || remote == "" {
		return "", "", false
	}
	return remote, bare, bare != "" && bare != headRef
}

func sortedRemotes(names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if n != "" {
			out = append(out, n)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return len(out[i]) > len(out[j]) })
	return out
}
