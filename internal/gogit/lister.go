// Package gogit lists branches by reading the repository with go-git
// instead of running the git executable.
package gogit

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/bral/git-fuzzy-go/internal/log"
	"github.com/bral/git-fuzzy-go/internal/types"
)

const remoteRefsPrefix = "refs/remotes/"

// Lister reads branch refs from a repository on disk, or from an already
// opened repository.
type Lister struct {
	Dir       string // searched upwards for .git; empty means "."
	LocalOnly bool

	repo *git.Repository
}

// ForRepository returns a lister over an opened repository.
func ForRepository(repo *git.Repository, localOnly bool) *Lister {
	return &Lister{LocalOnly: localOnly, repo: repo}
}

func (l *Lister) open() (*git.Repository, error) {
	if l.repo != nil {
		return l.repo, nil
	}
	dir := l.Dir
	if dir == "" {
		dir = "."
	}
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, err
	}
	l.repo = repo
	return repo, nil
}

// InRepo reports whether Dir is inside a git repository.
func (l *Lister) InRepo(_ context.Context) (bool, error) {
	_, err := l.open()
	if errors.Is(err, git.ErrRepositoryNotExists) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to open repository: %w", err)
	}
	return true, nil
}

// Refs returns branch names in the order the git executable would list
// them: locals by ref name, then each remote (sorted by name) with its
// branches by ref name.
func (l *Lister) Refs(ctx context.Context) (types.RawRefs, error) {
	repo, err := l.open()
	if err != nil {
		return types.RawRefs{}, fmt.Errorf("failed to open repository: %w", err)
	}

	iter, err := repo.References()
	if err != nil {
		return types.RawRefs{}, fmt.Errorf("failed to read references: %w", err)
	}

	var locals, remoteRefs []plumbing.ReferenceName
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		name := ref.Name()
		switch {
		case name.IsBranch():
			locals = append(locals, name)
		case name.IsRemote():
			remoteRefs = append(remoteRefs, name)
		}
		return nil
	})
	if err != nil {
		return types.RawRefs{}, fmt.Errorf("failed to iterate references: %w", err)
	}
	sortRefNames(locals)
	sortRefNames(remoteRefs)

	refs := types.RawRefs{Locals: make([]string, 0, len(locals))}
	for _, name := range locals {
		refs.Locals = append(refs.Locals, name.Short())
	}
	logger := log.FromContext(ctx)
	logger.Debugf("-> Found %d local branches.", len(refs.Locals))
	if l.LocalOnly {
		return refs, nil
	}

	remotes, err := repo.Remotes()
	if err != nil {
		return types.RawRefs{}, fmt.Errorf("failed to read remotes: %w", err)
	}
	for _, r := range remotes {
		refs.RemoteNames = append(refs.RemoteNames, r.Config().Name)
	}
	sort.Strings(refs.RemoteNames)

	for _, remote := range refs.RemoteNames {
		prefix := remoteRefsPrefix + remote + "/"
		count := 0
		for _, name := range remoteRefs {
			branch, ok := strings.CutPrefix(name.String(), prefix)
			if !ok || branch == "" {
				continue
			}
			refs.Remotes = append(refs.Remotes, remote+"/"+branch)
			count++
		}
		logger.Debugf("-> Found %d branches on remote %q.", count, remote)
	}

	return refs, nil
}

func sortRefNames(names []plumbing.ReferenceName) {
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
}
