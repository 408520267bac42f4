package gitcmd

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/bral/git-fuzzy-go/internal/log"
	"github.com/bral/git-fuzzy-go/internal/types"
)

// refname:short disambiguates against tags ("heads/dev" when a tag dev
// exists), so names are taken by stripping the two leading components
// instead: refs/heads/dev -> dev, refs/remotes/origin/dev -> origin/dev.
const (
	bareRefFormat    = "--format=%(refname:lstrip=2)"
	localRefsPrefix  = "refs/heads/"
	remoteRefsPrefix = "refs/remotes/"
)

// ListLocalBranches returns the names of all local branches in for-each-ref
// order.
func ListLocalBranches(ctx context.Context) ([]string, error) {
	output, err := RunGitCommand(ctx, "for-each-ref", bareRefFormat, localRefsPrefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list local branches: %w", err)
	}
	return splitLines(output), nil
}

// ListRemotes returns the configured remote names.
func ListRemotes(ctx context.Context) ([]string, error) {
	output, err := RunGitCommand(ctx, "remote")
	if err != nil {
		return nil, fmt.Errorf("failed to list remotes: %w", err)
	}
	return splitLines(output), nil
}

// ListRemoteBranches returns the remote-tracking branches of one remote as
// "<remote>/<branch>". The remote's symbolic HEAD shows up as
// "<remote>/HEAD" and is left for the caller to discard.
func ListRemoteBranches(ctx context.Context, remote string) ([]string, error) {
	if remote == "" {
		return nil, fmt.Errorf("remote name cannot be empty")
	}
	prefix := remoteRefsPrefix + remote + "/"
	output, err := RunGitCommand(ctx, "for-each-ref", bareRefFormat, prefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list branches of remote %q: %w", remote, err)
	}
	return splitLines(output), nil
}

// Lister lists refs with the git executable.
type Lister struct {
	LocalOnly bool // skip remotes entirely
}

// Refs returns local branches followed by the remote-tracking branches of
// every remote, remotes in `git remote` order.
func (l Lister) Refs(ctx context.Context) (types.RawRefs, error) {
	logger := log.FromContext(ctx)

	locals, err := ListLocalBranches(ctx)
	if err != nil {
		return types.RawRefs{}, err
	}
	logger.Debugf("-> Found %d local branches.", len(locals))

	refs := types.RawRefs{Locals: locals}
	if l.LocalOnly {
		return refs, nil
	}

	remotes, err := ListRemotes(ctx)
	if err != nil {
		return types.RawRefs{}, err
	}
	refs.RemoteNames = remotes

	for _, remote := range remotes {
		branches, err := ListRemoteBranches(ctx, remote)
		if err != nil {
			return types.RawRefs{}, err
		}
		logger.Debugf("-> Found %d branches on remote %q.", len(branches), remote)
		refs.Remotes = append(refs.Remotes, branches...)
	}

	return refs, nil
}

// IsInGitRepo checks if the current directory is within a Git working tree.
func IsInGitRepo(ctx context.Context) (bool, error) {
	args := []string{"rev-parse", "--is-inside-work-tree"}
	output, err := RunGitCommand(ctx, args...)
	if err != nil {
		// Outside a repository git exits non-zero; that is an answer, not a
		// failure. Anything else (git missing, killed) is returned.
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return false, nil
		}
		return false, err
	}
	// If the command succeeds, it outputs "true".
	return output == "true", nil
}

// InRepo satisfies the repository check the resolver runs first.
func (Lister) InRepo(ctx context.Context) (bool, error) {
	return IsInGitRepo(ctx)
}

func splitLines(output string) []string {
	output = strings.TrimSpace(output)
	if output == "" {
		return []string{}
	}
	lines := strings.Split(output, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}
