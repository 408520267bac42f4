// Package gitcmd provides functions for interacting with the git command-line tool.
package gitcmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrCheckoutFailed wraps every error returned by Dispatcher.
var ErrCheckoutFailed = errors.New("git checkout failed")

// CheckoutArgs returns the git arguments used to check out rev. The
// trailing "--" keeps git from treating rev as a path and restoring files
// from the index.
func CheckoutArgs(rev string) []string {
	return []string{"checkout", rev, "--"}
}

// TrackArgs returns the git arguments that create a local branch name
// tracking remote/name and switch to it. Naming the remote avoids git's
// refusal when the branch exists on more than one remote.
func TrackArgs(remote, name string) []string {
	return []string{"checkout", "--track", remote + "/" + name, "--"}
}

// CommandString renders a git invocation for display.
func CommandString(args []string) string {
	return "git " + strings.Join(args, " ")
}

// Dispatcher performs checkouts with git's own output passed through.
type Dispatcher struct {
	Stdout io.Writer
	Stderr io.Writer
}

// NewDispatcher returns a Dispatcher writing to the process's stdout and stderr.
func NewDispatcher() Dispatcher {
	return Dispatcher{Stdout: os.Stdout, Stderr: os.Stderr}
}

// CheckoutBranch checks out the named local branch.
func (d Dispatcher) CheckoutBranch(ctx context.Context, name string) error {
	if err := d.run(ctx, CheckoutArgs(name)); err != nil {
		return fmt.Errorf("%w for branch %s: %w", ErrCheckoutFailed, name, err)
	}
	return nil
}

// CheckoutRemoteBranch creates the local branch name from remote/name and
// checks it out.
func (d Dispatcher) CheckoutRemoteBranch(ctx context.Context, remote, name string) error {
	if err := d.run(ctx, TrackArgs(remote, name)); err != nil {
		return fmt.Errorf("%w for branch %s/%s: %w", ErrCheckoutFailed, remote, name, err)
	}
	return nil
}

// CheckoutCommit checks out rev, usually leaving HEAD detached. Whether rev
// names a commit at all is for git to decide.
func (d Dispatcher) CheckoutCommit(ctx context.Context, rev string) error {
	if err := d.run(ctx, CheckoutArgs(rev)); err != nil {
		return fmt.Errorf("%w for commit %s: %w", ErrCheckoutFailed, rev, err)
	}
	return nil
}

func (d Dispatcher) run(ctx context.Context, args []string) error {
	stdout, stderr := d.Stdout, d.Stderr
	if stdout == nil {
		stdout = io.Discard
	}
	if stderr == nil {
		stderr = io.Discard
	}
	return StreamGitCommand(ctx, stdout, stderr, args...)
}
