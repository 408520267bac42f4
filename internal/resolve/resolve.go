// Package resolve turns a user query into a checkout: it lists branches,
// deduplicates them, matches the query and either checks out the single
// match, reports an ambiguity, or falls back to checking out a commit.
package resolve

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bral/git-fuzzy-go/internal/candidates"
	"github.com/bral/git-fuzzy-go/internal/gitcmd"
	"github.com/bral/git-fuzzy-go/internal/log"
	"github.com/bral/git-fuzzy-go/internal/match"
	"github.com/bral/git-fuzzy-go/internal/report"
	"github.com/bral/git-fuzzy-go/internal/types"
)

var (
	// ErrEmptyQuery is returned for empty or whitespace-only queries.
	// They are rejected before any git command runs.
	ErrEmptyQuery = errors.New("branch name or pattern cannot be empty")
	// ErrNotRepository is returned when the lister finds no repository.
	ErrNotRepository = errors.New("not in a git repository")
	// ErrAmbiguous matches every *AmbiguousError.
	ErrAmbiguous = errors.New("ambiguous branch name")
)

// AmbiguousError is returned when a query matches several branches. The
// report has already been written when it is returned.
type AmbiguousError struct {
	Query  string
	Result types.MatchResult
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("ambiguous branch name '%s' (%d matches)", e.Query, len(e.Result.Matches))
}

// Is lets errors.Is(err, ErrAmbiguous) succeed.
func (e *AmbiguousError) Is(target error) bool {
	return target == ErrAmbiguous
}

// RefLister supplies the raw branch names.
type RefLister interface {
	InRepo(ctx context.Context) (bool, error)
	Refs(ctx context.Context) (types.RawRefs, error)
}

// Dispatcher performs the checkout.
type Dispatcher interface {
	CheckoutBranch(ctx context.Context, name string) error
	CheckoutRemoteBranch(ctx context.Context, remote, name string) error
	CheckoutCommit(ctx context.Context, rev string) error
}

// State is a step of a resolution.
type State int

const (
	StateStart State = iota
	StateListed
	StateDeduplicated
	StateMatched
	StateResolved
	StateAmbiguous
	StateFallback
)

var stateNames = [...]string{
	StateStart:        "Start",
	StateListed:       "Listed",
	StateDeduplicated: "Deduplicated",
	StateMatched:      "Matched",
	StateResolved:     "Resolved",
	StateAmbiguous:    "Ambiguous",
	StateFallback:     "Fallback",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("State(%d)", int(s))
	}
	return stateNames[s]
}

// Outcome describes how far a resolution got.
type Outcome struct {
	Query  string
	State  State   // last state reached
	Trace  []State // every state visited, in order
	Result types.MatchResult
	Target string // what was (or would be) checked out; empty when ambiguous
}

func (o *Outcome) enter(ctx context.Context, s State) {
	o.State = s
	o.Trace = append(o.Trace, s)
	log.FromContext(ctx).Debugf("[%s]", s)
}

// Driver runs resolutions.
type Driver struct {
	Lister      RefLister
	Dispatcher  Dispatcher
	Out         io.Writer // fallback notice and dry-run output
	Err         io.Writer // ambiguity report
	Highlighter report.Highlighter
	DryRun      bool // print the checkout command instead of running it
}

// Run resolves query and acts on the result. A single match is checked out
// silently. No match prints a notice and checks out query as a commit.
// Several matches write a report to Err and return an *AmbiguousError
// without checking anything out. Lister and Dispatcher errors are returned
// wrapped, never retried.
func (d *Driver) Run(ctx context.Context, query string) (Outcome, error) {
	out := Outcome{Query: query}
	out.enter(ctx, StateStart)

	if strings.TrimSpace(query) == "" {
		return out, ErrEmptyQuery
	}

	inRepo, err := d.Lister.InRepo(ctx)
	if err != nil {
		return out, fmt.Errorf("failed to check for a git repository: %w", err)
	}
	if !inRepo {
		return out, ErrNotRepository
	}

	raw, err := d.Lister.Refs(ctx)
	if err != nil {
		return out, fmt.Errorf("failed to list branches: %w", err)
	}
	out.enter(ctx, StateListed)

	set := candidates.Build(raw.Locals, raw.Remotes, raw.RemoteNames)
	out.enter(ctx, StateDeduplicated)
	if logger := log.FromContext(ctx); logger.Verbose() {
		logger.Debugf("-> %d candidate branches: %s", set.Len(), strings.Join(set.Names(), ", "))
	}

	out.Result = match.Match(set, query)
	out.enter(ctx, StateMatched)
	log.FromContext(ctx).Debugf("-> %s (%d matches, tier %q).", out.Result.Kind, len(out.Result.Matches), out.Result.Tier)

	switch out.Result.Kind {
	case types.SingleMatch:
		single, _ := out.Result.Single()
		out.Target = single.Ref.Name
		out.enter(ctx, StateResolved)
		return out, d.checkoutBranch(ctx, single.Ref)

	case types.AmbiguousMatch:
		out.enter(ctx, StateAmbiguous)
		if err := report.Build(query, out.Result).Render(d.errWriter(), d.Highlighter); err != nil {
			return out, fmt.Errorf("failed to write ambiguity report: %w", err)
		}
		return out, &AmbiguousError{Query: query, Result: out.Result}

	default:
		out.Target = query
		out.enter(ctx, StateFallback)
		fmt.Fprintf(d.outWriter(), "No branches match '%s', trying as commit...\n", query)
		return out, d.checkoutCommit(ctx, query)
	}
}

// checkoutBranch switches to ref. A remote-only branch is created from the
// remote it was first seen on.
func (d *Driver) checkoutBranch(ctx context.Context, ref types.BranchRef) error {
	if ref.IsLocal() || ref.Remote == "" {
		if d.DryRun {
			return d.printDryRun(gitcmd.CheckoutArgs(ref.Name))
		}
		return d.Dispatcher.CheckoutBranch(ctx, ref.Name)
	}
	if d.DryRun {
		return d.printDryRun(gitcmd.TrackArgs(ref.Remote, ref.Name))
	}
	return d.Dispatcher.CheckoutRemoteBranch(ctx, ref.Remote, ref.Name)
}

func (d *Driver) checkoutCommit(ctx context.Context, rev string) error {
	if d.DryRun {
		return d.printDryRun(gitcmd.CheckoutArgs(rev))
	}
	return d.Dispatcher.CheckoutCommit(ctx, rev)
}

func (d *Driver) printDryRun(args []string) error {
	_, err := fmt.Fprintf(d.outWriter(), "[Dry Run] Would execute: %s\n", gitcmd.CommandString(args))
	return err
}

func (d *Driver) outWriter() io.Writer {
	if d.Out == nil {
		return io.Discard
	}
	return d.Out
}

func (d *Driver) errWriter() io.Writer {
	if d.Err == nil {
		return io.Discard
	}
	return d.Err
}
