// Package report renders the disambiguation report shown when a query
// matches more than one branch.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/bral/git-fuzzy-go/internal/types"
)

// Line is one candidate in the report.
type Line struct {
	Ref  types.BranchRef
	Span types.Span
}

// Parts splits the branch name around the matched span. A span outside the
// name yields the whole name as before.
func (l Line) Parts() (before, matched, after string) {
	name := l.Ref.Name
	if l.Span.Start < 0 || l.Span.Len <= 0 || l.Span.End() > len(name) {
		return name, "", ""
	}
	return name[:l.Span.Start], name[l.Span.Start:l.Span.End()], name[l.Span.End():]
}

// Report is the structured form of an ambiguity report.
type Report struct {
	Query string
	Lines []Line
}

// Build turns a match result into a report, one line per match in result
// order.
func Build(query string, result types.MatchResult) Report {
	lines := make([]Line, 0, len(result.Matches))
	for _, m := range result.Matches {
		lines = append(lines, Line{Ref: m.Ref, Span: m.Span})
	}
	return Report{Query: query, Lines: lines}
}

// Summary is the first line of the report.
func (r Report) Summary() string {
	return fmt.Sprintf("Ambiguous branch name '%s'. Multiple matches:", r.Query)
}

// Render writes the report to w, passing each matched span through hl.
func (r Report) Render(w io.Writer, hl Highlighter) error {
	if hl == nil {
		hl = PlainHighlighter{}
	}

	var b strings.Builder
	b.WriteString(r.Summary())
	b.WriteByte('\n')
	for _, line := range r.Lines {
		before, matched, after := line.Parts()
		b.WriteString("  ")
		b.WriteString(before)
		b.WriteString(hl.Match(matched))
		b.WriteString(after)
		if !line.Ref.IsLocal() && line.Ref.Remote != "" {
			b.WriteString(hl.Muted(fmt.Sprintf(" (%s)", line.Ref.Remote)))
		}
		b.WriteByte('\n')
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// String renders the report without highlighting.
func (r Report) String() string {
	var b strings.Builder
	_ = r.Render(&b, PlainHighlighter{})
	return b.String()
}
