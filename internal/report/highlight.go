package report

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/bral/git-fuzzy-go/internal/config"
)

// Highlighter decorates parts of a report line.
type Highlighter interface {
	// Match decorates the part of a branch name that matched the query.
	Match(s string) string
	// Muted decorates secondary information such as the remote name.
	Muted(s string) string
}

// PlainHighlighter leaves text unchanged.
type PlainHighlighter struct{}

func (PlainHighlighter) Match(s string) string { return s }
func (PlainHighlighter) Muted(s string) string { return s }

// StyleHighlighter highlights with lipgloss styles bound to one renderer.
type StyleHighlighter struct {
	plain bool
	match lipgloss.Style
	muted lipgloss.Style
}

// NewStyleHighlighter returns a highlighter rendering for w with the given
// colour profile. termenv.Ascii disables highlighting entirely.
func NewStyleHighlighter(w io.Writer, profile termenv.Profile) *StyleHighlighter {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(profile)
	return &StyleHighlighter{
		plain: profile == termenv.Ascii,
		match: r.NewStyle().Foreground(lipgloss.Color("2")).Bold(true), // green, as git prints current branches
		muted: r.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

func (h *StyleHighlighter) Match(s string) string {
	if h.plain || s == "" {
		return s
	}
	return h.match.Render(s)
}

func (h *StyleHighlighter) Muted(s string) string {
	if h.plain || s == "" {
		return s
	}
	return h.muted.Render(s)
}

// Profile picks the colour profile for f under mode. Auto mode colours only
// terminals and honours noColor (the NO_COLOR convention).
func Profile(mode config.ColorMode, f *os.File, noColor bool) termenv.Profile {
	switch mode {
	case config.ColorAlways:
		return termenv.ANSI256
	case config.ColorNever:
		return termenv.Ascii
	}
	if noColor || f == nil {
		return termenv.Ascii
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return termenv.Ascii
	}
	return termenv.NewOutput(f).EnvColorProfile()
}

// ForFile builds the highlighter used for reports written to f.
func ForFile(f *os.File, mode config.ColorMode, noColor bool) Highlighter {
	return NewStyleHighlighter(f, Profile(mode, f, noColor))
}
