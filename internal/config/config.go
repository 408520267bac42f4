// Package config holds the settings for a single git-fuzzy invocation.
// Settings come from command-line flags and a few environment variables;
// there is no configuration file.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidConfig is wrapped by every error returned from Validate.
var ErrInvalidConfig = errors.New("invalid configuration")

// ColorMode controls when ambiguity reports are highlighted.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Backend selects how branch names are listed.
type Backend string

const (
	// BackendGit runs the git executable.
	BackendGit Backend = "git"
	// BackendGoGit reads refs directly with go-git.
	BackendGoGit Backend = "go-git"
)

const (
	envNoColor = "NO_COLOR"
	envBackend = "GIT_FUZZY_BACKEND"
	envColor   = "GIT_FUZZY_COLOR"
)

// Config holds the application settings.
type Config struct {
	Debug     bool
	DryRun    bool
	LocalOnly bool // ignore remote-tracking branches
	Color     ColorMode
	Backend   Backend
	Dir       string // run as if started in Dir; empty means the working directory

	// NoColor is set when the NO_COLOR environment variable is present.
	NoColor bool
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Color:   ColorAuto,
		Backend: BackendGit,
	}
}

// ApplyEnv overrides settings from the environment. lookup has the
// signature of os.LookupEnv. Flags are applied after this, so an explicit
// flag always wins.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if _, ok := lookup(envNoColor); ok {
		c.NoColor = true
	}
	if v, ok := lookup(envBackend); ok && strings.TrimSpace(v) != "" {
		c.Backend = Backend(strings.TrimSpace(v))
	}
	if v, ok := lookup(envColor); ok && strings.TrimSpace(v) != "" {
		c.Color = ColorMode(strings.ToLower(strings.TrimSpace(v)))
	}
}

// Validate reports settings that cannot be used.
func (c Config) Validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%w: color must be one of auto, always, never (got %q)", ErrInvalidConfig, c.Color)
	}
	switch c.Backend {
	case BackendGit, BackendGoGit:
	default:
		return fmt.Errorf("%w: backend must be git or go-git (got %q)", ErrInvalidConfig, c.Backend)
	}
	return nil
}
