package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/bral/git-fuzzy-go/internal/config"
	"github.com/bral/git-fuzzy-go/internal/gitcmd"
	"github.com/bral/git-fuzzy-go/internal/gogit"
	"github.com/bral/git-fuzzy-go/internal/log"
	"github.com/bral/git-fuzzy-go/internal/report"
	"github.com/bral/git-fuzzy-go/internal/resolve"
	"github.com/bral/git-fuzzy-go/internal/version"
)

// Global config variable to be used by the command logic
var appConfig config.Config

// newLister picks the ref lister for the configured backend.
func newLister(cfg config.Config) resolve.RefLister {
	if cfg.Backend == config.BackendGoGit {
		return &gogit.Lister{LocalOnly: cfg.LocalOnly}
	}
	return gitcmd.Lister{LocalOnly: cfg.LocalOnly}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "git-fuzzy <branch-or-pattern>",
		Version: version.String(),
		Short:   "Fuzzy git branch checkout",
		Long: `git-fuzzy checks out a branch from a partial name.

An exact branch name wins. Otherwise every local branch, and every
remote-tracking branch without a local counterpart, whose name contains
the pattern is a match. A single match is checked out; several matches
are listed and nothing is checked out; no match at all is tried as a
commit.`,
		Example:       "  git fuzzy dev        # checks out 'develop'\n  git fuzzy 620a729    # no branch matches, checks out the commit",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			appConfig = config.DefaultConfig()
			appConfig.ApplyEnv(os.LookupEnv)

			// Apply command-line overrides AFTER the environment
			flags := cmd.Flags()
			appConfig.Debug, _ = flags.GetBool("debug")
			appConfig.DryRun, _ = flags.GetBool("dry-run")
			appConfig.LocalOnly, _ = flags.GetBool("local")
			appConfig.Dir, _ = flags.GetString("directory")
			if flags.Changed("color") {
				color, _ := flags.GetString("color")
				appConfig.Color = config.ColorMode(color)
			}
			if flags.Changed("backend") {
				backend, _ := flags.GetString("backend")
				appConfig.Backend = config.Backend(backend)
			}

			if err := appConfig.Validate(); err != nil {
				return err
			}

			if appConfig.Dir != "" {
				if err := os.Chdir(appConfig.Dir); err != nil {
					return fmt.Errorf("cannot change to %q: %w", appConfig.Dir, err)
				}
			}

			logger := log.New(os.Stderr, appConfig.Debug)
			cmd.SetContext(log.WithLogger(cmd.Context(), logger))
			logger.Debugf("Configuration: backend=%s color=%s local=%v dry-run=%v",
				appConfig.Backend, appConfig.Color, appConfig.LocalOnly, appConfig.DryRun)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			driver := &resolve.Driver{
				Lister:      newLister(appConfig),
				Dispatcher:  gitcmd.NewDispatcher(),
				Out:         os.Stdout,
				Err:         os.Stderr,
				Highlighter: report.ForFile(os.Stderr, appConfig.Color, appConfig.NoColor),
				DryRun:      appConfig.DryRun,
			}
			_, err := driver.Run(cmd.Context(), args[0])
			return err
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "Enable debug logging.")
	cmd.PersistentFlags().Bool("dry-run", false, "Resolve the pattern and print the checkout command without running it.")
	cmd.PersistentFlags().Bool("local", false, "Only consider local branches.")
	cmd.PersistentFlags().String("color", string(config.ColorAuto), "Highlight matches in ambiguity reports: auto, always or never.")
	cmd.PersistentFlags().String("backend", string(config.BackendGit), "How branches are listed: git (run the git executable) or go-git.")
	cmd.PersistentFlags().StringP("directory", "C", "", "Run as if git-fuzzy was started in this directory.")
	return cmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err == nil {
		return
	}
	// The ambiguity report has already been printed.
	if !errors.Is(err, resolve.ErrAmbiguous) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(1)
}
