// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for gridsmith.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gridsmith-cli/internal/issue"
	"gridsmith-cli/internal/theme"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables verbose output
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string

	// logger is the shared structured logger. Debug level is enabled by --verbose.
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		Prefix:          "gridsmith",
	})
)

// newRootCommand builds the root command tree around the App.
func newRootCommand(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gridsmith",
		Short: "A crossword construction helper",
		Long: TitleStyle.Render("gridsmith") + SubtitleStyle.Render(" - A crossword construction helper") + `

gridsmith checks candidate theme entries against standard crossword
construction guidelines: entry count, per-entry letter counts, and
combined theme length, for standard 15x15 and mini 5x5 grids.

` + SubtitleStyle.Render("Examples:") + `
  gridsmith analyze "BREAK THE ICE" "BREAK A LEG" "BREAK THE BANK"
  gridsmith check "CROSSWORD PUZZLE"
  gridsmith check CAT --profile mini
  gridsmith wordplay "RUNNING LATE"
  gridsmith guidelines`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Apply verbose from config when the flag is not set.
			if !verbose {
				cfg := app.loadConfigOrDefaults(cmd.Context(), cfgFile)
				verbose = cfg.UI.Verbose
			}
			if verbose {
				logger.SetLevel(log.DebugLevel)
			}
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/gridsmith/config.toml)")

	rootCmd.AddCommand(newAnalyzeCommand(app))
	rootCmd.AddCommand(newCheckCommand(app))
	rootCmd.AddCommand(newGuidelinesCommand(app))
	rootCmd.AddCommand(newWordplayCommand(app))
	rootCmd.AddCommand(newConfigCommand(app))

	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once.
func Execute() {
	app := NewApp(Dependencies{})

	// Use fang.Execute for enhanced Cobra styling.
	// Pass version via fang.WithVersion() since fang overrides rootCmd.Version.
	if err := fang.Execute(
		context.Background(),
		newRootCommand(app),
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}

// resolveProfile maps the --profile flag (or, when empty, the configured
// default) to a fixed puzzle profile. Unknown selectors become an
// ActionableError carried by an ExitError.
func resolveProfile(ctx context.Context, app *App, flagValue string) (theme.Profile, error) {
	selector := flagValue
	if selector == "" {
		cfg := app.loadConfigOrDefaults(ctx, cfgFile)
		selector = cfg.DefaultProfile.String()
	}

	profile, err := theme.ProfileByName(selector)
	if err != nil {
		actionable := issue.NewErrorContext().
			WithOperation("select puzzle profile").
			WithResource(selector).
			WithSuggestion("Use --profile standard for 15x15 puzzles").
			WithSuggestion("Use --profile mini for 5x5 puzzles").
			Wrap(err).
			Build()
		return theme.Profile{}, &ExitError{Code: 2, Err: actionable}
	}

	logger.Debug("resolved puzzle profile", "profile", profile.Name,
		"letters", fmt.Sprintf("%d-%d", profile.MinLetters, profile.MaxLetters))

	return profile, nil
}
