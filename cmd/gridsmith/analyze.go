// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"gridsmith-cli/internal/issue"
	"gridsmith-cli/internal/theme"

	"github.com/spf13/cobra"
)

// newAnalyzeCommand creates the `gridsmith analyze` command.
func newAnalyzeCommand(app *App) *cobra.Command {
	var profileFlag string

	analyzeCmd := &cobra.Command{
		Use:   "analyze ENTRY...",
		Short: "Analyze theme entries against construction guidelines",
		Long: `Analyze a set of candidate theme entries.

Each entry is checked against the per-entry letter range of the chosen
profile, and the set as a whole is checked for entry count, combined
length, and length consistency. Letter counts ignore spaces, punctuation,
and digits.

Examples:
  gridsmith analyze "BREAK THE ICE" "BREAK A LEG" "BREAK THE BANK"
  gridsmith analyze CAT DOG BAT --profile mini`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, app, args, profileFlag)
		},
	}

	analyzeCmd.Flags().StringVarP(&profileFlag, "profile", "p", "", "puzzle profile: standard or mini (default from config)")

	return analyzeCmd
}

func runAnalyze(cmd *cobra.Command, app *App, entries []string, profileFlag string) error {
	stdout := cmd.OutOrStdout()

	profile, err := resolveProfile(cmd.Context(), app, profileFlag)
	if err != nil {
		return err
	}

	logger.Debug("analyzing theme entries", "count", len(entries), "profile", profile.Name)

	report, err := app.Themes.Analyze(entries, profile)
	if err != nil {
		cmd.SilenceUsage = true
		actionable := issue.NewErrorContext().
			WithOperation("analyze theme entries").
			WithSuggestion(`Provide at least one entry, e.g. gridsmith analyze "BREAK THE ICE"`).
			Wrap(err).
			Build()
		return &ExitError{Code: 1, Err: actionable}
	}

	logger.Debug("analysis complete", "all_good", allGood(report), "suggestions", len(report.Suggestions))

	fmt.Fprintln(stdout, renderThemeReport(report, profile))

	return nil
}

// allGood reports whether every verdict passed.
func allGood(report *theme.Report) bool {
	for _, v := range report.Verdicts {
		if v.Status != theme.StatusGood {
			return false
		}
	}
	return true
}
