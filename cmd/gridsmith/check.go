// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newCheckCommand creates the `gridsmith check` command.
func newCheckCommand(app *App) *cobra.Command {
	var profileFlag string

	checkCmd := &cobra.Command{
		Use:   "check ENTRY",
		Short: "Check if a single entry has an appropriate length",
		Long: `Check one candidate entry against the per-entry letter range of the
chosen profile. Letter counts ignore spaces, punctuation, and digits.

Examples:
  gridsmith check "CROSSWORD PUZZLE"
  gridsmith check CAT --profile mini`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := resolveProfile(cmd.Context(), app, profileFlag)
			if err != nil {
				return err
			}

			logger.Debug("checking single entry", "profile", profile.Name)

			verdict := app.Themes.CheckSingle(args[0], profile)
			fmt.Fprintln(cmd.OutOrStdout(), renderVerdictLine(verdict))

			return nil
		},
	}

	checkCmd.Flags().StringVarP(&profileFlag, "profile", "p", "", "puzzle profile: standard or mini (default from config)")

	return checkCmd
}
