// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newWordplayCommand creates the `gridsmith wordplay` command.
func newWordplayCommand(app *App) *cobra.Command {
	wordplayCmd := &cobra.Command{
		Use:   "wordplay PHRASE",
		Short: "Get wordplay suggestions for a phrase",
		Long: `Suggest wordplay transformations for a base phrase, useful as theme seeds.

Examples:
  gridsmith wordplay "RUNNING LATE"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stdout := cmd.OutOrStdout()
			phrase := args[0]

			suggestions := app.Wordplay.Suggest(phrase)

			cfg := app.loadConfigOrDefaults(cmd.Context(), cfgFile)
			if limit := cfg.Wordplay.MaxSuggestions; limit > 0 && len(suggestions) > limit {
				suggestions = suggestions[:limit]
			}

			logger.Debug("suggesting wordplay", "phrase", phrase, "count", len(suggestions))

			fmt.Fprintf(stdout, "%s %s\n", TitleStyle.Render("Wordplay suggestions for:"), EntryStyle.Render(phrase))
			for i, suggestion := range suggestions {
				fmt.Fprintf(stdout, "%d. %s\n", i+1, suggestion)
			}

			return nil
		},
	}

	return wordplayCmd
}
