// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"gridsmith-cli/internal/config"
	"gridsmith-cli/internal/theme"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"github.com/spf13/cobra"
)

// newGuidelinesCommand creates the `gridsmith guidelines` command.
func newGuidelinesCommand(app *App) *cobra.Command {
	var profileFlag string

	guidelinesCmd := &cobra.Command{
		Use:   "guidelines",
		Short: "Display crossword construction guidelines",
		Long: `Display the numeric construction guidelines for a puzzle profile.

Examples:
  gridsmith guidelines
  gridsmith guidelines --profile mini`,
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := resolveProfile(cmd.Context(), app, profileFlag)
			if err != nil {
				return err
			}

			cfg := app.loadConfigOrDefaults(cmd.Context(), cfgFile)

			rendered, err := renderGuidelines(profile, cfg.UI.ColorScheme)
			if err != nil {
				cmd.SilenceUsage = true
				return fmt.Errorf("failed to render guidelines: %w", err)
			}

			fmt.Fprint(cmd.OutOrStdout(), rendered)
			return nil
		},
	}

	guidelinesCmd.Flags().StringVarP(&profileFlag, "profile", "p", "", "puzzle profile: standard or mini (default from config)")

	return guidelinesCmd
}

// guidelinesMarkdown builds the static guideline text for a profile.
func guidelinesMarkdown(p theme.Profile) string {
	md := fmt.Sprintf(`# Crossword Construction Guidelines

## %dx%d (%s) puzzles

- Theme entries: %d-%d entries
- Entry length: %d-%d letters each
`, p.GridSize, p.GridSize, p.Name, p.MinEntries, p.MaxEntries, p.MinLetters, p.MaxLetters)

	if p.IdealTotalMax > 0 {
		md += fmt.Sprintf("- Total theme length: %d-%d letters combined\n", p.IdealTotalMin, p.IdealTotalMax)
	}
	md += fmt.Sprintf("- Expected word count: about %d words\n", p.ExpectedWordCount)

	md += `
## General rules

- All entries should follow the same theme logic
- Theme entries should be symmetrically placed
- Prefer equal-length entries for symmetry
- Minimum 3 letters per word
- All white squares must be checked (crossed)
`
	return md
}

// glamourStyleOption maps the configured color scheme to a glamour style.
// ColorSchemeAuto defers to glamour's terminal background detection.
func glamourStyleOption(scheme config.ColorScheme) glamour.TermRendererOption {
	switch scheme {
	case config.ColorSchemeDark:
		return glamour.WithStandardStyle(styles.DarkStyle)
	case config.ColorSchemeLight:
		return glamour.WithStandardStyle(styles.LightStyle)
	default:
		return glamour.WithAutoStyle()
	}
}

// renderGuidelines renders the guideline markdown for the terminal.
func renderGuidelines(p theme.Profile, scheme config.ColorScheme) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamourStyleOption(scheme),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return "", err
	}

	return renderer.Render(guidelinesMarkdown(p))
}
