// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strings"

	"gridsmith-cli/internal/theme"
)

// renderThemeReport renders a Report as a bordered card: banner header,
// summary line, numbered per-entry verdicts with pass/fail glyphs, and a
// bulleted suggestions section.
func renderThemeReport(report *theme.Report, profile theme.Profile) string {
	var sb strings.Builder

	sb.WriteString(reportBannerStyle.Render("THEME ANALYSIS"))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("%s %s  %s %d  %s %d letters\n",
		reportLabelStyle.Render("Profile:"), string(profile.Name),
		reportLabelStyle.Render("Entries:"), report.EntryCount,
		reportLabelStyle.Render("Total:"), report.TotalLetters))
	sb.WriteString("\n")

	for i, verdict := range report.Verdicts {
		icon := goodIcon
		if verdict.Status != theme.StatusGood {
			icon = badIcon
		}
		sb.WriteString(fmt.Sprintf("%d. %s %s\n", i+1, icon, EntryStyle.Render(verdict.Entry.Raw)))
		sb.WriteString(fmt.Sprintf("   %s\n", SubtitleStyle.Render(verdict.Message)))
	}

	if len(report.Suggestions) > 0 {
		sb.WriteString("\n")
		sb.WriteString(reportLabelStyle.Render("Suggestions:"))
		sb.WriteString("\n")
		for _, suggestion := range report.Suggestions {
			sb.WriteString(fmt.Sprintf("  %s %s\n", bulletIcon, suggestion))
		}
	}

	return reportBorderStyle.Render(strings.TrimRight(sb.String(), "\n"))
}

// renderVerdictLine renders a single-entry check as one line.
func renderVerdictLine(verdict theme.Verdict) string {
	icon := goodIcon
	if verdict.Status != theme.StatusGood {
		icon = badIcon
	}
	return fmt.Sprintf("%s %s: %s", icon, EntryStyle.Render(verdict.Entry.Raw), verdict.Message)
}
