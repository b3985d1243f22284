// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"strings"
	"testing"

	"gridsmith-cli/internal/config"
)

func TestWordplayCommand(t *testing.T) {
	app, stdout, _ := newTestApp(nil)

	err := runCommand(newWordplayCommand(app), stdout, "RUNNING LATE")
	if err != nil {
		t.Fatalf("wordplay returned error: %v", err)
	}

	out := stdout.String()
	if !strings.Contains(out, "RUNNING LATE") {
		t.Errorf("output missing the phrase:\n%s", out)
	}
	if !strings.Contains(out, "5. ") {
		t.Errorf("output missing the fifth numbered suggestion:\n%s", out)
	}
}

func TestWordplayCommandHonorsMaxSuggestions(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Wordplay.MaxSuggestions = 2
	app, stdout, _ := newTestApp(cfg)

	err := runCommand(newWordplayCommand(app), stdout, "WORD PLAY")
	if err != nil {
		t.Fatalf("wordplay returned error: %v", err)
	}

	out := stdout.String()
	if !strings.Contains(out, "2. ") {
		t.Errorf("output missing the second suggestion:\n%s", out)
	}
	if strings.Contains(out, "3. ") {
		t.Errorf("output exceeds the configured limit:\n%s", out)
	}
}
