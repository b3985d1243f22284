// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"testing"

	"gridsmith-cli/internal/config"

	"github.com/charmbracelet/log"
)

// resetRootState restores the package-level flag and logger state that root
// command runs mutate. Tests touching newRootCommand must not run in parallel.
func resetRootState(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		verbose = false
		cfgFile = ""
		logger.SetLevel(log.InfoLevel)
	})
}

func TestRootCommandAppliesConfigVerbose(t *testing.T) {
	resetRootState(t)

	cfg := config.DefaultConfig()
	cfg.UI.Verbose = true
	app, stdout, _ := newTestApp(cfg)

	root := newRootCommand(app)
	if err := runCommand(root, stdout, "check", "CAT", "--profile", "mini"); err != nil {
		t.Fatalf("root command returned error: %v", err)
	}

	if !verbose {
		t.Error("verbose = false, want it raised from config")
	}
	if logger.GetLevel() != log.DebugLevel {
		t.Errorf("logger level = %v, want %v", logger.GetLevel(), log.DebugLevel)
	}
}

func TestRootCommandVerboseFlagWinsOverConfig(t *testing.T) {
	resetRootState(t)

	cfg := config.DefaultConfig()
	cfg.UI.Verbose = false
	app, stdout, _ := newTestApp(cfg)

	root := newRootCommand(app)
	if err := runCommand(root, stdout, "check", "CAT", "--profile", "mini", "--verbose"); err != nil {
		t.Fatalf("root command returned error: %v", err)
	}

	if logger.GetLevel() != log.DebugLevel {
		t.Errorf("logger level = %v, want %v from the flag", logger.GetLevel(), log.DebugLevel)
	}
}

func TestRootCommandDefaultLevelStaysInfo(t *testing.T) {
	resetRootState(t)

	app, stdout, _ := newTestApp(nil)

	root := newRootCommand(app)
	if err := runCommand(root, stdout, "check", "CAT", "--profile", "mini"); err != nil {
		t.Fatalf("root command returned error: %v", err)
	}

	if logger.GetLevel() == log.DebugLevel {
		t.Error("logger level raised to debug without --verbose or config")
	}
}
