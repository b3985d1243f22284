// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"io"
	"os"

	"gridsmith-cli/internal/config"
	"gridsmith-cli/internal/theme"
	"gridsmith-cli/internal/wordplay"
)

type (
	// App wires CLI services and shared dependencies. It is the composition root
	// for the CLI layer: all Cobra command handlers receive an App reference and
	// delegate through its service interfaces.
	App struct {
		Config   ConfigProvider
		Themes   ThemeService
		Wordplay wordplay.Suggester
		stdout   io.Writer
		stderr   io.Writer
	}

	// Dependencies defines the injection points for building an App. Nil fields
	// are replaced with production defaults by NewApp. Tests can supply mock
	// implementations to isolate specific service behavior.
	Dependencies struct {
		Config   ConfigProvider
		Themes   ThemeService
		Wordplay wordplay.Suggester
		Stdout   io.Writer
		Stderr   io.Writer
	}

	// ThemeService runs theme entry validation. Implementations must not write
	// to stdout/stderr; results are returned as structured data for the CLI
	// layer to render.
	ThemeService interface {
		Analyze(entries []string, p theme.Profile) (*theme.Report, error)
		CheckSingle(entry string, p theme.Profile) theme.Verdict
	}

	// ConfigProvider loads configuration using explicit options.
	// This abstraction enables testing with custom config sources.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Config, error)
	}

	// themeService is the production ThemeService backed by internal/theme.
	themeService struct{}
)

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) *App {
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	if deps.Themes == nil {
		deps.Themes = &themeService{}
	}
	if deps.Wordplay == nil {
		deps.Wordplay = wordplay.NewStaticSuggester()
	}

	return &App{
		Config:   deps.Config,
		Themes:   deps.Themes,
		Wordplay: deps.Wordplay,
		stdout:   deps.Stdout,
		stderr:   deps.Stderr,
	}
}

// Analyze delegates to the pure validator.
func (s *themeService) Analyze(entries []string, p theme.Profile) (*theme.Report, error) {
	return theme.Analyze(entries, p)
}

// CheckSingle delegates to the pure validator.
func (s *themeService) CheckSingle(entry string, p theme.Profile) theme.Verdict {
	return theme.CheckSingle(entry, p)
}

// loadConfigOrDefaults loads configuration, falling back to defaults with a
// styled warning on stderr so commands stay operational on a broken config.
func (a *App) loadConfigOrDefaults(ctx context.Context, configPath string) *config.Config {
	cfg, err := a.Config.Load(ctx, config.LoadOptions{ConfigFilePath: configPath})
	if err != nil {
		logger.Debug("config load failed, using defaults", "err", err)
		_, _ = io.WriteString(a.stderr, WarningStyle.Render("warning: ")+formatErrorForDisplay(err, verbose)+"\n")
		return config.DefaultConfig()
	}
	return cfg
}
