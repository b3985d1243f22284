// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
)

const (
	// ProfileStandard selects the standard 15x15 guidelines by default.
	// Defined locally to avoid coupling config to internal/theme;
	// the CLI layer casts to theme.ProfileName at the boundary.
	ProfileStandard ProfileSelector = "standard"
	// ProfileMini selects the mini 5x5 guidelines by default.
	ProfileMini ProfileSelector = "mini"

	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"
)

var (
	// ErrInvalidProfileSelector is returned when a ProfileSelector value is not recognized.
	ErrInvalidProfileSelector = errors.New("invalid default profile")
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidMaxSuggestions is returned when wordplay.max_suggestions is negative.
	ErrInvalidMaxSuggestions = errors.New("invalid max suggestions")
)

type (
	// ProfileSelector names the puzzle profile to use when --profile is not given.
	ProfileSelector string

	// ColorScheme controls styled output rendering.
	ColorScheme string

	// UIConfig holds display-related settings.
	UIConfig struct {
		ColorScheme ColorScheme `mapstructure:"color_scheme" toml:"color_scheme"`
		Verbose     bool        `mapstructure:"verbose" toml:"verbose"`
	}

	// WordplayConfig holds wordplay suggestion settings.
	WordplayConfig struct {
		// MaxSuggestions caps the number of suggestions printed; 0 means all.
		MaxSuggestions int `mapstructure:"max_suggestions" toml:"max_suggestions"`
	}

	// Config is the root configuration structure.
	Config struct {
		DefaultProfile ProfileSelector `mapstructure:"default_profile" toml:"default_profile"`
		UI             UIConfig        `mapstructure:"ui" toml:"ui"`
		Wordplay       WordplayConfig  `mapstructure:"wordplay" toml:"wordplay"`
	}
)

// IsValid reports whether s is a recognized profile selector.
func (s ProfileSelector) IsValid() error {
	switch s {
	case ProfileStandard, ProfileMini:
		return nil
	}
	return fmt.Errorf("%w: %q (expected %q or %q)", ErrInvalidProfileSelector, string(s), ProfileStandard, ProfileMini)
}

// String returns the selector as a string.
func (s ProfileSelector) String() string {
	return string(s)
}

// IsValid reports whether c is a recognized color scheme.
func (c ColorScheme) IsValid() error {
	switch c {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return nil
	}
	return fmt.Errorf("%w: %q (expected %q, %q, or %q)", ErrInvalidColorScheme, string(c), ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight)
}

// String returns the scheme as a string.
func (c ColorScheme) String() string {
	return string(c)
}

// Validate checks every configuration value against its closed set.
func (c *Config) Validate() error {
	if err := c.DefaultProfile.IsValid(); err != nil {
		return err
	}
	if err := c.UI.ColorScheme.IsValid(); err != nil {
		return err
	}
	if c.Wordplay.MaxSuggestions < 0 {
		return fmt.Errorf("%w: %d (must be >= 0)", ErrInvalidMaxSuggestions, c.Wordplay.MaxSuggestions)
	}
	return nil
}

// DefaultConfig returns the built-in defaults used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		DefaultProfile: ProfileStandard,
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
			Verbose:     false,
		},
		Wordplay: WordplayConfig{
			MaxSuggestions: 0,
		},
	}
}
