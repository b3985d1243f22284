// SPDX-License-Identifier: MPL-2.0

package config

import "context"

// LoadOptions selects where configuration is read from. The zero value reads
// config.toml from the platform config directory and silently falls back to
// built-in defaults when no file exists.
type LoadOptions struct {
	// ConfigFilePath carries the --config flag value. When set, that file is
	// read exclusively and must exist; there is no fallback.
	ConfigFilePath string
	// ConfigDirPath replaces the platform config directory lookup. Tests use
	// this to point loading at a temp directory without touching HOME.
	ConfigDirPath string
}

// Provider loads gridsmith configuration.
type Provider interface {
	Load(ctx context.Context, opts LoadOptions) (*Config, error)
}

// tomlProvider reads the TOML config file from disk on every call. The file
// is a handful of keys and each command loads it at most twice per
// invocation, so there is no caching layer.
type tomlProvider struct{}

// NewProvider creates the production file-backed provider.
func NewProvider() Provider {
	return &tomlProvider{}
}

// Load resolves the config source per opts, merges it over the defaults, and
// validates the result.
func (p *tomlProvider) Load(ctx context.Context, opts LoadOptions) (*Config, error) {
	cfg, _, err := loadWithOptions(ctx, opts)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
