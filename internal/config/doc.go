// SPDX-License-Identifier: MPL-2.0

// Package config loads and validates gridsmith configuration.
//
// Configuration lives in a TOML file under the platform config directory
// (e.g. ~/.config/gridsmith/config.toml on Linux). Missing files are not an
// error; defaults apply. Flags set on the command line take precedence over
// file values.
package config
