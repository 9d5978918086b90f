// Package config loads and validates the slate host configuration from a
// TOML file, applying repository defaults for anything unset.
package config
