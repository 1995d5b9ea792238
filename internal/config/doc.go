// Package config handles configuration file parsing and validation for hashbox.
//
// This package reads TOML configuration files and provides strongly-typed
// structures for accessing configuration data. Running without a configuration
// file is supported: every command falls back to built-in defaults.
//
// # Configuration Structure
//
// The configuration file defines:
//   - General settings (default algorithm, manifest output format)
//   - API server settings (bind address, request body cap, subnet restriction)
//   - Index store settings (BadgerDB directory)
//   - Watch targets (paths whose digests are kept up to date)
//
// # Supported Features
//
//   - TOML format with automatic type conversion
//   - Validation with per-field error messages and item context
//   - Relative paths resolved against the configuration file directory
//   - Round-trip serialization for config upgrades
//
// # Example Usage
//
// Loading and validating a configuration file:
//
//	cfg, err := config.LoadConfig("/etc/hashbox/hashbox.conf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := cfg.ValidateConfig(); err != nil {
//	    log.Fatal(err)
//	}
//
// Running with defaults when no file is present:
//
//	cfg := config.Default()
//	fmt.Printf("Default algorithm: %s\n", cfg.General.DefaultAlgorithm)
//
// The package provides clear error messages for parse failures (with line
// and column positions) and for validation failures (with field paths).
package config
