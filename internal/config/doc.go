// Package config loads, normalizes, and validates topchart configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), resolves artifact paths against the data directory, reads TOML
// files, and honours environment overrides such as TOPCHART_SOURCE_URL.
//
// Always obtain settings through this package so downstream code receives
// absolute paths, canonical log formats, and clear validation errors.
package config
