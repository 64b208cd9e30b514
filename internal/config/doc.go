// Package config loads, normalizes, and validates sectionizer configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. The Config type centralizes every knob
// the CLI needs: the matching/clustering tuning, external tool locations, and
// log output settings.
//
// The matching tuning deliberately has no single canonical value; radius, gap
// and minimum duration are plain configuration, not constants.
package config
