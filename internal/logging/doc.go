// Package logging assembles the structured slog loggers used across the
// sectionizer.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and defines the standardized field keys so extraction and
// matching code tag log lines consistently. A no-op logger is provided for
// tests and wiring code that cannot fail.
//
// Loggers are always passed explicitly; nothing in this repository logs
// through package-global state, and a missing logger never changes computed
// results.
package logging
