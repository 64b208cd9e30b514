// Command sectionizer compares two video files and prints the time sections
// where they show matching content.
//
// Usage:
//
//	sectionizer <file_a> <file_b>
//
// Subcommands cover dependency checks (deps) and configuration management
// (config init, config validate). Tuning lives in
// ~/.config/sectionizer/config.toml; see `sectionizer config init`.
package main
