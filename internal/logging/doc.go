// Package logging provides structured logging utilities for drivecopy.
//
// It installs the process-wide slog handler (colored terminal output via
// tint, plain text otherwise) and defines shared attribute helpers so log
// fields keep consistent names across the codebase.
package logging
