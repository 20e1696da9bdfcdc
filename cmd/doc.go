// Package cmd implements the command-line interface for drivecopy.
//
// This package provides the following commands:
//   - copy: Replicate the configured batches of Drive folders into the
//     destination folder
//   - auth: Authorize drivecopy for a Google account
//   - version: Display version information
//
// The copy command is the default command when no subcommand is specified.
package cmd
