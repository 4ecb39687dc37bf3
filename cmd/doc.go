// Package cmd implements the command-line interface for naturaltime.
//
// This package provides the following commands:
//   - parse: Resolve a natural language expression to a single instant
//   - range: Resolve a week range phrase or a start/end expression pair
//   - recur: Parse a recurrence phrase and render it as an RRULE
//   - slots: Find available meeting slots within a resolved window
//   - version: Display version information
//
// All commands share the --timezone and --base flags; --base pins the
// reference instant for relative expressions, which makes output
// reproducible in scripts and tests.
package cmd
