// Package cli parses command-line arguments, merges them with an optional
// selection profile, and handles process-level concerns like exit codes. It
// translates flags into the application's internal configuration.
package cli
