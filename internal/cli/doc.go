// Package cli resolves the command line into a puzzle coordinate and input
// mode. It never exits the process itself: failures come back as ExitError
// values carrying the exit code the entry point should use.
package cli
