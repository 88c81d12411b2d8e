package main

import (
	"errors"
	"os"

	litweave "github.com/alnah/go-litweave"
)

// Exit codes for the litweave CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, 3=I/O.
const (
	ExitSuccess = 0 // Successful run
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or unresolvable language
	ExitIO      = 3 // File not found, permission denied
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must wrap with
// fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) {
		return ExitIO
	}

	// Usage/config errors (exit 2)
	if errors.Is(err, litweave.ErrNoSources) ||
		errors.Is(err, litweave.ErrUnknownLanguage) ||
		errors.Is(err, litweave.ErrConfigNotFound) ||
		errors.Is(err, litweave.ErrConfigParse) {
		return ExitUsage
	}

	return ExitGeneral
}
