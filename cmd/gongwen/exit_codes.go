package main

import (
	"errors"
	"os"

	gongwen "github.com/hanchen-dev/go-gongwen"
	"github.com/hanchen-dev/go-gongwen/internal/config"
)

// Exit codes for the gongwen CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess  = 0 // Successful conversion
	ExitGeneral  = 1 // General/unexpected error
	ExitUsage    = 2 // Invalid flags, config, or validation
	ExitIO       = 3 // File not found, permission denied
	ExitDocument = 4 // DOCX assembly errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Document assembly errors (exit 4)
	if errors.Is(err, gongwen.ErrAssemble) {
		return ExitDocument
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrReadBodyFile) ||
		errors.Is(err, ErrWriteDocx) ||
		errors.Is(err, ErrNoInput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, gongwen.ErrEmptyInput) ||
		errors.Is(err, gongwen.ErrFrontMatter) ||
		errors.Is(err, gongwen.ErrSpecParse) ||
		errors.Is(err, gongwen.ErrInvalidLayout) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidWorkerCount) {
		return ExitUsage
	}

	return ExitGeneral
}
