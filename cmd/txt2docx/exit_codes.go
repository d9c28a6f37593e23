package main

import (
	"errors"
	"os"

	"github.com/alnah/go-txt2docx"
	"github.com/alnah/go-txt2docx/internal/config"
	"github.com/alnah/go-txt2docx/internal/configfmt"
	"github.com/alnah/go-txt2docx/internal/fileutil"
)

// Exit codes for txt2docx CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error, document generation
	ExitUsage   = 2 // Invalid flags, config, or layout
	ExitIO      = 3 // File not found, permission denied
	ExitFont    = 4 // Font could not be applied
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Font errors (exit 4)
	if errors.Is(err, txt2docx.ErrFontResource) {
		return ExitFont
	}

	// I/O errors (exit 3)
	if errors.Is(err, txt2docx.ErrIO) ||
		errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrNoInput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, configfmt.ErrUnsupportedFormat) ||
		errors.Is(err, txt2docx.ErrInvalidLayout) ||
		errors.Is(err, fileutil.ErrNoExtension) ||
		errors.Is(err, fileutil.ErrOutputIsInput) {
		return ExitUsage
	}

	return ExitGeneral
}
