package main

import (
	"context"
	"errors"
	"os"

	web2pdf "github.com/alnah/go-web2pdf"
	"github.com/alnah/go-web2pdf/internal/config"
)

// Exit codes for web2pdf CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess    = 0 // Successful conversion
	ExitGeneral    = 1 // General/unexpected error
	ExitUsage      = 2 // Invalid flags, config, or validation
	ExitIO         = 3 // Output not writable, directory missing
	ExitBrowser    = 4 // Browser launch/connect errors
	ExitNavigation = 5 // Page navigation failures
	ExitTimeout    = 6 // Page did not settle in time
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Timeout errors (exit 6)
	if errors.Is(err, web2pdf.ErrPageTimeout) ||
		errors.Is(err, context.DeadlineExceeded) {
		return ExitTimeout
	}

	// Navigation errors (exit 5)
	if errors.Is(err, web2pdf.ErrNavigation) {
		return ExitNavigation
	}

	// Browser/environment errors (exit 4)
	if errors.Is(err, web2pdf.ErrBrowserConnect) ||
		errors.Is(err, web2pdf.ErrPageCreate) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, ErrWritePDF) ||
		errors.Is(err, ErrOutputDir) ||
		errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrNoURL) ||
		errors.Is(err, ErrNoOutput) ||
		errors.Is(err, ErrInvalidTimeout) ||
		errors.Is(err, web2pdf.ErrEmptyURL) ||
		errors.Is(err, web2pdf.ErrInvalidURL) ||
		errors.Is(err, web2pdf.ErrInvalidPageFormat) ||
		errors.Is(err, web2pdf.ErrInvalidScale) ||
		errors.Is(err, web2pdf.ErrInvalidMargin) ||
		errors.Is(err, web2pdf.ErrInvalidViewport) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, ErrUnsupportedShell) {
		return ExitUsage
	}

	return ExitGeneral
}
