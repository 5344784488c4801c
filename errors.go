package web2pdf

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyURL       = errors.New("source URL cannot be empty")
	ErrInvalidURL     = errors.New("invalid source URL")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrNavigation     = errors.New("failed to navigate to page")
	ErrPageTimeout    = errors.New("page did not settle before timeout")
	ErrPDFGeneration  = errors.New("PDF generation failed")

	// Page settings validation errors.
	ErrInvalidPageFormat = errors.New("invalid page format")
	ErrInvalidScale      = errors.New("invalid scale")
	ErrInvalidMargin     = errors.New("invalid margin")

	// Viewport validation errors.
	ErrInvalidViewport = errors.New("invalid viewport")
)
