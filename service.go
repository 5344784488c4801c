package web2pdf

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// Service drives a headless browser to convert a single web page to PDF.
type Service struct {
	cfg      serviceConfig
	renderer pdfRenderer
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithTimeout, WithWaitPolicy).
func New(opts ...Option) *Service {
	s := &Service{
		cfg: serviceConfig{
			timeout: defaultTimeout,
			wait:    WaitNetworkIdle,
		},
	}

	for _, opt := range opts {
		opt(s)
	}

	// Create renderer if not injected (e.g., by tests)
	if s.renderer == nil {
		s.renderer = newRodRenderer(s.cfg.timeout)
	}

	return s
}

// Convert loads the page at input.URL, waits for it to settle, and
// returns it rendered as PDF bytes. The context is used for
// cancellation; the navigation timeout applies on top of it.
func (s *Service) Convert(ctx context.Context, input Input) ([]byte, error) {
	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	opts := &renderOptions{
		Page:     input.Page,
		Viewport: input.Viewport,
		Wait:     s.cfg.wait,
	}

	pdfBytes, err := s.renderer.RenderURL(ctx, input.URL, opts)
	if err != nil {
		return nil, fmt.Errorf("rendering %s: %w", input.URL, err)
	}

	return pdfBytes, nil
}

// Close releases resources (headless Chrome browser).
// Safe to call more than once.
func (s *Service) Close() error {
	if s.renderer != nil {
		return s.renderer.Close()
	}
	return nil
}

// validateInput checks that required fields are present and valid.
func (s *Service) validateInput(input Input) error {
	if err := validateURL(input.URL); err != nil {
		return err
	}
	if err := input.Page.Validate(); err != nil {
		return err
	}
	return input.Viewport.Validate()
}

// validateURL checks that the URL parses and uses an http(s) scheme.
// Reachability is not checked; network failures surface at navigation.
func validateURL(raw string) error {
	if raw == "" {
		return ErrEmptyURL
	}

	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}

	switch strings.ToLower(u.Scheme) {
	case "http", "https":
	default:
		return fmt.Errorf("%w: unsupported scheme %q", ErrInvalidURL, u.Scheme)
	}

	if u.Host == "" {
		return fmt.Errorf("%w: missing host", ErrInvalidURL)
	}

	return nil
}
