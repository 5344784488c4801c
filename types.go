package web2pdf

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Page format constants. Names match Chrome's standard paper formats.
const (
	FormatLetter  = "letter"
	FormatLegal   = "legal"
	FormatTabloid = "tabloid"
	FormatLedger  = "ledger"
	FormatA0      = "a0"
	FormatA1      = "a1"
	FormatA2      = "a2"
	FormatA3      = "a3"
	FormatA4      = "a4"
	FormatA5      = "a5"
	FormatA6      = "a6"
)

// paperSize holds paper dimensions in inches.
type paperSize struct {
	width  float64
	height float64
}

// paperSizes maps known page formats to their portrait dimensions.
var paperSizes = map[string]paperSize{
	FormatLetter:  {8.5, 11},
	FormatLegal:   {8.5, 14},
	FormatTabloid: {11, 17},
	FormatLedger:  {17, 11},
	FormatA0:      {33.1, 46.8},
	FormatA1:      {23.4, 33.1},
	FormatA2:      {16.54, 23.4},
	FormatA3:      {11.7, 16.54},
	FormatA4:      {8.27, 11.7},
	FormatA5:      {5.83, 8.27},
	FormatA6:      {4.13, 5.83},
}

// Formats returns the supported page format names, sorted for display.
func Formats() []string {
	formats := make([]string, 0, len(paperSizes))
	for f := range paperSizes {
		formats = append(formats, f)
	}
	sort.Strings(formats)
	return formats
}

// Margin bounds in inches.
const (
	MinMargin     = 0.0
	MaxMargin     = 3.0
	DefaultMargin = 0.5
)

// Scale bounds accepted by Chrome's print-to-PDF.
const (
	MinScale     = 0.1
	MaxScale     = 2.0
	DefaultScale = 1.0
)

// Default viewport dimensions in pixels.
const (
	DefaultViewportWidth  = 1200
	DefaultViewportHeight = 800
)

// PageSettings configures PDF page geometry and rendering.
// Start from DefaultPageSettings and override fields as needed;
// partially filled structs fail validation.
type PageSettings struct {
	Format            string  // "a4", "letter", ... (see Format constants)
	Scale             float64 // render scale, MinScale to MaxScale
	Margins           Margins // per-side margins in inches
	Landscape         bool
	PrintBackground   bool
	PreferCSSPageSize bool
}

// Margins holds per-side page margins in inches.
type Margins struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// DefaultPageSettings returns page settings with default values.
func DefaultPageSettings() *PageSettings {
	return &PageSettings{
		Format: FormatA4,
		Scale:  DefaultScale,
		Margins: Margins{
			Top:    DefaultMargin,
			Right:  DefaultMargin,
			Bottom: DefaultMargin,
			Left:   DefaultMargin,
		},
		PrintBackground:   true,
		PreferCSSPageSize: true,
	}
}

// Validate checks that page settings are valid.
// Returns nil if p is nil (nil means use defaults).
// Does not mutate - uses case-insensitive comparison for the format.
func (p *PageSettings) Validate() error {
	if p == nil {
		return nil
	}

	if !isValidFormat(p.Format) {
		return fmt.Errorf("%w: %q", ErrInvalidPageFormat, p.Format)
	}

	if p.Scale < MinScale || p.Scale > MaxScale {
		return fmt.Errorf("%w: %.2f (must be between %.2f and %.2f)", ErrInvalidScale, p.Scale, MinScale, MaxScale)
	}

	return p.Margins.validate()
}

// isValidFormat checks if format is a known page format (case-insensitive).
func isValidFormat(format string) bool {
	_, ok := paperSizes[strings.ToLower(format)]
	return ok
}

// validate checks every side against the margin bounds.
func (m Margins) validate() error {
	sides := []struct {
		name  string
		value float64
	}{
		{"top", m.Top},
		{"right", m.Right},
		{"bottom", m.Bottom},
		{"left", m.Left},
	}
	for _, side := range sides {
		if side.value < MinMargin || side.value > MaxMargin {
			return fmt.Errorf("%w: %s %.2f (must be between %.2f and %.2f)", ErrInvalidMargin, side.name, side.value, MinMargin, MaxMargin)
		}
	}
	return nil
}

// Viewport sets the browser window size used while the page loads.
type Viewport struct {
	Width  int // pixels
	Height int // pixels
}

// DefaultViewport returns the default browser viewport.
func DefaultViewport() *Viewport {
	return &Viewport{Width: DefaultViewportWidth, Height: DefaultViewportHeight}
}

// Validate checks that viewport dimensions are positive.
// Returns nil if v is nil (nil means use defaults).
func (v *Viewport) Validate() error {
	if v == nil {
		return nil
	}
	if v.Width <= 0 || v.Height <= 0 {
		return fmt.Errorf("%w: %dx%d (dimensions must be positive)", ErrInvalidViewport, v.Width, v.Height)
	}
	return nil
}

// WaitPolicy selects when a navigated page counts as settled.
type WaitPolicy string

const (
	// WaitNetworkIdle waits until network activity quiesces, so
	// dynamically loaded content is captured. This is the default.
	WaitNetworkIdle WaitPolicy = "network-idle"
	// WaitLoad waits only for the window load event.
	WaitLoad WaitPolicy = "load"
)

// Input contains conversion parameters.
type Input struct {
	URL      string        // Page to convert (required, http or https)
	Page     *PageSettings // Page settings (optional, nil = defaults)
	Viewport *Viewport     // Browser viewport (optional, nil = defaults)
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	timeout time.Duration
	wait    WaitPolicy
}

// defaultTimeout is used when no timeout is specified.
const defaultTimeout = 30 * time.Second

// WithTimeout sets the navigation timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("web2pdf: WithTimeout duration must be positive")
	}
	return func(s *Service) {
		s.cfg.timeout = d
	}
}

// WithWaitPolicy sets when a navigated page counts as settled.
// Panics on unknown policies (programmer error).
func WithWaitPolicy(p WaitPolicy) Option {
	if p != WaitNetworkIdle && p != WaitLoad {
		panic("web2pdf: unknown wait policy " + string(p))
	}
	return func(s *Service) {
		s.cfg.wait = p
	}
}
