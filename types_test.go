package web2pdf

// Notes:
// - PageSettings: tests validation for format, scale, and margin boundaries
// - Margins: tests per-side boundary checks
// - Viewport: tests dimension validation
// - paperSizes: tests the format table against Chrome's paper dimensions

import (
	"errors"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestPageSettings_Validate - PageSettings Validation
// ---------------------------------------------------------------------------

func TestPageSettings_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		ps      *PageSettings
		wantErr error
	}{
		{
			name:    "nil is valid (use defaults)",
			ps:      nil,
			wantErr: nil,
		},
		{
			name:    "defaults are valid",
			ps:      DefaultPageSettings(),
			wantErr: nil,
		},
		{
			name: "valid letter landscape",
			ps: &PageSettings{
				Format:    FormatLetter,
				Scale:     DefaultScale,
				Margins:   Margins{Top: 1, Right: 1, Bottom: 1, Left: 1},
				Landscape: true,
			},
			wantErr: nil,
		},
		{
			name: "case insensitive format",
			ps: &PageSettings{
				Format: "A4",
				Scale:  DefaultScale,
			},
			wantErr: nil,
		},
		{
			name: "ledger format",
			ps: &PageSettings{
				Format: FormatLedger,
				Scale:  DefaultScale,
			},
			wantErr: nil,
		},
		{
			name: "scale at minimum",
			ps: &PageSettings{
				Format: FormatA4,
				Scale:  MinScale,
			},
			wantErr: nil,
		},
		{
			name: "scale at maximum",
			ps: &PageSettings{
				Format: FormatA4,
				Scale:  MaxScale,
			},
			wantErr: nil,
		},
		{
			name: "margins at maximum",
			ps: &PageSettings{
				Format:  FormatA4,
				Scale:   DefaultScale,
				Margins: Margins{Top: MaxMargin, Right: MaxMargin, Bottom: MaxMargin, Left: MaxMargin},
			},
			wantErr: nil,
		},
		{
			name: "zero margins are valid",
			ps: &PageSettings{
				Format: FormatA4,
				Scale:  DefaultScale,
			},
			wantErr: nil,
		},
		{
			name: "unknown format",
			ps: &PageSettings{
				Format: "a9",
				Scale:  DefaultScale,
			},
			wantErr: ErrInvalidPageFormat,
		},
		{
			name: "empty format",
			ps: &PageSettings{
				Scale: DefaultScale,
			},
			wantErr: ErrInvalidPageFormat,
		},
		{
			name: "scale below minimum",
			ps: &PageSettings{
				Format: FormatA4,
				Scale:  0.05,
			},
			wantErr: ErrInvalidScale,
		},
		{
			name: "zero scale",
			ps: &PageSettings{
				Format: FormatA4,
			},
			wantErr: ErrInvalidScale,
		},
		{
			name: "scale above maximum",
			ps: &PageSettings{
				Format: FormatA4,
				Scale:  2.5,
			},
			wantErr: ErrInvalidScale,
		},
		{
			name: "negative margin",
			ps: &PageSettings{
				Format:  FormatA4,
				Scale:   DefaultScale,
				Margins: Margins{Top: -0.1},
			},
			wantErr: ErrInvalidMargin,
		},
		{
			name: "margin above maximum",
			ps: &PageSettings{
				Format:  FormatA4,
				Scale:   DefaultScale,
				Margins: Margins{Top: 0.5, Right: 0.5, Bottom: 3.5, Left: 0.5},
			},
			wantErr: ErrInvalidMargin,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.ps.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestMargins_ValidateNamesTheSide(t *testing.T) {
	t.Parallel()

	m := Margins{Top: 0.5, Right: 0.5, Bottom: 0.5, Left: 5}
	err := m.validate()
	if !errors.Is(err, ErrInvalidMargin) {
		t.Fatalf("validate() error = %v, want %v", err, ErrInvalidMargin)
	}
	if !strings.Contains(err.Error(), "left") {
		t.Errorf("validate() error should name the offending side, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// TestViewport_Validate - Viewport Validation
// ---------------------------------------------------------------------------

func TestViewport_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		vp      *Viewport
		wantErr error
	}{
		{
			name:    "nil is valid (use defaults)",
			vp:      nil,
			wantErr: nil,
		},
		{
			name:    "defaults are valid",
			vp:      DefaultViewport(),
			wantErr: nil,
		},
		{
			name:    "custom dimensions",
			vp:      &Viewport{Width: 1920, Height: 1080},
			wantErr: nil,
		},
		{
			name:    "zero width",
			vp:      &Viewport{Width: 0, Height: 800},
			wantErr: ErrInvalidViewport,
		},
		{
			name:    "zero height",
			vp:      &Viewport{Width: 1200, Height: 0},
			wantErr: ErrInvalidViewport,
		},
		{
			name:    "negative dimensions",
			vp:      &Viewport{Width: -1200, Height: -800},
			wantErr: ErrInvalidViewport,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.vp.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestDefaults - Default Values
// ---------------------------------------------------------------------------

func TestDefaultPageSettings(t *testing.T) {
	t.Parallel()

	ps := DefaultPageSettings()

	if ps.Format != FormatA4 {
		t.Errorf("Format = %q, want %q", ps.Format, FormatA4)
	}
	if ps.Scale != DefaultScale {
		t.Errorf("Scale = %v, want %v", ps.Scale, DefaultScale)
	}
	for side, v := range map[string]float64{
		"top": ps.Margins.Top, "right": ps.Margins.Right,
		"bottom": ps.Margins.Bottom, "left": ps.Margins.Left,
	} {
		if v != DefaultMargin {
			t.Errorf("Margins.%s = %v, want %v", side, v, DefaultMargin)
		}
	}
	if ps.Landscape {
		t.Error("Landscape should default to false")
	}
	if !ps.PrintBackground {
		t.Error("PrintBackground should default to true")
	}
	if !ps.PreferCSSPageSize {
		t.Error("PreferCSSPageSize should default to true")
	}
	if err := ps.Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}

func TestDefaultViewport(t *testing.T) {
	t.Parallel()

	vp := DefaultViewport()

	if vp.Width != DefaultViewportWidth || vp.Height != DefaultViewportHeight {
		t.Errorf("DefaultViewport() = %dx%d, want %dx%d",
			vp.Width, vp.Height, DefaultViewportWidth, DefaultViewportHeight)
	}
}

// ---------------------------------------------------------------------------
// TestPaperSizes - Format Table
// ---------------------------------------------------------------------------

func TestPaperSizes(t *testing.T) {
	t.Parallel()

	formats := []string{
		FormatLetter, FormatLegal, FormatTabloid, FormatLedger,
		FormatA0, FormatA1, FormatA2, FormatA3, FormatA4, FormatA5, FormatA6,
	}

	if len(paperSizes) != len(formats) {
		t.Errorf("paperSizes has %d entries, want %d", len(paperSizes), len(formats))
	}

	for _, format := range formats {
		size, ok := paperSizes[format]
		if !ok {
			t.Errorf("paperSizes missing %q", format)
			continue
		}
		if size.width <= 0 || size.height <= 0 {
			t.Errorf("paperSizes[%q] = %+v, want positive dimensions", format, size)
		}
	}

	// Spot-check the common formats against Chrome's paper dimensions.
	if got := paperSizes[FormatLetter]; got != (paperSize{8.5, 11}) {
		t.Errorf("letter = %+v, want {8.5 11}", got)
	}
	if got := paperSizes[FormatA4]; got != (paperSize{8.27, 11.7}) {
		t.Errorf("a4 = %+v, want {8.27 11.7}", got)
	}
	if got := paperSizes[FormatLedger]; got != (paperSize{17, 11}) {
		t.Errorf("ledger = %+v, want {17 11}", got)
	}
}
