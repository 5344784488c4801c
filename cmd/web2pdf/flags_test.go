package main

// Notes:
// - parseFlags: we test defaults, short/long forms, positional passthrough,
//   and error paths. pflag's own parsing (equals syntax, flag grouping) is
//   assumed correct; we only verify our registrations.

import (
	"errors"
	"testing"

	flag "github.com/spf13/pflag"
)

// ---------------------------------------------------------------------------
// TestParseFlags - Defaults
// ---------------------------------------------------------------------------

func TestParseFlagsDefaults(t *testing.T) {
	t.Parallel()

	flags, args, err := parseFlags([]string{})
	if err != nil {
		t.Fatalf("parseFlags() error = %v", err)
	}
	if len(args) != 0 {
		t.Errorf("positional args = %v, want none", args)
	}

	if flags.io.url != "" {
		t.Errorf("url = %q, want empty", flags.io.url)
	}
	if flags.io.output != "" {
		t.Errorf("output = %q, want empty", flags.io.output)
	}
	if flags.page.format != "" {
		t.Errorf("format = %q, want empty", flags.page.format)
	}
	if flags.page.scale != 0 {
		t.Errorf("scale = %v, want 0", flags.page.scale)
	}
	for name, got := range map[string]float64{
		"margin-top":    flags.page.marginTop,
		"margin-right":  flags.page.marginRight,
		"margin-bottom": flags.page.marginBottom,
		"margin-left":   flags.page.marginLeft,
	} {
		if got != marginSentinel {
			t.Errorf("%s default = %v, want sentinel %v", name, got, marginSentinel)
		}
	}
	if flags.page.landscape {
		t.Error("landscape default = true, want false")
	}
	if flags.page.noBackground {
		t.Error("no-background default = true, want false")
	}
	if flags.viewport.width != 0 || flags.viewport.height != 0 {
		t.Errorf("viewport defaults = %dx%d, want 0x0", flags.viewport.width, flags.viewport.height)
	}
	if flags.wait.timeout != "" {
		t.Errorf("timeout default = %q, want empty", flags.wait.timeout)
	}
	if flags.wait.noWaitNetwork {
		t.Error("no-wait-network default = true, want false")
	}
	if flags.common.quiet || flags.common.verbose {
		t.Error("quiet/verbose defaults should be false")
	}
}

// ---------------------------------------------------------------------------
// TestParseFlags - Short and long forms
// ---------------------------------------------------------------------------

func TestParseFlagsShortForms(t *testing.T) {
	t.Parallel()

	flags, _, err := parseFlags([]string{
		"-i", "https://example.com",
		"-o", "out.pdf",
		"-f", "letter",
		"-t", "45s",
		"-c", "myconfig",
		"-q",
		"-v",
	})
	if err != nil {
		t.Fatalf("parseFlags() error = %v", err)
	}

	if flags.io.url != "https://example.com" {
		t.Errorf("url = %q", flags.io.url)
	}
	if flags.io.output != "out.pdf" {
		t.Errorf("output = %q", flags.io.output)
	}
	if flags.page.format != "letter" {
		t.Errorf("format = %q", flags.page.format)
	}
	if flags.wait.timeout != "45s" {
		t.Errorf("timeout = %q", flags.wait.timeout)
	}
	if flags.common.config != "myconfig" {
		t.Errorf("config = %q", flags.common.config)
	}
	if !flags.common.quiet {
		t.Error("quiet not set")
	}
	if !flags.common.verbose {
		t.Error("verbose not set")
	}
}

func TestParseFlagsLongForms(t *testing.T) {
	t.Parallel()

	flags, _, err := parseFlags([]string{
		"--url", "https://example.com/page",
		"--output", "page.pdf",
		"--format", "a3",
		"--scale", "1.5",
		"--margin-top", "0",
		"--margin-right", "0.25",
		"--margin-bottom", "1",
		"--margin-left", "0.75",
		"--landscape",
		"--no-background",
		"--no-prefer-css-page-size",
		"--viewport-width", "1920",
		"--viewport-height", "1080",
		"--timeout", "2m",
		"--no-wait-network",
	})
	if err != nil {
		t.Fatalf("parseFlags() error = %v", err)
	}

	if flags.page.scale != 1.5 {
		t.Errorf("scale = %v, want 1.5", flags.page.scale)
	}
	// Explicit zero must be distinguishable from unset
	if flags.page.marginTop != 0 {
		t.Errorf("margin-top = %v, want 0", flags.page.marginTop)
	}
	if flags.page.marginRight != 0.25 {
		t.Errorf("margin-right = %v, want 0.25", flags.page.marginRight)
	}
	if flags.page.marginBottom != 1 {
		t.Errorf("margin-bottom = %v, want 1", flags.page.marginBottom)
	}
	if flags.page.marginLeft != 0.75 {
		t.Errorf("margin-left = %v, want 0.75", flags.page.marginLeft)
	}
	if !flags.page.landscape {
		t.Error("landscape not set")
	}
	if !flags.page.noBackground {
		t.Error("no-background not set")
	}
	if !flags.page.noPreferCSSPageSize {
		t.Error("no-prefer-css-page-size not set")
	}
	if flags.viewport.width != 1920 || flags.viewport.height != 1080 {
		t.Errorf("viewport = %dx%d, want 1920x1080", flags.viewport.width, flags.viewport.height)
	}
	if flags.wait.timeout != "2m" {
		t.Errorf("timeout = %q, want 2m", flags.wait.timeout)
	}
	if !flags.wait.noWaitNetwork {
		t.Error("no-wait-network not set")
	}
}

// ---------------------------------------------------------------------------
// TestParseFlags - Positionals and errors
// ---------------------------------------------------------------------------

func TestParseFlagsPositionalArgs(t *testing.T) {
	t.Parallel()

	_, args, err := parseFlags([]string{"-i", "https://example.com", "leftover"})
	if err != nil {
		t.Fatalf("parseFlags() error = %v", err)
	}
	if len(args) != 1 || args[0] != "leftover" {
		t.Errorf("positional args = %v, want [leftover]", args)
	}
}

func TestParseFlagsUnknownFlag(t *testing.T) {
	t.Parallel()

	_, _, err := parseFlags([]string{"--does-not-exist"})
	if err == nil {
		t.Fatal("expected error for unknown flag")
	}
}

func TestParseFlagsHelp(t *testing.T) {
	t.Parallel()

	_, _, err := parseFlags([]string{"--help"})
	if !errors.Is(err, flag.ErrHelp) {
		t.Errorf("parseFlags(--help) error = %v, want flag.ErrHelp", err)
	}
}

func TestParseFlagsBadValue(t *testing.T) {
	t.Parallel()

	_, _, err := parseFlags([]string{"--scale", "not-a-number"})
	if err == nil {
		t.Fatal("expected error for non-numeric scale")
	}
}
