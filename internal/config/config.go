package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-web2pdf/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
)

// Field length limits for multi-tenant safety.
const (
	MaxFormatLength  = 10   // "letter", "a4", "tabloid"
	MaxPolicyLength  = 20   // "network-idle", "load"
	MaxTimeoutLength = 30   // "30s", "2m30s"
	MaxLevelLength   = 10   // "debug", "info", "warn", "error"
	MaxPathLength    = 4096 // Filesystem limit
)

// Config holds all configuration for page conversion.
// Zero values mean "not set" and defer to the built-in defaults
// applied when conversion settings are assembled.
type Config struct {
	Page     PageConfig     `yaml:"page"`
	Viewport ViewportConfig `yaml:"viewport"`
	Wait     WaitConfig     `yaml:"wait"`
	Log      LogConfig      `yaml:"log"`
}

// PageConfig defines PDF page settings.
type PageConfig struct {
	Format              string        `yaml:"format"`              // "letter", "a4", ... (default: "a4")
	Scale               float64       `yaml:"scale"`               // 0.1 to 2.0 (default: 1.0)
	Margins             MarginsConfig `yaml:"margins"`             // inches per side
	Landscape           bool          `yaml:"landscape"`           // true = landscape orientation
	NoBackground        bool          `yaml:"noBackground"`        // true = skip CSS backgrounds
	NoPreferCSSPageSize bool          `yaml:"noPreferCssPageSize"` // true = ignore @page size rules
}

// MarginsConfig defines per-side page margins in inches.
// A zero margin defers to the default; use the --margin-* flags
// for an explicit zero margin.
type MarginsConfig struct {
	Top    float64 `yaml:"top"`
	Right  float64 `yaml:"right"`
	Bottom float64 `yaml:"bottom"`
	Left   float64 `yaml:"left"`
}

// ViewportConfig defines the browser viewport used during rendering.
type ViewportConfig struct {
	Width  int `yaml:"width"`  // pixels (default: 1200)
	Height int `yaml:"height"` // pixels (default: 800)
}

// WaitConfig defines how long and for what the converter waits
// after navigation before printing.
type WaitConfig struct {
	Policy  string `yaml:"policy"`  // "network-idle" or "load" (default: "network-idle")
	Timeout string `yaml:"timeout"` // Go duration, e.g. "30s" (default: "30s")
}

// LogConfig defines structured logging output.
type LogConfig struct {
	Level      string `yaml:"level"`      // "debug", "info", "warn", "error" (default: "info")
	File       string `yaml:"file"`       // Log file path (empty = stderr only)
	MaxSizeMB  int    `yaml:"maxSizeMb"`  // Rotate after N megabytes (default: 10)
	MaxBackups int    `yaml:"maxBackups"` // Rotated files to keep (default: 3)
	MaxAgeDays int    `yaml:"maxAgeDays"` // Days to keep rotated files (default: 30)
	Compress   bool   `yaml:"compress"`   // Gzip rotated files
}

// Validate checks enumerations, durations, and field lengths.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually (e.g., API adapters, library users).
// Numeric page ranges are left to the conversion library, which
// validates them when settings are assembled.
func (c *Config) Validate() error {
	// Validate page fields
	if err := validateFieldLength("page.format", c.Page.Format, MaxFormatLength); err != nil {
		return err
	}
	if c.Page.Scale < 0 {
		return fmt.Errorf("page.scale: must not be negative, got %.2f", c.Page.Scale)
	}
	for _, m := range []struct {
		name  string
		value float64
	}{
		{"page.margins.top", c.Page.Margins.Top},
		{"page.margins.right", c.Page.Margins.Right},
		{"page.margins.bottom", c.Page.Margins.Bottom},
		{"page.margins.left", c.Page.Margins.Left},
	} {
		if m.value < 0 {
			return fmt.Errorf("%s: must not be negative, got %.2f", m.name, m.value)
		}
	}

	// Validate viewport fields
	if c.Viewport.Width < 0 {
		return fmt.Errorf("viewport.width: must not be negative, got %d", c.Viewport.Width)
	}
	if c.Viewport.Height < 0 {
		return fmt.Errorf("viewport.height: must not be negative, got %d", c.Viewport.Height)
	}

	// Validate wait fields
	if err := validateFieldLength("wait.policy", c.Wait.Policy, MaxPolicyLength); err != nil {
		return err
	}
	if c.Wait.Policy != "" {
		switch strings.ToLower(c.Wait.Policy) {
		case "network-idle", "load":
			// valid
		default:
			return fmt.Errorf("wait.policy: invalid value %q (must be network-idle or load)", c.Wait.Policy)
		}
	}
	if err := validateFieldLength("wait.timeout", c.Wait.Timeout, MaxTimeoutLength); err != nil {
		return err
	}
	if c.Wait.Timeout != "" {
		d, err := time.ParseDuration(c.Wait.Timeout)
		if err != nil {
			return fmt.Errorf("wait.timeout: invalid duration %q (use formats like 30s or 2m)", c.Wait.Timeout)
		}
		if d <= 0 {
			return fmt.Errorf("wait.timeout: must be positive, got %s", c.Wait.Timeout)
		}
	}

	// Validate log fields
	if err := validateFieldLength("log.level", c.Log.Level, MaxLevelLength); err != nil {
		return err
	}
	if c.Log.Level != "" {
		switch strings.ToLower(c.Log.Level) {
		case "debug", "info", "warn", "error":
			// valid
		default:
			return fmt.Errorf("log.level: invalid value %q (must be debug, info, warn, or error)", c.Log.Level)
		}
	}
	if err := validateFieldLength("log.file", c.Log.File, MaxPathLength); err != nil {
		return err
	}
	if c.Log.MaxSizeMB < 0 {
		return fmt.Errorf("log.maxSizeMb: must not be negative, got %d", c.Log.MaxSizeMB)
	}
	if c.Log.MaxBackups < 0 {
		return fmt.Errorf("log.maxBackups: must not be negative, got %d", c.Log.MaxBackups)
	}
	if c.Log.MaxAgeDays < 0 {
		return fmt.Errorf("log.maxAgeDays: must not be negative, got %d", c.Log.MaxAgeDays)
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a neutral configuration where every field
// defers to the built-in conversion defaults.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-web2pdf/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	// Try current directory first (both extensions)
	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	// Try user config directory (both extensions)
	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-web2pdf", name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
