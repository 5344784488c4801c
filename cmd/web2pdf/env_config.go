package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/alnah/go-web2pdf/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string        // WEB2PDF_CONFIG: config file path or name
	Timeout    time.Duration // WEB2PDF_TIMEOUT: page load timeout
	Format     string        // WEB2PDF_FORMAT: paper format
	LogLevel   string        // WEB2PDF_LOG_LEVEL: debug, info, warn, error
	LogFile    string        // WEB2PDF_LOG_FILE: log file path
}

// knownEnvVars lists valid WEB2PDF_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"WEB2PDF_CONFIG":    true,
	"WEB2PDF_TIMEOUT":   true,
	"WEB2PDF_FORMAT":    true,
	"WEB2PDF_LOG_LEVEL": true,
	"WEB2PDF_LOG_FILE":  true,
	"WEB2PDF_CONTAINER": true, // read by doctor for container detection
}

// loadEnvConfig reads configuration from environment variables.
// Returns a struct with all recognized WEB2PDF_* values.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("WEB2PDF_CONFIG"),
		Format:     os.Getenv("WEB2PDF_FORMAT"),
		LogLevel:   os.Getenv("WEB2PDF_LOG_LEVEL"),
		LogFile:    os.Getenv("WEB2PDF_LOG_FILE"),
	}

	// Parse duration for timeout
	if timeout := os.Getenv("WEB2PDF_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized WEB2PDF_* variables.
// Helps catch typos like WEB2PDF_TIMOUT instead of WEB2PDF_TIMEOUT.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "WEB2PDF_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Only sets values if the env var is set AND the config value is empty,
// so explicit config file entries win over the ambient environment.
// Final order: CLI flags > config file > env vars > defaults
// (CLI flags are applied when conversion settings are assembled).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Format != "" && cfg.Page.Format == "" {
		cfg.Page.Format = env.Format
	}
	if env.Timeout > 0 && cfg.Wait.Timeout == "" {
		cfg.Wait.Timeout = env.Timeout.String()
	}
	if env.LogLevel != "" && cfg.Log.Level == "" {
		cfg.Log.Level = env.LogLevel
	}
	if env.LogFile != "" && cfg.Log.File == "" {
		cfg.Log.File = env.LogFile
	}
}
