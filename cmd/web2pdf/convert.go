package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	web2pdf "github.com/alnah/go-web2pdf"
	"github.com/alnah/go-web2pdf/internal/config"
	"github.com/alnah/go-web2pdf/internal/fileutil"
	"github.com/alnah/go-web2pdf/internal/logging"
)

// Sentinel errors for CLI operations.
var (
	ErrNoURL          = errors.New("no URL specified (use -i or --url)")
	ErrNoOutput       = errors.New("no output path specified (use -o or --output)")
	ErrInvalidTimeout = errors.New("invalid timeout")
	ErrWritePDF       = errors.New("failed to write PDF file")
	ErrOutputDir      = errors.New("output directory does not exist")
)

// filePermissions is rw-r--r--: owner read+write, others read.
const filePermissions = 0o644

// Default log rotation settings, used when the config leaves them zero.
const (
	defaultLogMaxSizeMB  = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAgeDays = 30
)

// Converter is the interface for the conversion service.
type Converter interface {
	Convert(ctx context.Context, input web2pdf.Input) ([]byte, error)
	Close() error
}

// Compile-time interface implementation check.
var _ Converter = (*web2pdf.Service)(nil)

// serviceFactory builds the conversion service once settings are known.
// Tests substitute a factory returning a fake.
type serviceFactory func(opts ...web2pdf.Option) Converter

// defaultServiceFactory builds the production service.
func defaultServiceFactory(opts ...web2pdf.Option) Converter {
	return web2pdf.New(opts...)
}

// runConvert orchestrates a single page conversion.
// Usage errors are returned before the browser ever launches; the
// factory is only invoked once flags, config, and the output location
// have all been validated.
func runConvert(ctx context.Context, flags *convertFlags, env *Environment, newService serviceFactory) error {
	start := env.Now()

	if flags.io.url == "" {
		return ErrNoURL
	}
	if flags.io.output == "" {
		return ErrNoOutput
	}

	warnUnknownEnvVars(env.Stderr)
	envCfg := loadEnvConfig()

	// Load configuration
	cfg := config.DefaultConfig()
	configName := flags.common.config
	if configName == "" {
		configName = envCfg.ConfigPath
	}
	if configName != "" {
		var err error
		cfg, err = config.LoadConfig(configName)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}
	applyEnvConfig(envCfg, cfg)

	initLogging(flags, cfg)

	// Assemble conversion settings (CLI wins over config)
	pageSettings, err := buildPageSettings(flags, cfg)
	if err != nil {
		return err
	}
	viewport, err := buildViewport(flags, cfg)
	if err != nil {
		return err
	}
	timeout, err := resolveTimeout(flags.wait.timeout, cfg, envCfg)
	if err != nil {
		return err
	}
	waitPolicy := resolveWaitPolicy(flags, cfg)

	// The output directory must exist before any browser work starts.
	if err := fileutil.CheckParentDir(flags.io.output); err != nil {
		return fmt.Errorf("%w: %v", ErrOutputDir, err)
	}

	opts := []web2pdf.Option{web2pdf.WithWaitPolicy(waitPolicy)}
	if timeout > 0 {
		opts = append(opts, web2pdf.WithTimeout(timeout))
	}
	service := newService(opts...)
	defer func() {
		if err := service.Close(); err != nil {
			logging.Warn("closing browser", "error", err)
		}
	}()

	logging.Info("converting page",
		"url", flags.io.url,
		"output", flags.io.output,
		"format", pageSettings.Format,
		"wait", string(waitPolicy))

	pdfBytes, err := service.Convert(ctx, web2pdf.Input{
		URL:      flags.io.url,
		Page:     pageSettings,
		Viewport: viewport,
	})
	if err != nil {
		return err
	}

	// #nosec G306 -- PDFs are meant to be readable
	if err := os.WriteFile(flags.io.output, pdfBytes, filePermissions); err != nil {
		removePartialOutput(flags.io.output)
		return fmt.Errorf("%w: %v", ErrWritePDF, err)
	}

	duration := env.Now().Sub(start)
	logging.Info("conversion complete",
		"output", flags.io.output,
		"bytes", len(pdfBytes),
		"duration", duration.Round(time.Millisecond).String())

	if !flags.common.quiet {
		if flags.common.verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n",
				flags.io.url, flags.io.output, duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", flags.io.output)
		}
	}

	return nil
}

// initLogging configures the process logger from flags and config.
// Verbosity flags override the configured level.
func initLogging(flags *convertFlags, cfg *config.Config) {
	level := cfg.Log.Level
	switch {
	case flags.common.verbose:
		level = "debug"
	case flags.common.quiet:
		level = "error"
	}

	maxSize := cfg.Log.MaxSizeMB
	if maxSize == 0 {
		maxSize = defaultLogMaxSizeMB
	}
	maxBackups := cfg.Log.MaxBackups
	if maxBackups == 0 {
		maxBackups = defaultLogMaxBackups
	}
	maxAge := cfg.Log.MaxAgeDays
	if maxAge == 0 {
		maxAge = defaultLogMaxAgeDays
	}

	logging.InitLogger(cfg.Log.File, maxSize, maxBackups, maxAge, cfg.Log.Compress, level)
}

// buildPageSettings assembles PDF page settings from flags and config.
// Starts from the built-in defaults, applies config values, then lets
// CLI flags override. Margin flags use a sentinel so an explicit zero
// survives merging.
func buildPageSettings(flags *convertFlags, cfg *config.Config) (*web2pdf.PageSettings, error) {
	ps := web2pdf.DefaultPageSettings()

	// Config overrides defaults
	if cfg.Page.Format != "" {
		ps.Format = cfg.Page.Format
	}
	if cfg.Page.Scale != 0 {
		ps.Scale = cfg.Page.Scale
	}
	if cfg.Page.Margins.Top != 0 {
		ps.Margins.Top = cfg.Page.Margins.Top
	}
	if cfg.Page.Margins.Right != 0 {
		ps.Margins.Right = cfg.Page.Margins.Right
	}
	if cfg.Page.Margins.Bottom != 0 {
		ps.Margins.Bottom = cfg.Page.Margins.Bottom
	}
	if cfg.Page.Margins.Left != 0 {
		ps.Margins.Left = cfg.Page.Margins.Left
	}
	if cfg.Page.Landscape {
		ps.Landscape = true
	}
	if cfg.Page.NoBackground {
		ps.PrintBackground = false
	}
	if cfg.Page.NoPreferCSSPageSize {
		ps.PreferCSSPageSize = false
	}

	// CLI flags override config
	if flags.page.format != "" {
		ps.Format = flags.page.format
	}
	if flags.page.scale != 0 {
		ps.Scale = flags.page.scale
	}
	if flags.page.marginTop != marginSentinel {
		ps.Margins.Top = flags.page.marginTop
	}
	if flags.page.marginRight != marginSentinel {
		ps.Margins.Right = flags.page.marginRight
	}
	if flags.page.marginBottom != marginSentinel {
		ps.Margins.Bottom = flags.page.marginBottom
	}
	if flags.page.marginLeft != marginSentinel {
		ps.Margins.Left = flags.page.marginLeft
	}
	if flags.page.landscape {
		ps.Landscape = true
	}
	if flags.page.noBackground {
		ps.PrintBackground = false
	}
	if flags.page.noPreferCSSPageSize {
		ps.PreferCSSPageSize = false
	}

	if err := ps.Validate(); err != nil {
		return nil, err
	}

	return ps, nil
}

// buildViewport assembles the browser viewport from flags and config.
// Returns nil when neither sets a dimension, deferring to the library.
func buildViewport(flags *convertFlags, cfg *config.Config) (*web2pdf.Viewport, error) {
	hasFlags := flags.viewport.width != 0 || flags.viewport.height != 0
	hasConfig := cfg.Viewport.Width != 0 || cfg.Viewport.Height != 0

	if !hasFlags && !hasConfig {
		return nil, nil
	}

	vp := web2pdf.DefaultViewport()

	if cfg.Viewport.Width != 0 {
		vp.Width = cfg.Viewport.Width
	}
	if cfg.Viewport.Height != 0 {
		vp.Height = cfg.Viewport.Height
	}
	if flags.viewport.width != 0 {
		vp.Width = flags.viewport.width
	}
	if flags.viewport.height != 0 {
		vp.Height = flags.viewport.height
	}

	if err := vp.Validate(); err != nil {
		return nil, err
	}

	return vp, nil
}

// resolveTimeout determines the page load timeout.
// Priority: CLI flag > config file > env var. Returns 0 when nothing
// is set, deferring to the library default.
func resolveTimeout(flagTimeout string, cfg *config.Config, envCfg *envConfig) (time.Duration, error) {
	if flagTimeout != "" {
		d, err := time.ParseDuration(flagTimeout)
		if err != nil {
			return 0, fmt.Errorf("%w: %q (use formats like 30s or 2m)", ErrInvalidTimeout, flagTimeout)
		}
		if d <= 0 {
			return 0, fmt.Errorf("%w: %q (must be positive)", ErrInvalidTimeout, flagTimeout)
		}
		return d, nil
	}

	if cfg.Wait.Timeout != "" {
		d, err := time.ParseDuration(cfg.Wait.Timeout)
		if err != nil {
			// Config validation already rejected unparseable values.
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimeout, cfg.Wait.Timeout)
		}
		return d, nil
	}

	if envCfg.Timeout > 0 {
		return envCfg.Timeout, nil
	}

	return 0, nil
}

// resolveWaitPolicy determines what the converter waits for after
// navigation. The disable flag always wins.
func resolveWaitPolicy(flags *convertFlags, cfg *config.Config) web2pdf.WaitPolicy {
	if flags.wait.noWaitNetwork {
		return web2pdf.WaitLoad
	}
	if strings.EqualFold(cfg.Wait.Policy, "load") {
		return web2pdf.WaitLoad
	}
	return web2pdf.WaitNetworkIdle
}

// removePartialOutput deletes a partially written PDF so failed runs
// never leave a truncated file behind.
func removePartialOutput(path string) {
	if fileutil.FileExists(path) {
		if err := os.Remove(path); err != nil {
			logging.Warn("removing partial output", "path", path, "error", err)
		}
	}
}
