package web2pdf

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// pdfRenderer abstracts the browser engine so Service can be tested
// without launching Chrome.
type pdfRenderer interface {
	RenderURL(ctx context.Context, pageURL string, opts *renderOptions) ([]byte, error)
	Close() error
}

// Compile-time interface check
var _ pdfRenderer = (*rodRenderer)(nil)

// renderOptions holds options for a single render.
type renderOptions struct {
	Page     *PageSettings
	Viewport *Viewport
	Wait     WaitPolicy
}

// rodRenderer implements pdfRenderer using go-rod.
// Rod automatically downloads Chromium on first run if not found.
type rodRenderer struct {
	browser *rod.Browser
	timeout time.Duration
}

// newRodRenderer creates a rodRenderer with the given navigation timeout.
func newRodRenderer(timeout time.Duration) *rodRenderer {
	return &rodRenderer{timeout: timeout}
}

// ensureBrowser lazily launches and connects to the browser.
func (r *rodRenderer) ensureBrowser() error {
	if r.browser != nil {
		return nil
	}

	// Configure launcher
	l := launcher.New()

	// Use pre-installed browser if specified (Docker/containerized environments)
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}

	// NoSandbox required for CI and containerized environments
	if os.Getenv("CI") == "true" || os.Getenv("ROD_BROWSER_BIN") != "" || os.Getenv("ROD_NO_SANDBOX") == "1" {
		l = l.NoSandbox(true)
	}

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	r.browser = rod.New().ControlURL(u)
	if err := r.browser.Connect(); err != nil {
		r.browser = nil
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	return nil
}

// Close releases browser resources.
func (r *rodRenderer) Close() error {
	if r.browser != nil {
		err := r.browser.Close()
		r.browser = nil
		return err
	}
	return nil
}

// RenderURL opens pageURL in headless Chrome, waits for it to settle
// per opts.Wait, and renders it to PDF.
// Returns explicit errors instead of panicking when browser operations fail.
func (r *rodRenderer) RenderURL(ctx context.Context, pageURL string, opts *renderOptions) ([]byte, error) {
	// Check context before starting
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := r.ensureBrowser(); err != nil {
		return nil, err
	}

	page, err := r.browser.Page(proto.TargetCreateTarget{URL: "about:blank"})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer page.Close()

	// A single deadline bounds the whole navigate-and-settle phase,
	// from the caller's context or the renderer default.
	timeout := r.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return nil, context.DeadlineExceeded
		}
	}

	navCtx, cancelNav := context.WithTimeout(ctx, timeout)
	defer cancelNav()
	nav := page.Context(navCtx)

	if err := applyViewport(nav, opts); err != nil {
		return nil, fmt.Errorf("%w: setting viewport: %v", ErrPageCreate, err)
	}

	// Emulate print media before navigating so load-time scripts
	// observe the same media the export will use.
	if err := (proto.EmulationSetEmulatedMedia{Media: "print"}).Call(nav); err != nil {
		return nil, fmt.Errorf("%w: emulating print media: %v", ErrPageCreate, err)
	}

	// The waiter must be registered before navigation starts, or the
	// lifecycle event can fire unobserved.
	wait := nav.WaitNavigation(lifecycleFor(waitPolicy(opts)))
	if err := nav.Navigate(pageURL); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNavigation, err)
	}
	wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if navCtx.Err() != nil {
		return nil, fmt.Errorf("%w: %s not settled within %s", ErrPageTimeout, pageURL, timeout)
	}

	// Generate PDF; only caller cancellation bounds the export.
	reader, err := page.Context(ctx).PDF(buildPDFOptions(opts))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}

	pdfBuf, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: reading PDF stream: %v", ErrPDFGeneration, err)
	}

	return pdfBuf, nil
}

// applyViewport sets the browser window size used while the page loads.
func applyViewport(page *rod.Page, opts *renderOptions) error {
	vp := DefaultViewport()
	if opts != nil && opts.Viewport != nil {
		vp = opts.Viewport
	}

	return page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             vp.Width,
		Height:            vp.Height,
		DeviceScaleFactor: 1,
		Mobile:            false,
	})
}

// waitPolicy returns the effective wait policy for a render.
func waitPolicy(opts *renderOptions) WaitPolicy {
	if opts == nil || opts.Wait == "" {
		return WaitNetworkIdle
	}
	return opts.Wait
}

// lifecycleFor maps a WaitPolicy to the Chrome lifecycle event to wait on.
func lifecycleFor(policy WaitPolicy) proto.PageLifecycleEventName {
	if policy == WaitLoad {
		return proto.PageLifecycleEventNameLoad
	}
	return proto.PageLifecycleEventNameNetworkIdle
}

// buildPDFOptions constructs proto.PagePrintToPDF from page settings.
func buildPDFOptions(opts *renderOptions) *proto.PagePrintToPDF {
	settings := DefaultPageSettings()
	if opts != nil && opts.Page != nil {
		settings = opts.Page
	}

	size := paperSizes[strings.ToLower(settings.Format)]

	return &proto.PagePrintToPDF{
		Landscape:         settings.Landscape,
		PrintBackground:   settings.PrintBackground,
		Scale:             floatPtr(settings.Scale),
		PaperWidth:        floatPtr(size.width),
		PaperHeight:       floatPtr(size.height),
		MarginTop:         floatPtr(settings.Margins.Top),
		MarginRight:       floatPtr(settings.Margins.Right),
		MarginBottom:      floatPtr(settings.Margins.Bottom),
		MarginLeft:        floatPtr(settings.Margins.Left),
		PreferCSSPageSize: settings.PreferCSSPageSize,
	}
}

// floatPtr returns a pointer to a float64 value.
func floatPtr(v float64) *float64 {
	return &v
}
