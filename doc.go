// Package web2pdf converts a web page to PDF using headless Chrome.
//
// # Quick Start
//
// Create a service, convert a URL, and close when done:
//
//	svc := web2pdf.New()
//	defer svc.Close()
//
//	pdf, err := svc.Convert(ctx, web2pdf.Input{
//	    URL: "https://example.com",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("output.pdf", pdf, 0644)
//
// # Conversion Sequence
//
// A conversion is a linear sequence:
//
//  1. Launch headless Chrome (lazy, on first conversion)
//  2. Open a page with the configured viewport, emulating print media
//  3. Navigate to the URL and wait for it to settle (network idle by
//     default, load event with WaitLoad)
//  4. Export the rendered page via Chrome's print-to-PDF
//
// The browser instance is released by Close on every path; one
// navigation timeout bounds step 3.
//
// # Configuration
//
// Use functional options to customize the service:
//
//	svc := web2pdf.New(
//	    web2pdf.WithTimeout(time.Minute),
//	    web2pdf.WithWaitPolicy(web2pdf.WaitLoad),
//	)
//
// Per-conversion options are passed via Input:
//
//	page := web2pdf.DefaultPageSettings()
//	page.Format = web2pdf.FormatLetter
//	page.Landscape = true
//
//	pdf, err := svc.Convert(ctx, web2pdf.Input{
//	    URL:      "https://example.com",
//	    Page:     page,
//	    Viewport: &web2pdf.Viewport{Width: 1440, Height: 900},
//	})
//
// # Browser Requirements
//
// PDF generation requires Chrome/Chromium. The go-rod library
// automatically downloads a managed Chromium instance on first run
// (~/.cache/rod/browser/).
//
// For containers and CI environments, set ROD_NO_SANDBOX=1 to disable
// the Chrome sandbox. Use ROD_BROWSER_BIN to specify a custom Chrome
// binary.
package web2pdf
