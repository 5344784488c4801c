package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// marginSentinel marks margin flags as "not set".
// Since 0 is a valid margin (edge-to-edge printing), the sentinel
// sits outside the accepted range so explicit zeros survive merging.
const marginSentinel = -1.0

// convertFlags holds all parsed flag values for a conversion run.
type convertFlags struct {
	io       ioFlags
	page     pageFlags
	viewport viewportFlags
	wait     waitFlags
	common   commonFlags
}

// ioFlags holds source and destination options.
type ioFlags struct {
	url    string
	output string
}

// pageFlags holds PDF page layout options.
type pageFlags struct {
	format              string
	scale               float64
	marginTop           float64
	marginRight         float64
	marginBottom        float64
	marginLeft          float64
	landscape           bool
	noBackground        bool
	noPreferCSSPageSize bool
}

// viewportFlags holds browser viewport options.
type viewportFlags struct {
	width  int
	height int
}

// waitFlags holds navigation timing options.
type waitFlags struct {
	timeout       string
	noWaitNetwork bool
}

// commonFlags holds options shared by most invocations.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// addIOFlags registers source and destination flags.
func addIOFlags(fs *flag.FlagSet, f *ioFlags) {
	fs.StringVarP(&f.url, "url", "i", "", "source page URL (http or https)")
	fs.StringVarP(&f.output, "output", "o", "", "output PDF path")
}

// addPageFlags registers PDF page layout flags.
func addPageFlags(fs *flag.FlagSet, f *pageFlags) {
	fs.StringVarP(&f.format, "format", "f", "", "paper format: letter, legal, tabloid, ledger, a0-a6")
	fs.Float64Var(&f.scale, "scale", 0, "render scale (0.1-2.0)")
	fs.Float64Var(&f.marginTop, "margin-top", marginSentinel, "top margin in inches (0-3)")
	fs.Float64Var(&f.marginRight, "margin-right", marginSentinel, "right margin in inches (0-3)")
	fs.Float64Var(&f.marginBottom, "margin-bottom", marginSentinel, "bottom margin in inches (0-3)")
	fs.Float64Var(&f.marginLeft, "margin-left", marginSentinel, "left margin in inches (0-3)")
	fs.BoolVar(&f.landscape, "landscape", false, "landscape orientation")
	fs.BoolVar(&f.noBackground, "no-background", false, "skip printing CSS backgrounds")
	fs.BoolVar(&f.noPreferCSSPageSize, "no-prefer-css-page-size", false, "ignore @page size rules")
}

// addViewportFlags registers browser viewport flags.
func addViewportFlags(fs *flag.FlagSet, f *viewportFlags) {
	fs.IntVar(&f.width, "viewport-width", 0, "viewport width in pixels")
	fs.IntVar(&f.height, "viewport-height", 0, "viewport height in pixels")
}

// addWaitFlags registers navigation timing flags.
func addWaitFlags(fs *flag.FlagSet, f *waitFlags) {
	fs.StringVarP(&f.timeout, "timeout", "t", "", "page load timeout (e.g. 30s, 2m)")
	fs.BoolVar(&f.noWaitNetwork, "no-wait-network", false, "print after the load event instead of network idle")
}

// addCommonFlags registers flags shared by most invocations.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// parseFlags parses command-line arguments into convertFlags.
// args excludes the program name. Returns the parsed flags, any
// positional arguments, and the parse error.
func parseFlags(args []string) (*convertFlags, []string, error) {
	f := &convertFlags{}
	fs := flag.NewFlagSet("web2pdf", flag.ContinueOnError)
	fs.SortFlags = false
	fs.Usage = func() {
		printUsage(os.Stderr)
	}

	addIOFlags(fs, &f.io)
	addPageFlags(fs, &f.page)
	addViewportFlags(fs, &f.viewport)
	addWaitFlags(fs, &f.wait)
	addCommonFlags(fs, &f.common)

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
