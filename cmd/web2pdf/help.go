package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: web2pdf -i <url> -o <output.pdf> [flags]")
	fmt.Fprintln(w, "       web2pdf <command> [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert a web page to PDF using a headless browser.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  version     Show version information")
	fmt.Fprintln(w, "  doctor      Check the conversion environment")
	fmt.Fprintln(w, "  completion  Generate shell completion script")
	fmt.Fprintln(w, "  help        Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -i, --url <url>           Source page URL (http or https)")
	fmt.Fprintln(w, "  -o, --output <path>       Output PDF path")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Page:")
	fmt.Fprintln(w, "  -f, --format <s>          Paper format: letter, legal, tabloid, ledger, a0-a6")
	fmt.Fprintln(w, "      --scale <f>           Render scale (0.1-2.0)")
	fmt.Fprintln(w, "      --margin-top <f>      Top margin in inches (0-3)")
	fmt.Fprintln(w, "      --margin-right <f>    Right margin in inches (0-3)")
	fmt.Fprintln(w, "      --margin-bottom <f>   Bottom margin in inches (0-3)")
	fmt.Fprintln(w, "      --margin-left <f>     Left margin in inches (0-3)")
	fmt.Fprintln(w, "      --landscape           Landscape orientation")
	fmt.Fprintln(w, "      --no-background       Skip printing CSS backgrounds")
	fmt.Fprintln(w, "      --no-prefer-css-page-size")
	fmt.Fprintln(w, "                            Ignore @page size rules in the page's CSS")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Viewport:")
	fmt.Fprintln(w, "      --viewport-width <n>  Viewport width in pixels")
	fmt.Fprintln(w, "      --viewport-height <n> Viewport height in pixels")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Timing:")
	fmt.Fprintln(w, "  -t, --timeout <dur>       Page load timeout, e.g. 30s or 2m")
	fmt.Fprintln(w, "      --no-wait-network     Print after the load event instead of network idle")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'web2pdf help <command>' for details on a specific command.")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: web2pdf version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "doctor":
		fmt.Fprintln(env.Stdout, "Usage: web2pdf doctor [--json]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Check that Chrome, the environment, and the filesystem are")
		fmt.Fprintln(env.Stdout, "ready for conversion. Use --json for machine-readable output.")
	case "completion":
		printCompletionUsage(env.Stdout)
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: web2pdf help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
