package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"

	web2pdf "github.com/alnah/go-web2pdf"
	"github.com/alnah/go-web2pdf/internal/config"
	"github.com/alnah/go-web2pdf/internal/hints"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	os.Exit(run(os.Args, DefaultEnv()))
}

// run dispatches commands and returns the process exit code.
// Conversion is the default action; auxiliary commands are handled first.
func run(args []string, env *Environment) int {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	if len(args) > 1 {
		switch args[1] {
		case "version":
			fmt.Fprintf(env.Stdout, "web2pdf %s\n", Version)
			return ExitSuccess
		case "help":
			runHelp(args[2:], env)
			return ExitSuccess
		case "doctor":
			return runDoctorCmd(args[2:], env)
		case "completion":
			if err := runCompletion(args[2:], env); err != nil {
				printError(env.Stderr, err)
				return exitCodeFor(err)
			}
			return ExitSuccess
		}
	}

	flags, positional, err := parseFlags(args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		printError(env.Stderr, err)
		return ExitUsage
	}
	if len(positional) > 0 {
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", positional[0])
		printUsage(env.Stderr)
		return ExitUsage
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	if err := runConvert(ctx, flags, env, defaultServiceFactory); err != nil {
		printError(env.Stderr, err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// printError writes the error with an actionable hint when one applies.
func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
	if hint := hintFor(err); hint != "" {
		fmt.Fprintln(w, hint)
	}
}

// hintFor maps known failures to recovery hints.
func hintFor(err error) string {
	switch {
	case errors.Is(err, web2pdf.ErrBrowserConnect):
		return hints.ForBrowserConnect()
	case errors.Is(err, web2pdf.ErrNavigation):
		return hints.ForNavigation()
	case errors.Is(err, web2pdf.ErrPageTimeout):
		return hints.ForTimeout()
	case errors.Is(err, ErrOutputDir):
		return hints.ForOutputDirectory()
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(nil)
	}
	return ""
}
