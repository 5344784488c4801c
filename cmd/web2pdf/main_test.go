package main

// Notes:
// - run() is tested only on paths that never reach a real browser: command
//   dispatch, flag errors, and validation failures. Conversion success is
//   covered in convert_test.go through the factory seam.
// - The version test relies on the default "dev" value; builds that override
//   it via ldflags run tests from source where the default applies.

import (
	"bytes"
	"strings"
	"testing"

	web2pdf "github.com/alnah/go-web2pdf"
)

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	env := &Environment{
		Now:    DefaultEnv().Now,
		Stdout: &stdout,
		Stderr: &stderr,
	}

	code := run(append([]string{"web2pdf"}, args...), env)
	return code, stdout.String(), stderr.String()
}

// ---------------------------------------------------------------------------
// TestRun - Command dispatch
// ---------------------------------------------------------------------------

func TestRunVersion(t *testing.T) {
	code, stdout, _ := runCLI(t, "version")

	if code != ExitSuccess {
		t.Errorf("exit code = %d, want %d", code, ExitSuccess)
	}
	if !strings.Contains(stdout, "web2pdf dev") {
		t.Errorf("stdout = %q, want version line", stdout)
	}
}

func TestRunHelpCommand(t *testing.T) {
	code, stdout, _ := runCLI(t, "help")

	if code != ExitSuccess {
		t.Errorf("exit code = %d, want %d", code, ExitSuccess)
	}
	if !strings.Contains(stdout, "Usage: web2pdf") {
		t.Errorf("stdout = %q, want usage text", stdout)
	}
}

func TestRunHelpTopic(t *testing.T) {
	code, stdout, _ := runCLI(t, "help", "doctor")

	if code != ExitSuccess {
		t.Errorf("exit code = %d, want %d", code, ExitSuccess)
	}
	if !strings.Contains(stdout, "Usage: web2pdf doctor") {
		t.Errorf("stdout = %q, want doctor help", stdout)
	}
}

func TestRunCompletionCommand(t *testing.T) {
	code, stdout, _ := runCLI(t, "completion", "bash")

	if code != ExitSuccess {
		t.Errorf("exit code = %d, want %d", code, ExitSuccess)
	}
	if !strings.Contains(stdout, "_web2pdf_completions") {
		t.Errorf("stdout = %q, want bash completion script", stdout)
	}
}

func TestRunCompletionUnsupportedShell(t *testing.T) {
	code, _, stderr := runCLI(t, "completion", "tcsh")

	if code != ExitUsage {
		t.Errorf("exit code = %d, want %d", code, ExitUsage)
	}
	if !strings.Contains(stderr, "Error:") {
		t.Errorf("stderr = %q, want error message", stderr)
	}
}

func TestRunUnknownCommand(t *testing.T) {
	code, _, stderr := runCLI(t, "frobnicate")

	if code != ExitUsage {
		t.Errorf("exit code = %d, want %d", code, ExitUsage)
	}
	if !strings.Contains(stderr, "Unknown command: frobnicate") {
		t.Errorf("stderr = %q, want unknown command report", stderr)
	}
	if !strings.Contains(stderr, "Usage: web2pdf") {
		t.Errorf("stderr = %q, want usage text", stderr)
	}
}

// ---------------------------------------------------------------------------
// TestRun - Flag handling
// ---------------------------------------------------------------------------

func TestRunHelpFlag(t *testing.T) {
	code, _, _ := runCLI(t, "--help")

	if code != ExitSuccess {
		t.Errorf("exit code = %d, want %d", code, ExitSuccess)
	}
}

func TestRunUnknownFlag(t *testing.T) {
	code, _, stderr := runCLI(t, "--frobnicate")

	if code != ExitUsage {
		t.Errorf("exit code = %d, want %d", code, ExitUsage)
	}
	if !strings.Contains(stderr, "Error:") {
		t.Errorf("stderr = %q, want error message", stderr)
	}
}

func TestRunMissingURL(t *testing.T) {
	clearEnvOverrides(t)

	code, _, stderr := runCLI(t, "-o", "out.pdf")

	if code != ExitUsage {
		t.Errorf("exit code = %d, want %d", code, ExitUsage)
	}
	if !strings.Contains(stderr, "no URL specified") {
		t.Errorf("stderr = %q, want missing URL report", stderr)
	}
}

func TestRunMissingOutput(t *testing.T) {
	clearEnvOverrides(t)

	code, _, stderr := runCLI(t, "-i", "https://example.com")

	if code != ExitUsage {
		t.Errorf("exit code = %d, want %d", code, ExitUsage)
	}
	if !strings.Contains(stderr, "no output path specified") {
		t.Errorf("stderr = %q, want missing output report", stderr)
	}
}

// ---------------------------------------------------------------------------
// TestPrintError - Hints
// ---------------------------------------------------------------------------

func TestPrintErrorWithHint(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printError(&buf, web2pdf.ErrNavigation)

	out := buf.String()
	if !strings.Contains(out, "Error: ") {
		t.Errorf("output = %q, want Error prefix", out)
	}
	if !strings.Contains(out, "hint:") {
		t.Errorf("output = %q, want hint line", out)
	}
}

func TestPrintErrorWithoutHint(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printError(&buf, ErrNoOutput)

	out := buf.String()
	if !strings.Contains(out, "Error: ") {
		t.Errorf("output = %q, want Error prefix", out)
	}
	if strings.Contains(out, "hint:") {
		t.Errorf("output = %q, unexpected hint", out)
	}
}

func TestHintFor(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantPart string
	}{
		{"navigation", web2pdf.ErrNavigation, "regular browser"},
		{"timeout", web2pdf.ErrPageTimeout, "--timeout"},
		{"output dir", ErrOutputDir, "parent directory"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hint := hintFor(tt.err)
			if !strings.Contains(hint, tt.wantPart) {
				t.Errorf("hintFor(%v) = %q, want mention of %q", tt.err, hint, tt.wantPart)
			}
		})
	}

	t.Run("browser connect suggests custom chrome", func(t *testing.T) {
		t.Setenv("ROD_BROWSER_BIN", "")

		hint := hintFor(web2pdf.ErrBrowserConnect)
		if !strings.Contains(hint, "ROD_BROWSER_BIN") {
			t.Errorf("hintFor(ErrBrowserConnect) = %q, want ROD_BROWSER_BIN suggestion", hint)
		}
	})

	t.Run("unknown error has no hint", func(t *testing.T) {
		if hint := hintFor(ErrNoURL); hint != "" {
			t.Errorf("hintFor(ErrNoURL) = %q, want empty", hint)
		}
	})
}
