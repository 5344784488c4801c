package main

import (
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"

	web2pdf "github.com/alnah/go-web2pdf"
)

// Shell represents a supported shell for completion generation.
type Shell string

// Supported shells for completion.
const (
	ShellBash       Shell = "bash"
	ShellZsh        Shell = "zsh"
	ShellFish       Shell = "fish"
	ShellPowerShell Shell = "powershell"
)

// ErrUnsupportedShell is returned when an unknown shell is requested.
var ErrUnsupportedShell = fmt.Errorf("unsupported shell")

// flagType represents the completion type for a flag.
type flagType int

const (
	flagString flagType = iota // default
	flagBool
	flagInt
	flagFloat
	flagEnum // has predefined values
	flagFile // file with glob pattern
)

// flagDef describes a flag for completion purposes.
type flagDef struct {
	Long     string   // --output
	Short    string   // -o (empty if none)
	Type     flagType // completion type
	Desc     string   // help text
	Values   []string // for enum flags
	FileGlob string   // for file flags
}

// commandDef describes a command for completion.
type commandDef struct {
	Name  string
	Desc  string
	Flags []flagDef
	Args  []string // fixed positional argument values, if any
}

// completionMeta holds completion-specific metadata for flags.
// This is the ONLY place where completion hints are defined.
// Flag names, types, and descriptions come from the FlagSet.
type completionMeta struct {
	Values   []string // enum values
	FileGlob string   // file glob pattern
}

// flagCompletionMeta maps flag names to their completion metadata.
var flagCompletionMeta = map[string]completionMeta{
	// Enum flags
	"format": {Values: web2pdf.Formats()},

	// File flags with glob patterns
	"config": {FileGlob: "*.yaml,*.yml"},
	"output": {FileGlob: "*.pdf"},
}

// buildConvertFlagSet creates a FlagSet with all conversion flags.
// This reuses the same flag registration as parseFlags.
func buildConvertFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("web2pdf", flag.ContinueOnError)
	f := &convertFlags{}

	addIOFlags(fs, &f.io)
	addPageFlags(fs, &f.page)
	addViewportFlags(fs, &f.viewport)
	addWaitFlags(fs, &f.wait)
	addCommonFlags(fs, &f.common)

	return fs
}

// extractFlagsFromFlagSet extracts flag definitions from a pflag.FlagSet.
// Enriches with completion metadata from flagCompletionMeta.
func extractFlagsFromFlagSet(fs *flag.FlagSet) []flagDef {
	var flags []flagDef

	fs.VisitAll(func(f *flag.Flag) {
		fd := flagDef{
			Long:  f.Name,
			Short: f.Shorthand,
			Desc:  f.Usage,
		}

		// Determine base type from pflag type
		switch f.Value.Type() {
		case "bool":
			fd.Type = flagBool
		case "int", "int8", "int16", "int32", "int64", "uint", "uint8", "uint16", "uint32", "uint64":
			fd.Type = flagInt
		case "float32", "float64":
			fd.Type = flagFloat
		default:
			fd.Type = flagString
		}

		// Override type based on completion metadata
		if meta, ok := flagCompletionMeta[f.Name]; ok {
			if len(meta.Values) > 0 {
				fd.Type = flagEnum
				fd.Values = meta.Values
			} else if meta.FileGlob != "" {
				fd.Type = flagFile
				fd.FileGlob = meta.FileGlob
			}
		}

		flags = append(flags, fd)
	})

	return flags
}

// getConvertFlags returns the top-level conversion flags.
// Flags are extracted from the actual FlagSet - single source of truth.
func getConvertFlags() []flagDef {
	return extractFlagsFromFlagSet(buildConvertFlagSet())
}

// getCommands returns the command registry for completion.
func getCommands() []commandDef {
	return []commandDef{
		{
			Name: "version",
			Desc: "Show version information",
		},
		{
			Name:  "doctor",
			Desc:  "Check the conversion environment",
			Flags: []flagDef{{Long: "json", Type: flagBool, Desc: "machine-readable output"}},
		},
		{
			Name: "completion",
			Desc: "Generate shell completion script",
			Args: []string{"bash", "zsh", "fish", "powershell"},
		},
		{
			Name: "help",
			Desc: "Show help for a command",
			Args: []string{"version", "doctor", "completion", "help"},
		},
	}
}

// GenerateCompletion writes shell completion script to w.
// Returns error if shell is unsupported or write fails.
func GenerateCompletion(w io.Writer, shell Shell) error {
	switch shell {
	case ShellBash:
		return generateBash(w)
	case ShellZsh:
		return generateZsh(w)
	case ShellFish:
		return generateFish(w)
	case ShellPowerShell:
		return generatePowerShell(w)
	default:
		return fmt.Errorf("%w: %q (supported: bash, zsh, fish, powershell)", ErrUnsupportedShell, shell)
	}
}

// runCompletion handles the completion command.
func runCompletion(args []string, env *Environment) error {
	if len(args) == 0 {
		printCompletionUsage(env.Stdout)
		return nil
	}

	shell := Shell(args[0])
	return GenerateCompletion(env.Stdout, shell)
}

// printCompletionUsage prints help for the completion command.
func printCompletionUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: web2pdf completion <shell>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate shell completion script for the specified shell.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Supported shells:")
	fmt.Fprintln(w, "  bash        Bash completion script")
	fmt.Fprintln(w, "  zsh         Zsh completion script")
	fmt.Fprintln(w, "  fish        Fish completion script")
	fmt.Fprintln(w, "  powershell  PowerShell completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Installation:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Bash:")
	fmt.Fprintln(w, "    # Add to ~/.bashrc:")
	fmt.Fprintln(w, "    eval \"$(web2pdf completion bash)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Zsh:")
	fmt.Fprintln(w, "    # Add to ~/.zshrc (before compinit):")
	fmt.Fprintln(w, "    eval \"$(web2pdf completion zsh)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Fish:")
	fmt.Fprintln(w, "    web2pdf completion fish > ~/.config/fish/completions/web2pdf.fish")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  PowerShell:")
	fmt.Fprintln(w, "    # Add to $PROFILE:")
	fmt.Fprintln(w, "    web2pdf completion powershell | Out-String | Invoke-Expression")
}

// flagWords returns the words offered when completing a flag position.
func flagWords(flags []flagDef) []string {
	var words []string
	for _, f := range flags {
		words = append(words, "--"+f.Long)
		if f.Short != "" {
			words = append(words, "-"+f.Short)
		}
	}
	return words
}

// casePattern builds a bash case pattern matching a flag's spellings.
func casePattern(f flagDef) string {
	if f.Short != "" {
		return "--" + f.Long + "|-" + f.Short
	}
	return "--" + f.Long
}

// generateBash writes a bash completion script.
func generateBash(w io.Writer) error {
	flags := getConvertFlags()
	commands := getCommands()

	var cmdNames []string
	for _, c := range commands {
		cmdNames = append(cmdNames, c.Name)
	}

	var b strings.Builder
	b.WriteString("# bash completion for web2pdf\n\n")
	b.WriteString("_web2pdf_completions() {\n")
	b.WriteString("    local cur prev cmd\n")
	b.WriteString("    COMPREPLY=()\n")
	b.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n")
	b.WriteString("    cmd=\"\"\n")
	b.WriteString("    if [[ ${COMP_CWORD} -gt 1 ]]; then\n")
	b.WriteString("        cmd=\"${COMP_WORDS[1]}\"\n")
	b.WriteString("    fi\n\n")

	// Subcommand arguments and flags
	b.WriteString("    case \"${cmd}\" in\n")
	for _, c := range commands {
		words := append([]string{}, c.Args...)
		words = append(words, flagWords(c.Flags)...)
		fmt.Fprintf(&b, "        %s)\n", c.Name)
		if len(words) > 0 {
			fmt.Fprintf(&b, "            COMPREPLY=( $(compgen -W \"%s\" -- \"${cur}\") )\n", strings.Join(words, " "))
		}
		b.WriteString("            return 0\n")
		b.WriteString("            ;;\n")
	}
	b.WriteString("    esac\n\n")

	// Flag value completion
	b.WriteString("    case \"${prev}\" in\n")
	for _, f := range flags {
		switch f.Type {
		case flagEnum:
			fmt.Fprintf(&b, "        %s)\n", casePattern(f))
			fmt.Fprintf(&b, "            COMPREPLY=( $(compgen -W \"%s\" -- \"${cur}\") )\n", strings.Join(f.Values, " "))
			b.WriteString("            return 0\n")
			b.WriteString("            ;;\n")
		case flagFile:
			fmt.Fprintf(&b, "        %s)\n", casePattern(f))
			b.WriteString("            COMPREPLY=( $(compgen -f -- \"${cur}\") )\n")
			b.WriteString("            return 0\n")
			b.WriteString("            ;;\n")
		}
	}
	b.WriteString("    esac\n\n")

	// First word: commands or flags
	b.WriteString("    if [[ ${COMP_CWORD} -eq 1 && \"${cur}\" != -* ]]; then\n")
	fmt.Fprintf(&b, "        COMPREPLY=( $(compgen -W \"%s\" -- \"${cur}\") )\n", strings.Join(cmdNames, " "))
	b.WriteString("        return 0\n")
	b.WriteString("    fi\n\n")

	// Anywhere else: flags
	fmt.Fprintf(&b, "    COMPREPLY=( $(compgen -W \"%s\" -- \"${cur}\") )\n", strings.Join(flagWords(flags), " "))
	b.WriteString("    return 0\n")
	b.WriteString("}\n\n")
	b.WriteString("complete -F _web2pdf_completions web2pdf\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// generateZsh writes a zsh completion script.
func generateZsh(w io.Writer) error {
	flags := getConvertFlags()
	commands := getCommands()

	var b strings.Builder
	b.WriteString("#compdef web2pdf\n")
	b.WriteString("# zsh completion for web2pdf\n\n")
	b.WriteString("_web2pdf() {\n")
	b.WriteString("    local -a commands\n")
	b.WriteString("    commands=(\n")
	for _, c := range commands {
		fmt.Fprintf(&b, "        '%s:%s'\n", c.Name, c.Desc)
	}
	b.WriteString("    )\n\n")

	b.WriteString("    _arguments -C \\\n")
	for _, f := range flags {
		b.WriteString("        ")
		b.WriteString(zshFlagSpec(f))
		b.WriteString(" \\\n")
	}
	b.WriteString("        '1:command:->cmds' \\\n")
	b.WriteString("        '*::arg:->args'\n\n")

	b.WriteString("    case $state in\n")
	b.WriteString("        cmds)\n")
	b.WriteString("            _describe 'command' commands\n")
	b.WriteString("            ;;\n")
	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	b.WriteString("_web2pdf \"$@\"\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// zshFlagSpec builds a single _arguments spec for a flag.
func zshFlagSpec(f flagDef) string {
	var action string
	switch f.Type {
	case flagBool:
		action = ""
	case flagEnum:
		action = ":value:(" + strings.Join(f.Values, " ") + ")"
	case flagFile:
		action = ":file:_files"
	default:
		action = ":value:"
	}

	if f.Short != "" {
		return fmt.Sprintf("'(-%s --%s)'{-%s,--%s}'[%s]%s'", f.Short, f.Long, f.Short, f.Long, f.Desc, action)
	}
	return fmt.Sprintf("'--%s[%s]%s'", f.Long, f.Desc, action)
}

// generateFish writes a fish completion script.
func generateFish(w io.Writer) error {
	flags := getConvertFlags()
	commands := getCommands()

	var cmdNames []string
	for _, c := range commands {
		cmdNames = append(cmdNames, c.Name)
	}

	var b strings.Builder
	b.WriteString("# fish completion for web2pdf\n\n")
	b.WriteString("function __fish_web2pdf_needs_command\n")
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -eq 1\n")
	b.WriteString("end\n\n")
	b.WriteString("function __fish_web2pdf_using_command\n")
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -gt 1; and test $cmd[2] = $argv[1]\n")
	b.WriteString("end\n\n")
	b.WriteString("function __fish_web2pdf_no_subcommand\n")
	b.WriteString("    set -l cmd (commandline -opc)\n")
	fmt.Fprintf(&b, "    for c in %s\n", strings.Join(cmdNames, " "))
	b.WriteString("        if contains -- $c $cmd\n")
	b.WriteString("            return 1\n")
	b.WriteString("        end\n")
	b.WriteString("    end\n")
	b.WriteString("    return 0\n")
	b.WriteString("end\n\n")

	for _, c := range commands {
		fmt.Fprintf(&b, "complete -c web2pdf -n __fish_web2pdf_needs_command -a %s -d '%s'\n", c.Name, c.Desc)
	}
	b.WriteString("\n")
	for _, c := range commands {
		if len(c.Args) > 0 {
			fmt.Fprintf(&b, "complete -c web2pdf -n '__fish_web2pdf_using_command %s' -x -a '%s'\n", c.Name, strings.Join(c.Args, " "))
		}
		for _, f := range c.Flags {
			fmt.Fprintf(&b, "complete -c web2pdf -n '__fish_web2pdf_using_command %s' -l %s -d '%s'\n", c.Name, f.Long, f.Desc)
		}
	}
	b.WriteString("\n")

	for _, f := range flags {
		fmt.Fprintf(&b, "complete -c web2pdf -n __fish_web2pdf_no_subcommand -l %s", f.Long)
		if f.Short != "" {
			fmt.Fprintf(&b, " -s %s", f.Short)
		}
		fmt.Fprintf(&b, " -d '%s'", f.Desc)
		switch f.Type {
		case flagBool:
			// no argument
		case flagEnum:
			fmt.Fprintf(&b, " -x -a '%s'", strings.Join(f.Values, " "))
		default:
			b.WriteString(" -r")
		}
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// generatePowerShell writes a PowerShell completion script.
func generatePowerShell(w io.Writer) error {
	flags := getConvertFlags()
	commands := getCommands()

	var b strings.Builder
	b.WriteString("# powershell completion for web2pdf\n\n")
	b.WriteString("Register-ArgumentCompleter -Native -CommandName web2pdf -ScriptBlock {\n")
	b.WriteString("    param($wordToComplete, $commandAst, $cursorPosition)\n\n")
	b.WriteString("    $completions = @(\n")
	for _, c := range commands {
		fmt.Fprintf(&b, "        [System.Management.Automation.CompletionResult]::new('%s', '%s', 'ParameterValue', '%s')\n", c.Name, c.Name, c.Desc)
	}
	for _, f := range flags {
		long := "--" + f.Long
		fmt.Fprintf(&b, "        [System.Management.Automation.CompletionResult]::new('%s', '%s', 'ParameterName', '%s')\n", long, long, f.Desc)
	}
	b.WriteString("    )\n\n")
	b.WriteString("    $completions | Where-Object { $_.CompletionText -like \"$wordToComplete*\" }\n")
	b.WriteString("}\n")

	_, err := io.WriteString(w, b.String())
	return err
}
