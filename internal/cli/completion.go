package cli

import (
	"fmt"
	"io"
	"strings"
)

// FlagCompletion describes a CLI flag for shell completion generation.
// Every shell generator reads flagRegistry, so a new flag only needs an entry
// there.
type FlagCompletion struct {
	Long      string   // long flag name without "--" (e.g., "help")
	Short     string   // short flag without "-" (e.g., "h")
	Help      string   // description text
	Values    []string // suggested completion values (nil = boolean/no suggestions)
	ValueName string   // label for the value in zsh (e.g., "number", "duration")
	IsFile    bool     // true if the flag takes a file path
	IsType    bool     // true if values come from the numeric kind registry
	Section   string   // fish comment section
}

var flagRegistry = []FlagCompletion{
	{Long: "help", Short: "h", Help: "Show help message", Section: "Help and version"},
	{Long: "version", Short: "V", Help: "Show version information", Section: "Help and version"},
	{Short: "n", Help: "Index of the term to look up", ValueName: "number", Section: "Lookup"},
	{Long: "type", Help: "Numeric type", IsType: true, ValueName: "type", Section: "Lookup"},
	{Long: "start", Help: "First index in sequence mode", ValueName: "number", Section: "Lookup"},
	{Long: "count", Help: "Number of terms in sequence mode", ValueName: "number", Section: "Lookup"},
	{Long: "timeout", Help: "Maximum execution time", Values: []string{"1s", "10s", "1m", "5m"}, ValueName: "duration", Section: "Lookup"},
	{Long: "limits", Help: "Print the capacity of every bounded type", Section: "Modes"},
	{Long: "interactive", Help: "Start the interactive REPL", Section: "Modes"},
	{Long: "details", Short: "d", Help: "Show duration and memory details", Section: "Output"},
	{Long: "quiet", Short: "q", Help: "Quiet mode for scripts", Section: "Output"},
	{Long: "output", Short: "o", Help: "Output file path", IsFile: true, ValueName: "file", Section: "Output"},
	{Long: "no-color", Help: "Disable colored output", Section: "Output"},
	{Long: "debug", Help: "Enable debug logging", Section: "Output"},
	{Long: "metrics", Help: "Print Prometheus metrics after the run", Section: "Output"},
	{Long: "completion", Help: "Generate completion script", Values: []string{"bash", "zsh", "fish", "powershell"}, ValueName: "shell", Section: "Completion"},
}

// GenerateCompletion generates a shell completion script for the specified shell.
//
// Parameters:
//   - out: The writer to output the completion script.
//   - shell: The shell type ("bash", "zsh", "fish", "powershell").
//   - types: Registered numeric kind names, offered as -type values.
//
// Returns:
//   - error: An error if the shell is not supported.
func GenerateCompletion(out io.Writer, shell string, types []string) error {
	var script string
	switch shell {
	case "bash":
		script = bashCompletion(types)
	case "zsh":
		script = zshCompletion(types)
	case "fish":
		script = fishCompletion(types)
	case "powershell", "ps":
		script = powerShellCompletion(types)
	default:
		return fmt.Errorf("unsupported shell: %s (accepted values: bash, zsh, fish, powershell)", shell)
	}
	if _, err := io.WriteString(out, script); err != nil {
		return fmt.Errorf("completion %s generation failed: %w", shell, err)
	}
	return nil
}

// flagNames returns the dashed spellings of f, long form first.
func flagNames(f FlagCompletion) []string {
	var names []string
	if f.Long != "" {
		names = append(names, "--"+f.Long)
	}
	if f.Short != "" {
		names = append(names, "-"+f.Short)
	}
	return names
}

func bashCompletion(types []string) string {
	var opts []string
	for _, f := range flagRegistry {
		opts = append(opts, flagNames(f)...)
	}

	var cases strings.Builder
	writeCase := func(patterns []string, body string) {
		fmt.Fprintf(&cases, "        %s)\n            %s\n            return 0\n            ;;\n",
			strings.Join(patterns, "|"), body)
	}
	var filePatterns []string
	for _, f := range flagRegistry {
		switch {
		case f.IsType:
			writeCase(flagNames(f), `COMPREPLY=( $(compgen -W "${types}" -- "${cur}") )`)
		case f.IsFile:
			filePatterns = append(filePatterns, flagNames(f)...)
		case len(f.Values) > 0:
			writeCase(flagNames(f), fmt.Sprintf(`COMPREPLY=( $(compgen -W "%s" -- "${cur}") )`, strings.Join(f.Values, " ")))
		}
	}
	if len(filePatterns) > 0 {
		writeCase(filePatterns, `COMPREPLY=( $(compgen -f -- "${cur}") )`)
	}

	return fmt.Sprintf(`# Bash completion script for fibs
# Add this to your ~/.bashrc or ~/.bash_completion

_fibs_completions() {
    local cur prev opts types
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    opts="%s"
    types="%s"

    case "${prev}" in
%s    esac

    if [[ "${cur}" == -* ]]; then
        COMPREPLY=( $(compgen -W "${opts}" -- "${cur}") )
        return 0
    fi
}

complete -F _fibs_completions fibs
`, strings.Join(opts, " "), strings.Join(types, " "), cases.String())
}

func zshCompletion(types []string) string {
	args := make([]string, 0, len(flagRegistry))
	for _, f := range flagRegistry {
		args = append(args, zshArgEntry(f))
	}

	return fmt.Sprintf(`#compdef fibs

# Zsh completion script for fibs
# Place this file in a directory of your $fpath

_fibs() {
    local -a types
    types=(%s)

    _arguments -s \
%s
}

_fibs "$@"
`, strings.Join(types, " "), strings.Join(args, " \\\n"))
}

// zshArgEntry formats a single FlagCompletion as a zsh _arguments entry.
func zshArgEntry(f FlagCompletion) string {
	valueSuffix := ""
	switch {
	case f.IsFile:
		valueSuffix = fmt.Sprintf(":%s:_files", f.ValueName)
	case f.IsType:
		valueSuffix = fmt.Sprintf(":%s:($types)", f.ValueName)
	case len(f.Values) > 0:
		valueSuffix = fmt.Sprintf(":%s:(%s)", f.ValueName, strings.Join(f.Values, " "))
	case f.ValueName != "":
		valueSuffix = fmt.Sprintf(":%s:", f.ValueName)
	}

	if f.Long != "" && f.Short != "" {
		return fmt.Sprintf("        '(-%s --%s)'{-%s,--%s}'[%s]%s'",
			f.Short, f.Long, f.Short, f.Long, f.Help, valueSuffix)
	}
	if f.Long != "" {
		return fmt.Sprintf("        '--%s[%s]%s'", f.Long, f.Help, valueSuffix)
	}
	return fmt.Sprintf("        '-%s[%s]%s'", f.Short, f.Help, valueSuffix)
}

func fishCompletion(types []string) string {
	lines := []string{
		"# Fish completion script for fibs",
		"# Add this to ~/.config/fish/completions/fibs.fish",
		"",
		"complete -c fibs -f",
	}

	section := ""
	for _, f := range flagRegistry {
		if f.Section != section {
			section = f.Section
			lines = append(lines, "", "# "+section)
		}
		lines = append(lines, fishCompleteLine(f, strings.Join(types, " ")))
	}
	return strings.Join(lines, "\n") + "\n"
}

// fishCompleteLine formats a single FlagCompletion as a fish complete command.
func fishCompleteLine(f FlagCompletion, typeList string) string {
	parts := []string{"complete -c fibs"}
	if f.Short != "" {
		parts = append(parts, "-s "+f.Short)
	}
	if f.Long != "" {
		parts = append(parts, "-l "+f.Long)
	}
	parts = append(parts, fmt.Sprintf("-d '%s'", f.Help))

	switch {
	case f.IsFile:
		parts = append(parts, "-rF")
	case f.IsType:
		parts = append(parts, fmt.Sprintf("-xa '%s'", typeList))
	case len(f.Values) > 0:
		parts = append(parts, fmt.Sprintf("-xa '%s'", strings.Join(f.Values, " ")))
	case f.ValueName != "":
		parts = append(parts, "-x")
	}
	return strings.Join(parts, " ")
}

func powerShellCompletion(types []string) string {
	var options []string
	for _, f := range flagRegistry {
		for _, name := range flagNames(f) {
			options = append(options, fmt.Sprintf("        @{Name = '%s'; Description = '%s' }", name, f.Help))
		}
	}

	quote := func(vals []string) string {
		quoted := make([]string, len(vals))
		for i, v := range vals {
			quoted[i] = "'" + v + "'"
		}
		return strings.Join(quoted, ", ")
	}

	var switches []string
	for _, f := range flagRegistry {
		vals := f.Values
		if f.IsType {
			vals = types
		}
		if len(vals) == 0 || f.Long == "" {
			continue
		}
		switches = append(switches, fmt.Sprintf(`        '--%s' {
            @(%s) | Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
                [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
            }
            return
        }`, f.Long, quote(vals)))
	}

	return fmt.Sprintf(`# PowerShell completion script for fibs
# Add this to your $PROFILE

Register-ArgumentCompleter -CommandName 'fibs' -Native -ScriptBlock {
    param($wordToComplete, $commandAst, $cursorPosition)

    $options = @(
%s
    )

    $elements = $commandAst.CommandElements
    $prevElement = if ($elements.Count -gt 2) { $elements[-2].ToString() } else { '' }

    switch ($prevElement) {
%s
    }

    $options | Where-Object { $_.Name -like "$wordToComplete*" } | ForEach-Object {
        [System.Management.Automation.CompletionResult]::new($_.Name, $_.Name, 'ParameterName', $_.Description)
    }
}
`, strings.Join(options, "\n"), strings.Join(switches, "\n"))
}
