// Package config provides the configuration management for the fibs
// application. It defines the data structure for the configuration, handles
// the parsing of command-line arguments and FIBS_* environment variables, and
// performs validation on the configuration values.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	apperrors "github.com/agbru/fibs/internal/errors"
	"github.com/agbru/fibs/internal/fibonacci"
)

const (
	// EnvPrefix is the prefix for all environment variables used by fibs.
	EnvPrefix = "FIBS_"
)

// Default configuration values.
// These can be overridden via command-line flags or environment variables.
const (
	// DefaultN is the default Fibonacci index to look up.
	DefaultN uint64 = 93
	// DefaultTimeout is the default execution timeout.
	DefaultTimeout = time.Minute
	// DefaultType is the default numeric type.
	DefaultType = fibonacci.DefaultKind
)

// ErrInvalidConfig is returned by ParseConfig when validation fails. The
// validation message has already been written to the error writer.
var ErrInvalidConfig = errors.New("invalid configuration")

// SupportedShells lists the values accepted by -completion.
var SupportedShells = []string{"bash", "zsh", "fish", "powershell"}

// AppConfig aggregates the application's configuration parameters, parsed from
// command-line flags and the environment.
type AppConfig struct {
	// N is the index of the Fibonacci number to look up.
	N uint64
	// Type is the name of the numeric kind to compute with.
	Type string
	// Start is the first index printed in sequence mode.
	Start uint64
	// Count, when non-zero, selects sequence mode and sets how many terms
	// are printed.
	Count uint64
	// Limits selects the capacity table mode.
	Limits bool
	// Interactive, if true, starts the application in REPL mode.
	Interactive bool
	// Timeout sets the maximum duration of a run.
	Timeout time.Duration
	// Quiet mode - minimal output for scripting purposes.
	Quiet bool
	// Details, if true, prints the duration and a memory snapshot.
	Details bool
	// Debug enables debug-level logging on stderr.
	Debug bool
	// NoColor, if true, disables all color output in the CLI.
	// Also respects the NO_COLOR environment variable.
	NoColor bool
	// Metrics, if true, dumps the Prometheus text exposition after the run.
	Metrics bool
	// OutputFile, if specified, saves the lookup result to this file path.
	OutputFile string
	// Completion, if set, generates shell completion script for the specified shell.
	Completion string
}

// Validate checks the semantic consistency of the configuration parameters.
//
// Parameters:
//   - availableTypes: The names of the registered numeric kinds.
//
// Returns:
//   - error: A ValidationError for an unknown type, a ConfigError for any
//     other invalid setting, nil otherwise.
func (c AppConfig) Validate(availableTypes []string) error {
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("timeout value must be strictly positive")
	}
	if !slices.Contains(availableTypes, c.Type) {
		return apperrors.ValidationError{
			Field:   "type",
			Message: fmt.Sprintf("unrecognized numeric type '%s', valid types are [%s]",
				c.Type, strings.Join(availableTypes, ", ")),
		}
	}
	if c.Completion != "" && !slices.Contains(SupportedShells, c.Completion) {
		return apperrors.NewConfigError("unsupported shell for completion: '%s'. Valid shells are: [%s]",
			c.Completion, strings.Join(SupportedShells, ", "))
	}
	if c.Quiet && c.Details {
		return apperrors.NewConfigError("-quiet and -details cannot be combined")
	}
	return nil
}

// ParseConfig parses the command-line arguments and populates an AppConfig
// struct. It defines all the command-line flags, sets their default values,
// applies FIBS_* environment overrides to flags that were not given, and
// validates the result.
//
// Parameters:
//   - programName: The name of the program, used in the usage message.
//   - args: The command-line arguments (typically os.Args[1:]).
//   - errorWriter: Where parsing errors and usage information are printed.
//   - availableTypes: The names of the registered numeric kinds.
//
// Returns:
//   - AppConfig: The populated configuration struct.
//   - error: flag.ErrHelp, a flag parsing error, or ErrInvalidConfig wrapping
//     the ConfigError.
func ParseConfig(programName string, args []string, errorWriter io.Writer, availableTypes []string) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)
	typeHelp := fmt.Sprintf("Numeric type to compute with, one of [%s].", strings.Join(availableTypes, ", "))

	config := AppConfig{}
	fs.Uint64Var(&config.N, "n", DefaultN, "Index n of the Fibonacci number to look up.")
	fs.StringVar(&config.Type, "type", DefaultType, typeHelp)
	fs.Uint64Var(&config.Start, "start", 0, "First index printed in sequence mode.")
	fs.Uint64Var(&config.Count, "count", 0, "Print this many consecutive terms instead of a single lookup.")
	fs.BoolVar(&config.Limits, "limits", false, "Print the largest representable term of every bounded type.")
	fs.BoolVar(&config.Interactive, "interactive", false, "Start in interactive REPL mode.")
	fs.DurationVar(&config.Timeout, "timeout", DefaultTimeout, "Maximum execution time.")
	fs.BoolVar(&config.Quiet, "quiet", false, "Quiet mode - minimal output for scripts.")
	fs.BoolVar(&config.Quiet, "q", false, "Quiet mode (shorthand).")
	fs.BoolVar(&config.Details, "details", false, "Display duration and memory details.")
	fs.BoolVar(&config.Details, "d", false, "Alias for -details.")
	fs.BoolVar(&config.Debug, "debug", false, "Enable debug logging on stderr.")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output (also respects NO_COLOR env var).")
	fs.BoolVar(&config.Metrics, "metrics", false, "Print Prometheus metrics after the run.")
	fs.StringVar(&config.OutputFile, "output", "", "Output file path for the result.")
	fs.StringVar(&config.OutputFile, "o", "", "Output file path (shorthand).")
	fs.StringVar(&config.Completion, "completion", "", "Generate shell completion script (bash, zsh, fish, powershell).")

	setCustomUsage(fs)

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(errorWriter, "Configuration error: unexpected argument %q\n", fs.Arg(0))
		fs.Usage()
		return AppConfig{}, fmt.Errorf("%w: %w", ErrInvalidConfig,
			apperrors.NewConfigError("unexpected argument %q", fs.Arg(0)))
	}

	applyEnvOverrides(&config, fs)

	config.Type = strings.ToLower(config.Type)
	config.Completion = strings.ToLower(config.Completion)
	if err := config.Validate(availableTypes); err != nil {
		fmt.Fprintln(errorWriter, "Configuration error:", err)
		fs.Usage()
		return AppConfig{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return config, nil
}
