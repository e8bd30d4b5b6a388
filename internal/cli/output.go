// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplayTerm], [DisplayQuietResult], [DisplayProgress].
//
//   - Format* functions return a formatted string without performing I/O.
//     Examples: [FormatQuietResult], [FormatExecutionDuration].
//
//   - Write* functions write data to files on the filesystem.
//     Examples: [WriteResultToFile], [WriteSequenceToFile].

package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/agbru/fibs/internal/fibonacci"
	"github.com/agbru/fibs/internal/ui"
)

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// OutputFile is the path to save the result (empty for no file output).
	OutputFile string
	// Quiet mode prints the bare value.
	Quiet bool
	// Details adds the type, digit count and duration.
	Details bool
}

// WriteResultToFile writes a term to a file behind a metadata header.
//
// Parameters:
//   - term: The computed term.
//   - kind: The numeric kind name.
//   - duration: The lookup duration.
//   - config: Output configuration.
//
// Returns:
//   - error: An error if the file cannot be written.
func WriteResultToFile(term fibonacci.Term, kind string, duration time.Duration, config OutputConfig) error {
	if config.OutputFile == "" {
		return nil
	}

	file, err := createOutputFile(config.OutputFile)
	if err != nil {
		return err
	}

	fmt.Fprintf(file, "# Fibonacci term\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Type: %s\n", kind)
	fmt.Fprintf(file, "# Duration: %s\n", duration)
	fmt.Fprintf(file, "# N: %d\n", term.N)
	fmt.Fprintf(file, "# Digits: %d\n", len(term.Value))
	fmt.Fprintf(file, "\n")
	fmt.Fprintf(file, "F(%d) =\n%s\n", term.N, term.Value)

	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// WriteSequenceToFile writes the terms of a sequence run, one "F(n) = value"
// line each, behind a metadata header. Exhausted runs are marked in the
// header so a short file is not mistaken for a truncated write.
func WriteSequenceToFile(res fibonacci.SequenceResult, kind string, duration time.Duration, config OutputConfig) error {
	if config.OutputFile == "" {
		return nil
	}
	file, err := createOutputFile(config.OutputFile)
	if err != nil {
		return err
	}

	fmt.Fprintf(file, "# Fibonacci sequence\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Type: %s\n", kind)
	fmt.Fprintf(file, "# Duration: %s\n", duration)
	fmt.Fprintf(file, "# Terms: %d\n", len(res.Terms))
	fmt.Fprintf(file, "# Exhausted: %t\n", res.Exhausted)
	fmt.Fprintf(file, "\n")
	for _, term := range res.Terms {
		fmt.Fprintf(file, "F(%d) = %s\n", term.N, term.Value)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

func createOutputFile(path string) (*os.File, error) {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return file, nil
}

// FormatQuietResult formats a term for quiet mode output: the bare value.
func FormatQuietResult(term fibonacci.Term) string {
	return term.Value
}

// DisplayQuietResult outputs a term in quiet mode.
func DisplayQuietResult(out io.Writer, term fibonacci.Term) {
	fmt.Fprintln(out, FormatQuietResult(term))
}

// DisplayResultWithConfig displays a term and saves it when an output file is
// configured.
//
// Returns:
//   - error: An error if file output fails.
func DisplayResultWithConfig(out io.Writer, term fibonacci.Term, kind string, duration time.Duration, config OutputConfig) error {
	if config.Quiet {
		DisplayQuietResult(out, term)
	} else {
		DisplayTerm(out, kind, term, duration, config.Details)
	}

	if config.OutputFile != "" {
		if err := WriteResultToFile(term, kind, duration, config); err != nil {
			return err
		}
		if !config.Quiet {
			fmt.Fprintf(out, "%s✓ Result saved to: %s%s%s\n",
				ui.ColorGreen(), ui.ColorCyan(), config.OutputFile, ui.ColorReset())
		}
	}
	return nil
}
