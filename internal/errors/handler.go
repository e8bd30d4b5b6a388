package apperrors

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/agbru/fibs/internal/fibonacci"
)

// ColorProvider defines the interface for obtaining terminal color codes.
// This abstraction breaks the import cycle with the ui package.
type ColorProvider interface {
	Yellow() string
	Red() string
	Reset() string
}

// DefaultColorProvider provides no color codes (for non-terminal output).
type DefaultColorProvider struct{}

func (DefaultColorProvider) Yellow() string { return "" }
func (DefaultColorProvider) Red() string    { return "" }
func (DefaultColorProvider) Reset() string  { return "" }

// HandleCalculationError formats and prints error messages related to failed calculations.
// It distinguishes between different error types (capacity, timeout,
// cancellation, generic) to provide the user with specific feedback.
//
// Parameters:
//   - err: The error that occurred.
//   - duration: The duration of the calculation before it failed.
//   - out: The io.Writer to which the error message will be written.
//   - colors: Provider for terminal color codes (can be nil for no colors).
//
// Returns:
//   - int: The appropriate exit code for the error type.
func HandleCalculationError(err error, duration time.Duration, out io.Writer, colors ColorProvider) int {
	if err == nil {
		return ExitSuccess
	}

	if colors == nil {
		colors = DefaultColorProvider{}
	}

	msgSuffix := ""
	if duration > 0 {
		msgSuffix = fmt.Sprintf(" after %s%s%s", colors.Yellow(), duration, colors.Reset())
	}

	code := ExitCode(err)
	switch code {
	case ExitErrorCapacity:
		var capErr *fibonacci.CapacityError[string]
		if errors.As(err, &capErr) {
			fmt.Fprintf(out, "%sStatus: Capacity exceeded.%s F(%d) does not fit; the largest term is F(%d) = %s\n",
				colors.Red(), colors.Reset(), capErr.N, capErr.MaxN, capErr.MaxValue)
		} else {
			fmt.Fprintf(out, "%sStatus: Capacity exceeded.%s %v\n", colors.Red(), colors.Reset(), err)
		}
	case ExitErrorTimeout:
		fmt.Fprintf(out, "Status: Failure (Timeout). The execution limit was reached%s.\n", msgSuffix)
	case ExitErrorCanceled:
		fmt.Fprintf(out, "%sStatus: Canceled%s.%s\n", colors.Yellow(), msgSuffix, colors.Reset())
	case ExitErrorConfig:
		fmt.Fprintf(out, "Status: Configuration error: %v\n", err)
	default:
		fmt.Fprintf(out, "Status: Failure. An unexpected error occurred: %v\n", err)
	}
	return code
}
