package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/agbru/fibs/internal/config"
	"github.com/agbru/fibs/internal/ui"
)

// Mode names used by PrintExecutionMode.
const (
	ModeLookup   = "lookup"
	ModeSequence = "sequence"
	ModeLimits   = "limits"
)

// PrintExecutionConfig displays the current execution configuration to the
// user: the numeric type, timeout and environment.
//
// Parameters:
//   - cfg: The application configuration.
//   - out: The writer for standard output.
func PrintExecutionConfig(cfg config.AppConfig, out io.Writer) {
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Numeric type %s%s%s with a timeout of %s%s%s.\n",
		ui.ColorMagenta(), cfg.Type, ui.ColorReset(), ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s.\n",
		ui.ColorCyan(), runtime.NumCPU(), ui.ColorReset(), ui.ColorCyan(), runtime.Version(), ui.ColorReset())
}

// PrintExecutionMode displays what the run is about to do.
//
// Parameters:
//   - mode: One of ModeLookup, ModeSequence or ModeLimits.
//   - cfg: The application configuration.
//   - out: The writer for standard output.
func PrintExecutionMode(mode string, cfg config.AppConfig, out io.Writer) {
	var desc string
	switch mode {
	case ModeSequence:
		desc = fmt.Sprintf("%d terms starting at F(%d)", cfg.Count, cfg.Start)
	case ModeLimits:
		desc = "capacity of every bounded type"
	default:
		desc = fmt.Sprintf("lookup of F(%d)", cfg.N)
	}
	fmt.Fprintf(out, "Execution mode: %s%s%s.\n", ui.ColorGreen(), desc, ui.ColorReset())
	fmt.Fprintf(out, "\n--- Starting Execution ---\n")
}
