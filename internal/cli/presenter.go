package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	apperrors "github.com/agbru/fibs/internal/errors"
	"github.com/agbru/fibs/internal/fibonacci"
	"github.com/agbru/fibs/internal/format"
	"github.com/agbru/fibs/internal/metrics"
	"github.com/agbru/fibs/internal/orchestration"
	"github.com/agbru/fibs/internal/ui"
)

// CLIProgressReporter shows limits progress with a spinner and progress bar.
var CLIProgressReporter orchestration.ProgressReporter = orchestration.ProgressReporterFunc(DisplayProgress)

// CLIResultPresenter implements orchestration.ResultPresenter and
// orchestration.ErrorHandler for terminal output.
type CLIResultPresenter struct{}

var (
	_ orchestration.ResultPresenter = CLIResultPresenter{}
	_ orchestration.ErrorHandler    = CLIResultPresenter{}
)

// PresentLimitsTable renders one row per kind: type, max n, F(max n) and
// probe duration.
func (CLIResultPresenter) PresentLimitsTable(results []orchestration.LimitResult, out io.Writer) {
	fmt.Fprintln(out, RenderLimitsTable(results))
}

// HandleError handles probe errors and returns an appropriate exit code.
func (CLIResultPresenter) HandleError(err error, duration time.Duration, out io.Writer) int {
	return apperrors.HandleCalculationError(err, duration, out, ui.Colors{})
}

// RenderLimitsTable returns the capacity table as a string.
func RenderLimitsTable(results []orchestration.LimitResult) string {
	th := ui.GetCurrentTableTheme()
	headerStyle := lipgloss.NewStyle().Foreground(th.Header).Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Foreground(th.Text).Padding(0, 1)
	numStyle := cellStyle.Align(lipgloss.Right)
	dimStyle := lipgloss.NewStyle().Foreground(th.Dim).Padding(0, 1).Align(lipgloss.Right)
	errStyle := lipgloss.NewStyle().Foreground(th.Error).Padding(0, 1)

	rows := make([][]string, 0, len(results))
	for _, r := range results {
		if r.Err != nil {
			rows = append(rows, []string{r.Kind, "-", r.Err.Error(), FormatExecutionDuration(r.Duration)})
			continue
		}
		rows = append(rows, []string{
			r.Kind,
			fmt.Sprintf("%d", r.Term.N),
			format.FormatNumberString(r.Term.Value),
			FormatExecutionDuration(r.Duration),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(th.Border)).
		Headers("Type", "Max n", "F(max n)", "Duration").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row >= 0 && row < len(results) && results[row].Err != nil && col == 2:
				return errStyle
			case col == 3:
				return dimStyle
			case col == 1 || col == 2:
				return numStyle
			}
			return cellStyle
		})
	return t.String()
}

// DisplayTerm prints F(n) for kind, truncating very long values.
func DisplayTerm(out io.Writer, kind string, term fibonacci.Term, duration time.Duration, details bool) {
	value, truncated := truncateTerm(term.Value)
	fmt.Fprintf(out, "%sF(%d)%s = %s%s%s\n",
		ui.ColorMagenta(), term.N, ui.ColorReset(), ui.ColorGreen(), value, ui.ColorReset())
	if truncated {
		fmt.Fprintf(out, "%s(truncated, %d digits; use -o to save the full value)%s\n",
			ui.ColorYellow(), len(term.Value), ui.ColorReset())
	}
	if details {
		fmt.Fprintf(out, "Type: %s%s%s, digits: %s%d%s, time: %s%s%s\n",
			ui.ColorCyan(), kind, ui.ColorReset(),
			ui.ColorCyan(), len(term.Value), ui.ColorReset(),
			ui.ColorYellow(), FormatExecutionDuration(duration), ui.ColorReset())
	}
}

// DisplaySequence prints one term per line and notes exhaustion.
func DisplaySequence(out io.Writer, kind string, res fibonacci.SequenceResult, quiet bool) {
	for _, t := range res.Terms {
		if quiet {
			fmt.Fprintln(out, t.Value)
			continue
		}
		value, _ := truncateTerm(t.Value)
		fmt.Fprintf(out, "%sF(%d)%s = %s\n", ui.ColorMagenta(), t.N, ui.ColorReset(), value)
	}
	if res.Exhausted && !quiet {
		fmt.Fprintf(out, "%s%s is exhausted: the next term does not fit.%s\n",
			ui.ColorYellow(), kind, ui.ColorReset())
	}
}

// DisplayKinds lists the registered kinds, marking current.
func DisplayKinds(out io.Writer, kinds []fibonacci.Kind, current string) {
	for _, k := range kinds {
		marker := "  "
		if k.Name() == current {
			marker = ui.ColorGreen() + "► " + ui.ColorReset()
		}
		fmt.Fprintf(out, "%s%s%-8s%s %s\n", marker, ui.ColorYellow(), k.Name(), ui.ColorReset(), k.Description())
	}
}

// DisplayMemoryStats shows memory statistics after a run.
func DisplayMemoryStats(snap metrics.MemorySnapshot, out io.Writer) {
	fmt.Fprintf(out, "\nMemory Stats:\n")
	fmt.Fprintf(out, "  Heap in use:     %s\n", format.FormatBytes(snap.HeapAlloc))
	fmt.Fprintf(out, "  Total allocated: %s\n", format.FormatBytes(snap.TotalAlloc))
	fmt.Fprintf(out, "  GC cycles:       %d\n", snap.NumGC)
	fmt.Fprintf(out, "  GC pause total:  %.2fms\n", float64(snap.PauseTotalNs)/1e6)
}
