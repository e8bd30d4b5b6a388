package orchestration

import (
	"io"
	"sync"
	"time"

	"github.com/agbru/fibs/internal/fibonacci"
)

// LimitResult encapsulates the outcome of probing one kind for its largest
// representable term. It is the shared domain type between orchestration and
// presentation layers.
type LimitResult struct {
	// Kind is the registry name of the probed kind (e.g., "uint64").
	Kind string
	// Term is the largest representable term. It is zero if Err is set.
	Term fibonacci.Term
	// Duration is the time taken to run the probe.
	Duration time.Duration
	// Err contains any error that occurred during the probe.
	Err error
}

// LimitUpdate is sent each time a probe finishes.
type LimitUpdate struct {
	// Index is the position of the kind in the input slice.
	Index int
	// Kind is the registry name of the finished kind.
	Kind string
	// Err is the probe error, if any.
	Err error
}

// ProgressReporter defines the interface for displaying probe progress.
//
// Implementations handle the visual representation (spinner, plain text)
// while the orchestration layer focuses on coordinating the probes.
type ProgressReporter interface {
	// DisplayProgress consumes updates until the channel is closed, then
	// calls wg.Done.
	//
	// Parameters:
	//   - wg: A WaitGroup to signal when display is complete.
	//   - updates: Channel receiving one update per finished probe.
	//   - total: The number of probes being tracked.
	//   - out: The writer for progress output.
	DisplayProgress(wg *sync.WaitGroup, updates <-chan LimitUpdate, total int, out io.Writer)
}

// ProgressReporterFunc is a function adapter that implements ProgressReporter.
type ProgressReporterFunc func(wg *sync.WaitGroup, updates <-chan LimitUpdate, total int, out io.Writer)

// DisplayProgress calls the underlying function.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, updates <-chan LimitUpdate, total int, out io.Writer) {
	f(wg, updates, total, out)
}

// NullProgressReporter drains the update channel without displaying anything.
// Useful for quiet mode or testing.
type NullProgressReporter struct{}

// DisplayProgress drains the channel without output.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, updates <-chan LimitUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	DrainChannel(updates)
}

// ResultPresenter renders probe results.
type ResultPresenter interface {
	// PresentLimitsTable displays the capacity table.
	PresentLimitsTable(results []LimitResult, out io.Writer)
}

// ErrorHandler handles probe errors and returns exit codes.
type ErrorHandler interface {
	HandleError(err error, duration time.Duration, out io.Writer) int
}
