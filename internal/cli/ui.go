//go:generate mockgen -source=ui.go -destination=mocks/mock_ui.go -package=mocks

package cli

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/fibs/internal/orchestration"
)

const (
	// TruncationLimit is the digit threshold from which a term is truncated
	// in standard output to avoid cluttering the terminal.
	TruncationLimit = 100
	// DisplayEdges specifies the number of digits to display at the beginning
	// and end of a truncated term.
	DisplayEdges = 25
	// SpinnerRefreshRate defines the refresh frequency of the spinner.
	SpinnerRefreshRate = 100 * time.Millisecond
	// ProgressBarWidth defines the width in characters of the progress bar.
	ProgressBarWidth = 24
)

// Spinner abstracts a terminal spinner so that display code can be tested
// without a real terminal.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner adapts spinner.Spinner to the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }
func (rs *realSpinner) Stop()  { rs.s.Stop() }

// UpdateSuffix sets the text that is displayed after the spinner.
func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Lock()
	rs.s.Suffix = suffix
	rs.s.Unlock()
}

var newSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[11], SpinnerRefreshRate, options...)
	return &realSpinner{s}
}

// DisplayProgress shows a spinner and a progress bar while capacity probes
// run. It returns, and calls wg.Done, once updates is closed.
//
// Parameters:
//   - wg: The WaitGroup to signal on completion.
//   - updates: One update per finished probe.
//   - total: The number of probes.
//   - out: The writer the spinner draws to.
func DisplayProgress(wg *sync.WaitGroup, updates <-chan orchestration.LimitUpdate, total int, out io.Writer) {
	defer wg.Done()
	counter := orchestration.NewProgressCounter(total)
	if counter == nil {
		orchestration.DrainChannel(updates)
		return
	}

	s := newSpinner(spinner.WithWriter(out))
	s.UpdateSuffix(progressSuffix(counter))
	s.Start()
	defer s.Stop()

	for u := range updates {
		counter.Update(u)
		s.UpdateSuffix(progressSuffix(counter))
	}
}

func progressSuffix(c *orchestration.ProgressCounter) string {
	return fmt.Sprintf(" Probing limits %s %d/%d", progressBar(c.Fraction(), ProgressBarWidth), c.Done(), c.Total())
}

// WithSpinner runs fn while a spinner labeled with label is displayed on out.
func WithSpinner(out io.Writer, label string, fn func()) {
	s := newSpinner(spinner.WithWriter(out))
	s.UpdateSuffix(" " + label)
	s.Start()
	defer s.Stop()
	fn()
}

// progressBar generates a string representing a textual progress bar.
//
// Parameters:
//   - progress: The normalized progress value (0.0 to 1.0).
//   - length: The total character width of the progress bar.
func progressBar(progress float64, length int) string {
	progress = min(max(progress, 0), 1)
	count := int(progress * float64(length))
	var builder strings.Builder
	builder.Grow(length * 3)
	for i := range length {
		if i < count {
			builder.WriteRune('█')
		} else {
			builder.WriteRune('░')
		}
	}
	return builder.String()
}
