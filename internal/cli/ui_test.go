package cli

import (
	"io"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/briandowns/spinner"
	"github.com/golang/mock/gomock"

	"github.com/agbru/fibs/internal/cli/mocks"
	"github.com/agbru/fibs/internal/orchestration"
	"github.com/agbru/fibs/internal/ui"
)

func TestMain(m *testing.M) {
	ui.SetCurrentTheme(ui.NoColorTheme)
	os.Exit(m.Run())
}

func TestRealSpinner(t *testing.T) {
	t.Parallel()
	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(io.Discard))
	rs := &realSpinner{s}

	rs.Start()
	rs.UpdateSuffix(" test")
	rs.Stop()
}

// TestDisplayProgress drives the spinner through CLIProgressReporter. It
// overrides newSpinner, so it must not run in parallel.
func TestDisplayProgress(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockS := mocks.NewMockSpinner(ctrl)

	originalNewSpinner := newSpinner
	defer func() { newSpinner = originalNewSpinner }()
	newSpinner = func(options ...spinner.Option) Spinner { return mockS }

	gomock.InOrder(
		mockS.EXPECT().UpdateSuffix(gomock.Any()),
		mockS.EXPECT().Start(),
		mockS.EXPECT().UpdateSuffix(" Probing limits "+progressBar(0.5, ProgressBarWidth)+" 1/2"),
		mockS.EXPECT().UpdateSuffix(" Probing limits "+progressBar(1, ProgressBarWidth)+" 2/2"),
		mockS.EXPECT().Stop(),
	)

	var wg sync.WaitGroup
	wg.Add(1)
	updates := make(chan orchestration.LimitUpdate, 2)
	updates <- orchestration.LimitUpdate{Index: 0, Kind: "int8"}
	updates <- orchestration.LimitUpdate{Index: 1, Kind: "uint8"}
	close(updates)

	CLIProgressReporter.DisplayProgress(&wg, updates, 2, io.Discard)
	wg.Wait()
}

func TestDisplayProgress_ZeroTotal(t *testing.T) {
	t.Parallel()
	var wg sync.WaitGroup
	wg.Add(1)
	updates := make(chan orchestration.LimitUpdate)
	close(updates)

	DisplayProgress(&wg, updates, 0, io.Discard)
	wg.Wait()
}

// TestWithSpinner overrides newSpinner, so it must not run in parallel.
func TestWithSpinner(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockS := mocks.NewMockSpinner(ctrl)

	originalNewSpinner := newSpinner
	defer func() { newSpinner = originalNewSpinner }()
	newSpinner = func(options ...spinner.Option) Spinner { return mockS }

	gomock.InOrder(
		mockS.EXPECT().UpdateSuffix(" Computing F(10)"),
		mockS.EXPECT().Start(),
		mockS.EXPECT().Stop(),
	)

	ran := false
	WithSpinner(io.Discard, "Computing F(10)", func() { ran = true })
	if !ran {
		t.Error("WithSpinner did not run fn")
	}
}

func TestProgressBar(t *testing.T) {
	t.Parallel()
	tests := []struct {
		progress float64
		want     string
	}{
		{0, "░░░░"},
		{0.5, "██░░"},
		{1, "████"},
		{2, "████"},
		{-1, "░░░░"},
	}
	for _, tt := range tests {
		if got := progressBar(tt.progress, 4); got != tt.want {
			t.Errorf("progressBar(%v, 4) = %q, want %q", tt.progress, got, tt.want)
		}
	}
}

func TestFormatExecutionDuration(t *testing.T) {
	t.Parallel()
	if got := FormatExecutionDuration(0); got != "< 1µs" {
		t.Errorf("FormatExecutionDuration(0) = %q", got)
	}
	if got := FormatExecutionDuration(3 * time.Millisecond); got != "3ms" {
		t.Errorf("FormatExecutionDuration(3ms) = %q", got)
	}
	if got := FormatNumberString("1234567"); got != "1,234,567" {
		t.Errorf("FormatNumberString = %q", got)
	}
}

func TestTruncateTerm(t *testing.T) {
	t.Parallel()

	short := strings.Repeat("7", TruncationLimit)
	if got, truncated := truncateTerm(short); truncated || got != short {
		t.Errorf("value of %d digits should not be truncated", TruncationLimit)
	}

	long := strings.Repeat("1", DisplayEdges) + strings.Repeat("0", 100) + strings.Repeat("9", DisplayEdges)
	got, truncated := truncateTerm(long)
	if !truncated {
		t.Fatal("expected truncation")
	}
	want := strings.Repeat("1", DisplayEdges) + "..." + strings.Repeat("9", DisplayEdges)
	if got != want {
		t.Errorf("truncateTerm = %q, want %q", got, want)
	}
}
