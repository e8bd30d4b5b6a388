package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/agbru/fibs/internal/cli"
	apperrors "github.com/agbru/fibs/internal/errors"
	"github.com/agbru/fibs/internal/fibonacci"
	"github.com/agbru/fibs/internal/logging"
	"github.com/agbru/fibs/internal/metrics"
	"github.com/agbru/fibs/internal/orchestration"
	"github.com/agbru/fibs/internal/ui"
)

// statusOf maps an operation error to a metrics status label.
func statusOf(err error) string {
	switch {
	case err == nil:
		return metrics.StatusOK
	case errors.Is(err, fibonacci.ErrCapacityExceeded):
		return metrics.StatusCapacity
	case apperrors.IsContextError(err):
		return metrics.StatusInterrupted
	default:
		return metrics.StatusError
	}
}

// errOut is where failure messages go: stderr in quiet mode so that stdout
// only ever carries values.
func (a *Application) errOut(out io.Writer) io.Writer {
	if a.Config.Quiet {
		return a.ErrWriter
	}
	return out
}

// runLookup computes F(n) for the configured kind.
func (a *Application) runLookup(ctx context.Context, out io.Writer) int {
	kind, err := a.Registry.Get(a.Config.Type)
	if err != nil {
		return apperrors.HandleCalculationError(apperrors.NewConfigError("%v", err), 0, a.ErrWriter, ui.Colors{})
	}
	n := a.Config.N

	ctx, cleanup := SetupLifecycle(ctx, a.Config.Timeout)
	defer cleanup()
	ctx, span := startSpan(ctx, metrics.OpLookup, kind.Name(), indexAttr("fibs.n", n))

	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, out)
		cli.PrintExecutionMode(cli.ModeLookup, a.Config, out)
	}

	memBefore := a.Memory.Snapshot()
	var (
		term     fibonacci.Term
		duration time.Duration
	)
	compute := func() {
		start := time.Now()
		term, err = kind.Lookup(ctx, n)
		duration = time.Since(start)
	}
	if !kind.Bounded() && !a.Config.Quiet {
		cli.WithSpinner(out, fmt.Sprintf("Computing F(%d)", n), compute)
	} else {
		compute()
	}
	err = asTimeout(err, "lookup", a.Config.Timeout)
	endSpan(span, err)

	a.Recorder.Observe(kind.Name(), metrics.OpLookup, statusOf(err), duration)
	a.Logger.Debug("lookup done",
		logging.String("type", kind.Name()),
		logging.Uint64("n", n),
		logging.Duration("duration", duration),
		logging.Err(err))

	if err != nil {
		return apperrors.HandleCalculationError(
			apperrors.CalculationError{Kind: kind.Name(), Cause: err}, duration, a.errOut(out), ui.Colors{})
	}
	a.Recorder.AddTerms(kind.Name(), 1)

	outputCfg := cli.OutputConfig{
		OutputFile: a.Config.OutputFile,
		Quiet:      a.Config.Quiet,
		Details:    a.Config.Details,
	}
	if err := cli.DisplayResultWithConfig(out, term, kind.Name(), duration, outputCfg); err != nil {
		a.Logger.Error("saving result", err, logging.String("path", a.Config.OutputFile))
		return apperrors.HandleCalculationError(err, 0, a.errOut(out), ui.Colors{})
	}
	if a.Config.Details {
		cli.DisplayMemoryStats(a.Memory.Snapshot().Sub(memBefore), out)
	}
	return apperrors.ExitSuccess
}

// runSequence prints Count terms starting at Start and, with -o, saves them.
// When the kind runs out before Count terms, the terms that fit are printed
// and saved, and the run exits with ExitErrorCapacity.
func (a *Application) runSequence(ctx context.Context, out io.Writer) int {
	kind, err := a.Registry.Get(a.Config.Type)
	if err != nil {
		return apperrors.HandleCalculationError(apperrors.NewConfigError("%v", err), 0, a.ErrWriter, ui.Colors{})
	}

	ctx, cleanup := SetupLifecycle(ctx, a.Config.Timeout)
	defer cleanup()
	ctx, span := startSpan(ctx, metrics.OpSequence, kind.Name(),
		indexAttr("fibs.start", a.Config.Start), indexAttr("fibs.count", a.Config.Count))

	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, out)
		cli.PrintExecutionMode(cli.ModeSequence, a.Config, out)
	}

	start := time.Now()
	res, err := kind.Sequence(ctx, a.Config.Start, a.Config.Count)
	duration := time.Since(start)
	err = asTimeout(err, "sequence", a.Config.Timeout)

	if err == nil && uint64(len(res.Terms)) < a.Config.Count {
		err = a.shortSequenceError(ctx, kind, res)
	}
	endSpan(span, err)

	a.Recorder.Observe(kind.Name(), metrics.OpSequence, statusOf(err), duration)
	a.Recorder.AddTerms(kind.Name(), len(res.Terms))
	a.Logger.Debug("sequence done",
		logging.String("type", kind.Name()),
		logging.Int("terms", len(res.Terms)),
		logging.Bool("exhausted", res.Exhausted),
		logging.Duration("duration", duration))

	cli.DisplaySequence(out, kind.Name(), res, a.Config.Quiet)
	outputCfg := cli.OutputConfig{OutputFile: a.Config.OutputFile}
	if werr := cli.WriteSequenceToFile(res, kind.Name(), duration, outputCfg); werr != nil {
		a.Logger.Error("saving sequence", werr, logging.String("path", a.Config.OutputFile))
		return apperrors.HandleCalculationError(werr, 0, a.errOut(out), ui.Colors{})
	}
	if a.Config.OutputFile != "" && !a.Config.Quiet {
		fmt.Fprintf(out, "%s✓ Sequence saved to: %s%s%s\n",
			ui.ColorGreen(), ui.ColorCyan(), a.Config.OutputFile, ui.ColorReset())
	}
	if err != nil {
		return apperrors.HandleCalculationError(
			apperrors.CalculationError{Kind: kind.Name(), Cause: err}, duration, a.errOut(out), ui.Colors{})
	}
	if a.Config.Details {
		fmt.Fprintf(out, "\n%d terms in %s\n", len(res.Terms), cli.FormatExecutionDuration(duration))
	}
	return apperrors.ExitSuccess
}

// shortSequenceError describes why a sequence stopped early: the first index
// that does not fit, reported as a capacity error.
func (a *Application) shortSequenceError(ctx context.Context, kind fibonacci.Kind, res fibonacci.SequenceResult) error {
	missing := a.Config.Start + uint64(len(res.Terms))
	_, err := kind.Lookup(ctx, missing)
	if err == nil {
		return fmt.Errorf("sequence stopped at F(%d)", missing)
	}
	return err
}

// runLimits probes every bounded kind and prints the capacity table.
func (a *Application) runLimits(ctx context.Context, out io.Writer) int {
	ctx, cleanup := SetupLifecycle(ctx, a.Config.Timeout)
	defer cleanup()
	ctx, span := startSpan(ctx, metrics.OpLimit, "all")

	kinds := orchestration.BoundedKinds(a.Registry)
	if !a.Config.Quiet {
		cli.PrintExecutionMode(cli.ModeLimits, a.Config, out)
	}

	reporter := cli.CLIProgressReporter
	progressOut := out
	if a.Config.Quiet {
		reporter = orchestration.NullProgressReporter{}
		progressOut = io.Discard
	}
	results := orchestration.ExecuteLimits(ctx, kinds, reporter, progressOut)

	var firstErr error
	for i, r := range results {
		results[i].Err = asTimeout(r.Err, "limit", a.Config.Timeout)
		a.Recorder.Observe(r.Kind, metrics.OpLimit, statusOf(results[i].Err), r.Duration)
		if results[i].Err == nil {
			a.Recorder.SetCapacity(r.Kind, r.Term.N)
		} else if firstErr == nil {
			firstErr = results[i].Err
		}
	}
	endSpan(span, firstErr)
	a.Logger.Debug("limits done", logging.Int("kinds", len(results)))

	if a.Config.Quiet {
		orchestration.SortLimitResults(results)
		for _, r := range results {
			if r.Err == nil {
				fmt.Fprintf(out, "%s %d %s\n", r.Kind, r.Term.N, r.Term.Value)
			}
		}
		return apperrors.HandleCalculationError(firstErr, 0, a.ErrWriter, ui.Colors{})
	}
	return orchestration.AnalyzeLimitResults(results, cli.CLIResultPresenter{}, cli.CLIResultPresenter{}, out)
}
