package orchestration

import (
	"context"
	"io"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/fibs/internal/errors"
	"github.com/agbru/fibs/internal/fibonacci"
)

// BoundedKinds returns the kinds of reg that have a largest representable
// term, in registry name order.
func BoundedKinds(reg *fibonacci.Registry) []fibonacci.Kind {
	var kinds []fibonacci.Kind
	for _, k := range reg.Kinds() {
		if k.Bounded() {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// ComputeLimits probes every bounded kind concurrently and returns one result
// per kind, in input order. Unbounded kinds are skipped.
func ComputeLimits(ctx context.Context, kinds []fibonacci.Kind) []LimitResult {
	return ExecuteLimits(ctx, kinds, NullProgressReporter{}, io.Discard)
}

// ExecuteLimits orchestrates the concurrent execution of capacity probes.
//
// Each bounded kind runs Kind.Limit in its own goroutine, which owns its own
// generator. A failing probe is recorded in its result and does not cancel the
// others.
//
// Parameters:
//   - ctx: The context for managing cancellation and deadlines.
//   - kinds: The kinds to probe. Unbounded kinds are skipped.
//   - reporter: Receives one update per finished probe.
//   - out: The io.Writer handed to the reporter.
//
// Returns:
//   - []LimitResult: One result per bounded kind, in input order.
func ExecuteLimits(ctx context.Context, kinds []fibonacci.Kind, reporter ProgressReporter, out io.Writer) []LimitResult {
	bounded := slices.DeleteFunc(slices.Clone(kinds), func(k fibonacci.Kind) bool {
		return !k.Bounded()
	})

	g, ctx := errgroup.WithContext(ctx)
	results := make([]LimitResult, len(bounded))
	updates := make(chan LimitUpdate, len(bounded))

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go reporter.DisplayProgress(&displayWg, updates, len(bounded), out)

	for i, kind := range bounded {
		g.Go(func() error {
			start := time.Now()
			term, err := kind.Limit(ctx)
			err = apperrors.WrapError(err, "probing %s", kind.Name())
			results[i] = LimitResult{
				Kind: kind.Name(), Term: term, Duration: time.Since(start), Err: err,
			}
			updates <- LimitUpdate{Index: i, Kind: kind.Name(), Err: err}
			return nil
		})
	}

	_ = g.Wait()
	close(updates)
	displayWg.Wait()

	return results
}

// SortLimitResults orders results for display: successful probes first by
// ascending capacity, then failures, ties broken by kind name.
func SortLimitResults(results []LimitResult) {
	slices.SortStableFunc(results, func(a, b LimitResult) int {
		if (a.Err == nil) != (b.Err == nil) {
			if a.Err == nil {
				return -1
			}
			return 1
		}
		if a.Err == nil && a.Term.N != b.Term.N {
			if a.Term.N < b.Term.N {
				return -1
			}
			return 1
		}
		switch {
		case a.Kind < b.Kind:
			return -1
		case a.Kind > b.Kind:
			return 1
		}
		return 0
	})
}

// AnalyzeLimitResults sorts results, presents them as a table and derives
// the exit code.
//
// Returns:
//   - int: ExitSuccess when every probe succeeded, otherwise the exit code the
//     handler assigns to the first failure.
func AnalyzeLimitResults(results []LimitResult, presenter ResultPresenter, handler ErrorHandler, out io.Writer) int {
	SortLimitResults(results)
	presenter.PresentLimitsTable(results, out)

	var firstErr error
	var failedAfter time.Duration
	for _, r := range results {
		if r.Err != nil {
			firstErr, failedAfter = r.Err, r.Duration
			break
		}
	}
	if firstErr == nil {
		return apperrors.ExitSuccess
	}
	return handler.HandleError(firstErr, failedAfter, out)
}
