package fibonacci

import (
	"context"
	"fmt"
	"math"

	"github.com/agbru/fibs/internal/numeric"
)

type producer[T any] interface {
	Next() (T, bool)
}

// F returns the n-th Fibonacci number (F(0) = 0, F(1) = 1) in the type
// described by ops.
//
// When F(n) does not fit, F returns a *CapacityError[T] carrying the largest
// representable index and its term, and that term as the value so callers
// that only want a saturated number can ignore the error. That result is identical for every n
// past the limit, math.MaxUint64 included.
//
// F runs in O(n) checked additions and keeps no state between calls. When
// several terms are needed, iterate a single Generator instead.
//
// F panics if ops cannot produce its own zero term, which only a broken
// numeric.Arithmetic implementation can cause.
func F[T any](ops numeric.Arithmetic[T], n uint64) (T, error) {
	return nth(context.Background(), NewGenerator(ops), n, 0)
}

// FContext is like F but gives up when ctx is done. The context is checked
// every CancelCheckInterval terms, so cancellation is only observable for
// large n on unbounded types.
func FContext[T any](ctx context.Context, ops numeric.Arithmetic[T], n uint64) (T, error) {
	return nth(ctx, NewGenerator(ops), n, CancelCheckInterval)
}

// nth drives p exactly n times and then once more, so that it never needs
// to compute n+1. checkEvery == 0 disables context checks.
func nth[T any](ctx context.Context, p producer[T], n uint64, checkEvery uint64) (T, error) {
	var last T
	for i := uint64(0); i < n; i++ {
		if checkEvery != 0 && i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				var zero T
				return zero, fmt.Errorf("fibonacci: computing F(%d): %w", n, err)
			}
		}
		v, ok := p.Next()
		if !ok {
			if i == 0 {
				zeroFailed[T]()
			}
			return last, &CapacityError[T]{N: n, MaxN: i - 1, MaxValue: last}
		}
		last = v
	}

	v, ok := p.Next()
	if !ok {
		if n == 0 {
			zeroFailed[T]()
		}
		return last, &CapacityError[T]{N: n, MaxN: n - 1, MaxValue: last}
	}
	return v, nil
}

func zeroFailed[T any]() {
	var zero T
	panic(fmt.Sprintf("fibonacci: numeric type %T cannot produce F(0)", zero))
}

// Limit returns the largest index whose term fits in the type described by
// ops, together with that term.
//
// It is only meaningful for bounded types. For an unbounded type such as
// *big.Int it would not return; use LimitContext with a deadline instead.
func Limit[T any](ops numeric.Arithmetic[T]) (maxN uint64, maxValue T) {
	maxN, maxValue, _ = LimitContext(context.Background(), ops)
	return maxN, maxValue
}

// LimitContext is like Limit but gives up when ctx is done, in which case
// it returns the context error.
func LimitContext[T any](ctx context.Context, ops numeric.Arithmetic[T]) (maxN uint64, maxValue T, err error) {
	v, err := FContext(ctx, ops, math.MaxUint64)
	if err == nil {
		// Every one of 2^64 terms fitted. No real type gets here.
		return math.MaxUint64, v, nil
	}
	capErr, ok := err.(*CapacityError[T])
	if !ok {
		var zero T
		return 0, zero, err
	}
	return capErr.MaxN, capErr.MaxValue, nil
}
