package app

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	apperrors "github.com/agbru/fibs/internal/errors"
)

// SetupLifecycle returns a context canceled by SIGINT/SIGTERM and, when
// timeout is positive, by the deadline. The returned function releases both.
func SetupLifecycle(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	cancelTimeout := context.CancelFunc(func() {})
	if timeout > 0 {
		ctx, cancelTimeout = context.WithTimeout(ctx, timeout)
	}
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	return ctx, func() {
		stopSignals()
		cancelTimeout()
	}
}

// asTimeout replaces a deadline error with a TimeoutError naming the
// operation and the configured limit. Other errors are returned unchanged.
func asTimeout(err error, operation string, limit time.Duration) error {
	if err == nil || !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	var te apperrors.TimeoutError
	if errors.As(err, &te) {
		return err
	}
	return apperrors.TimeoutError{Operation: operation, Limit: limit}
}
