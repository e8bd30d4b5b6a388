package fibonacci

import (
	"context"
	"errors"
	"fmt"

	"github.com/agbru/fibs/internal/numeric"
)

// ErrUnbounded is returned when an operation needs the limit of a kind that
// has none, such as "big".
var ErrUnbounded = errors.New("fibonacci: numeric kind is unbounded")

// Term is a Fibonacci number rendered in decimal, together with its index.
type Term struct {
	N     uint64
	Value string
}

// SequenceResult is a window of consecutive terms.
type SequenceResult struct {
	Terms []Term
	// Exhausted reports that the kind cannot represent the term that follows
	// the last one in Terms.
	Exhausted bool
}

// Kind is a numeric type the generator can run over, selected by name at
// runtime. It hides the type parameter so that callers such as the CLI can
// work with any registered type through one interface.
//
// A Kind holds no generator state: every call runs its own Generator, so a
// Kind is safe for concurrent use.
type Kind interface {
	// Name returns the registry key, for example "uint64".
	Name() string
	// Description returns a one-line human readable summary.
	Description() string
	// Bounded reports whether the type has a largest representable term.
	Bounded() bool
	// Lookup computes F(n). When F(n) does not fit, it returns the largest
	// representable term and a *CapacityError[string].
	Lookup(ctx context.Context, n uint64) (Term, error)
	// Sequence returns count terms starting at index start. A count of 0
	// means every remaining term and is rejected with ErrUnbounded for
	// unbounded kinds.
	Sequence(ctx context.Context, start, count uint64) (SequenceResult, error)
	// Limit returns the largest representable term, or ErrUnbounded.
	Limit(ctx context.Context) (Term, error)
}

type typedKind[T any] struct {
	name        string
	description string
	bounded     bool
	ops         numeric.Arithmetic[T]
	format      func(T) string
}

// NewKind adapts a typed Arithmetic to the Kind interface. format renders a
// term in decimal.
func NewKind[T any](name, description string, bounded bool, ops numeric.Arithmetic[T], format func(T) string) Kind {
	return &typedKind[T]{
		name:        name,
		description: description,
		bounded:     bounded,
		ops:         ops,
		format:      format,
	}
}

func (k *typedKind[T]) Name() string        { return k.name }
func (k *typedKind[T]) Description() string { return k.description }
func (k *typedKind[T]) Bounded() bool       { return k.bounded }

func (k *typedKind[T]) Lookup(ctx context.Context, n uint64) (Term, error) {
	v, err := FContext(ctx, k.ops, n)
	if err != nil {
		var capErr *CapacityError[T]
		if errors.As(err, &capErr) {
			return Term{N: capErr.MaxN, Value: k.format(capErr.MaxValue)}, MapCapacityError(capErr, k.format)
		}
		return Term{}, err
	}
	return Term{N: n, Value: k.format(v)}, nil
}

func (k *typedKind[T]) Sequence(ctx context.Context, start, count uint64) (SequenceResult, error) {
	if count == 0 && !k.bounded {
		return SequenceResult{}, fmt.Errorf("sequence of %s needs a count: %w", k.name, ErrUnbounded)
	}

	g := NewGenerator(k.ops)
	for i := uint64(0); i < start; i++ {
		if i%CancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return SequenceResult{}, err
			}
		}
		if _, ok := g.Next(); !ok {
			return SequenceResult{Exhausted: true}, nil
		}
	}

	var res SequenceResult
	if count > 0 && count <= 1<<16 {
		res.Terms = make([]Term, 0, count)
	}
	for i := uint64(0); count == 0 || i < count; i++ {
		if i%CancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return res, err
			}
		}
		v, ok := g.Next()
		if !ok {
			break
		}
		res.Terms = append(res.Terms, Term{N: g.Emitted() - 1, Value: k.format(v)})
	}
	res.Exhausted = g.State() == StateExhausted
	return res, nil
}

func (k *typedKind[T]) Limit(ctx context.Context) (Term, error) {
	if !k.bounded {
		return Term{}, fmt.Errorf("limit of %s: %w", k.name, ErrUnbounded)
	}
	maxN, maxValue, err := LimitContext(ctx, k.ops)
	if err != nil {
		return Term{}, err
	}
	return Term{N: maxN, Value: k.format(maxValue)}, nil
}
