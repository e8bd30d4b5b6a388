// Package fibonacci produces Fibonacci numbers over any type that implements
// numeric.Arithmetic, and reports precisely where that type runs out of room.
//
// Two entry points are provided. Generator is a forward-only producer that
// emits F(0), F(1), F(2), ... and stops for good once the next term would not
// fit. F computes a single F(n) and, when F(n) does not fit, returns a
// CapacityError naming the largest index that does.
package fibonacci

import (
	"fmt"
	"math"

	"github.com/agbru/fibs/internal/numeric"
)

// State is the lifecycle position of a Generator.
type State uint8

const (
	// StateFresh means no term has been produced yet; the next call emits F(0).
	StateFresh State = iota
	// StateProducing means at least one term has been emitted and the next
	// term is known to be representable.
	StateProducing
	// StateExhausted means the next term overflowed. Every further call to
	// Next reports the end of the sequence.
	StateExhausted
)

// String returns the lower-case name of the state.
func (s State) String() string {
	switch s {
	case StateFresh:
		return "fresh"
	case StateProducing:
		return "producing"
	case StateExhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Generator produces consecutive Fibonacci numbers of type T, starting at
// F(0) = 0. It stops (permanently) one call after the last term that T can
// represent. A new Generator must be constructed to start over.
//
// Thread Safety:
// Generator is NOT safe for concurrent use. Use one generator per goroutine.
type Generator[T any] struct {
	ops   numeric.Arithmetic[T]
	clone func(T) T

	state State
	// previous is the last emitted term. It is kept after exhaustion.
	previous T
	// current is the next term to emit. Only meaningful in StateProducing.
	current T
	emitted uint64
}

// NewGenerator returns a Generator in StateFresh.
//
// Parameters:
//   - ops: The arithmetic of the value type. If it also implements
//     numeric.Cloner, every emitted value is a copy the caller may mutate.
//
// Returns:
//   - *Generator[T]: A generator whose first Next call returns F(0).
func NewGenerator[T any](ops numeric.Arithmetic[T]) *Generator[T] {
	g := &Generator[T]{ops: ops}
	if c, ok := ops.(numeric.Cloner[T]); ok {
		g.clone = c.Clone
	}
	return g
}

// Next emits the next term of the sequence.
//
// The call that detects an overflow still returns the last representable
// term; ok is false on the call after it, and on every call thereafter.
func (g *Generator[T]) Next() (value T, ok bool) {
	if g.state == StateExhausted {
		var zero T
		return zero, false
	}

	emit, prev := g.current, g.previous
	if g.state == StateFresh {
		// One is the implicit predecessor of F(0), so that F(1) = 0 + 1.
		emit, prev = g.ops.Zero(), g.ops.One()
	}

	next, fits := g.ops.CheckedAdd(emit, prev)
	g.previous = emit
	if fits {
		g.current = next
		g.state = StateProducing
	} else {
		var zero T
		g.current = zero
		g.state = StateExhausted
	}
	if g.emitted < math.MaxUint64 {
		g.emitted++
	}
	return g.export(emit), true
}

func (g *Generator[T]) export(v T) T {
	if g.clone != nil {
		return g.clone(v)
	}
	return v
}

// State returns the current lifecycle state.
func (g *Generator[T]) State() State { return g.state }

// Emitted returns how many terms Next has returned. The index of the last
// emitted term is Emitted()-1.
func (g *Generator[T]) Emitted() uint64 { return g.emitted }

// Last returns the most recently emitted term. ok is false while the
// generator is fresh. After exhaustion it is the largest representable term.
func (g *Generator[T]) Last() (value T, ok bool) {
	if g.state == StateFresh {
		var zero T
		return zero, false
	}
	return g.export(g.previous), true
}

// Clone returns an independent generator at the same position.
func (g *Generator[T]) Clone() *Generator[T] {
	c := *g
	if g.clone != nil && g.state != StateFresh {
		c.previous = g.clone(g.previous)
		if g.state == StateProducing {
			c.current = g.clone(g.current)
		}
	}
	return &c
}

// String renders the generator state for debugging.
func (g *Generator[T]) String() string {
	switch g.state {
	case StateFresh:
		return "Generator{state: fresh}"
	case StateExhausted:
		return fmt.Sprintf("Generator{state: exhausted, emitted: %d, last: %v}", g.emitted, g.previous)
	default:
		return fmt.Sprintf("Generator{state: producing, emitted: %d, previous: %v, current: %v}",
			g.emitted, g.previous, g.current)
	}
}
