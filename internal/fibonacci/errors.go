package fibonacci

import (
	"errors"
	"fmt"
)

// ErrCapacityExceeded is the class of every CapacityError, whatever its value
// type. Test for it with errors.Is.
var ErrCapacityExceeded = errors.New("fibonacci: value exceeds the capacity of the numeric type")

// CapacityError reports that F(N) does not fit in T. MaxN is the largest
// index whose term fits and MaxValue is that term.
//
// The error saturates: every N greater than MaxN yields the same MaxN and
// MaxValue, up to and including math.MaxUint64.
type CapacityError[T any] struct {
	N        uint64
	MaxN     uint64
	MaxValue T
}

// Error implements the error interface.
func (e *CapacityError[T]) Error() string {
	return fmt.Sprintf("fibonacci: F(%d) is out of range: largest representable term is F(%d) = %v",
		e.N, e.MaxN, e.MaxValue)
}

// Is reports whether target is ErrCapacityExceeded.
func (e *CapacityError[T]) Is(target error) bool {
	return target == ErrCapacityExceeded
}

// MapCapacityError converts the value type of a CapacityError. It returns
// nil when err is nil.
func MapCapacityError[T, U any](err *CapacityError[T], convert func(T) U) *CapacityError[U] {
	if err == nil {
		return nil
	}
	return &CapacityError[U]{
		N:        err.N,
		MaxN:     err.MaxN,
		MaxValue: convert(err.MaxValue),
	}
}
