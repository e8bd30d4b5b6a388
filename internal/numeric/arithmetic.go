package numeric

import "golang.org/x/exp/constraints"

// Arithmetic is the capability bound on the generator's value type T.
type Arithmetic[T any] interface {
	// Zero returns the additive identity of T.
	Zero() T
	// One returns the multiplicative identity of T.
	One() T
	// CheckedAdd returns a+b. ok is false when the sum is not representable
	// in T, in which case sum must be ignored.
	CheckedAdd(a, b T) (sum T, ok bool)
}

// Cloner is implemented by Arithmetic values whose T is a reference type.
// Values handed out to callers are cloned so that mutating them cannot
// corrupt the state a generator carries.
type Cloner[T any] interface {
	Clone(v T) T
}

// Integer implements Arithmetic for every built-in integer type.
type Integer[T constraints.Integer] struct{}

// Zero returns 0.
func (Integer[T]) Zero() T { return 0 }

// One returns 1.
func (Integer[T]) One() T { return 1 }

// CheckedAdd adds a and b, reporting false instead of wrapping around.
func (Integer[T]) CheckedAdd(a, b T) (T, bool) {
	s := a + b
	if (b > 0 && s < a) || (b < 0 && s > a) {
		return 0, false
	}
	return s, true
}

// Built-in widths, ready to pass to the generator.
var (
	Int     Arithmetic[int]     = Integer[int]{}
	Int8    Arithmetic[int8]    = Integer[int8]{}
	Int16   Arithmetic[int16]   = Integer[int16]{}
	Int32   Arithmetic[int32]   = Integer[int32]{}
	Int64   Arithmetic[int64]   = Integer[int64]{}
	Uint    Arithmetic[uint]    = Integer[uint]{}
	Uint8   Arithmetic[uint8]   = Integer[uint8]{}
	Uint16  Arithmetic[uint16]  = Integer[uint16]{}
	Uint32  Arithmetic[uint32]  = Integer[uint32]{}
	Uint64  Arithmetic[uint64]  = Integer[uint64]{}
	Uintptr Arithmetic[uintptr] = Integer[uintptr]{}
)
