package numeric

import (
	"math"
	"testing"
)

func TestUint128CheckedAdd(t *testing.T) {
	t.Parallel()
	ops := Uint128Arithmetic{}

	sum, ok := ops.CheckedAdd(Uint128From64(math.MaxUint64), Uint128From64(1))
	if !ok || sum != (Uint128{Hi: 1}) {
		t.Errorf("carry into high word: got (%+v, %v)", sum, ok)
	}
	if got := sum.String(); got != "18446744073709551616" {
		t.Errorf("String() = %s, want 18446744073709551616", got)
	}

	if _, ok := ops.CheckedAdd(MaxUint128, Uint128From64(1)); ok {
		t.Error("MaxUint128+1 should overflow")
	}
	if got := MaxUint128.String(); got != "340282366920938463463374607431768211455" {
		t.Errorf("MaxUint128 = %s", got)
	}
}

func TestInt128CheckedAdd(t *testing.T) {
	t.Parallel()
	ops := Int128Arithmetic{}

	if _, ok := ops.CheckedAdd(MaxInt128, Int128From64(1)); ok {
		t.Error("MaxInt128+1 should overflow")
	}
	if got := MaxInt128.String(); got != "170141183460469231731687303715884105727" {
		t.Errorf("MaxInt128 = %s", got)
	}

	sum, ok := ops.CheckedAdd(Int128From64(-10), Int128From64(3))
	if !ok || sum.String() != "-7" {
		t.Errorf("-10+3 = (%s, %v), want (-7, true)", sum, ok)
	}
	if !Int128From64(-1).IsNeg() || Int128From64(0).IsNeg() {
		t.Error("IsNeg is wrong")
	}

	minInt128 := Int128{Hi: 1 << 63}
	if _, ok := ops.CheckedAdd(minInt128, Int128From64(-1)); ok {
		t.Error("MinInt128-1 should overflow")
	}
}
