package numeric

import (
	"math/big"
	"math/bits"
)

// Uint128 is an unsigned 128-bit integer.
type Uint128 struct {
	Hi, Lo uint64
}

// Uint128From64 widens v to 128 bits.
func Uint128From64(v uint64) Uint128 { return Uint128{Lo: v} }

// MaxUint128 is the largest Uint128 value.
var MaxUint128 = Uint128{Hi: ^uint64(0), Lo: ^uint64(0)}

// BigInt returns u as a *big.Int.
func (u Uint128) BigInt() *big.Int {
	b := new(big.Int).SetUint64(u.Hi)
	b.Lsh(b, 64)
	return b.Or(b, new(big.Int).SetUint64(u.Lo))
}

// String renders u in base 10.
func (u Uint128) String() string {
	if u.Hi == 0 {
		return new(big.Int).SetUint64(u.Lo).String()
	}
	return u.BigInt().String()
}

// Int128 is a signed two's complement 128-bit integer.
type Int128 struct {
	Hi, Lo uint64
}

// Int128From64 sign-extends v to 128 bits.
func Int128From64(v int64) Int128 {
	return Int128{Hi: uint64(v >> 63), Lo: uint64(v)}
}

// MaxInt128 is the largest Int128 value.
var MaxInt128 = Int128{Hi: ^uint64(0) >> 1, Lo: ^uint64(0)}

// IsNeg reports whether i < 0.
func (i Int128) IsNeg() bool { return i.Hi>>63 == 1 }

// BigInt returns i as a *big.Int.
func (i Int128) BigInt() *big.Int {
	b := Uint128(i).BigInt()
	if i.IsNeg() {
		b.Sub(b, new(big.Int).Lsh(big.NewInt(1), 128))
	}
	return b
}

// String renders i in base 10.
func (i Int128) String() string { return i.BigInt().String() }

func add128(aHi, aLo, bHi, bLo uint64) (hi, lo, carry uint64) {
	lo, c := bits.Add64(aLo, bLo, 0)
	hi, carry = bits.Add64(aHi, bHi, c)
	return hi, lo, carry
}

// Uint128Arithmetic implements Arithmetic[Uint128].
type Uint128Arithmetic struct{}

func (Uint128Arithmetic) Zero() Uint128 { return Uint128{} }
func (Uint128Arithmetic) One() Uint128  { return Uint128{Lo: 1} }

// CheckedAdd fails when the carry leaves the high word.
func (Uint128Arithmetic) CheckedAdd(a, b Uint128) (Uint128, bool) {
	hi, lo, carry := add128(a.Hi, a.Lo, b.Hi, b.Lo)
	if carry != 0 {
		return Uint128{}, false
	}
	return Uint128{Hi: hi, Lo: lo}, true
}

// Int128Arithmetic implements Arithmetic[Int128].
type Int128Arithmetic struct{}

func (Int128Arithmetic) Zero() Int128 { return Int128{} }
func (Int128Arithmetic) One() Int128  { return Int128{Lo: 1} }

// CheckedAdd fails when both operands share a sign the sum does not.
func (Int128Arithmetic) CheckedAdd(a, b Int128) (Int128, bool) {
	hi, lo, _ := add128(a.Hi, a.Lo, b.Hi, b.Lo)
	sum := Int128{Hi: hi, Lo: lo}
	if a.IsNeg() == b.IsNeg() && sum.IsNeg() != a.IsNeg() {
		return Int128{}, false
	}
	return sum, true
}

var (
	_ Arithmetic[Uint128] = Uint128Arithmetic{}
	_ Arithmetic[Int128]  = Int128Arithmetic{}
)
