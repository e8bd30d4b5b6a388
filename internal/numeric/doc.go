// Package numeric defines the arithmetic capability the Fibonacci generator
// needs from a value type, and implements it for the built-in integer widths,
// 128-bit integers, math/big and (with the gmp build tag) GMP integers.
//
// The generator only ever asks three things of a type: its zero, its one, and
// an addition that reports overflow instead of wrapping. Arbitrary-precision
// types never report overflow.
package numeric
