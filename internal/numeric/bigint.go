package numeric

import "math/big"

// BigInt implements Arithmetic for *big.Int. Addition never overflows, so a
// generator over BigInt never exhausts.
//
// Every operation allocates a fresh *big.Int; no argument is ever mutated.
type BigInt struct{}

func (BigInt) Zero() *big.Int { return new(big.Int) }
func (BigInt) One() *big.Int  { return big.NewInt(1) }

// CheckedAdd always succeeds.
func (BigInt) CheckedAdd(a, b *big.Int) (*big.Int, bool) {
	return new(big.Int).Add(a, b), true
}

// Clone returns a copy of v.
func (BigInt) Clone(v *big.Int) *big.Int { return new(big.Int).Set(v) }

var (
	_ Arithmetic[*big.Int] = BigInt{}
	_ Cloner[*big.Int]     = BigInt{}
)
