//go:build gmp

// GMP support is opt-in (go build -tags=gmp) because it needs libgmp and cgo.

package numeric

import "github.com/ncw/gmp"

// GMP implements Arithmetic for *gmp.Int. Like BigInt it never overflows;
// additions run in libgmp's assembly routines.
type GMP struct{}

func (GMP) Zero() *gmp.Int { return gmp.NewInt(0) }
func (GMP) One() *gmp.Int  { return gmp.NewInt(1) }

// CheckedAdd always succeeds.
func (GMP) CheckedAdd(a, b *gmp.Int) (*gmp.Int, bool) {
	return gmp.NewInt(0).Add(a, b), true
}

// Clone returns a copy of v.
func (GMP) Clone(v *gmp.Int) *gmp.Int { return gmp.NewInt(0).Set(v) }

var (
	_ Arithmetic[*gmp.Int] = GMP{}
	_ Cloner[*gmp.Int]     = GMP{}
)
