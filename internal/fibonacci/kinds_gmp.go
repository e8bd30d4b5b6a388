//go:build gmp

// This file registers the "gmp" kind, conditionally compiled with the "gmp"
// build tag. Building it requires cgo and libgmp:
//   - Linux: sudo apt-get install libgmp-dev (Debian/Ubuntu)
//   - macOS: brew install gmp

package fibonacci

import (
	"github.com/ncw/gmp"

	"github.com/agbru/fibs/internal/numeric"
)

func init() {
	Register(NewKind[*gmp.Int]("gmp", "arbitrary-precision integer (libgmp)", false,
		numeric.GMP{}, (*gmp.Int).String))
}
