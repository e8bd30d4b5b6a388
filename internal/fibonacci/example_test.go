package fibonacci_test

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"math/big"
	"slices"

	"github.com/agbru/fibs/internal/fibonacci"
	"github.com/agbru/fibs/internal/numeric"
)

func ExampleF() {
	v, err := fibonacci.F(numeric.Uint64, 9)
	fmt.Println(v, err)
	// Output:
	// 34 <nil>
}

// ExampleF_capacity shows the saturating error returned when the term does
// not fit.
func ExampleF_capacity() {
	_, err := fibonacci.F(numeric.Uint8, 14)
	var capErr *fibonacci.CapacityError[uint8]
	if errors.As(err, &capErr) {
		fmt.Println(capErr.MaxN, capErr.MaxValue)
	}

	// Callers that just want a number can use the saturated value.
	v, _ := fibonacci.F(numeric.Uint8, 9000)
	fmt.Println(v)
	// Output:
	// 13 233
	// 233
}

func ExampleF_bigInt() {
	v, _ := fibonacci.F[*big.Int](numeric.BigInt{}, 100)
	fmt.Println(v)
	// Output:
	// 354224848179261915075
}

func ExampleGenerator_All() {
	g := fibonacci.NewGenerator(numeric.Uint8)
	fmt.Println(slices.Collect(g.All()))
	fmt.Println(g.State())
	// Output:
	// [0 1 1 2 3 5 8 13 21 34 55 89 144 233]
	// exhausted
}

// ExampleGenerator_Enumerate picks a few indices out of one pass.
func ExampleGenerator_Enumerate() {
	for n, v := range fibonacci.NewGenerator(numeric.Uint16).Enumerate() {
		switch n {
		case 3, 4, 9:
			fmt.Println(n, v)
		}
		if n == 9 {
			break
		}
	}
	// Output:
	// 3 2
	// 4 3
	// 9 34
}

func ExampleGenerator_pull() {
	next, stop := iter.Pull(fibonacci.NewGenerator(numeric.Int32).All())
	defer stop()
	for range 3 {
		next()
	}
	v, ok := next()
	fmt.Println(v, ok)
	// Output:
	// 2 true
}

func ExampleKind() {
	k := fibonacci.MustGet("uint128")
	limit, _ := k.Limit(context.Background())
	fmt.Printf("F(%d) = %s\n", limit.N, limit.Value)
	// Output:
	// F(186) = 332825110087067562321196029789634457848
}
