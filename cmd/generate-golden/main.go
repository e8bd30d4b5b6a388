// Command generate-golden regenerates internal/fibonacci/testdata/limits.golden.json.
//
// The values come from an independent math/big oracle, not from the
// generator under test, so the golden test compares two implementations.
//
//	go run ./cmd/generate-golden
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
)

// GoldenLimit is the capacity of one fixed-width kind.
type GoldenLimit struct {
	Kind     string `json:"kind"`
	Bits     uint   `json:"bits"`
	Signed   bool   `json:"signed"`
	MaxN     uint64 `json:"max_n"`
	MaxValue string `json:"max_value"`
}

// GoldenTerm is a single F(n).
type GoldenTerm struct {
	N      uint64 `json:"n"`
	Result string `json:"result"`
}

// GoldenFile is the layout of limits.golden.json.
type GoldenFile struct {
	Limits []GoldenLimit `json:"limits"`
	Terms  []GoldenTerm  `json:"terms"`
}

type width struct {
	kind   string
	bits   uint
	signed bool
}

var widths = []width{
	{"int8", 8, true},
	{"int16", 16, true},
	{"int32", 32, true},
	{"int64", 64, true},
	{"int128", 128, true},
	{"uint8", 8, false},
	{"uint16", 16, false},
	{"uint32", 32, false},
	{"uint64", 64, false},
	{"uint128", 128, false},
}

var targets = []uint64{
	0, 1, 2, 3, 4, 5, 10, 20, 50, 92, 93, 94, 100,
	128, 186, 187, 256, 512, 1000, 1024, 2000, 2048, 5000,
}

func main() {
	outputDir := flag.String("out", "internal/fibonacci/testdata", "Output directory for the golden file")
	flag.Parse()

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	filename := filepath.Join(*outputDir, "limits.golden.json")
	file, err := os.Create(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	data := buildGolden()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully generated golden file at %s (%d limits, %d terms)\n",
		filename, len(data.Limits), len(data.Terms))
}

func buildGolden() GoldenFile {
	var data GoldenFile
	for _, w := range widths {
		n, v := maxIndex(maxValue(w.bits, w.signed))
		data.Limits = append(data.Limits, GoldenLimit{
			Kind:     w.kind,
			Bits:     w.bits,
			Signed:   w.signed,
			MaxN:     n,
			MaxValue: v.String(),
		})
	}
	for _, n := range targets {
		data.Terms = append(data.Terms, GoldenTerm{N: n, Result: fibBig(n).String()})
	}
	return data
}

// maxValue returns the largest integer of the given width.
func maxValue(bits uint, signed bool) *big.Int {
	if signed {
		bits--
	}
	m := new(big.Int).Lsh(big.NewInt(1), bits)
	return m.Sub(m, big.NewInt(1))
}

// maxIndex returns the largest n with F(n) <= limit, and F(n).
func maxIndex(limit *big.Int) (uint64, *big.Int) {
	a, b := big.NewInt(0), big.NewInt(1)
	var n uint64
	for b.Cmp(limit) <= 0 {
		a.Add(a, b)
		a, b = b, a
		n++
	}
	return n, a
}

// fibBig calculates the nth Fibonacci number using math/big (iterative implementation).
// This serves as our "Oracle" using the standard library.
func fibBig(n uint64) *big.Int {
	if n == 0 {
		return big.NewInt(0)
	}
	if n == 1 {
		return big.NewInt(1)
	}

	a := big.NewInt(0)
	b := big.NewInt(1)

	for i := uint64(2); i <= n; i++ {
		// a, b = b, a+b
		a.Add(a, b)
		a, b = b, a
	}
	return b
}
