package main

import (
	"math/big"
	"testing"
)

// TestFibBig tests the oracle Fibonacci function with known values.
func TestFibBig(t *testing.T) {
	tests := []struct {
		name     string
		n        uint64
		expected string
	}{
		{"F(0) base case", 0, "0"},
		{"F(1) base case", 1, "1"},
		{"F(2) first non-trivial", 2, "1"},
		{"F(10)", 10, "55"},
		{"F(93) largest uint64", 93, "12200160415121876738"},
		{"F(94) requires 65 bits", 94, "19740274219868223167"},
		{"F(186) largest uint128", 186, "332825110087067562321196029789634457848"},
		{
			"F(1000)",
			1000,
			"43466557686937456435688527675040625802564660517371780402481729089536555417949051890403879840079255169295922593080322634775209689623239873322471161642996440906533187938298969649928516003704476137795166849228875",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := fibBig(tt.n)
			if result.String() != tt.expected {
				t.Errorf("fibBig(%d) = %s, want %s", tt.n, result.String(), tt.expected)
			}
		})
	}
}

func TestMaxValue(t *testing.T) {
	tests := []struct {
		bits   uint
		signed bool
		want   string
	}{
		{8, false, "255"},
		{8, true, "127"},
		{64, false, "18446744073709551615"},
		{128, true, "170141183460469231731687303715884105727"},
	}
	for _, tt := range tests {
		if got := maxValue(tt.bits, tt.signed).String(); got != tt.want {
			t.Errorf("maxValue(%d, %v) = %s, want %s", tt.bits, tt.signed, got, tt.want)
		}
	}
}

// TestMaxIndex checks the oracle limits against values computed by hand.
func TestMaxIndex(t *testing.T) {
	tests := []struct {
		limit    int64
		wantN    uint64
		wantTerm int64
	}{
		{0, 0, 0},
		{1, 2, 1},
		{127, 11, 89},
		{233, 13, 233},
		{255, 13, 233},
	}
	for _, tt := range tests {
		n, v := maxIndex(big.NewInt(tt.limit))
		if n != tt.wantN || v.Int64() != tt.wantTerm {
			t.Errorf("maxIndex(%d) = (%d, %s), want (%d, %d)", tt.limit, n, v, tt.wantN, tt.wantTerm)
		}
	}
}

func TestBuildGolden(t *testing.T) {
	data := buildGolden()
	if len(data.Limits) != len(widths) {
		t.Fatalf("got %d limits, want %d", len(data.Limits), len(widths))
	}
	if len(data.Terms) != len(targets) {
		t.Fatalf("got %d terms, want %d", len(data.Terms), len(targets))
	}

	want := map[string]uint64{
		"int8": 11, "uint8": 13, "int16": 23, "uint16": 24, "int32": 46,
		"uint32": 47, "int64": 92, "uint64": 93, "int128": 184, "uint128": 186,
	}
	for _, l := range data.Limits {
		if l.MaxN != want[l.Kind] {
			t.Errorf("%s: max_n = %d, want %d", l.Kind, l.MaxN, want[l.Kind])
		}
		if fibBig(l.MaxN).String() != l.MaxValue {
			t.Errorf("%s: max_value %s is not F(%d)", l.Kind, l.MaxValue, l.MaxN)
		}
	}
}

// TestFibBig_Properties tests mathematical properties of Fibonacci numbers.
func TestFibBig_Properties(t *testing.T) {
	t.Run("F(n) + F(n+1) = F(n+2)", func(t *testing.T) {
		for n := uint64(0); n < 50; n++ {
			sum := new(big.Int).Add(fibBig(n), fibBig(n+1))
			if sum.Cmp(fibBig(n+2)) != 0 {
				t.Errorf("F(%d) + F(%d) = %s, but F(%d) = %s",
					n, n+1, sum.String(), n+2, fibBig(n+2).String())
			}
		}
	})
}
