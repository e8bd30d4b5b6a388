package fibonacci

import (
	"context"
	"errors"
	"slices"
	"strconv"
	"testing"
	"time"

	"github.com/agbru/fibs/internal/numeric"
)

func TestBuiltinKindNames(t *testing.T) {
	t.Parallel()
	names := Names()
	for _, want := range []string{
		"big", "int", "int128", "int16", "int32", "int64", "int8",
		"uint", "uint128", "uint16", "uint32", "uint64", "uint8",
	} {
		if !slices.Contains(names, want) {
			t.Errorf("Names() = %v, missing %q", names, want)
		}
	}
	if !slices.IsSorted(names) {
		t.Errorf("Names() not sorted: %v", names)
	}
	if len(Kinds()) != len(names) {
		t.Errorf("Kinds() returned %d kinds, Names() %d", len(Kinds()), len(names))
	}
	if !DefaultRegistry().Has(DefaultKind) {
		t.Errorf("default kind %q is not registered", DefaultKind)
	}
}

func TestRegistryGetUnknown(t *testing.T) {
	t.Parallel()
	if _, err := Get("float64"); err == nil {
		t.Error("Get(float64) succeeded, want error")
	}
	defer func() {
		if recover() == nil {
			t.Error("MustGet(float64) did not panic")
		}
	}()
	MustGet("float64")
}

func TestRegistryReplace(t *testing.T) {
	t.Parallel()
	r := NewRegistry()
	r.Register(NewKind("small", "first", true, numeric.Uint8, formatUnsigned[uint8]))
	r.Register(NewKind("small", "second", true, numeric.Uint8, formatUnsigned[uint8]))
	k, err := r.Get("small")
	if err != nil {
		t.Fatal(err)
	}
	if k.Description() != "second" {
		t.Errorf("Description() = %q, want the replacement", k.Description())
	}
	if got := r.Names(); len(got) != 1 {
		t.Errorf("Names() = %v, want one entry", got)
	}
}

func TestKindLookup(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	term, err := MustGet("uint64").Lookup(ctx, 93)
	if err != nil || term != (Term{N: 93, Value: "12200160415121876738"}) {
		t.Errorf("uint64 Lookup(93) = (%+v, %v)", term, err)
	}

	term, err = MustGet("uint8").Lookup(ctx, 300)
	var capErr *CapacityError[string]
	if !errors.As(err, &capErr) {
		t.Fatalf("uint8 Lookup(300) error = %v, want *CapacityError[string]", err)
	}
	if capErr.N != 300 || capErr.MaxN != 13 || capErr.MaxValue != "233" {
		t.Errorf("uint8 Lookup(300) error = %+v", *capErr)
	}
	if term != (Term{N: 13, Value: "233"}) {
		t.Errorf("uint8 Lookup(300) saturated term = %+v", term)
	}

	term, err = MustGet("big").Lookup(ctx, 1000)
	if err != nil || term.Value != f1000 {
		t.Errorf("big Lookup(1000) = (%+v, %v)", term, err)
	}

	term, err = MustGet("int128").Lookup(ctx, 184)
	if err != nil || term.Value != "127127879743834334146972278486287885163" {
		t.Errorf("int128 Lookup(184) = (%+v, %v)", term, err)
	}
}

func TestKindSequence(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	k := MustGet("uint8")

	tests := []struct {
		name          string
		start, count  uint64
		wantValues    []string
		wantFirstN    uint64
		wantExhausted bool
	}{
		{"window", 3, 5, []string{"2", "3", "5", "8", "13"}, 3, false},
		{"up to limit", 10, 4, []string{"55", "89", "144", "233"}, 10, true},
		{"past limit", 12, 10, []string{"144", "233"}, 12, true},
		{"all remaining", 11, 0, []string{"89", "144", "233"}, 11, true},
		{"start beyond limit", 14, 3, nil, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res, err := k.Sequence(ctx, tt.start, tt.count)
			if err != nil {
				t.Fatalf("Sequence(%d, %d) error: %v", tt.start, tt.count, err)
			}
			var values []string
			for i, term := range res.Terms {
				values = append(values, term.Value)
				if term.N != tt.wantFirstN+uint64(i) {
					t.Errorf("term %d has index %d, want %d", i, term.N, tt.wantFirstN+uint64(i))
				}
			}
			if !slices.Equal(values, tt.wantValues) {
				t.Errorf("values = %v, want %v", values, tt.wantValues)
			}
			if res.Exhausted != tt.wantExhausted {
				t.Errorf("Exhausted = %v, want %v", res.Exhausted, tt.wantExhausted)
			}
		})
	}
}

func TestKindSequenceUnbounded(t *testing.T) {
	t.Parallel()
	k := MustGet("big")
	if _, err := k.Sequence(context.Background(), 0, 0); !errors.Is(err, ErrUnbounded) {
		t.Errorf("big Sequence(0, 0) error = %v, want ErrUnbounded", err)
	}
	res, err := k.Sequence(context.Background(), 100, 2)
	if err != nil {
		t.Fatal(err)
	}
	if res.Exhausted || len(res.Terms) != 2 || res.Terms[0].Value != "354224848179261915075" {
		t.Errorf("big Sequence(100, 2) = %+v", res)
	}
}

func TestKindLimit(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	term, err := MustGet("uint16").Limit(ctx)
	if err != nil || term != (Term{N: 24, Value: "46368"}) {
		t.Errorf("uint16 Limit() = (%+v, %v)", term, err)
	}

	wantN := uint64(92)
	if strconv.IntSize == 32 {
		wantN = 46
	}
	if term, err := MustGet("int").Limit(ctx); err != nil || term.N != wantN {
		t.Errorf("int Limit() = (%+v, %v), want N=%d", term, err, wantN)
	}

	if _, err := MustGet("big").Limit(ctx); !errors.Is(err, ErrUnbounded) {
		t.Errorf("big Limit() error = %v, want ErrUnbounded", err)
	}
}

func TestKindHonorsContext(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
	defer cancel()
	<-ctx.Done()

	k := MustGet("big")
	if _, err := k.Lookup(ctx, 1<<40); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Lookup error = %v, want context.DeadlineExceeded", err)
	}
	if _, err := k.Sequence(ctx, 1<<40, 1); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Sequence error = %v, want context.DeadlineExceeded", err)
	}
}
