package metrics

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecorder_Observe(t *testing.T) {
	t.Parallel()

	r := NewRecorder(nil)
	r.Observe("uint64", OpLookup, StatusOK, time.Millisecond)
	r.Observe("uint64", OpLookup, StatusOK, 2*time.Millisecond)
	r.Observe("uint8", OpLookup, StatusCapacity, time.Microsecond)

	if got := testutil.ToFloat64(r.operations.WithLabelValues("uint64", OpLookup, StatusOK)); got != 2 {
		t.Errorf("uint64 ok lookups = %v, want 2", got)
	}
	if got := testutil.ToFloat64(r.operations.WithLabelValues("uint8", OpLookup, StatusCapacity)); got != 1 {
		t.Errorf("uint8 capacity lookups = %v, want 1", got)
	}
	if n := testutil.CollectAndCount(r.duration); n != 2 {
		t.Errorf("histogram series = %d, want 2", n)
	}
}

func TestRecorder_TermsAndCapacity(t *testing.T) {
	t.Parallel()

	r := NewRecorder(nil)
	r.AddTerms("int8", 12)
	r.AddTerms("int8", 0)
	r.AddTerms("int8", -3)
	r.SetCapacity("int8", 11)

	if got := testutil.ToFloat64(r.terms.WithLabelValues("int8")); got != 12 {
		t.Errorf("terms = %v, want 12", got)
	}
	if got := testutil.ToFloat64(r.maxN.WithLabelValues("int8")); got != 11 {
		t.Errorf("max n = %v, want 11", got)
	}
}

func TestRecorder_WriteText(t *testing.T) {
	t.Parallel()

	r := NewRecorder(NewMemoryCollector())
	r.Observe("big", OpSequence, StatusOK, time.Millisecond)
	r.AddTerms("big", 5)

	var buf bytes.Buffer
	if err := r.WriteText(&buf); err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"# TYPE fibs_operations_total counter",
		`fibs_operations_total{kind="big",operation="sequence",status="ok"} 1`,
		`fibs_terms_emitted_total{kind="big"} 5`,
		"fibs_operation_duration_seconds_bucket",
		"fibs_heap_alloc_bytes",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestRecorder_Isolated(t *testing.T) {
	t.Parallel()

	a, b := NewRecorder(nil), NewRecorder(nil)
	a.AddTerms("uint8", 3)
	if got := testutil.ToFloat64(b.terms.WithLabelValues("uint8")); got != 0 {
		t.Errorf("recorders share state: %v", got)
	}
	if a.Registry() == b.Registry() {
		t.Error("recorders should own distinct registries")
	}
}
