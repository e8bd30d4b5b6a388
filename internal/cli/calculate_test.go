package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/agbru/fibs/internal/config"
)

func TestPrintExecutionConfig(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	cfg := config.AppConfig{N: 1000, Type: "big", Timeout: time.Minute}

	PrintExecutionConfig(cfg, &buf)

	output := buf.String()
	for _, want := range []string{"Numeric type big", "timeout of 1m0s", "logical processors"} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
}

func TestPrintExecutionMode(t *testing.T) {
	t.Parallel()
	tests := []struct {
		mode string
		cfg  config.AppConfig
		want string
	}{
		{ModeLookup, config.AppConfig{N: 42}, "lookup of F(42)"},
		{ModeSequence, config.AppConfig{Start: 5, Count: 3}, "3 terms starting at F(5)"},
		{ModeLimits, config.AppConfig{}, "capacity of every bounded type"},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		PrintExecutionMode(tt.mode, tt.cfg, &buf)
		if !strings.Contains(buf.String(), tt.want) {
			t.Errorf("PrintExecutionMode(%s) = %q, want it to contain %q", tt.mode, buf.String(), tt.want)
		}
	}
}
