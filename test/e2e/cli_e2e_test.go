package e2e

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// TestCLI_E2E builds the fibs binary and checks its output and exit codes.
func TestCLI_E2E(t *testing.T) {
	if testing.Short() {
		t.Skip("builds the binary")
	}

	tmpDir := t.TempDir()
	binName := "fibs"
	if runtime.GOOS == "windows" {
		binName = "fibs.exe"
	}
	binPath := filepath.Join(tmpDir, binName)

	// go test runs with the package directory as CWD.
	cmd := exec.Command("go", "build", "-o", binPath, "./cmd/fibs")
	cmd.Dir = "../.."
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("Failed to build fibs: %v", err)
	}

	tests := []struct {
		name     string
		args     []string
		env      []string
		wantOut  string // substring match (case-insensitive)
		wantCode int
	}{
		{"Basic lookup", []string{"-n", "10"}, nil, "F(10) = 55", 0},
		{"Default type max", []string{"-n", "93", "-q"}, nil, "12200160415121876738", 0},
		{"Zero", []string{"-n", "0", "-q"}, nil, "0", 0},
		{"Help", []string{"--help"}, nil, "usage", 0},
		{"Big", []string{"-n", "1000", "-type", "big"}, nil, "F(1000)", 0},
		{"Capacity exceeded", []string{"-n", "94"}, nil, "F(93) = 12200160415121876738", 5},
		{"Capacity int8", []string{"-n", "200", "-type", "int8"}, nil, "F(11) = 89", 5},
		{"Sequence", []string{"-start", "10", "-count", "3", "-q"}, nil, "55\n89\n144", 0},
		{"Limits", []string{"-limits"}, nil, "uint128", 0},
		{"Env type", []string{"-n", "186", "-q"}, []string{"FIBS_TYPE=uint128"}, "332825110087067562321196029789634457848", 0},
		{"Unknown type", []string{"-type", "float"}, nil, "configuration error", 4},
		{"Very short timeout", []string{"-n", "50000000", "-type", "big", "-timeout", "1ms"}, nil, "timeout", 2},
		{"Completion", []string{"-completion", "fish"}, nil, "complete -c fibs", 0},
		{"Version", []string{"--version"}, nil, "fibs", 0},
		{"Metrics", []string{"-n", "3", "-q", "-metrics"}, nil, "fibs_operations_total", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binPath, tt.args...)
			cmd.Env = append(append(os.Environ(), "NO_COLOR=1"), tt.env...)
			output, err := cmd.CombinedOutput()
			outStr := string(output)

			code := 0
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				code = exitErr.ExitCode()
			} else if err != nil {
				t.Fatalf("running fibs: %v", err)
			}
			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d\nOutput:\n%s", code, tt.wantCode, outStr)
			}
			if !strings.Contains(strings.ToLower(outStr), strings.ToLower(tt.wantOut)) {
				t.Errorf("Output missing expected string.\nExpected: %q\nGot:\n%s", tt.wantOut, outStr)
			}
		})
	}
}
