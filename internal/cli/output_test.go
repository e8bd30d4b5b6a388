package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/agbru/fibs/internal/fibonacci"
)

func TestWriteResultToFile(t *testing.T) {
	t.Parallel()
	tmpDir := t.TempDir()
	term := fibonacci.Term{N: 10, Value: "55"}

	testCases := []struct {
		name       string
		outputFile string
		checkFunc  func(t *testing.T, filePath string)
	}{
		{
			name:       "Write result to file",
			outputFile: filepath.Join(tmpDir, "result.txt"),
			checkFunc: func(t *testing.T, filePath string) {
				content, err := os.ReadFile(filePath)
				if err != nil {
					t.Fatalf("Failed to read output file: %v", err)
				}
				contentStr := string(content)
				for _, want := range []string{"# Type: uint64", "# N: 10", "# Digits: 2", "F(10) =\n55\n"} {
					if !strings.Contains(contentStr, want) {
						t.Errorf("file should contain %q, got:\n%s", want, contentStr)
					}
				}
			},
		},
		{
			name:       "Empty output file (no write)",
			outputFile: "",
		},
		{
			name:       "Create nested directory",
			outputFile: filepath.Join(tmpDir, "nested", "dir", "result.txt"),
			checkFunc: func(t *testing.T, filePath string) {
				if _, err := os.Stat(filePath); err != nil {
					t.Errorf("File should exist in nested directory: %v", err)
				}
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			config := OutputConfig{OutputFile: tc.outputFile}
			if err := WriteResultToFile(term, "uint64", 100*time.Millisecond, config); err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if tc.checkFunc != nil {
				tc.checkFunc(t, tc.outputFile)
			}
		})
	}
}

func TestWriteResultToFile_Error(t *testing.T) {
	t.Parallel()
	tmpDir := t.TempDir()
	blocker := filepath.Join(tmpDir, "file")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	config := OutputConfig{OutputFile: filepath.Join(blocker, "sub", "result.txt")}
	if err := WriteResultToFile(fibonacci.Term{N: 1, Value: "1"}, "int8", 0, config); err == nil {
		t.Error("expected an error when the parent path is a file")
	}
}

func TestDisplayQuietResult(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	DisplayQuietResult(&buf, fibonacci.Term{N: 93, Value: "12200160415121876738"})
	if got := buf.String(); got != "12200160415121876738\n" {
		t.Errorf("DisplayQuietResult = %q", got)
	}
}

func TestDisplayResultWithConfig(t *testing.T) {
	t.Parallel()
	term := fibonacci.Term{N: 20, Value: "6765"}

	t.Run("Quiet", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		if err := DisplayResultWithConfig(&buf, term, "int16", time.Millisecond, OutputConfig{Quiet: true}); err != nil {
			t.Fatal(err)
		}
		if buf.String() != "6765\n" {
			t.Errorf("quiet output = %q", buf.String())
		}
	})

	t.Run("Details and file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "out.txt")
		var buf bytes.Buffer
		cfg := OutputConfig{Details: true, OutputFile: path}
		if err := DisplayResultWithConfig(&buf, term, "int16", time.Millisecond, cfg); err != nil {
			t.Fatal(err)
		}
		out := buf.String()
		for _, want := range []string{"F(20) = 6765", "Type: int16", "digits: 4", "Result saved to: " + path} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q:\n%s", want, out)
			}
		}
		if _, err := os.Stat(path); err != nil {
			t.Errorf("output file not written: %v", err)
		}
	})
}

func TestWriteSequenceToFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "seq", "uint8.txt")
	res := fibonacci.SequenceResult{
		Terms:     []fibonacci.Term{{N: 12, Value: "144"}, {N: 13, Value: "233"}},
		Exhausted: true,
	}

	if err := WriteSequenceToFile(res, "uint8", time.Microsecond, OutputConfig{OutputFile: path}); err != nil {
		t.Fatalf("WriteSequenceToFile() error = %v", err)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read output file: %v", err)
	}
	for _, want := range []string{"# Type: uint8", "# Terms: 2", "# Exhausted: true", "F(12) = 144\nF(13) = 233\n"} {
		if !strings.Contains(string(content), want) {
			t.Errorf("file should contain %q, got:\n%s", want, content)
		}
	}

	if err := WriteSequenceToFile(res, "uint8", 0, OutputConfig{}); err != nil {
		t.Errorf("empty output path should be a no-op, got %v", err)
	}
}
