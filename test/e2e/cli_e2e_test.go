package e2e

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"
	"testing"
)

var resultLine = regexp.MustCompile(`^(SumFloats|Fibonacci): [0-9]+(\.[0-9]+)?(e[-+][0-9]+)?$`)

// buildBinary compiles ./cmd/microbench into a temporary directory.
// go test runs with the package directory as CWD, so the module root is two
// levels up.
func buildBinary(t *testing.T) string {
	t.Helper()
	binName := "microbench"
	if runtime.GOOS == "windows" {
		binName = "microbench.exe"
	}
	binPath := filepath.Join(t.TempDir(), binName)

	cmd := exec.Command("go", "build", "-o", binPath, "./cmd/microbench")
	cmd.Dir = "../.."
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("Failed to build microbench: %v", err)
	}
	return binPath
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

// TestCLI_NoArguments verifies the two-line output contract of a bare run.
func TestCLI_NoArguments(t *testing.T) {
	binPath := buildBinary(t)

	var stdout, stderr bytes.Buffer
	cmd := exec.Command(binPath)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("microbench failed: %v\nstderr: %s", err, stderr.String())
	}

	lines := strings.Split(strings.TrimSuffix(stdout.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2:\n%s", len(lines), stdout.String())
	}
	if !strings.HasPrefix(lines[0], "SumFloats: ") || !strings.HasPrefix(lines[1], "Fibonacci: ") {
		t.Errorf("unexpected order:\n%s", stdout.String())
	}
	for _, l := range lines {
		if !resultLine.MatchString(l) {
			t.Errorf("line %q does not match <Label>: <seconds>", l)
		}
	}
}

func TestCLI_Flags(t *testing.T) {
	binPath := buildBinary(t)

	tests := []struct {
		name     string
		args     []string
		env      []string
		wantOut  string // substring match (case-insensitive) on combined output
		wantCode int
	}{
		{
			name:     "Help",
			args:     []string{"-help"},
			wantOut:  "usage",
			wantCode: 0,
		},
		{
			name:     "Version Flag",
			args:     []string{"--version"},
			wantOut:  "microbench",
			wantCode: 0,
		},
		{
			name:     "Wall Clock Table",
			args:     []string{"-clock", "wall", "-format", "table"},
			wantOut:  "benchmark summary (wall clock)",
			wantCode: 0,
		},
		{
			name:     "JSON Via Env",
			env:      []string{"MICROBENCH_FORMAT=json"},
			wantOut:  `"label": "fibonacci"`,
			wantCode: 0,
		},
		{
			name:     "Invalid Clock",
			args:     []string{"-clock", "sundial"},
			wantOut:  `validation error for "clock"`,
			wantCode: 4,
		},
		{
			name:     "JSON Diagnostics",
			args:     []string{"-log-format", "json", "-details", "-fib", "10"},
			wantOut:  `"message":"run details"`,
			wantCode: 0,
		},
		{
			name:     "Unknown Flag",
			args:     []string{"-turbo"},
			wantOut:  "flag provided but not defined",
			wantCode: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binPath, tt.args...)
			cmd.Env = append(append(os.Environ(), "NO_COLOR=1"), tt.env...)
			output, err := cmd.CombinedOutput()
			outStr := string(output)

			if got := exitCode(err); got != tt.wantCode {
				t.Errorf("exit code = %d, want %d\nOutput: %s", got, tt.wantCode, outStr)
			}
			if tt.wantOut != "" && !strings.Contains(strings.ToLower(outStr), strings.ToLower(tt.wantOut)) {
				t.Errorf("Output missing expected string.\nExpected: %q\nGot:\n%s", tt.wantOut, outStr)
			}
		})
	}
}
