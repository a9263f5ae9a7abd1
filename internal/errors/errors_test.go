// Package apperrors provides tests for application error types.
package apperrors

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestConfigError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		err         error
		expected    string
		checkTypeAs bool
	}{
		{
			name:     "Error returns message",
			err:      ConfigError{Message: "invalid flag value"},
			expected: "invalid flag value",
		},
		{
			name:     "NewConfigError creates formatted error",
			err:      NewConfigError("invalid value %d for flag %s", -1, "-repeat"),
			expected: "invalid value -1 for flag -repeat",
		},
		{
			name:        "ConfigError type assertion",
			err:         NewConfigError("test error"),
			expected:    "test error",
			checkTypeAs: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.err.Error() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, tt.err.Error())
			}
			if tt.checkTypeAs {
				var configErr ConfigError
				if !errors.As(tt.err, &configErr) {
					t.Error("expected error to be ConfigError type")
				}
			}
		})
	}
}

func TestValidationError(t *testing.T) {
	t.Parallel()
	err := ValidationError{Field: "clock", Message: "must be cpu or wall"}
	want := `validation error for "clock": must be cpu or wall`
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}

func TestVerificationError(t *testing.T) {
	t.Parallel()
	cause := errors.New("got 1, want 17711")
	err := VerificationError{Workload: "Fibonacci", Cause: cause}

	want := `workload "Fibonacci" failed verification: got 1, want 17711`
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the cause in the chain")
	}

	wrapped := fmt.Errorf("suite: %w", err)
	var target VerificationError
	if !errors.As(wrapped, &target) {
		t.Fatal("errors.As should find VerificationError through wrapping")
	}
	if target.Workload != "Fibonacci" {
		t.Errorf("Workload = %q, want %q", target.Workload, "Fibonacci")
	}
}

func TestWrapError(t *testing.T) {
	t.Parallel()

	t.Run("nil error returns nil", func(t *testing.T) {
		t.Parallel()
		if WrapError(nil, "context") != nil {
			t.Error("WrapError(nil) should return nil")
		}
	})

	t.Run("wraps with formatted context", func(t *testing.T) {
		t.Parallel()
		base := errors.New("disk full")
		err := WrapError(base, "writing %s", "metrics.prom")
		if err.Error() != "writing metrics.prom: disk full" {
			t.Errorf("unexpected message %q", err.Error())
		}
		if !errors.Is(err, base) {
			t.Error("wrapped error should unwrap to base")
		}
	})
}

func TestIsContextError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"canceled", context.Canceled, true},
		{"deadline", context.DeadlineExceeded, true},
		{"wrapped canceled", fmt.Errorf("run: %w", context.Canceled), true},
		{"other", errors.New("boom"), false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsContextError(tt.err); got != tt.want {
				t.Errorf("IsContextError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodeFor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"config", NewConfigError("bad"), ExitErrorConfig},
		{"validation", ValidationError{Field: "fib", Message: "x"}, ExitErrorConfig},
		{"verification", VerificationError{Workload: "SumFloats", Cause: errors.New("x")}, ExitErrorMismatch},
		{"wrapped verification", WrapError(VerificationError{Workload: "SumFloats", Cause: errors.New("x")}, "suite"), ExitErrorMismatch},
		{"canceled", WrapError(context.Canceled, "suite"), ExitErrorCanceled},
		{"generic", errors.New("io"), ExitErrorGeneric},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ExitCodeFor(tt.err); got != tt.want {
				t.Errorf("ExitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
