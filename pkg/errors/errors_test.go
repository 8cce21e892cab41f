package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestStructuredErrorMessage(t *testing.T) {
	err := New(ErrCodeNotFound, "machine not found")
	if !strings.Contains(err.Error(), "NOT_FOUND") {
		t.Errorf("expected code in message, got %q", err.Error())
	}
	if !strings.Contains(err.Error(), "machine not found") {
		t.Errorf("expected message in output, got %q", err.Error())
	}
}

func TestStructuredErrorWrapsCause(t *testing.T) {
	cause := fmt.Errorf("underlying failure")
	err := Wrap(ErrCodeInternal, "evaluation failed", cause)

	if !stderrors.Is(err, cause) {
		t.Error("expected errors.Is to find the cause")
	}
	if !strings.Contains(err.Error(), "underlying failure") {
		t.Errorf("expected cause in message, got %q", err.Error())
	}
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{name: "structured", err: New(ErrCodeInvalidChoice, "bad choice"), want: ErrCodeInvalidChoice},
		{name: "wrapped in fmt", err: fmt.Errorf("outer: %w", New(ErrCodeNotFound, "missing")), want: ErrCodeNotFound},
		{name: "plain error", err: fmt.Errorf("plain"), want: ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeOf(tt.err); got != tt.want {
				t.Errorf("CodeOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsCode(t *testing.T) {
	err := NewWithContext(ErrCodeInvalidRequest, "bad input", map[string]any{"field": "tier"})
	if !IsCode(err, ErrCodeInvalidRequest) {
		t.Error("expected IsCode to match")
	}
	if IsCode(err, ErrCodeNotFound) {
		t.Error("expected IsCode to reject mismatched code")
	}
}

func TestContextPreserved(t *testing.T) {
	err := NewWithContext(ErrCodeInvalidChoice, "bad choice", map[string]any{"choice": "coil"})

	var serr *StructuredError
	if !stderrors.As(err, &serr) {
		t.Fatal("expected StructuredError")
	}
	if serr.Context["choice"] != "coil" {
		t.Errorf("unexpected context: %v", serr.Context)
	}
}
