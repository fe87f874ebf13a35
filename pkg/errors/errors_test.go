package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeNotFound, "input directory not found")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Code != ErrCodeNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeNotFound, err.Code)
	}
	if err.Message != "input directory not found" {
		t.Errorf("expected message 'input directory not found', got %s", err.Message)
	}
	if err.Cause != nil {
		t.Errorf("expected nil cause, got %v", err.Cause)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeInternal, "write failed", cause)

	if err.Code != ErrCodeInternal {
		t.Errorf("expected code %s, got %s", ErrCodeInternal, err.Code)
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected cause to be wrapped")
	}
}

func TestWrapWithContext(t *testing.T) {
	cause := errors.New("unexpected end of JSON input")
	ctx := map[string]any{
		"path": "recipe/ladder.json",
	}

	err := WrapWithContext(ErrCodeInvalidRequest, "failed to parse recipe", cause, ctx)

	if err.Code != ErrCodeInvalidRequest {
		t.Errorf("expected code %s, got %s", ErrCodeInvalidRequest, err.Code)
	}
	if err.Context == nil {
		t.Fatal("expected context to be set")
	}
	if err.Context["path"] != "recipe/ladder.json" {
		t.Errorf("expected path to be recipe/ladder.json")
	}
}

func TestNewWithContext(t *testing.T) {
	err := NewWithContext(ErrCodeUnrecognized, "unknown recipe type", map[string]any{"type": "unknown_kind"})
	if err.Cause != nil {
		t.Errorf("expected nil cause, got %v", err.Cause)
	}
	if err.Context["type"] != "unknown_kind" {
		t.Errorf("expected type context, got %v", err.Context)
	}
}

func TestError(t *testing.T) {
	tests := []struct {
		name     string
		err      *StructuredError
		expected string
	}{
		{
			name:     "error without cause",
			err:      New(ErrCodeNotFound, "not found"),
			expected: "[NOT_FOUND] not found",
		},
		{
			name:     "error with cause",
			err:      Wrap(ErrCodeInternal, "failed", errors.New("root cause")),
			expected: "[INTERNAL] failed: root cause",
		},
		{
			name:     "unrecognized record",
			err:      New(ErrCodeUnrecognized, "unsupported recipe type"),
			expected: "[UNRECOGNIZED] unsupported recipe type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrap(ErrCodeInternal, "wrapped", cause)

	unwrapped := err.Unwrap()
	if !errors.Is(unwrapped, cause) {
		t.Errorf("expected unwrapped error to be original cause")
	}

	if !errors.Is(err, cause) {
		t.Errorf("errors.Is should work with Unwrap")
	}
}

func TestIsCode(t *testing.T) {
	inner := New(ErrCodeUnrecognized, "missing result id")
	outer := Wrap(ErrCodeInternal, "interpret failed", inner)

	tests := []struct {
		name string
		err  error
		code ErrorCode
		want bool
	}{
		{name: "nil error", err: nil, code: ErrCodeInternal, want: false},
		{name: "plain error", err: errors.New("plain"), code: ErrCodeInternal, want: false},
		{name: "direct match", err: inner, code: ErrCodeUnrecognized, want: true},
		{name: "outer match", err: outer, code: ErrCodeInternal, want: true},
		{name: "nested match", err: outer, code: ErrCodeUnrecognized, want: true},
		{name: "fmt wrapped", err: fmt.Errorf("context: %w", inner), code: ErrCodeUnrecognized, want: true},
		{name: "no match", err: outer, code: ErrCodeNotFound, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsCode(tt.err, tt.code); got != tt.want {
				t.Errorf("IsCode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestErrorCodes(t *testing.T) {
	codes := []ErrorCode{
		ErrCodeNotFound,
		ErrCodeTimeout,
		ErrCodeInternal,
		ErrCodeInvalidRequest,
		ErrCodeUnrecognized,
	}

	for _, code := range codes {
		if string(code) == "" {
			t.Errorf("error code should not be empty: %v", code)
		}
	}
}
