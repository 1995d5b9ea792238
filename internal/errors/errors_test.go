package errors

import (
	"errors"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "error without cause",
			err:      &Error{Code: ErrCodeConfig, Message: "invalid configuration"},
			expected: "[CONFIG_ERROR] invalid configuration",
		},
		{
			name:     "error with cause",
			err:      Wrap(ErrCodeManifest, "failed to parse manifest", errors.New("unexpected token")),
			expected: "[MANIFEST_ERROR] failed to parse manifest: unexpected token",
		},
		{
			name:     "invalid input without cause",
			err:      New(ErrCodeInvalidInput, "unknown algorithm \"crc32\""),
			expected: "[INVALID_INPUT] unknown algorithm \"crc32\"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeInternal, "wrapper", cause)

	if unwrapped := err.Unwrap(); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}
}

func TestError_Is(t *testing.T) {
	err1 := &Error{Code: ErrCodeStore, Message: "test error"}
	err2 := &Error{Code: ErrCodeStore, Message: "another error"}
	err3 := &Error{Code: ErrCodeWatch, Message: "watch error"}

	if !err1.Is(err2) {
		t.Errorf("Expected errors with same code to match")
	}

	if err1.Is(err3) {
		t.Errorf("Expected errors with different codes to not match")
	}
}

func TestError_IsViaStdlib(t *testing.T) {
	cause := errors.New("disk full")
	err := NewStoreError("failed to persist record", cause)

	if !errors.Is(err, New(ErrCodeStore, "")) {
		t.Errorf("errors.Is should match on error code")
	}

	if !errors.Is(err, cause) {
		t.Errorf("errors.Is should reach the wrapped cause")
	}
}

func TestNewInvalidInputError(t *testing.T) {
	cause := errors.New("bad base64 payload")
	err := NewInvalidInputError("failed to decode request", cause)

	if err.Code != ErrCodeInvalidInput {
		t.Errorf("Expected code %v, got %v", ErrCodeInvalidInput, err.Code)
	}

	if err.Message != "failed to decode request" {
		t.Errorf("Expected message 'failed to decode request', got %v", err.Message)
	}

	if err.Cause != cause {
		t.Errorf("Expected cause to be preserved")
	}
}
