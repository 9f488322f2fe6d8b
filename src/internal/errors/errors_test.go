package errors

import (
	"errors"
	"fmt"
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
			err:      Wrap(ErrCodeSource, "failed to read list", errors.New("permission denied")),
			expected: "[SOURCE_ERROR] failed to read list: permission denied",
		},
		{
			name:     "duplicate list",
			err:      NewDuplicateListError("alexa"),
			expected: `[DUPLICATE_LIST] duplicate list name: "alexa"`,
		},
		{
			name:     "unknown list",
			err:      NewUnknownListError("nope"),
			expected: `[UNKNOWN_LIST] unknown list: "nope"`,
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
	if !errors.Is(err, cause) {
		t.Errorf("errors.Is should find the cause")
	}
}

func TestError_Is(t *testing.T) {
	err1 := &Error{Code: ErrCodeConfig, Message: "test error"}
	err2 := &Error{Code: ErrCodeConfig, Message: "another error"}
	err3 := &Error{Code: ErrCodeSource, Message: "source error"}

	if !err1.Is(err2) {
		t.Errorf("Expected errors with same code to match")
	}

	if err1.Is(err3) {
		t.Errorf("Expected errors with different codes to not match")
	}
}

func TestSentinels(t *testing.T) {
	wrapped := fmt.Errorf("load failed: %w", NewDuplicateListError("x"))

	if !errors.Is(wrapped, ErrDuplicateList) {
		t.Errorf("expected wrapped duplicate error to match ErrDuplicateList")
	}
	if errors.Is(wrapped, ErrUnknownList) {
		t.Errorf("duplicate error must not match ErrUnknownList")
	}
	if !errors.Is(NewUnknownListError("y"), ErrUnknownList) {
		t.Errorf("expected unknown list error to match ErrUnknownList")
	}
}

func TestHasCode(t *testing.T) {
	err := fmt.Errorf("outer: %w", NewSourceError("fetch", errors.New("timeout")))

	if !HasCode(err, ErrCodeSource) {
		t.Errorf("expected HasCode to find SOURCE_ERROR")
	}
	if HasCode(err, ErrCodeConfig) {
		t.Errorf("unexpected CONFIG_ERROR match")
	}
	if HasCode(nil, ErrCodeSource) {
		t.Errorf("nil error must not match")
	}
}
