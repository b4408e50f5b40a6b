package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeMalformedPatch, "missing list: %s", "value")

	if err.Code != ErrCodeMalformedPatch {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeMalformedPatch)
	}

	if err.Message != "missing list: value" {
		t.Errorf("Message = %v, want %v", err.Message, "missing list: value")
	}

	expected := "MALFORMED_PATCH: missing list: value"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeIO, cause, "failed to read")

	if err.Code != ErrCodeIO {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeIO)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	unwrapped := errors.Unwrap(err)
	if unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}

	expected := "IO_ERROR: failed to read: underlying error"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWithLine(t *testing.T) {
	t.Run("attaches line", func(t *testing.T) {
		err := WithLine(New(ErrCodeNumberParse, "bad token %q", "x"), 7)
		expected := `NUMBER_PARSE: line 7: bad token "x"`
		if err.Error() != expected {
			t.Errorf("Error() = %v, want %v", err.Error(), expected)
		}
		if GetLine(err) != 7 {
			t.Errorf("GetLine() = %d, want 7", GetLine(err))
		}
	})

	t.Run("keeps existing line", func(t *testing.T) {
		first := WithLine(New(ErrCodeStackUnderflow, "pop"), 3)
		err := WithLine(first, 9)
		if GetLine(err) != 3 {
			t.Errorf("GetLine() = %d, want 3", GetLine(err))
		}
	})

	t.Run("does not mutate original", func(t *testing.T) {
		orig := New(ErrCodeWrongPatchSize, "size")
		_ = WithLine(orig, 4)
		if orig.Line != 0 {
			t.Errorf("original Line = %d, want 0", orig.Line)
		}
	})

	t.Run("plain error unchanged", func(t *testing.T) {
		plain := errors.New("plain")
		if got := WithLine(plain, 2); got != plain {
			t.Errorf("WithLine(plain) = %v, want %v", got, plain)
		}
	})
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeDegenerateAxis, "test"),
			code:     ErrCodeDegenerateAxis,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeDegenerateAxis, "test"),
			code:     ErrCodeIO,
			expected: false,
		},
		{
			name:     "wrapped error",
			err:      Wrap(ErrCodeIO, New(ErrCodeUsage, "inner"), "outer"),
			code:     ErrCodeIO,
			expected: true,
		},
		{
			name:     "fmt wrapped",
			err:      fmt.Errorf("interpret: %w", New(ErrCodeStackUnderflow, "pop")),
			code:     ErrCodeStackUnderflow,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeUsage,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeUsage,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{
			name:     "Error type",
			err:      New(ErrCodeBadControlPointCount, "test"),
			expected: ErrCodeBadControlPointCount,
		},
		{
			name:     "plain error",
			err:      errors.New("plain"),
			expected: "",
		},
		{
			name:     "nil",
			err:      nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.expected {
				t.Errorf("GetCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Error type",
			err:      New(ErrCodeUsage, "friendly message"),
			expected: "friendly message",
		},
		{
			name:     "Error with line",
			err:      WithLine(New(ErrCodeMalformedPatch, "no list"), 5),
			expected: "line 5: no list",
		},
		{
			name:     "plain error",
			err:      errors.New("plain error"),
			expected: "plain error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.expected {
				t.Errorf("UserMessage() = %v, want %v", got, tt.expected)
			}
		})
	}
}
