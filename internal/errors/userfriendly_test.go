package errors

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"syscall"
	"testing"
)

func TestUserFriendlyError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      UserFriendlyError
		contains []string
	}{
		{
			name:     "message only",
			err:      UserFriendlyError{Message: "something broke"},
			contains: []string{"something broke"},
		},
		{
			name: "all fields",
			err: UserFriendlyError{
				Message: "read failed",
				Reason:  "closed",
				Hint:    "check stdin",
				Try:     "breathe run",
				Err:     fmt.Errorf("read /dev/stdin: bad file descriptor"),
			},
			contains: []string{"read failed", "Reason: closed", "Hint: check stdin", "Try: breathe run", "Details: read /dev/stdin"},
		},
		{
			name: "no reason",
			err: UserFriendlyError{
				Message: "failed",
				Hint:    "hint here",
			},
			contains: []string{"failed", "Hint: hint here"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("Error() = %q, want to contain %q", msg, s)
				}
			}
		})
	}
}

func TestUserFriendlyError_ErrorOmitsEmptyFields(t *testing.T) {
	err := UserFriendlyError{Message: "msg"}
	msg := err.Error()
	if strings.Contains(msg, "Reason:") || strings.Contains(msg, "Hint:") || strings.Contains(msg, "Try:") || strings.Contains(msg, "Details:") {
		t.Errorf("Error() = %q, should not contain empty fields", msg)
	}
}

func TestWrapNil(t *testing.T) {
	if WrapInputError(nil) != nil {
		t.Error("WrapInputError(nil) should be nil")
	}
	if WrapOutputError(nil) != nil {
		t.Error("WrapOutputError(nil) should be nil")
	}
	if WrapConfigError(nil, "x.yaml") != nil {
		t.Error("WrapConfigError(nil) should be nil")
	}
	if WrapClipboardError(nil) != nil {
		t.Error("WrapClipboardError(nil) should be nil")
	}
}

func TestWrapInputError(t *testing.T) {
	err := WrapInputError(fmt.Errorf("read selection: %w", io.EOF))
	if !errors.Is(err, io.EOF) {
		t.Error("wrapped error should unwrap to io.EOF")
	}
	if !strings.Contains(err.Error(), "closed before a selection") {
		t.Errorf("Error() = %q, want EOF reason", err.Error())
	}
}

func TestWrapOutputError(t *testing.T) {
	err := WrapOutputError(syscall.EPIPE)
	var ufe UserFriendlyError
	if !errors.As(err, &ufe) {
		t.Fatal("expected UserFriendlyError")
	}
	if ufe.Reason != "Output pipe closed by the reader" {
		t.Errorf("Reason = %q", ufe.Reason)
	}
}

func TestWrapConfigError(t *testing.T) {
	err := WrapConfigError(fmt.Errorf("unknown color mode"), "breathe.yaml")
	msg := err.Error()
	for _, want := range []string{"breathe.yaml", "unknown color mode", "breathe config init breathe.yaml"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Error() = %q, want to contain %q", msg, want)
		}
	}
}
