package errors

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"
)

// UserFriendlyError provides user-friendly error messages with context and hints
type UserFriendlyError struct {
	Message string
	Reason  string
	Hint    string
	Try     string
	Err     error
}

func (e UserFriendlyError) Error() string {
	var buf strings.Builder
	buf.WriteString(e.Message)
	if e.Reason != "" {
		buf.WriteString("\n  Reason: " + e.Reason)
	}
	if e.Hint != "" {
		buf.WriteString("\n  Hint: " + e.Hint)
	}
	if e.Try != "" {
		buf.WriteString("\n  Try: " + e.Try)
	}
	if e.Err != nil {
		buf.WriteString("\n  Details: " + e.Err.Error())
	}
	return buf.String()
}

func (e UserFriendlyError) Unwrap() error {
	return e.Err
}

// WrapInputError wraps a failure to read the technique selection
func WrapInputError(err error) error {
	if err == nil {
		return nil
	}

	return UserFriendlyError{
		Message: "Failed to read technique selection",
		Reason:  extractInputReason(err),
		Hint:    "breathe reads one line from standard input before starting",
		Try:     "breathe run --technique box",
		Err:     err,
	}
}

// WrapOutputError wraps a failure to write the status line
func WrapOutputError(err error) error {
	if err == nil {
		return nil
	}

	return UserFriendlyError{
		Message: "Failed to write to the terminal",
		Reason:  extractOutputReason(err),
		Err:     err,
	}
}

// WrapConfigError wraps configuration errors with user-friendly context
func WrapConfigError(err error, configPath string) error {
	if err == nil {
		return nil
	}

	return UserFriendlyError{
		Message: fmt.Sprintf("Configuration error in %s", configPath),
		Reason:  err.Error(),
		Hint:    "Config files are YAML, or TOML when the name ends in .toml",
		Try:     fmt.Sprintf("Regenerate a default: breathe config init %s", configPath),
		Err:     err,
	}
}

// WrapClipboardError wraps clipboard failures
func WrapClipboardError(err error) error {
	if err == nil {
		return nil
	}

	return UserFriendlyError{
		Message: "Failed to copy to clipboard",
		Reason:  "No clipboard utility is available",
		Hint:    "On Linux install xclip, xsel or wl-clipboard",
		Try:     "breathe show <technique> without --copy",
		Err:     err,
	}
}

func extractInputReason(err error) string {
	if errors.Is(err, io.EOF) {
		return "Standard input closed before a selection was entered"
	}
	if errors.Is(err, os.ErrClosed) {
		return "Standard input is closed"
	}
	return "Standard input could not be read"
}

func extractOutputReason(err error) string {
	if errors.Is(err, syscall.EPIPE) {
		return "Output pipe closed by the reader"
	}
	if errors.Is(err, os.ErrClosed) {
		return "Standard output is closed"
	}
	return "Standard output is unavailable"
}
