package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType categorizes different error types
type ErrorType string

const (
	// Network errors: the request failed before any response arrived
	ErrorTypeNetwork ErrorType = "network"
	ErrorTypeTimeout ErrorType = "timeout"

	// HTTP errors: the server answered with a non-2xx status
	ErrorTypeHTTP     ErrorType = "http"
	ErrorTypeNotFound ErrorType = "not_found"

	// Authentication errors (login/signup flows)
	ErrorTypeAuth ErrorType = "auth"

	// Validation errors (bad local input, missing files)
	ErrorTypeValidation   ErrorType = "validation"
	ErrorTypeFileNotFound ErrorType = "file_not_found"

	// Playback errors
	ErrorTypePlaybackLoad ErrorType = "playback_load"
	ErrorTypeInvalidState ErrorType = "invalid_state"

	// Unknown errors
	ErrorTypeUnknown ErrorType = "unknown"
)

// CLIError represents a structured error with context
type CLIError struct {
	Type       ErrorType
	Message    string
	Cause      error
	Suggestion string
	StatusCode int
}

// Error implements the error interface
func (e *CLIError) Error() string {
	return e.Message
}

// WithSuggestion adds a helpful suggestion to the error
func (e *CLIError) WithSuggestion(suggestion string) *CLIError {
	e.Suggestion = suggestion
	return e
}

// HasSuggestion returns true if the error has a suggestion
func (e *CLIError) HasSuggestion() bool {
	return e.Suggestion != ""
}

// Unwrap returns the underlying error
func (e *CLIError) Unwrap() error {
	return e.Cause
}

// New creates a new CLI error
func New(errorType ErrorType, message string, cause error) *CLIError {
	return &CLIError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

// NetworkError creates an error for a request that got no response
func NetworkError(message string) *CLIError {
	err := New(ErrorTypeNetwork, message, nil)
	err.Suggestion = "Check that the server is reachable and try again."
	return err
}

// TimeoutError creates a timeout error
func TimeoutError() *CLIError {
	err := New(ErrorTypeTimeout, "Request timed out", nil)
	err.Suggestion = "The server is taking too long to respond. Try again in a moment."
	return err
}

// HTTPError creates an error for a non-2xx response
func HTTPError(status int, context string) *CLIError {
	err := New(ErrorTypeHTTP, fmt.Sprintf("%s: server returned %d", context, status), nil)
	err.StatusCode = status
	return err
}

// NotFoundError creates a not found error
func NotFoundError(resourceType, identifier string) *CLIError {
	err := New(ErrorTypeNotFound,
		fmt.Sprintf("%s not found: %s", resourceType, identifier),
		nil)
	err.StatusCode = 404
	return err
}

// AuthError creates an authentication error
func AuthError(message string) *CLIError {
	err := New(ErrorTypeAuth, message, nil)
	err.Suggestion = "Try logging in again with 'soundreel auth login'"
	return err
}

// ValidationError creates a validation error
func ValidationError(field, reason string) *CLIError {
	message := fmt.Sprintf("Validation error: %s - %s", field, reason)
	return New(ErrorTypeValidation, message, nil)
}

// FileNotFoundError creates a file not found error
func FileNotFoundError(path string) *CLIError {
	err := New(ErrorTypeFileNotFound, fmt.Sprintf("File not found: %s", path), nil)
	err.Suggestion = "Check the file path and try again."
	return err
}

// PlaybackLoadError creates an error for a source the media engine could
// not open; the caller shows a "no audio available" fallback, never retries
func PlaybackLoadError(source string, cause error) *CLIError {
	return New(ErrorTypePlaybackLoad,
		fmt.Sprintf("Could not load audio source: %s", source),
		cause)
}

// InvalidStateError creates an error for a playback operation called with
// no loaded session; a programming-contract violation, not user-visible
func InvalidStateError(op, state string) *CLIError {
	return New(ErrorTypeInvalidState,
		fmt.Sprintf("%s is not valid while playback is %s", op, state),
		nil)
}

// IsNotFound reports whether err categorizes as a 404/not-found
func IsNotFound(err error) bool {
	var cliErr *CLIError
	if errors.As(err, &cliErr) {
		return cliErr.Type == ErrorTypeNotFound || cliErr.StatusCode == 404
	}
	return false
}

// IsInvalidState reports whether err is a playback contract violation
func IsInvalidState(err error) bool {
	var cliErr *CLIError
	if errors.As(err, &cliErr) {
		return cliErr.Type == ErrorTypeInvalidState
	}
	return false
}

// CategorizeError converts a standard error into a CLIError
func CategorizeError(err error) *CLIError {
	if err == nil {
		return nil
	}

	// Check if it's already a CLIError
	var cliErr *CLIError
	if errors.As(err, &cliErr) {
		return cliErr
	}

	// Categorize based on error message
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "connection refused"):
		return NetworkError("Could not connect to server. Make sure it's running.")
	case strings.Contains(errMsg, "no such host"):
		return NetworkError("Could not resolve the server host.")
	case strings.Contains(errMsg, "timeout"), strings.Contains(errMsg, "context deadline exceeded"):
		return TimeoutError()
	case strings.Contains(errMsg, "404"), strings.Contains(errMsg, "not found"):
		return NotFoundError("Resource", "unknown")
	case strings.Contains(errMsg, "401"), strings.Contains(errMsg, "unauthorized"):
		return AuthError("Invalid credentials")
	case strings.Contains(errMsg, "500"), strings.Contains(errMsg, "server error"):
		return HTTPError(500, "Request failed")
	default:
		return New(ErrorTypeUnknown, errMsg, err)
	}
}

// FormatError returns a user-friendly error message
func FormatError(err error) string {
	if err == nil {
		return ""
	}

	cliErr := CategorizeError(err)
	var sb strings.Builder

	sb.WriteString("Error")
	if cliErr.Type != ErrorTypeUnknown {
		sb.WriteString(" (")
		sb.WriteString(string(cliErr.Type))
		sb.WriteString(")")
	}
	sb.WriteString(": ")
	sb.WriteString(cliErr.Message)
	sb.WriteString("\n")

	if cliErr.HasSuggestion() {
		sb.WriteString("\nSuggestion: ")
		sb.WriteString(cliErr.Suggestion)
		sb.WriteString("\n")
	}

	return sb.String()
}
