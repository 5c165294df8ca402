// Package errors provides error types and handling utilities for gcommit.
package errors

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrorCode represents the category of an error.
type ErrorCode int

const (
	// User errors (Exit Code 1)
	ErrNotARepository ErrorCode = iota + 100
	ErrMissingAPIKey
	ErrInputFailed

	// System errors (Exit Code 2)
	ErrGitCommandFailed ErrorCode = iota + 200

	// External errors (Exit Code 3)
	ErrAIProviderFailed ErrorCode = iota + 300
	ErrEmptyResponse
)

// ExitCode returns the appropriate exit code for an error code.
func (c ErrorCode) ExitCode() int {
	switch {
	case c >= 100 && c < 200:
		return 1 // User errors
	case c >= 200 && c < 300:
		return 2 // System errors
	case c >= 300:
		return 3 // External errors
	default:
		return 1
	}
}

// String returns a human-readable name for the error code.
func (c ErrorCode) String() string {
	switch c {
	case ErrNotARepository:
		return "NotARepository"
	case ErrMissingAPIKey:
		return "MissingAPIKey"
	case ErrInputFailed:
		return "InputFailed"
	case ErrGitCommandFailed:
		return "GitCommandFailed"
	case ErrAIProviderFailed:
		return "AIProviderFailed"
	case ErrEmptyResponse:
		return "EmptyResponse"
	default:
		return "Unknown"
	}
}

// AppError represents an application error with context.
type AppError struct {
	Code       ErrorCode
	Message    string
	Cause      error
	Context    map[string]interface{}
	Suggestion string
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithContext adds context to the error.
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// WithSuggestion adds a suggestion to the error.
func (e *AppError) WithSuggestion(suggestion string) *AppError {
	e.Suggestion = suggestion
	return e
}

// New creates a new AppError.
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an error with context.
func Wrap(err error, code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// GetAppError extracts an AppError from an error chain.
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// GetExitCode returns the appropriate exit code for an error.
func GetExitCode(err error) int {
	if appErr := GetAppError(err); appErr != nil {
		return appErr.Code.ExitCode()
	}
	return 1 // Default to user error
}

// Common error constructors with suggestions

// NewNotARepositoryError creates an error for running outside a git repository.
func NewNotARepositoryError() *AppError {
	return &AppError{
		Code:       ErrNotARepository,
		Message:    "Current directory is not a git repository.",
		Suggestion: "Run gcommit from inside a git repository, or run 'git init' first",
	}
}

// NewMissingAPIKeyError creates an error for a missing API credential.
func NewMissingAPIKeyError() *AppError {
	return &AppError{
		Code:       ErrMissingAPIKey,
		Message:    "OPENAI_API_KEY is not set",
		Suggestion: "Export OPENAI_API_KEY or add it to a .env file in the working directory",
	}
}

// NewInputError creates an error for a failed console read.
func NewInputError(err error) *AppError {
	return &AppError{
		Code:    ErrInputFailed,
		Message: "failed to read input",
		Cause:   err,
	}
}

// NewGitError creates an error for git command failures.
func NewGitError(err error, output string) *AppError {
	appErr := &AppError{
		Code:    ErrGitCommandFailed,
		Message: "git command failed",
		Cause:   err,
	}
	if output != "" {
		appErr.Context = map[string]interface{}{
			"output": output,
		}
	}
	return appErr
}

// NewAIProviderError creates an error for AI provider failures.
func NewAIProviderError(provider string, err error) *AppError {
	return &AppError{
		Code:       ErrAIProviderFailed,
		Message:    fmt.Sprintf("%s provider error", provider),
		Cause:      err,
		Suggestion: "Please check your API key and network connectivity",
	}
}

// NewEmptyResponseError creates an error for a response with no choices.
func NewEmptyResponseError(provider string) *AppError {
	return &AppError{
		Code:    ErrEmptyResponse,
		Message: fmt.Sprintf("no response from %s", provider),
	}
}

// FormatError formats an error for user display.
// API keys and other sensitive data are automatically masked.
func FormatError(err error) string {
	if err == nil {
		return ""
	}

	var sb strings.Builder

	appErr := GetAppError(err)
	if appErr != nil {
		sb.WriteString("Error: ")
		sb.WriteString(SanitizeErrorMessage(appErr.Message))

		if appErr.Cause != nil {
			sb.WriteString("\n  Cause: ")
			sb.WriteString(SanitizeErrorMessage(appErr.Cause.Error()))
		}

		if output, ok := appErr.Context["output"].(string); ok && output != "" {
			sb.WriteString("\n  Output: ")
			sb.WriteString(SanitizeErrorMessage(strings.TrimSpace(output)))
		}

		if appErr.Suggestion != "" {
			sb.WriteString("\n  Suggestion: ")
			sb.WriteString(appErr.Suggestion)
		}
	} else {
		sb.WriteString("Error: ")
		sb.WriteString(SanitizeErrorMessage(err.Error()))
	}

	return sb.String()
}

// SanitizeErrorMessage masks any API keys or sensitive data in error messages.
func SanitizeErrorMessage(msg string) string {
	return apiKeyPattern.ReplaceAllStringFunc(msg, func(match string) string {
		if len(match) <= 4 {
			return "****"
		}
		return strings.Repeat("*", len(match)-4) + match[len(match)-4:]
	})
}

// apiKeyPattern matches common API key patterns.
var apiKeyPattern = regexp.MustCompile(`sk-[a-zA-Z0-9]{20,}`)

// MaskAPIKey masks an API key for safe logging, showing only the last 4 characters.
func MaskAPIKey(apiKey string) string {
	if len(apiKey) <= 4 {
		return "****"
	}
	return strings.Repeat("*", len(apiKey)-4) + apiKey[len(apiKey)-4:]
}
