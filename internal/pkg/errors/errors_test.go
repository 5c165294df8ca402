package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorCode_ExitCode(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want int
	}{
		{ErrNotARepository, 1},
		{ErrMissingAPIKey, 1},
		{ErrInputFailed, 1},
		{ErrGitCommandFailed, 2},
		{ErrAIProviderFailed, 3},
		{ErrEmptyResponse, 3},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			if got := tt.code.ExitCode(); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestAppError_ErrorAndUnwrap(t *testing.T) {
	cause := errors.New("underlying failure")
	err := Wrap(cause, ErrGitCommandFailed, "git command failed")

	if !strings.Contains(err.Error(), "git command failed") {
		t.Errorf("Error() = %q, missing message", err.Error())
	}
	if !strings.Contains(err.Error(), "underlying failure") {
		t.Errorf("Error() = %q, missing cause", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("wrapped cause should be reachable via errors.Is")
	}
}

func TestGetExitCode(t *testing.T) {
	if got := GetExitCode(NewAIProviderError("DeepSeek", errors.New("boom"))); got != 3 {
		t.Errorf("GetExitCode(provider error) = %d, want 3", got)
	}
	if got := GetExitCode(errors.New("plain")); got != 1 {
		t.Errorf("GetExitCode(plain error) = %d, want 1", got)
	}

	// Wrapped AppErrors keep their exit code through fmt wrapping.
	wrapped := fmt.Errorf("context: %w", NewGitError(errors.New("exit status 1"), "stderr text"))
	if got := GetExitCode(wrapped); got != 2 {
		t.Errorf("GetExitCode(wrapped git error) = %d, want 2", got)
	}
}

func TestFormatError_IncludesOutputAndSuggestion(t *testing.T) {
	err := NewGitError(errors.New("exit status 128"), "fatal: not a git repository\n")
	formatted := FormatError(err)

	if !strings.Contains(formatted, "git command failed") {
		t.Errorf("formatted = %q, missing message", formatted)
	}
	if !strings.Contains(formatted, "fatal: not a git repository") {
		t.Errorf("formatted = %q, missing tool output", formatted)
	}

	withSuggestion := NewMissingAPIKeyError()
	formatted = FormatError(withSuggestion)
	if !strings.Contains(formatted, "Suggestion:") {
		t.Errorf("formatted = %q, missing suggestion", formatted)
	}
}

func TestSanitizeErrorMessage_MasksAPIKeys(t *testing.T) {
	msg := "request failed with key sk-abcdefghij1234567890abcdef"
	sanitized := SanitizeErrorMessage(msg)

	if strings.Contains(sanitized, "sk-abcdefghij1234567890abcdef") {
		t.Errorf("sanitized = %q, still contains the key", sanitized)
	}
	if !strings.Contains(sanitized, "cdef") {
		t.Errorf("sanitized = %q, should keep the last 4 characters", sanitized)
	}
}

func TestMaskAPIKey(t *testing.T) {
	if got := MaskAPIKey("sk-1234567890"); !strings.HasSuffix(got, "7890") {
		t.Errorf("MaskAPIKey() = %q, want suffix 7890", got)
	}
	if got := MaskAPIKey("abc"); got != "****" {
		t.Errorf("MaskAPIKey(short) = %q, want ****", got)
	}
}
