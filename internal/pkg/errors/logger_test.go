package errors

import (
	"bytes"
	"os"
	"strings"
	"testing"
	"time"
)

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, false)

	logger.Debug("debug line")
	logger.Info("info line")
	logger.Error("error line")

	got := buf.String()
	if strings.Contains(got, "debug line") {
		t.Error("debug should be suppressed without verbose mode")
	}
	if strings.Contains(got, "info line") {
		t.Error("info should be suppressed without verbose mode")
	}
	if !strings.Contains(got, "error line") {
		t.Error("errors should always be logged")
	}
}

func TestLogger_VerboseMode(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, true)

	logger.Debug("debug line")
	logger.LogAPIRequest("deepseek", "https://api.deepseek.com", "deepseek-chat", 42)
	logger.LogAPIResponse("deepseek", 24, 150*time.Millisecond)

	got := buf.String()
	if !strings.Contains(got, "debug line") {
		t.Error("debug should be logged in verbose mode")
	}
	if !strings.Contains(got, "API Request") || !strings.Contains(got, "prompt_length=42") {
		t.Errorf("missing API request trace: %q", got)
	}
	if !strings.Contains(got, "API Response") {
		t.Errorf("missing API response trace: %q", got)
	}
}

func TestSetVerbose(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		SetVerbose(false)
	})

	SetVerbose(true)
	if !IsVerbose() {
		t.Error("IsVerbose() should be true after SetVerbose(true)")
	}
	Debug("verbose debug")
	if !strings.Contains(buf.String(), "verbose debug") {
		t.Error("debug output missing in verbose mode")
	}

	SetVerbose(false)
	if IsVerbose() {
		t.Error("IsVerbose() should be false after SetVerbose(false)")
	}
}
