package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewRootCmd_Metadata(t *testing.T) {
	cmd := NewRootCmd("1.2.3", "abc1234", "2026-01-01")

	if cmd.Use != "gcommit" {
		t.Errorf("Use = %q, want %q", cmd.Use, "gcommit")
	}
	if cmd.Version != "1.2.3" {
		t.Errorf("Version = %q, want %q", cmd.Version, "1.2.3")
	}
	if !cmd.SilenceUsage {
		t.Error("usage output should be silenced on runtime errors")
	}
}

func TestNewRootCmd_Flags(t *testing.T) {
	cmd := NewRootCmd("dev", "none", "unknown")

	for _, name := range []string{"dry-run", "yes", "no-color"} {
		if cmd.Flags().Lookup(name) == nil {
			t.Errorf("missing flag --%s", name)
		}
	}
	if cmd.PersistentFlags().Lookup("verbose") == nil {
		t.Error("missing persistent flag --verbose")
	}
}

func TestNewRootCmd_VersionTemplate(t *testing.T) {
	cmd := NewRootCmd("1.2.3", "abc1234", "2026-01-01")

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--version"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "gcommit 1.2.3") {
		t.Errorf("version output %q missing version line", got)
	}
	if !strings.Contains(got, "abc1234") {
		t.Errorf("version output %q missing commit hash", got)
	}
}
