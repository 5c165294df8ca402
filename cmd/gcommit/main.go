// Package main is the entry point for the gcommit CLI.
// gcommit generates a git commit message from the staged diff using the
// DeepSeek chat-completion API and commits on confirmation.
package main

import (
	"fmt"
	"os"

	"github.com/gcommit/gcommit/internal/cmd"
	apperrors "github.com/gcommit/gcommit/internal/pkg/errors"
)

// Version information - set via ldflags during build
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := cmd.NewRootCmd(version, commit, date)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, apperrors.FormatError(err))
		os.Exit(apperrors.GetExitCode(err))
	}
}
