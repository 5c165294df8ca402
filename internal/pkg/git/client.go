// Package git provides the git operations used by gcommit.
package git

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	apperrors "github.com/gcommit/gcommit/internal/pkg/errors"
)

// Client defines the interface for git operations.
type Client interface {
	IsRepository() bool
	StagedDiff(ctx context.Context) (string, error)
	Commit(ctx context.Context, message string) error
}

// DefaultClient implements the Client interface using exec.CommandContext.
type DefaultClient struct {
	// workDir is the working directory for git commands.
	// If empty, uses the current directory.
	workDir string
}

// NewClient creates a new DefaultClient.
func NewClient() *DefaultClient {
	return &DefaultClient{}
}

// NewClientWithWorkDir creates a new DefaultClient with a specific working directory.
func NewClientWithWorkDir(workDir string) *DefaultClient {
	return &DefaultClient{workDir: workDir}
}

// IsRepository reports whether the working directory contains a .git marker path.
// Absence is a negative result, not an error.
func (c *DefaultClient) IsRepository() bool {
	dir := c.workDir
	if dir == "" {
		dir = "."
	}
	_, err := os.Stat(filepath.Join(dir, ".git"))
	return err == nil
}

// StagedDiff returns the diff of staged (index) changes as text.
// An empty string means there is nothing staged; that is not an error.
// On failure the returned error carries the tool's stderr output.
func (c *DefaultClient) StagedDiff(ctx context.Context) (string, error) {
	cmd := exec.CommandContext(ctx, "git", "diff", "--cached")
	if c.workDir != "" {
		cmd.Dir = c.workDir
	}

	output, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return "", apperrors.NewGitError(err, string(exitErr.Stderr))
		}
		return "", apperrors.NewGitError(err, "")
	}

	// Invalid byte sequences are replaced rather than failing the read.
	return strings.ToValidUTF8(string(output), "�"), nil
}

// Commit creates a commit with the given message, passed as a single argument.
// The underlying tool's diagnostics are not captured here.
func (c *DefaultClient) Commit(ctx context.Context, message string) error {
	cmd := exec.CommandContext(ctx, "git", "commit", "-m", message)
	if c.workDir != "" {
		cmd.Dir = c.workDir
	}

	if err := cmd.Run(); err != nil {
		return apperrors.Wrap(err, apperrors.ErrGitCommandFailed, "failed to commit changes")
	}
	return nil
}
