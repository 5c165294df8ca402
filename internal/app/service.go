// Package app contains the application layer with the commit workflow.
package app

import (
	"context"
	"fmt"

	"github.com/gcommit/gcommit/internal/pkg/ai"
	apperrors "github.com/gcommit/gcommit/internal/pkg/errors"
	"github.com/gcommit/gcommit/internal/pkg/git"
	"github.com/gcommit/gcommit/internal/pkg/ui"
)

// CommitOptions contains options for the commit workflow.
type CommitOptions struct {
	DryRun      bool
	SkipConfirm bool
}

// CommitService orchestrates the commit message generation workflow.
type CommitService struct {
	gitClient git.Client
	generator ai.Generator
	uiManager ui.Manager
}

// NewCommitService creates a new CommitService with the given dependencies.
func NewCommitService(gitClient git.Client, generator ai.Generator, uiManager ui.Manager) *CommitService {
	return &CommitService{
		gitClient: gitClient,
		generator: generator,
		uiManager: uiManager,
	}
}

// Run executes the workflow: check repo → collect diff → generate → confirm → commit.
// The flow is strictly linear; every failing step is terminal.
func (s *CommitService) Run(ctx context.Context, opts *CommitOptions) error {
	if opts == nil {
		opts = &CommitOptions{}
	}

	// Step 1: Verify we are inside a git repository
	if !s.gitClient.IsRepository() {
		return apperrors.NewNotARepositoryError()
	}

	// Step 2: Collect the staged diff
	diff, err := s.gitClient.StagedDiff(ctx)
	if err != nil {
		return fmt.Errorf("failed to get staged diff: %w", err)
	}

	// An empty diff is a normal outcome, not an error.
	if diff == "" {
		s.uiManager.ShowInfo("No changes detected.")
		return nil
	}

	// Step 3: Generate the commit message
	message, err := s.generator.GenerateCommitMessage(ctx, diff)
	if err != nil {
		return fmt.Errorf("failed to generate commit message: %w", err)
	}

	// Step 4: Display and confirm
	s.uiManager.ShowMessage(message)

	if opts.DryRun {
		return nil
	}

	if !opts.SkipConfirm {
		confirmed, err := s.uiManager.PromptConfirm("Do you want to commit these changes? (y/n)")
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		if !confirmed {
			s.uiManager.ShowInfo("Commit canceled.")
			return nil
		}
	}

	// Step 5: Commit with the generated message verbatim
	if err := s.gitClient.Commit(ctx, message); err != nil {
		return err
	}

	s.uiManager.ShowSuccess("Changes committed successfully.")
	return nil
}
