// Package cmd contains the CLI command definitions for gcommit.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gcommit/gcommit/internal/app"
	"github.com/gcommit/gcommit/internal/pkg/ai"
	"github.com/gcommit/gcommit/internal/pkg/config"
	apperrors "github.com/gcommit/gcommit/internal/pkg/errors"
	"github.com/gcommit/gcommit/internal/pkg/git"
	"github.com/gcommit/gcommit/internal/pkg/ui"
)

// RootFlags holds the flags for the root command.
type RootFlags struct {
	DryRun  bool
	Yes     bool
	NoColor bool
}

// NewRootCmd creates the root command for the gcommit CLI.
func NewRootCmd(version, commitHash, date string) *cobra.Command {
	flags := &RootFlags{}

	rootCmd := &cobra.Command{
		Use:   "gcommit",
		Short: "AI-generated commit messages for staged changes",
		Long: `gcommit reads your staged git diff, asks DeepSeek for a short commit
message, shows it to you, and commits on confirmation.

The OPENAI_API_KEY environment variable must hold your API credential.
A .env file in the working directory is loaded at startup if present.

Examples:
  gcommit             # Generate, confirm, commit
  gcommit --yes       # Commit without the confirmation prompt
  gcommit --dry-run   # Print the generated message only`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, flags)
		},
	}

	rootCmd.SetVersionTemplate(`gcommit {{.Version}}
Commit: ` + commitHash + `
Built:  ` + date + "\n")

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.Flags().BoolVar(&flags.DryRun, "dry-run", false, "Generate message without committing")
	rootCmd.Flags().BoolVarP(&flags.Yes, "yes", "y", false, "Skip the confirmation prompt and commit immediately")
	rootCmd.Flags().BoolVar(&flags.NoColor, "no-color", false, "Disable colored output")

	return rootCmd
}

// runRoot executes the commit workflow.
func runRoot(cmd *cobra.Command, flags *RootFlags) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	apperrors.SetVerbose(verbose)

	// Resolve the credential once at startup. An absent key only becomes
	// fatal when message generation starts.
	cfg := config.Load()
	if verbose && cfg.APIKey != "" {
		apperrors.Debug("API key: %s", apperrors.MaskAPIKey(cfg.APIKey))
	}

	gitClient := git.NewClient()
	generator := ai.NewClient(cfg.APIKey)
	uiManager := ui.NewConsoleManager(!flags.NoColor)

	service := app.NewCommitService(gitClient, generator, uiManager)

	opts := &app.CommitOptions{
		DryRun:      flags.DryRun,
		SkipConfirm: flags.Yes,
	}

	return service.Run(cmd.Context(), opts)
}
