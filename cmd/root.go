package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentfs/update-version/pkg/logging"
	"github.com/agentfs/update-version/pkg/release"
	"github.com/agentfs/update-version/pkg/runner"
	"github.com/agentfs/update-version/pkg/version"
	"github.com/agentfs/update-version/pkg/workspace"
)

type options struct {
	dryRun  bool
	yes     bool
	push    bool
	verbose bool
}

// NewRootCmd builds the update-version command.
func NewRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "update-version <version>",
		Short: "Update version numbers across all AgentFS components",
		Long: `update-version stamps a new version into every AgentFS component manifest
(the Rust crates and the TypeScript SDK), regenerates their lock files, and
records the release as a git commit and tag.

The repository root is found by walking up from the current directory.`,
		Example: `  update-version 0.2.0
  update-version 0.2.0-pre.1 --dry-run
  update-version 0.2.0 --yes --push`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.verbose {
				logging.SetVerbose()
			}
			return run(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Show what would be updated without making changes")
	cmd.Flags().BoolVarP(&opts.yes, "yes", "y", false, "Skip the confirmation prompt")
	cmd.Flags().BoolVar(&opts.push, "push", false, "Push the release commit and tag to origin")
	cmd.Flags().BoolVar(&opts.verbose, "verbose", false, "Enable debug logging")

	return cmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}

func run(ctx context.Context, ver string, opts options) error {
	if err := version.Validate(ver); err != nil {
		return err
	}

	root, err := workspace.FindRoot("")
	if err != nil {
		return err
	}

	fmt.Printf("Updating version to: %s\n", ver)
	fmt.Printf("Project root: %s\n\n", root)

	svc := release.NewService(root, runner.NewExecRunner(), opts.push)
	plans := svc.Plan()

	if opts.dryRun {
		displayDryRun(plans, ver, opts.push)
		return nil
	}

	displayPlan(plans, ver)

	if !confirm(opts.yes) {
		fmt.Println("Aborted.")
		return nil
	}

	if _, err := svc.Run(ctx, ver); err != nil {
		return err
	}

	if opts.push {
		fmt.Println("\n✅ Version update complete!")
	} else {
		fmt.Println("\n✅ Version update complete! Don't forget to push the commit and tag.")
	}
	return nil
}
