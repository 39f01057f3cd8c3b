package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hookline/hookline/cli"
	"github.com/hookline/hookline/config"
	"github.com/hookline/hookline/errors"
	"github.com/hookline/hookline/git"
	"github.com/hookline/hookline/runner"
)

// NewWatchCmd creates the 'watch' command: an interactive loop that re-runs
// the commit-stage hooks against files as they change.
func NewWatchCmd() *cobra.Command {
	var stage string

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-run hooks whenever files change",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := cli.GetOptions(cmd)

			cfg, err := cli.LoadConfig(cmd)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			cwd, err := os.Getwd()
			if err != nil {
				return err
			}
			repoRoot, err := git.GetGitRoot(cwd)
			if err != nil {
				return errors.NotARepository(cwd)
			}

			runOnce := func(files []string) {
				summary, err := runner.New(cfg, runner.Options{
					Stage:    stage,
					Files:    files,
					AllFiles: len(files) == 0,
					RepoRoot: repoRoot,
					Verbose:  opts.Verbose,
				}).Run(cmd.Context())
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "watch: %v\n", err)
					return
				}
				summary.Render(cmd.OutOrStdout())
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Watching %s (%s stage). Press Ctrl-C to stop.\n", repoRoot, stage)
			runOnce(nil)

			return runner.Watch(cmd.Context(), repoRoot, runOnce)
		},
	}

	cmd.Flags().StringVar(&stage, "stage", config.StageCommit, "Lifecycle stage to run on changes")

	return cmd
}
