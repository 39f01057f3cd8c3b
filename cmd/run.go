package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hookline/hookline/cli"
	"github.com/hookline/hookline/config"
	"github.com/hookline/hookline/runner"
)

// NewRunCmd creates the 'run' command, the entrypoint the installed git
// hook scripts dispatch to.
func NewRunCmd() *cobra.Command {
	var (
		stage    string
		allFiles bool
		files    []string
		failFast bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the hooks bound to a lifecycle stage",
		Long: "Loads the hookline configuration, selects the hooks bound to the " +
			"given stage, matches the stage's files against each hook, and executes " +
			"them. A non-zero exit from any hook blocks the git action.",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := cli.GetOptions(cmd)
			log := cli.GetLogger(cmd)

			cfg, err := cli.LoadConfig(cmd)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			summary, err := runner.New(cfg, runner.Options{
				Stage:    stage,
				AllFiles: allFiles,
				Files:    files,
				FailFast: failFast,
				Verbose:  opts.Verbose,
			}).Run(cmd.Context())
			if err != nil {
				return err
			}
			log.Debugf("%s stage: %d hook(s) evaluated", stage, len(summary.Results))

			if opts.JSONOutput {
				data, err := json.MarshalIndent(summary, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
			} else {
				summary.Render(cmd.OutOrStdout())
			}

			if summary.Failed() {
				os.Exit(1)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&stage, "stage", config.StageCommit, "Lifecycle stage to run (commit or push)")
	cmd.Flags().BoolVar(&allFiles, "all-files", false, "Run against every tracked file")
	cmd.Flags().StringSliceVar(&files, "files", nil, "Run against an explicit list of files")
	cmd.Flags().BoolVar(&failFast, "fail-fast", false, "Stop at the first failing hook")

	return cmd
}
