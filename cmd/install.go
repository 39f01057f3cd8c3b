package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hookline/hookline/errors"
	"github.com/hookline/hookline/git"
)

// NewInstallCmd creates the 'install' command.
func NewInstallCmd() *cobra.Command {
	var binary string

	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install the git hook scripts into the current repository",
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return err
			}
			if !git.IsGitRepo(cwd) {
				return errors.NotARepository(cwd)
			}

			if binary == "" {
				if exe, err := os.Executable(); err == nil {
					binary = exe
				}
			}

			if err := git.NewHookManager(binary).InstallHooks(cmd.Context(), cwd); err != nil {
				return errors.Wrap(err, errors.ErrCodeHooksDirFailed, "install git hooks")
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Installed pre-commit and pre-push hooks.")
			return nil
		},
	}

	cmd.Flags().StringVar(&binary, "binary", "", "Path to the hookline binary the hook scripts invoke (default: this executable)")

	return cmd
}

// NewUninstallCmd creates the 'uninstall' command.
func NewUninstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "uninstall",
		Short: "Remove hookline-managed git hook scripts",
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return err
			}
			if !git.IsGitRepo(cwd) {
				return errors.NotARepository(cwd)
			}

			if err := git.NewHookManager("").UninstallHooks(cmd.Context(), cwd); err != nil {
				return errors.Wrap(err, errors.ErrCodeHooksDirFailed, "uninstall git hooks")
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Removed hookline hooks. Backed-up hooks were restored.")
			return nil
		},
	}
}
