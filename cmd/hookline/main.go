package main

import (
	"os"

	"github.com/hookline/hookline/cli"
	"github.com/hookline/hookline/cmd"
)

func main() {
	rootCmd := cli.NewStandardCommand(
		"hookline",
		"Manage and run git hooks from a declarative configuration",
	)

	// Add subcommands
	rootCmd.AddCommand(cmd.NewRunCmd())
	rootCmd.AddCommand(cmd.NewInstallCmd())
	rootCmd.AddCommand(cmd.NewUninstallCmd())
	rootCmd.AddCommand(cmd.NewValidateCmd())
	rootCmd.AddCommand(cmd.NewInitCmd())
	rootCmd.AddCommand(cmd.NewWatchCmd())
	rootCmd.AddCommand(cmd.NewCleanCmd())
	rootCmd.AddCommand(cmd.NewVersionCmd())

	cli.ApplyStyledHelpRecursive(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		verbose := false
		for _, arg := range os.Args[1:] {
			if arg == "-v" || arg == "--verbose" {
				verbose = true
			}
		}
		_ = cli.NewErrorHandler(verbose).Handle(err)
		os.Exit(1)
	}
}
