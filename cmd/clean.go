package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hookline/hookline/store"
)

// NewCleanCmd creates the 'clean' command.
func NewCleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Remove all cached hook sources",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := store.New("")
			if err := s.Clean(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Cleared hook source cache at %s.\n", s.Root())
			return nil
		},
	}
}
