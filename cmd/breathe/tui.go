package main

import (
	"github.com/spf13/cobra"

	"github.com/tturner/breathe/internal/app"
)

func newTUICmd() *cobra.Command {
	flags := &runFlags{}

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Run a full-screen session",
		Long: `Pick a technique from an interactive list and follow it full screen,
with a progress bar for each phase. Press q to finish.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.RunSession(flags.options(cmd, app.InterfaceTUI))
		},
	}

	flags.register(cmd)

	return cmd
}
