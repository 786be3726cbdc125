package main

import (
	"github.com/spf13/cobra"

	"github.com/tturner/breathe/internal/app"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the built-in techniques",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.RunList(cmd.OutOrStdout())
		},
	}
}
