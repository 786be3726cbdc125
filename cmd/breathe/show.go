package main

import (
	"github.com/spf13/cobra"

	"github.com/tturner/breathe/internal/app"
)

func newShowCmd() *cobra.Command {
	var copyPattern bool

	cmd := &cobra.Command{
		Use:   "show <technique>",
		Short: "Show the phases of a technique",
		Example: `  breathe show box
  breathe show 3 --copy`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if handleHelpArg(cmd, args) {
				return nil
			}
			return app.RunShow(app.ShowOptions{
				Selector: args[0],
				Copy:     copyPattern,
				Out:      cmd.OutOrStdout(),
			})
		},
	}

	cmd.Flags().BoolVar(&copyPattern, "copy", false, "Copy the pattern to the system clipboard")

	return cmd
}
