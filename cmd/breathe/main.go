package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tturner/breathe/internal/app"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "breathe",
		Short: "Guided breathing in the terminal",
		Long: `breathe walks you through a breathing technique one phase at a time,
redrawing the current phase in place until you press Ctrl+C.

Run without arguments to pick a technique from the menu.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.RunClassic(app.ClassicOptions{
				In:  cmd.InOrStdin(),
				Out: cmd.OutOrStdout(),
			})
		},
	}

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newTUICmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newConfigCmd())

	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		if cmd != cmd.Root() {
			if cmd.Long != "" {
				fmt.Fprintf(out, "%s\n\n", cmd.Long)
			}
			fmt.Fprint(out, cmd.UsageString())
			return
		}
		fmt.Fprintf(out, "Usage:\n  %s [command] [options]\n\n", cmd.Name())
		fmt.Fprintf(out, "Available Commands:\n")
		for _, subCmd := range cmd.Commands() {
			if !subCmd.Hidden {
				fmt.Fprintf(out, "  %-15s %s\n", subCmd.Name(), subCmd.Short)
			}
		}
		fmt.Fprintf(out, "\nUse \"%s help <command>\" for more information about a command.\n", cmd.Name())
	})

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\nerror: %v\n", err)
		os.Exit(1)
	}
}
