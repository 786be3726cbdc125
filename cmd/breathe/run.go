package main

import (
	"github.com/spf13/cobra"

	"github.com/tturner/breathe/internal/app"
)

type runFlags struct {
	config      string
	technique   string
	color       string
	progress    bool
	logLevel    string
	logFile     string
	sessionCSV  string
	sessionJSON string
}

func (f *runFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.config, "config", "", "Config file (YAML, or TOML with a .toml extension)")
	cmd.Flags().StringVarP(&f.technique, "technique", "t", "", "Technique: 1|2|3 or box|diaphragmatic|alternate-nostril")
	cmd.Flags().StringVar(&f.color, "color", "", "Phase colors: auto|always|never (default from config, then auto)")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "", "Log level: silent|error|info|verbose|debug")
	cmd.Flags().StringVar(&f.logFile, "log-file", "", "Append log output to this file")
	cmd.Flags().StringVar(&f.sessionCSV, "session-csv", "", "Write one CSV row per phase to this file")
	cmd.Flags().StringVar(&f.sessionJSON, "session-json", "", "Write one JSON line per phase to this file")
}

func (f *runFlags) options(cmd *cobra.Command, iface string) app.SessionOptions {
	opts := app.SessionOptions{
		In:          cmd.InOrStdin(),
		Out:         cmd.OutOrStdout(),
		ConfigPath:  f.config,
		Technique:   f.technique,
		Interface:   iface,
		Color:       f.color,
		LogLevel:    f.logLevel,
		LogFile:     f.logFile,
		SessionCSV:  f.sessionCSV,
		SessionJSON: f.sessionJSON,
	}
	if cmd.Flags().Changed("progress") {
		opts.Progress = &f.progress
	}
	return opts
}

func newRunCmd() *cobra.Command {
	flags := &runFlags{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a session with options",
		Long: `Run a breathing session on a single status line.

The technique comes from --technique, then default_technique in the config
file, then the interactive menu.`,
		Example: `  # Box breathing with a progress bar
  breathe run --technique box --progress

  # Log every phase to CSV
  breathe run -t 3 --session-csv session.csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.RunSession(flags.options(cmd, app.InterfaceLine))
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&flags.progress, "progress", false, "Redraw a progress bar once per second within each phase")

	return cmd
}
