package tui

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tturner/breathe/internal/display"
	"github.com/tturner/breathe/internal/logging"
	"github.com/tturner/breathe/internal/sequencer"
	"github.com/tturner/breathe/internal/technique"
)

// Options configures Run.
type Options struct {
	Recorder sequencer.Recorder
	Logger   *logging.Logger
	Out      io.Writer
	Color    bool
}

// Run starts the full-screen session and blocks until the user quits.
func Run(t technique.Technique, opts Options) error {
	model := NewModel(t, display.NewStyles(display.DefaultTheme, display.NewRenderer(opts.Out, opts.Color)))
	model.recorder = opts.Recorder
	if opts.Logger != nil {
		model.logger = opts.Logger
	}

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithOutput(opts.Out))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run session: %w", err)
	}

	_, err := fmt.Fprintln(opts.Out, model.Farewell())
	return err
}
