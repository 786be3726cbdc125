package app

import (
	"fmt"
	"io"

	"github.com/tturner/breathe/internal/config"
	"github.com/tturner/breathe/internal/display"
	"github.com/tturner/breathe/internal/errors"
	"github.com/tturner/breathe/internal/logging"
	"github.com/tturner/breathe/internal/menu"
	"github.com/tturner/breathe/internal/sequencer"
	"github.com/tturner/breathe/internal/session"
	"github.com/tturner/breathe/internal/technique"
	"github.com/tturner/breathe/internal/tui"
)

// ClassicOptions drives the interactive prompt followed by the endless loop.
type ClassicOptions struct {
	In  io.Reader
	Out io.Writer

	// Sleeper overrides time.Sleep; nil keeps the default.
	Sleeper sequencer.Sleeper
}

// RunClassic prints the menu, reads one selection and replays the technique
// until the process is interrupted. It only returns on an I/O failure.
func RunClassic(opts ClassicOptions) error {
	t, err := menu.Ask(opts.In, opts.Out)
	if err != nil {
		return err
	}
	if err := menu.Banner(opts.Out, t); err != nil {
		return errors.WrapOutputError(err)
	}

	var seqOpts []sequencer.Option
	if opts.Sleeper != nil {
		seqOpts = append(seqOpts, sequencer.WithSleeper(opts.Sleeper))
	}
	line := display.NewLine(opts.Out, display.UseColor(opts.Out, config.ColorAuto))
	return errors.WrapOutputError(sequencer.New(t, line, seqOpts...).Run())
}

// SessionOptions drives the configurable run and tui commands.
type SessionOptions struct {
	In  io.Reader
	Out io.Writer

	ConfigPath string
	Technique  string // selector or key; empty falls back to config, then the prompt
	Interface  string // "line" or "tui"

	// Overrides applied on top of the config file when set.
	Color       string
	Progress    *bool
	LogLevel    string
	LogFile     string
	SessionCSV  string
	SessionJSON string

	Sleeper sequencer.Sleeper
}

const (
	InterfaceLine = "line"
	InterfaceTUI  = "tui"
)

// RunSession resolves config and technique, then runs the chosen interface.
func RunSession(opts SessionOptions) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}
	if err := applyOverrides(cfg, opts); err != nil {
		return err
	}

	level, _ := logging.ParseLevel(cfg.Logging.Level)
	logger, err := logging.NewLogger(level, cfg.Logging.File)
	if err != nil {
		return err
	}
	defer logger.Close()

	t, err := resolveTechnique(opts, cfg)
	if err != nil {
		return err
	}
	logger.LogStartup(t.Name(), t.Pattern(), t.CycleSeconds(), opts.ConfigPath)

	var recorder sequencer.Recorder
	if cfg.Session.CSV != "" || cfg.Session.JSON != "" {
		w, err := session.NewWriter(t.Key(), cfg.Session.CSV, cfg.Session.JSON)
		if err != nil {
			return err
		}
		defer w.Close()
		logger.Verbose("  Session: %s", w.SessionID())
		recorder = w
	}

	color := display.UseColor(opts.Out, cfg.Display.Color)

	if opts.Interface == InterfaceTUI {
		return tui.Run(t, tui.Options{
			Recorder: recorder,
			Logger:   logger,
			Out:      opts.Out,
			Color:    color,
		})
	}

	if err := menu.Banner(opts.Out, t); err != nil {
		return errors.WrapOutputError(err)
	}
	seqOpts := []sequencer.Option{
		sequencer.WithProgress(cfg.Display.Progress),
		sequencer.WithLogger(logger),
	}
	if recorder != nil {
		seqOpts = append(seqOpts, sequencer.WithRecorder(recorder))
	}
	if opts.Sleeper != nil {
		seqOpts = append(seqOpts, sequencer.WithSleeper(opts.Sleeper))
	}
	seq := sequencer.New(t, display.NewLine(opts.Out, color), seqOpts...)
	return errors.WrapOutputError(seq.Run())
}

func applyOverrides(cfg *config.Config, opts SessionOptions) error {
	if opts.Color != "" {
		cfg.Display.Color = config.ColorMode(opts.Color)
	}
	if opts.Progress != nil {
		cfg.Display.Progress = *opts.Progress
	}
	if opts.LogLevel != "" {
		cfg.Logging.Level = opts.LogLevel
	}
	if opts.LogFile != "" {
		cfg.Logging.File = opts.LogFile
	}
	if opts.SessionCSV != "" {
		cfg.Session.CSV = opts.SessionCSV
	}
	if opts.SessionJSON != "" {
		cfg.Session.JSON = opts.SessionJSON
	}
	return config.Validate(cfg)
}

func resolveTechnique(opts SessionOptions, cfg *config.Config) (technique.Technique, error) {
	for _, selector := range []string{opts.Technique, cfg.DefaultTechnique} {
		if selector == "" {
			continue
		}
		t, ok := technique.Lookup(selector)
		if !ok {
			return technique.Technique{}, fmt.Errorf("unknown technique %q (use one of %v)", selector, technique.Selectors())
		}
		return t, nil
	}

	if opts.Interface == InterfaceTUI {
		return menu.SelectForm()
	}
	return menu.Ask(opts.In, opts.Out)
}
