package app

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/tturner/breathe/internal/errors"
	"github.com/tturner/breathe/internal/technique"
)

// RenderTechniqueTable renders the built-in techniques as a table.
func RenderTechniqueTable() string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"#", "Key", "Technique", "Phases", "Cycle"})
	for _, t := range technique.Presets() {
		tw.AppendRow(table.Row{
			t.Selector(),
			t.Key(),
			t.Name(),
			strconv.Itoa(t.Len()),
			fmt.Sprintf("%ds", t.CycleSeconds()),
		})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 4, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 5, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}

// RunList prints the technique table.
func RunList(w io.Writer) error {
	_, err := fmt.Fprintln(w, RenderTechniqueTable())
	return err
}

// ShowOptions configures RunShow.
type ShowOptions struct {
	Selector string
	Copy     bool
	Out      io.Writer

	// WriteClipboard overrides the system clipboard.
	WriteClipboard func(string) error
}

// Describe returns a multi-line description of t.
func Describe(t technique.Technique) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s)\n", t.Name(), t.Key())
	for i, p := range t.Phases() {
		fmt.Fprintf(&b, "  %d. %-13s %ds\n", i+1, p.Name, p.DurationSeconds)
	}
	fmt.Fprintf(&b, "Cycle: %ds", t.CycleSeconds())
	return b.String()
}

// RunShow prints one technique and optionally copies its pattern.
func RunShow(opts ShowOptions) error {
	t, ok := technique.Lookup(opts.Selector)
	if !ok {
		return fmt.Errorf("unknown technique %q (use one of %v)", opts.Selector, technique.Selectors())
	}
	if _, err := fmt.Fprintln(opts.Out, Describe(t)); err != nil {
		return err
	}
	if !opts.Copy {
		return nil
	}

	write := opts.WriteClipboard
	if write == nil {
		write = clipboard.WriteAll
	}
	if err := write(t.Name() + ": " + t.Pattern()); err != nil {
		return errors.WrapClipboardError(err)
	}
	_, err := fmt.Fprintln(opts.Out, "Copied pattern to clipboard.")
	return err
}
