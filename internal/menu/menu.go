package menu

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/tturner/breathe/internal/errors"
	"github.com/tturner/breathe/internal/technique"
)

// Title is printed above the menu.
const Title = "Mindful Breathing Visualizer"

// Prompt is printed after the menu, without a trailing newline.
const Prompt = "Select a technique (1-3): "

// Print writes the title, the numbered technique list and the prompt.
func Print(w io.Writer) error {
	var b strings.Builder
	b.WriteString(Title + "\n")
	for _, t := range technique.Presets() {
		fmt.Fprintf(&b, "%s. %s\n", t.Selector(), t.Name())
	}
	b.WriteString(Prompt)
	_, err := io.WriteString(w, b.String())
	return err
}

// ReadSelection reads one line. A final line without a newline is accepted;
// a stream that ends before anything is read is an error.
func ReadSelection(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil {
		if stderrors.Is(err, io.EOF) && line != "" {
			return line, nil
		}
		return "", fmt.Errorf("read selection: %w", err)
	}
	return line, nil
}

// Ask prints the menu to w and reads the selection from r. Failures come back
// as user-friendly input or output errors.
func Ask(r io.Reader, w io.Writer) (technique.Technique, error) {
	if err := Print(w); err != nil {
		return technique.Technique{}, errors.WrapOutputError(err)
	}
	raw, err := ReadSelection(r)
	if err != nil {
		return technique.Technique{}, errors.WrapInputError(err)
	}
	return technique.Select(raw), nil
}

// Banner writes the lines shown once a technique is chosen.
func Banner(w io.Writer, t technique.Technique) error {
	_, err := fmt.Fprintf(w, "Starting %s...\nPress Ctrl+C to stop.\n", t.Name())
	return err
}

// BuildForm returns a huh form whose select writes the chosen selector into
// value.
func BuildForm(value *string) *huh.Form {
	options := make([]huh.Option[string], 0, 3)
	for _, t := range technique.Presets() {
		options = append(options, huh.NewOption(t.Name(), t.Selector()))
	}

	group := huh.NewGroup(
		huh.NewSelect[string]().
			Title(Title).
			Description("Choose a breathing technique.").
			Key("technique").
			Options(options...).
			Value(value),
	)
	return huh.NewForm(group)
}

// SelectForm runs the interactive form and returns the chosen technique.
func SelectForm() (technique.Technique, error) {
	selector := "1"
	if err := BuildForm(&selector).Run(); err != nil {
		return technique.Technique{}, fmt.Errorf("technique form: %w", err)
	}
	return technique.Select(selector), nil
}
