package display

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/tturner/breathe/internal/technique"
)

// Line draws the current phase on a single terminal line, redrawing in place.
type Line struct {
	w         io.Writer
	styles    Styles
	bar       Bar
	lastWidth int
}

// NewLine creates a status line writing to w.
func NewLine(w io.Writer, color bool) *Line {
	return &Line{
		w:      w,
		styles: NewStyles(DefaultTheme, NewRenderer(w, color)),
		bar:    DefaultBar,
	}
}

// Label is the uncolored status text for p.
func Label(p technique.Phase) string {
	return fmt.Sprintf("Phase: %s (%ds)", p.Name, p.DurationSeconds)
}

// ShowPhase draws p.
func (l *Line) ShowPhase(p technique.Phase) error {
	label := Label(p)
	return l.draw(label, l.styles.Phase(p.Kind()).Render(label))
}

// ShowProgress draws p with a bar for elapsed seconds.
func (l *Line) ShowProgress(p technique.Phase, elapsed int) error {
	label := Label(p)
	visible := label + " [" + l.bar.Plain(elapsed, p.DurationSeconds) + "]"
	styled := l.styles.Phase(p.Kind()).Render(label) + " [" + l.bar.Render(elapsed, p.DurationSeconds, l.styles) + "]"
	return l.draw(visible, styled)
}

// Finish moves the cursor past the status line.
func (l *Line) Finish() error {
	_, err := io.WriteString(l.w, "\n")
	l.lastWidth = 0
	return err
}

func (l *Line) draw(visible, styled string) error {
	width := utf8.RuneCountInString(visible)
	pad := ""
	if l.lastWidth > width {
		pad = strings.Repeat(" ", l.lastWidth-width)
	}
	l.lastWidth = width
	_, err := io.WriteString(l.w, "\r"+styled+pad)
	return err
}
