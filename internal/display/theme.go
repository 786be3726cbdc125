package display

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/tturner/breathe/internal/config"
	"github.com/tturner/breathe/internal/technique"
)

// Theme defines the color palette.
// Inspired by the Tokyo Night color scheme.
type Theme struct {
	TextPrimary lipgloss.Color
	TextDim     lipgloss.Color
	TextMuted   lipgloss.Color
	Border      lipgloss.Color

	Accent lipgloss.Color

	// Phase colors
	Inhale lipgloss.Color
	Exhale lipgloss.Color
	Hold   lipgloss.Color
}

// DefaultTheme returns the default dark theme.
var DefaultTheme = Theme{
	TextPrimary: lipgloss.Color("#c0caf5"),
	TextDim:     lipgloss.Color("#565f89"),
	TextMuted:   lipgloss.Color("#414868"),
	Border:      lipgloss.Color("#414868"),

	Accent: lipgloss.Color("#7aa2f7"),

	Inhale: lipgloss.Color("#9ece6a"), // Green
	Exhale: lipgloss.Color("#f7768e"), // Red/Pink
	Hold:   lipgloss.Color("#7aa2f7"), // Blue
}

// Styles provides pre-configured lipgloss styles using the theme.
type Styles struct {
	Base  lipgloss.Style
	Dim   lipgloss.Style
	Bold  lipgloss.Style
	Title lipgloss.Style

	Inhale lipgloss.Style
	Exhale lipgloss.Style
	Hold   lipgloss.Style

	ProgressFilled lipgloss.Style
	ProgressEmpty  lipgloss.Style

	Panel  lipgloss.Style
	Footer lipgloss.Style
}

// NewStyles creates styles bound to renderer r.
func NewStyles(t Theme, r *lipgloss.Renderer) Styles {
	return Styles{
		Base: r.NewStyle().Foreground(t.TextPrimary),
		Dim:  r.NewStyle().Foreground(t.TextDim),
		Bold: r.NewStyle().Foreground(t.TextPrimary).Bold(true),
		Title: r.NewStyle().
			Foreground(t.Accent).
			Bold(true),

		Inhale: r.NewStyle().Foreground(t.Inhale).Bold(true),
		Exhale: r.NewStyle().Foreground(t.Exhale).Bold(true),
		Hold:   r.NewStyle().Foreground(t.Hold).Bold(true),

		ProgressFilled: r.NewStyle().Foreground(t.Accent),
		ProgressEmpty:  r.NewStyle().Foreground(t.TextMuted),

		Panel: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(1, 4),
		Footer: r.NewStyle().Foreground(t.TextDim),
	}
}

// DefaultStyles returns styles using the default theme and renderer.
var DefaultStyles = NewStyles(DefaultTheme, lipgloss.DefaultRenderer())

// Phase returns the style for a phase kind.
func (s Styles) Phase(kind technique.PhaseKind) lipgloss.Style {
	switch kind {
	case technique.KindInhale:
		return s.Inhale
	case technique.KindExhale:
		return s.Exhale
	default:
		return s.Hold
	}
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// UseColor resolves a color mode against the destination writer.
func UseColor(w io.Writer, mode config.ColorMode) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return IsTerminal(w)
	}
}

// NewRenderer returns a lipgloss renderer for w with coloring forced on or off.
func NewRenderer(w io.Writer, color bool) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	switch {
	case !color:
		r.SetColorProfile(termenv.Ascii)
	case r.ColorProfile() == termenv.Ascii:
		r.SetColorProfile(termenv.ANSI256)
	}
	return r
}
