package display

import (
	"fmt"
	"strings"
	"time"
)

// Bar renders a fixed-width progress bar.
type Bar struct {
	Width  int
	Filled string
	Empty  string
}

// DefaultBar is the 20-cell bar shown beside the phase name.
var DefaultBar = Bar{Width: 20, Filled: "█", Empty: "-"}

// Cells returns how many cells are filled for current out of total.
func (b Bar) Cells(current, total int) int {
	if total <= 0 || current <= 0 {
		return 0
	}
	if current >= total {
		return b.Width
	}
	return b.Width * current / total
}

// Render returns the bar for current out of total, styled with s.
func (b Bar) Render(current, total int, s Styles) string {
	filled := b.Cells(current, total)
	return s.ProgressFilled.Render(strings.Repeat(b.Filled, filled)) +
		s.ProgressEmpty.Render(strings.Repeat(b.Empty, b.Width-filled))
}

// Plain returns the unstyled bar.
func (b Bar) Plain(current, total int) string {
	filled := b.Cells(current, total)
	return strings.Repeat(b.Filled, filled) + strings.Repeat(b.Empty, b.Width-filled)
}

// FormatDuration formats a duration in a human-readable way
func FormatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm%02ds", int(d.Minutes()), int(d.Seconds())%60)
	}
	return fmt.Sprintf("%dh%02dm", int(d.Hours()), int(d.Minutes())%60)
}
