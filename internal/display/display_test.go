package display

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/tturner/breathe/internal/config"
	"github.com/tturner/breathe/internal/technique"
)

func TestLineShowPhase(t *testing.T) {
	var buf bytes.Buffer
	line := NewLine(&buf, false)

	if err := line.ShowPhase(technique.Phase{Name: "Inhale", DurationSeconds: 4}); err != nil {
		t.Fatalf("ShowPhase: %v", err)
	}
	if got := buf.String(); got != "\rPhase: Inhale (4s)" {
		t.Errorf("output = %q", got)
	}
}

func TestLinePadsShorterLabels(t *testing.T) {
	var buf bytes.Buffer
	line := NewLine(&buf, false)

	line.ShowPhase(technique.Phase{Name: "Exhale Right", DurationSeconds: 4})
	buf.Reset()
	line.ShowPhase(technique.Phase{Name: "Hold", DurationSeconds: 4})

	// "Exhale Right" is 8 runes longer than "Hold"
	want := "\rPhase: Hold (4s)" + strings.Repeat(" ", 8)
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestLineShowProgress(t *testing.T) {
	var buf bytes.Buffer
	line := NewLine(&buf, false)

	if err := line.ShowProgress(technique.Phase{Name: "Hold", DurationSeconds: 4}, 2); err != nil {
		t.Fatalf("ShowProgress: %v", err)
	}
	want := "\rPhase: Hold (4s) [" + strings.Repeat("█", 10) + strings.Repeat("-", 10) + "]"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestLineColor(t *testing.T) {
	var buf bytes.Buffer
	line := NewLine(&buf, true)
	line.ShowPhase(technique.Phase{Name: "Exhale", DurationSeconds: 4})

	out := buf.String()
	if !strings.Contains(out, "\x1b[") {
		t.Errorf("expected ANSI escape in colored output: %q", out)
	}
	if !strings.Contains(out, "Phase: Exhale (4s)") {
		t.Errorf("colored output lost label: %q", out)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, os.ErrClosed }

func TestLineWriteError(t *testing.T) {
	line := NewLine(failingWriter{}, false)
	err := line.ShowPhase(technique.Phase{Name: "Inhale", DurationSeconds: 4})
	if !errors.Is(err, os.ErrClosed) {
		t.Errorf("ShowPhase error = %v, want os.ErrClosed", err)
	}
}

func TestBarCells(t *testing.T) {
	tests := []struct {
		current, total, want int
	}{
		{0, 4, 0},
		{1, 4, 5},
		{3, 4, 15},
		{4, 4, 20},
		{9, 4, 20},
		{1, 0, 0},
		{1, 3, 6},
	}
	for _, tt := range tests {
		if got := DefaultBar.Cells(tt.current, tt.total); got != tt.want {
			t.Errorf("Cells(%d, %d) = %d, want %d", tt.current, tt.total, got, tt.want)
		}
	}
}

func TestUseColor(t *testing.T) {
	var buf bytes.Buffer
	if UseColor(&buf, config.ColorAuto) {
		t.Error("buffer is not a terminal")
	}
	if !UseColor(&buf, config.ColorAlways) {
		t.Error("always should force color")
	}
	if UseColor(os.Stdout, config.ColorNever) {
		t.Error("never should disable color")
	}
}

func TestStylesPhase(t *testing.T) {
	s := NewStyles(DefaultTheme, NewRenderer(&bytes.Buffer{}, true))
	if s.Phase(technique.KindInhale).GetForeground() != DefaultTheme.Inhale {
		t.Error("inhale should use the inhale color")
	}
	if s.Phase(technique.KindExhale).GetForeground() != DefaultTheme.Exhale {
		t.Error("exhale should use the exhale color")
	}
	if s.Phase(technique.KindHold).GetForeground() != DefaultTheme.Hold {
		t.Error("hold should use the hold color")
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{4 * time.Second, "4s"},
		{64 * time.Second, "1m04s"},
		{2*time.Hour + 5*time.Minute, "2h05m"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.d); got != tt.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
