package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tturner/breathe/internal/display"
	"github.com/tturner/breathe/internal/logging"
	"github.com/tturner/breathe/internal/sequencer"
	"github.com/tturner/breathe/internal/technique"
)

// Model is the full-screen session model. Phases advance on a one second tick.
type Model struct {
	technique technique.Technique
	cycle     *technique.Cycle
	elapsed   int // seconds into the current phase
	session   time.Duration

	styles   display.Styles
	bar      display.Bar
	recorder sequencer.Recorder
	logger   *logging.Logger
	now      func() time.Time

	width    int
	height   int
	quitting bool
}

// NewModel creates a model positioned at the first phase of t.
func NewModel(t technique.Technique, styles display.Styles) *Model {
	return &Model{
		technique: t,
		cycle:     technique.NewCycle(t),
		styles:    styles,
		bar:       display.Bar{Width: 30, Filled: "█", Empty: "░"},
		logger:    logging.Discard(),
		now:       time.Now,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	m.record()
	return tickCmd()
}

// tickMsg is sent once per second.
type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tickMsg:
		m.advance()
		return m, tickCmd()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *Model) advance() {
	m.session += time.Second
	m.elapsed++
	if m.elapsed < m.cycle.Current().DurationSeconds {
		return
	}
	m.elapsed = 0
	m.cycle.Advance()
	m.record()
}

func (m *Model) record() {
	p := m.cycle.Current()
	m.logger.LogPhase(m.cycle.Rounds(), m.cycle.Index(), p.Name, p.DurationSeconds)
	if m.recorder == nil {
		return
	}
	t := sequencer.Transition{Time: m.now(), Round: m.cycle.Rounds(), Index: m.cycle.Index(), Phase: p}
	if err := m.recorder.Record(t); err != nil {
		m.logger.Error("record phase: %v", err)
	}
}

// Current returns the phase on screen.
func (m *Model) Current() technique.Phase { return m.cycle.Current() }

// Elapsed returns seconds spent in the current phase.
func (m *Model) Elapsed() int { return m.elapsed }

// Rounds returns completed cycles.
func (m *Model) Rounds() int { return m.cycle.Rounds() }

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	p := m.cycle.Current()
	remaining := p.DurationSeconds - m.elapsed

	var b strings.Builder
	b.WriteString(m.styles.Title.Render(m.technique.Name()))
	b.WriteString("\n")
	b.WriteString(m.styles.Dim.Render(m.technique.Pattern()))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Phase(p.Kind()).Render(display.Label(p)))
	b.WriteString("\n")
	b.WriteString(m.bar.Render(m.elapsed, p.DurationSeconds, m.styles))
	b.WriteString(m.styles.Dim.Render(fmt.Sprintf(" %ds", remaining)))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Base.Render(fmt.Sprintf("Cycle %d  ·  Phase %d/%d  ·  Session %s",
		m.cycle.Rounds()+1, m.cycle.Index()+1, m.technique.Len(), display.FormatDuration(m.session))))
	b.WriteString("\n")
	b.WriteString(m.styles.Footer.Render("q quit"))

	panel := m.styles.Panel.Render(b.String())
	if m.width == 0 || m.height == 0 {
		return panel
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, panel)
}

// Farewell is printed after the program exits.
func (m *Model) Farewell() string {
	cycles := "cycles"
	if m.cycle.Rounds() == 1 {
		cycles = "cycle"
	}
	return fmt.Sprintf("Namaste. %d %s of %s in %s.",
		m.cycle.Rounds(), cycles, m.technique.Name(), display.FormatDuration(m.session))
}
