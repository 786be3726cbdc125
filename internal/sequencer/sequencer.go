// Package sequencer replays a breathing technique's phases forever.
package sequencer

import (
	"time"

	"github.com/tturner/breathe/internal/logging"
	"github.com/tturner/breathe/internal/technique"
)

// Display shows the current phase.
type Display interface {
	ShowPhase(p technique.Phase) error
}

// ProgressDisplay can additionally redraw progress within a phase.
type ProgressDisplay interface {
	Display
	ShowProgress(p technique.Phase, elapsed int) error
}

// Sleeper blocks for a duration.
type Sleeper interface {
	Sleep(d time.Duration)
}

// SleeperFunc adapts a function to Sleeper.
type SleeperFunc func(time.Duration)

func (f SleeperFunc) Sleep(d time.Duration) { f(d) }

// Transition describes one displayed phase.
type Transition struct {
	Time  time.Time
	Round int
	Index int
	Phase technique.Phase
}

// Recorder receives every transition as it is displayed.
type Recorder interface {
	Record(t Transition) error
}

// Option configures a Sequencer.
type Option func(*Sequencer)

// WithSleeper replaces time.Sleep.
func WithSleeper(s Sleeper) Option {
	return func(seq *Sequencer) { seq.sleeper = s }
}

// WithProgress redraws the display once per second within each phase when the
// display supports it.
func WithProgress(enabled bool) Option {
	return func(seq *Sequencer) { seq.progress = enabled }
}

// WithRecorder attaches a session recorder.
func WithRecorder(r Recorder) Option {
	return func(seq *Sequencer) { seq.recorder = r }
}

// WithLogger attaches a logger.
func WithLogger(l *logging.Logger) Option {
	return func(seq *Sequencer) { seq.logger = l }
}

// WithClock replaces time.Now for transition timestamps.
func WithClock(now func() time.Time) Option {
	return func(seq *Sequencer) { seq.now = now }
}

// Sequencer cycles through a technique's phases. It is not safe for
// concurrent use.
type Sequencer struct {
	technique technique.Technique
	cycle     *technique.Cycle
	display   Display
	sleeper   Sleeper
	progress  bool
	recorder  Recorder
	logger    *logging.Logger
	now       func() time.Time
}

// New creates a sequencer positioned at the first phase of t.
func New(t technique.Technique, d Display, opts ...Option) *Sequencer {
	s := &Sequencer{
		technique: t,
		cycle:     technique.NewCycle(t),
		display:   d,
		sleeper:   SleeperFunc(time.Sleep),
		logger:    logging.Discard(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Technique returns the technique being replayed.
func (s *Sequencer) Technique() technique.Technique { return s.technique }

// Current returns the phase the next Step will display.
func (s *Sequencer) Current() technique.Phase { return s.cycle.Current() }

// Rounds returns how many full cycles have completed.
func (s *Sequencer) Rounds() int { return s.cycle.Rounds() }

// Step displays the current phase, blocks for its duration and advances to the
// next phase. It returns the phase that was displayed.
func (s *Sequencer) Step() (technique.Phase, error) {
	p := s.cycle.Current()
	round, index := s.cycle.Rounds(), s.cycle.Index()

	if err := s.display.ShowPhase(p); err != nil {
		return p, err
	}
	s.logger.LogPhase(round, index, p.Name, p.DurationSeconds)

	if s.recorder != nil {
		t := Transition{Time: s.now(), Round: round, Index: index, Phase: p}
		if err := s.recorder.Record(t); err != nil {
			// Session logging is best effort; the session keeps going.
			s.logger.Error("record phase: %v", err)
		}
	}

	if err := s.wait(p); err != nil {
		return p, err
	}

	s.cycle.Advance()
	return p, nil
}

func (s *Sequencer) wait(p technique.Phase) error {
	pd, ok := s.display.(ProgressDisplay)
	if !s.progress || !ok {
		s.sleeper.Sleep(p.Duration())
		return nil
	}
	for elapsed := 1; elapsed <= p.DurationSeconds; elapsed++ {
		s.sleeper.Sleep(time.Second)
		if err := pd.ShowProgress(p, elapsed); err != nil {
			return err
		}
	}
	return nil
}

// Run steps forever. It only returns when the display fails, and the error it
// returns is never nil.
func (s *Sequencer) Run() error {
	for {
		if _, err := s.Step(); err != nil {
			return err
		}
	}
}
