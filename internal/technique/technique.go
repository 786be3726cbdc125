package technique

// Built-in breathing techniques and selector parsing

import (
	"fmt"
	"strings"
	"time"
)

// PhaseKind classifies a phase for display purposes.
type PhaseKind int

const (
	KindHold PhaseKind = iota
	KindInhale
	KindExhale
)

func (k PhaseKind) String() string {
	switch k {
	case KindInhale:
		return "inhale"
	case KindExhale:
		return "exhale"
	default:
		return "hold"
	}
}

// Phase is one named segment of a breathing cycle.
type Phase struct {
	Name            string
	DurationSeconds int
}

// Duration returns the phase length as a time.Duration.
func (p Phase) Duration() time.Duration {
	return time.Duration(p.DurationSeconds) * time.Second
}

// Kind derives the phase kind from its name prefix.
func (p Phase) Kind() PhaseKind {
	switch {
	case strings.HasPrefix(p.Name, "Inhale"):
		return KindInhale
	case strings.HasPrefix(p.Name, "Exhale"):
		return KindExhale
	default:
		return KindHold
	}
}

func (p Phase) String() string {
	return fmt.Sprintf("%s (%ds)", p.Name, p.DurationSeconds)
}

// Technique is a fixed, ordered sequence of phases. The zero value is not usable;
// obtain one through Select, Lookup or Presets.
type Technique struct {
	selector string
	key      string
	name     string
	phases   []Phase
}

// Selector returns the menu number of the technique ("1".."3").
func (t Technique) Selector() string { return t.selector }

// Key returns the stable identifier used by flags and config files.
func (t Technique) Key() string { return t.key }

// Name returns the display name.
func (t Technique) Name() string { return t.name }

// Len returns the number of phases in one cycle.
func (t Technique) Len() int { return len(t.phases) }

// Phases returns a copy of the phase sequence.
func (t Technique) Phases() []Phase {
	out := make([]Phase, len(t.phases))
	copy(out, t.phases)
	return out
}

// Phase returns the phase at index i.
func (t Technique) Phase(i int) Phase {
	return t.phases[i]
}

// CycleSeconds is the total length of one pass through the sequence.
func (t Technique) CycleSeconds() int {
	total := 0
	for _, p := range t.phases {
		total += p.DurationSeconds
	}
	return total
}

// Pattern renders the sequence as "Inhale 4s, Hold 4s, ...".
func (t Technique) Pattern() string {
	parts := make([]string, 0, len(t.phases))
	for _, p := range t.phases {
		parts = append(parts, fmt.Sprintf("%s %ds", p.Name, p.DurationSeconds))
	}
	return strings.Join(parts, ", ")
}

// Validate checks that the sequence is non-empty and every phase is well formed.
func (t Technique) Validate() error {
	if len(t.phases) == 0 {
		return fmt.Errorf("technique %q has no phases", t.name)
	}
	for i, p := range t.phases {
		if strings.TrimSpace(p.Name) == "" {
			return fmt.Errorf("technique %q phase[%d]: name is required", t.name, i)
		}
		if p.DurationSeconds <= 0 {
			return fmt.Errorf("technique %q phase[%d] (%s): duration must be > 0", t.name, i, p.Name)
		}
	}
	return nil
}

const (
	KeyBox              = "box"
	KeyDiaphragmatic    = "diaphragmatic"
	KeyAlternateNostril = "alternate-nostril"
)

func box() Technique {
	return Technique{
		selector: "1",
		key:      KeyBox,
		name:     "Box Breathing",
		phases: []Phase{
			{"Inhale", 4},
			{"Hold", 4},
			{"Exhale", 4},
			{"Hold", 4},
		},
	}
}

func diaphragmatic() Technique {
	return Technique{
		selector: "2",
		key:      KeyDiaphragmatic,
		name:     "Diaphragmatic Breathing",
		phases: []Phase{
			{"Inhale", 5},
			{"Exhale", 5},
		},
	}
}

func alternateNostril() Technique {
	return Technique{
		selector: "3",
		key:      KeyAlternateNostril,
		name:     "Alternate Nostril Breathing",
		phases: []Phase{
			{"Inhale Left", 4},
			{"Hold", 4},
			{"Exhale Right", 4},
			{"Hold", 4},
			{"Inhale Right", 4},
			{"Hold", 4},
			{"Exhale Left", 4},
			{"Hold", 4},
		},
	}
}

// Presets returns the built-in techniques in menu order.
func Presets() []Technique {
	return []Technique{box(), diaphragmatic(), alternateNostril()}
}

// Select maps raw menu input to a technique. Only "2" and "3" (after trimming
// surrounding whitespace) pick something other than Box Breathing.
func Select(raw string) Technique {
	switch strings.TrimSpace(raw) {
	case "2":
		return diaphragmatic()
	case "3":
		return alternateNostril()
	default:
		return box()
	}
}

// Lookup resolves a selector number or key strictly. Unlike Select it reports
// unknown input instead of defaulting.
func Lookup(selector string) (Technique, bool) {
	want := strings.ToLower(strings.TrimSpace(selector))
	for _, t := range Presets() {
		if want == t.selector || want == t.key {
			return t, true
		}
	}
	return Technique{}, false
}

// Selectors lists every value Lookup accepts.
func Selectors() []string {
	var out []string
	for _, t := range Presets() {
		out = append(out, t.selector, t.key)
	}
	return out
}
