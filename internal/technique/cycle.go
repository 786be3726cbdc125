package technique

// Cycle walks a technique's phases in order, wrapping to the first phase after
// the last. It has no terminal state.
type Cycle struct {
	phases []Phase
	index  int
	rounds int
}

// NewCycle starts at index 0 of t.
func NewCycle(t Technique) *Cycle {
	return &Cycle{phases: t.Phases()}
}

// Current returns the phase at the current index.
func (c *Cycle) Current() Phase {
	return c.phases[c.index]
}

// Index returns the zero-based position within the sequence.
func (c *Cycle) Index() int { return c.index }

// Rounds returns how many full passes have completed.
func (c *Cycle) Rounds() int { return c.rounds }

// Advance moves to the next phase and returns it.
func (c *Cycle) Advance() Phase {
	c.index++
	if c.index == len(c.phases) {
		c.index = 0
		c.rounds++
	}
	return c.phases[c.index]
}
