package tetris

import "time"

// Output is what the machine hands back after each event.
// When Retune is set the caller must cancel its pending tick and schedule
// the next one Interval from now.
type Output struct {
	State    State
	Interval time.Duration
	Retune   bool
}

// Machine owns the current State and folds events into it one at a time.
// It is not safe for concurrent use; the driver serializes events.
type Machine struct {
	state State
	rng   Randomizer
	speed *SpeedController
}

// NewMachine starts a new game using r for piece selection.
func NewMachine(r Randomizer, speed SpeedConfig) *Machine {
	return &Machine{
		state: NewGame(r),
		rng:   r,
		speed: NewSpeedController(speed),
	}
}

// State returns the current state.
func (m *Machine) State() State {
	return m.state
}

// Interval returns the tick interval the driver should be using.
func (m *Machine) Interval() time.Duration {
	return m.speed.Interval()
}

// Speed returns the intervals the machine was configured with.
func (m *Machine) Speed() SpeedConfig {
	return m.speed.Config()
}

// Handle applies ev and reports the new state and any tick retune.
func (m *Machine) Handle(ev Event) Output {
	m.state = Reduce(m.state, ev, m.rng)
	out := Output{State: m.state, Interval: m.speed.Interval()}

	switch ev {
	case EventTick:
		out.Interval, out.Retune = m.speed.Observe(m.state.RowsCleared)
	case EventRestart:
		// Always retune so a timer stopped at game over starts again.
		out.Interval = m.speed.Reset()
		out.Retune = true
	}
	return out
}
