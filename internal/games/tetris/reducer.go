package tetris

// Event is one discrete input to the state machine.
type Event uint8

const (
	EventTick Event = iota
	EventLeft
	EventRight
	EventDown
	EventRotate
	EventPause
	EventRestart
)

var eventNames = [...]string{
	EventTick:    "tick",
	EventLeft:    "left",
	EventRight:   "right",
	EventDown:    "down",
	EventRotate:  "rotate",
	EventPause:   "pause",
	EventRestart: "restart",
}

// String returns the wire name of the event.
func (e Event) String() string {
	if int(e) < len(eventNames) {
		return eventNames[e]
	}
	return "unknown"
}

// ParseEvent maps a wire name back to an Event.
func ParseEvent(name string) (Event, bool) {
	for i, n := range eventNames {
		if n == name {
			return Event(i), true
		}
	}
	return 0, false
}

// Reduce applies one event to s and returns the resulting state.
// Unknown events leave the state unchanged.
func Reduce(s State, ev Event, r Randomizer) State {
	switch ev {
	case EventTick:
		return Tick(s, r)
	case EventLeft:
		return steer(s, DirLeft)
	case EventRight:
		return steer(s, DirRight)
	case EventDown:
		return steer(s, DirDown)
	case EventRotate:
		return rotateBlock(s)
	case EventPause:
		s.Paused = !s.Paused
		return s
	case EventRestart:
		return Restart(s, r)
	default:
		return s
	}
}

// steer queues a direction. Only one direction is kept per tick; later
// requests before the tick consumes it are dropped.
func steer(s State, d Direction) State {
	if s.Direction != DirNone {
		return s
	}
	s.Direction = d
	return s
}

// rotateBlock commits the rotated piece only if it stays on the board and
// clear of settled cells. A paused board is frozen and a settled piece is
// stamped where it lies on the next tick, so neither accepts rotation.
func rotateBlock(s State) State {
	if s.Terminated || s.Paused || s.Settled {
		return s
	}
	rotated := Rotate(s.Block, s.Kind)
	if OutOfBounds(rotated) || Collides(rotated, s.Board) {
		return s
	}
	s.Block = rotated
	return s
}
