package tetris

// Direction is the movement queued for the next tick.
type Direction uint8

const (
	DirNone Direction = iota
	DirLeft
	DirRight
	DirDown
)

// String returns a lower-case name for the direction.
func (d Direction) String() string {
	switch d {
	case DirNone:
		return "none"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	default:
		return "unknown"
	}
}

// dx is the horizontal shift the direction applies on a tick.
func (d Direction) dx() int {
	switch d {
	case DirLeft:
		return -1
	case DirRight:
		return 1
	default:
		return 0
	}
}

// State is the whole game at one instant. It contains only arrays and
// scalars, so assignment copies it and == compares it by value.
type State struct {
	Terminated  bool
	Block       Shape // falling piece
	Kind        Kind  // kind of Block, drives rotation
	Direction   Direction
	Board       Board
	Settled     bool // Block touched down last tick and is stamped on the next
	Score       int
	HighScore   int
	Next        Shape
	NextKind    Kind
	RowsCleared int
	Level       int
	Paused      bool
}

// spawnOrigin is where the baseline square starts.
var spawnOrigin = Point{X: 4, Y: 0}

// Baseline returns the fixed start state: an empty board with the square
// falling from the top and another square queued.
func Baseline() State {
	return State{
		Block:    DefaultShape(spawnOrigin),
		Kind:     KindO,
		Board:    EmptyBoard(),
		Next:     DefaultShape(spawnOrigin),
		NextKind: KindO,
	}
}

// NewGame returns the baseline with the queued piece drawn from r.
func NewGame(r Randomizer) State {
	s := Baseline()
	s.NextKind, s.Next = RandomShape(r)
	return s
}

// Restart starts a new game from s, keeping the best score seen so far.
// A finished game's final score counts towards it. The result is the
// baseline except for the queued piece, which is drawn from r as in NewGame.
func Restart(s State, r Randomizer) State {
	best := s.HighScore
	if s.Terminated {
		best = max(best, s.Score)
	}
	next := NewGame(r)
	next.HighScore = best
	return next
}
