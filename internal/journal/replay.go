package journal

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

// Result is the outcome of replaying a journal.
type Result struct {
	Final    tetris.State
	Events   int           // Entries applied
	Skipped  int           // Entries with an unknown event name
	Retunes  int           // Outputs that asked the driver to retune its timer
	Interval time.Duration // Tick interval after the last event
	Duration time.Duration // Offset of the last entry
}

// Replay rebuilds the game a journal recorded. Piece selection is seeded
// from the header, so a journal written by a game started with
// rand.New(rand.NewSource(seed)) replays to the same final state.
func Replay(l Log) Result {
	rng := rand.New(rand.NewSource(l.Header.Seed))
	m := tetris.NewMachine(rng, l.Header.Speed())

	res := Result{Final: m.State(), Interval: m.Interval()}
	for _, e := range l.Entries {
		ev, ok := tetris.ParseEvent(e.Event)
		if !ok {
			res.Skipped++
			continue
		}
		out := m.Handle(ev)
		res.Events++
		if out.Retune {
			res.Retunes++
		}
		res.Final = out.State
		res.Interval = out.Interval
		res.Duration = time.Duration(e.AtMs) * time.Millisecond
	}
	return res
}
