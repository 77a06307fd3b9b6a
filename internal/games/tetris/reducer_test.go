package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReduceDebouncesDirection(t *testing.T) {
	s := Baseline()
	r := kinds(KindO)

	s = Reduce(s, EventLeft, r)
	require.Equal(t, DirLeft, s.Direction)

	s = Reduce(s, EventLeft, r)
	assert.Equal(t, DirLeft, s.Direction)

	s = Reduce(s, EventRight, r)
	assert.Equal(t, DirLeft, s.Direction, "a queued direction is not replaced")

	// No movement happens until the tick.
	assert.Equal(t, Baseline().Block, s.Block)

	s = Reduce(s, EventTick, r)
	assert.Equal(t, DirNone, s.Direction)
	assert.Equal(t, Baseline().Block.Translate(-1, 1), s.Block)

	s = Reduce(s, EventDown, r)
	assert.Equal(t, DirDown, s.Direction)
}

func TestReduceRotate(t *testing.T) {
	r := kinds(KindO)

	t.Run("legal rotation is committed", func(t *testing.T) {
		s := withBlock(KindI, Canonical(KindI))
		next := Reduce(s, EventRotate, r)
		assert.Equal(t, Rotate(s.Block, KindI), next.Block)
		assert.False(t, next.Paused, "rotate must not fall through to pause")
	})

	t.Run("out of bounds is rejected", func(t *testing.T) {
		s := withBlock(KindI, Canonical(KindI).Translate(5, 0))
		assert.Equal(t, s, Reduce(s, EventRotate, r))
	})

	t.Run("collision is rejected", func(t *testing.T) {
		s := withBlock(KindI, Canonical(KindI))
		s.Board = EmptyBoard().Fill(Point{5, 2})
		assert.Equal(t, s, Reduce(s, EventRotate, r))
	})

	t.Run("square never changes", func(t *testing.T) {
		s := Baseline()
		assert.Equal(t, s, Reduce(s, EventRotate, r))
	})

	t.Run("ignored when paused, ended or settled", func(t *testing.T) {
		for _, mutate := range []func(*State){
			func(s *State) { s.Paused = true },
			func(s *State) { s.Terminated = true },
			func(s *State) { s.Settled = true },
		} {
			s := withBlock(KindT, Canonical(KindT).Translate(0, 5))
			mutate(&s)
			assert.Equal(t, s, Reduce(s, EventRotate, r))
		}
	})
}

func TestReducePauseToggles(t *testing.T) {
	r := kinds(KindO)
	s := Baseline()

	s = Reduce(s, EventPause, r)
	assert.True(t, s.Paused)
	assert.Equal(t, s, Reduce(s, EventTick, r), "ticks are ignored while paused")

	s = Reduce(s, EventPause, r)
	assert.False(t, s.Paused)
}

func TestReduceRestartKeepsHighScore(t *testing.T) {
	tests := []struct {
		name       string
		score      int
		high       int
		terminated bool
		want       int
	}{
		{"running game keeps previous best", 80, 50, false, 50},
		{"finished game with better score", 80, 50, true, 80},
		{"finished game with worse score", 20, 50, true, 50},
		{"nothing recorded", 0, 0, false, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := withBlock(KindT, Canonical(KindT).Translate(0, 9))
			s.Board = boardFromRows("##.#######")
			s.Score = tc.score
			s.HighScore = tc.high
			s.Terminated = tc.terminated
			s.Level, s.RowsCleared, s.Paused = 4, 9, true

			next := Reduce(s, EventRestart, kinds(KindJ))

			want := Baseline()
			want.Next, want.NextKind = Canonical(KindJ), KindJ
			want.HighScore = tc.want
			assert.Equal(t, want, next)
		})
	}
}

func TestReduceEndedGameOnlyRestarts(t *testing.T) {
	r := kinds(KindO)
	s := withBlock(KindT, Canonical(KindT))
	s.Terminated = true

	s = Reduce(s, EventLeft, r)
	assert.Equal(t, DirLeft, s.Direction, "direction is still recorded")
	after := Reduce(s, EventTick, r)
	assert.Equal(t, s, after)
	assert.Equal(t, s, Reduce(s, EventRotate, r))

	after = Reduce(s, EventRestart, r)
	assert.False(t, after.Terminated)
}

func TestReduceUnknownEvent(t *testing.T) {
	s := withBlock(KindS, Canonical(KindS))
	r := kinds(KindO)
	assert.Equal(t, s, Reduce(s, Event(200), r))
	assert.Zero(t, r.n)
}

func TestEventNames(t *testing.T) {
	for _, ev := range []Event{EventTick, EventLeft, EventRight, EventDown, EventRotate, EventPause, EventRestart} {
		got, ok := ParseEvent(ev.String())
		require.Truef(t, ok, "ParseEvent(%q)", ev.String())
		assert.Equal(t, ev, got)
	}

	_, ok := ParseEvent("hold")
	assert.False(t, ok)
	assert.Equal(t, "unknown", Event(99).String())
}
