package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTickNoOpWhenTerminatedOrPaused(t *testing.T) {
	base := withBlock(KindI, Canonical(KindI))
	base.Direction = DirLeft
	base.Settled = true

	for _, mutate := range []func(*State){
		func(s *State) { s.Terminated = true },
		func(s *State) { s.Paused = true },
		func(s *State) { s.Terminated, s.Paused = true, true },
	} {
		s := base
		mutate(&s)
		r := kinds(KindT)
		assert.Equal(t, s, Tick(s, r))
		assert.Zero(t, r.n, "a no-op tick must not draw a piece")
	}
}

func TestTickIFallsAndSettlesOnFloor(t *testing.T) {
	s := withBlock(KindI, Canonical(KindI))
	r := kinds(KindO)

	settledAt := 0
	for i := 1; i <= 20; i++ {
		s = Tick(s, r)
		if s.Settled && settledAt == 0 {
			settledAt = i
			for j, p := range s.Block {
				assert.Equal(t, Point{4, 16 + j}, p, "settled piece keeps its last position")
			}
		}
		if i == 18 {
			for y := 16; y <= 19; y++ {
				assert.Equalf(t, uint8(1), s.Board.Occupancy()[y][4], "row %d column 4 not stamped", y)
			}
		}
	}

	require.NotZero(t, settledAt, "the I piece never settled")
	assert.LessOrEqual(t, settledAt, 17)
	assert.False(t, s.Terminated)
	assertInSync(t, s.Board)
}

func TestTickPromotesNextPiece(t *testing.T) {
	s := withBlock(KindI, Canonical(KindI).Translate(0, 16))
	s.Settled = true
	s.Direction = DirRight
	s.Next, s.NextKind = Canonical(KindL), KindL

	r := kinds(KindZ, KindT)
	s = Tick(s, r)

	assert.Equal(t, Canonical(KindL), s.Block)
	assert.Equal(t, KindL, s.Kind)
	assert.Equal(t, Canonical(KindT), s.Next, "the queue gets a fresh draw, not the spawn candidate")
	assert.Equal(t, KindT, s.NextKind)
	assert.False(t, s.Settled)
	assert.Equal(t, DirNone, s.Direction)
	assert.Equal(t, 2, r.n, "candidate draw plus queue draw")
}

func TestTickGameOverDrawsOnlyCandidate(t *testing.T) {
	s := withBlock(KindO, DefaultShape(Point{0, 0}))
	s.Settled = true
	s.Next, s.NextKind = Canonical(KindL), KindL

	r := kinds(KindZ, KindT)
	next := Tick(s, r)
	require.True(t, next.Terminated)
	assert.Equal(t, 1, r.n)
	assert.Equal(t, KindL, next.NextKind, "the queue is untouched at game over")
}

func TestTickClearsCompletedRow(t *testing.T) {
	s := withBlock(KindI, Canonical(KindI))
	s.Board = boardFromRows("####.#####")
	r := kinds(KindO)

	for range 20 {
		s = Tick(s, r)
		if s.RowsCleared > 0 {
			break
		}
	}

	assert.Equal(t, 1, s.RowsCleared)
	assert.Equal(t, 10, s.Score)
	assert.Equal(t, 1, s.Level)

	// The three I cells above the cleared row drop by one.
	occ := s.Board.Occupancy()
	for y := 17; y <= 19; y++ {
		assert.Equal(t, uint8(1), occ[y][4])
	}
	assert.Equal(t, uint8(0), occ[16][4])
	assert.Equal(t, uint8(0), occ[19][0], "the cleared row is gone")
	assertInSync(t, s.Board)
}

func TestTickMultipleRowsOneLevel(t *testing.T) {
	s := withBlock(KindI, Canonical(KindI).Translate(0, 16))
	s.Settled = true
	s.Level = 3
	s.Board = boardFromRows(
		"####.#####",
		"####.#####",
		"####.#####",
		"####.#####",
	)

	s = Tick(s, kinds(KindO))
	assert.Equal(t, 4, s.RowsCleared)
	assert.Equal(t, 40, s.Score)
	assert.Equal(t, 4, s.Level, "level rises once per clearing tick")
	assert.Equal(t, EmptyBoard(), s.Board)
}

func TestTickRightAtEdgeKeepsFalling(t *testing.T) {
	s := withBlock(KindI, Canonical(KindI).Translate(Width-1-4, 0))
	s.Direction = DirRight
	require.Equal(t, Width-1, s.Block[0].X)

	naive := s.Block.Translate(1, 1)
	assert.True(t, OutOfBounds(naive))

	next := Tick(s, kinds(KindO))
	for i, p := range next.Block {
		assert.Equal(t, s.Block[i].X, p.X, "horizontal shift must be reverted")
		assert.Equal(t, s.Block[i].Y+1, p.Y, "vertical fall still applies")
	}
	assert.Equal(t, DirNone, next.Direction)
}

func TestTickLeftMovesOneColumn(t *testing.T) {
	s := withBlock(KindT, Canonical(KindT))
	s.Direction = DirLeft

	next := Tick(s, kinds(KindO))
	assert.Equal(t, Canonical(KindT).Translate(-1, 1), next.Block)
}

func TestTickBlockedSidewaysSettlesInPlace(t *testing.T) {
	s := withBlock(KindO, DefaultShape(Point{0, 5}))
	s.Board = EmptyBoard().Fill(Point{0, 7}, Point{1, 7})
	s.Direction = DirRight

	next := Tick(s, kinds(KindO))
	assert.True(t, next.Settled)
	assert.Equal(t, s.Block, next.Block)
}

func TestTickSoftDrop(t *testing.T) {
	s := withBlock(KindI, Canonical(KindI))
	s.Direction = DirDown
	next := Tick(s, kinds(KindO))
	assert.Equal(t, Canonical(KindI).Translate(0, 2), next.Block)
	assert.Equal(t, DirNone, next.Direction)

	// One row above the floor the soft drop only moves one row.
	s = withBlock(KindI, Canonical(KindI).Translate(0, 15))
	s.Direction = DirDown
	next = Tick(s, kinds(KindO))
	assert.Equal(t, Canonical(KindI).Translate(0, 16), next.Block)
}

func TestTickGameOverWhenTopRowFilled(t *testing.T) {
	s := withBlock(KindO, DefaultShape(Point{0, 0}))
	s.Settled = true
	s.Score = 70
	s.HighScore = 40

	next := Tick(s, kinds(KindO))
	assert.True(t, next.Terminated)
	assert.Equal(t, 70, next.HighScore)
	assert.Equal(t, 70, next.Score)
	assert.True(t, next.Board.Occupied(0, 0))
	assert.Equal(t, s.Block, next.Block)
}

func TestTickGameOverWhenSpawnBlocked(t *testing.T) {
	s := withBlock(KindO, DefaultShape(Point{0, 18}))
	s.Settled = true
	s.Board = EmptyBoard().Fill(Point{4, 1})
	s.Score = 10
	s.HighScore = 90

	next := Tick(s, kinds(KindO))
	assert.False(t, next.Board.TopRowOccupied())
	assert.True(t, next.Terminated)
	assert.Equal(t, 90, next.HighScore, "high score never decreases")
}

func TestTickNeverMutatesInput(t *testing.T) {
	s := withBlock(KindI, Canonical(KindI).Translate(0, 16))
	s.Settled = true
	s.Board = boardFromRows("####.#####")
	snapshot := s

	_ = Tick(s, kinds(KindS))
	assert.Equal(t, snapshot, s)
}
