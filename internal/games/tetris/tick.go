package tetris

// Tick advances the game by one step. Terminated and paused games are
// returned unchanged.
func Tick(s State, r Randomizer) State {
	if s.Terminated || s.Paused {
		return s
	}
	if s.Settled {
		return settle(s, r)
	}
	return fall(s)
}

// settle stamps the landed piece, checks for game over, clears rows and
// brings in the queued piece. A settle that does not end the game draws
// twice from r: the spawn candidate, then the new queued piece.
func settle(s State, r Randomizer) State {
	s.Board = s.Board.Stamp(s.Block)

	_, candidate := RandomShape(r)
	if Collides(candidate, s.Board) || s.Board.TopRowOccupied() {
		s.Terminated = true
		s.HighScore = max(s.HighScore, s.Score)
		return s
	}

	board, cleared := s.Board.ClearFullRows()
	s.Board = board
	s.Score += PointsPerRow * cleared
	s.RowsCleared += cleared
	if cleared > 0 {
		// One level per clearing tick, however many rows went.
		s.Level++
	}

	s.Block, s.Kind = s.Next, s.NextKind
	s.NextKind, s.Next = RandomShape(r)
	s.Settled = false
	s.Direction = DirNone
	return s
}

// fall moves the piece one row down, applying the queued direction.
// A sideways move that would leave the board is dropped but the fall still
// happens. If the piece cannot fall it is marked settled where it is.
func fall(s State) State {
	candidate := s.Block.Translate(s.Direction.dx(), 1)
	if OutOfBounds(candidate) {
		candidate = s.Block.Translate(0, 1)
	}
	if Collides(candidate, s.Board) {
		s.Settled = true
		return s
	}

	if s.Direction == DirDown {
		if drop := candidate.Translate(0, 1); !Collides(drop, s.Board) {
			candidate = drop
		}
	}

	s.Block = candidate
	s.Direction = DirNone
	return s
}
