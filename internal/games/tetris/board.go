package tetris

// Board dimensions and scoring.
const (
	Width        = 10
	Height       = 20
	PointsPerRow = 10
)

// CellState is the render-facing view of a board cell.
type CellState uint8

const (
	CellEmpty CellState = iota
	CellFilled
)

// Board holds the settled geometry. The occupancy grid and the cell-state
// grid are only written together, so occupancy[y][x] == 1 exactly when
// cells[y][x] == CellFilled.
//
// Board is a value type: every method that changes it returns a new Board.
type Board struct {
	occupancy [Height][Width]uint8
	cells     [Height][Width]CellState
}

// EmptyBoard returns a board with every cell free.
func EmptyBoard() Board {
	return Board{}
}

func inside(p Point) bool {
	return p.X >= 0 && p.X < Width && p.Y >= 0 && p.Y < Height
}

// Fill marks the given points as occupied. Points off the board are skipped.
func (b Board) Fill(points ...Point) Board {
	for _, p := range points {
		if !inside(p) {
			continue
		}
		b.occupancy[p.Y][p.X] = 1
		b.cells[p.Y][p.X] = CellFilled
	}
	return b
}

// Stamp merges a settled shape into the board.
func (b Board) Stamp(s Shape) Board {
	return b.Fill(s[:]...)
}

// Occupied reports whether settled geometry covers (x, y).
// Cells off the board are never occupied.
func (b Board) Occupied(x, y int) bool {
	if !inside(Point{x, y}) {
		return false
	}
	return b.occupancy[y][x] == 1
}

// Cell returns the cell state at (x, y), CellEmpty off the board.
func (b Board) Cell(x, y int) CellState {
	if !inside(Point{x, y}) {
		return CellEmpty
	}
	return b.cells[y][x]
}

// Occupancy returns a copy of the 0/1 occupancy grid.
func (b Board) Occupancy() [Height][Width]uint8 {
	return b.occupancy
}

// Cells returns a copy of the cell-state grid.
func (b Board) Cells() [Height][Width]CellState {
	return b.cells
}

// TopRowOccupied reports whether any cell in row 0 is taken.
func (b Board) TopRowOccupied() bool {
	for x := range Width {
		if b.occupancy[0][x] == 1 {
			return true
		}
	}
	return false
}

func (b Board) rowFull(y int) bool {
	for x := range Width {
		if b.occupancy[y][x] == 0 {
			return false
		}
	}
	return true
}

// ClearFullRows removes every full row, shifts the rows above it down and
// pads the top with empty rows. Returns the new board and the number of
// rows removed. The order of the remaining rows is preserved.
func (b Board) ClearFullRows() (Board, int) {
	var out Board
	cleared := 0
	dst := Height - 1
	for y := Height - 1; y >= 0; y-- {
		if b.rowFull(y) {
			cleared++
			continue
		}
		out.occupancy[dst] = b.occupancy[y]
		out.cells[dst] = b.cells[y]
		dst--
	}
	return out, cleared
}
