package tetris

import (
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Layout of the playfield on screen. Each board cell is two columns wide so
// blocks look square in a terminal.
const (
	cellW    = 2
	boardW   = Width*cellW + 2
	boardH   = Height + 2
	panelGap = 2
	panelW   = 14
	previewW = 4*cellW + 2
	previewH = 4 + 2

	// MinScreenW and MinScreenH are the smallest screen Render can draw on.
	MinScreenW = boardW + panelGap + panelW
	MinScreenH = boardH
)

// Theme assigns colors to the parts of the playfield.
type Theme struct {
	Pieces  [len(Kinds)]core.Color
	Settled core.Color
	Frame   core.Color
	Text    core.Color
	Accent  core.Color

	// Key names shown in the overlays.
	PauseKey   string
	RestartKey string
}

// DefaultTheme returns the standard tetromino colors.
func DefaultTheme() Theme {
	var t Theme
	t.Pieces[KindI] = core.ColorCyan
	t.Pieces[KindO] = core.ColorYellow
	t.Pieces[KindT] = core.ColorMagenta
	t.Pieces[KindS] = core.ColorGreen
	t.Pieces[KindZ] = core.ColorRed
	t.Pieces[KindJ] = core.ColorBlue
	t.Pieces[KindL] = core.ColorOrange
	t.Settled = core.ColorGray
	t.Frame = core.ColorWhite
	t.Text = core.ColorDefault
	t.Accent = core.ColorBrightYellow
	t.PauseKey = "p"
	t.RestartKey = "r"
	return t
}

// PieceColor returns the color for kind k.
func (t Theme) PieceColor(k Kind) core.Color {
	if int(k) >= len(t.Pieces) {
		return t.Text
	}
	return t.Pieces[k]
}

// Render draws s onto dst: the board with settled cells and the falling
// piece, a side panel with score and the next piece, and an overlay when
// the game is paused or over.
func Render(s State, dst *core.Screen, theme Theme) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		full := dst.Bounds()
		_, cy := full.Center()
		dst.DrawTextCentered(full, cy, "Window too small", theme.Text)
		return
	}

	ox := (dst.Width() - MinScreenW) / 2
	oy := (dst.Height() - MinScreenH) / 2
	board := core.NewRect(ox, oy, boardW, boardH)

	dst.DrawBox(board, theme.Frame)
	renderBoard(s.Board, dst, board, theme)
	renderShape(s.Block, theme.PieceColor(s.Kind), dst, board)
	renderPanel(s, dst, board.Right()+panelGap, oy, theme)

	switch {
	case s.Terminated:
		renderOverlay(dst, board, theme, "GAME OVER", keyHint(theme.RestartKey, "restart"))
	case s.Paused:
		renderOverlay(dst, board, theme, "PAUSED", keyHint(theme.PauseKey, "resume"))
	}
}

// cellOrigin maps a board cell to the screen column/row of its left half.
func cellOrigin(board core.Rect, p Point) (int, int) {
	return board.X + 1 + p.X*cellW, board.Y + 1 + p.Y
}

func renderBoard(b Board, dst *core.Screen, board core.Rect, theme Theme) {
	cells := b.Cells()
	for y := range Height {
		for x := range Width {
			sx, sy := cellOrigin(board, Point{x, y})
			if cells[y][x] == CellFilled {
				dst.SetCell(sx, sy, '█', theme.Settled)
				dst.SetCell(sx+1, sy, '█', theme.Settled)
				continue
			}
			dst.SetCell(sx+1, sy, '·', core.ColorGray)
		}
	}
}

func renderShape(s Shape, c core.Color, dst *core.Screen, board core.Rect) {
	for _, p := range s {
		// Rotation can push points above the top edge; they are not drawn.
		if !inside(p) {
			continue
		}
		sx, sy := cellOrigin(board, p)
		dst.SetCell(sx, sy, '█', c)
		dst.SetCell(sx+1, sy, '█', c)
	}
}

func renderPanel(s State, dst *core.Screen, x, y int, theme Theme) {
	stats := []struct {
		label string
		value int
	}{
		{"SCORE", s.Score},
		{"HIGH", s.HighScore},
		{"LEVEL", s.Level},
		{"ROWS", s.RowsCleared},
	}
	for i, st := range stats {
		dst.DrawTextColor(x, y+i*3, st.label, theme.Accent)
		dst.DrawTextColor(x, y+i*3+1, strconv.Itoa(st.value), theme.Text)
	}

	py := y + len(stats)*3
	dst.DrawTextColor(x, py, "NEXT", theme.Accent)
	preview := core.NewRect(x, py+1, previewW, previewH)
	dst.DrawBox(preview, theme.Frame)

	minP, _ := s.Next.Bounds()
	c := theme.PieceColor(s.NextKind)
	for _, p := range s.Next {
		sx := preview.X + 1 + (p.X-minP.X)*cellW
		sy := preview.Y + 1 + (p.Y - minP.Y)
		dst.SetCell(sx, sy, '█', c)
		dst.SetCell(sx+1, sy, '█', c)
	}
}

func keyHint(key, action string) string {
	if key == "" {
		return ""
	}
	return strings.ToUpper(key) + " to " + action
}

func renderOverlay(dst *core.Screen, board core.Rect, theme Theme, line1, line2 string) {
	w := max(len(line1), len(line2)) + 4
	cx, cy := board.Center()
	box := core.NewRect(cx-w/2, cy-2, w, 5)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box, theme.Accent)
	dst.DrawTextCentered(box, box.Y+1, line1, theme.Accent)
	dst.DrawTextCentered(box, box.Y+3, line2, theme.Text)
}
