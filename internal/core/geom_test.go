package core

import "testing"

func TestRectContainsScreenEdges(t *testing.T) {
	// A 40x22 screen as returned by Screen.Bounds.
	r := NewScreen(40, 22).Bounds()

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"origin", 0, 0, true},
		{"last column", 39, 10, true},
		{"last row", 10, 21, true},
		{"bottom-right cell", 39, 21, true},
		{"one past right", 40, 0, false},
		{"one past bottom", 0, 22, false},
		{"negative x", -1, 5, false},
		{"negative y", 5, -1, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.want {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.want)
			}
		})
	}
}

func TestRectOffsetEdges(t *testing.T) {
	// A playfield frame drawn away from the origin.
	board := NewRect(3, 1, 22, 22)

	if board.Right() != 25 || board.Bottom() != 23 {
		t.Errorf("edges = (%d, %d), expected (25, 23)", board.Right(), board.Bottom())
	}
	if board.Contains(2, 5) || !board.Contains(3, 5) || board.Contains(25, 5) {
		t.Error("Contains should include the left edge and exclude the right edge")
	}
}

func TestRectCenter(t *testing.T) {
	tests := []struct {
		r      Rect
		cx, cy int
	}{
		{NewRect(0, 0, 22, 22), 11, 11},
		{NewRect(3, 1, 22, 22), 14, 12},
		{NewRect(0, 0, 5, 3), 2, 1}, // odd sizes round down
		{NewRect(0, 0, 0, 0), 0, 0},
	}

	for _, tc := range tests {
		cx, cy := tc.r.Center()
		if cx != tc.cx || cy != tc.cy {
			t.Errorf("%+v.Center() = (%d, %d), expected (%d, %d)", tc.r, cx, cy, tc.cx, tc.cy)
		}
	}
}

func TestClamp(t *testing.T) {
	// Heights left for a table after chrome, kept within [3, 10].
	tests := []struct {
		val, want int
	}{
		{-4, 3},
		{3, 3},
		{7, 7},
		{10, 10},
		{42, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, 3, 10); got != tc.want {
			t.Errorf("Clamp(%d, 3, 10) = %d, expected %d", tc.val, got, tc.want)
		}
	}
}
