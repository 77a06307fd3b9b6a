package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollides(t *testing.T) {
	board := EmptyBoard().Fill(Point{5, 10})

	tests := []struct {
		name  string
		shape Shape
		want  bool
	}{
		{"free cells", Canonical(KindO), false},
		{"resting on floor", DefaultShape(Point{0, Height - 2}), false},
		{"past the floor", DefaultShape(Point{0, Height - 1}), true},
		{"overlaps settled cell", DefaultShape(Point{4, 9}), true},
		{"next to settled cell", DefaultShape(Point{6, 9}), false},
		{"above the top", DefaultShape(Point{0, -2}), false},
		{"partly above the top", DefaultShape(Point{0, -1}), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Collides(tc.shape, board))
		})
	}
}

func TestOutOfBounds(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
		want  bool
	}{
		{"spawn", Canonical(KindI), false},
		{"left edge", DefaultShape(Point{0, 5}), false},
		{"right edge", DefaultShape(Point{Width - 2, 5}), false},
		{"past left", DefaultShape(Point{-1, 5}), true},
		{"past right", DefaultShape(Point{Width - 1, 5}), true},
		{"vertical is ignored", DefaultShape(Point{3, Height + 4}), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, OutOfBounds(tc.shape))
		})
	}
}

func TestRotateSquareIsIdentity(t *testing.T) {
	shapes := []Shape{
		Canonical(KindO),
		DefaultShape(Point{0, 18}),
		Canonical(KindT),
		{{1, 1}, {7, 3}, {2, 9}, {0, 0}},
	}
	for _, s := range shapes {
		assert.Equal(t, s, Rotate(s, KindO))
	}
}

func TestRotatePinnedCoordinates(t *testing.T) {
	// Rounding is per coordinate, so the I piece walks one column right
	// after two turns instead of returning to where it started.
	first := Rotate(Canonical(KindI), KindI)
	assert.Equal(t, Shape{{3, 2}, {4, 2}, {5, 2}, {6, 2}}, first)

	second := Rotate(first, KindI)
	assert.Equal(t, Shape{{5, 4}, {5, 3}, {5, 2}, {5, 1}}, second)

	// The T can poke above the top edge when turned at spawn.
	assert.Equal(t, Shape{{4, 1}, {4, 0}, {4, -1}, {5, 0}}, Rotate(Canonical(KindT), KindT))
}
