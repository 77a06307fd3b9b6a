package tetris

// Collides reports whether any point of s is at or below the floor, or
// overlaps settled geometry. Points above the top edge do not collide.
func Collides(s Shape, b Board) bool {
	for _, p := range s {
		if p.Y >= Height {
			return true
		}
		if b.Occupied(p.X, p.Y) {
			return true
		}
	}
	return false
}

// OutOfBounds reports whether any point of s is left of column 0 or right
// of the last column. Vertical bounds are handled by Collides.
func OutOfBounds(s Shape) bool {
	for _, p := range s {
		if p.X < 0 || p.X >= Width {
			return true
		}
	}
	return false
}
