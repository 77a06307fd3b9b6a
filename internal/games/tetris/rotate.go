package tetris

import "math"

// Rotate turns s by 90 degrees around its centroid. The square is returned
// unchanged. Each coordinate is rounded half up on its own, so repeated
// rotation can drift by a cell; callers must not assume four rotations
// return the original layout.
func Rotate(s Shape, k Kind) Shape {
	if k == KindO {
		return s
	}

	var cx, cy float64
	for _, p := range s {
		cx += float64(p.X)
		cy += float64(p.Y)
	}
	cx /= float64(len(s))
	cy /= float64(len(s))

	var out Shape
	for i, p := range s {
		x := cx + (float64(p.Y) - cy)
		y := cy - (float64(p.X) - cx)
		out[i] = Point{X: roundHalfUp(x), Y: roundHalfUp(y)}
	}
	return out
}

func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
