// Package tetris implements the falling-block game as a pure state machine.
// Every transition takes a State value and returns a new one; nothing here
// touches the terminal, timers or global randomness.
package tetris

// Point is a cell coordinate on the board. Y grows downward.
type Point struct {
	X, Y int
}

// Shape is one falling piece. It is an array so copies never share points.
type Shape [4]Point

// Kind identifies a tetromino.
type Kind uint8

const (
	KindI Kind = iota
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL
)

// Kinds lists every tetromino in selection order.
var Kinds = [...]Kind{KindI, KindO, KindT, KindS, KindZ, KindJ, KindL}

// String returns the single-letter name of the kind.
func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindO:
		return "O"
	case KindT:
		return "T"
	case KindS:
		return "S"
	case KindZ:
		return "Z"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	default:
		return "?"
	}
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, bool) {
	for _, k := range Kinds {
		if k.String() == s {
			return k, true
		}
	}
	return 0, false
}

// Spawn layouts, anchored at the top center of the board.
var canonical = [...]Shape{
	KindI: {{4, 0}, {4, 1}, {4, 2}, {4, 3}},
	KindO: {{4, 0}, {5, 0}, {4, 1}, {5, 1}},
	KindT: {{3, 0}, {4, 0}, {5, 0}, {4, 1}},
	KindS: {{4, 0}, {5, 0}, {3, 1}, {4, 1}},
	KindZ: {{3, 0}, {4, 0}, {4, 1}, {5, 1}},
	KindJ: {{3, 0}, {3, 1}, {4, 1}, {5, 1}},
	KindL: {{5, 0}, {3, 1}, {4, 1}, {5, 1}},
}

// Canonical returns the spawn layout for k.
// Unknown kinds fall back to the square.
func Canonical(k Kind) Shape {
	if int(k) >= len(canonical) {
		return canonical[KindO]
	}
	return canonical[k]
}

// Randomizer is the source of randomness used for piece selection.
// *rand.Rand satisfies it.
type Randomizer interface {
	Intn(n int) int
}

// RandomShape picks a kind uniformly and returns it with its spawn layout.
func RandomShape(r Randomizer) (Kind, Shape) {
	k := Kinds[r.Intn(len(Kinds))]
	return k, Canonical(k)
}

// DefaultShape builds the 2x2 square with its top-left corner at origin.
func DefaultShape(origin Point) Shape {
	x, y := origin.X, origin.Y
	return Shape{{x, y}, {x + 1, y}, {x, y + 1}, {x + 1, y + 1}}
}

// Translate returns the shape moved by (dx, dy).
func (s Shape) Translate(dx, dy int) Shape {
	for i := range s {
		s[i].X += dx
		s[i].Y += dy
	}
	return s
}

// Bounds returns the top-left and bottom-right corners (inclusive) of the
// smallest box containing the shape.
func (s Shape) Bounds() (minP, maxP Point) {
	minP, maxP = s[0], s[0]
	for _, p := range s[1:] {
		minP.X = min(minP.X, p.X)
		minP.Y = min(minP.Y, p.Y)
		maxP.X = max(maxP.X, p.X)
		maxP.Y = max(maxP.Y, p.Y)
	}
	return minP, maxP
}
