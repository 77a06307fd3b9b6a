package tetris

import "strings"

// seqRand replays a fixed sequence of draws.
type seqRand struct {
	vals []int
	n    int
}

func (r *seqRand) Intn(n int) int {
	v := r.vals[r.n%len(r.vals)]
	r.n++
	return v % n
}

// kinds returns a randomizer that yields the given kinds in order, repeating.
func kinds(ks ...Kind) *seqRand {
	vals := make([]int, len(ks))
	for i, k := range ks {
		vals[i] = int(k)
	}
	return &seqRand{vals: vals}
}

// boardFromRows builds a board from rows drawn with '#' for filled cells.
// The last row given is the bottom row of the board.
func boardFromRows(rows ...string) Board {
	b := EmptyBoard()
	top := Height - len(rows)
	for i, row := range rows {
		for x, ch := range strings.TrimSpace(row) {
			if ch == '#' {
				b = b.Fill(Point{x, top + i})
			}
		}
	}
	return b
}

// withBlock places a piece of kind k on the baseline state.
func withBlock(k Kind, s Shape) State {
	st := Baseline()
	st.Kind = k
	st.Block = s
	return st
}
