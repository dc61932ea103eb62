package diagonal

import "github.com/pixelvec/depixel/pixgraph"

// Policy selects which heuristic drives ambiguous diagonal resolution.
type Policy int

const (
	// Greedy scores each ambiguous diagonal once against the graph as it
	// currently stands and keeps the higher scorer. It is the default.
	Greedy Policy = iota
	// Iterative tracks (min,max) weight intervals and resolves pairs only
	// once their intervals are unambiguous, repeating passes until none
	// remain or no progress is made.
	Iterative
)

// edgeKey canonicalizes an undirected edge for use as a map key, ordering
// endpoints lexicographically so (a,b) and (b,a) collide.
type edgeKey struct {
	A, B pixgraph.Coord
}

func canonEdge(a, b pixgraph.Coord) edgeKey {
	if less(a, b) {
		return edgeKey{A: a, B: b}
	}
	return edgeKey{A: b, B: a}
}

func less(a, b pixgraph.Coord) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	return a.Y < b.Y
}

func other(ek edgeKey, node pixgraph.Coord) pixgraph.Coord {
	if ek.A == node {
		return ek.B
	}
	return ek.A
}

// pair is one ambiguous checkerboard's two crossing diagonals.
type pair struct {
	e1, e2 edgeKey
}
