package diagonal

import "github.com/pixelvec/depixel/pixgraph"

type corners struct{ p00, p10, p01, p11 pixgraph.Coord }

func blockCorners(base pixgraph.Coord) corners {
	return corners{
		p00: base,
		p10: pixgraph.Coord{X: base.X + 1, Y: base.Y},
		p01: pixgraph.Coord{X: base.X, Y: base.Y + 1},
		p11: pixgraph.Coord{X: base.X + 1, Y: base.Y + 1},
	}
}

// Resolve walks every 2x2 pixel block of g and resolves diagonal
// ambiguities according to policy, mutating g in place.
//
// Fully-connected blocks (two diagonals, six internal edges) always have
// both diagonals dropped, regardless of policy. Checkerboard blocks (two
// diagonals, two internal edges) are resolved by the chosen policy. Any
// other combination of diagonal/edge counts means the similarity graph
// violates the expected 2x2-block invariant (typically because match is
// not reflexive/symmetric) and Resolve returns pixgraph.ErrGraphInvariant.
func Resolve[V any](g *pixgraph.Graph[V], policy Policy) error {
	var pairs []pair

	for _, block := range g.WalkBlocks(2) {
		c := blockCorners(block[0])
		edgeCount := 0
		for _, e := range [...][2]pixgraph.Coord{
			{c.p00, c.p10}, {c.p00, c.p01}, {c.p10, c.p11}, {c.p01, c.p11},
			{c.p00, c.p11}, {c.p10, c.p01},
		} {
			if g.HasEdge(e[0], e[1]) {
				edgeCount++
			}
		}
		diag1 := g.HasEdge(c.p00, c.p11)
		diag2 := g.HasEdge(c.p10, c.p01)
		diagCount := 0
		if diag1 {
			diagCount++
		}
		if diag2 {
			diagCount++
		}

		switch {
		case diagCount <= 1:
			// Nothing to resolve.
		case diagCount == 2 && edgeCount == 6:
			g.RemoveEdge(c.p00, c.p11)
			g.RemoveEdge(c.p10, c.p01)
		case diagCount == 2 && edgeCount == 2:
			pairs = append(pairs, pair{e1: canonEdge(c.p00, c.p11), e2: canonEdge(c.p10, c.p01)})
		default:
			return pixgraph.ErrGraphInvariant
		}
	}

	switch policy {
	case Iterative:
		return resolveIterative(g, pairs)
	default:
		return resolveGreedy(g, pairs)
	}
}

// resolveGreedy scores every ambiguous pair once against the graph as it
// stands (with every other ambiguous diagonal still present), then drops
// the lower-scoring diagonal of each pair. Ties are broken by dropping e2,
// arbitrarily but consistently.
func resolveGreedy[V any](g *pixgraph.Graph[V], pairs []pair) error {
	drop := make([]edgeKey, 0, len(pairs))
	for _, p := range pairs {
		w1, _ := weightInterval(g, nil, p.e1.A, p.e1.B)
		w2, _ := weightInterval(g, nil, p.e2.A, p.e2.B)
		if w1 < w2 {
			drop = append(drop, p.e1)
		} else {
			drop = append(drop, p.e2)
		}
	}
	for _, ek := range drop {
		g.RemoveEdge(ek.A, ek.B)
	}
	return nil
}

// resolveIterative repeatedly passes over the still-ambiguous pairs,
// computing (min,max) weight intervals that treat every other ambiguous
// diagonal as a "maybe present" unknown. A pair resolves once the
// intervals make a winner unambiguous; a pass that resolves nothing means
// the heuristics cannot make progress.
func resolveIterative[V any](g *pixgraph.Graph[V], pairs []pair) error {
	ambiguous := make(map[edgeKey]bool, len(pairs)*2)
	for _, p := range pairs {
		ambiguous[p.e1] = true
		ambiguous[p.e2] = true
	}

	remaining := pairs
	for len(remaining) > 0 {
		var next []pair
		var toDrop, toClear []edgeKey
		progressed := false

		for _, p := range remaining {
			lo1, hi1 := weightInterval(g, ambiguous, p.e1.A, p.e1.B)
			lo2, hi2 := weightInterval(g, ambiguous, p.e2.A, p.e2.B)
			switch {
			case hi1 <= lo2 && hi2 <= lo1:
				toDrop = append(toDrop, p.e1, p.e2)
				progressed = true
			case hi1 <= lo2:
				toDrop = append(toDrop, p.e1)
				toClear = append(toClear, p.e2)
				progressed = true
			case hi2 <= lo1:
				toDrop = append(toDrop, p.e2)
				toClear = append(toClear, p.e1)
				progressed = true
			default:
				next = append(next, p)
			}
		}

		if !progressed {
			return ErrUnresolvable
		}
		for _, ek := range toDrop {
			g.RemoveEdge(ek.A, ek.B)
			delete(ambiguous, ek)
		}
		for _, ek := range toClear {
			delete(ambiguous, ek)
		}
		remaining = next
	}
	return nil
}
