package diagonal

import "github.com/pixelvec/depixel/pixgraph"

// weightInterval sums the curve, sparsity, and island weights for the
// diagonal edge a-b, returning the (min,max) score it could take across
// every "present/absent" world for the ambiguous edges it touches. When
// ambiguous is nil (or empty), every edge is unconditionally present and
// the interval degenerates to a single point (lo == hi) — this is exactly
// the Greedy policy's scoring.
func weightInterval[V any](g *pixgraph.Graph[V], ambiguous map[edgeKey]bool, a, b pixgraph.Coord) (lo, hi int) {
	cLo, cHi := curveWeightRange(g, ambiguous, a, b)
	sLo, sHi := sparseWeightRange(g, ambiguous, a, b)
	iLo, iHi := islandWeightRange(g, a, b)
	return cLo + sLo + iLo, cHi + sHi + iHi
}

// curveWeightRange walks the valence-2 chain reachable from both endpoints
// of edge a-b, counting the edges it passes through. Long thin
// single-pixel curves score high.
func curveWeightRange[V any](g *pixgraph.Graph[V], ambiguous map[edgeKey]bool, a, b pixgraph.Coord) (lo, hi int) {
	start := canonEdge(a, b)
	seen := map[edgeKey]bool{start: true}
	results := curveWalk(g, ambiguous, []pixgraph.Coord{a, b}, seen, 0, len(ambiguous))
	return minMax(results)
}

func curveWalk[V any](g *pixgraph.Graph[V], ambiguous map[edgeKey]bool, nodes []pixgraph.Coord, seen map[edgeKey]bool, depth, maxDepth int) []int {
	if len(nodes) == 0 {
		return []int{len(seen)}
	}
	node := nodes[len(nodes)-1]
	rest := nodes[:len(nodes)-1]
	nbrs := g.Neighbors(node)
	if len(nbrs) != 2 {
		// node is not part of a curve; abandon this branch of the walk.
		return curveWalk(g, ambiguous, rest, seen, depth, maxDepth)
	}

	var branchResults []int
	newSeen := cloneEdges(seen)
	nextNodes := append([]pixgraph.Coord{}, rest...)
	for _, nb := range nbrs {
		ek := canonEdge(node, nb)
		if newSeen[ek] {
			continue
		}
		if ambiguous[ek] && depth < maxDepth {
			branchResults = append(branchResults, curveWalk(g, ambiguous, rest, cloneEdges(seen), depth+1, maxDepth)...)
		}
		newSeen[ek] = true
		nextNodes = append(nextNodes, other(ek, node))
	}
	mainResults := curveWalk(g, ambiguous, nextNodes, newSeen, depth+1, maxDepth)
	return append(branchResults, mainResults...)
}

// sparseWeightRange counts nodes reachable from either endpoint of a-b
// while staying inside an 8x8 window anchored at (floor(minX)-3,
// floor(minY)-3); the sparsity weight is the negation of that count —
// sparser features matter more.
func sparseWeightRange[V any](g *pixgraph.Graph[V], ambiguous map[edgeKey]bool, a, b pixgraph.Coord) (lo, hi int) {
	minX, minY := a.X, a.Y
	if b.X < minX {
		minX = b.X
	}
	if b.Y < minY {
		minY = b.Y
	}
	anchorX, anchorY := minX-3, minY-3
	inWindow := func(c pixgraph.Coord) bool {
		return c.X >= anchorX && c.X < anchorX+8 && c.Y >= anchorY && c.Y < anchorY+8
	}

	seen := map[pixgraph.Coord]bool{a: true, b: true}
	results := sparseWalk(g, ambiguous, []pixgraph.Coord{a, b}, seen, inWindow, 0, len(ambiguous))
	lo, hi = minMax(results)
	return -hi, -lo
}

func sparseWalk[V any](g *pixgraph.Graph[V], ambiguous map[edgeKey]bool, nodes []pixgraph.Coord, seen map[pixgraph.Coord]bool, inWindow func(pixgraph.Coord) bool, depth, maxDepth int) []int {
	if len(nodes) == 0 {
		return []int{len(seen)}
	}
	node := nodes[len(nodes)-1]
	rest := nodes[:len(nodes)-1]

	var branchResults []int
	newSeen := cloneNodes(seen)
	nextNodes := append([]pixgraph.Coord{}, rest...)
	for _, n := range g.Neighbors(node) {
		if newSeen[n] {
			continue
		}
		ek := canonEdge(node, n)
		if ambiguous[ek] && depth < maxDepth {
			branchResults = append(branchResults, sparseWalk(g, ambiguous, rest, cloneNodes(seen), inWindow, depth+1, maxDepth)...)
		}
		if inWindow(n) {
			newSeen[n] = true
			nextNodes = append(nextNodes, n)
		}
	}
	mainResults := sparseWalk(g, ambiguous, nextNodes, newSeen, inWindow, depth+1, maxDepth)
	return append(branchResults, mainResults...)
}

// islandWeightRange scores 5 if either endpoint currently has degree 1
// (an isolated pixel connected only through this diagonal), else 0. It
// does not depend on ambiguity since it reads the graph's present
// degree, not a hypothetical world.
func islandWeightRange[V any](g *pixgraph.Graph[V], a, b pixgraph.Coord) (lo, hi int) {
	if g.Degree(a) == 1 || g.Degree(b) == 1 {
		return 5, 5
	}
	return 0, 0
}

func minMax(vs []int) (lo, hi int) {
	lo, hi = vs[0], vs[0]
	for _, v := range vs[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

func cloneEdges(m map[edgeKey]bool) map[edgeKey]bool {
	out := make(map[edgeKey]bool, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func cloneNodes(m map[pixgraph.Coord]bool) map[pixgraph.Coord]bool {
	out := make(map[pixgraph.Coord]bool, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
