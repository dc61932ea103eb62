package pixgraph

import "github.com/pixelvec/depixel/latcoord"

// Equal is the default MatchFunc: plain equality. Use it when V is
// comparable and no custom equivalence is required.
func Equal[V comparable](a, b V) bool {
	return a == b
}

// offsets enumerates the four forward 8-neighborhood directions examined
// per pixel: east, south, and the two diagonals. Each undirected edge is
// therefore only proposed once, from its lexicographically-first
// endpoint.
var offsets = [4]Coord{
	{X: 1, Y: 0},
	{X: 0, Y: 1},
	{X: 1, Y: -1},
	{X: 1, Y: 1},
}

// Build constructs the similarity graph for a row-major, rectangular pixel
// array using match as the similarity predicate. match must be reflexive
// and symmetric; Build never assumes transitivity.
//
// Complexity: O(W*H) time and memory.
func Build[V any](pixels [][]V, match MatchFunc[V]) (*Graph[V], error) {
	if len(pixels) == 0 || len(pixels[0]) == 0 {
		return nil, ErrEmptyImage
	}
	height := len(pixels)
	width := len(pixels[0])
	for _, row := range pixels {
		if len(row) != width {
			return nil, ErrNonRectangular
		}
	}

	g := newGraph[V](width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := Coord{X: x, Y: y}
			g.Values[c] = pixels[y][x]
			g.Corners[c] = map[latcoord.Coord]struct{}{
				latcoord.FromInt(x, y):     {},
				latcoord.FromInt(x+1, y):   {},
				latcoord.FromInt(x, y+1):   {},
				latcoord.FromInt(x+1, y+1): {},
			}
		}
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			p := Coord{X: x, Y: y}
			for _, d := range offsets {
				q := Coord{X: x + d.X, Y: y + d.Y}
				if !g.InBounds(q) {
					continue
				}
				if match(g.Values[p], g.Values[q]) {
					g.addEdge(p, q)
				}
			}
		}
	}

	return g, nil
}
