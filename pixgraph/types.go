package pixgraph

import (
	"fmt"

	"github.com/pixelvec/depixel/latcoord"
)

// Coord is a pixel coordinate: x increases rightward, y increases downward.
type Coord struct {
	X, Y int
}

// String renders the coordinate as "(x, y)" for error messages.
func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// MatchFunc reports whether two pixel values are similar enough to be
// connected in the similarity graph. It must be reflexive and symmetric;
// the builder never assumes transitivity.
type MatchFunc[V any] func(a, b V) bool

// Graph is the similarity graph over pixel coordinates: a struct-of-arrays
// representation rather than a generic attributed graph.
//
// Values holds each pixel's value. Corners holds the cyclic set of
// lattice-corner nodes bounding each pixel's cell, mutated by package
// latgraph during deformation. adj is the adjacency map; an edge is
// present in both directions and carries a single shared Diagonal flag.
type Graph[V any] struct {
	Width, Height int
	Values        map[Coord]V
	Corners       map[Coord]map[latcoord.Coord]struct{}
	adj           map[Coord]map[Coord]bool // neighbor -> diagonal flag
}

// newGraph allocates an empty Graph sized for width x height pixels.
func newGraph[V any](width, height int) *Graph[V] {
	return &Graph[V]{
		Width:   width,
		Height:  height,
		Values:  make(map[Coord]V, width*height),
		Corners: make(map[Coord]map[latcoord.Coord]struct{}, width*height),
		adj:     make(map[Coord]map[Coord]bool, width*height),
	}
}

// InBounds reports whether c lies within [0,Width) x [0,Height).
func (g *Graph[V]) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// HasEdge reports whether p and q are connected, regardless of order.
func (g *Graph[V]) HasEdge(p, q Coord) bool {
	nbrs, ok := g.adj[p]
	if !ok {
		return false
	}
	_, ok = nbrs[q]
	return ok
}

// IsDiagonal reports whether the edge between p and q (which must exist)
// is a diagonal edge.
func (g *Graph[V]) IsDiagonal(p, q Coord) bool {
	return g.adj[p][q]
}

// Degree returns the number of neighbors of p.
func (g *Graph[V]) Degree(p Coord) int {
	return len(g.adj[p])
}

// Neighbors returns the neighbor coordinates of p in unspecified order.
func (g *Graph[V]) Neighbors(p Coord) []Coord {
	nbrs := g.adj[p]
	out := make([]Coord, 0, len(nbrs))
	for n := range nbrs {
		out = append(out, n)
	}
	return out
}

// addEdge links p and q symmetrically, tagging the edge diagonal iff both
// coordinates differ from each other on both axes.
func (g *Graph[V]) addEdge(p, q Coord) {
	diagonal := p.X != q.X && p.Y != q.Y
	if g.adj[p] == nil {
		g.adj[p] = make(map[Coord]bool)
	}
	if g.adj[q] == nil {
		g.adj[q] = make(map[Coord]bool)
	}
	g.adj[p][q] = diagonal
	g.adj[q][p] = diagonal
}

// RemoveEdge removes the edge between p and q if present; a no-op
// otherwise.
func (g *Graph[V]) RemoveEdge(p, q Coord) {
	delete(g.adj[p], q)
	delete(g.adj[q], p)
}

// Pixels returns every pixel coordinate in row-major order, giving callers
// a stable traversal.
func (g *Graph[V]) Pixels() []Coord {
	out := make([]Coord, 0, g.Width*g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			out = append(out, Coord{X: x, Y: y})
		}
	}
	return out
}
