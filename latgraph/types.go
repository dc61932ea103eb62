package latgraph

import "github.com/pixelvec/depixel/latcoord"

// Graph is the lattice/grid graph over corner-lattice coordinates.
type Graph struct {
	Width, Height int // pixel image dimensions; lattice spans (Width+1)x(Height+1) integer nodes initially
	adj           map[latcoord.Coord]map[latcoord.Coord]struct{}
}

// HasNode reports whether c is present in the lattice.
func (g *Graph) HasNode(c latcoord.Coord) bool {
	_, ok := g.adj[c]
	return ok
}

// HasEdge reports whether a and b are connected.
func (g *Graph) HasEdge(a, b latcoord.Coord) bool {
	nbrs, ok := g.adj[a]
	if !ok {
		return false
	}
	_, ok = nbrs[b]
	return ok
}

// Degree returns the number of neighbors of c, or 0 if c is absent.
func (g *Graph) Degree(c latcoord.Coord) int {
	return len(g.adj[c])
}

// Neighbors returns the neighbors of c in unspecified order.
func (g *Graph) Neighbors(c latcoord.Coord) []latcoord.Coord {
	nbrs := g.adj[c]
	out := make([]latcoord.Coord, 0, len(nbrs))
	for n := range nbrs {
		out = append(out, n)
	}
	return out
}

// AddNode ensures c exists in the lattice (with no edges, if new).
func (g *Graph) AddNode(c latcoord.Coord) {
	if g.adj[c] == nil {
		g.adj[c] = make(map[latcoord.Coord]struct{})
	}
}

// AddEdge links a and b symmetrically, creating either endpoint if absent.
func (g *Graph) AddEdge(a, b latcoord.Coord) {
	g.AddNode(a)
	g.AddNode(b)
	g.adj[a][b] = struct{}{}
	g.adj[b][a] = struct{}{}
}

// RemoveEdge unlinks a and b if connected; a no-op otherwise.
func (g *Graph) RemoveEdge(a, b latcoord.Coord) {
	delete(g.adj[a], b)
	delete(g.adj[b], a)
}

// RemoveNode deletes c and every edge touching it.
func (g *Graph) RemoveNode(c latcoord.Coord) {
	for n := range g.adj[c] {
		delete(g.adj[n], c)
	}
	delete(g.adj, c)
}

// Clone returns an independent copy of the lattice, used by package shape
// to build the "outlines" working copy before removing interior edges.
func (g *Graph) Clone() *Graph {
	clone := &Graph{
		Width:  g.Width,
		Height: g.Height,
		adj:    make(map[latcoord.Coord]map[latcoord.Coord]struct{}, len(g.adj)),
	}
	for n, nbrs := range g.adj {
		cp := make(map[latcoord.Coord]struct{}, len(nbrs))
		for nbr := range nbrs {
			cp[nbr] = struct{}{}
		}
		clone.adj[n] = cp
	}
	return clone
}

// Nodes returns every node currently in the lattice, in unspecified order.
func (g *Graph) Nodes() []latcoord.Coord {
	out := make([]latcoord.Coord, 0, len(g.adj))
	for n := range g.adj {
		out = append(out, n)
	}
	return out
}
