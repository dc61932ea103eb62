package shape

import (
	"github.com/pixelvec/depixel/latcoord"
	"github.com/pixelvec/depixel/latgraph"
	"github.com/pixelvec/depixel/pixgraph"
)

// Extract computes the connected components of pix, removes each
// component's interior lattice edges from a working copy of lat, and
// walks the remaining boundary loops into canonicalized Paths shared via
// cache.
func Extract[V any](pix *pixgraph.Graph[V], lat *latgraph.Graph, cache *PathCache) []*Shape[V] {
	components := pix.ConnectedComponents()

	outlines := lat.Clone()
	removeInteriorEdges(pix, outlines)
	pruneIsolated(outlines)

	shapes := make([]*Shape[V], 0, len(components))
	for _, comp := range components {
		shapes = append(shapes, buildShape(pix, outlines, cache, comp))
	}
	return shapes
}

// removeInteriorEdges disconnects, for every kept similarity edge (p,q),
// the two lattice nodes shared by corners(p) and corners(q): the cell
// edge directly between two same-shape pixels is never part of a
// boundary loop.
func removeInteriorEdges[V any](pix *pixgraph.Graph[V], outlines *latgraph.Graph) {
	for _, p := range pix.Pixels() {
		for _, q := range pix.Neighbors(p) {
			shared := intersect(pix.Corners[p], pix.Corners[q])
			if len(shared) == 2 {
				outlines.RemoveEdge(shared[0], shared[1])
			}
		}
	}
}

// pruneIsolated drops every node left with no neighbors after interior
// edges are removed.
func pruneIsolated(outlines *latgraph.Graph) {
	for _, n := range outlines.Nodes() {
		if outlines.Degree(n) == 0 {
			outlines.RemoveNode(n)
		}
	}
}

// intersect returns the elements common to a and b.
func intersect(a, b map[latcoord.Coord]struct{}) []latcoord.Coord {
	var out []latcoord.Coord
	for c := range a {
		if _, ok := b[c]; ok {
			out = append(out, c)
		}
	}
	return out
}

// buildShape groups comp's pixels into a Shape, walking its boundary
// loops and classifying the one containing the shape's lexicographically
// smallest corner as outer.
func buildShape[V any](pix *pixgraph.Graph[V], outlines *latgraph.Graph, cache *PathCache, comp []pixgraph.Coord) *Shape[V] {
	corners := make(map[latcoord.Coord]struct{})
	for _, px := range comp {
		for c := range pix.Corners[px] {
			corners[c] = struct{}{}
		}
	}

	shapeMin := sortedCoords(corners)[0]
	loops := boundaryLoops(outlines, corners)

	s := &Shape[V]{Value: pix.Values[comp[0]], Pixels: comp}
	for _, nodes := range loops {
		path := cache.Get(nodes)
		if containsCoord(nodes, shapeMin) {
			s.Outer = path
		} else {
			s.Inner = append(s.Inner, path)
		}
	}
	return s
}

func containsCoord(nodes []latcoord.Coord, target latcoord.Coord) bool {
	for _, n := range nodes {
		if n == target {
			return true
		}
	}
	return false
}
