package latgraph

import (
	"github.com/pixelvec/depixel/latcoord"
	"github.com/pixelvec/depixel/pixgraph"
)

// Deform bends the lattice around every similar-diagonal edge in pix so
// that a pixel's off-diagonal, dissimilar neighbors lose the diagonal's
// shared corner to the diagonal pair, then collapses valence-<=2 nodes.
// It mutates lat and the corner sets stored in pix.
//
// This walks every pixel and every diagonal neighbor of that pixel (so
// each diagonal edge is visited once from each endpoint); the two visits
// bend the two distinct lattice edges that meet at the diagonal's shared
// corner on a given off-pixel's boundary (one edge borders the "p" side,
// the other the "q" side), which is why a single corner ends up needing
// two independent bend operations converging on the same new point.
func Deform[V any](pix *pixgraph.Graph[V], lat *Graph) {
	for _, p := range pix.Pixels() {
		for _, q := range pix.Neighbors(p) {
			if !pix.IsDiagonal(p, q) {
				continue
			}
			deformPixel(pix, lat, p, q)
		}
	}
	collapse(lat)
	pruneCorners(pix, lat)
}

// deformPixel bends the two cell edges adjacent to p's diagonal neighbor
// q, one for each of q's off-diagonal pixels (r horizontally, s
// vertically), whenever that off-pixel is dissimilar to p.
func deformPixel[V any](pix *pixgraph.Graph[V], lat *Graph, p, q pixgraph.Coord) {
	dx := float64(q.X - p.X)
	dy := float64(q.Y - p.Y)
	sharedX, sharedY := maxInt(p.X, q.X), maxInt(p.Y, q.Y)
	shared := latcoord.FromInt(sharedX, sharedY)

	r := pixgraph.Coord{X: p.X + int(dx), Y: p.Y}
	if !pix.HasEdge(p, r) {
		pn := shared.Offset(0, -dy)
		mpn := shared.Offset(0, -0.5*dy)
		npn := shared.Offset(0.25*dx, -0.25*dy)
		bend(lat, shared, pn, mpn, npn)
		moveCorner(pix, r, shared, npn)
		addCorner(pix, p, npn)
	}

	s := pixgraph.Coord{X: p.X, Y: p.Y + int(dy)}
	if !pix.HasEdge(p, s) {
		pn := shared.Offset(-dx, 0)
		mpn := shared.Offset(-0.5*dx, 0)
		npn := shared.Offset(-0.25*dx, 0.25*dy)
		bend(lat, shared, pn, mpn, npn)
		moveCorner(pix, s, shared, npn)
		addCorner(pix, p, npn)
	}
}

// bend performs the lattice edge surgery shared by both the r-side and
// s-side deformation: it connects pn/shared through a midpoint mpn and
// an inward cut point npn, reusing mpn if a prior deformation on this
// side already introduced it.
func bend(lat *Graph, shared, pn, mpn, npn latcoord.Coord) {
	if lat.HasNode(mpn) {
		lat.RemoveEdge(mpn, shared)
	} else {
		lat.RemoveEdge(pn, shared)
		lat.AddEdge(pn, mpn)
	}
	lat.AddEdge(mpn, npn)
	lat.AddEdge(npn, shared)
}

func moveCorner[V any](pix *pixgraph.Graph[V], pixel pixgraph.Coord, from, to latcoord.Coord) {
	delete(pix.Corners[pixel], from)
	addCorner(pix, pixel, to)
}

func addCorner[V any](pix *pixgraph.Graph[V], pixel pixgraph.Coord, c latcoord.Coord) {
	if pix.Corners[pixel] == nil {
		pix.Corners[pixel] = make(map[latcoord.Coord]struct{})
	}
	pix.Corners[pixel][c] = struct{}{}
}

// collapse removes every valence-<=2 node (except the four image corners),
// reconnecting its two neighbors directly when it has exactly two.
func collapse(lat *Graph) {
	w, h := lat.Width, lat.Height
	corners := map[latcoord.Coord]bool{
		latcoord.FromInt(0, 0): true,
		latcoord.FromInt(w, 0): true,
		latcoord.FromInt(0, h): true,
		latcoord.FromInt(w, h): true,
	}

	var removals []latcoord.Coord
	for _, node := range lat.Nodes() {
		if corners[node] {
			continue
		}
		nbrs := lat.Neighbors(node)
		if len(nbrs) == 2 {
			lat.AddEdge(nbrs[0], nbrs[1])
		}
		if len(nbrs) <= 2 {
			removals = append(removals, node)
		}
	}
	for _, node := range removals {
		lat.RemoveNode(node)
	}
}

// pruneCorners drops any corner reference to a lattice node that collapse
// removed.
func pruneCorners[V any](pix *pixgraph.Graph[V], lat *Graph) {
	for _, p := range pix.Pixels() {
		for c := range pix.Corners[p] {
			if !lat.HasNode(c) {
				delete(pix.Corners[p], c)
			}
		}
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
