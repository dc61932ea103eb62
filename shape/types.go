package shape

import (
	"github.com/pixelvec/depixel/bspline"
	"github.com/pixelvec/depixel/latcoord"
	"github.com/pixelvec/depixel/pixgraph"
	"github.com/pixelvec/depixel/point"
)

// Path is a closed boundary loop over corner lattice nodes, canonicalized
// so that two shapes sharing the same loop share one instance. Nodes is
// stored in whatever direction the boundary walk produced;
// callers needing a specific winding use Shape.OuterLoop/InnerLoop, which
// orient it from its actual geometry rather than trusting the walk's
// arbitrary starting direction.
type Path struct {
	Nodes    []latcoord.Coord
	Polyline []point.Point
	Spline   *bspline.ClosedBSpline
	Smoothed *bspline.ClosedBSpline
}

// Reversed returns this path's nodes and polyline in the opposite winding
// direction, without mutating the shared Path.
func (p *Path) Reversed() ([]latcoord.Coord, []point.Point) {
	nodes := make([]latcoord.Coord, len(p.Nodes))
	poly := make([]point.Point, len(p.Polyline))
	for i, n := range p.Nodes {
		nodes[len(p.Nodes)-1-i] = n
	}
	for i, pt := range p.Polyline {
		poly[len(p.Polyline)-1-i] = pt
	}
	return nodes, poly
}

// Shape is one connected component of the similarity graph: a single
// pixel value, its pixels, and the boundary loops bounding its cell union.
// Outer is the loop containing the shape's lexicographically smallest
// corner; Inner holds the remaining loops (holes).
type Shape[V any] struct {
	Value  V
	Pixels []pixgraph.Coord
	Outer  *Path
	Inner  []*Path
}

// OuterLoop returns the shape's outer boundary oriented counter-clockwise,
// reversing the stored Path if its natural winding runs the other way.
// Deciding orientation from actual geometry is what keeps a Path shared
// between two shapes correctly opposed for each of them.
func (s *Shape[V]) OuterLoop() ([]latcoord.Coord, []point.Point) {
	if s.Outer == nil {
		return nil, nil
	}
	if ccw(s.Outer.Polyline) {
		return s.Outer.Nodes, s.Outer.Polyline
	}
	return s.Outer.Reversed()
}

// InnerLoop returns the i'th hole oriented clockwise, opposing
// OuterLoop's winding.
func (s *Shape[V]) InnerLoop(i int) ([]latcoord.Coord, []point.Point) {
	p := s.Inner[i]
	if !ccw(p.Polyline) {
		return p.Nodes, p.Polyline
	}
	return p.Reversed()
}

// PathCache canonicalizes Paths by their node tuple so that a boundary
// loop shared by two shapes is built once.
type PathCache struct {
	byKey map[string]*Path
}

// NewPathCache returns an empty cache.
func NewPathCache() *PathCache {
	return &PathCache{byKey: make(map[string]*Path)}
}

// Get returns the canonical Path for the given cyclic node sequence,
// building and caching one via polyline if this is the first time this
// exact sequence (in either winding direction) has been seen.
func (c *PathCache) Get(nodes []latcoord.Coord) *Path {
	fwd := key(nodes)
	if p, ok := c.byKey[fwd]; ok {
		return p
	}
	rev := make([]latcoord.Coord, len(nodes))
	for i, n := range nodes {
		rev[len(nodes)-1-i] = n
	}
	bwd := key(rev)
	if p, ok := c.byKey[bwd]; ok {
		return p
	}

	poly := make([]point.Point, len(nodes))
	for i, n := range nodes {
		x, y := n.Float()
		poly[i] = point.Point{X: x, Y: y}
	}
	p := &Path{Nodes: nodes, Polyline: poly}
	c.byKey[fwd] = p
	return p
}

// key renders a cyclic node sequence, rotated to start at its
// lexicographically smallest element, as a cache key.
func key(nodes []latcoord.Coord) string {
	if len(nodes) == 0 {
		return ""
	}
	start := 0
	for i := 1; i < len(nodes); i++ {
		if nodes[i].Less(nodes[start]) {
			start = i
		}
	}
	s := make([]byte, 0, len(nodes)*16)
	for i := 0; i < len(nodes); i++ {
		n := nodes[(start+i)%len(nodes)]
		s = append(s, []byte(n.String())...)
		s = append(s, ';')
	}
	return string(s)
}
