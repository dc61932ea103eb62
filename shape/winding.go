package shape

import (
	"github.com/paulmach/orb"
	"github.com/pixelvec/depixel/point"
)

// ccw reports whether poly, read as a closed ring, winds
// counter-clockwise. Used to assign outer/inner orientation per shape
// from actual winding geometry, since a Path's stored node order can be
// shared (and thus arbitrary) between two shapes.
func ccw(poly []point.Point) bool {
	ring := make(orb.Ring, len(poly)+1)
	for i, p := range poly {
		ring[i] = orb.Point{p.X, p.Y}
	}
	ring[len(poly)] = ring[0]
	return ring.Orientation() == orb.CCW
}
