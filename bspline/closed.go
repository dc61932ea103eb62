package bspline

import (
	"fmt"

	"github.com/pixelvec/depixel/point"
)

// DefaultDegree is the quadratic degree PolylineToClosedBSpline defaults
// to.
const DefaultDegree = 2

// ClosedBSpline is a BSpline whose last Degree control points duplicate
// its first Degree points, so the curve closes on itself. UsefulPoints
// exposes each logical control point exactly once.
type ClosedBSpline struct {
	*BSpline
}

// NewClosed validates the closed-spline wrap invariant (the last Degree
// points equal the first Degree points) in addition to BSpline's own
// knot/point/degree invariant.
func NewClosed(degree int, knots []float64, points []point.Point) (*ClosedBSpline, error) {
	base, err := New(degree, knots, points)
	if err != nil {
		return nil, err
	}
	n := len(points) - degree
	for i := 0; i < degree; i++ {
		if points[i] != points[n+i] {
			return nil, fmt.Errorf("%w: closed spline wrap violated at index %d", ErrInvalidSpline, i)
		}
	}
	return &ClosedBSpline{BSpline: base}, nil
}

// PolylineToClosedBSpline builds the closed quadratic (by default) B-spline
// fitting the cyclic polyline P: points = P ++ P[:degree], m = n+2*degree,
// knots[i] = i/m.
func PolylineToClosedBSpline(poly []point.Point, degree int) (*ClosedBSpline, error) {
	n := len(poly)
	points := make([]point.Point, n+degree)
	copy(points, poly)
	copy(points[n:], poly[:degree])

	m := n + 2*degree
	knots := make([]float64, m+1)
	for i := 0; i <= m; i++ {
		knots[i] = float64(i) / float64(m)
	}
	return NewClosed(degree, knots, points)
}

// Clone returns an independent deep copy.
func (c *ClosedBSpline) Clone() *ClosedBSpline {
	return &ClosedBSpline{BSpline: c.BSpline.Clone()}
}

// UsefulPoints returns the closed spline's logical control points, each
// exactly once (the trailing Degree duplicates are omitted).
func (c *ClosedBSpline) UsefulPoints() []point.Point {
	return c.Points[:len(c.Points)-c.Degree]
}

// MovePoint sets useful-point index i to val, also updating the mirrored
// tail duplicate when i < Degree, and invalidates the memoized derivative.
func (c *ClosedBSpline) MovePoint(i int, val point.Point) {
	c.Points[i] = val
	if i < c.Degree {
		c.Points[len(c.Points)-c.Degree+i] = val
	}
	c.deriv = nil
}
