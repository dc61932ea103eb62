package bspline

import (
	"fmt"

	"github.com/pixelvec/depixel/point"
)

// BSpline is a B-spline of a fixed Degree over Knots and Points satisfying
// len(Knots) = len(Points) + Degree + 1.
type BSpline struct {
	Degree int
	Knots  []float64
	Points []point.Point

	deriv *BSpline // memoized Derivative()
}

// New validates and builds a BSpline, copying knots and points so the
// caller's slices stay independent.
func New(degree int, knots []float64, points []point.Point) (*BSpline, error) {
	n := len(points) - 1
	m := len(knots) - 1
	if m != n+degree+1 {
		return nil, fmt.Errorf("%w: expected degree %d, got %d", ErrInvalidSpline, m-n-1, degree)
	}
	return &BSpline{
		Degree: degree,
		Knots:  append([]float64(nil), knots...),
		Points: append([]point.Point(nil), points...),
	}, nil
}

// Domain returns the spline's valid evaluation interval (knots[p], knots[m-p]).
func (s *BSpline) Domain() (lo, hi float64) {
	m := len(s.Knots) - 1
	return s.Knots[s.Degree], s.Knots[m-s.Degree]
}

// Clone returns an independent deep copy, with no memoized derivative.
func (s *BSpline) Clone() *BSpline {
	return &BSpline{
		Degree: s.Degree,
		Knots:  append([]float64(nil), s.Knots...),
		Points: append([]point.Point(nil), s.Points...),
	}
}
