package bspline

import "github.com/pixelvec/depixel/point"

// Reverse returns a new spline tracing the same curve in the opposite
// direction: knots' = reverse(1-k_j), points' = reverse(points), same
// degree. Reversal is involutive up to this knot reflection.
func (s *BSpline) Reverse() *BSpline {
	knots := make([]float64, len(s.Knots))
	for i, k := range s.Knots {
		knots[len(knots)-1-i] = 1 - k
	}
	points := make([]point.Point, len(s.Points))
	for i, p := range s.Points {
		points[len(points)-1-i] = p
	}
	return &BSpline{Degree: s.Degree, Knots: knots, Points: points}
}
