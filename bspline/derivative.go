package bspline

import "github.com/pixelvec/depixel/point"

// Derivative returns the spline's derivative: degree p-1 over knots[1:m]
// and new control points Q_i = p*(P_{i+1}-P_i)/(u_{i+1+p}-u_{i+1}). The
// result is memoized, and the cache is cleared whenever Points is mutated
// in place (see ClosedBSpline.MovePoint).
func (s *BSpline) Derivative() *BSpline {
	if s.deriv != nil {
		return s.deriv
	}
	p := s.Degree
	n := len(s.Points) - 1
	m := len(s.Knots) - 1

	newKnots := append([]float64(nil), s.Knots[1:m]...)
	newPoints := make([]point.Point, n)
	for i := 0; i < n; i++ {
		denom := s.Knots[i+1+p] - s.Knots[i+1]
		if denom == 0 {
			continue
		}
		newPoints[i] = s.Points[i+1].Sub(s.Points[i]).Scale(float64(p) / denom)
	}

	s.deriv = &BSpline{Degree: p - 1, Knots: newKnots, Points: newPoints}
	return s.deriv
}
