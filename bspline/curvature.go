package bspline

import "math"

// Curvature returns |x'y'' - y'x''| / (x'^2+y'^2)^1.5 at u, defined as 0
// when the denominator vanishes.
func (s *BSpline) Curvature(u float64) (float64, error) {
	d1 := s.Derivative()
	d2 := d1.Derivative()

	v1, err := d1.Evaluate(u)
	if err != nil {
		return 0, err
	}
	v2, err := d2.Evaluate(u)
	if err != nil {
		return 0, err
	}

	denom := math.Pow(v1.X*v1.X+v1.Y*v1.Y, 1.5)
	if denom == 0 {
		return 0, nil
	}
	return math.Abs(v1.X*v2.Y-v1.Y*v2.X) / denom, nil
}

// IntegrateSpan integrates Curvature over knot span [knots[i], knots[i+1]]
// using the composite trapezoidal rule with n sub-intervals, returning 0
// for a degenerate (zero-length) span.
func (s *BSpline) IntegrateSpan(i, n int) (float64, error) {
	a, b := s.Knots[i], s.Knots[i+1]
	if a == b {
		return 0, nil
	}
	h := (b - a) / float64(n)

	prev, err := s.Curvature(a)
	if err != nil {
		return 0, err
	}
	sum := 0.0
	for step := 1; step <= n; step++ {
		u := a + float64(step)*h
		if step == n {
			u = b
		}
		cur, err := s.Curvature(u)
		if err != nil {
			return 0, err
		}
		sum += (prev + cur) / 2 * h
		prev = cur
	}
	return sum, nil
}

// CurvatureEnergy sums IntegrateSpan (with the given interval count) over
// the knot spans that control point i influences: spans i through i+degree
// that lie wholly within the spline's domain, degenerate spans
// contributing 0. Spans outside the domain (which Evaluate cannot reach)
// are skipped rather than treated as an error.
func (s *BSpline) CurvatureEnergy(i, intervals int) (float64, error) {
	lo, hi := s.Domain()
	total := 0.0
	for j := i; j <= i+s.Degree; j++ {
		if j < 0 || j+1 >= len(s.Knots) {
			continue
		}
		if s.Knots[j] < lo || s.Knots[j+1] > hi {
			continue
		}
		e, err := s.IntegrateSpan(j, intervals)
		if err != nil {
			return 0, err
		}
		total += e
	}
	return total, nil
}
