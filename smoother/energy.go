package smoother

import (
	"github.com/pixelvec/depixel/bspline"
	"github.com/pixelvec/depixel/point"
)

// energy returns E_pos(i) + E_curv(i) for useful-point index i of s,
// measured against that point's original position.
func energy(s *bspline.ClosedBSpline, original []point.Point, i int, cfg Config) float64 {
	return posEnergy(s.UsefulPoints()[i], original[i], cfg.PosMult) + curvEnergy(s, i, cfg.Intervals)
}

// posEnergy is the fourth power of the displacement between a control
// point and its original position, scaled by POS_MULT.
func posEnergy(current, original point.Point, posMult float64) float64 {
	d := current.Sub(original).Magnitude()
	return posMult * d * d * d * d
}

// curvEnergy is the curvature energy for control point i; a domain error
// (which should not occur for an in-range useful-point index) is treated
// as zero rather than propagated, since energy is only ever used to
// compare candidates relatively.
func curvEnergy(s *bspline.ClosedBSpline, i, intervals int) float64 {
	e, err := s.CurvatureEnergy(i, intervals)
	if err != nil {
		return 0
	}
	return e
}
