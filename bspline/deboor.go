package bspline

import (
	"fmt"

	"github.com/pixelvec/depixel/point"
)

// Evaluate returns the spline's position at parameter u via De Boor's
// algorithm.
func (s *BSpline) Evaluate(u float64) (point.Point, error) {
	lo, hi := s.Domain()
	if u < lo || u > hi {
		return point.Point{}, fmt.Errorf("%w: u=%g not in [%g, %g]", ErrOutOfBounds, u, lo, hi)
	}

	p := s.Degree
	k := s.findSpan(u)
	mult := s.multiplicity(u)

	levels := p - mult
	if levels < 0 {
		return s.Points[k-mult], nil
	}

	d := make([]point.Point, p+1)
	for j := 0; j <= p; j++ {
		d[j] = s.Points[k-p+j]
	}

	for r := 1; r <= levels; r++ {
		for j := levels; j >= r; j-- {
			i := k - p + j
			denom := s.Knots[i+p-r+1] - s.Knots[i]
			var alpha float64
			if denom != 0 {
				alpha = (u - s.Knots[i]) / denom
			}
			d[j] = d[j-1].Scale(1 - alpha).Add(d[j].Scale(alpha))
		}
	}
	return d[levels], nil
}

// findSpan returns the largest knot index k in [p, m-p-1] with
// knots[k] <= u, where m = len(Knots)-1.
func (s *BSpline) findSpan(u float64) int {
	m := len(s.Knots) - 1
	p := s.Degree
	k := p
	for k < m-p-1 && s.Knots[k+1] <= u {
		k++
	}
	return k
}

// multiplicity counts how many knots exactly equal u.
func (s *BSpline) multiplicity(u float64) int {
	count := 0
	for _, k := range s.Knots {
		if k == u {
			count++
		}
	}
	return count
}
