package smoother

import (
	"math"
	"math/rand"

	"github.com/pixelvec/depixel/bspline"
	"github.com/pixelvec/depixel/point"
	"gonum.org/v1/gonum/stat/distuv"
)

// Smooth returns a smoothed copy of spline, performing cfg.Iter passes of
// a per-control-point randomized hill-climb anchored to original (the
// point's position before any smoothing). spline is left untouched.
//
// rng seeds the stochastic search; a nil rng uses a fixed default seed, so
// results are repeatable given the same rng state, but the exact sequence
// of candidate offsets is an implementation detail, not a guaranteed
// output format.
func Smooth(spline *bspline.ClosedBSpline, original []point.Point, cfg Config, rng *rand.Rand) *bspline.ClosedBSpline {
	if rng == nil {
		rng = rngFromSeed(0)
	}
	out := spline.Clone()
	n := len(out.UsefulPoints())

	angle := distuv.Uniform{Min: 0, Max: 2 * math.Pi, Src: rng}
	radius := distuv.Uniform{Min: 0, Max: cfg.Offset, Src: rng}

	for pass := 0; pass < cfg.Iter; pass++ {
		for i := 0; i < n; i++ {
			hillClimb(out, original, i, cfg, angle, radius)
		}
	}
	return out
}

// hillClimb performs one round of candidate generation and selection for
// useful-point index i: GUESSES candidates plus the unmoved start, moving
// point i to whichever scores lowest energy.
func hillClimb(s *bspline.ClosedBSpline, original []point.Point, i int, cfg Config, angle, radius distuv.Uniform) {
	start := s.UsefulPoints()[i]
	best := start
	bestE := energy(s, original, i, cfg)

	for g := 0; g < cfg.Guesses; g++ {
		cand := start.Add(point.FromPolar(radius.Rand(), angle.Rand()))
		s.MovePoint(i, cand)
		if e := energy(s, original, i, cfg); e < bestE {
			bestE = e
			best = cand
		}
		s.MovePoint(i, start)
	}
	s.MovePoint(i, best)
}
