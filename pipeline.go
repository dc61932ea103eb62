package depixel

import (
	"math/rand"

	"github.com/pixelvec/depixel/bspline"
	"github.com/pixelvec/depixel/diagonal"
	"github.com/pixelvec/depixel/latgraph"
	"github.com/pixelvec/depixel/pixgraph"
	"github.com/pixelvec/depixel/point"
	"github.com/pixelvec/depixel/shape"
	"github.com/pixelvec/depixel/smoother"
)

// Config controls the optional stages of Pipeline.Run.
type Config struct {
	// Policy chooses the diagonal-ambiguity resolution heuristic.
	Policy diagonal.Policy
	// Smooth runs the stochastic spline smoother when true.
	Smooth bool
	// SmootherConfig configures the smoother when Smooth is true; the
	// zero value falls back to smoother.DefaultConfig().
	SmootherConfig smoother.Config
	// Seed derives the smoother's RNG; Run is deterministic for a fixed
	// Seed, independent of the platform's default global RNG state.
	Seed uint64
}

// DefaultConfig returns the Greedy policy with smoothing enabled.
func DefaultConfig() Config {
	return Config{Policy: diagonal.Greedy, Smooth: true, SmootherConfig: smoother.DefaultConfig()}
}

// Result collects every intermediate artifact of one Run, so callers (the
// CLI in particular) can render any subset of pipeline stages without
// recomputing them.
type Result[V any] struct {
	PixGraph *pixgraph.Graph[V]
	Lattice  *latgraph.Graph
	Shapes   []*shape.Shape[V]
}

// Pipeline runs the full depixelization algorithm over a row-major pixel
// grid, using match as the similarity predicate for the initial graph:
// build the similarity graph, resolve diagonal ambiguities, build and
// deform the corner lattice, extract shape outlines, fit a spline to
// each, and optionally smooth them.
type Pipeline[V any] struct {
	Match pixgraph.MatchFunc[V]
	Cfg   Config
}

// New returns a Pipeline using match as the pixel similarity predicate and
// cfg to control optional stages.
func New[V any](match pixgraph.MatchFunc[V], cfg Config) *Pipeline[V] {
	return &Pipeline[V]{Match: match, Cfg: cfg}
}

// Run executes every pipeline stage over pixels in order, returning the
// resulting shapes (each carrying its own straight-edged and, if
// Cfg.Smooth, smoothed outline) along with the intermediate graphs.
func (p *Pipeline[V]) Run(pixels [][]V) (*Result[V], error) {
	pix, err := pixgraph.Build(pixels, p.Match)
	if err != nil {
		return nil, err
	}

	if err := diagonal.Resolve(pix, p.Cfg.Policy); err != nil {
		return nil, err
	}

	lat, err := latgraph.NewLattice(len(pixels[0]), len(pixels))
	if err != nil {
		return nil, err
	}
	latgraph.Deform(pix, lat)

	cache := shape.NewPathCache()
	shapes := shape.Extract(pix, lat, cache)

	if err := p.fitSplines(shapes, cache); err != nil {
		return nil, err
	}
	if p.Cfg.Smooth {
		p.smoothSplines(shapes, cache)
	}

	return &Result[V]{PixGraph: pix, Lattice: lat, Shapes: shapes}, nil
}

// fitSplines fits a closed quadratic B-spline to every distinct path in
// cache exactly once, storing the result on the Path so every shape
// sharing that path (an outer loop here, an inner loop of its neighbor
// there) sees the same fit.
func (p *Pipeline[V]) fitSplines(shapes []*shape.Shape[V], cache *shape.PathCache) error {
	seen := make(map[*shape.Path]bool)
	for _, s := range shapes {
		paths := append([]*shape.Path{}, s.Inner...)
		if s.Outer != nil {
			paths = append(paths, s.Outer)
		}
		for _, path := range paths {
			if seen[path] || path.Spline != nil {
				continue
			}
			seen[path] = true
			spline, err := bspline.PolylineToClosedBSpline(path.Polyline, bspline.DefaultDegree)
			if err != nil {
				return err
			}
			path.Spline = spline
		}
	}
	return nil
}

// smoothSplines runs the stochastic smoother over every distinct,
// already-fit path exactly once.
func (p *Pipeline[V]) smoothSplines(shapes []*shape.Shape[V], cache *shape.PathCache) {
	cfg := p.Cfg.SmootherConfig
	if cfg == (smoother.Config{}) {
		cfg = smoother.DefaultConfig()
	}
	rng := rand.New(rand.NewSource(int64(p.Cfg.Seed)))
	seen := make(map[*shape.Path]bool)
	var pathIndex uint64
	for _, s := range shapes {
		paths := append([]*shape.Path{}, s.Inner...)
		if s.Outer != nil {
			paths = append(paths, s.Outer)
		}
		for _, path := range paths {
			if seen[path] || path.Spline == nil || path.Smoothed != nil {
				continue
			}
			seen[path] = true
			pathRNG := smoother.DeriveRNG(rng, pathIndex)
			pathIndex++
			original := make([]point.Point, len(path.Polyline))
			copy(original, path.Polyline)
			path.Smoothed = smoother.Smooth(path.Spline, original, cfg, pathRNG)
		}
	}
}
