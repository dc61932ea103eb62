package smoother_test

import (
	"math/rand"
	"testing"

	"github.com/pixelvec/depixel/bspline"
	"github.com/pixelvec/depixel/point"
	"github.com/pixelvec/depixel/smoother"
	"github.com/stretchr/testify/require"
)

func square() []point.Point {
	return []point.Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}}
}

func TestSmooth_ZeroOffsetIsANoOp(t *testing.T) {
	t.Parallel()

	poly := square()
	s, err := bspline.PolylineToClosedBSpline(poly, bspline.DefaultDegree)
	require.NoError(t, err)

	cfg := smoother.NewConfig(smoother.WithOffset(0), smoother.WithIter(5))
	out := smoother.Smooth(s, poly, cfg, rand.New(rand.NewSource(1)))

	require.Equal(t, s.UsefulPoints(), out.UsefulPoints())
}

func TestSmooth_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	poly := square()
	s, err := bspline.PolylineToClosedBSpline(poly, bspline.DefaultDegree)
	require.NoError(t, err)
	before := append([]point.Point{}, s.UsefulPoints()...)

	cfg := smoother.NewConfig(smoother.WithIter(3), smoother.WithGuesses(4))
	_ = smoother.Smooth(s, poly, cfg, rand.New(rand.NewSource(1)))

	require.Equal(t, before, s.UsefulPoints())
}

func TestSmooth_IsDeterministicForAFixedSeed(t *testing.T) {
	t.Parallel()

	poly := square()
	s, err := bspline.PolylineToClosedBSpline(poly, bspline.DefaultDegree)
	require.NoError(t, err)
	cfg := smoother.DefaultConfig()

	out1 := smoother.Smooth(s, poly, cfg, rand.New(rand.NewSource(42)))
	out2 := smoother.Smooth(s, poly, cfg, rand.New(rand.NewSource(42)))
	require.Equal(t, out1.UsefulPoints(), out2.UsefulPoints())
}

func TestDefaultConfig_MatchesDocumentedDefaults(t *testing.T) {
	t.Parallel()

	cfg := smoother.DefaultConfig()
	require.Equal(t, 20, cfg.Iter)
	require.Equal(t, 20, cfg.Guesses)
	require.Equal(t, 0.05, cfg.Offset)
	require.Equal(t, 20, cfg.Intervals)
	require.Equal(t, 1.0, cfg.PosMult)
}
