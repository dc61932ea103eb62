package shape_test

import (
	"testing"

	"github.com/pixelvec/depixel/diagonal"
	"github.com/pixelvec/depixel/latcoord"
	"github.com/pixelvec/depixel/latgraph"
	"github.com/pixelvec/depixel/pixgraph"
	"github.com/pixelvec/depixel/shape"
	"github.com/stretchr/testify/require"
)

func extract(t *testing.T, pixels [][]int) []*shape.Shape[int] {
	t.Helper()

	pix, err := pixgraph.Build(pixels, pixgraph.Equal[int])
	require.NoError(t, err)
	require.NoError(t, diagonal.Resolve(pix, diagonal.Greedy))

	lat, err := latgraph.NewLattice(len(pixels[0]), len(pixels))
	require.NoError(t, err)
	latgraph.Deform(pix, lat)

	return shape.Extract(pix, lat, shape.NewPathCache())
}

func TestExtract_SinglePixelImage(t *testing.T) {
	t.Parallel()

	shapes := extract(t, [][]int{{1}})
	require.Len(t, shapes, 1)

	s := shapes[0]
	require.NotNil(t, s.Outer)
	require.Empty(t, s.Inner)

	nodes, poly := s.OuterLoop()
	require.Len(t, nodes, 4) // a unit square boundary
	require.Len(t, poly, 4)
}

func TestExtract_AlternatingRowProducesOneShapePerPixel(t *testing.T) {
	t.Parallel()

	shapes := extract(t, [][]int{{1, 2, 1, 2}})
	require.Len(t, shapes, 4)

	for _, s := range shapes {
		nodes, _ := s.OuterLoop()
		require.Len(t, nodes, 4)
		require.Empty(t, s.Inner)
	}
}

func TestOuterLoop_IsCounterClockwise(t *testing.T) {
	t.Parallel()

	shapes := extract(t, [][]int{{1}})
	_, poly := shapes[0].OuterLoop()

	// Shoelace sum is positive for a counter-clockwise polygon.
	area := 0.0
	for i := range poly {
		j := (i + 1) % len(poly)
		area += poly[i].X*poly[j].Y - poly[j].X*poly[i].Y
	}
	require.Greater(t, area, 0.0)
}

func TestPathCache_SameLoopEitherDirectionSharesOneInstance(t *testing.T) {
	t.Parallel()

	cache := shape.NewPathCache()
	square := []latcoord.Coord{
		latcoord.FromInt(0, 0), latcoord.FromInt(1, 0),
		latcoord.FromInt(1, 1), latcoord.FromInt(0, 1),
	}
	reversed := []latcoord.Coord{square[3], square[2], square[1], square[0]}

	p1 := cache.Get(square)
	p2 := cache.Get(reversed)
	require.Same(t, p1, p2)
}
