package pixgraph_test

import (
	"testing"

	"github.com/pixelvec/depixel/pixgraph"
	"github.com/stretchr/testify/require"
)

func uniform2x2() [][]int {
	return [][]int{
		{1, 1},
		{1, 1},
	}
}

func TestBuild_EmptyImage(t *testing.T) {
	t.Parallel()

	_, err := pixgraph.Build([][]int{}, pixgraph.Equal[int])
	require.ErrorIs(t, err, pixgraph.ErrEmptyImage)

	_, err = pixgraph.Build([][]int{{}}, pixgraph.Equal[int])
	require.ErrorIs(t, err, pixgraph.ErrEmptyImage)
}

func TestBuild_NonRectangular(t *testing.T) {
	t.Parallel()

	_, err := pixgraph.Build([][]int{{1, 2}, {1}}, pixgraph.Equal[int])
	require.ErrorIs(t, err, pixgraph.ErrNonRectangular)
}

func TestBuild_UniformBlockFullyConnected(t *testing.T) {
	t.Parallel()

	g, err := pixgraph.Build(uniform2x2(), pixgraph.Equal[int])
	require.NoError(t, err)

	p00 := pixgraph.Coord{X: 0, Y: 0}
	p10 := pixgraph.Coord{X: 1, Y: 0}
	p01 := pixgraph.Coord{X: 0, Y: 1}
	p11 := pixgraph.Coord{X: 1, Y: 1}

	require.True(t, g.HasEdge(p00, p10))
	require.True(t, g.HasEdge(p00, p01))
	require.True(t, g.HasEdge(p00, p11))
	require.True(t, g.HasEdge(p10, p01))
	require.True(t, g.IsDiagonal(p00, p11))
	require.False(t, g.IsDiagonal(p00, p10))
}

func TestBuild_DissimilarPixelsUnconnected(t *testing.T) {
	t.Parallel()

	pixels := [][]int{
		{1, 2},
		{3, 4},
	}
	g, err := pixgraph.Build(pixels, pixgraph.Equal[int])
	require.NoError(t, err)
	require.Equal(t, 0, g.Degree(pixgraph.Coord{X: 0, Y: 0}))
}

func TestConnectedComponents_UniformBlockIsSingleComponent(t *testing.T) {
	t.Parallel()

	g, err := pixgraph.Build(uniform2x2(), pixgraph.Equal[int])
	require.NoError(t, err)

	comps := g.ConnectedComponents()
	require.Len(t, comps, 1)
	require.Len(t, comps[0], 4)
}

func TestConnectedComponents_CheckerboardSplitsIntoTwo(t *testing.T) {
	t.Parallel()

	pixels := [][]int{
		{1, 2},
		{2, 1},
	}
	g, err := pixgraph.Build(pixels, pixgraph.Equal[int])
	require.NoError(t, err)

	comps := g.ConnectedComponents()
	require.Len(t, comps, 2)
	for _, c := range comps {
		require.Len(t, c, 2)
	}
}

func TestWalkBlocks_CountAndShape(t *testing.T) {
	t.Parallel()

	g, err := pixgraph.Build(uniform2x2(), pixgraph.Equal[int])
	require.NoError(t, err)

	blocks := g.WalkBlocks(2)
	require.Len(t, blocks, 1)
	require.Len(t, blocks[0], 4)
}
