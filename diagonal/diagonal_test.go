package diagonal_test

import (
	"testing"

	"github.com/pixelvec/depixel/diagonal"
	"github.com/pixelvec/depixel/pixgraph"
	"github.com/stretchr/testify/require"
)

func corners2x2() (p00, p10, p01, p11 pixgraph.Coord) {
	return pixgraph.Coord{X: 0, Y: 0}, pixgraph.Coord{X: 1, Y: 0},
		pixgraph.Coord{X: 0, Y: 1}, pixgraph.Coord{X: 1, Y: 1}
}

func TestResolve_FullyConnectedBlockDropsBothDiagonals(t *testing.T) {
	t.Parallel()

	pixels := [][]string{{"A", "A"}, {"A", "A"}}
	g, err := pixgraph.Build(pixels, pixgraph.Equal[string])
	require.NoError(t, err)

	require.NoError(t, diagonal.Resolve(g, diagonal.Greedy))

	p00, p10, p01, p11 := corners2x2()
	require.False(t, g.HasEdge(p00, p11))
	require.False(t, g.HasEdge(p10, p01))
	require.True(t, g.HasEdge(p00, p10)) // the four side edges are untouched
}

func TestResolve_CheckerboardGreedyTieDropsSecondDiagonal(t *testing.T) {
	t.Parallel()

	pixels := [][]string{{"A", "B"}, {"B", "A"}}
	g, err := pixgraph.Build(pixels, pixgraph.Equal[string])
	require.NoError(t, err)

	require.NoError(t, diagonal.Resolve(g, diagonal.Greedy))

	p00, p10, p01, p11 := corners2x2()
	require.True(t, g.HasEdge(p00, p11))  // canonically-first diagonal survives a tie
	require.False(t, g.HasEdge(p10, p01)) // its counterpart is dropped
}

func TestResolve_CheckerboardIterativeTieDropsBoth(t *testing.T) {
	t.Parallel()

	pixels := [][]string{{"A", "B"}, {"B", "A"}}
	g, err := pixgraph.Build(pixels, pixgraph.Equal[string])
	require.NoError(t, err)

	require.NoError(t, diagonal.Resolve(g, diagonal.Iterative))

	p00, p10, p01, p11 := corners2x2()
	require.False(t, g.HasEdge(p00, p11))
	require.False(t, g.HasEdge(p10, p01))
}

func TestResolve_NoAmbiguityIsANoOp(t *testing.T) {
	t.Parallel()

	pixels := [][]string{{"A", "B"}, {"C", "D"}}
	g, err := pixgraph.Build(pixels, pixgraph.Equal[string])
	require.NoError(t, err)

	before := g.WalkBlocks(2)
	require.NoError(t, diagonal.Resolve(g, diagonal.Greedy))
	require.Equal(t, before, g.WalkBlocks(2)) // block layout is structural, unaffected either way
}
