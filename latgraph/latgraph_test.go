package latgraph_test

import (
	"testing"

	"github.com/pixelvec/depixel/diagonal"
	"github.com/pixelvec/depixel/latcoord"
	"github.com/pixelvec/depixel/latgraph"
	"github.com/pixelvec/depixel/pixgraph"
	"github.com/stretchr/testify/require"
)

func TestNewLattice_Topology(t *testing.T) {
	t.Parallel()

	lat, err := latgraph.NewLattice(2, 2)
	require.NoError(t, err)

	require.Len(t, lat.Nodes(), 9) // a 3x3 grid of integer corners

	edges := 0
	for _, n := range lat.Nodes() {
		edges += lat.Degree(n)
	}
	require.Equal(t, 24, edges) // sum of degrees = 2*|E|, so |E| = 12

	require.Equal(t, 2, lat.Degree(latcoord.FromInt(0, 0))) // corner
	require.Equal(t, 4, lat.Degree(latcoord.FromInt(1, 1))) // interior
}

func TestNewLattice_RejectsEmptyDimensions(t *testing.T) {
	t.Parallel()

	_, err := latgraph.NewLattice(0, 2)
	require.ErrorIs(t, err, latgraph.ErrEmptyGrid)
}

func TestDeform_NoDiagonalsLeavesLatticeUntouched(t *testing.T) {
	t.Parallel()

	pixels := [][]string{{"A", "A"}, {"A", "A"}}
	pix, err := pixgraph.Build(pixels, pixgraph.Equal[string])
	require.NoError(t, err)
	require.NoError(t, diagonal.Resolve(pix, diagonal.Greedy))

	lat, err := latgraph.NewLattice(2, 2)
	require.NoError(t, err)

	before := len(lat.Nodes())
	latgraph.Deform(pix, lat)
	require.Equal(t, before, len(lat.Nodes())) // uniform block has no diagonal edges to bend
}

func TestDeform_SurvivingDiagonalAddsFractionalNodes(t *testing.T) {
	t.Parallel()

	pixels := [][]string{{"A", "B"}, {"B", "A"}}
	pix, err := pixgraph.Build(pixels, pixgraph.Equal[string])
	require.NoError(t, err)
	require.NoError(t, diagonal.Resolve(pix, diagonal.Greedy))

	lat, err := latgraph.NewLattice(2, 2)
	require.NoError(t, err)

	latgraph.Deform(pix, lat)

	foundFractional := false
	for _, n := range lat.Nodes() {
		x, y := n.Float()
		if x != float64(int(x)) || y != float64(int(y)) {
			foundFractional = true
			break
		}
	}
	require.True(t, foundFractional, "bending a surviving diagonal should introduce quarter-step lattice nodes")
}

func TestClone_IsIndependent(t *testing.T) {
	t.Parallel()

	lat, err := latgraph.NewLattice(1, 1)
	require.NoError(t, err)

	clone := lat.Clone()
	clone.RemoveEdge(latcoord.FromInt(0, 0), latcoord.FromInt(1, 0))

	require.True(t, lat.HasEdge(latcoord.FromInt(0, 0), latcoord.FromInt(1, 0)))
	require.False(t, clone.HasEdge(latcoord.FromInt(0, 0), latcoord.FromInt(1, 0)))
}
