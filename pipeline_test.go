package depixel_test

import (
	"testing"

	"github.com/pixelvec/depixel"
	"github.com/pixelvec/depixel/diagonal"
	"github.com/pixelvec/depixel/pixgraph"
	"github.com/pixelvec/depixel/smoother"
	"github.com/stretchr/testify/require"
)

// circle is the literal 6x6 fixture: a ring of eight pixels, open at its
// four corner checkerboards.
func circle() [][]int {
	return [][]int{
		{0, 0, 0, 0, 0, 0},
		{0, 0, 1, 1, 0, 0},
		{0, 1, 0, 0, 1, 0},
		{0, 1, 0, 0, 1, 0},
		{0, 0, 1, 1, 0, 0},
		{0, 0, 0, 0, 0, 0},
	}
}

func TestRun_Circle_OneShapeOneHole(t *testing.T) {
	t.Parallel()

	cfg := depixel.DefaultConfig()
	cfg.Smooth = false
	p := depixel.New(pixgraph.Equal[int], cfg)

	result, err := p.Run(circle())
	require.NoError(t, err)

	for _, s := range result.Shapes {
		if s.Value != 1 {
			continue
		}
		require.NotNil(t, s.Outer)
		nodes, _ := s.OuterLoop()
		require.Len(t, nodes, 16)
		require.Len(t, s.Inner, 1)
	}
}

func TestRun_SmoothDisabledLeavesSmoothedNil(t *testing.T) {
	t.Parallel()

	cfg := depixel.DefaultConfig()
	cfg.Smooth = false
	p := depixel.New(pixgraph.Equal[int], cfg)

	result, err := p.Run([][]int{{1}})
	require.NoError(t, err)
	require.Nil(t, result.Shapes[0].Outer.Smoothed)
	require.NotNil(t, result.Shapes[0].Outer.Spline)
}

func TestRun_ZeroOffsetSmoothingMatchesSpline(t *testing.T) {
	t.Parallel()

	cfg := depixel.Config{
		Policy:         diagonal.Greedy,
		Smooth:         true,
		SmootherConfig: smoother.NewConfig(smoother.WithOffset(0)),
	}
	p := depixel.New(pixgraph.Equal[int], cfg)

	result, err := p.Run([][]int{{1}})
	require.NoError(t, err)

	outer := result.Shapes[0].Outer
	require.Equal(t, outer.Spline.UsefulPoints(), outer.Smoothed.UsefulPoints())
}
