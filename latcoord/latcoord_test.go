package latcoord_test

import (
	"testing"

	"github.com/pixelvec/depixel/latcoord"
	"github.com/stretchr/testify/require"
)

func TestOffset_QuarterSteps(t *testing.T) {
	t.Parallel()

	c := latcoord.FromInt(2, 3)
	c = c.Offset(0.25, -0.5)

	x, y := c.Float()
	require.InDelta(t, 2.25, x, 1e-9)
	require.InDelta(t, 2.5, y, 1e-9)
}

func TestOffset_NonQuarterPanics(t *testing.T) {
	t.Parallel()

	c := latcoord.FromInt(0, 0)
	require.Panics(t, func() {
		c.Offset(0.1, 0)
	})
}

func TestLess_LexicographicOrder(t *testing.T) {
	t.Parallel()

	a := latcoord.FromInt(1, 5)
	b := latcoord.FromInt(2, 0)
	require.True(t, a.Less(b)) // X compared first

	c := latcoord.FromInt(1, 2)
	d := latcoord.FromInt(1, 3)
	require.True(t, c.Less(d)) // tie on X, Y breaks it
}

func TestMin(t *testing.T) {
	t.Parallel()

	a := latcoord.FromInt(0, 0)
	b := latcoord.FromInt(0, 0).Offset(0.25, 0)
	require.Equal(t, a, latcoord.Min(a, b))
	require.Equal(t, a, latcoord.Min(b, a))
}

func TestEqual_ExactAfterRoundTrip(t *testing.T) {
	t.Parallel()

	a := latcoord.FromInt(1, 1).Offset(-0.25, 0.75)
	b := latcoord.FromInt(1, 1).Offset(0.75, 0.75).Offset(-1, 0)
	require.True(t, a.Equal(b))
}
