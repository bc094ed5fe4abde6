package gradient

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReduceDispatchesCommands(t *testing.T) {
	t.Parallel()

	d := New()
	require.True(t, Reduce(d, AddLayer{}))
	require.True(t, Reduce(d, SetKind{LayerID: 2, Kind: KindConic}))
	require.True(t, Reduce(d, SetStartAngle{LayerID: 2, Degrees: 45}))
	require.True(t, Reduce(d, AddStop{LayerID: 2}))
	require.True(t, Reduce(d, SetStopOpacity{LayerID: 2, Index: 1, Opacity: 30}))
	require.True(t, Reduce(d, MoveLayer{LayerID: 2, Direction: -1}))
	require.False(t, Reduce(d, RemoveStop{LayerID: 1, Index: 0}))

	first, ok := d.LayerAt(0)
	require.True(t, ok)
	require.Equal(t, 2, first.ID)
	require.Equal(t, Conic{StartAngle: 45, Center: Center{X: 50, Y: 50}}, first.Geometry)
	require.Equal(t, 30.0, first.Stops[1].Opacity)
}

func TestReduceIgnoresNil(t *testing.T) {
	t.Parallel()

	require.False(t, Reduce(nil, AddLayer{}))
	require.False(t, Reduce(New(), nil))
}

func TestCommandName(t *testing.T) {
	t.Parallel()

	require.Equal(t, "add_stop", CommandName(AddStop{}))
	require.Equal(t, "set_stop_position", CommandName(SetStopPosition{}))
	require.Equal(t, "replace_layers", CommandName(ReplaceLayers{}))
}
