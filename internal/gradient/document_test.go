package gradient

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDocumentHasDefaultLayer(t *testing.T) {
	t.Parallel()

	d := New()
	require.Equal(t, 1, d.Len())

	l, ok := d.Active()
	require.True(t, ok)
	require.Equal(t, 1, l.ID)
	require.Equal(t, KindLinear, l.Kind())
	require.Equal(t, Linear{Angle: 180}, l.Geometry)
	require.Equal(t, []Stop{
		{Color: "#ff0000", Opacity: 100, Position: 0},
		{Color: "#0000ff", Opacity: 100, Position: 100},
	}, l.Stops)
	require.True(t, l.HasDefaultPlacement())
}

func TestAddLayerAppendsAndActivates(t *testing.T) {
	t.Parallel()

	d := New()
	require.True(t, d.AddLayer())
	require.Equal(t, 2, d.Len())

	last, ok := d.LayerAt(1)
	require.True(t, ok)
	require.Equal(t, 2, last.ID)
	require.Equal(t, last.ID, d.ActiveID())
}

func TestRemoveLayerKeepsAtLeastOne(t *testing.T) {
	t.Parallel()

	d := New()
	require.False(t, d.RemoveLayer(1))
	require.Equal(t, 1, d.Len())

	d.AddLayer()
	d.AddLayer()
	require.Equal(t, 3, d.ActiveID())

	require.True(t, d.RemoveLayer(3))
	require.Equal(t, 1, d.ActiveID(), "active layer removed, first layer takes focus")

	require.True(t, d.RemoveLayer(1))
	require.Equal(t, 2, d.ActiveID())
	require.False(t, d.RemoveLayer(2))
	require.False(t, d.RemoveLayer(99))
}

func TestRemoveInactiveLayerKeepsFocus(t *testing.T) {
	t.Parallel()

	d := New()
	d.AddLayer()
	d.AddLayer()
	require.True(t, d.SelectLayer(2))
	require.True(t, d.RemoveLayer(3))
	require.Equal(t, 2, d.ActiveID())
}

func TestMoveLayerSwapsNeighbours(t *testing.T) {
	t.Parallel()

	d := New()
	d.AddLayer()
	d.AddLayer()

	require.False(t, d.MoveLayer(1, -1), "already at top")
	require.False(t, d.MoveLayer(3, 1), "already at bottom")
	require.False(t, d.MoveLayer(2, 2), "only single steps")

	require.True(t, d.MoveLayer(1, 1))
	require.Equal(t, []int{2, 1, 3}, ids(d))

	require.True(t, d.MoveLayer(3, -1))
	require.Equal(t, []int{2, 3, 1}, ids(d))
}

func TestDuplicateLayerIsIndependent(t *testing.T) {
	t.Parallel()

	d := New()
	d.AddLayer()
	require.True(t, d.SetAngle(1, 45))
	require.True(t, d.SetRepeat(1, RepeatX))

	require.True(t, d.DuplicateLayer(1))
	require.Equal(t, []int{1, 3, 2}, ids(d))
	require.Equal(t, 3, d.ActiveID())

	original, _ := d.Layer(1)
	dup, _ := d.Layer(3)
	require.NotEqual(t, original.ID, dup.ID)
	original.ID = dup.ID
	require.Equal(t, original, dup, "field values must match")

	require.True(t, d.SetStopColor(3, 0, "#00ff00"))
	require.True(t, d.AddStop(3))

	original, _ = d.Layer(1)
	require.Equal(t, "#ff0000", original.Stops[0].Color)
	require.Len(t, original.Stops, 2)
}

func TestLayersReturnsCopies(t *testing.T) {
	t.Parallel()

	d := New()
	layers := d.Layers()
	layers[0].Stops[0].Color = "#123456"

	fresh, _ := d.Layer(1)
	require.Equal(t, "#ff0000", fresh.Stops[0].Color)
}

func TestAddStopSplitsLargestGap(t *testing.T) {
	t.Parallel()

	d := New()
	require.True(t, d.AddStop(1))

	l, _ := d.Layer(1)
	require.Len(t, l.Stops, 3)
	require.Equal(t, Stop{Color: NewStopColor, Opacity: 100, Position: 50}, l.Stops[1])

	require.True(t, d.AddStop(1))
	l, _ = d.Layer(1)
	require.Equal(t, []float64{0, 25, 50, 100}, positions(l))

	require.True(t, d.AddStop(1))
	l, _ = d.Layer(1)
	require.Equal(t, []float64{0, 25, 50, 75, 100}, positions(l))
}

func TestAddStopRoundsMidpoint(t *testing.T) {
	t.Parallel()

	d := New()
	require.True(t, d.SetStopPosition(1, 1, 33))
	require.True(t, d.AddStop(1))

	l, _ := d.Layer(1)
	// (0 + 33) / 2 = 16.5 rounds half up.
	require.Equal(t, []float64{0, 17, 33}, positions(l))
}

func TestAddStopTieBreaksOnFirstGap(t *testing.T) {
	t.Parallel()

	d := New()
	d.AddStop(1) // 0 50 100: two equal gaps
	require.True(t, d.AddStop(1))

	l, _ := d.Layer(1)
	require.Equal(t, []float64{0, 25, 50, 100}, positions(l))
}

func TestAddStopUsesStoredOrder(t *testing.T) {
	t.Parallel()

	d := New()
	// Stored order 100 then 0: the only gap is negative, so the first pair
	// is split at its midpoint.
	require.True(t, d.SetStopPosition(1, 0, 100))
	require.True(t, d.SetStopPosition(1, 1, 0))
	require.True(t, d.AddStop(1))

	l, _ := d.Layer(1)
	require.Equal(t, []float64{100, 50, 0}, positions(l))
}

func TestRemoveStopKeepsAtLeastTwo(t *testing.T) {
	t.Parallel()

	d := New()
	require.False(t, d.RemoveStop(1, 0))

	d.AddStop(1)
	require.False(t, d.RemoveStop(1, 5))
	require.False(t, d.RemoveStop(1, -1))
	require.True(t, d.RemoveStop(1, 1))

	l, _ := d.Layer(1)
	require.Equal(t, []float64{0, 100}, positions(l))
	require.False(t, d.RemoveStop(1, 0))
}

func TestSetKindSwitchesGeometry(t *testing.T) {
	t.Parallel()

	d := New()
	require.True(t, d.SetAngle(1, 90))

	require.True(t, d.SetKind(1, KindRepeatingLinear))
	l, _ := d.Layer(1)
	require.Equal(t, Linear{Angle: 90}, l.Geometry, "same family keeps geometry")
	require.True(t, l.Repeating)

	require.True(t, d.SetKind(1, KindRadial))
	l, _ = d.Layer(1)
	require.Equal(t, KindRadial, l.Kind())
	require.Equal(t, DefaultGeometry(FamilyRadial), l.Geometry)

	require.True(t, d.SetCenter(1, Center{X: 20, Y: 80}))
	require.True(t, d.SetKind(1, KindConic))
	l, _ = d.Layer(1)
	require.Equal(t, Conic{StartAngle: 0, Center: Center{X: 20, Y: 80}}, l.Geometry)

	require.False(t, d.SetKind(1, KindConic), "unchanged")
	require.False(t, d.SetKind(1, Kind("elliptic-gradient")))
}

func TestGeometrySettersRejectOtherFamilies(t *testing.T) {
	t.Parallel()

	d := New()
	require.False(t, d.SetShape(1, ShapeCircle))
	require.False(t, d.SetExtent(1, ExtentClosestSide))
	require.False(t, d.SetCenter(1, Center{X: 10, Y: 10}))
	require.False(t, d.SetStartAngle(1, 30))

	d.SetKind(1, KindRadial)
	require.False(t, d.SetAngle(1, 10))
	require.False(t, d.SetShape(1, Shape("square")))
	require.True(t, d.SetShape(1, ShapeCircle))
	require.True(t, d.SetExtent(1, ExtentClosestCorner))
}

func TestStopSettersValidateAndClamp(t *testing.T) {
	t.Parallel()

	d := New()
	require.False(t, d.SetStopColor(1, 0, "red"))
	require.True(t, d.SetStopColor(1, 0, "#ABC"))
	require.True(t, d.SetStopOpacity(1, 0, 140))
	require.True(t, d.SetStopPosition(1, 1, -10))
	require.False(t, d.SetStopOpacity(1, 9, 10))

	l, _ := d.Layer(1)
	require.Equal(t, Stop{Color: "#aabbcc", Opacity: 100, Position: 0}, l.Stops[0])
	require.Equal(t, 0.0, l.Stops[1].Position)
}

func TestPlacementSetters(t *testing.T) {
	t.Parallel()

	d := New()
	require.True(t, d.SetSize(1, Dimension{X: 50, Y: 25, Unit: UnitPixel}))
	require.True(t, d.SetOffset(1, Dimension{X: 10, Y: 20, Unit: UnitPercent}))
	require.False(t, d.SetSize(1, Dimension{X: 1, Y: 1, Unit: Unit("vw")}))
	require.False(t, d.SetRepeat(1, Repeat("space")))
	require.True(t, d.SetRepeat(1, RepeatY))

	l, _ := d.Layer(1)
	require.Equal(t, Dimension{X: 50, Y: 25, Unit: UnitPixel}, l.Size)
	require.Equal(t, RepeatY, l.Repeat)
	require.False(t, l.HasDefaultPlacement())
}

func TestReplaceLayersAssignsFreshIDs(t *testing.T) {
	t.Parallel()

	d := New()
	d.AddLayer()

	replacement := []Layer{DefaultLayer(), DefaultLayer()}
	replacement[1].Stops[0].Color = "#FFF"
	require.True(t, d.ReplaceLayers(replacement))
	require.Equal(t, []int{3, 4}, ids(d), "ids are never reused")
	require.Equal(t, 3, d.ActiveID())

	l, _ := d.Layer(4)
	require.Equal(t, "#ffffff", l.Stops[0].Color)

	require.False(t, d.ReplaceLayers(nil))
	bad := DefaultLayer()
	bad.Stops = bad.Stops[:1]
	require.False(t, d.ReplaceLayers([]Layer{bad}))
	require.Equal(t, []int{3, 4}, ids(d), "rejected replacement leaves document intact")
}

func TestInvariantsHoldUnderRandomOperations(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(7))
	d := New()
	seen := map[int]bool{1: true}
	maxID := 1

	for i := 0; i < 2000; i++ {
		layers := d.Layers()
		target := layers[rng.Intn(len(layers))]
		before := len(target.Stops)

		switch rng.Intn(7) {
		case 0:
			d.AddLayer()
		case 1:
			d.RemoveLayer(target.ID)
		case 2:
			d.MoveLayer(target.ID, []int{-1, 1}[rng.Intn(2)])
		case 3:
			d.DuplicateLayer(target.ID)
		case 4:
			if d.AddStop(target.ID) {
				after, _ := d.Layer(target.ID)
				require.Len(t, after.Stops, before+1)
			}
		case 5:
			d.RemoveStop(target.ID, rng.Intn(before+1))
		case 6:
			d.SetStopPosition(target.ID, rng.Intn(before), float64(rng.Intn(101)))
		}

		require.GreaterOrEqual(t, d.Len(), MinLayers)
		for _, l := range d.Layers() {
			require.GreaterOrEqual(t, len(l.Stops), MinStops)
			if !seen[l.ID] {
				require.Greater(t, l.ID, maxID, "new ids are monotonic")
				seen[l.ID] = true
				maxID = l.ID
			}
		}
		assert.NotEqual(t, -1, d.Index(d.ActiveID()), "active layer must exist")
	}
}

func ids(d *Document) []int {
	var out []int
	for _, l := range d.Layers() {
		out = append(out, l.ID)
	}
	return out
}

func positions(l Layer) []float64 {
	var out []float64
	for _, s := range l.Stops {
		out = append(out, s.Position)
	}
	return out
}
