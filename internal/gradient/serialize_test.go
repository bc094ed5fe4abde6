package gradient

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializeDocumentDefaultIsShorthand(t *testing.T) {
	t.Parallel()

	require.Equal(t,
		"background: linear-gradient(180deg, rgba(255, 0, 0, 1) 0%, rgba(0, 0, 255, 1) 100%);",
		SerializeDocument(New()))
}

func TestSerializeDocumentLonghandForMultipleLayers(t *testing.T) {
	t.Parallel()

	d := New()
	d.AddLayer()
	require.True(t, d.SetOffset(2, Dimension{X: 60, Y: 0, Unit: UnitPercent}))

	want := strings.Join([]string{
		"background-image:",
		"  linear-gradient(180deg, rgba(255, 0, 0, 1) 0%, rgba(0, 0, 255, 1) 100%),",
		"  linear-gradient(180deg, rgba(255, 0, 0, 1) 0%, rgba(0, 0, 255, 1) 100%);",
		"background-size: 100% 100%, 100% 100%;",
		"background-position: 0% 0%, 60% 0%;",
		"background-repeat: no-repeat, no-repeat;",
	}, "\n")
	require.Equal(t, want, SerializeDocument(d))
}

func TestSerializeDocumentLonghandForSingleCustomLayer(t *testing.T) {
	t.Parallel()

	d := New()
	require.True(t, d.SetRepeat(1, RepeatBoth))
	require.True(t, d.SetSize(1, Dimension{X: 20, Y: 20, Unit: UnitPixel}))

	css := SerializeDocument(d)
	assert.True(t, strings.HasPrefix(css, "background-image:\n  linear-gradient("))
	assert.Contains(t, css, "background-size: 20px 20px;")
	assert.Contains(t, css, "background-repeat: repeat;")
}

func TestSerializeDocumentShorthandIgnoresOffsetUnit(t *testing.T) {
	t.Parallel()

	d := New()
	require.True(t, d.SetOffset(1, Dimension{X: 0, Y: 0, Unit: UnitPixel}))
	require.True(t, strings.HasPrefix(SerializeDocument(d), "background: "))
}

func TestSerializeGeometries(t *testing.T) {
	t.Parallel()

	stops := []Stop{
		{Color: "#ffd700", Opacity: 100, Position: 0},
		{Color: "#1a1a2e", Opacity: 50, Position: 100},
	}
	tests := []struct {
		name  string
		layer Layer
		want  string
	}{
		{
			name:  "linear",
			layer: Layer{Geometry: Linear{Angle: 135}, Stops: stops},
			want:  "linear-gradient(135deg, rgba(255, 215, 0, 1) 0%, rgba(26, 26, 46, 0.5) 100%)",
		},
		{
			name:  "repeating linear",
			layer: Layer{Repeating: true, Geometry: Linear{Angle: 45.5}, Stops: stops},
			want:  "repeating-linear-gradient(45.5deg, rgba(255, 215, 0, 1) 0%, rgba(26, 26, 46, 0.5) 100%)",
		},
		{
			name: "radial",
			layer: Layer{Geometry: Radial{
				Shape: ShapeCircle, Extent: ExtentFarthestCorner, Center: Center{X: 50, Y: 50},
			}, Stops: stops},
			want: "radial-gradient(circle farthest-corner at 50% 50%, rgba(255, 215, 0, 1) 0%, rgba(26, 26, 46, 0.5) 100%)",
		},
		{
			name:  "repeating conic",
			layer: Layer{Repeating: true, Geometry: Conic{StartAngle: 90, Center: Center{X: 25, Y: 75}}, Stops: stops},
			want:  "repeating-conic-gradient(from 90deg at 25% 75%, rgba(255, 215, 0, 1) 0%, rgba(26, 26, 46, 0.5) 100%)",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, Serialize(tt.layer))
		})
	}
}

func TestSerializeKeepsStoredStopOrder(t *testing.T) {
	t.Parallel()

	l := DefaultLayer()
	l.Stops[0].Position = 80
	l.Stops[1].Position = 20
	require.Equal(t,
		"linear-gradient(180deg, rgba(255, 0, 0, 1) 80%, rgba(0, 0, 255, 1) 20%)",
		Serialize(l))
}

func TestSerializeStopFallsBackForInvalidColor(t *testing.T) {
	t.Parallel()

	require.Equal(t, "rgba(0, 0, 0, 0.4) 10%", SerializeStop(Stop{Color: "oops", Opacity: 40, Position: 10}))
}

func TestPreviewStyle(t *testing.T) {
	t.Parallel()

	d := New()
	d.AddLayer()
	style := PreviewStyle(d)

	assert.Equal(t, "none", style.Get("border"))
	assert.Equal(t, "12px", style.Get("border-radius"))
	assert.Equal(t, "100% 100%, 100% 100%", style.Get("background-size"))
	assert.Equal(t, "no-repeat, no-repeat", style.Get("background-repeat"))
	assert.Equal(t, 1, strings.Count(style.Get("background-image"), "), linear"))
}
