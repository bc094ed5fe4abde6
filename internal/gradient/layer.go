package gradient

import (
	"github.com/alexisbeaulieu97/cssplay/internal/color"
)

const (
	// MinLayers is the smallest number of layers a document may hold.
	MinLayers = 1
	// MinStops is the smallest number of stops a layer may hold.
	MinStops = 2
	// NewStopColor is the colour given to stops created by AddStop.
	NewStopColor = "#888888"
)

// Unit is the length unit of placement fields.
type Unit string

const (
	UnitPercent Unit = "%"
	UnitPixel   Unit = "px"
)

// Valid reports whether u is a supported unit.
func (u Unit) Valid() bool {
	return u == UnitPercent || u == UnitPixel
}

// Repeat is a background-repeat keyword.
type Repeat string

const (
	RepeatNone Repeat = "no-repeat"
	RepeatBoth Repeat = "repeat"
	RepeatX    Repeat = "repeat-x"
	RepeatY    Repeat = "repeat-y"
)

// Repeats lists the repeat modes in selector order.
func Repeats() []Repeat {
	return []Repeat{RepeatNone, RepeatBoth, RepeatX, RepeatY}
}

// Valid reports whether r is a known repeat mode.
func (r Repeat) Valid() bool {
	for _, known := range Repeats() {
		if r == known {
			return true
		}
	}
	return false
}

// Dimension is an x/y pair sharing one unit, used for background size and
// background position.
type Dimension struct {
	X    float64
	Y    float64
	Unit Unit
}

// Stop is a colour anchored at a percentage position.
type Stop struct {
	Color    string
	Opacity  float64
	Position float64
}

// Layer is one gradient image plus its background placement.
type Layer struct {
	ID        int
	Repeating bool
	Geometry  Geometry
	Stops     []Stop
	Size      Dimension
	Offset    Dimension
	Repeat    Repeat
}

// DefaultLayer returns the red-to-blue, full coverage linear layer every new
// document and every added layer starts from. ID is left zero.
func DefaultLayer() Layer {
	return Layer{
		Geometry: Linear{Angle: 180},
		Stops: []Stop{
			{Color: "#ff0000", Opacity: 100, Position: 0},
			{Color: "#0000ff", Opacity: 100, Position: 100},
		},
		Size:   Dimension{X: 100, Y: 100, Unit: UnitPercent},
		Offset: Dimension{X: 0, Y: 0, Unit: UnitPercent},
		Repeat: RepeatNone,
	}
}

// Kind returns the CSS function name of the layer.
func (l Layer) Kind() Kind {
	family := FamilyLinear
	if l.Geometry != nil {
		family = l.Geometry.Family()
	}
	return KindOf(family, l.Repeating)
}

// Clone returns a deep copy; the stop slice is never shared.
func (l Layer) Clone() Layer {
	out := l
	out.Stops = append([]Stop(nil), l.Stops...)
	return out
}

// HasDefaultPlacement reports whether the layer covers the whole box once:
// size 100% 100%, offset 0 0 and no-repeat.
func (l Layer) HasDefaultPlacement() bool {
	return l.Size.X == 100 && l.Size.Y == 100 && l.Size.Unit == UnitPercent &&
		l.Offset.X == 0 && l.Offset.Y == 0 &&
		l.Repeat == RepeatNone
}

// normalize canonicalises stop colours and fills zero-valued placement
// fields. It reports false when the layer cannot satisfy the model
// invariants.
func (l *Layer) normalize() bool {
	if len(l.Stops) < MinStops {
		return false
	}
	if l.Geometry == nil {
		l.Geometry = DefaultGeometry(FamilyLinear)
	}
	if radial, ok := l.Geometry.(Radial); ok && (!radial.Shape.Valid() || !radial.Extent.Valid()) {
		return false
	}
	for i := range l.Stops {
		hex, err := color.NormalizeHex(l.Stops[i].Color)
		if err != nil {
			return false
		}
		l.Stops[i].Color = hex
		l.Stops[i].Opacity = clampPercent(l.Stops[i].Opacity)
		l.Stops[i].Position = clampPercent(l.Stops[i].Position)
	}
	if l.Size.Unit == "" {
		l.Size.Unit = UnitPercent
	}
	if l.Offset.Unit == "" {
		l.Offset.Unit = UnitPercent
	}
	if l.Repeat == "" {
		l.Repeat = RepeatNone
	}
	return l.Size.Unit.Valid() && l.Offset.Unit.Valid() && l.Repeat.Valid()
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
