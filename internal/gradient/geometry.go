package gradient

// Family is the geometric family of a gradient image.
type Family string

const (
	FamilyLinear Family = "linear"
	FamilyRadial Family = "radial"
	FamilyConic  Family = "conic"
)

// Kind is the CSS function name of a layer: a family, optionally repeating.
type Kind string

const (
	KindLinear          Kind = "linear-gradient"
	KindRadial          Kind = "radial-gradient"
	KindConic           Kind = "conic-gradient"
	KindRepeatingLinear Kind = "repeating-linear-gradient"
	KindRepeatingRadial Kind = "repeating-radial-gradient"
	KindRepeatingConic  Kind = "repeating-conic-gradient"
)

var kinds = []Kind{
	KindLinear,
	KindRadial,
	KindConic,
	KindRepeatingLinear,
	KindRepeatingRadial,
	KindRepeatingConic,
}

// Kinds lists every supported kind in selector order.
func Kinds() []Kind {
	return append([]Kind(nil), kinds...)
}

// ParseKind resolves a CSS function name into a Kind.
func ParseKind(s string) (Kind, bool) {
	for _, k := range kinds {
		if string(k) == s {
			return k, true
		}
	}
	return "", false
}

// KindOf composes a family and the repeating flag.
func KindOf(f Family, repeating bool) Kind {
	prefix := ""
	if repeating {
		prefix = "repeating-"
	}
	return Kind(prefix + string(f) + "-gradient")
}

// Family reports the geometric family of k.
func (k Kind) Family() Family {
	switch k {
	case KindRadial, KindRepeatingRadial:
		return FamilyRadial
	case KindConic, KindRepeatingConic:
		return FamilyConic
	default:
		return FamilyLinear
	}
}

// Repeating reports whether k is a repeating-* kind.
func (k Kind) Repeating() bool {
	switch k {
	case KindRepeatingLinear, KindRepeatingRadial, KindRepeatingConic:
		return true
	default:
		return false
	}
}

// Shape is the ending shape of a radial gradient.
type Shape string

const (
	ShapeEllipse Shape = "ellipse"
	ShapeCircle  Shape = "circle"
)

// Shapes lists the radial shapes in selector order.
func Shapes() []Shape { return []Shape{ShapeEllipse, ShapeCircle} }

// Valid reports whether s is a known shape.
func (s Shape) Valid() bool {
	return s == ShapeEllipse || s == ShapeCircle
}

// Extent is the size keyword of a radial gradient.
type Extent string

const (
	ExtentFarthestCorner Extent = "farthest-corner"
	ExtentClosestSide    Extent = "closest-side"
	ExtentClosestCorner  Extent = "closest-corner"
	ExtentFarthestSide   Extent = "farthest-side"
)

// Extents lists the radial extents in selector order.
func Extents() []Extent {
	return []Extent{ExtentFarthestCorner, ExtentClosestSide, ExtentClosestCorner, ExtentFarthestSide}
}

// Valid reports whether e is a known extent.
func (e Extent) Valid() bool {
	for _, known := range Extents() {
		if e == known {
			return true
		}
	}
	return false
}

// Center is a gradient center in percent of the box.
type Center struct {
	X float64
	Y float64
}

// Geometry holds the family-specific fields of a layer. It is implemented
// only by Linear, Radial and Conic, so a layer never carries fields of a
// family it does not belong to.
type Geometry interface {
	Family() Family
	geometry()
}

// Linear is the geometry of linear-gradient.
type Linear struct {
	Angle float64
}

// Radial is the geometry of radial-gradient.
type Radial struct {
	Shape  Shape
	Extent Extent
	Center Center
}

// Conic is the geometry of conic-gradient.
type Conic struct {
	StartAngle float64
	Center     Center
}

func (Linear) Family() Family { return FamilyLinear }
func (Radial) Family() Family { return FamilyRadial }
func (Conic) Family() Family  { return FamilyConic }

func (Linear) geometry() {}
func (Radial) geometry() {}
func (Conic) geometry()  {}

// DefaultGeometry returns the geometry a layer gets when it switches to f.
func DefaultGeometry(f Family) Geometry {
	switch f {
	case FamilyRadial:
		return Radial{Shape: ShapeEllipse, Extent: ExtentFarthestCorner, Center: Center{X: 50, Y: 50}}
	case FamilyConic:
		return Conic{StartAngle: 0, Center: Center{X: 50, Y: 50}}
	default:
		return Linear{Angle: 180}
	}
}

func centerOf(g Geometry) (Center, bool) {
	switch geo := g.(type) {
	case Radial:
		return geo.Center, true
	case Conic:
		return geo.Center, true
	default:
		return Center{}, false
	}
}

func withCenter(g Geometry, c Center) (Geometry, bool) {
	switch geo := g.(type) {
	case Radial:
		geo.Center = c
		return geo, true
	case Conic:
		geo.Center = c
		return geo, true
	default:
		return g, false
	}
}
