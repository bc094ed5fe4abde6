package gradient

import (
	"fmt"
	"strings"
)

// Command is one user action against a document. Commands are processed by
// Reduce; the set is closed to this package.
type Command interface {
	apply(d *Document) bool
}

// Reduce applies cmd to d and reports whether the document changed.
func Reduce(d *Document, cmd Command) bool {
	if d == nil || cmd == nil {
		return false
	}
	return cmd.apply(d)
}

// CommandName returns a short, log friendly name such as "add_stop".
func CommandName(cmd Command) string {
	name := fmt.Sprintf("%T", cmd)
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	var b strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}

type AddLayer struct{}

type RemoveLayer struct{ LayerID int }

type MoveLayer struct {
	LayerID   int
	Direction int
}

type DuplicateLayer struct{ LayerID int }

type SelectLayer struct{ LayerID int }

type AddStop struct{ LayerID int }

type RemoveStop struct {
	LayerID int
	Index   int
}

type SetKind struct {
	LayerID int
	Kind    Kind
}

type SetAngle struct {
	LayerID int
	Degrees float64
}

type SetShape struct {
	LayerID int
	Shape   Shape
}

type SetExtent struct {
	LayerID int
	Extent  Extent
}

type SetCenter struct {
	LayerID int
	Center  Center
}

type SetStartAngle struct {
	LayerID int
	Degrees float64
}

type SetStopColor struct {
	LayerID int
	Index   int
	Color   string
}

type SetStopOpacity struct {
	LayerID int
	Index   int
	Opacity float64
}

type SetStopPosition struct {
	LayerID  int
	Index    int
	Position float64
}

type SetSize struct {
	LayerID int
	Size    Dimension
}

type SetOffset struct {
	LayerID int
	Offset  Dimension
}

type SetRepeat struct {
	LayerID int
	Repeat  Repeat
}

// ReplaceLayers replaces the whole stack, as a preset does.
type ReplaceLayers struct{ Layers []Layer }

func (AddLayer) apply(d *Document) bool         { return d.AddLayer() }
func (c RemoveLayer) apply(d *Document) bool    { return d.RemoveLayer(c.LayerID) }
func (c MoveLayer) apply(d *Document) bool      { return d.MoveLayer(c.LayerID, c.Direction) }
func (c DuplicateLayer) apply(d *Document) bool { return d.DuplicateLayer(c.LayerID) }
func (c SelectLayer) apply(d *Document) bool    { return d.SelectLayer(c.LayerID) }
func (c AddStop) apply(d *Document) bool        { return d.AddStop(c.LayerID) }
func (c RemoveStop) apply(d *Document) bool     { return d.RemoveStop(c.LayerID, c.Index) }
func (c SetKind) apply(d *Document) bool        { return d.SetKind(c.LayerID, c.Kind) }
func (c SetAngle) apply(d *Document) bool       { return d.SetAngle(c.LayerID, c.Degrees) }
func (c SetShape) apply(d *Document) bool       { return d.SetShape(c.LayerID, c.Shape) }
func (c SetExtent) apply(d *Document) bool      { return d.SetExtent(c.LayerID, c.Extent) }
func (c SetCenter) apply(d *Document) bool      { return d.SetCenter(c.LayerID, c.Center) }
func (c SetStartAngle) apply(d *Document) bool  { return d.SetStartAngle(c.LayerID, c.Degrees) }
func (c SetStopColor) apply(d *Document) bool   { return d.SetStopColor(c.LayerID, c.Index, c.Color) }
func (c SetStopOpacity) apply(d *Document) bool {
	return d.SetStopOpacity(c.LayerID, c.Index, c.Opacity)
}
func (c SetStopPosition) apply(d *Document) bool {
	return d.SetStopPosition(c.LayerID, c.Index, c.Position)
}
func (c SetSize) apply(d *Document) bool       { return d.SetSize(c.LayerID, c.Size) }
func (c SetOffset) apply(d *Document) bool     { return d.SetOffset(c.LayerID, c.Offset) }
func (c SetRepeat) apply(d *Document) bool     { return d.SetRepeat(c.LayerID, c.Repeat) }
func (c ReplaceLayers) apply(d *Document) bool { return d.ReplaceLayers(c.Layers) }
