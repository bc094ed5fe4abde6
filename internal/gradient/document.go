// Package gradient models a multi-layer CSS gradient: an ordered list of
// layers, each an ordered list of colour stops plus its background
// placement, and serialises it into background declarations.
//
// Every structural and field operation reports whether it changed the
// document. Operations that would break an invariant (fewer than one layer,
// fewer than two stops) or that do not apply to a layer are rejected as
// no-ops rather than errors.
package gradient

import (
	"math"

	"github.com/alexisbeaulieu97/cssplay/internal/color"
)

// Document is an ordered stack of layers; later layers paint on top.
type Document struct {
	layers   []*Layer
	activeID int
	nextID   int
}

// New returns a document holding a single default layer.
func New() *Document {
	d := &Document{nextID: 1}
	first := d.adopt(DefaultLayer())
	d.layers = []*Layer{first}
	d.activeID = first.ID
	return d
}

// adopt assigns a fresh id to a copy of l.
func (d *Document) adopt(l Layer) *Layer {
	out := l.Clone()
	out.ID = d.nextID
	d.nextID++
	return &out
}

// Len returns the number of layers.
func (d *Document) Len() int {
	return len(d.layers)
}

// Layers returns deep copies of the layers in paint order.
func (d *Document) Layers() []Layer {
	out := make([]Layer, len(d.layers))
	for i, l := range d.layers {
		out[i] = l.Clone()
	}
	return out
}

// Layer returns a copy of the layer with the given id.
func (d *Document) Layer(id int) (Layer, bool) {
	l := d.find(id)
	if l == nil {
		return Layer{}, false
	}
	return l.Clone(), true
}

// LayerAt returns a copy of the layer at index i.
func (d *Document) LayerAt(i int) (Layer, bool) {
	if i < 0 || i >= len(d.layers) {
		return Layer{}, false
	}
	return d.layers[i].Clone(), true
}

// Index returns the position of the layer with the given id, or -1.
func (d *Document) Index(id int) int {
	for i, l := range d.layers {
		if l.ID == id {
			return i
		}
	}
	return -1
}

// ActiveID returns the id of the layer that has UI focus.
func (d *Document) ActiveID() int {
	return d.activeID
}

// Active returns a copy of the active layer.
func (d *Document) Active() (Layer, bool) {
	return d.Layer(d.activeID)
}

// Clone returns an independent copy of the document, including its id
// counter.
func (d *Document) Clone() *Document {
	out := &Document{activeID: d.activeID, nextID: d.nextID, layers: make([]*Layer, len(d.layers))}
	for i, l := range d.layers {
		c := l.Clone()
		out.layers[i] = &c
	}
	return out
}

func (d *Document) find(id int) *Layer {
	for _, l := range d.layers {
		if l.ID == id {
			return l
		}
	}
	return nil
}

// AddLayer appends a default layer and makes it active.
func (d *Document) AddLayer() bool {
	l := d.adopt(DefaultLayer())
	d.layers = append(d.layers, l)
	d.activeID = l.ID
	return true
}

// RemoveLayer removes the layer unless it is the last one. When the active
// layer is removed the new first layer becomes active.
func (d *Document) RemoveLayer(id int) bool {
	if len(d.layers) <= MinLayers {
		return false
	}
	idx := d.Index(id)
	if idx < 0 {
		return false
	}
	d.layers = append(d.layers[:idx], d.layers[idx+1:]...)
	if d.activeID == id {
		d.activeID = d.layers[0].ID
	}
	return true
}

// MoveLayer swaps the layer with its neighbour: -1 moves it up (earlier),
// +1 down (later). Moving past either end is a no-op.
func (d *Document) MoveLayer(id, direction int) bool {
	if direction != -1 && direction != 1 {
		return false
	}
	idx := d.Index(id)
	if idx < 0 {
		return false
	}
	target := idx + direction
	if target < 0 || target >= len(d.layers) {
		return false
	}
	d.layers[idx], d.layers[target] = d.layers[target], d.layers[idx]
	return true
}

// DuplicateLayer inserts a deep copy of the layer right after it under a
// fresh id and makes the copy active.
func (d *Document) DuplicateLayer(id int) bool {
	idx := d.Index(id)
	if idx < 0 {
		return false
	}
	dup := d.adopt(*d.layers[idx])
	d.layers = append(d.layers, nil)
	copy(d.layers[idx+2:], d.layers[idx+1:])
	d.layers[idx+1] = dup
	d.activeID = dup.ID
	return true
}

// SelectLayer gives the layer UI focus.
func (d *Document) SelectLayer(id int) bool {
	if d.find(id) == nil || d.activeID == id {
		return false
	}
	d.activeID = id
	return true
}

// AddStop splits the widest gap between consecutive stops, comparing stops
// in stored order, and inserts a neutral stop at the rounded midpoint right
// after the earlier stop. The first of equally wide gaps wins; when no gap
// is positive the first pair is split.
func (d *Document) AddStop(layerID int) bool {
	l := d.find(layerID)
	if l == nil || len(l.Stops) < MinStops {
		return false
	}
	maxGap, gapIdx := 0.0, 0
	for i := 0; i < len(l.Stops)-1; i++ {
		gap := l.Stops[i+1].Position - l.Stops[i].Position
		if gap > maxGap {
			maxGap = gap
			gapIdx = i
		}
	}
	pos := roundHalfUp((l.Stops[gapIdx].Position + l.Stops[gapIdx+1].Position) / 2)
	stop := Stop{Color: NewStopColor, Opacity: 100, Position: pos}

	stops := make([]Stop, 0, len(l.Stops)+1)
	stops = append(stops, l.Stops[:gapIdx+1]...)
	stops = append(stops, stop)
	stops = append(stops, l.Stops[gapIdx+1:]...)
	l.Stops = stops
	return true
}

// RemoveStop removes the stop at index unless only two stops remain.
func (d *Document) RemoveStop(layerID, index int) bool {
	l := d.find(layerID)
	if l == nil || len(l.Stops) <= MinStops {
		return false
	}
	if index < 0 || index >= len(l.Stops) {
		return false
	}
	l.Stops = append(l.Stops[:index], l.Stops[index+1:]...)
	return true
}

// SetKind switches the layer's kind. Within a family only the repeating
// flag changes; switching family installs that family's default geometry,
// keeping the center between radial and conic.
func (d *Document) SetKind(layerID int, kind Kind) bool {
	l := d.find(layerID)
	if l == nil {
		return false
	}
	if _, ok := ParseKind(string(kind)); !ok {
		return false
	}
	if l.Kind() == kind {
		return false
	}
	l.Repeating = kind.Repeating()
	if l.Geometry != nil && l.Geometry.Family() == kind.Family() {
		return true
	}
	next := DefaultGeometry(kind.Family())
	if c, ok := centerOf(l.Geometry); ok {
		if moved, ok := withCenter(next, c); ok {
			next = moved
		}
	}
	l.Geometry = next
	return true
}

// SetAngle sets the angle of a linear layer.
func (d *Document) SetAngle(layerID int, degrees float64) bool {
	l := d.find(layerID)
	if l == nil {
		return false
	}
	geo, ok := l.Geometry.(Linear)
	if !ok {
		return false
	}
	geo.Angle = degrees
	l.Geometry = geo
	return true
}

// SetShape sets the ending shape of a radial layer.
func (d *Document) SetShape(layerID int, shape Shape) bool {
	l := d.find(layerID)
	if l == nil || !shape.Valid() {
		return false
	}
	geo, ok := l.Geometry.(Radial)
	if !ok {
		return false
	}
	geo.Shape = shape
	l.Geometry = geo
	return true
}

// SetExtent sets the size keyword of a radial layer.
func (d *Document) SetExtent(layerID int, extent Extent) bool {
	l := d.find(layerID)
	if l == nil || !extent.Valid() {
		return false
	}
	geo, ok := l.Geometry.(Radial)
	if !ok {
		return false
	}
	geo.Extent = extent
	l.Geometry = geo
	return true
}

// SetCenter sets the center of a radial or conic layer.
func (d *Document) SetCenter(layerID int, center Center) bool {
	l := d.find(layerID)
	if l == nil {
		return false
	}
	center = Center{X: clampPercent(center.X), Y: clampPercent(center.Y)}
	geo, ok := withCenter(l.Geometry, center)
	if !ok {
		return false
	}
	l.Geometry = geo
	return true
}

// SetStartAngle sets the start angle of a conic layer.
func (d *Document) SetStartAngle(layerID int, degrees float64) bool {
	l := d.find(layerID)
	if l == nil {
		return false
	}
	geo, ok := l.Geometry.(Conic)
	if !ok {
		return false
	}
	geo.StartAngle = degrees
	l.Geometry = geo
	return true
}

func (d *Document) stop(layerID, index int) *Stop {
	l := d.find(layerID)
	if l == nil || index < 0 || index >= len(l.Stops) {
		return nil
	}
	return &l.Stops[index]
}

// SetStopColor sets a stop colour. Invalid hex is ignored.
func (d *Document) SetStopColor(layerID, index int, hex string) bool {
	s := d.stop(layerID, index)
	if s == nil {
		return false
	}
	normalized, err := color.NormalizeHex(hex)
	if err != nil {
		return false
	}
	s.Color = normalized
	return true
}

// SetStopOpacity sets a stop opacity, clamped to [0, 100].
func (d *Document) SetStopOpacity(layerID, index int, opacity float64) bool {
	s := d.stop(layerID, index)
	if s == nil {
		return false
	}
	s.Opacity = clampPercent(opacity)
	return true
}

// SetStopPosition sets a stop position, clamped to [0, 100]. Stops are not
// re-sorted.
func (d *Document) SetStopPosition(layerID, index int, position float64) bool {
	s := d.stop(layerID, index)
	if s == nil {
		return false
	}
	s.Position = clampPercent(position)
	return true
}

// SetSize sets the background size of a layer.
func (d *Document) SetSize(layerID int, size Dimension) bool {
	l := d.find(layerID)
	if l == nil || !size.Unit.Valid() {
		return false
	}
	l.Size = size
	return true
}

// SetOffset sets the background position of a layer.
func (d *Document) SetOffset(layerID int, offset Dimension) bool {
	l := d.find(layerID)
	if l == nil || !offset.Unit.Valid() {
		return false
	}
	l.Offset = offset
	return true
}

// SetRepeat sets the background repeat mode of a layer.
func (d *Document) SetRepeat(layerID int, repeat Repeat) bool {
	l := d.find(layerID)
	if l == nil || !repeat.Valid() {
		return false
	}
	l.Repeat = repeat
	return true
}

// ReplaceLayers swaps the whole stack for the given layers, as applying a
// preset does. Layers receive fresh ids and the first becomes active. The
// replacement is rejected when it is empty or any layer is invalid.
func (d *Document) ReplaceLayers(layers []Layer) bool {
	if len(layers) < MinLayers {
		return false
	}
	next := make([]*Layer, 0, len(layers))
	for _, l := range layers {
		candidate := l.Clone()
		if !candidate.normalize() {
			return false
		}
		next = append(next, &candidate)
	}
	for _, l := range next {
		l.ID = d.nextID
		d.nextID++
	}
	d.layers = next
	d.activeID = next[0].ID
	return true
}

func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}
