package tui

import (
	"strconv"

	"github.com/alexisbeaulieu97/cssplay/internal/binding"
	"github.com/alexisbeaulieu97/cssplay/internal/effects"
	"github.com/alexisbeaulieu97/cssplay/internal/gradient"
)

var (
	angleRange   = binding.Range{Min: 0, Max: 360, Step: 1}
	percentRange = binding.Range{Min: 0, Max: 100, Step: 1}
	sizeRange    = binding.Range{Min: 1, Max: 200, Step: 1}
)

// control is one editable row of the focused editor.
type control struct {
	key     string
	label   string
	kind    effects.FieldKind
	rng     binding.Range
	choices []string
	value   string
	set     func(string) bool
}

// controls lists the rows of the current editor. For the gradient editor
// only the active layer and the selected stop are expanded.
func (m *Model) controls() []control {
	editor := m.editor()
	if editor == effects.EditorGradient {
		return m.gradientControls()
	}

	fields, err := m.session.Fields(editor)
	if err != nil {
		return nil
	}
	out := make([]control, 0, len(fields))
	for _, f := range fields {
		key := f.Key
		value, _ := m.session.Field(editor, key)
		out = append(out, control{
			key:     key,
			label:   f.Label,
			kind:    f.Kind,
			rng:     f.Range,
			choices: f.Choices,
			value:   value,
			set: func(v string) bool {
				return m.session.SetField(m.ctx, editor, key, v)
			},
		})
	}
	return out
}

func (m *Model) gradientControls() []control {
	doc := m.session.Gradient()
	layer, ok := doc.Active()
	if !ok {
		return nil
	}
	id := layer.ID
	dispatch := func(cmd gradient.Command) bool { return m.session.Dispatch(m.ctx, cmd) }
	number := func(key, label string, r binding.Range, v float64, build func(float64) gradient.Command) control {
		return control{
			key: key, label: label, kind: effects.FieldNumber, rng: r,
			value: binding.FormatNumber(v),
			set: func(s string) bool {
				f, ok := binding.ParseNumber(s)
				if !ok {
					return false
				}
				return dispatch(build(r.Clamp(f)))
			},
		}
	}
	choice := func(key, label, value string, choices []string, build func(string) gradient.Command) control {
		return control{
			key: key, label: label, kind: effects.FieldChoice, choices: choices, value: value,
			set: func(s string) bool { return dispatch(build(s)) },
		}
	}

	kinds := make([]string, 0, len(gradient.Kinds()))
	for _, k := range gradient.Kinds() {
		kinds = append(kinds, string(k))
	}
	out := []control{
		choice("kind", "Type", string(layer.Kind()), kinds, func(s string) gradient.Command {
			return gradient.SetKind{LayerID: id, Kind: gradient.Kind(s)}
		}),
	}

	center := func(c gradient.Center) []control {
		return []control{
			number("center_x", "Center X", percentRange, c.X, func(v float64) gradient.Command {
				return gradient.SetCenter{LayerID: id, Center: gradient.Center{X: v, Y: c.Y}}
			}),
			number("center_y", "Center Y", percentRange, c.Y, func(v float64) gradient.Command {
				return gradient.SetCenter{LayerID: id, Center: gradient.Center{X: c.X, Y: v}}
			}),
		}
	}

	switch geo := layer.Geometry.(type) {
	case gradient.Linear:
		out = append(out, number("angle", "Angle", angleRange, geo.Angle, func(v float64) gradient.Command {
			return gradient.SetAngle{LayerID: id, Degrees: v}
		}))
	case gradient.Radial:
		shapes := make([]string, 0, 2)
		for _, s := range gradient.Shapes() {
			shapes = append(shapes, string(s))
		}
		extents := make([]string, 0, 4)
		for _, e := range gradient.Extents() {
			extents = append(extents, string(e))
		}
		out = append(out,
			choice("shape", "Shape", string(geo.Shape), shapes, func(s string) gradient.Command {
				return gradient.SetShape{LayerID: id, Shape: gradient.Shape(s)}
			}),
			choice("extent", "Extent", string(geo.Extent), extents, func(s string) gradient.Command {
				return gradient.SetExtent{LayerID: id, Extent: gradient.Extent(s)}
			}),
		)
		out = append(out, center(geo.Center)...)
	case gradient.Conic:
		out = append(out, number("start_angle", "Start angle", angleRange, geo.StartAngle, func(v float64) gradient.Command {
			return gradient.SetStartAngle{LayerID: id, Degrees: v}
		}))
		out = append(out, center(geo.Center)...)
	}

	idx := m.stopIndex(layer)
	stop := layer.Stops[idx]
	prefix := "Stop " + strconv.Itoa(idx+1) + " "
	out = append(out,
		control{
			key: "stop_color", label: prefix + "color", kind: effects.FieldColor, value: stop.Color,
			set: func(s string) bool {
				return dispatch(gradient.SetStopColor{LayerID: id, Index: idx, Color: s})
			},
		},
		number("stop_opacity", prefix+"opacity", percentRange, stop.Opacity, func(v float64) gradient.Command {
			return gradient.SetStopOpacity{LayerID: id, Index: idx, Opacity: v}
		}),
		number("stop_position", prefix+"position", percentRange, stop.Position, func(v float64) gradient.Command {
			return gradient.SetStopPosition{LayerID: id, Index: idx, Position: v}
		}),
	)

	units := []string{string(gradient.UnitPercent), string(gradient.UnitPixel)}
	repeats := make([]string, 0, 4)
	for _, r := range gradient.Repeats() {
		repeats = append(repeats, string(r))
	}
	size, offset := layer.Size, layer.Offset
	out = append(out,
		number("size_x", "Size X", sizeRange, size.X, func(v float64) gradient.Command {
			return gradient.SetSize{LayerID: id, Size: gradient.Dimension{X: v, Y: size.Y, Unit: size.Unit}}
		}),
		number("size_y", "Size Y", sizeRange, size.Y, func(v float64) gradient.Command {
			return gradient.SetSize{LayerID: id, Size: gradient.Dimension{X: size.X, Y: v, Unit: size.Unit}}
		}),
		choice("size_unit", "Size unit", string(size.Unit), units, func(s string) gradient.Command {
			return gradient.SetSize{LayerID: id, Size: gradient.Dimension{X: size.X, Y: size.Y, Unit: gradient.Unit(s)}}
		}),
		number("offset_x", "Position X", percentRange, offset.X, func(v float64) gradient.Command {
			return gradient.SetOffset{LayerID: id, Offset: gradient.Dimension{X: v, Y: offset.Y, Unit: offset.Unit}}
		}),
		number("offset_y", "Position Y", percentRange, offset.Y, func(v float64) gradient.Command {
			return gradient.SetOffset{LayerID: id, Offset: gradient.Dimension{X: offset.X, Y: v, Unit: offset.Unit}}
		}),
		choice("repeat", "Repeat", string(layer.Repeat), repeats, func(s string) gradient.Command {
			return gradient.SetRepeat{LayerID: id, Repeat: gradient.Repeat(s)}
		}),
	)
	return out
}

// stopIndex clamps the selected stop to the layer.
func (m *Model) stopIndex(l gradient.Layer) int {
	if m.stop >= len(l.Stops) {
		m.stop = len(l.Stops) - 1
	}
	if m.stop < 0 {
		m.stop = 0
	}
	return m.stop
}

// seedInput fills the edit field with the control's current value. Colour
// rows mirror their swatch.
func (m *Model) seedInput(c control) {
	if c.kind == effects.FieldColor {
		binding.PushHexFromSwatch(binding.NewValue(c.value), &m.input, nil)
		return
	}
	m.input.SetValue(c.value)
}

// nudge moves the focused control one step (numbers) or one choice
// (choices, toggles). Colour and text rows only change through editing.
func (m *Model) nudge(c control, delta int) {
	switch c.kind {
	case effects.FieldNumber:
		v, ok := binding.ParseNumber(c.value)
		if !ok {
			v = c.rng.Min
		}
		slider := binding.NewValue(binding.FormatNumber(c.rng.Nudge(v, delta)))
		binding.PushFromContinuous(slider, &m.input, func(v float64) {
			c.set(binding.FormatNumber(v))
		})
	case effects.FieldChoice:
		if len(c.choices) == 0 {
			return
		}
		i := 0
		for j, ch := range c.choices {
			if ch == c.value {
				i = j
				break
			}
		}
		i = (i + delta + len(c.choices)) % len(c.choices)
		c.set(c.choices[i])
	case effects.FieldToggle:
		on, _ := strconv.ParseBool(c.value)
		c.set(strconv.FormatBool(!on))
	}
}

// commit applies the text input to the focused control. Unparseable
// numbers and malformed colours are dropped silently.
func (m *Model) commit(c control) bool {
	switch c.kind {
	case effects.FieldNumber:
		slider := binding.NewValue(c.value)
		return binding.PushFromText(&m.input, slider, c.rng, func(v float64) {
			c.set(binding.FormatNumber(v))
		})
	case effects.FieldColor:
		swatch := binding.NewValue(c.value)
		return binding.PushHexFromText(&m.input, swatch, func(hex string) {
			c.set(hex)
		})
	case effects.FieldToggle, effects.FieldChoice:
		return c.set(m.input.Value())
	default:
		c.set(m.input.Value())
		return true
	}
}
