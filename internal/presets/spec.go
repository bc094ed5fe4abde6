package presets

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/cssplay/internal/gradient"
	"github.com/alexisbeaulieu97/cssplay/internal/validation"
	cssplayerrors "github.com/alexisbeaulieu97/cssplay/pkg/errors"
)

// StopSpec is the serialised form of a gradient stop. Opacity defaults to
// 100 when omitted.
type StopSpec struct {
	Color    string   `yaml:"color" json:"color" validate:"required,css_hex"`
	Opacity  *float64 `yaml:"opacity,omitempty" json:"opacity,omitempty" validate:"omitempty,gte=0,lte=100"`
	Position float64  `yaml:"position" json:"position" validate:"gte=0,lte=100"`
}

// CenterSpec is a radial or conic center in percent.
type CenterSpec struct {
	X float64 `yaml:"x" json:"x" validate:"gte=0,lte=100"`
	Y float64 `yaml:"y" json:"y" validate:"gte=0,lte=100"`
}

// DimensionSpec is a background size or position. Unit defaults to "%".
type DimensionSpec struct {
	X    float64 `yaml:"x" json:"x" validate:"finite"`
	Y    float64 `yaml:"y" json:"y" validate:"finite"`
	Unit string  `yaml:"unit,omitempty" json:"unit,omitempty" validate:"omitempty,oneof=% px"`
}

// LayerSpec is the serialised form of a gradient layer. Geometry fields
// that do not belong to Kind are ignored; omitted placement falls back to
// full coverage.
type LayerSpec struct {
	Kind       string         `yaml:"kind" json:"kind" validate:"required,oneof=linear-gradient radial-gradient conic-gradient repeating-linear-gradient repeating-radial-gradient repeating-conic-gradient"`
	Angle      *float64       `yaml:"angle,omitempty" json:"angle,omitempty" validate:"omitempty,gte=0,lte=360"`
	Shape      string         `yaml:"shape,omitempty" json:"shape,omitempty" validate:"omitempty,oneof=ellipse circle"`
	Extent     string         `yaml:"extent,omitempty" json:"extent,omitempty" validate:"omitempty,oneof=farthest-corner closest-side closest-corner farthest-side"`
	Center     *CenterSpec    `yaml:"center,omitempty" json:"center,omitempty"`
	StartAngle float64        `yaml:"start_angle,omitempty" json:"start_angle,omitempty" validate:"gte=0,lte=360"`
	Stops      []StopSpec     `yaml:"stops" json:"stops" validate:"min=2,dive"`
	Size       *DimensionSpec `yaml:"size,omitempty" json:"size,omitempty"`
	Offset     *DimensionSpec `yaml:"offset,omitempty" json:"offset,omitempty"`
	Repeat     string         `yaml:"repeat,omitempty" json:"repeat,omitempty" validate:"omitempty,oneof=no-repeat repeat repeat-x repeat-y"`
}

// DocumentSpec is a whole gradient document, as read by "cssplay gradient
// --file" and posted to the HTTP API.
type DocumentSpec struct {
	Layers []LayerSpec `yaml:"layers" json:"layers" validate:"min=1,dive"`
}

// Layer converts the spec into a model layer.
func (s LayerSpec) Layer() (gradient.Layer, error) {
	kind, ok := gradient.ParseKind(s.Kind)
	if !ok {
		return gradient.Layer{}, fmt.Errorf("unknown gradient kind %q", s.Kind)
	}

	l := gradient.DefaultLayer()
	l.Repeating = kind.Repeating()

	switch geo := gradient.DefaultGeometry(kind.Family()).(type) {
	case gradient.Linear:
		if s.Angle != nil {
			geo.Angle = *s.Angle
		}
		l.Geometry = geo
	case gradient.Radial:
		if s.Shape != "" {
			geo.Shape = gradient.Shape(s.Shape)
		}
		if s.Extent != "" {
			geo.Extent = gradient.Extent(s.Extent)
		}
		if s.Center != nil {
			geo.Center = gradient.Center{X: s.Center.X, Y: s.Center.Y}
		}
		l.Geometry = geo
	case gradient.Conic:
		geo.StartAngle = s.StartAngle
		if s.Center != nil {
			geo.Center = gradient.Center{X: s.Center.X, Y: s.Center.Y}
		}
		l.Geometry = geo
	}

	l.Stops = make([]gradient.Stop, len(s.Stops))
	for i, st := range s.Stops {
		opacity := 100.0
		if st.Opacity != nil {
			opacity = *st.Opacity
		}
		l.Stops[i] = gradient.Stop{Color: st.Color, Opacity: opacity, Position: st.Position}
	}

	if s.Size != nil {
		l.Size = s.Size.dimension()
	}
	if s.Offset != nil {
		l.Offset = s.Offset.dimension()
	}
	if s.Repeat != "" {
		l.Repeat = gradient.Repeat(s.Repeat)
	}
	return l, nil
}

func (d DimensionSpec) dimension() gradient.Dimension {
	unit := gradient.Unit(d.Unit)
	if unit == "" {
		unit = gradient.UnitPercent
	}
	return gradient.Dimension{X: d.X, Y: d.Y, Unit: unit}
}

// Build converts every layer of the document.
func (d DocumentSpec) Build() ([]gradient.Layer, error) {
	out := make([]gradient.Layer, 0, len(d.Layers))
	for i, spec := range d.Layers {
		l, err := spec.Layer()
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
		out = append(out, l)
	}
	return out, nil
}

// Document builds a fresh gradient document from the spec.
func (d DocumentSpec) Document() (*gradient.Document, error) {
	layers, err := d.Build()
	if err != nil {
		return nil, err
	}
	doc := gradient.New()
	if !doc.ReplaceLayers(layers) {
		return nil, fmt.Errorf("document rejected: every layer needs at least %d valid stops", gradient.MinStops)
	}
	return doc, nil
}

// SpecFromLayer converts a model layer into its serialised form.
func SpecFromLayer(l gradient.Layer) LayerSpec {
	spec := LayerSpec{Kind: string(l.Kind())}

	switch geo := l.Geometry.(type) {
	case gradient.Linear:
		angle := geo.Angle
		spec.Angle = &angle
	case gradient.Radial:
		spec.Shape = string(geo.Shape)
		spec.Extent = string(geo.Extent)
		spec.Center = &CenterSpec{X: geo.Center.X, Y: geo.Center.Y}
	case gradient.Conic:
		spec.StartAngle = geo.StartAngle
		spec.Center = &CenterSpec{X: geo.Center.X, Y: geo.Center.Y}
	}

	spec.Stops = make([]StopSpec, len(l.Stops))
	for i, st := range l.Stops {
		opacity := st.Opacity
		spec.Stops[i] = StopSpec{Color: st.Color, Opacity: &opacity, Position: st.Position}
	}

	if !l.HasDefaultPlacement() {
		spec.Size = &DimensionSpec{X: l.Size.X, Y: l.Size.Y, Unit: string(l.Size.Unit)}
		spec.Offset = &DimensionSpec{X: l.Offset.X, Y: l.Offset.Y, Unit: string(l.Offset.Unit)}
		spec.Repeat = string(l.Repeat)
	}
	return spec
}

// SpecFromDocument converts every layer of doc.
func SpecFromDocument(doc *gradient.Document) DocumentSpec {
	layers := doc.Layers()
	out := DocumentSpec{Layers: make([]LayerSpec, len(layers))}
	for i, l := range layers {
		out.Layers[i] = SpecFromLayer(l)
	}
	return out
}

// ParseDocument decodes and validates a gradient document. JSON input is
// accepted as well since it is valid YAML. path is only used in errors.
func ParseDocument(path string, data []byte) (DocumentSpec, error) {
	var spec DocumentSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return DocumentSpec{}, cssplayerrors.NewParseError(path, extractLine(err), err)
	}
	if err := validation.Struct("gradient", spec); err != nil {
		return DocumentSpec{}, err
	}
	if _, err := spec.Build(); err != nil {
		return DocumentSpec{}, cssplayerrors.NewValidationError("gradient.layers", err.Error(), err)
	}
	return spec, nil
}

// LoadDocument reads and parses a gradient document file.
func LoadDocument(path string) (DocumentSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DocumentSpec{}, cssplayerrors.NewParseError(path, 0, err)
	}
	return ParseDocument(path, data)
}
