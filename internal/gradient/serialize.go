package gradient

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/cssplay/internal/color"
	"github.com/alexisbeaulieu97/cssplay/internal/preview"
)

// Serialize renders one layer as a CSS image value, stops in stored order.
func Serialize(l Layer) string {
	stops := serializeStops(l.Stops)
	kind := l.Kind()

	switch geo := l.Geometry.(type) {
	case Radial:
		return fmt.Sprintf("%s(%s %s at %s%% %s%%, %s)",
			kind, geo.Shape, geo.Extent, num(geo.Center.X), num(geo.Center.Y), stops)
	case Conic:
		return fmt.Sprintf("%s(from %sdeg at %s%% %s%%, %s)",
			kind, num(geo.StartAngle), num(geo.Center.X), num(geo.Center.Y), stops)
	case Linear:
		return fmt.Sprintf("%s(%sdeg, %s)", kind, num(geo.Angle), stops)
	default:
		return ""
	}
}

// SerializeStop renders a stop as "<rgba> <position>%".
func SerializeStop(s Stop) string {
	rgba, err := color.ToRGBA(s.Color, s.Opacity)
	if err != nil {
		rgba = fmt.Sprintf("rgba(0, 0, 0, %s)", num(clampPercent(s.Opacity)/100))
	}
	return rgba + " " + num(s.Position) + "%"
}

func serializeStops(stops []Stop) string {
	parts := make([]string, len(stops))
	for i, s := range stops {
		parts[i] = SerializeStop(s)
	}
	return strings.Join(parts, ", ")
}

func serializeDimension(d Dimension) string {
	return num(d.X) + string(d.Unit) + " " + num(d.Y) + string(d.Unit)
}

type longhands struct {
	images    []string
	sizes     []string
	positions []string
	repeats   []string
}

func collect(layers []Layer) longhands {
	var out longhands
	for _, l := range layers {
		out.images = append(out.images, Serialize(l))
		out.sizes = append(out.sizes, serializeDimension(l.Size))
		out.positions = append(out.positions, serializeDimension(l.Offset))
		out.repeats = append(out.repeats, string(l.Repeat))
	}
	return out
}

// SerializeDocument renders the CSS text for the document. A single layer
// with default placement collapses into a "background:" shorthand; anything
// else emits four longhand declarations with one entry per layer.
func SerializeDocument(d *Document) string {
	if d == nil {
		return ""
	}
	layers := d.Layers()
	parts := collect(layers)

	if len(layers) == 1 && layers[0].HasDefaultPlacement() {
		return "background: " + parts.images[0] + ";"
	}

	var b strings.Builder
	b.WriteString("background-image:\n  ")
	b.WriteString(strings.Join(parts.images, ",\n  "))
	b.WriteString(";\n")
	b.WriteString("background-size: " + strings.Join(parts.sizes, ", ") + ";\n")
	b.WriteString("background-position: " + strings.Join(parts.positions, ", ") + ";\n")
	b.WriteString("background-repeat: " + strings.Join(parts.repeats, ", ") + ";")
	return b.String()
}

// PreviewStyle returns the background properties applied to the preview
// surface.
func PreviewStyle(d *Document) preview.Style {
	if d == nil {
		return preview.Style{}
	}
	parts := collect(d.Layers())
	return preview.Style{
		"background-image":    strings.Join(parts.images, ", "),
		"background-size":     strings.Join(parts.sizes, ", "),
		"background-position": strings.Join(parts.positions, ", "),
		"background-repeat":   strings.Join(parts.repeats, ", "),
		"border":              "none",
		"border-radius":       "12px",
	}
}

func num(v float64) string {
	return color.FormatNumber(v)
}
