package effects

import (
	"fmt"

	"github.com/alexisbeaulieu97/cssplay/internal/binding"
	"github.com/alexisbeaulieu97/cssplay/internal/color"
	"github.com/alexisbeaulieu97/cssplay/internal/preview"
	"github.com/alexisbeaulieu97/cssplay/internal/validation"
)

// BorderStyle is a CSS border-style keyword.
type BorderStyle string

const (
	BorderNone   BorderStyle = "none"
	BorderSolid  BorderStyle = "solid"
	BorderDashed BorderStyle = "dashed"
	BorderDotted BorderStyle = "dotted"
	BorderDouble BorderStyle = "double"
	BorderGroove BorderStyle = "groove"
	BorderRidge  BorderStyle = "ridge"
	BorderInset  BorderStyle = "inset"
	BorderOutset BorderStyle = "outset"
)

// BorderStyles lists the styles in selector order.
func BorderStyles() []BorderStyle {
	return []BorderStyle{
		BorderNone, BorderSolid, BorderDashed, BorderDotted, BorderDouble,
		BorderGroove, BorderRidge, BorderInset, BorderOutset,
	}
}

// Valid reports whether s is a known border style.
func (s BorderStyle) Valid() bool {
	for _, known := range BorderStyles() {
		if s == known {
			return true
		}
	}
	return false
}

var (
	BorderWidthRange  = binding.Range{Min: 0, Max: 50, Step: 1}
	BorderRadiusRange = binding.Range{Min: 0, Max: 100, Step: 1}
)

// BorderPreviewBackground is the background of the border preview surface.
const BorderPreviewBackground = color.White

// Border is the border editor record.
type Border struct {
	Width  float64     `yaml:"width" json:"width" validate:"gte=0,lte=50"`
	Style  BorderStyle `yaml:"style" json:"style" validate:"required,oneof=none solid dashed dotted double groove ridge inset outset"`
	Color  string      `yaml:"color" json:"color" validate:"required,css_hex"`
	Radius float64     `yaml:"radius" json:"radius" validate:"gte=0,lte=100"`
}

// DefaultBorder returns the editor's starting state: 1px solid #1d1d1f.
func DefaultBorder() Border {
	return Border{Width: 1, Style: BorderSolid, Color: "#1d1d1f", Radius: 0}
}

func (b *Border) accessors() []accessor {
	styles := make([]string, 0, 9)
	for _, s := range BorderStyles() {
		styles = append(styles, string(s))
	}
	return []accessor{
		number("width", "Width", &b.Width, BorderWidthRange),
		{
			field: Field{Key: "style", Label: "Style", Kind: FieldChoice, Choices: styles},
			get:   func() string { return string(b.Style) },
			set: func(s string) bool {
				style := BorderStyle(s)
				if !style.Valid() {
					return false
				}
				b.Style = style
				return true
			},
		},
		hex("color", "Color", &b.Color),
		number("radius", "Radius", &b.Radius, BorderRadiusRange),
	}
}

// Name implements Editor.
func (b *Border) Name() string { return EditorBorder }

// Fields implements Editor.
func (b *Border) Fields() []Field { return fieldsOf(b.accessors()) }

// Get implements Editor.
func (b *Border) Get(key string) (string, bool) { return get(b.accessors(), key) }

// Set implements Editor.
func (b *Border) Set(key, value string) bool { return set(b.accessors(), key, value) }

// Validate checks the record against the control ranges.
func (b *Border) Validate() error { return validation.Struct(EditorBorder, b) }

// Normalize clamps numbers and canonicalises the colour.
func (b *Border) Normalize() {
	b.Width = BorderWidthRange.Clamp(b.Width)
	b.Radius = BorderRadiusRange.Clamp(b.Radius)
	b.Color = normalizeHex(b.Color, "#1d1d1f")
	if !b.Style.Valid() {
		b.Style = BorderSolid
	}
}

func (b *Border) value() string {
	return fmt.Sprintf("%s %s %s", px(b.Width), b.Style, b.Color)
}

// CSS renders the border and border-radius declarations.
func (b *Border) CSS() string {
	return fmt.Sprintf("border: %s;\nborder-radius: %s;", b.value(), px(b.Radius))
}

// Preview returns the preview style. The preview text colour follows the
// preview background, not the border colour.
func (b *Border) Preview() preview.Style {
	return preview.Style{
		"border":         b.value(),
		"border-radius":  px(b.Radius),
		"--preview-bg":   BorderPreviewBackground,
		"--preview-text": color.PickReadableText(BorderPreviewBackground),
	}
}
