package effects

import (
	"fmt"

	"github.com/alexisbeaulieu97/cssplay/internal/binding"
	"github.com/alexisbeaulieu97/cssplay/internal/color"
	"github.com/alexisbeaulieu97/cssplay/internal/preview"
	"github.com/alexisbeaulieu97/cssplay/internal/validation"
)

var (
	ShadowOffsetRange    = binding.Range{Min: -50, Max: 50, Step: 1}
	BoxShadowBlurRange   = binding.Range{Min: 0, Max: 100, Step: 1}
	BoxShadowSpreadRange = binding.Range{Min: -50, Max: 50, Step: 1}
	BoxShadowRadiusRange = binding.Range{Min: 0, Max: 100, Step: 1}
	OpacityRange         = binding.Range{Min: 0, Max: 100, Step: 1}
)

// BoxShadow is the box-shadow editor record.
type BoxShadow struct {
	Horizontal float64 `yaml:"horizontal" json:"horizontal" validate:"gte=-50,lte=50"`
	Vertical   float64 `yaml:"vertical" json:"vertical" validate:"gte=-50,lte=50"`
	Blur       float64 `yaml:"blur" json:"blur" validate:"gte=0,lte=100"`
	Spread     float64 `yaml:"spread" json:"spread" validate:"gte=-50,lte=50"`
	Color      string  `yaml:"color" json:"color" validate:"required,css_hex"`
	Background string  `yaml:"background" json:"background" validate:"required,css_hex"`
	Radius     float64 `yaml:"radius" json:"radius" validate:"gte=0,lte=100"`
	Opacity    float64 `yaml:"opacity" json:"opacity" validate:"gte=0,lte=100"`
	Inset      bool    `yaml:"inset" json:"inset"`
}

// DefaultBoxShadow returns the editor's starting state.
func DefaultBoxShadow() BoxShadow {
	return BoxShadow{
		Horizontal: 0,
		Vertical:   4,
		Blur:       8,
		Spread:     0,
		Color:      color.Black,
		Background: color.White,
		Radius:     12,
		Opacity:    25,
	}
}

func (s *BoxShadow) accessors() []accessor {
	return []accessor{
		number("horizontal", "Horizontal", &s.Horizontal, ShadowOffsetRange),
		number("vertical", "Vertical", &s.Vertical, ShadowOffsetRange),
		number("blur", "Blur", &s.Blur, BoxShadowBlurRange),
		number("spread", "Spread", &s.Spread, BoxShadowSpreadRange),
		hex("color", "Shadow color", &s.Color),
		hex("background", "Background", &s.Background),
		number("radius", "Border radius", &s.Radius, BoxShadowRadiusRange),
		number("opacity", "Opacity", &s.Opacity, OpacityRange),
		toggle("inset", "Inset", &s.Inset),
	}
}

// Name implements Editor.
func (s *BoxShadow) Name() string { return EditorBoxShadow }

// Fields implements Editor.
func (s *BoxShadow) Fields() []Field { return fieldsOf(s.accessors()) }

// Get implements Editor.
func (s *BoxShadow) Get(key string) (string, bool) { return get(s.accessors(), key) }

// Set implements Editor.
func (s *BoxShadow) Set(key, value string) bool { return set(s.accessors(), key, value) }

// Validate checks the record against the control ranges.
func (s *BoxShadow) Validate() error { return validation.Struct(EditorBoxShadow, s) }

// Normalize clamps numbers and canonicalises colours.
func (s *BoxShadow) Normalize() {
	s.Horizontal = ShadowOffsetRange.Clamp(s.Horizontal)
	s.Vertical = ShadowOffsetRange.Clamp(s.Vertical)
	s.Blur = BoxShadowBlurRange.Clamp(s.Blur)
	s.Spread = BoxShadowSpreadRange.Clamp(s.Spread)
	s.Radius = BoxShadowRadiusRange.Clamp(s.Radius)
	s.Opacity = OpacityRange.Clamp(s.Opacity)
	s.Color = normalizeHex(s.Color, color.Black)
	s.Background = normalizeHex(s.Background, color.White)
}

func (s *BoxShadow) value() string {
	prefix := ""
	if s.Inset {
		prefix = "inset "
	}
	return fmt.Sprintf("%s%s %s %s %s %s",
		prefix, px(s.Horizontal), px(s.Vertical), px(s.Blur), px(s.Spread), rgba(s.Color, s.Opacity))
}

// CSS renders the box-shadow declaration.
func (s *BoxShadow) CSS() string {
	return "box-shadow: " + s.value() + ";"
}

// Preview returns the preview style.
func (s *BoxShadow) Preview() preview.Style {
	return preview.Style{
		"box-shadow":       s.value(),
		"background-color": s.Background,
		"border-radius":    px(s.Radius),
		"--preview-bg":     s.Background,
		"--preview-text":   color.PickReadableText(s.Background),
	}
}
