package effects

import (
	"fmt"

	"github.com/alexisbeaulieu97/cssplay/internal/binding"
	"github.com/alexisbeaulieu97/cssplay/internal/color"
	"github.com/alexisbeaulieu97/cssplay/internal/preview"
	"github.com/alexisbeaulieu97/cssplay/internal/validation"
)

var (
	TextShadowBlurRange = binding.Range{Min: 0, Max: 50, Step: 1}
	FontSizeRange       = binding.Range{Min: 12, Max: 120, Step: 1}
)

// DefaultPreviewText is shown by the text-shadow preview until edited.
const DefaultPreviewText = "Shadow"

// TextShadow is the text-shadow editor record. Text is editor state only;
// presets leave it untouched.
type TextShadow struct {
	Horizontal float64 `yaml:"horizontal" json:"horizontal" validate:"gte=-50,lte=50"`
	Vertical   float64 `yaml:"vertical" json:"vertical" validate:"gte=-50,lte=50"`
	Blur       float64 `yaml:"blur" json:"blur" validate:"gte=0,lte=50"`
	Color      string  `yaml:"color" json:"color" validate:"required,css_hex"`
	Opacity    float64 `yaml:"opacity" json:"opacity" validate:"gte=0,lte=100"`
	TextColor  string  `yaml:"text_color" json:"text_color" validate:"required,css_hex"`
	Background string  `yaml:"background" json:"background" validate:"required,css_hex"`
	FontSize   float64 `yaml:"font_size" json:"font_size" validate:"gte=12,lte=120"`
	Text       string  `yaml:"text,omitempty" json:"text,omitempty"`
}

// DefaultTextShadow returns the editor's starting state, which matches the
// "subtle" preset.
func DefaultTextShadow() TextShadow {
	return TextShadow{
		Horizontal: 1,
		Vertical:   1,
		Blur:       2,
		Color:      color.Black,
		Opacity:    20,
		TextColor:  "#1d1d1f",
		Background: color.White,
		FontSize:   48,
		Text:       DefaultPreviewText,
	}
}

// Apply replaces every styling field with the preset's, keeping Text.
func (s *TextShadow) Apply(p TextShadow) {
	keep := s.Text
	*s = p
	s.Text = keep
}

func (s *TextShadow) accessors() []accessor {
	return []accessor{
		number("horizontal", "Horizontal", &s.Horizontal, ShadowOffsetRange),
		number("vertical", "Vertical", &s.Vertical, ShadowOffsetRange),
		number("blur", "Blur", &s.Blur, TextShadowBlurRange),
		hex("color", "Shadow color", &s.Color),
		number("opacity", "Opacity", &s.Opacity, OpacityRange),
		hex("text_color", "Text color", &s.TextColor),
		hex("background", "Background", &s.Background),
		number("font_size", "Font size", &s.FontSize, FontSizeRange),
		text("text", "Preview text", &s.Text),
	}
}

// Name implements Editor.
func (s *TextShadow) Name() string { return EditorTextShadow }

// Fields implements Editor.
func (s *TextShadow) Fields() []Field { return fieldsOf(s.accessors()) }

// Get implements Editor.
func (s *TextShadow) Get(key string) (string, bool) { return get(s.accessors(), key) }

// Set implements Editor.
func (s *TextShadow) Set(key, value string) bool { return set(s.accessors(), key, value) }

// Validate checks the record against the control ranges.
func (s *TextShadow) Validate() error { return validation.Struct(EditorTextShadow, s) }

// Normalize clamps numbers and canonicalises colours.
func (s *TextShadow) Normalize() {
	s.Horizontal = ShadowOffsetRange.Clamp(s.Horizontal)
	s.Vertical = ShadowOffsetRange.Clamp(s.Vertical)
	s.Blur = TextShadowBlurRange.Clamp(s.Blur)
	s.Opacity = OpacityRange.Clamp(s.Opacity)
	s.FontSize = FontSizeRange.Clamp(s.FontSize)
	s.Color = normalizeHex(s.Color, color.Black)
	s.TextColor = normalizeHex(s.TextColor, "#1d1d1f")
	s.Background = normalizeHex(s.Background, color.White)
}

func (s *TextShadow) value() string {
	return fmt.Sprintf("%s %s %s %s", px(s.Horizontal), px(s.Vertical), px(s.Blur), rgba(s.Color, s.Opacity))
}

// CSS renders the text-shadow declaration.
func (s *TextShadow) CSS() string {
	return "text-shadow: " + s.value() + ";"
}

// Preview returns the preview style. An empty preview text is shown as a
// non-breaking space so the surface keeps its height.
func (s *TextShadow) Preview() preview.Style {
	content := s.Text
	if content == "" {
		content = "\u00a0"
	}
	return preview.Style{
		"text-shadow":      s.value(),
		"color":            s.TextColor,
		"background-color": s.Background,
		"font-size":        px(s.FontSize),
		"font-weight":      "700",
		"--preview-bg":     s.Background,
		PreviewTextKey:     content,
	}
}
