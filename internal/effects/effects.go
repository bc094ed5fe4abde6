// Package effects implements the single-effect editors: border, box-shadow
// and text-shadow. Each editor is a flat record that renders one CSS
// declaration block and a preview style.
//
// Records are edited through Set with the raw text of a control. Numbers are
// clamped to the field's range, unparseable numbers and invalid colours are
// ignored, and nothing is ever reported as an error.
package effects

import (
	"strconv"
	"strings"

	"github.com/alexisbeaulieu97/cssplay/internal/binding"
	"github.com/alexisbeaulieu97/cssplay/internal/color"
	"github.com/alexisbeaulieu97/cssplay/internal/preview"
)

// Editor names, shared with the preset catalog and the CLI.
const (
	EditorGradient   = "gradient"
	EditorBorder     = "border"
	EditorBoxShadow  = "box-shadow"
	EditorTextShadow = "text-shadow"
)

// Editors lists the editor names in display order.
func Editors() []string {
	return []string{EditorGradient, EditorBorder, EditorBoxShadow, EditorTextShadow}
}

// PreviewTextKey is the Style key carrying the text shown in a preview.
const PreviewTextKey = "text"

// FieldKind tells a front end which control to draw for a field.
type FieldKind int

const (
	FieldNumber FieldKind = iota
	FieldColor
	FieldChoice
	FieldToggle
	FieldText
)

func (k FieldKind) String() string {
	switch k {
	case FieldNumber:
		return "number"
	case FieldColor:
		return "color"
	case FieldChoice:
		return "choice"
	case FieldToggle:
		return "toggle"
	default:
		return "text"
	}
}

// Field describes one control of an editor.
type Field struct {
	Key     string
	Label   string
	Kind    FieldKind
	Range   binding.Range
	Choices []string
}

// Editor is the surface shared by the flat-record editors.
type Editor interface {
	Name() string
	Fields() []Field
	Get(key string) (string, bool)
	Set(key, value string) bool
	CSS() string
	Preview() preview.Style
	Validate() error
}

// New returns the default record of a flat-record editor.
func New(name string) (Editor, bool) {
	switch name {
	case EditorBorder:
		b := DefaultBorder()
		return &b, true
	case EditorBoxShadow:
		s := DefaultBoxShadow()
		return &s, true
	case EditorTextShadow:
		s := DefaultTextShadow()
		return &s, true
	default:
		return nil, false
	}
}

type accessor struct {
	field Field
	get   func() string
	set   func(string) bool
}

func lookup(accessors []accessor, key string) (accessor, bool) {
	for _, a := range accessors {
		if a.field.Key == key {
			return a, true
		}
	}
	return accessor{}, false
}

func fieldsOf(accessors []accessor) []Field {
	out := make([]Field, len(accessors))
	for i, a := range accessors {
		out[i] = a.field
	}
	return out
}

func get(accessors []accessor, key string) (string, bool) {
	a, ok := lookup(accessors, key)
	if !ok {
		return "", false
	}
	return a.get(), true
}

func set(accessors []accessor, key, value string) bool {
	a, ok := lookup(accessors, key)
	if !ok {
		return false
	}
	return a.set(value)
}

func number(key, label string, dst *float64, r binding.Range) accessor {
	return accessor{
		field: Field{Key: key, Label: label, Kind: FieldNumber, Range: r},
		get:   func() string { return color.FormatNumber(*dst) },
		set: func(s string) bool {
			v, ok := binding.ParseNumber(s)
			if !ok {
				return false
			}
			*dst = r.Clamp(v)
			return true
		},
	}
}

func hex(key, label string, dst *string) accessor {
	return accessor{
		field: Field{Key: key, Label: label, Kind: FieldColor},
		get:   func() string { return *dst },
		set: func(s string) bool {
			normalized, err := color.NormalizeHex(strings.TrimSpace(s))
			if err != nil {
				return false
			}
			*dst = normalized
			return true
		},
	}
}

func toggle(key, label string, dst *bool) accessor {
	return accessor{
		field: Field{Key: key, Label: label, Kind: FieldToggle},
		get:   func() string { return strconv.FormatBool(*dst) },
		set: func(s string) bool {
			v, err := strconv.ParseBool(strings.TrimSpace(s))
			if err != nil {
				return false
			}
			*dst = v
			return true
		},
	}
}

func text(key, label string, dst *string) accessor {
	return accessor{
		field: Field{Key: key, Label: label, Kind: FieldText},
		get:   func() string { return *dst },
		set: func(s string) bool {
			*dst = s
			return true
		},
	}
}

func px(v float64) string {
	return color.FormatNumber(v) + "px"
}

func rgba(hex string, opacity float64) string {
	out, err := color.ToRGBA(hex, opacity)
	if err != nil {
		out, _ = color.ToRGBA(color.Black, opacity)
	}
	return out
}

func normalizeHex(s, fallback string) string {
	out, err := color.NormalizeHex(s)
	if err != nil {
		return fallback
	}
	return out
}
