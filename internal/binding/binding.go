// Package binding keeps paired controls in sync: a continuous control (a
// slider) with the numeric text field next to it, and a colour swatch with
// its free-text hex field.
//
// Out-of-range numbers are clamped silently and unparseable text is ignored;
// neither is ever reported as an error.
package binding

import (
	"math"
	"strconv"
	"strings"

	"github.com/alexisbeaulieu97/cssplay/internal/color"
)

// Control is anything holding a textual value, such as a bubbles textinput.
type Control interface {
	Value() string
	SetValue(string)
}

// Value is a minimal in-memory Control.
type Value struct {
	text string
}

// NewValue returns a Value holding s.
func NewValue(s string) *Value {
	return &Value{text: s}
}

// Value implements Control.
func (v *Value) Value() string { return v.text }

// SetValue implements Control.
func (v *Value) SetValue(s string) { v.text = s }

// Range bounds a numeric control.
type Range struct {
	Min  float64
	Max  float64
	Step float64
}

// Clamp pins v to [Min, Max]. NaN becomes Min.
func (r Range) Clamp(v float64) float64 {
	if math.IsNaN(v) || v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

// Nudge moves v by delta steps and clamps the result.
func (r Range) Nudge(v float64, delta int) float64 {
	step := r.Step
	if step <= 0 {
		step = 1
	}
	return r.Clamp(v + float64(delta)*step)
}

// FormatNumber renders a numeric control value.
func FormatNumber(v float64) string {
	return color.FormatNumber(v)
}

// ParseNumber parses numeric field text. Empty or partially numeric text
// such as "12x" is rejected, and so is "NaN". Infinities parse and are left
// for the range to clamp.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// PushFromContinuous copies the continuous control's value verbatim into the
// text control and applies it downstream.
func PushFromContinuous(continuous, text Control, apply func(float64)) {
	raw := continuous.Value()
	text.SetValue(raw)
	v, ok := ParseNumber(raw)
	if !ok || apply == nil {
		return
	}
	apply(v)
}

// PushFromText parses the text control, clamps it to r, writes the clamped
// value back into both controls and applies it. Unparseable text leaves
// everything untouched and returns false.
func PushFromText(text, continuous Control, r Range, apply func(float64)) bool {
	v, ok := ParseNumber(text.Value())
	if !ok {
		return false
	}
	v = r.Clamp(v)
	formatted := FormatNumber(v)
	if continuous != nil {
		continuous.SetValue(formatted)
	}
	text.SetValue(formatted)
	if apply != nil {
		apply(v)
	}
	return true
}

// PushHexFromText mirrors a hex text field into its swatch only when the
// text is a valid hex colour.
func PushHexFromText(text, swatch Control, apply func(string)) bool {
	hex := text.Value()
	if !color.IsValidHex(hex) {
		return false
	}
	if swatch != nil {
		swatch.SetValue(hex)
	}
	if apply != nil {
		apply(hex)
	}
	return true
}

// PushHexFromSwatch mirrors the swatch into the hex text field. Swatches can
// only produce valid colours, so no validation happens here.
func PushHexFromSwatch(swatch, text Control, apply func(string)) {
	hex := swatch.Value()
	if text != nil {
		text.SetValue(hex)
	}
	if apply != nil {
		apply(hex)
	}
}
