package validation

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	cssplayerrors "github.com/alexisbeaulieu97/cssplay/pkg/errors"
)

type swatch struct {
	Color   string  `yaml:"color" validate:"required,css_hex"`
	Opacity float64 `yaml:"opacity" validate:"gte=0,lte=100"`
}

type palette struct {
	Name   string   `yaml:"name" validate:"required"`
	Swatch swatch   `yaml:"swatch"`
	Extras []swatch `yaml:"extras" validate:"dive"`
}

func TestStructAcceptsValidValues(t *testing.T) {
	t.Parallel()

	p := palette{Name: "warm", Swatch: swatch{Color: "#abc", Opacity: 40}}
	require.NoError(t, Struct("palette", p))
}

func TestStructReportsYAMLFieldPath(t *testing.T) {
	t.Parallel()

	p := palette{Name: "warm", Swatch: swatch{Color: "#abcd", Opacity: 40}}
	err := Struct("presets.border.subtle", p)
	require.Error(t, err)

	var ve *cssplayerrors.ValidationError
	require.True(t, errors.As(err, &ve))
	require.Equal(t, "presets.border.subtle.swatch.color", ve.Field)
	require.Contains(t, ve.Message, "css_hex")
}

func TestStructDivesIntoSlices(t *testing.T) {
	t.Parallel()

	p := palette{Name: "warm", Swatch: swatch{Color: "#000"}, Extras: []swatch{{Color: "#fff", Opacity: 120}}}
	err := Struct("", p)

	var ve *cssplayerrors.ValidationError
	require.True(t, errors.As(err, &ve))
	require.Equal(t, "extras[0].opacity", ve.Field)
}

func TestStructRejectsNonStruct(t *testing.T) {
	t.Parallel()

	err := Struct("", 42)

	var ve *cssplayerrors.ValidationError
	require.True(t, errors.As(err, &ve))
	require.Equal(t, "value", ve.Field)
}

type point struct {
	X float64 `yaml:"x" validate:"finite"`
}

func TestFiniteRejectsNaNAndInfinity(t *testing.T) {
	t.Parallel()

	require.NoError(t, Struct("", point{X: -250}))

	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		err := Struct("offset", point{X: v})
		var ve *cssplayerrors.ValidationError
		require.True(t, errors.As(err, &ve), "value %v", v)
		require.Equal(t, "offset.x", ve.Field)
		require.Contains(t, ve.Message, "finite")
	}
}
