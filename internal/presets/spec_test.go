package presets

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/cssplay/internal/gradient"
	cssplayerrors "github.com/alexisbeaulieu97/cssplay/pkg/errors"
)

func TestParseDocumentAcceptsYAMLAndJSON(t *testing.T) {
	t.Parallel()

	yamlDoc := `
layers:
  - kind: conic-gradient
    start_angle: 90
    stops:
      - { color: "#f00", position: 0 }
      - { color: "#00f", opacity: 50, position: 100 }
`
	jsonDoc := `{"layers":[{"kind":"conic-gradient","start_angle":90,"stops":[
		{"color":"#f00","position":0},{"color":"#00f","opacity":50,"position":100}]}]}`

	want := "background: conic-gradient(from 90deg at 50% 50%, rgba(255, 0, 0, 1) 0%, rgba(0, 0, 255, 0.5) 100%);"
	for name, src := range map[string]string{"yaml": yamlDoc, "json": jsonDoc} {
		spec, err := ParseDocument(name, []byte(src))
		require.NoError(t, err, name)
		doc, err := spec.Document()
		require.NoError(t, err, name)
		require.Equal(t, want, gradient.SerializeDocument(doc), name)
	}
}

func TestParseDocumentErrors(t *testing.T) {
	t.Parallel()

	_, err := ParseDocument("doc.yaml", []byte("layers: [\n"))
	var pe *cssplayerrors.ParseError
	require.True(t, errors.As(err, &pe))

	_, err = ParseDocument("doc.yaml", []byte("layers:\n  - kind: diagonal-gradient\n    stops: [{color: '#000', position: 0}, {color: '#fff', position: 100}]\n"))
	var ve *cssplayerrors.ValidationError
	require.True(t, errors.As(err, &ve))
	require.Equal(t, "gradient.layers[0].kind", ve.Field)

	_, err = ParseDocument("doc.yaml", []byte("layers: []\n"))
	require.True(t, errors.As(err, &ve))
	require.Equal(t, "gradient.layers", ve.Field)
}

func TestParseDocumentRejectsNonFiniteNumbers(t *testing.T) {
	t.Parallel()

	stops := "    stops: [{color: '#000', position: 0}, {color: '#fff', position: 100}]\n"
	cases := map[string]struct {
		doc   string
		field string
	}{
		"nan angle":       {doc: "layers:\n  - kind: linear-gradient\n    angle: .nan\n" + stops, field: "gradient.layers[0].angle"},
		"angle too large": {doc: "layers:\n  - kind: linear-gradient\n    angle: 720\n" + stops, field: "gradient.layers[0].angle"},
		"nan start angle": {doc: "layers:\n  - kind: conic-gradient\n    start_angle: .nan\n" + stops, field: "gradient.layers[0].start_angle"},
		"infinite size":   {doc: "layers:\n  - kind: linear-gradient\n    size: {x: .inf, y: 50}\n" + stops, field: "gradient.layers[0].size.x"},
		"nan offset":      {doc: "layers:\n  - kind: linear-gradient\n    offset: {x: 0, y: .nan}\n" + stops, field: "gradient.layers[0].offset.y"},
	}

	for name, tc := range cases {
		_, err := ParseDocument("doc.yaml", []byte(tc.doc))
		var ve *cssplayerrors.ValidationError
		require.True(t, errors.As(err, &ve), name)
		require.Equal(t, tc.field, ve.Field, name)
	}
}

func TestLoadDocument(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "doc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("layers:\n  - kind: linear-gradient\n    angle: 45\n    stops: [{color: '#000', position: 0}, {color: '#fff', position: 100}]\n"), 0o644))

	spec, err := LoadDocument(path)
	require.NoError(t, err)
	require.Len(t, spec.Layers, 1)
	require.Equal(t, 45.0, *spec.Layers[0].Angle)

	_, err = LoadDocument(filepath.Join(t.TempDir(), "missing.yaml"))
	var pe *cssplayerrors.ParseError
	require.True(t, errors.As(err, &pe))
}
