package server

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/cssplay/internal/effects"
	"github.com/alexisbeaulieu97/cssplay/internal/gradient"
	"github.com/alexisbeaulieu97/cssplay/internal/presets"
)

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestHealth(t *testing.T) {
	h := New(Options{}).Handler()
	rec := do(t, h, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decode[map[string]string](t, rec)["status"])
}

func TestListPresets(t *testing.T) {
	h := New(Options{}).Handler()

	rec := do(t, h, http.MethodGet, "/api/presets", "")
	require.Equal(t, http.StatusOK, rec.Code)
	all := decode[map[string][]string](t, rec)
	for _, editor := range effects.Editors() {
		assert.NotEmpty(t, all[editor], editor)
	}

	rec = do(t, h, http.MethodGet, "/api/presets/border", "")
	require.Equal(t, http.StatusOK, rec.Code)
	want, err := presets.Default().Names(effects.EditorBorder)
	require.NoError(t, err)
	assert.Equal(t, want, decode[[]string](t, rec))

	rec = do(t, h, http.MethodGet, "/api/presets/outline", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetPreset(t *testing.T) {
	h := New(Options{}).Handler()

	rec := do(t, h, http.MethodGet, "/api/presets/text-shadow/neon", "")
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[map[string]any](t, rec)
	assert.Equal(t, "neon", got["name"])
	assert.Equal(t, "#ff00ff", got["color"])

	rec = do(t, h, http.MethodGet, "/api/presets/gradient/missing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, decode[errorResponse](t, rec).Error, "missing")
}

func TestGradientCSSDefault(t *testing.T) {
	h := New(Options{}).Handler()

	rec := do(t, h, http.MethodPost, "/api/gradient/css", "")
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[cssResponse](t, rec)
	assert.Equal(t, gradient.SerializeDocument(gradient.New()), got.CSS)
	require.NotNil(t, got.Layers)
	assert.Len(t, got.Layers.Layers, 1)
	want := gradient.PreviewStyle(gradient.New())
	assert.NotEmpty(t, got.Preview.Get("background-image"))
	assert.Equal(t, want.Get("background-image"), got.Preview.Get("background-image"))
	assert.Equal(t, want, got.Preview)
}

func TestGradientCSSPresetMatchesLibrary(t *testing.T) {
	h := New(Options{}).Handler()

	rec := do(t, h, http.MethodPost, "/api/gradient/css?preset=stacked", "")
	require.Equal(t, http.StatusOK, rec.Code)

	layers, err := presets.Default().Gradient("stacked")
	require.NoError(t, err)
	doc := gradient.New()
	require.True(t, gradient.Reduce(doc, gradient.ReplaceLayers{Layers: layers}))

	assert.Equal(t, gradient.SerializeDocument(doc), decode[cssResponse](t, rec).CSS)
}

func TestGradientCSSPostedDocument(t *testing.T) {
	h := New(Options{}).Handler()

	body := `{"layers":[{"kind":"radial-gradient","shape":"circle","stops":[
		{"color":"#ff0000","position":0},
		{"color":"#0000ff","opacity":50,"position":100}]}]}`
	rec := do(t, h, http.MethodPost, "/api/gradient/css", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	got := decode[cssResponse](t, rec)
	assert.Contains(t, got.CSS, "radial-gradient(circle")
	assert.Contains(t, got.CSS, "rgba(0, 0, 255, 0.5) 100%")
}

func TestGradientCSSRejectsInvalidDocument(t *testing.T) {
	h := New(Options{}).Handler()

	cases := map[string]struct {
		body  string
		field string
	}{
		"single stop": {
			body:  `{"layers":[{"kind":"linear-gradient","stops":[{"color":"#ffffff","position":0}]}]}`,
			field: "gradient.layers[0].stops",
		},
		"bad colour": {
			body:  `{"layers":[{"kind":"linear-gradient","stops":[{"color":"white","position":0},{"color":"#000000","position":100}]}]}`,
			field: "gradient.layers[0].stops[0].color",
		},
		"no layers": {
			body:  `{"layers":[]}`,
			field: "gradient.layers",
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/api/gradient/css", tc.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tc.field, decode[errorResponse](t, rec).Field)
		})
	}

	rec := do(t, h, http.MethodPost, "/api/gradient/css", `{"layers":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/gradient/css", `{"layerz":[]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEffectCSS(t *testing.T) {
	h := New(Options{}).Handler()

	rec := do(t, h, http.MethodPost, "/api/border/css", "")
	require.Equal(t, http.StatusOK, rec.Code)
	def := effects.DefaultBorder()
	assert.Equal(t, def.CSS(), decode[cssResponse](t, rec).CSS)

	rec = do(t, h, http.MethodPost, "/api/border/css", `{"width":4,"style":"dashed"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "border: 4px dashed #1d1d1f;\nborder-radius: 0px;", decode[cssResponse](t, rec).CSS)

	rec = do(t, h, http.MethodPost, "/api/box-shadow/css?preset=inset", "")
	require.Equal(t, http.StatusOK, rec.Code)
	inset, err := presets.Default().BoxShadow("inset")
	require.NoError(t, err)
	assert.Equal(t, inset.CSS(), decode[cssResponse](t, rec).CSS)

	rec = do(t, h, http.MethodPost, "/api/text-shadow/css?preset=neon", `{"text":"Hi"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[cssResponse](t, rec)
	assert.Equal(t, "Hi", got.Preview.Get(effects.PreviewTextKey))
	assert.Contains(t, got.CSS, "text-shadow:")
}

func TestEffectCSSRejectsOutOfRange(t *testing.T) {
	h := New(Options{}).Handler()

	rec := do(t, h, http.MethodPost, "/api/box-shadow/css", `{"blur":500}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "box-shadow.blur", decode[errorResponse](t, rec).Field)

	rec = do(t, h, http.MethodPost, "/api/border/css", `{"style":"wavy"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "border.style", decode[errorResponse](t, rec).Field)

	rec = do(t, h, http.MethodPost, "/api/outline/css", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/border/css?preset=nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMetricsProjection(t *testing.T) {
	h := New(Options{}).Handler()

	applied := MetricPresetsApplied.WithLabelValues(effects.EditorBorder, "dotted")
	before := testutil.ToFloat64(applied)
	rendered := testutil.ToFloat64(MetricCSSRendered.WithLabelValues(effects.EditorBorder))

	rec := do(t, h, http.MethodPost, "/api/border/css?preset=dotted", "")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, before+1, testutil.ToFloat64(applied))
	assert.Equal(t, rendered+1, testutil.ToFloat64(MetricCSSRendered.WithLabelValues(effects.EditorBorder)))

	rec = do(t, h, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "cssplay_presets_applied_total")
}

func TestServeShutsDownOnCancel(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- New(Options{ReadTimeout: time.Second}).Serve(ctx, ln)
	}()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + ln.Addr().String() + "/healthz")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
