package server

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/alexisbeaulieu97/cssplay/internal/events"
)

var (
	// MetricRequestsTotal counts HTTP requests by route pattern and status.
	MetricRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cssplay_http_requests_total",
		Help: "Total HTTP requests by route and status code",
	}, []string{"route", "code"})

	// MetricRequestDuration tracks handler latency by route pattern.
	MetricRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "cssplay_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
	}, []string{"route"})

	// MetricCSSRendered counts CSS documents returned by editor.
	MetricCSSRendered = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cssplay_css_rendered_total",
		Help: "Total CSS renders by editor",
	}, []string{"editor"})

	// MetricEditorChanges counts editor state changes by editor.
	MetricEditorChanges = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cssplay_editor_changes_total",
		Help: "Total editor state changes by editor",
	}, []string{"editor"})

	// MetricPresetsApplied counts presets applied by editor and name.
	MetricPresetsApplied = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cssplay_presets_applied_total",
		Help: "Total presets applied by editor and name",
	}, []string{"editor", "preset"})
)

// observeEvents projects session events onto the Prometheus counters.
func observeEvents(p *events.Publisher) {
	p.Subscribe(events.CSSChanged, func(_ context.Context, e events.Event) error {
		MetricEditorChanges.WithLabelValues(e.Editor).Inc()
		return nil
	})
	p.Subscribe(events.PresetApplied, func(_ context.Context, e events.Event) error {
		name, _ := e.Payload["preset"].(string)
		MetricPresetsApplied.WithLabelValues(e.Editor, name).Inc()
		return nil
	})
}
