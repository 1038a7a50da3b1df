// Package metrics exposes quote outcomes and upstream latency to Prometheus.
package metrics

import (
	"net/http"
	"time"

	"stockquote-gateway/internal/application"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ application.Recorder = (*Metrics)(nil)

// Metrics owns a private registry so tests and multiple instances never
// collide on the global one.
type Metrics struct {
	registry      *prometheus.Registry
	QuoteRequests *prometheus.CounterVec
	FetchDuration prometheus.Histogram
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		QuoteRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "stockquote",
			Name:      "quote_requests_total",
			Help:      "Quote requests by outcome.",
		}, []string{"outcome"}),
		FetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "stockquote",
			Name:      "upstream_fetch_duration_seconds",
			Help:      "Upstream chart fetch latency in seconds.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	m.registry.MustRegister(
		m.QuoteRequests,
		m.FetchDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	for _, o := range []application.Outcome{application.OutcomeOK, application.OutcomeFetchError, application.OutcomeShapeError} {
		m.QuoteRequests.WithLabelValues(string(o))
	}
	return m
}

func (m *Metrics) ObserveFetch(d time.Duration) { m.FetchDuration.Observe(d.Seconds()) }

func (m *Metrics) ObserveOutcome(o application.Outcome) {
	m.QuoteRequests.WithLabelValues(string(o)).Inc()
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
