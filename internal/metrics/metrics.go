package metrics

import (
	"net/http"
	"time"

	"github.com/meur/bisforge/internal/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Fetch kinds
const (
	KindGear    = "gear"
	KindEnchant = "enchant"
)

// Fetch outcomes
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Metrics holds the scraper's Prometheus collectors on a private registry
type Metrics struct {
	registry *prometheus.Registry

	Fetches       *prometheus.CounterVec
	FetchDuration *prometheus.HistogramVec
	Extractions   *prometheus.CounterVec
}

// New creates the collectors and registers them along with Go runtime metrics
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		Fetches: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bisforge_fetch_total",
				Help: "Guide page fetches by kind and outcome",
			},
			[]string{"kind", "outcome"},
		),
		FetchDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "bisforge_fetch_duration_seconds",
				Help:    "Guide page fetch duration in seconds",
				Buckets: []float64{.1, .25, .5, 1, 2.5, 5, 10, 15},
			},
			[]string{"kind"},
		),
		Extractions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bisforge_extraction_total",
				Help: "Extraction results by kind and reason",
			},
			[]string{"kind", "reason"},
		),
	}
}

// ObserveFetch records one fetch. A nil Metrics is a no-op.
func (m *Metrics) ObserveFetch(kind string, err error, d time.Duration) {
	if m == nil {
		return
	}
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeError
	}
	m.Fetches.WithLabelValues(kind, outcome).Inc()
	m.FetchDuration.WithLabelValues(kind).Observe(d.Seconds())
}

// ObserveExtraction records the reason an extraction finished with
func (m *Metrics) ObserveExtraction(kind string, reason models.Reason) {
	if m == nil {
		return
	}
	m.Extractions.WithLabelValues(kind, string(reason)).Inc()
}

// Handler serves the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
