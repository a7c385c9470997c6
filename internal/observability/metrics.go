package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus instruments for the card generator.
type Metrics struct {
	RunsTotal       prometheus.Counter
	RunFailures     prometheus.Counter
	ZoneFetchErrors *prometheus.CounterVec // label: zone
	RenderDuration  prometheus.Histogram
	AdvisoryActive  prometheus.Gauge
	LastRunUnix     prometheus.Gauge
}

func newMetrics() *Metrics {
	return &Metrics{
		RunsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "marine_card",
			Name:      "runs_total",
			Help:      "Total card generation runs, successful or not.",
		}),
		RunFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "marine_card",
			Name:      "run_failures_total",
			Help:      "Runs that produced no artifact (render or write failure).",
		}),
		ZoneFetchErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "marine_card",
			Name:      "zone_fetch_errors_total",
			Help:      "Zone product fetches that degraded to a placeholder.",
		}, []string{"zone"}),
		RenderDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "marine_card",
			Name:      "render_duration_seconds",
			Help:      "Duration of a complete fetch-parse-render-write run.",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),
		AdvisoryActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "marine_card",
			Name:      "advisory_active",
			Help:      "1 when the latest run carries an active marine advisory.",
		}),
		LastRunUnix: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "marine_card",
			Name:      "last_run_timestamp_seconds",
			Help:      "Unix time of the most recent completed run.",
		}),
	}
}

// NewMetrics creates and registers all card generator metrics with the
// default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.RunsTotal,
		m.RunFailures,
		m.ZoneFetchErrors,
		m.RenderDuration,
		m.AdvisoryActive,
		m.LastRunUnix,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}
