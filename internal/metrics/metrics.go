// Package metrics exposes Prometheus counters for conversion runs.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"genealogycore/internal/runlog"
)

// Metrics holds the conversion instruments on a private registry so tests
// can construct isolated instances.
type Metrics struct {
	registry *prometheus.Registry

	runsTotal        *prometheus.CounterVec
	diagnosticsTotal *prometheus.CounterVec
	entitiesTotal    *prometheus.CounterVec
	runDuration      *prometheus.HistogramVec
}

// New returns a Metrics instance backed by a fresh registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)
	return &Metrics{
		registry: registry,
		runsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "genealogy",
			Name:      "runs_total",
			Help:      "Total number of conversion runs.",
		}, []string{"direction", "status"}),
		diagnosticsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "genealogy",
			Name:      "diagnostics_total",
			Help:      "Total number of resolver diagnostics, by kind.",
		}, []string{"kind"}),
		entitiesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "genealogy",
			Name:      "entities_total",
			Help:      "Total number of entities produced by conversion runs.",
		}, []string{"direction", "entity"}),
		runDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "genealogy",
			Name:      "run_duration_seconds",
			Help:      "Wall-clock duration of conversion runs.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 30},
		}, []string{"direction"}),
	}
}

// ObserveRun records one finished run.
func (m *Metrics) ObserveRun(run runlog.Run) {
	m.runsTotal.WithLabelValues(run.Direction, string(run.Status)).Inc()
	for _, d := range run.Diagnostics {
		m.diagnosticsTotal.WithLabelValues(string(d.Kind)).Inc()
	}
	m.entitiesTotal.WithLabelValues(run.Direction, "persons").Add(float64(run.Persons))
	m.entitiesTotal.WithLabelValues(run.Direction, "relationships").Add(float64(run.Relationships))
	m.entitiesTotal.WithLabelValues(run.Direction, "marriages").Add(float64(run.Marriages))
	m.entitiesTotal.WithLabelValues(run.Direction, "families").Add(float64(run.Families))
	if !run.FinishedAt.IsZero() && !run.StartedAt.IsZero() {
		m.runDuration.WithLabelValues(run.Direction).Observe(run.FinishedAt.Sub(run.StartedAt).Seconds())
	}
}

// Handler returns an HTTP handler serving the registry in the Prometheus
// exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Serve runs a metrics endpoint on addr until the listener fails. Intended
// to be launched on its own goroutine.
func (m *Metrics) Serve(addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	return srv.ListenAndServe()
}
