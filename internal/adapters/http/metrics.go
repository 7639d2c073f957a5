package http

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/flowforge/flowforge/pkg/domain"
	"github.com/flowforge/flowforge/pkg/report"
)

// Metrics counts generations and tracks how many findings each one
// produced, broken down by severity.
type Metrics struct {
	registry    *prometheus.Registry
	generations *prometheus.CounterVec
	diagnostics *prometheus.HistogramVec
}

// NewMetrics creates and registers the adapter's collectors on a
// dedicated registry so tests never collide on the global one.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		generations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flowforge_generations_total",
				Help: "Number of generation requests by outcome.",
			},
			[]string{"outcome"},
		),
		diagnostics: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "flowforge_diagnostics_per_generation",
				Help:    "Validation findings attached to each generated scenario.",
				Buckets: []float64{0, 1, 2, 5, 10, 20},
			},
			[]string{"severity"},
		),
	}
	m.registry.MustRegister(m.generations, m.diagnostics)
	return m
}

func (m *Metrics) observeGeneration(diags []domain.Diagnostic) {
	outcome := "ok"
	if domain.HasErrors(diags) {
		outcome = "invalid"
	}
	m.generations.WithLabelValues(outcome).Inc()

	summary := report.Summarize(diags)
	m.diagnostics.WithLabelValues("error").Observe(float64(summary.Errors))
	m.diagnostics.WithLabelValues("warning").Observe(float64(summary.Warnings))
	m.diagnostics.WithLabelValues("info").Observe(float64(summary.Infos))
}

func (m *Metrics) observeFailure() {
	m.generations.WithLabelValues("failed").Inc()
}
