package metrics

import (
	"time"

	"github.com/ijalalfrz/fuzzy-vikor-service/internal/pkg/vikor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// calculation outcomes
const (
	OutcomeSuccess = "success"
	OutcomeInvalid = "invalid"
	OutcomeError   = "error"
)

var (
	CalculationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vikor_calculations_total",
		Help: "Calculations served, by outcome.",
	}, []string{"outcome"})

	CalculationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "vikor_calculation_duration_seconds",
		Help:    "Time spent computing a calculation, cache lookups included.",
		Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12),
	})

	CacheHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vikor_cache_hits_total",
		Help: "Calculations answered from the result cache.",
	})

	DegenerateInputsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vikor_degenerate_inputs_total",
		Help: "Fallbacks taken for degenerate input, by diagnostic kind.",
	}, []string{"kind"})
)

func ObserveCalculation(outcome string, elapsed time.Duration) {
	CalculationsTotal.WithLabelValues(outcome).Inc()
	CalculationDuration.Observe(elapsed.Seconds())
}

func ObserveDiagnostics(diags []vikor.Diagnostic) {
	for _, d := range diags {
		DegenerateInputsTotal.WithLabelValues(d.Kind).Inc()
	}
}
