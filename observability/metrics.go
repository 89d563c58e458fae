// Package observability bundles Prometheus instrumentation for link-budget
// evaluations so that bench tooling built on the library can expose how
// often each evaluation runs, how often inputs are rejected, and what
// ranges come out.
package observability

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels recorded per evaluation.
const (
	OutcomeOK           = "ok"
	OutcomeInvalidInput = "invalid_input"
)

// EvaluationCollector bundles Prometheus metrics for the evaluation
// surface. A nil *EvaluationCollector is valid and records nothing, so
// callers can leave instrumentation unwired.
type EvaluationCollector struct {
	gatherer prometheus.Gatherer

	Evaluations *prometheus.CounterVec
	MaxRangeNmi prometheus.Histogram
}

// NewEvaluationCollector registers the evaluation metrics against the
// provided registerer, defaulting to the global Prometheus registry when
// nil. Registering twice against the same registry returns the existing
// collectors rather than failing.
func NewEvaluationCollector(reg prometheus.Registerer) (*EvaluationCollector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	evaluations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "linkbudget_evaluations_total",
		Help: "Total number of link-budget evaluations, labeled by operation and outcome.",
	}, []string{"operation", "outcome"})
	evaluations, err := registerCounterVec(reg, evaluations, "linkbudget_evaluations_total")
	if err != nil {
		return nil, err
	}

	maxRange, err := registerHistogram(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "linkbudget_max_range_nmi",
		Help:    "Computed maximum effective ranges in nautical miles.",
		Buckets: []float64{1, 5, 10, 24, 50, 100, 200},
	}), "linkbudget_max_range_nmi")
	if err != nil {
		return nil, err
	}

	return &EvaluationCollector{
		gatherer:    gatherer,
		Evaluations: evaluations,
		MaxRangeNmi: maxRange,
	}, nil
}

// RecordEvaluation counts one evaluation of the named operation with the
// given outcome.
func (c *EvaluationCollector) RecordEvaluation(operation, outcome string) {
	if c == nil || c.Evaluations == nil {
		return
	}
	c.Evaluations.WithLabelValues(operation, outcome).Inc()
}

// ObserveMaxRange records a computed maximum range in nautical miles.
func (c *EvaluationCollector) ObserveMaxRange(nmi float64) {
	if c == nil || c.MaxRangeNmi == nil {
		return
	}
	c.MaxRangeNmi.Observe(nmi)
}

// Handler exposes a ready-to-use /metrics handler over the collector's
// registry. Serving it (or not) is the caller's business.
func (c *EvaluationCollector) Handler() http.Handler {
	gatherer := c.gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerHistogram(reg prometheus.Registerer, hist prometheus.Histogram, name string) (prometheus.Histogram, error) {
	if err := reg.Register(hist); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Histogram); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return hist, nil
}
