// Package metrics provides an optional Prometheus recorder for
// microauthz decisions. It is deliberately separate from the core
// engine: microauthz.Policy.Evaluate never calls into it, so embedders
// that don't want Prometheus on their import graph never pay for it.
// Call Recorder.Observe from the call site that invokes Evaluate.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/microauthz/microauthz"
)

// Recorder holds the Prometheus metrics for a microauthz deployment.
type Recorder struct {
	DecisionsTotal   *prometheus.CounterVec
	ConditionEvals   prometheus.Histogram
	RulesChecked     prometheus.Histogram
	EvaluationErrors *prometheus.CounterVec
}

// NewRecorder creates and registers a Recorder's metrics with reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	return &Recorder{
		DecisionsTotal: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "microauthz",
				Name:      "decisions_total",
				Help:      "Total policy decisions, by effect",
			},
			[]string{"effect"}, // effect=allow/deny
		),
		ConditionEvals: promauto.With(reg).NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "microauthz",
				Name:      "condition_evaluations",
				Help:      "Condition tree evaluations performed per Evaluate call",
				Buckets:   prometheus.LinearBuckets(0, 4, 10),
			},
		),
		RulesChecked: promauto.With(reg).NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "microauthz",
				Name:      "rules_checked",
				Help:      "Rules checked per Evaluate call",
				Buckets:   prometheus.LinearBuckets(0, 8, 10),
			},
		),
		EvaluationErrors: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "microauthz",
				Name:      "evaluation_errors_total",
				Help:      "Evaluate calls that returned an error, by error type",
			},
			[]string{"error_type"},
		),
	}
}

// Observe records the outcome of a single Policy.EvaluateWithStats call.
// Pass a nil err when the call succeeded.
func (r *Recorder) Observe(decision microauthz.Decision, stats microauthz.EvaluationStats, err error) {
	if err != nil {
		r.EvaluationErrors.WithLabelValues(errorType(err)).Inc()
		return
	}
	r.DecisionsTotal.WithLabelValues(decision.Effect.String()).Inc()
	r.ConditionEvals.Observe(float64(stats.ConditionEvals))
	r.RulesChecked.Observe(float64(stats.RulesChecked))
}

// errorType returns a low-cardinality label for err's concrete type,
// suitable as a Prometheus label value.
func errorType(err error) string {
	switch err.(type) {
	case *microauthz.AttributeMissingError:
		return "attribute_missing"
	case *microauthz.EvalStackOverflowError:
		return "eval_stack_overflow"
	case *microauthz.ContextTooLargeError:
		return "context_too_large"
	default:
		return "other"
	}
}
