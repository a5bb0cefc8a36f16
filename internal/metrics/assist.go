package metrics

import "github.com/prometheus/client_golang/prometheus"

// Assist pipeline metrics. Registration happens explicitly via
// RegisterAssistMetrics; importing this package does not touch the
// default registry.
var (
	// AssistRequestsTotal counts pipeline invocations.
	AssistRequestsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "slotcue",
			Name:      "assist_requests_total",
			Help:      "Total number of assist pipeline invocations",
		},
	)

	// SlotsFilledTotal counts detections per slot name.
	SlotsFilledTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "slotcue",
			Name:      "slots_filled_total",
			Help:      "Total number of slot detections by slot name",
		},
		[]string{"slot"},
	)

	// CandidateFallbacksTotal counts ranker fallback paths.
	// reason: no_slots (nothing extracted) or no_match (all scores zero).
	CandidateFallbacksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "slotcue",
			Name:      "candidate_fallbacks_total",
			Help:      "Total number of ranker fallback candidate lists by reason",
		},
		[]string{"reason"},
	)
)

// RegisterAssistMetrics registers the assist pipeline metrics.
func RegisterAssistMetrics() {
	prometheus.MustRegister(AssistRequestsTotal)
	prometheus.MustRegister(SlotsFilledTotal)
	prometheus.MustRegister(CandidateFallbacksTotal)
}
