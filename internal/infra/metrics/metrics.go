// Package metrics exposes Prometheus instrumentation for location resolution,
// inference calls, matching runs and HTTP traffic.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Match run outcomes.
const (
	OutcomeMatched  = "matched"
	OutcomeEmpty    = "empty"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

var (
	// Location resolution
	LocationResolutions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catermatch_location_resolutions_total",
			Help: "Total number of location resolutions by source and confidence",
		},
		[]string{"source", "confidence"},
	)

	LearnedLocationWrites = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catermatch_learned_location_writes_total",
			Help: "Total number of writes into the learned location store",
		},
		[]string{"added_by"},
	)

	LocationEvalFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "catermatch_location_eval_failures_total",
			Help: "Total number of evaluation records that could not be stored",
		},
	)

	// Inference
	InferenceDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "catermatch_inference_duration_seconds",
			Help:    "Duration of structured inference calls in seconds",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 4, 8, 16},
		},
	)

	InferenceFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catermatch_inference_failures_total",
			Help: "Total number of inference calls that fell back to the default location",
		},
		[]string{"reason"}, // "timeout", "unavailable", "invalid", "error"
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "catermatch_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	// Matching
	MatchRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catermatch_match_runs_total",
			Help: "Total number of matching runs by outcome",
		},
		[]string{"outcome"},
	)

	MatchCandidates = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "catermatch_match_candidates",
			Help:    "Number of active caterers considered per matching run",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		},
	)

	MatchRunDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "catermatch_match_run_duration_seconds",
			Help:    "Duration of matching runs in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// Database pool
	DBPoolInUse = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catermatch_db_pool_in_use_connections",
			Help: "Postgres connections currently in use",
		},
	)

	DBPoolOpen = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catermatch_db_pool_open_connections",
			Help: "Postgres connections currently open",
		},
	)

	DBPoolSlowWaits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "catermatch_db_pool_slow_waits_total",
			Help: "Pool monitor ticks where connection waits exceeded the warning threshold",
		},
	)

	// HTTP
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catermatch_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)

// RecordResolution counts one resolution.
func RecordResolution(source, confidence string) {
	LocationResolutions.WithLabelValues(source, confidence).Inc()
}

// RecordInference observes one inference call. An empty reason means success.
func RecordInference(duration time.Duration, failureReason string) {
	InferenceDuration.Observe(duration.Seconds())

	if failureReason != "" {
		InferenceFailures.WithLabelValues(failureReason).Inc()
	}
}

// RecordMatchRun observes one orchestrator run.
func RecordMatchRun(outcome string, candidates int, duration time.Duration) {
	MatchRuns.WithLabelValues(outcome).Inc()
	MatchRunDuration.Observe(duration.Seconds())

	if candidates >= 0 {
		MatchCandidates.Observe(float64(candidates))
	}
}

// RecordHTTPRequest observes one HTTP request.
func RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(duration.Seconds())
}
