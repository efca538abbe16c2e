// Package metrics provides a centralized Prometheus registry for the
// probability engine and session layer.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Global registry instance
var (
	registry *prometheus.Registry
	once     sync.Once
)

// Counter metrics
var (
	EvaluationsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "match_point",
		Name:      "evaluations_total",
		Help:      "Total number of snapshot evaluations",
	})
	InsufficientDataTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "match_point",
		Name:      "insufficient_data_total",
		Help:      "Total evaluations degraded for missing snapshot data",
	})
	PointsRecordedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "match_point",
		Name:      "points_recorded_total",
		Help:      "Total points fed into momentum trackers",
	})
	MomentumSpikesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "match_point",
		Name:      "momentum_spikes_total",
		Help:      "Total momentum spikes detected",
	})
	ReportCacheHitsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "match_point",
		Name:      "report_cache_hits_total",
		Help:      "Total report evaluations served from the session cache",
	})
)

// Gauge metrics
var (
	MatchWinProbability = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "match_point",
		Name:      "match_win_probability",
		Help:      "Latest match-win probability per session and player",
	}, []string{"session_id", "player"})
	CurrentMomentum = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "match_point",
		Name:      "current_momentum",
		Help:      "Latest momentum value per session",
	}, []string{"session_id"})
	ActiveSessions = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "match_point",
		Name:      "active_sessions",
		Help:      "Number of open match sessions",
	})
)

// Histogram metrics
var (
	EvaluationDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "match_point",
		Name:      "evaluation_duration_seconds",
		Help:      "Duration of full snapshot evaluations",
		Buckets:   prometheus.DefBuckets,
	})
)

// InitRegistry initializes the global Prometheus registry.
func InitRegistry() *prometheus.Registry {
	once.Do(func() {
		registry = prometheus.NewRegistry()

		registry.MustRegister(EvaluationsTotal)
		registry.MustRegister(InsufficientDataTotal)
		registry.MustRegister(PointsRecordedTotal)
		registry.MustRegister(MomentumSpikesTotal)
		registry.MustRegister(ReportCacheHitsTotal)

		registry.MustRegister(MatchWinProbability)
		registry.MustRegister(CurrentMomentum)
		registry.MustRegister(ActiveSessions)

		registry.MustRegister(EvaluationDuration)
	})
	return registry
}

// GetRegistry returns the global Prometheus registry.
func GetRegistry() *prometheus.Registry {
	if registry == nil {
		return InitRegistry()
	}
	return registry
}

// Handler returns the Prometheus HTTP handler.
func Handler() http.Handler {
	return promhttp.HandlerFor(GetRegistry(), promhttp.HandlerOpts{})
}

// RecordEvaluation records one snapshot evaluation.
func RecordEvaluation(durationSeconds float64) {
	EvaluationsTotal.Inc()
	EvaluationDuration.Observe(durationSeconds)
}

// RecordInsufficientData records a degraded evaluation.
func RecordInsufficientData() {
	InsufficientDataTotal.Inc()
}

// RecordPoint records one momentum point, flagging detected spikes.
func RecordPoint(spike bool) {
	PointsRecordedTotal.Inc()
	if spike {
		MomentumSpikesTotal.Inc()
	}
}

// RecordCacheHit records a session cache hit.
func RecordCacheHit() {
	ReportCacheHitsTotal.Inc()
}

// UpdateMatchWinProbability updates the per-player win probability gauges.
func UpdateMatchWinProbability(sessionID string, pMatchA float64) {
	MatchWinProbability.WithLabelValues(sessionID, "A").Set(pMatchA)
	MatchWinProbability.WithLabelValues(sessionID, "B").Set(1 - pMatchA)
}

// UpdateMomentum updates the momentum gauge for a session.
func UpdateMomentum(sessionID string, momentum float64) {
	CurrentMomentum.WithLabelValues(sessionID).Set(momentum)
}

// UpdateActiveSessions updates the open-session gauge.
func UpdateActiveSessions(count float64) {
	ActiveSessions.Set(count)
}
