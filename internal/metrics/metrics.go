package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fittrack_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fittrack_http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"method", "route"},
	)

	ActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "fittrack_http_active_requests",
			Help: "Current number of in-flight HTTP requests",
		},
	)

	// Generation jobs
	GenerationJobsStarted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fittrack_generation_jobs_started_total",
			Help: "Placeholder generation jobs started",
		},
		[]string{"kind"},
	)

	GenerationJobsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fittrack_generation_jobs_completed_total",
			Help: "Placeholder generation jobs that became ready",
		},
		[]string{"kind"},
	)

	// Goals
	GoalOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fittrack_goal_operations_total",
			Help: "Goal operations",
		},
		[]string{"operation"}, // create, progress, complete, expire
	)

	// Exports
	ExportsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fittrack_exports_total",
			Help: "Data exports by result",
		},
		[]string{"format", "status"},
	)
)

func TrackGoalOperation(operation string) {
	GoalOperations.WithLabelValues(operation).Inc()
}

func TrackGoalOperations(operation string, n int) {
	GoalOperations.WithLabelValues(operation).Add(float64(n))
}

func TrackJobStarted(kind string) {
	GenerationJobsStarted.WithLabelValues(kind).Inc()
}

func TrackJobCompleted(kind string) {
	GenerationJobsCompleted.WithLabelValues(kind).Inc()
}

func TrackExport(format, status string) {
	ExportsTotal.WithLabelValues(format, status).Inc()
}
