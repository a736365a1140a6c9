package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "auto_run_ac"

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route, method and status code",
		},
		[]string{"route", "method", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)

	triggerOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "triggers",
			Name:      "operations_total",
			Help:      "Trigger store operations by collection, operation and outcome",
		},
		[]string{"collection", "operation", "outcome"},
	)

	snapshotWritesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "snapshot",
			Name:      "writes_total",
			Help:      "Snapshot cache writes by outcome",
		},
		[]string{"outcome"},
	)

	snapshotRefreshTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "snapshot",
			Name:      "refresh_total",
			Help:      "Scheduled snapshot refreshes by outcome",
		},
		[]string{"outcome"},
	)
)

// Outcome labels.
const (
	OutcomeSuccess  = "success"
	OutcomeNotFound = "not_found"
	OutcomeConflict = "conflict"
	OutcomeInvalid  = "invalid"
	OutcomeError    = "error"
)

// RecordHTTPRequest counts one served request and observes its latency. route is the
// router template, never the raw path.
func RecordHTTPRequest(route, method, status string, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(route, method, status).Inc()
	httpRequestDuration.WithLabelValues(route, method).Observe(duration.Seconds())
}

// RecordTriggerOperation counts one store-backed trigger operation by outcome.
func RecordTriggerOperation(collection, operation, outcome string) {
	triggerOperationsTotal.WithLabelValues(collection, operation, outcome).Inc()
}

// RecordSnapshotWrite counts one attempt to persist the snapshot.
func RecordSnapshotWrite(outcome string) {
	snapshotWritesTotal.WithLabelValues(outcome).Inc()
}

// RecordSnapshotRefresh counts one refresher run.
func RecordSnapshotRefresh(outcome string) {
	snapshotRefreshTotal.WithLabelValues(outcome).Inc()
}
