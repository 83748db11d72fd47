package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/fanforge/govledger-adapter/internal/model"
)

var (
	retryAttemptsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "govledger",
		Subsystem: "retry",
		Name:      "attempts_total",
		Help:      "Count of individual attempts made by the retry executor.",
	}, []string{"operation", "cluster", "status"})

	retryClassificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "govledger",
		Subsystem: "retry",
		Name:      "classifications_total",
		Help:      "Count of attempt errors classified as retryable or fatal.",
	}, []string{"operation", "cluster", "class"})

	retryOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "govledger",
		Subsystem: "retry",
		Name:      "operation_duration_seconds",
		Help:      "Duration of retried operations, backoff sleeps included.",
		Buckets:   prometheus.ExponentialBuckets(0.01, 2, 12),
	}, []string{"operation", "cluster", "status"})

	retryAttemptsPerOperation = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "govledger",
		Subsystem: "retry",
		Name:      "attempts_per_operation",
		Help:      "Number of attempts used per retried operation.",
		Buckets:   prometheus.LinearBuckets(1, 1, 8),
	}, []string{"operation", "cluster"})
)

// Retry tracks metrics for the retry executor.
type Retry struct {
	cluster model.Cluster
}

// NewRetry constructs a metrics collector for retried operations.
func NewRetry(cluster model.Cluster) *Retry {
	if cluster == "" {
		cluster = "unknown"
	}
	return &Retry{cluster: cluster}
}

// ObserveAttempt records a single attempt outcome.
func (m Retry) ObserveAttempt(operation string, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	retryAttemptsTotal.WithLabelValues(operation, string(m.cluster), status).Inc()
}

// ObserveClassification records whether an attempt error was retryable.
func (m Retry) ObserveClassification(operation string, retryable bool) {
	class := "fatal"
	if retryable {
		class = "retryable"
	}
	retryClassificationsTotal.WithLabelValues(operation, string(m.cluster), class).Inc()
}

// ObserveOperation records the outcome, attempt count and total duration of
// a retried operation.
func (m Retry) ObserveOperation(operation string, err error, attempts int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	retryOperationDuration.WithLabelValues(operation, string(m.cluster), status).
		Observe(time.Since(started).Seconds())
	retryAttemptsPerOperation.WithLabelValues(operation, string(m.cluster)).Observe(float64(attempts))
}
