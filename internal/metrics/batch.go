// Package metrics exposes application metrics collectors.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/fanforge/govledger-adapter/internal/model"
)

var (
	batchRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "govledger",
		Subsystem: "batch",
		Name:      "runs_total",
		Help:      "Count of batch recording runs.",
	}, []string{"cluster", "status"})

	batchRunDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "govledger",
		Subsystem: "batch",
		Name:      "run_duration_seconds",
		Help:      "Duration of batch recording runs.",
		Buckets:   prometheus.ExponentialBuckets(0.05, 2, 12),
	}, []string{"cluster", "status"})

	batchRunSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "govledger",
		Subsystem: "batch",
		Name:      "run_size",
		Help:      "Number of items submitted per batch run.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
	}, []string{"cluster"})
)

// Batch tracks metrics for fan-out batch recording.
type Batch struct {
	cluster model.Cluster
}

// NewBatch constructs a metrics collector for batch recording.
func NewBatch(cluster model.Cluster) *Batch {
	if cluster == "" {
		cluster = "unknown"
	}
	return &Batch{cluster: cluster}
}

// ObserveRun records a batch run outcome, duration and size. A run counts as
// an error when any item in it failed.
func (m Batch) ObserveRun(err error, items int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	batchRunsTotal.WithLabelValues(string(m.cluster), status).Inc()
	batchRunDuration.WithLabelValues(string(m.cluster), status).Observe(time.Since(started).Seconds())
	batchRunSize.WithLabelValues(string(m.cluster)).Observe(float64(items))
}
