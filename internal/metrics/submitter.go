package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/fanforge/govledger-adapter/internal/model"
)

var (
	submitterRecordsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "govledger",
		Subsystem: "submitter",
		Name:      "records_total",
		Help:      "Count of recording operations submitted to the ledger.",
	}, []string{"kind", "cluster", "status"})

	submitterRecordDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "govledger",
		Subsystem: "submitter",
		Name:      "record_duration_seconds",
		Help:      "End-to-end duration of a recording operation, confirmation included.",
		Buckets:   prometheus.ExponentialBuckets(0.05, 2, 12),
	}, []string{"kind", "cluster", "status"})

	submitterPayloadSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "govledger",
		Subsystem: "submitter",
		Name:      "payload_size_bytes",
		Help:      "Serialized memo payload size in bytes.",
		Buckets:   prometheus.ExponentialBuckets(32, 2, 6), // 32..1024
	}, []string{"kind", "cluster"})
)

// Submitter tracks metrics for the transaction submitter.
type Submitter struct {
	cluster model.Cluster
}

// NewSubmitter constructs a metrics collector for recording operations.
func NewSubmitter(cluster model.Cluster) *Submitter {
	if cluster == "" {
		cluster = "unknown"
	}
	return &Submitter{cluster: cluster}
}

// ObserveRecord records the outcome and duration of one recording operation.
func (m Submitter) ObserveRecord(kind model.RecordKind, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	submitterRecordsTotal.WithLabelValues(string(kind), string(m.cluster), status).Inc()
	submitterRecordDuration.WithLabelValues(string(kind), string(m.cluster), status).
		Observe(time.Since(started).Seconds())
}

// ObservePayloadSize records the serialized memo size of a recording operation.
func (m Submitter) ObservePayloadSize(kind model.RecordKind, sizeBytes int) {
	submitterPayloadSize.WithLabelValues(string(kind), string(m.cluster)).Observe(float64(sizeBytes))
}
