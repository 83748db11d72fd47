package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/fanforge/govledger-adapter/internal/model"
)

var (
	healthUp = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "govledger",
		Subsystem: "health",
		Name:      "up",
		Help:      "Whether the ledger endpoint currently passes health probes.",
	}, []string{"cluster"})

	healthSlot = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "govledger",
		Subsystem: "health",
		Name:      "slot",
		Help:      "Last observed ledger slot.",
	}, []string{"cluster"})

	healthProbesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "govledger",
		Subsystem: "health",
		Name:      "probes_total",
		Help:      "Count of health probes.",
	}, []string{"cluster", "status"})

	healthProbeDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "govledger",
		Subsystem: "health",
		Name:      "probe_duration_seconds",
		Help:      "Duration of health probes.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"cluster", "status"})

	healthReconnectsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "govledger",
		Subsystem: "health",
		Name:      "reconnects_total",
		Help:      "Count of connection handle replacements after failed probes.",
	}, []string{"cluster"})
)

// Health tracks metrics for the ledger health monitor.
type Health struct {
	cluster model.Cluster
}

// NewHealth constructs a metrics collector for the health monitor.
func NewHealth(cluster model.Cluster) *Health {
	if cluster == "" {
		cluster = "unknown"
	}
	return &Health{cluster: cluster}
}

// ObserveProbe records a probe outcome and duration.
func (m Health) ObserveProbe(err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	healthProbesTotal.WithLabelValues(string(m.cluster), status).Inc()
	healthProbeDuration.WithLabelValues(string(m.cluster), status).Observe(time.Since(started).Seconds())
}

// SetUp publishes the current healthy flag.
func (m Health) SetUp(healthy bool) {
	v := 0.0
	if healthy {
		v = 1.0
	}
	healthUp.WithLabelValues(string(m.cluster)).Set(v)
}

// SetSlot publishes the last observed slot.
func (m Health) SetSlot(slot uint64) {
	healthSlot.WithLabelValues(string(m.cluster)).Set(float64(slot))
}

// IncReconnect counts a connection handle replacement.
func (m Health) IncReconnect() {
	healthReconnectsTotal.WithLabelValues(string(m.cluster)).Inc()
}
