package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/fanforge/govledger-adapter/internal/model"
)

var (
	confirmerPollsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "govledger",
		Subsystem: "confirmer",
		Name:      "polls_total",
		Help:      "Count of signature status polls.",
	}, []string{"cluster", "status"})

	confirmerPollDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "govledger",
		Subsystem: "confirmer",
		Name:      "poll_duration_seconds",
		Help:      "Duration of signature status polls.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"cluster", "status"})

	confirmerPollSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "govledger",
		Subsystem: "confirmer",
		Name:      "poll_size",
		Help:      "Number of signatures checked per poll.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
	}, []string{"cluster"})

	confirmerOutcomesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "govledger",
		Subsystem: "confirmer",
		Name:      "outcomes_total",
		Help:      "Count of terminal confirmation outcomes.",
	}, []string{"cluster", "outcome"})
)

// Confirmer tracks metrics for the confirmation poller.
type Confirmer struct {
	cluster model.Cluster
}

// NewConfirmer constructs a metrics collector for the confirmation poller.
func NewConfirmer(cluster model.Cluster) *Confirmer {
	if cluster == "" {
		cluster = "unknown"
	}
	return &Confirmer{cluster: cluster}
}

// ObservePoll records a status poll outcome, duration and batch size.
func (m Confirmer) ObservePoll(err error, signatures int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	confirmerPollsTotal.WithLabelValues(string(m.cluster), status).Inc()
	confirmerPollDuration.WithLabelValues(string(m.cluster), status).Observe(time.Since(started).Seconds())
	confirmerPollSize.WithLabelValues(string(m.cluster)).Observe(float64(signatures))
}

// ObserveOutcome counts a terminal confirmation outcome.
func (m Confirmer) ObserveOutcome(outcome string) {
	confirmerOutcomesTotal.WithLabelValues(string(m.cluster), outcome).Inc()
}
