package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/fanforge/govledger-adapter/internal/model"
)

var (
	rentLookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "govledger",
		Subsystem: "rent_cache",
		Name:      "lookups_total",
		Help:      "Count of reserve amount lookups by cache outcome.",
	}, []string{"cluster", "outcome"})

	rentFetchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "govledger",
		Subsystem: "rent_cache",
		Name:      "fetch_duration_seconds",
		Help:      "Duration of reserve amount queries on cache misses.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"cluster", "status"})
)

// RentCache tracks metrics for the reserve amount cache.
type RentCache struct {
	cluster model.Cluster
}

// NewRentCache constructs a metrics collector for the reserve cache.
func NewRentCache(cluster model.Cluster) *RentCache {
	if cluster == "" {
		cluster = "unknown"
	}
	return &RentCache{cluster: cluster}
}

// ObserveLookup records a cache hit or miss.
func (m RentCache) ObserveLookup(hit bool) {
	outcome := "miss"
	if hit {
		outcome = "hit"
	}
	rentLookupsTotal.WithLabelValues(string(m.cluster), outcome).Inc()
}

// ObserveFetch records the outcome and duration of a miss-path query.
func (m RentCache) ObserveFetch(err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	rentFetchDuration.WithLabelValues(string(m.cluster), status).Observe(time.Since(started).Seconds())
}
