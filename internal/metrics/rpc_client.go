package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/fanforge/govledger-adapter/internal/model"
)

var (
	rpcRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "govledger",
		Subsystem: "rpc_client",
		Name:      "operations_total",
		Help:      "Count of ledger RPC operations.",
	}, []string{"operation", "cluster", "status"})
	rpcRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "govledger",
		Subsystem: "rpc_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of ledger RPC operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "cluster", "status"})
)

// RPCClient tracks metrics for RPC calls to ledger nodes.
type RPCClient struct {
	cluster model.Cluster
}

// NewRPCClient constructs a metrics collector for RPC calls.
func NewRPCClient(cluster model.Cluster) *RPCClient {
	if cluster == "" {
		cluster = "unknown"
	}
	return &RPCClient{cluster: cluster}
}

// Observe records a single RPC call outcome and duration.
func (m RPCClient) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	rpcRequestsTotal.WithLabelValues(operation, string(m.cluster), status).Inc()
	rpcRequestDuration.WithLabelValues(operation, string(m.cluster), status).Observe(time.Since(started).Seconds())
}
