package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "govledger",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Count of handled HTTP requests.",
	}, []string{"route", "method", "code"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "govledger",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Duration of handled HTTP requests.",
		Buckets:   prometheus.ExponentialBuckets(0.005, 2, 14),
	}, []string{"route", "method", "code"})
)

// HTTPHandler tracks metrics for the REST surface.
type HTTPHandler struct{}

// NewHTTPHandler constructs a metrics collector for HTTP requests.
func NewHTTPHandler() *HTTPHandler {
	return &HTTPHandler{}
}

// ObserveRequest records the status and duration of one handled request.
func (HTTPHandler) ObserveRequest(route, method string, status int, started time.Time) {
	code := strconv.Itoa(status)
	httpRequestsTotal.WithLabelValues(route, method, code).Inc()
	httpRequestDuration.WithLabelValues(route, method, code).Observe(time.Since(started).Seconds())
}
