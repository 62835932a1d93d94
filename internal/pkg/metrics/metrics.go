package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PaymentsInitiated counts initiate-payment workflow runs by outcome.
	PaymentsInitiated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payments_initiated_total",
			Help: "Total number of initiate-payment workflow executions.",
		},
		[]string{"outcome"},
	)

	// StatusChecks counts check-status workflow runs by outcome.
	StatusChecks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payment_status_checks_total",
			Help: "Total number of check-payment-status workflow executions.",
		},
		[]string{"outcome"},
	)

	// ProviderRequests counts calls to the external gateway by endpoint.
	ProviderRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "provider_requests_total",
			Help: "Total number of requests to the external payment provider.",
		},
		[]string{"endpoint", "outcome"},
	)

	// ProviderRequestDuration observes gateway round-trip latency.
	ProviderRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "provider_request_duration_seconds",
			Help:    "Latency of requests to the external payment provider.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	// CircuitBreakerState reports the provider breaker state
	// (0=closed, 1=open, 2=half-open).
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=open, 2=half-open).",
		},
		[]string{"circuit_name"},
	)

	httpRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "endpoint", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)
)

// GinMiddleware records request counts and latency per route.
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unknown"
		}

		httpRequests.WithLabelValues(
			c.Request.Method,
			endpoint,
			strconv.Itoa(c.Writer.Status()),
		).Inc()
		httpRequestDuration.WithLabelValues(
			c.Request.Method,
			endpoint,
		).Observe(time.Since(start).Seconds())
	}
}
