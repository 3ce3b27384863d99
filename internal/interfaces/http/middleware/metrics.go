package middleware

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PrometheusMiddleware records per-route HTTP metrics
type PrometheusMiddleware struct {
	totalRequests   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	responseSize    *prometheus.HistogramVec
}

var (
	promMiddleware     *PrometheusMiddleware
	promMiddlewareOnce sync.Once
)

// NewPrometheusMiddleware returns the process-wide middleware instance. The
// collectors live in the default registry, so they are built exactly once.
func NewPrometheusMiddleware() *PrometheusMiddleware {
	promMiddlewareOnce.Do(func() {
		promMiddleware = newPrometheusMiddleware()
	})
	return promMiddleware
}

func newPrometheusMiddleware() *PrometheusMiddleware {
	return &PrometheusMiddleware{
		totalRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests.",
			},
			[]string{"method", "path", "status"},
		),
		requestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		responseSize: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_response_size_bytes",
				Help:    "Size of HTTP responses in bytes.",
				Buckets: prometheus.ExponentialBuckets(128, 4, 8),
			},
			[]string{"method", "path", "status"},
		),
	}
}

// Instrument is the gin middleware function. The route template is used as
// the path label so parameterized routes don't explode the cardinality.
func (m *PrometheusMiddleware) Instrument() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		m.totalRequests.WithLabelValues(method, path, status).Inc()
		m.requestDuration.WithLabelValues(method, path, status).Observe(time.Since(start).Seconds())
		m.responseSize.WithLabelValues(method, path, status).Observe(float64(c.Writer.Size()))
	}
}
