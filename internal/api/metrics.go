package api

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// metrics holds the Prometheus collectors for the API server. Each server
// owns its own registry so tests can spin up independent instances.
type metrics struct {
	registry *prometheus.Registry

	submissions   prometheus.Counter
	storeFailures prometheus.Counter
	requests      *prometheus.HistogramVec
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		submissions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "footprint_submissions_total",
			Help: "Completed footprint submissions.",
		}),
		storeFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "footprint_store_failures_total",
			Help: "Community store operations that failed.",
		}),
		requests: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "footprint_request_duration_seconds",
			Help:    "HTTP request latency by path and status.",
			Buckets: prometheus.DefBuckets,
		}, []string{"path", "status"}),
	}

	m.registry.MustRegister(m.submissions, m.storeFailures, m.requests)
	return m
}

// middleware records request latency per route and status.
func (m *metrics) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.requests.
			WithLabelValues(path, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}
