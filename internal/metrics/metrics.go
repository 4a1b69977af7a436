package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "byklab",
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "byklab",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "byklab",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		},
		[]string{"method", "route"},
	)

	seedRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "byklab",
			Subsystem: "catalog",
			Name:      "seed_runs_total",
			Help:      "Total number of catalog seed runs.",
		},
		[]string{"success"},
	)

	activations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "byklab",
			Subsystem: "subscriptions",
			Name:      "activations_total",
			Help:      "Total number of subscription activations by requested plan.",
		},
		[]string{"plan"},
	)
)

func init() {
	Registry.MustRegister(
		httpInFlight,
		httpRequests,
		httpDuration,
		seedRuns,
		activations,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler returns an HTTP handler exposing the registered Prometheus metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// Middleware records request count, latency and in-flight gauge. Requests
// are labelled with the matched route template, not the raw path, so
// /api/blog/post/:id stays a single series.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/metrics" {
			c.Next()
			return
		}

		start := time.Now()
		httpInFlight.Inc()
		defer httpInFlight.Dec()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		httpRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		httpDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

// RecordSeed counts a catalog seed run.
func RecordSeed(success bool) {
	seedRuns.WithLabelValues(strconv.FormatBool(success)).Inc()
}

// RecordActivation counts a subscription activation for plan.
func RecordActivation(plan string) {
	if plan == "" {
		plan = "unknown"
	}
	activations.WithLabelValues(plan).Inc()
}
