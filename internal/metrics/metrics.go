package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "charityflow",
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "charityflow",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "charityflow",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		},
		[]string{"method", "route"},
	)

	distributionRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "charityflow",
			Subsystem: "distribution",
			Name:      "runs_total",
			Help:      "Total number of distribution runs by source kind.",
		},
		[]string{"source"},
	)

	distributionClosed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "charityflow",
			Subsystem: "distribution",
			Name:      "closed_total",
			Help:      "Donations and projects closed by distribution runs.",
		},
		[]string{"source"},
	)

	distributionAllocated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "charityflow",
			Subsystem: "distribution",
			Name:      "allocated_amount_total",
			Help:      "Sum of amounts moved between donations and projects.",
		},
		[]string{"source"},
	)
)

func init() {
	Registry.MustRegister(
		httpInFlight,
		httpRequests,
		httpDuration,
		distributionRuns,
		distributionClosed,
		distributionAllocated,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler returns an HTTP handler exposing the registered Prometheus metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// InstrumentHandler wraps the provided handler with HTTP metrics collection.
// Routes are labelled with the chi route pattern to keep cardinality bounded.
func InstrumentHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/metrics" {
			next.ServeHTTP(w, r)
			return
		}

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		httpInFlight.Inc()
		defer httpInFlight.Dec()

		next.ServeHTTP(rec, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		method := strings.ToUpper(r.Method)

		httpRequests.WithLabelValues(method, route, strconv.Itoa(rec.status)).Inc()
		httpDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	})
}

// RecordDistribution records the outcome of one distribution run.
// source is the kind of entity that triggered it ("donation" or "charity_project").
func RecordDistribution(source string, closed int, allocated float64) {
	if source == "" {
		source = "unknown"
	}
	distributionRuns.WithLabelValues(source).Inc()
	distributionClosed.WithLabelValues(source).Add(float64(closed))
	if allocated > 0 {
		distributionAllocated.WithLabelValues(source).Add(allocated)
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
