package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/amirhossein-jamali/timenorm/internal/domain/port/core"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "timenorm"

// Metrics owns a private registry so tests and multiple servers never collide on the
// global one. It implements core.ParseRecorder.
type Metrics struct {
	registry *prometheus.Registry

	parses      *prometheus.CounterVec
	parseTime   *prometheus.HistogramVec
	ambiguities *prometheus.CounterVec
	httpTime    *prometheus.HistogramVec
}

var _ core.ParseRecorder = (*Metrics)(nil)

// NewMetrics registers the parser and HTTP collectors, plus the Go runtime and process
// collectors
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		parses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "parser",
			Name:      "parses_total",
			Help:      "Parse calls by matching strategy and outcome.",
		}, []string{"strategy", "outcome"}),
		parseTime: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "parser",
			Name:      "parse_duration_seconds",
			Help:      "Time spent normalizing one input.",
			Buckets:   []float64{.00001, .00005, .0001, .0005, .001, .005, .01},
		}, []string{"outcome"}),
		ambiguities: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "parser",
			Name:      "ambiguous_inputs_total",
			Help:      "Assumptions made while resolving ambiguous inputs.",
		}, []string{"heuristic"}),
		httpTime: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by route and status.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}

	m.registry.MustRegister(
		m.parses,
		m.parseTime,
		m.ambiguities,
		m.httpTime,
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
	)
	return m
}

// RecordParse counts one parse. Failures carry an empty strategy, reported as "none".
func (m *Metrics) RecordParse(strategy string, outcome string, elapsed core.Duration) {
	if strategy == "" {
		strategy = "none"
	}
	m.parses.WithLabelValues(strategy, outcome).Inc()
	m.parseTime.WithLabelValues(outcome).Observe(time.Duration(elapsed).Seconds())
}

// RecordAmbiguity counts one ambiguity warning
func (m *Metrics) RecordAmbiguity(heuristic string) {
	m.ambiguities.WithLabelValues(heuristic).Inc()
}

// ObserveRequest records one served HTTP request
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	m.httpTime.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry, mainly for tests
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
