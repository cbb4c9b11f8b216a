// Package metrics provides the Prometheus metrics of the reading log service.
package metrics

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics contains every collector exported by the service. A nil *Metrics
// is valid and records nothing.
type Metrics struct {
	HTTPRequests    *prometheus.CounterVec
	HTTPDuration    *prometheus.HistogramVec
	Mutations       *prometheus.CounterVec
	FetchFailures   *prometheus.CounterVec
	BusyRejections  *prometheus.CounterVec
	CatalogRequests *prometheus.CounterVec
	CatalogDuration prometheus.Histogram
	ActiveSessions  prometheus.Gauge
	registry        *prometheus.Registry
}

// New creates the collectors and registers them with registry.
func New(registry *prometheus.Registry) (*Metrics, error) {
	m := &Metrics{registry: registry}
	m.initMetrics()
	if err := registry.Register(m); err != nil {
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}
	return m, nil
}

func (m *Metrics) initMetrics() {
	m.HTTPRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "readinglog_http_requests_total",
		Help: "Total number of HTTP requests by method, route and status.",
	}, []string{"method", "route", "status"})

	m.HTTPDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "readinglog_http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	m.Mutations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "readinglog_mutations_total",
		Help: "Total number of state mutations by operation and outcome.",
	}, []string{"operation", "outcome"})

	m.FetchFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "readinglog_fetch_failures_total",
		Help: "Total number of failed collection fetches.",
	}, []string{"collection"})

	m.BusyRejections = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "readinglog_busy_rejections_total",
		Help: "Total number of calls rejected because the same operation was in flight.",
	}, []string{"operation"})

	m.CatalogRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "readinglog_catalog_requests_total",
		Help: "Total number of catalog proxy requests by outcome.",
	}, []string{"outcome"})

	m.CatalogDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "readinglog_catalog_request_duration_seconds",
		Help:    "Duration of catalog proxy requests in seconds.",
		Buckets: prometheus.ExponentialBuckets(0.05, 2, 10),
	})

	m.ActiveSessions = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "readinglog_active_sessions",
		Help: "Number of live per-user sessions.",
	})
}

// ObserveHTTP records one served request.
func (m *Metrics) ObserveHTTP(method, route string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// ObserveMutation counts a mutation as "ok" or "error".
func (m *Metrics) ObserveMutation(op string, err error) {
	if m == nil {
		return
	}
	m.Mutations.WithLabelValues(op, outcome(err)).Inc()
}

// IncFetchFailure counts a failed fetch of collection.
func (m *Metrics) IncFetchFailure(collection string) {
	if m == nil {
		return
	}
	m.FetchFailures.WithLabelValues(collection).Inc()
}

// IncBusy counts a rejected re-entrant call.
func (m *Metrics) IncBusy(op string) {
	if m == nil {
		return
	}
	m.BusyRejections.WithLabelValues(op).Inc()
}

// ObserveCatalog records one catalog proxy round trip.
func (m *Metrics) ObserveCatalog(err error, d time.Duration) {
	if m == nil {
		return
	}
	m.CatalogRequests.WithLabelValues(outcome(err)).Inc()
	m.CatalogDuration.Observe(d.Seconds())
}

// SessionOpened and SessionClosed track the live session gauge.
func (m *Metrics) SessionOpened() {
	if m == nil {
		return
	}
	m.ActiveSessions.Inc()
}

func (m *Metrics) SessionClosed() {
	if m == nil {
		return
	}
	m.ActiveSessions.Dec()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Collect implements the prometheus.Collector interface.
func (m *Metrics) Collect(ch chan<- prometheus.Metric) {
	m.HTTPRequests.Collect(ch)
	m.HTTPDuration.Collect(ch)
	m.Mutations.Collect(ch)
	m.FetchFailures.Collect(ch)
	m.BusyRejections.Collect(ch)
	m.CatalogRequests.Collect(ch)
	ch <- m.CatalogDuration
	ch <- m.ActiveSessions
}

// Describe implements the prometheus.Collector interface.
func (m *Metrics) Describe(ch chan<- *prometheus.Desc) {
	m.HTTPRequests.Describe(ch)
	m.HTTPDuration.Describe(ch)
	m.Mutations.Describe(ch)
	m.FetchFailures.Describe(ch)
	m.BusyRejections.Describe(ch)
	m.CatalogRequests.Describe(ch)
	ch <- m.CatalogDuration.Desc()
	ch <- m.ActiveSessions.Desc()
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
