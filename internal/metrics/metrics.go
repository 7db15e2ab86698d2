// Package metrics exposes Prometheus collectors for the site.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "portfolio"

// Collector holds all application metrics.
type Collector struct {
	// HTTP metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// Travel map
	AdventureSelections *prometheus.CounterVec

	// Contact form
	ContactMessages *prometheus.CounterVec

	// Visitor tracking
	VisitsRecorded   prometheus.Counter
	StoreErrorsTotal *prometheus.CounterVec

	gatherer prometheus.Gatherer
}

// New registers the collectors with reg.
func New(reg *prometheus.Registry) *Collector {
	f := promauto.With(reg)
	return &Collector{
		HTTPRequestsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status_code"},
		),
		HTTPRequestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route", "status_code"},
		),
		HTTPRequestsInFlight: f.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "http_requests_in_flight",
				Help:      "Number of HTTP requests currently being processed",
			},
		),
		AdventureSelections: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "adventure_selections_total",
				Help:      "Adventure markers opened on the travel map",
			},
			[]string{"location"},
		),
		ContactMessages: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "contact_messages_total",
				Help:      "Contact form submissions by outcome",
			},
			[]string{"status"},
		),
		VisitsRecorded: f.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "visits_recorded_total",
				Help:      "Page visits written to the visitor store",
			},
		),
		StoreErrorsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "store_errors_total",
				Help:      "Failed visitor store operations",
			},
			[]string{"operation"},
		),
		gatherer: reg,
	}
}

// NewWithRuntime is New on a fresh registry that also carries the Go
// runtime and process collectors.
func NewWithRuntime() *Collector {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return New(reg)
}

// RecordHTTPRequest records one completed request.
func (c *Collector) RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	code := strconv.Itoa(status)
	c.HTTPRequestsTotal.WithLabelValues(method, route, code).Inc()
	c.HTTPRequestDuration.WithLabelValues(method, route, code).Observe(duration.Seconds())
}

// RecordAdventureSelection counts a marker being opened.
func (c *Collector) RecordAdventureSelection(locationID string) {
	c.AdventureSelections.WithLabelValues(locationID).Inc()
}

// RecordContact counts a contact form submission. status is one of
// "sent", "invalid" or "failed".
func (c *Collector) RecordContact(status string) {
	c.ContactMessages.WithLabelValues(status).Inc()
}

// RecordStoreError counts a failed store operation.
func (c *Collector) RecordStoreError(operation string) {
	c.StoreErrorsTotal.WithLabelValues(operation).Inc()
}

// Middleware records request counts, latency and in-flight requests.
// Routes are labelled by their registered pattern so path parameters do
// not explode the label space.
func (c *Collector) Middleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()

		c.HTTPRequestsInFlight.Inc()
		defer c.HTTPRequestsInFlight.Dec()

		ctx.Next()

		route := ctx.FullPath()
		if route == "" {
			route = "unmatched"
		}
		c.RecordHTTPRequest(ctx.Request.Method, route, ctx.Writer.Status(), time.Since(start))
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() gin.HandlerFunc {
	h := promhttp.HandlerFor(c.gatherer, promhttp.HandlerOpts{})
	return gin.WrapH(h)
}
