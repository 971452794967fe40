// Package metrics owns the Prometheus registry and the application collectors.
package metrics

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "agewell"

// Schedule generation sources.
const (
	SourceCreate   = "create"
	SourceOnDemand = "on_demand"
	SourceExtend   = "extend"
)

// Metrics holds the registry and every collector the application reports.
type Metrics struct {
	registry *prometheus.Registry
	log      *slog.Logger

	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
	logsPurged       prometheus.Counter
	entriesGenerated *prometheus.CounterVec
	dosesMarked      *prometheus.CounterVec
}

// New creates a registry with runtime collectors and the application metrics.
func New(log *slog.Logger) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		log:      log.With("component", "metrics"),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route pattern and status code.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by method and route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		logsPurged: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "emergency_logs_purged_total",
			Help:      "Emergency log rows removed by the retention janitor.",
		}),
		entriesGenerated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "schedule_entries_generated_total",
			Help:      "Medicine schedule entries inserted, by source.",
		}, []string{"source"}),
		dosesMarked: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "doses_marked_total",
			Help:      "Schedule entries marked taken or pending.",
		}, []string{"state"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests,
		m.httpDuration,
		m.logsPurged,
		m.entriesGenerated,
		m.dosesMarked,
	)

	return m
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		ErrorLog:      m,
		ErrorHandling: promhttp.ContinueOnError,
	})
}

// Println implements promhttp.Logger.
func (m *Metrics) Println(v ...any) {
	m.log.Error("metrics handler error", slog.String("error", fmt.Sprint(v...)))
}

// ObserveHTTP records one served request.
func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// EmergencyLogsPurged adds n purged rows.
func (m *Metrics) EmergencyLogsPurged(n int64) {
	if n > 0 {
		m.logsPurged.Add(float64(n))
	}
}

// ScheduleEntriesGenerated adds n inserted schedule entries for source.
func (m *Metrics) ScheduleEntriesGenerated(source string, n int64) {
	if n > 0 {
		m.entriesGenerated.WithLabelValues(source).Add(float64(n))
	}
}

// DoseMarked counts a mark-taken or mark-pending transition.
func (m *Metrics) DoseMarked(taken bool) {
	state := "pending"
	if taken {
		state = "taken"
	}
	m.dosesMarked.WithLabelValues(state).Inc()
}
