// Package metrics provides Prometheus metrics for notification delivery.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"seyren-notifier/domain/interfaces"
)

const namespace = "seyren_notifier"

// Metrics holds all Prometheus metrics.
type Metrics struct {
	notificationsSent    *prometheus.CounterVec
	notificationsFailed  *prometheus.CounterVec
	notificationsSkipped *prometheus.CounterVec

	notificationDuration *prometheus.HistogramVec
}

// NewMetrics creates the notifier metrics and registers them with registerer.
func NewMetrics(registerer prometheus.Registerer) *Metrics {
	factory := promauto.With(registerer)

	return &Metrics{
		notificationsSent: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "notifications_sent_total",
				Help:      "Total number of notifications delivered",
			},
			[]string{"channel"},
		),
		notificationsFailed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "notifications_failed_total",
				Help:      "Total number of notifications a channel failed to deliver",
			},
			[]string{"channel"},
		),
		notificationsSkipped: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "notifications_skipped_total",
				Help:      "Total number of subscriptions that were not notified",
			},
			[]string{"reason"},
		),
		notificationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "notification_duration_seconds",
				Help:      "Duration of notification attempts",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"channel"},
		),
	}
}

// IncrementSent increments the sent counter of the channel.
func (m *Metrics) IncrementSent(channel string) {
	m.notificationsSent.WithLabelValues(channel).Inc()
}

// IncrementFailed increments the failed counter of the channel.
func (m *Metrics) IncrementFailed(channel string) {
	m.notificationsFailed.WithLabelValues(channel).Inc()
}

// IncrementSkipped increments the skipped counter for the reason.
func (m *Metrics) IncrementSkipped(reason string) {
	m.notificationsSkipped.WithLabelValues(reason).Inc()
}

// ObserveDuration records the duration of a notification attempt.
func (m *Metrics) ObserveDuration(channel string, seconds float64) {
	m.notificationDuration.WithLabelValues(channel).Observe(seconds)
}

// Exporter owns a registry and the metrics registered on it.
type Exporter struct {
	registry *prometheus.Registry
	metrics  *Metrics
	logger   interfaces.Logger
}

// NewExporter creates a new metrics exporter with its own registry, including
// the Go runtime and process collectors.
func NewExporter(logger interfaces.Logger) *Exporter {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Exporter{
		registry: registry,
		metrics:  NewMetrics(registry),
		logger:   logger,
	}
}

// Registry returns the registry to expose over HTTP.
func (e *Exporter) Registry() *prometheus.Registry {
	return e.registry
}

// IncrementSent increments the sent counter of the channel.
func (e *Exporter) IncrementSent(channel string) {
	e.metrics.IncrementSent(channel)
}

// IncrementFailed increments the failed counter of the channel.
func (e *Exporter) IncrementFailed(channel string) {
	e.logger.Debug("Recording failed notification", "channel", channel)
	e.metrics.IncrementFailed(channel)
}

// IncrementSkipped increments the skipped counter for the reason.
func (e *Exporter) IncrementSkipped(reason string) {
	e.metrics.IncrementSkipped(reason)
}

// ObserveDuration records the duration of a notification attempt.
func (e *Exporter) ObserveDuration(channel string, seconds float64) {
	e.metrics.ObserveDuration(channel, seconds)
}
